package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
	"github.com/excelpro/staffledger-backend-go/internal/pkg/validator"
)

// UpdateFieldRequest is the single-field upsert the salary sheet issues per
// cell edit. Amount decodes through decimal, so non-numeric input is
// rejected at the boundary and can never reach the calculator as NaN.
type UpdateFieldRequest struct {
	Month  string          `json:"month"`
	Year   int             `json:"year"`
	Field  string          `json:"field"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *UpdateFieldRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a calendar month name"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if r.Field == "" {
		errs = append(errs, validator.ValidationError{Field: "field", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Row is one employee's fully derived line on the payroll sheet.
type Row struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	Designation  string             `json:"designation"`
	Attendance   attendance.Summary `json:"attendance"`
	Record       SalaryRecord       `json:"record"`
	Computation  Computation        `json:"computation"`
}

type SheetResponse struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Rows  []Row  `json:"rows"`
}
