package attendance

import (
	"github.com/excelpro/staffledger-backend-go/internal/pkg/validator"
)

type MarkDayRequest struct {
	Day    int    `json:"day"`
	Status string `json:"status"`
}

func (r *MarkDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDayOfMonth(r.Day) {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "must be between 1 and 31"})
	}
	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of P, A, HD, L, OFF, H or empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkTimeRequest struct {
	Day int    `json:"day"`
	In  string `json:"in"`
	Out string `json:"out"`
}

func (r *MarkTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDayOfMonth(r.Day) {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "must be between 1 and 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SheetRow pairs one employee's record with its derived counts for the
// month grid.
type SheetRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Designation  string          `json:"designation"`
	Days         map[int]Status  `json:"days"`
	Times        map[int]DayTime `json:"times,omitempty"`
	Summary      Summary         `json:"summary"`
}

type SheetResponse struct {
	Month string     `json:"month"`
	Year  int        `json:"year"`
	Rows  []SheetRow `json:"rows"`
}
