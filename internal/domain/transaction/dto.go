package transaction

import (
	"github.com/shopspring/decimal"

	"github.com/excelpro/staffledger-backend-go/internal/pkg/validator"
)

type RecordTransactionRequest struct {
	EmployeeID  string          `json:"employeeId"`
	Date        string          `json:"date"`
	VoucherNo   string          `json:"voucherNo"`
	Type        string          `json:"type"`
	Mode        string          `json:"mode"`
	Amount      decimal.Decimal `json:"amount"`
	Month       string          `json:"month"`
	Year        int             `json:"year"`
	ReferenceID *string         `json:"referenceId,omitempty"`
}

func (r *RecordTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if !Type(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of Salary, Advance, PF, Dues, Allowance"})
	}
	if !Mode(r.Mode).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "mode", Message: "is not a recognized payment mode"})
	}
	if r.Amount.IsNegative() || r.Amount.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a calendar month name"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
