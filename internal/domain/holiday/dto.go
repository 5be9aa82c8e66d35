package holiday

import (
	"github.com/excelpro/staffledger-backend-go/internal/pkg/validator"
)

type AddHolidayRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Type   string `json:"type"`
}

func (r *AddHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if !Type(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'Company', 'National' or 'Festival'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
