package company

import (
	"github.com/excelpro/staffledger-backend-go/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	Type           *string `json:"type,omitempty"`
	Address        *string `json:"address,omitempty"`
	Contact        *string `json:"contact,omitempty"`
	Email          *string `json:"email,omitempty"`
	DiseCode       *string `json:"diseCode,omitempty"`
	Session        *string `json:"session,omitempty"`
	LocationHeader *string `json:"locationHeader,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be blank"})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
