package employee

import (
	"github.com/shopspring/decimal"

	"github.com/excelpro/staffledger-backend-go/internal/pkg/validator"
)

// SaveEmployeeRequest carries the full registry form. The same shape serves
// create and edit; edits replace the stored record wholesale, like the
// original form did.
type SaveEmployeeRequest struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Designation      string          `json:"designation"`
	Gender           string          `json:"gender"`
	BasicSalary      decimal.Decimal `json:"basicSalary"`
	JoiningDate      string          `json:"joiningDate"`
	Contact          string          `json:"contact"`
	AlternateContact *string         `json:"alternateContact,omitempty"`
	Email            string          `json:"email"`
	FatherName       string          `json:"fatherName"`
	MotherName       string          `json:"motherName"`
	Address          string          `json:"address"`
	Aadhaar          string          `json:"aadhaar"`
	BankName         string          `json:"bankName"`
	AccountNo        string          `json:"accountNo"`
	IFSC             string          `json:"ifsc"`
	BloodGroup       string          `json:"bloodGroup"`
	Religion         string          `json:"religion"`
	Category         string          `json:"category"`
	MaritalStatus    string          `json:"maritalStatus"`
	Qualification    string          `json:"qualification"`
	Experience       string          `json:"experience"`
	SamagraID        *string         `json:"samagraId,omitempty"`
	TeacherCode      *string         `json:"teacherCode,omitempty"`
	Subject          *string         `json:"subject,omitempty"`
	Branch           *string         `json:"branch,omitempty"`
	Shift            string          `json:"shift"`
	WorkLocation     string          `json:"workLocation"`

	// Security-force specific fields
	Height             *string `json:"height,omitempty"`
	Weight             *string `json:"weight,omitempty"`
	Chest              *string `json:"chest,omitempty"`
	GunLicenseNo       *string `json:"gunLicenseNo,omitempty"`
	LicenseExpiry      *string `json:"licenseExpiry,omitempty"`
	PoliceVerification *string `json:"policeVerification,omitempty"`
	TrainingCertNo     *string `json:"trainingCertNo,omitempty"`
}

func (r *SaveEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Gender != "" && r.Gender != string(Male) && r.Gender != string(Female) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "must be 'Male' or 'Female'"})
	}
	if r.Shift != "" && r.Shift != string(ShiftDay) && r.Shift != string(ShiftNight) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be 'Day' or 'Night'"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basicSalary", Message: "must be non-negative"})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	if !validator.IsEmpty(r.Aadhaar) && !validator.IsValidAadhaar(r.Aadhaar) {
		errs = append(errs, validator.ValidationError{Field: "aadhaar", Message: "must be a 12-digit number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusActive) && r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'Active' or 'Inactive'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
