package employee

import "github.com/shopspring/decimal"

type Employee struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Designation      string          `json:"designation"`
	Gender           Gender          `json:"gender"`
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
	PhotoURL         *string         `json:"photo,omitempty"`
	Shift            Shift           `json:"shift"`
	WorkLocation     string          `json:"workLocation"`

	Status           Status  `json:"status"`
	StatusChangeDate string  `json:"statusChangeDate"`
	LeavingDate      *string `json:"leavingDate,omitempty"`
	LeavingReason    *string `json:"leavingReason,omitempty"`

	// Security-force specific fields
	Height             *string `json:"height,omitempty"`
	Weight             *string `json:"weight,omitempty"`
	Chest              *string `json:"chest,omitempty"`
	GunLicenseNo       *string `json:"gunLicenseNo,omitempty"`
	LicenseExpiry      *string `json:"licenseExpiry,omitempty"`
	PoliceVerification *string `json:"policeVerification,omitempty"`
	TrainingCertNo     *string `json:"trainingCertNo,omitempty"`
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type Shift string

const (
	ShiftDay   Shift = "Day"
	ShiftNight Shift = "Night"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)
