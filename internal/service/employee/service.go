package employee

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/pkg/storage"
)

type EmployeeServiceImpl struct {
	employee.Repository
	fileStorage storage.FileStorage
}

func NewEmployeeService(repo employee.Repository, fileStorage storage.FileStorage) employee.Service {
	return &EmployeeServiceImpl{Repository: repo, fileStorage: fileStorage}
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.SaveEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp := fromRequest(req)
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	emp.Status = employee.StatusActive
	emp.StatusChangeDate = statusDate(time.Now())

	created, err := s.Repository.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// Update replaces the stored record wholesale, preserving the fields the
// form does not carry (status, photo, leaving details).
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.SaveEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	current, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	emp := fromRequest(req)
	emp.ID = current.ID
	emp.Status = current.Status
	emp.StatusChangeDate = current.StatusChangeDate
	emp.PhotoURL = current.PhotoURL
	emp.LeavingDate = current.LeavingDate
	emp.LeavingReason = current.LeavingReason

	return s.Repository.Update(ctx, emp)
}

// UpdateStatus implements employee.Service. Toggling stamps the change
// date in the dd/mm/yyyy form the printed documents use; going Inactive
// also records the leaving date, going Active clears it.
func (s *EmployeeServiceImpl) UpdateStatus(ctx context.Context, id string, req employee.UpdateStatusRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	today := statusDate(time.Now())
	emp.Status = employee.Status(req.Status)
	emp.StatusChangeDate = today
	if emp.Status == employee.StatusInactive {
		emp.LeavingDate = &today
	} else {
		emp.LeavingDate = nil
	}

	return s.Repository.Update(ctx, emp)
}

// AttachPhoto implements employee.Service.
func (s *EmployeeServiceImpl) AttachPhoto(ctx context.Context, id string, file io.Reader, filename string, contentType string) (employee.Employee, error) {
	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	path := fmt.Sprintf("photos/%s%s", emp.ID, filepath.Ext(filename))
	stored, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to store photo: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, stored)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to resolve photo URL: %w", err)
	}

	emp.PhotoURL = &url
	return s.Repository.Update(ctx, emp)
}

// statusDate formats status-change stamps the way the registry has always
// recorded them.
func statusDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func fromRequest(req employee.SaveEmployeeRequest) employee.Employee {
	return employee.Employee{
		ID:               req.ID,
		Name:             req.Name,
		Designation:      req.Designation,
		Gender:           employee.Gender(req.Gender),
		BasicSalary:      req.BasicSalary,
		JoiningDate:      req.JoiningDate,
		Contact:          req.Contact,
		AlternateContact: req.AlternateContact,
		Email:            req.Email,
		FatherName:       req.FatherName,
		MotherName:       req.MotherName,
		Address:          req.Address,
		Aadhaar:          req.Aadhaar,
		BankName:         req.BankName,
		AccountNo:        req.AccountNo,
		IFSC:             req.IFSC,
		BloodGroup:       req.BloodGroup,
		Religion:         req.Religion,
		Category:         req.Category,
		MaritalStatus:    req.MaritalStatus,
		Qualification:    req.Qualification,
		Experience:       req.Experience,
		SamagraID:        req.SamagraID,
		TeacherCode:      req.TeacherCode,
		Subject:          req.Subject,
		Branch:           req.Branch,
		Shift:            employee.Shift(req.Shift),
		WorkLocation:     req.WorkLocation,

		Height:             req.Height,
		Weight:             req.Weight,
		Chest:              req.Chest,
		GunLicenseNo:       req.GunLicenseNo,
		LicenseExpiry:      req.LicenseExpiry,
		PoliceVerification: req.PoliceVerification,
		TrainingCertNo:     req.TrainingCertNo,
	}
}
