package attendance

import (
	"context"
	"fmt"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.Repository
	employeeRepo employee.Repository
}

func NewAttendanceService(repo attendance.Repository, employeeRepo employee.Repository) attendance.Service {
	return &AttendanceServiceImpl{Repository: repo, employeeRepo: employeeRepo}
}

// Sheet implements attendance.Service. The grid lists active employees
// only; a missing record for an employee is a valid zero state.
func (s *AttendanceServiceImpl) Sheet(ctx context.Context, month string, year int) (attendance.SheetResponse, error) {
	active := employee.StatusActive
	employees, err := s.employeeRepo.List(ctx, &active)
	if err != nil {
		return attendance.SheetResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.Repository.ListByPeriod(ctx, month, year)
	if err != nil {
		return attendance.SheetResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	byEmployee := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}

	rows := make([]attendance.SheetRow, 0, len(employees))
	for _, emp := range employees {
		rec := byEmployee[emp.ID]
		rows = append(rows, attendance.SheetRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Designation:  emp.Designation,
			Days:         rec.Days,
			Times:        rec.Times,
			Summary:      attendance.Summarize(rec.Days),
		})
	}

	return attendance.SheetResponse{Month: month, Year: year, Rows: rows}, nil
}

// MarkDay implements attendance.Service.
func (s *AttendanceServiceImpl) MarkDay(ctx context.Context, employeeID, month string, year int, req attendance.MarkDayRequest) (attendance.Record, error) {
	if err := validatePeriod(month, year); err != nil {
		return attendance.Record{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.Record{}, err
	}

	key := attendance.Key{EmployeeID: employeeID, Month: month, Year: year}
	return s.Repository.UpsertDayStatus(ctx, key, req.Day, attendance.Status(req.Status))
}

// MarkTime implements attendance.Service.
func (s *AttendanceServiceImpl) MarkTime(ctx context.Context, employeeID, month string, year int, req attendance.MarkTimeRequest) (attendance.Record, error) {
	if err := validatePeriod(month, year); err != nil {
		return attendance.Record{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.Record{}, err
	}

	key := attendance.Key{EmployeeID: employeeID, Month: month, Year: year}
	return s.Repository.UpsertDayTime(ctx, key, req.Day, attendance.DayTime{In: req.In, Out: req.Out})
}

func validatePeriod(month string, year int) error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a calendar month name"})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

