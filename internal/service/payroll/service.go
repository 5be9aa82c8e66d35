package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payroll.Repository
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
}

func NewPayrollService(repo payroll.Repository, attendanceRepo attendance.Repository, employeeRepo employee.Repository) payroll.Service {
	return &PayrollServiceImpl{
		Repository:     repo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Sheet implements payroll.Service.
func (s *PayrollServiceImpl) Sheet(ctx context.Context, month string, year int) (payroll.SheetResponse, error) {
	active := employee.StatusActive
	employees, err := s.employeeRepo.List(ctx, &active)
	if err != nil {
		return payroll.SheetResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	attRecords, err := s.attendanceRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return payroll.SheetResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}
	attByEmployee := make(map[string]attendance.Record, len(attRecords))
	for _, rec := range attRecords {
		attByEmployee[rec.EmployeeID] = rec
	}

	salRecords, err := s.Repository.ListByPeriod(ctx, month, year)
	if err != nil {
		return payroll.SheetResponse{}, fmt.Errorf("failed to list salary records: %w", err)
	}
	salByEmployee := make(map[string]payroll.SalaryRecord, len(salRecords))
	for _, rec := range salRecords {
		salByEmployee[rec.EmployeeID] = rec
	}

	rows := make([]payroll.Row, 0, len(employees))
	for _, emp := range employees {
		key := payroll.Key{EmployeeID: emp.ID, Month: month, Year: year}
		rec, ok := salByEmployee[emp.ID]
		if !ok {
			rec = payroll.NewSalaryRecord(key)
		}
		rows = append(rows, buildRow(emp, attByEmployee[emp.ID], rec))
	}

	return payroll.SheetResponse{Month: month, Year: year, Rows: rows}, nil
}

// EmployeeRow implements payroll.Service.
func (s *PayrollServiceImpl) EmployeeRow(ctx context.Context, employeeID, month string, year int) (payroll.Row, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Row{}, err
	}

	attRec, err := s.attendanceRepo.GetByKey(ctx, attendance.Key{EmployeeID: employeeID, Month: month, Year: year})
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return payroll.Row{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	key := payroll.Key{EmployeeID: employeeID, Month: month, Year: year}
	salRec, err := s.Repository.GetByKey(ctx, key)
	if errors.Is(err, payroll.ErrRecordNotFound) {
		salRec = payroll.NewSalaryRecord(key)
	} else if err != nil {
		return payroll.Row{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return buildRow(emp, attRec, salRec), nil
}

// UpdateField implements payroll.Service.
func (s *PayrollServiceImpl) UpdateField(ctx context.Context, employeeID string, req payroll.UpdateFieldRequest) (payroll.SalaryRecord, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecord{}, err
	}
	if req.Amount.IsNegative() {
		return payroll.SalaryRecord{}, payroll.ErrInvalidAmount
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payroll.SalaryRecord{}, err
	}

	key := payroll.Key{EmployeeID: employeeID, Month: req.Month, Year: req.Year}
	return s.Repository.UpsertField(ctx, key, payroll.Field(req.Field), req.Amount)
}

func buildRow(emp employee.Employee, attRec attendance.Record, salRec payroll.SalaryRecord) payroll.Row {
	summary := attendance.Summarize(attRec.Days)
	return payroll.Row{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Designation:  emp.Designation,
		Attendance:   summary,
		Record:       salRec,
		Computation:  payroll.Compute(emp.BasicSalary, summary, salRec),
	}
}
