package payroll

import "context"

type Service interface {
	// Sheet derives the full payroll table for a month: every active
	// employee's attendance summary, stored adjustments and computation.
	Sheet(ctx context.Context, month string, year int) (SheetResponse, error)

	// EmployeeRow derives a single employee's line, as rendered on a
	// payslip. Missing salary and attendance records are valid zero
	// states, not errors.
	EmployeeRow(ctx context.Context, employeeID, month string, year int) (Row, error)

	// UpdateField overwrites one adjustment field, creating the month's
	// record with defaults on the first write.
	UpdateField(ctx context.Context, employeeID string, req UpdateFieldRequest) (SalaryRecord, error)
}
