package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/domain/payroll"
	"github.com/excelpro/staffledger-backend-go/internal/domain/transaction"
)

// ExportWorkbook implements report.Service. The workbook carries the four
// collections a fresh install needs to rebuild its books: employees,
// attendance, salary adjustments and the payment ledger.
func (s *ReportServiceImpl) ExportWorkbook(ctx context.Context) ([]byte, error) {
	employees, err := s.employeeRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	attRecords, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	salaries, err := s.salaryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	txs, err := s.transactionRepo.List(ctx, transaction.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeEmployeeSheet(f, employees); err != nil {
		return nil, err
	}
	if err := writeAttendanceSheet(f, attRecords); err != nil {
		return nil, err
	}
	if err := writeSalarySheet(f, salaries); err != nil {
		return nil, err
	}
	if err := writeTransactionSheet(f, txs); err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeEmployeeSheet(f *excelize.File, employees []employee.Employee) error {
	const sheet = "Employees"
	header := []string{
		"ID", "Name", "Designation", "Gender", "Basic Salary", "Joining Date",
		"Contact", "Email", "Aadhaar", "Bank", "Account No", "IFSC",
		"Shift", "Work Location", "Status", "Status Changed",
	}
	rows := make([][]any, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, []any{
			emp.ID, emp.Name, emp.Designation, string(emp.Gender),
			emp.BasicSalary.InexactFloat64(), emp.JoiningDate,
			emp.Contact, emp.Email, emp.Aadhaar, emp.BankName, emp.AccountNo,
			emp.IFSC, string(emp.Shift), emp.WorkLocation,
			string(emp.Status), emp.StatusChangeDate,
		})
	}
	return writeSheet(f, sheet, header, rows)
}

// writeAttendanceSheet flattens the sparse day maps: one row per marked
// day, ordered by day within each record.
func writeAttendanceSheet(f *excelize.File, records []attendance.Record) error {
	const sheet = "Attendance"
	header := []string{"Employee ID", "Month", "Year", "Day", "Status", "In", "Out"}

	var rows [][]any
	for _, rec := range records {
		days := make([]int, 0, len(rec.Days))
		for day := range rec.Days {
			days = append(days, day)
		}
		sort.Ints(days)
		for _, day := range days {
			t := rec.Times[day]
			rows = append(rows, []any{
				rec.EmployeeID, rec.Month, rec.Year, day,
				string(rec.Days[day]), t.In, t.Out,
			})
		}
	}
	return writeSheet(f, sheet, header, rows)
}

func writeSalarySheet(f *excelize.File, salaries []payroll.SalaryRecord) error {
	const sheet = "Salaries"
	header := []string{
		"Employee ID", "Month", "Year", "DA", "TA", "HRA", "MA", "Bonus",
		"Other Allowance", "PF", "Uniform Charge", "Late Coming Charge",
		"Other Charge", "Advance Paid", "Previous Balance", "Paid Amount",
		"Allowed Leave", "Holiday", "Days Late",
	}
	rows := make([][]any, 0, len(salaries))
	for _, rec := range salaries {
		rows = append(rows, []any{
			rec.EmployeeID, rec.Month, rec.Year,
			rec.DA.InexactFloat64(), rec.TA.InexactFloat64(),
			rec.HRA.InexactFloat64(), rec.MA.InexactFloat64(),
			rec.Bonus.InexactFloat64(), rec.OtherAllowance.InexactFloat64(),
			rec.PF.InexactFloat64(), rec.UniformCharge.InexactFloat64(),
			rec.LateComingCharge.InexactFloat64(), rec.OtherCharge.InexactFloat64(),
			rec.AdvancePaid.InexactFloat64(), rec.PreviousBalance.InexactFloat64(),
			rec.PaidAmount.InexactFloat64(),
			rec.AllowedLeave.InexactFloat64(), rec.Holiday.InexactFloat64(),
			rec.DaysLate.InexactFloat64(),
		})
	}
	return writeSheet(f, sheet, header, rows)
}

func writeTransactionSheet(f *excelize.File, txs []transaction.Transaction) error {
	const sheet = "Transactions"
	header := []string{"ID", "Employee ID", "Date", "Voucher No", "Type", "Mode", "Amount", "Month", "Year"}
	rows := make([][]any, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []any{
			tx.ID, tx.EmployeeID, tx.Date.Format("2006-01-02"), tx.VoucherNo,
			string(tx.Type), string(tx.Mode), tx.Amount.InexactFloat64(),
			tx.Month, tx.Year,
		})
	}
	return writeSheet(f, sheet, header, rows)
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for r, values := range rows {
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	_ = f.SetCellStyle(sheet, "A1", last, style)

	return nil
}
