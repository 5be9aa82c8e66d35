package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/domain/payroll"
	"github.com/excelpro/staffledger-backend-go/internal/domain/report"
	"github.com/excelpro/staffledger-backend-go/internal/domain/transaction"
	"github.com/excelpro/staffledger-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	employeeRepo    employee.Repository
	attendanceRepo  attendance.Repository
	salaryRepo      payroll.Repository
	transactionRepo transaction.Repository
	payrollService  payroll.Service
}

func NewReportService(
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	salaryRepo payroll.Repository,
	transactionRepo transaction.Repository,
	payrollService payroll.Service,
) report.Service {
	return &ReportServiceImpl{
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		salaryRepo:      salaryRepo,
		transactionRepo: transactionRepo,
		payrollService:  payrollService,
	}
}

// Dashboard implements report.Service.
func (s *ReportServiceImpl) Dashboard(ctx context.Context) (report.DashboardStats, error) {
	employees, err := s.employeeRepo.List(ctx, nil)
	if err != nil {
		return report.DashboardStats{}, fmt.Errorf("failed to list employees: %w", err)
	}

	stats := report.DashboardStats{TotalEmployees: len(employees)}
	for _, emp := range employees {
		if emp.Status == employee.StatusActive {
			stats.ActiveEmployees++
		} else {
			stats.InactiveEmployees++
		}
	}

	salaries, err := s.salaryRepo.List(ctx)
	if err != nil {
		return report.DashboardStats{}, fmt.Errorf("failed to list salary records: %w", err)
	}
	for _, rec := range salaries {
		stats.TotalPaidAmount = stats.TotalPaidAmount.Add(rec.PaidAmount)
		stats.TotalPF = stats.TotalPF.Add(rec.PF)
	}

	txs, err := s.transactionRepo.List(ctx, transaction.Filter{})
	if err != nil {
		return report.DashboardStats{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	stats.TransactionCount = len(txs)
	for _, tx := range txs {
		stats.TotalDisbursed = stats.TotalDisbursed.Add(tx.Amount)
	}

	return stats, nil
}

// BalanceSummary implements report.Service. Each employee's balance is the
// total marked paid on salary sheets minus the total actually disbursed
// through the ledger; a positive balance means money still owed.
func (s *ReportServiceImpl) BalanceSummary(ctx context.Context) ([]report.BalanceRow, error) {
	employees, err := s.employeeRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	salaries, err := s.salaryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	paidByEmployee := make(map[string]decimal.Decimal, len(employees))
	for _, rec := range salaries {
		paidByEmployee[rec.EmployeeID] = paidByEmployee[rec.EmployeeID].Add(rec.PaidAmount)
	}

	txs, err := s.transactionRepo.List(ctx, transaction.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	disbursedByEmployee := make(map[string]decimal.Decimal, len(employees))
	for _, tx := range txs {
		disbursedByEmployee[tx.EmployeeID] = disbursedByEmployee[tx.EmployeeID].Add(tx.Amount)
	}

	rows := make([]report.BalanceRow, 0, len(employees))
	for _, emp := range employees {
		paid := paidByEmployee[emp.ID]
		disbursed := disbursedByEmployee[emp.ID]
		rows = append(rows, report.BalanceRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			PaidAmount:   paid,
			Disbursed:    disbursed,
			Balance:      paid.Sub(disbursed),
		})
	}
	return rows, nil
}

// MonthWise implements report.Service. Twelve rows are always returned,
// zero-valued months included, so the chart axis stays stable. Each row's
// balance is the month's paid amount minus what was actually disbursed.
func (s *ReportServiceImpl) MonthWise(ctx context.Context, year int) ([]report.MonthTotal, error) {
	txs, err := s.transactionRepo.List(ctx, transaction.Filter{Year: &year})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	salaries, err := s.salaryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}

	byMonth := make(map[string]*report.MonthTotal, 12)
	rows := make([]report.MonthTotal, len(validator.Months))
	for i, month := range validator.Months {
		rows[i] = report.MonthTotal{Month: month}
		byMonth[month] = &rows[i]
	}

	for _, tx := range txs {
		total, ok := byMonth[tx.Month]
		if !ok {
			continue
		}
		total.Disbursed = total.Disbursed.Add(tx.Amount)
		total.TransactionCount++
	}

	for _, rec := range salaries {
		if rec.Year != year {
			continue
		}
		total, ok := byMonth[rec.Month]
		if !ok {
			continue
		}
		total.PaidAmount = total.PaidAmount.Add(rec.PaidAmount)
	}

	for i := range rows {
		rows[i].Balance = rows[i].PaidAmount.Sub(rows[i].Disbursed)
	}
	return rows, nil
}

// PaymentStatus implements report.Service.
func (s *ReportServiceImpl) PaymentStatus(ctx context.Context, month string, year int) ([]report.PaymentStatusRow, error) {
	sheet, err := s.payrollService.Sheet(ctx, month, year)
	if err != nil {
		return nil, err
	}

	txs, err := s.transactionRepo.List(ctx, transaction.Filter{Month: &month, Year: &year})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	disbursedByEmployee := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		disbursedByEmployee[tx.EmployeeID] = disbursedByEmployee[tx.EmployeeID].Add(tx.Amount)
	}

	rows := make([]report.PaymentStatusRow, 0, len(sheet.Rows))
	for _, line := range sheet.Rows {
		disbursed := disbursedByEmployee[line.EmployeeID]
		outstanding := line.Computation.NetPayable.Sub(disbursed)

		status := report.StatusUnpaid
		switch {
		case outstanding.LessThanOrEqual(decimal.Zero) && line.Computation.NetPayable.IsPositive():
			status = report.StatusPaid
		case disbursed.IsPositive():
			status = report.StatusPartial
		}

		rows = append(rows, report.PaymentStatusRow{
			EmployeeID:   line.EmployeeID,
			EmployeeName: line.EmployeeName,
			NetPayable:   line.Computation.NetPayable,
			Disbursed:    disbursed,
			Outstanding:  outstanding,
			Status:       status,
		})
	}
	return rows, nil
}
