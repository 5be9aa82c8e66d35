package report

import "context"

type Service interface {
	Dashboard(ctx context.Context) (DashboardStats, error)
	BalanceSummary(ctx context.Context) ([]BalanceRow, error)
	MonthWise(ctx context.Context, year int) ([]MonthTotal, error)
	PaymentStatus(ctx context.Context, month string, year int) ([]PaymentStatusRow, error)

	// ExportWorkbook renders employees, attendance, salaries and the
	// payment ledger as one spreadsheet for offline backup.
	ExportWorkbook(ctx context.Context) ([]byte, error)
}
