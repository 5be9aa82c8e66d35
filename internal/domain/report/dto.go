package report

import "github.com/shopspring/decimal"

// DashboardStats is the headline figures shown on the landing screen.
type DashboardStats struct {
	TotalEmployees    int             `json:"total_employees"`
	ActiveEmployees   int             `json:"active_employees"`
	InactiveEmployees int             `json:"inactive_employees"`
	TotalPaidAmount   decimal.Decimal `json:"total_paid_amount"`
	TotalPF           decimal.Decimal `json:"total_pf"`
	TotalDisbursed    decimal.Decimal `json:"total_disbursed"`
	TransactionCount  int             `json:"transaction_count"`
}

// BalanceRow is one employee's running ledger position across all months:
// the sum of amounts marked paid on salary sheets minus the sum of recorded
// disbursements.
type BalanceRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	Disbursed    decimal.Decimal `json:"disbursed"`
	Balance      decimal.Decimal `json:"balance"`
}

// MonthTotal aggregates ledger activity for one calendar month of a year:
// amounts marked paid on salary sheets, amounts actually disbursed, and
// the balance still owed for that month.
type MonthTotal struct {
	Month            string          `json:"month"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	Disbursed        decimal.Decimal `json:"disbursed"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transaction_count"`
}

// PaymentStatus classifies how much of an employee's net payable for a
// month has been disbursed.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "Paid"
	StatusPartial PaymentStatus = "Partial"
	StatusUnpaid  PaymentStatus = "Unpaid"
)

// PaymentStatusRow compares one employee's computed net payable for a month
// with what the ledger shows disbursed for that month.
type PaymentStatusRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	NetPayable   decimal.Decimal `json:"net_payable"`
	Disbursed    decimal.Decimal `json:"disbursed"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	Status       PaymentStatus   `json:"status"`
}
