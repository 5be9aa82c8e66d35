package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
)

// The per-day rate always divides by 30, whatever the calendar says about
// the month. Established payroll policy; changing it needs product sign-off.
var thirtyDays = decimal.NewFromInt(30)

var half = decimal.New(5, -1)

// Computation is the derived payroll figure set for one employee-month.
// Net payable is deliberately not clamped at zero: an advance larger than
// the month's earnings surfaces as a negative figure for the caller to flag.
type Computation struct {
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	PerDayRate      decimal.Decimal `json:"per_day_rate"`
	DeductibleDays  decimal.Decimal `json:"deductible_days"`
	LeaveCharge     decimal.Decimal `json:"leave_charge"`
	GrossEarnings   decimal.Decimal `json:"gross_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	AdvancePaid     decimal.Decimal `json:"advance_paid"`
	NetPayable      decimal.Decimal `json:"net_payable"`
}

// Compute derives the month's payroll figures from the basic salary, the
// aggregated attendance and the salary record. Pure: no lookups, no writes,
// identical output for identical input.
//
// Allowed leave offsets absences (half-days weighted 0.5) before any charge
// applies; unused allowance never carries a credit.
func Compute(basicSalary decimal.Decimal, att attendance.Summary, rec SalaryRecord) Computation {
	perDay := basicSalary.Div(thirtyDays)

	deductible := decimal.NewFromInt(int64(att.Absent)).
		Add(decimal.NewFromInt(int64(att.HalfDay)).Mul(half)).
		Sub(rec.AllowedLeave)
	if deductible.IsNegative() {
		deductible = decimal.Zero
	}

	leaveCharge := deductible.Mul(perDay)

	gross := basicSalary.Sub(leaveCharge).
		Add(rec.DA).
		Add(rec.TA).
		Add(rec.HRA).
		Add(rec.MA).
		Add(rec.Bonus).
		Add(rec.OtherAllowance)

	deductions := rec.PF.
		Add(rec.UniformCharge).
		Add(rec.LateComingCharge).
		Add(rec.OtherCharge)

	return Computation{
		BasicSalary:     basicSalary,
		PerDayRate:      perDay,
		DeductibleDays:  deductible,
		LeaveCharge:     leaveCharge,
		GrossEarnings:   gross,
		TotalDeductions: deductions,
		AdvancePaid:     rec.AdvancePaid,
		NetPayable:      gross.Sub(deductions).Sub(rec.AdvancePaid),
	}
}
