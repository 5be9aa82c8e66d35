package payroll

import "github.com/shopspring/decimal"

// Key identifies the unique salary record of one employee for one month.
type Key struct {
	EmployeeID string
	Month      string
	Year       int
}

// SalaryRecord holds the manually entered per-month adjustments for one
// employee. Every field is independently overwritable through the
// single-field upsert; none of the derived payroll figures are stored here.
type SalaryRecord struct {
	EmployeeID string `json:"employeeId"`
	Month      string `json:"month"`
	Year       int    `json:"year"`

	// Earnings
	DA             decimal.Decimal `json:"da"`
	TA             decimal.Decimal `json:"ta"`
	HRA            decimal.Decimal `json:"hra"`
	MA             decimal.Decimal `json:"ma"`
	Bonus          decimal.Decimal `json:"bonus"`
	OtherAllowance decimal.Decimal `json:"otherAllowance"`

	// Deductions
	PF               decimal.Decimal `json:"pf"`
	UniformCharge    decimal.Decimal `json:"uniformCharge"`
	LateComingCharge decimal.Decimal `json:"lateComingCharge"`
	OtherCharge      decimal.Decimal `json:"otherCharge"`

	// Ledger fields
	AdvancePaid     decimal.Decimal `json:"advancePaid"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`

	// Attendance policy fields
	AllowedLeave decimal.Decimal `json:"allowedLeave"`
	Holiday      decimal.Decimal `json:"holiday"`
	DaysLate     decimal.Decimal `json:"daysLate"`
}

// NewSalaryRecord builds the default-valued record created lazily on the
// first field write for a month: one allowed leave day, four holidays,
// everything else zero.
func NewSalaryRecord(key Key) SalaryRecord {
	return SalaryRecord{
		EmployeeID:   key.EmployeeID,
		Month:        key.Month,
		Year:         key.Year,
		AllowedLeave: decimal.NewFromInt(1),
		Holiday:      decimal.NewFromInt(4),
	}
}

// Key returns the composite identifier of the record.
func (r SalaryRecord) Key() Key {
	return Key{EmployeeID: r.EmployeeID, Month: r.Month, Year: r.Year}
}

// Field names an adjustment field addressable by the single-field upsert.
// Values match the JSON keys the sheet edits.
type Field string

const (
	FieldDA               Field = "da"
	FieldTA               Field = "ta"
	FieldHRA              Field = "hra"
	FieldMA               Field = "ma"
	FieldBonus            Field = "bonus"
	FieldOtherAllowance   Field = "otherAllowance"
	FieldPF               Field = "pf"
	FieldUniformCharge    Field = "uniformCharge"
	FieldLateComingCharge Field = "lateComingCharge"
	FieldOtherCharge      Field = "otherCharge"
	FieldAdvancePaid      Field = "advancePaid"
	FieldPreviousBalance  Field = "previousBalance"
	FieldPaidAmount       Field = "paidAmount"
	FieldAllowedLeave     Field = "allowedLeave"
	FieldHoliday          Field = "holiday"
	FieldDaysLate         Field = "daysLate"
)

// Set overwrites one field by name. Unknown names return ErrUnknownField so
// callers never silently drop an edit.
func (r *SalaryRecord) Set(field Field, value decimal.Decimal) error {
	switch field {
	case FieldDA:
		r.DA = value
	case FieldTA:
		r.TA = value
	case FieldHRA:
		r.HRA = value
	case FieldMA:
		r.MA = value
	case FieldBonus:
		r.Bonus = value
	case FieldOtherAllowance:
		r.OtherAllowance = value
	case FieldPF:
		r.PF = value
	case FieldUniformCharge:
		r.UniformCharge = value
	case FieldLateComingCharge:
		r.LateComingCharge = value
	case FieldOtherCharge:
		r.OtherCharge = value
	case FieldAdvancePaid:
		r.AdvancePaid = value
	case FieldPreviousBalance:
		r.PreviousBalance = value
	case FieldPaidAmount:
		r.PaidAmount = value
	case FieldAllowedLeave:
		r.AllowedLeave = value
	case FieldHoliday:
		r.Holiday = value
	case FieldDaysLate:
		r.DaysLate = value
	default:
		return ErrUnknownField
	}
	return nil
}
