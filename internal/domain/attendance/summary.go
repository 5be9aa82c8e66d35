package attendance

import "github.com/shopspring/decimal"

var half = decimal.New(5, -1)

// Summary holds the per-month status counts for one employee.
type Summary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	HalfDay int `json:"half_day"`
	Leave   int `json:"leave"`
	Holiday int `json:"holiday"`
	Off     int `json:"off"`

	// TotalWorking credits half-days at 0.5 and counts leave, holiday and
	// off days as full working-equivalent days. Business policy: every
	// non-absence status counts toward presence for salary purposes.
	TotalWorking decimal.Decimal `json:"total_working"`
}

// Summarize folds a sheet's day mapping into status counts. Unrecognized or
// unset cells increment nothing. A nil map yields the zero summary, so a
// missing record is a valid zero state rather than an error.
func Summarize(days map[int]Status) Summary {
	var s Summary
	for _, status := range days {
		switch status {
		case StatusPresent:
			s.Present++
		case StatusAbsent:
			s.Absent++
		case StatusHalfDay:
			s.HalfDay++
		case StatusLeave:
			s.Leave++
		case StatusHoliday:
			s.Holiday++
		case StatusOff:
			s.Off++
		}
	}
	s.TotalWorking = decimal.NewFromInt(int64(s.Present)).
		Add(decimal.NewFromInt(int64(s.HalfDay)).Mul(half)).
		Add(decimal.NewFromInt(int64(s.Leave))).
		Add(decimal.NewFromInt(int64(s.Holiday))).
		Add(decimal.NewFromInt(int64(s.Off)))
	return s
}

// Marked returns how many distinct days carry a recognized status.
func (s Summary) Marked() int {
	return s.Present + s.Absent + s.HalfDay + s.Leave + s.Holiday + s.Off
}
