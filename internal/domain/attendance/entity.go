package attendance

// Status is the single-letter day code marked on the attendance sheet.
type Status string

const (
	StatusPresent Status = "P"
	StatusAbsent  Status = "A"
	StatusHalfDay Status = "HD"
	StatusLeave   Status = "L"
	StatusOff     Status = "OFF"
	StatusHoliday Status = "H"
	StatusUnset   Status = ""
)

// IsValid reports whether s is one of the recognized day codes. The empty
// code is valid: it clears a cell back to unset.
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave, StatusOff, StatusHoliday, StatusUnset:
		return true
	}
	return false
}

// DayTime holds the optional in/out clock strings for one day cell.
type DayTime struct {
	In  string `json:"in"`
	Out string `json:"out"`
}

// Key identifies the unique attendance record of one employee for one
// calendar month.
type Key struct {
	EmployeeID string
	Month      string
	Year       int
}

// Record is one employee's sheet for one month: a sparse day-of-month to
// status mapping. A missing day means unset, not absent.
type Record struct {
	EmployeeID string          `json:"employeeId"`
	Month      string          `json:"month"`
	Year       int             `json:"year"`
	Days       map[int]Status  `json:"days"`
	Times      map[int]DayTime `json:"times,omitempty"`
}

// NewRecord builds an empty sheet for a key. Records are created lazily on
// the first cell write for the month.
func NewRecord(key Key) Record {
	return Record{
		EmployeeID: key.EmployeeID,
		Month:      key.Month,
		Year:       key.Year,
		Days:       make(map[int]Status),
	}
}

// Key returns the composite identifier of the record.
func (r Record) Key() Key {
	return Key{EmployeeID: r.EmployeeID, Month: r.Month, Year: r.Year}
}
