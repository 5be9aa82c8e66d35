package holiday

// Type classifies the origin of a holiday entry.
type Type string

const (
	TypeCompany  Type = "Company"
	TypeNational Type = "National"
	TypeFestival Type = "Festival"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeCompany, TypeNational, TypeFestival:
		return true
	}
	return false
}

// Holiday is a dated reference entry with no derived invariants.
type Holiday struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Type   Type   `json:"type"`
}
