package company

// Profile is the single company configuration record. There is exactly one;
// the store seeds a default when none has been saved yet.
type Profile struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Address        string  `json:"address"`
	Contact        string  `json:"contact"`
	LogoURL        string  `json:"logo"`
	Email          string  `json:"email"`
	DiseCode       *string `json:"diseCode,omitempty"`
	Session        *string `json:"session,omitempty"`
	LocationHeader *string `json:"locationHeader,omitempty"`
}
