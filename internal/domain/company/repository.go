package company

import "context"

// Repository defines access to the single company profile document.
type Repository interface {
	// Get retrieves the profile; never fails, the store seeds a default.
	Get(ctx context.Context) (Profile, error)

	// Save replaces the profile wholesale.
	Save(ctx context.Context, p Profile) (Profile, error)
}
