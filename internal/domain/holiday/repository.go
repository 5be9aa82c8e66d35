package holiday

import "context"

// Repository defines data access for the holiday registry.
type Repository interface {
	// List retrieves all holidays; when year > 0 only entries dated in
	// that year.
	List(ctx context.Context, year int) ([]Holiday, error)

	// Add appends a holiday entry.
	Add(ctx context.Context, h Holiday) (Holiday, error)

	// Remove deletes the entry with the given date;
	// ErrHolidayNotFound when absent.
	Remove(ctx context.Context, date string) error
}
