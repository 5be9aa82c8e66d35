package attendance

import "context"

// Repository defines data access for monthly attendance sheets. Records are
// unique by (employeeId, month, year) and are created lazily: the upsert
// operations construct an empty record on the first cell write for a month.
type Repository interface {
	// GetByKey retrieves the record for a key; ErrRecordNotFound when no
	// cell has ever been written for that month.
	GetByKey(ctx context.Context, key Key) (Record, error)

	// ListByPeriod retrieves every employee's record for one (month, year).
	ListByPeriod(ctx context.Context, month string, year int) ([]Record, error)

	// List retrieves all records.
	List(ctx context.Context) ([]Record, error)

	// UpsertDayStatus writes one day cell, creating the record if absent.
	UpsertDayStatus(ctx context.Context, key Key, day int, status Status) (Record, error)

	// UpsertDayTime writes the in/out clock strings for one day cell,
	// creating the record if absent.
	UpsertDayTime(ctx context.Context, key Key, day int, t DayTime) (Record, error)
}
