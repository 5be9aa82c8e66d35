package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines data access for monthly salary records. Records are
// unique by (employeeId, month, year); UpsertField constructs the
// default-valued record when the key is absent so default construction is
// not scattered across call sites.
type Repository interface {
	// GetByKey retrieves the record for a key; ErrRecordNotFound when no
	// field has ever been written for that month.
	GetByKey(ctx context.Context, key Key) (SalaryRecord, error)

	// ListByPeriod retrieves every employee's record for one (month, year).
	ListByPeriod(ctx context.Context, month string, year int) ([]SalaryRecord, error)

	// List retrieves all records.
	List(ctx context.Context) ([]SalaryRecord, error)

	// UpsertField writes one field, creating the record with its documented
	// defaults first if the key is absent. Exactly one record exists per
	// key afterwards.
	UpsertField(ctx context.Context, key Key, field Field, value decimal.Decimal) (SalaryRecord, error)
}
