package employee

import "context"

// Repository defines data access for the employee registry. The registry is
// the sole owner of employee records; callers work on snapshots.
type Repository interface {
	// Create appends a new employee; ErrEmployeeIDExists on duplicate id.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves one employee; ErrEmployeeNotFound when absent.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees, optionally filtered by status.
	List(ctx context.Context, status *Status) ([]Employee, error)

	// Update replaces the stored record with the same id.
	Update(ctx context.Context, emp Employee) (Employee, error)

	// Delete removes the employee from the registry. Related attendance,
	// salary and transaction records are left untouched; referential
	// integrity is deliberately not enforced.
	Delete(ctx context.Context, id string) error
}
