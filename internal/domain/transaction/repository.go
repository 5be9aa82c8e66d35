package transaction

import "context"

// Filter narrows ledger listings. Nil fields match everything.
type Filter struct {
	EmployeeID *string
	Month      *string
	Year       *int
	Type       *Type
}

// Repository defines data access for the payment ledger. The ledger is
// append-only; the interface deliberately has no update or delete.
type Repository interface {
	// Append records a new disbursement at the head of the ledger.
	Append(ctx context.Context, tx Transaction) (Transaction, error)

	// GetByID retrieves one transaction; ErrTransactionNotFound when absent.
	GetByID(ctx context.Context, id string) (Transaction, error)

	// List retrieves transactions matching the filter, newest first.
	List(ctx context.Context, filter Filter) ([]Transaction, error)
}
