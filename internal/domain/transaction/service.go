package transaction

import "context"

type Service interface {
	// Record appends a disbursement, assigning an id and, when the
	// request leaves it blank, a generated voucher number.
	Record(ctx context.Context, req RecordTransactionRequest) (Transaction, error)

	GetByID(ctx context.Context, id string) (Transaction, error)
	List(ctx context.Context, filter Filter) ([]Transaction, error)

	// GenerateVoucher returns a fresh voucher number for the entry form.
	GenerateVoucher() string
}
