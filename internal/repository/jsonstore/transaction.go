package jsonstore

import (
	"context"

	"github.com/excelpro/staffledger-backend-go/internal/domain/transaction"
)

type TransactionRepository struct {
	store *Store
}

func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// Append prepends the transaction so the ledger stays newest first on disk,
// matching the order it is rendered in.
func (r *TransactionRepository) Append(ctx context.Context, tx transaction.Transaction) (transaction.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.transactions = append([]transaction.Transaction{tx}, r.store.transactions...)
	if err := r.store.persist(transactionsFile, r.store.transactions); err != nil {
		return transaction.Transaction{}, err
	}
	return tx, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (transaction.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, tx := range r.store.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return transaction.Transaction{}, transaction.ErrTransactionNotFound
}

func (r *TransactionRepository) List(ctx context.Context, filter transaction.Filter) ([]transaction.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []transaction.Transaction
	for _, tx := range r.store.transactions {
		if filter.EmployeeID != nil && tx.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Month != nil && tx.Month != *filter.Month {
			continue
		}
		if filter.Year != nil && tx.Year != *filter.Year {
			continue
		}
		if filter.Type != nil && tx.Type != *filter.Type {
			continue
		}
		result = append(result, tx)
	}
	return result, nil
}
