package jsonstore

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/excelpro/staffledger-backend-go/internal/domain/payroll"
)

type SalaryRepository struct {
	store *Store
}

func NewSalaryRepository(store *Store) *SalaryRepository {
	return &SalaryRepository{store: store}
}

func (r *SalaryRepository) GetByKey(ctx context.Context, key payroll.Key) (payroll.SalaryRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if i := r.indexOf(key); i >= 0 {
		return r.store.salaries[i], nil
	}
	return payroll.SalaryRecord{}, payroll.ErrRecordNotFound
}

func (r *SalaryRepository) ListByPeriod(ctx context.Context, month string, year int) ([]payroll.SalaryRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []payroll.SalaryRecord
	for _, rec := range r.store.salaries {
		if rec.Month == month && rec.Year == year {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *SalaryRepository) List(ctx context.Context) ([]payroll.SalaryRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]payroll.SalaryRecord, len(r.store.salaries))
	copy(result, r.store.salaries)
	return result, nil
}

func (r *SalaryRepository) UpsertField(ctx context.Context, key payroll.Key, field payroll.Field, value decimal.Decimal) (payroll.SalaryRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexOf(key)
	if i < 0 {
		r.store.salaries = append(r.store.salaries, payroll.NewSalaryRecord(key))
		i = len(r.store.salaries) - 1
	}

	if err := r.store.salaries[i].Set(field, value); err != nil {
		return payroll.SalaryRecord{}, err
	}
	if err := r.store.persist(salariesFile, r.store.salaries); err != nil {
		return payroll.SalaryRecord{}, err
	}
	return r.store.salaries[i], nil
}

// indexOf finds the unique record for a key. Callers hold the store lock.
func (r *SalaryRepository) indexOf(key payroll.Key) int {
	for i, rec := range r.store.salaries {
		if rec.EmployeeID == key.EmployeeID && rec.Month == key.Month && rec.Year == key.Year {
			return i
		}
	}
	return -1
}
