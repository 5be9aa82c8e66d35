package jsonstore

import (
	"context"

	"github.com/excelpro/staffledger-backend-go/internal/domain/company"
)

type CompanyRepository struct {
	store *Store
}

func NewCompanyRepository(store *Store) *CompanyRepository {
	return &CompanyRepository{store: store}
}

func (r *CompanyRepository) Get(ctx context.Context) (company.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.company, nil
}

func (r *CompanyRepository) Save(ctx context.Context, p company.Profile) (company.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.company = p
	if err := r.store.persist(companyFile, r.store.company); err != nil {
		return company.Profile{}, err
	}
	return r.store.company, nil
}
