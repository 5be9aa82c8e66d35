package jsonstore

import (
	"context"

	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, e := range r.store.employees {
		if e.ID == emp.ID {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
	}

	r.store.employees = append(r.store.employees, emp)
	if err := r.store.persist(employeesFile, r.store.employees); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, e := range r.store.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) List(ctx context.Context, status *employee.Status) ([]employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]employee.Employee, 0, len(r.store.employees))
	for _, e := range r.store.employees {
		if status != nil && e.Status != *status {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, e := range r.store.employees {
		if e.ID == emp.ID {
			r.store.employees[i] = emp
			if err := r.store.persist(employeesFile, r.store.employees); err != nil {
				return employee.Employee{}, err
			}
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, e := range r.store.employees {
		if e.ID == id {
			r.store.employees = append(r.store.employees[:i], r.store.employees[i+1:]...)
			return r.store.persist(employeesFile, r.store.employees)
		}
	}
	return employee.ErrEmployeeNotFound
}
