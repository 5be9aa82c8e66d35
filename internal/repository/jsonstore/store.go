// Package jsonstore persists the six application collections as whole JSON
// documents under a data directory, mirroring the original deployment's
// local key-value storage: everything is loaded once at startup and the
// affected document is rewritten in full after every mutation.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
	"github.com/excelpro/staffledger-backend-go/internal/domain/company"
	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/domain/holiday"
	"github.com/excelpro/staffledger-backend-go/internal/domain/payroll"
	"github.com/excelpro/staffledger-backend-go/internal/domain/transaction"
	"github.com/excelpro/staffledger-backend-go/internal/fixtures"
)

// Document file names keep the original storage keys.
const (
	companyFile      = "company_profile.json"
	employeesFile    = "employees_data.json"
	attendanceFile   = "attendance_data.json"
	salariesFile     = "salary_data.json"
	holidaysFile     = "holidays_data.json"
	transactionsFile = "transactions_data.json"
)

// Store owns the in-memory collections and their on-disk documents. The
// mutex serializes repository access: the logical actor is a single browser
// tab, but the HTTP server handles requests concurrently.
type Store struct {
	mu  sync.Mutex
	dir string

	company      company.Profile
	employees    []employee.Employee
	attendance   []attendance.Record
	salaries     []payroll.SalaryRecord
	holidays     []holiday.Holiday
	transactions []transaction.Transaction
}

// Open loads all six documents from dir, creating it if needed. A missing
// document yields its seed/empty default; a document that exists but does
// not parse fails Open, so a corrupt file is surfaced instead of being
// silently replaced on the next save.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		dir:     dir,
		company: fixtures.DefaultCompanyProfile(),
	}

	for _, doc := range []struct {
		file string
		dest any
	}{
		{companyFile, &s.company},
		{employeesFile, &s.employees},
		{attendanceFile, &s.attendance},
		{salariesFile, &s.salaries},
		{holidaysFile, &s.holidays},
		{transactionsFile, &s.transactions},
	} {
		if err := s.load(doc.file, doc.dest); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) load(file string, dest any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, file))
	if errors.Is(err, fs.ErrNotExist) {
		return nil // default stands
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return nil
}

// persist rewrites one document atomically: marshal, write a sibling temp
// file, rename over the original. Callers hold s.mu.
func (s *Store) persist(file string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", file, err)
	}

	path := filepath.Join(s.dir, file)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", file, err)
	}
	return nil
}
