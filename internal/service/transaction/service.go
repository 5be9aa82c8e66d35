package transaction

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/domain/transaction"
)

type TransactionServiceImpl struct {
	transaction.Repository
	employeeRepo employee.Repository

	// now is swappable for deterministic voucher numbers in tests.
	now func() time.Time
}

func NewTransactionService(repo transaction.Repository, employeeRepo employee.Repository) transaction.Service {
	return &TransactionServiceImpl{
		Repository:   repo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// Record implements transaction.Service.
func (s *TransactionServiceImpl) Record(ctx context.Context, req transaction.RecordTransactionRequest) (transaction.Transaction, error) {
	if err := req.Validate(); err != nil {
		return transaction.Transaction{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return transaction.Transaction{}, err
	}

	date := s.now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return transaction.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
		}
		date = parsed
	}

	voucher := req.VoucherNo
	if voucher == "" {
		voucher = s.GenerateVoucher()
	}

	tx := transaction.Transaction{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		Date:        date,
		VoucherNo:   voucher,
		Type:        transaction.Type(req.Type),
		Mode:        transaction.Mode(req.Mode),
		Amount:      req.Amount,
		Month:       req.Month,
		Year:        req.Year,
		ReferenceID: req.ReferenceID,
	}

	return s.Repository.Append(ctx, tx)
}

// GenerateVoucher implements transaction.Service. Voucher numbers are the
// "V-" prefix plus the last six digits of the current unix millisecond
// clock, matching the numbers already present in existing ledgers.
func (s *TransactionServiceImpl) GenerateVoucher() string {
	millis := strconv.FormatInt(s.now().UnixMilli(), 10)
	return "V-" + millis[len(millis)-6:]
}
