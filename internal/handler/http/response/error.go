package response

import (
	"errors"
	"net/http"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/domain/holiday"
	"github.com/excelpro/staffledger-backend-go/internal/domain/payroll"
	"github.com/excelpro/staffledger-backend-go/internal/domain/transaction"
	"github.com/excelpro/staffledger-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee id already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrUnknownField):
		BadRequest(w, "Unknown salary field", nil)
	case errors.Is(err, payroll.ErrInvalidAmount):
		BadRequest(w, "Amount must be non-negative", nil)

	// Ledger domain errors
	case errors.Is(err, transaction.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
