package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/excelpro/staffledger-backend-go/internal/domain/transaction"
	"github.com/excelpro/staffledger-backend-go/internal/handler/http/response"
)

type TransactionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Record(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	NextVoucher(w http.ResponseWriter, r *http.Request)
}

type TransactionHandlerImpl struct {
	transactionService transaction.Service
}

func NewTransactionHandler(transactionService transaction.Service) TransactionHandler {
	return &TransactionHandlerImpl{transactionService: transactionService}
}

// List implements TransactionHandler. All filters come from the query
// string and combine with AND.
func (h *TransactionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter transaction.Filter

	q := r.URL.Query()
	if v := q.Get("employeeId"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("month"); v != "" {
		filter.Month = &v
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Year must be a number", nil)
			return
		}
		filter.Year = &year
	}
	if v := q.Get("type"); v != "" {
		parsed := transaction.Type(v)
		if !parsed.IsValid() {
			response.BadRequest(w, "Unknown transaction type", nil)
			return
		}
		filter.Type = &parsed
	}

	txs, err := h.transactionService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list transactions", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, txs)
}

// Record implements TransactionHandler.
func (h *TransactionHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req transaction.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tx, err := h.transactionService.Record(r.Context(), req)
	if err != nil {
		slog.Error("Failed to record transaction", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded", tx)
}

// GetByID implements TransactionHandler.
func (h *TransactionHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	tx, err := h.transactionService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tx)
}

// NextVoucher implements TransactionHandler.
func (h *TransactionHandlerImpl) NextVoucher(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"voucherNo": h.transactionService.GenerateVoucher()})
}
