package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/excelpro/staffledger-backend-go/internal/domain/payroll"
	"github.com/excelpro/staffledger-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Sheet(w http.ResponseWriter, r *http.Request)
	EmployeeRow(w http.ResponseWriter, r *http.Request)
	UpdateField(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Sheet implements PayrollHandler.
func (h *PayrollHandlerImpl) Sheet(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodParams(w, r)
	if !ok {
		return
	}

	sheet, err := h.payrollService.Sheet(r.Context(), month, year)
	if err != nil {
		slog.Error("Failed to build payroll sheet", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, sheet)
}

// EmployeeRow implements PayrollHandler.
func (h *PayrollHandlerImpl) EmployeeRow(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodParams(w, r)
	if !ok {
		return
	}

	row, err := h.payrollService.EmployeeRow(r.Context(), chi.URLParam(r, "employeeID"), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, row)
}

// UpdateField implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateField(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.payrollService.UpdateField(r.Context(), chi.URLParam(r, "employeeID"), req)
	if err != nil {
		slog.Error("Failed to update salary field", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record updated", rec)
}
