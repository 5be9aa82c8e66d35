package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *employee.Status
	if s := r.URL.Query().Get("status"); s != "" {
		parsed := employee.Status(s)
		if parsed != employee.StatusActive && parsed != employee.StatusInactive {
			response.BadRequest(w, "status must be 'Active' or 'Inactive'", nil)
			return
		}
		status = &parsed
	}

	employees, err := h.employeeService.List(r.Context(), status)
	if err != nil {
		slog.Error("Failed to list employees", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.SaveEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create employee", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.SaveEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.employeeService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Failed to update employee", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// UpdateStatus implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.employeeService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Failed to update employee status", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee status updated", updated)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Failed to delete employee", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// UploadPhoto implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Field 'photo' is required", nil)
		return
	}
	defer file.Close()

	updated, err := h.employeeService.AttachPhoto(
		r.Context(),
		chi.URLParam(r, "id"),
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		slog.Error("Failed to attach photo", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Photo uploaded", updated)
}
