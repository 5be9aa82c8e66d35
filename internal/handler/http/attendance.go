package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
	"github.com/excelpro/staffledger-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Sheet(w http.ResponseWriter, r *http.Request)
	MarkDay(w http.ResponseWriter, r *http.Request)
	MarkTime(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Sheet implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Sheet(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodParams(w, r)
	if !ok {
		return
	}

	sheet, err := h.attendanceService.Sheet(r.Context(), month, year)
	if err != nil {
		slog.Error("Failed to build attendance sheet", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, sheet)
}

// MarkDay implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkDay(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodParams(w, r)
	if !ok {
		return
	}

	var req attendance.MarkDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.MarkDay(r.Context(), chi.URLParam(r, "employeeID"), month, year, req)
	if err != nil {
		slog.Error("Failed to mark attendance day", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", rec)
}

// MarkTime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkTime(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodParams(w, r)
	if !ok {
		return
	}

	var req attendance.MarkTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.MarkTime(r.Context(), chi.URLParam(r, "employeeID"), month, year, req)
	if err != nil {
		slog.Error("Failed to mark attendance time", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance times updated", rec)
}

// periodParams reads the {month}/{year} route segment pair. It writes the
// error response itself so callers just bail out on !ok.
func periodParams(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	month := chi.URLParam(r, "month")
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Year must be a number", nil)
		return "", 0, false
	}
	return month, year, true
}
