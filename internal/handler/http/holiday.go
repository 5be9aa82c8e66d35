package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/excelpro/staffledger-backend-go/internal/domain/holiday"
	"github.com/excelpro/staffledger-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.Service
}

func NewHolidayHandler(holidayService holiday.Service) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var year int
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Year must be a number", nil)
			return
		}
		year = parsed
	}

	holidays, err := h.holidayService.List(r.Context(), year)
	if err != nil {
		slog.Error("Failed to list holidays", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Add implements HolidayHandler.
func (h *HolidayHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req holiday.AddHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	added, err := h.holidayService.Add(r.Context(), req)
	if err != nil {
		slog.Error("Failed to add holiday", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday added", added)
}

// Remove implements HolidayHandler.
func (h *HolidayHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.Remove(r.Context(), chi.URLParam(r, "date")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday removed", nil)
}
