package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/excelpro/staffledger-backend-go/internal/domain/report"
	"github.com/excelpro/staffledger-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	BalanceSummary(w http.ResponseWriter, r *http.Request)
	MonthWise(w http.ResponseWriter, r *http.Request)
	PaymentStatus(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Dashboard implements ReportHandler.
func (h *ReportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		slog.Error("Failed to build dashboard stats", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// BalanceSummary implements ReportHandler.
func (h *ReportHandlerImpl) BalanceSummary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.BalanceSummary(r.Context())
	if err != nil {
		slog.Error("Failed to build balance summary", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// MonthWise implements ReportHandler. Defaults to the current year.
func (h *ReportHandlerImpl) MonthWise(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Year must be a number", nil)
			return
		}
		year = parsed
	}

	rows, err := h.reportService.MonthWise(r.Context(), year)
	if err != nil {
		slog.Error("Failed to build month-wise summary", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// PaymentStatus implements ReportHandler.
func (h *ReportHandlerImpl) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodParams(w, r)
	if !ok {
		return
	}

	rows, err := h.reportService.PaymentStatus(r.Context(), month, year)
	if err != nil {
		slog.Error("Failed to build payment status report", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Export implements ReportHandler. Streams the backup workbook.
func (h *ReportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	raw, err := h.reportService.ExportWorkbook(r.Context())
	if err != nil {
		slog.Error("Failed to export workbook", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("staffledger-backup-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(raw)))
	_, _ = w.Write(raw)
}
