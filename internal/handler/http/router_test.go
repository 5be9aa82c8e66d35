package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelpro/staffledger-backend-go/internal/pkg/storage"
	"github.com/excelpro/staffledger-backend-go/internal/repository/jsonstore"
	attendanceService "github.com/excelpro/staffledger-backend-go/internal/service/attendance"
	companyService "github.com/excelpro/staffledger-backend-go/internal/service/company"
	employeeService "github.com/excelpro/staffledger-backend-go/internal/service/employee"
	holidayService "github.com/excelpro/staffledger-backend-go/internal/service/holiday"
	payrollService "github.com/excelpro/staffledger-backend-go/internal/service/payroll"
	reportService "github.com/excelpro/staffledger-backend-go/internal/service/report"
	transactionService "github.com/excelpro/staffledger-backend-go/internal/service/transaction"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	fileStorage, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	companyRepo := jsonstore.NewCompanyRepository(store)
	employeeRepo := jsonstore.NewEmployeeRepository(store)
	attendanceRepo := jsonstore.NewAttendanceRepository(store)
	salaryRepo := jsonstore.NewSalaryRepository(store)
	holidayRepo := jsonstore.NewHolidayRepository(store)
	transactionRepo := jsonstore.NewTransactionRepository(store)

	payrollSvc := payrollService.NewPayrollService(salaryRepo, attendanceRepo, employeeRepo)

	return NewRouter(
		RouterConfig{Env: "test", FrontendURL: "http://localhost:3000", UploadsDir: t.TempDir()},
		NewCompanyHandler(companyService.NewCompanyService(companyRepo, fileStorage)),
		NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo, fileStorage)),
		NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)),
		NewPayrollHandler(payrollSvc),
		NewTransactionHandler(transactionService.NewTransactionService(transactionRepo, employeeRepo)),
		NewHolidayHandler(holidayService.NewHolidayService(holidayRepo)),
		NewReportHandler(reportService.NewReportService(employeeRepo, attendanceRepo, salaryRepo, transactionRepo, payrollSvc)),
	)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got: %s", rec.Body.String())
	return envelope.Data
}

func TestRouter_EmployeeLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/employees", map[string]any{
		"id":          "EMP-001",
		"name":        "Ravi Kumar",
		"designation": "Accountant",
		"basicSalary": "9000",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// duplicate id conflicts
	rec = doJSON(t, router, http.MethodPost, "/api/v1/employees", map[string]any{
		"id": "EMP-001", "name": "Clone",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// missing name is a validation error
	rec = doJSON(t, router, http.MethodPost, "/api/v1/employees", map[string]any{"id": "EMP-002"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/employees/EMP-001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "Ravi Kumar", data["name"])
	assert.Equal(t, "Active", data["status"])

	rec = doJSON(t, router, http.MethodPatch, "/api/v1/employees/EMP-001/status", map[string]any{
		"status": "Inactive",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Inactive", decodeData(t, rec)["status"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/employees/EMP-404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_AttendanceAndPayrollFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/employees", map[string]any{
		"id": "EMP-001", "name": "Ravi Kumar", "basicSalary": "9000",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	for day, status := range map[int]string{1: "A", 2: "A", 3: "A"} {
		rec = doJSON(t, router, http.MethodPut, "/api/v1/attendance/January/2025/EMP-001/day", map[string]any{
			"day": day, "status": status,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPut, "/api/v1/payroll/EMP-001/field", map[string]any{
		"month": "January", "year": 2025, "field": "pf", "amount": "100",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/payroll/January/2025/EMP-001", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Computation struct {
				DeductibleDays string `json:"deductible_days"`
				NetPayable     string `json:"net_payable"`
			} `json:"computation"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "2", envelope.Data.Computation.DeductibleDays)
	assert.Equal(t, "8300", envelope.Data.Computation.NetPayable)

	// unknown field names are rejected, not silently dropped
	rec = doJSON(t, router, http.MethodPut, "/api/v1/payroll/EMP-001/field", map[string]any{
		"month": "January", "year": 2025, "field": "netPayable", "amount": "1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_TransactionsAndReports(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/employees", map[string]any{
		"id": "EMP-001", "name": "Ravi Kumar", "basicSalary": "9000",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/transactions", map[string]any{
		"employeeId": "EMP-001",
		"type":       "Salary",
		"mode":       "Cash",
		"amount":     "5000",
		"month":      "January",
		"year":       2025,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, decodeData(t, rec)["voucherNo"], "V-")

	rec = doJSON(t, router, http.MethodGet, "/api/v1/transactions?employeeId=EMP-001", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/transactions/voucher", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/reports/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeData(t, rec)
	assert.Equal(t, float64(1), stats["total_employees"])
	assert.Equal(t, "5000", stats["total_disbursed"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/reports/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.NotZero(t, rec.Body.Len())
}

func TestRouter_CompanyAndHolidays(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/company", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeData(t, rec)["name"])

	rec = doJSON(t, router, http.MethodPut, "/api/v1/company", map[string]any{"name": "Fresh Name"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Fresh Name", decodeData(t, rec)["name"])

	rec = doJSON(t, router, http.MethodPost, "/api/v1/holidays", map[string]any{
		"date": "2025-08-15", "reason": "Independence Day", "type": "National",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/holidays?year=2025", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "Independence Day"))

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/holidays/2025-08-15", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/holidays/2025-08-15", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
