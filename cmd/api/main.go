package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/excelpro/staffledger-backend-go/internal/config"
	appHTTP "github.com/excelpro/staffledger-backend-go/internal/handler/http"
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

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	store, err := jsonstore.Open(cfg.Data.Dir)
	if err != nil {
		fmt.Println("Error opening data store:", err)
		return
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	companyRepo := jsonstore.NewCompanyRepository(store)
	employeeRepo := jsonstore.NewEmployeeRepository(store)
	attendanceRepo := jsonstore.NewAttendanceRepository(store)
	salaryRepo := jsonstore.NewSalaryRepository(store)
	holidayRepo := jsonstore.NewHolidayRepository(store)
	transactionRepo := jsonstore.NewTransactionRepository(store)

	companySvc := companyService.NewCompanyService(companyRepo, fileStorage)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(salaryRepo, attendanceRepo, employeeRepo)
	transactionSvc := transactionService.NewTransactionService(transactionRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, salaryRepo, transactionRepo, payrollSvc)

	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	transactionHandler := appHTTP.NewTransactionHandler(transactionSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
			UploadsDir:  cfg.Storage.BasePath,
		},
		companyHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		transactionHandler,
		holidayHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
