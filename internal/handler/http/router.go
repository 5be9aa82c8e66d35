package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
	UploadsDir  string
}

func NewRouter(
	cfg RouterConfig,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	transactionHandler TransactionHandler,
	holidayHandler HolidayHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffledger"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(30 * time.Second))
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	r.Method("GET", "/metrics", promhttp.Handler())

	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/company", func(r chi.Router) {
			r.Get("/", companyHandler.Get)
			r.Put("/", companyHandler.Update)
			r.Post("/logo", companyHandler.UploadLogo)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetByID)
				r.Put("/", employeeHandler.Update)
				r.Patch("/status", employeeHandler.UpdateStatus)
				r.Delete("/", employeeHandler.Delete)
				r.Post("/photo", employeeHandler.UploadPhoto)
			})
		})

		r.Route("/attendance/{month}/{year}", func(r chi.Router) {
			r.Get("/", attendanceHandler.Sheet)
			r.Put("/{employeeID}/day", attendanceHandler.MarkDay)
			r.Put("/{employeeID}/time", attendanceHandler.MarkTime)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Put("/{employeeID}/field", payrollHandler.UpdateField)
			r.Route("/{month}/{year}", func(r chi.Router) {
				r.Get("/", payrollHandler.Sheet)
				r.Get("/{employeeID}", payrollHandler.EmployeeRow)
			})
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", transactionHandler.List)
			r.Post("/", transactionHandler.Record)
			r.Get("/voucher", transactionHandler.NextVoucher)
			r.Get("/{id}", transactionHandler.GetByID)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.List)
			r.Post("/", holidayHandler.Add)
			r.Delete("/{date}", holidayHandler.Remove)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/dashboard", reportHandler.Dashboard)
			r.Get("/balance", reportHandler.BalanceSummary)
			r.Get("/month-wise", reportHandler.MonthWise)
			r.Get("/payment-status/{month}/{year}", reportHandler.PaymentStatus)
			r.Get("/export", reportHandler.Export)
		})
	})

	return r
}
