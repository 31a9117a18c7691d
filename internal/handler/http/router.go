package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	payrollHandler PayrollHandler,
	employeeHandler EmployeeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/process", payrollHandler.ProcessPeriod)
			r.Post("/employees/{employeeId}/process", payrollHandler.ProcessEmployee)

			r.Route("/records", func(r chi.Router) {
				r.Get("/", payrollHandler.ListRecords)
				r.Get("/{id}", payrollHandler.GetRecord)
				r.Post("/{id}/paystub", payrollHandler.GeneratePayStub)
				r.Post("/{id}/acknowledge-negative-net", payrollHandler.AcknowledgeNegativeNet)
				r.Post("/{id}/reprocess", payrollHandler.Reprocess)
			})

			r.Get("/summary", reportHandler.GetPeriodSummary)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Get("/{id}", employeeHandler.GetByID)
		})

		r.Get("/attendance/{employeeId}", employeeHandler.GetAttendance)
	})
	return r
}
