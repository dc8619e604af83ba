package http

import (
	"log/slog"

	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	departmentHandler DepartmentHandler,
	employeeHandler EmployeeHandler,
	leaveBalanceHandler LeaveBalanceHandler,
	healthHandler HealthHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Location"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.Metrics)

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Get("/", healthHandler.Root)
	r.Get("/health/db", healthHandler.Database)
	r.Handle("/metrics", promhttp.Handler())

	r.Route(apiPrefix, func(r chi.Router) {
		r.Route("/departments", func(r chi.Router) {
			r.Get("/", departmentHandler.List)
			r.Post("/", departmentHandler.Create)
			r.Get("/{id}", departmentHandler.GetByID)
			r.Put("/{id}", departmentHandler.Update)
			r.Delete("/{id}", departmentHandler.Delete)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/{id}", employeeHandler.GetByID)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)
		})

		r.Route("/leave-balances", func(r chi.Router) {
			r.Get("/", leaveBalanceHandler.List)
			r.Post("/", leaveBalanceHandler.Create)
			r.Get("/emp/{empNo}", leaveBalanceHandler.GetByEmpNo)
			r.Get("/{id}", leaveBalanceHandler.GetByID)
			r.Put("/{id}", leaveBalanceHandler.Update)
			r.Delete("/{id}", leaveBalanceHandler.Delete)
		})
	})

	return r
}
