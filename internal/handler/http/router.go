package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/salarydesk/salary-backend-go/internal/config"
	"github.com/salarydesk/salary-backend-go/internal/handler/http/middleware"
	"github.com/salarydesk/salary-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Advance      AdvanceHandler
	Bill         BillHandler
	OffDay       OffDayHandler
	Payment      PaymentHandler
	Salary       SalaryHandler
	Attendance   AttendanceHandler
	Notification NotificationHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "salary-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", h.Employee.Get)
				r.Get("/{id}/advances", h.Advance.ListByEmployee)
				r.Get("/{id}/off-days", h.OffDay.ListByEmployee)
				r.Get("/{id}/salary", h.Salary.Summary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}/payments", h.Payment.ListByEmployee)
					r.Get("/{id}/notifications", h.Notification.ListByEmployee)
					r.Post("/{id}/salary/refresh", h.Salary.Refresh)
					r.Post("/{id}/attendance", h.Attendance.SweepEmployee)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Post("/", h.Advance.Request)
				r.Get("/{id}", h.Advance.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Advance.ListAll)
					r.Get("/pending", h.Advance.ListPending)
					r.Put("/{id}/decision", h.Advance.Decide)
				})
			})

			r.Route("/bills", func(r chi.Router) {
				// Manager or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Post("/", h.Bill.Record)
					r.Get("/recent", h.Bill.ListRecent)
				})

				// Admin only
				r.With(middleware.AdminOnly).Get("/", h.Bill.ListAll)
			})

			r.Route("/off-days", func(r chi.Router) {
				r.Post("/", h.OffDay.Request)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.OffDay.ListAll)
					r.Put("/{id}/decision", h.OffDay.Decide)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/auth/pin", h.Auth.SetPIN)

				r.Route("/payments", func(r chi.Router) {
					r.Post("/", h.Payment.Record)
					r.Get("/", h.Payment.ListAll)
				})

				r.Get("/salaries", h.Salary.SummaryAll)
				r.Post("/salaries/rollover", h.Salary.Rollover)

				r.Post("/attendance/sweep", h.Attendance.SweepAll)
				r.Post("/attendance/reset-monthly", h.Attendance.ResetMonthly)

				r.Get("/notifications", h.Notification.ListAll)
			})
		})
	})

	return r
}
