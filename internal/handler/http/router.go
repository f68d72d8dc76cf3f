package http

import (
	"log/slog"
	"os"

	"github.com/corehr/hrms-backend-go/internal/config"
	"github.com/corehr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/corehr/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	TaxDecl    TaxDeclarationHandler
	Master     MasterHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
					r.Post("/import", h.Employee.ImportEmployees)
					r.Get("/export", h.Employee.ExportEmployees)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/", h.Attendance.ListRecords)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/bulk", h.Attendance.BulkMark)
					r.Put("/lock", h.Attendance.Lock)
					r.Post("/import", h.Attendance.ImportRecords)
					r.Get("/export", h.Attendance.ExportRecords)
				})

				// Unlocking a closed month is restricted further.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Put("/unlock", h.Attendance.Unlock)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.ListRecords)
				r.Get("/{id}", h.Payroll.GetRecord)
				r.Get("/{id}/payslip", h.Payroll.Payslip)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/generate", h.Payroll.Generate)
					r.Put("/{id}/status", h.Payroll.UpdateStatus)
					r.Get("/export", h.Payroll.ExportRecords)
				})
			})

			r.Route("/tax-declarations", func(r chi.Router) {
				r.Get("/", h.TaxDecl.ListDeclarations)
				r.Get("/{id}", h.TaxDecl.GetDeclaration)
				r.Post("/", h.TaxDecl.CreateDeclaration)
				r.Put("/{id}", h.TaxDecl.UpdateDeclaration)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/approve", h.TaxDecl.Approve)
					r.Post("/import", h.TaxDecl.ImportDeclarations)
					r.Get("/export", h.TaxDecl.ExportDeclarations)
				})
			})

			// Masters live at top-level plural paths (/departments,
			// /sub-departments, ...); static routes above take precedence.
			r.Route("/{kind}", func(r chi.Router) {
				r.Get("/", h.Master.ListEntries)
				r.Get("/{id}", h.Master.GetEntry)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Master.CreateEntry)
					r.Put("/{id}", h.Master.UpdateEntry)
					r.Delete("/{id}", h.Master.DeleteEntry)
				})
			})
		})
	})

	return r
}
