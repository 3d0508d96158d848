package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/guardia-security/guardia-backend-go/internal/config"
	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
	"github.com/guardia-security/guardia-backend-go/internal/handler/http/middleware"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Agent      AgentHandler
	Client     ClientHandler
	Site       SiteHandler
	Shift      ShiftHandler
	Attendance AttendanceHandler
	Correction CorrectionHandler
	Payroll    PayrollHandler
	Invoice    InvoiceHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/auth/register", h.Auth.Register)
			})

			r.Route("/agents", func(r chi.Router) {
				r.Get("/", h.Agent.ListAgents)
				r.Get("/{id}", h.Agent.GetAgent)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleAdmin, user.RoleManager, user.RoleHR))
					r.Post("/", h.Agent.CreateAgent)
					r.Put("/{id}", h.Agent.UpdateAgent)
					r.Post("/{id}/terminate", h.Agent.TerminateAgent)
				})
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.ListClients)
				r.Get("/{id}", h.Client.GetClient)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleAdmin, user.RoleManager))
					r.Post("/", h.Client.CreateClient)
					r.Put("/{id}", h.Client.UpdateClient)
				})
			})

			r.Route("/sites", func(r chi.Router) {
				r.Get("/", h.Site.ListSites)
				r.Get("/{id}", h.Site.GetSite)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleAdmin, user.RoleManager))
					r.Post("/", h.Site.CreateSite)
					r.Put("/{id}", h.Site.UpdateSite)
				})
			})

			// Role checks for scheduling, deletion and lock resets live
			// in the shift service; operators must reach the update
			// endpoint for the change budget to apply.
			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.ListShifts)
				r.Get("/{id}", h.Shift.GetShift)
				r.Post("/", h.Shift.CreateShift)
				r.Put("/{id}", h.Shift.UpdateShift)
				r.Delete("/{id}", h.Shift.DeleteShift)
				r.Post("/{id}/reset-lock", h.Shift.ResetOperatorLock)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.ListAttendance)
				r.Get("/{id}", h.Attendance.GetAttendance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleAdmin, user.RoleManager, user.RoleSupervisor, user.RoleHR))
					r.Post("/", h.Attendance.CreateAttendance)
					r.Put("/{id}", h.Attendance.UpdateAttendance)
					r.Delete("/{id}", h.Attendance.DeleteAttendance)
				})
			})

			r.Route("/corrections", func(r chi.Router) {
				r.Get("/", h.Correction.ListCorrections)
				r.Get("/{id}", h.Correction.GetCorrection)
				r.Post("/", h.Correction.CreateCorrection)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleAdmin, user.RoleManager, user.RoleSupervisor, user.RoleHR))
					r.Post("/{id}/approve", h.Correction.ApproveCorrection)
					r.Post("/{id}/reject", h.Correction.RejectCorrection)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleAdmin, user.RoleFinance, user.RoleHR))
				r.Get("/", h.Payroll.ListPayrolls)
				r.Get("/{id}", h.Payroll.GetPayroll)
				r.Post("/", h.Payroll.CreatePayroll)
				r.Put("/{id}", h.Payroll.UpdatePayroll)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleAdmin, user.RoleFinance))
					r.Post("/{id}/approve", h.Payroll.ApprovePayroll)
					r.Post("/{id}/pay", h.Payroll.MarkPayrollPaid)
				})
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleAdmin, user.RoleFinance))
				r.Get("/", h.Invoice.ListInvoices)
				r.Get("/{id}", h.Invoice.GetInvoice)
				r.Post("/", h.Invoice.CreateInvoice)
				r.Put("/{id}", h.Invoice.UpdateInvoice)
				r.Put("/{id}/line-items", h.Invoice.ReplaceLineItems)
				r.Post("/{id}/send", h.Invoice.MarkInvoiceSent)
				r.Post("/{id}/payments", h.Invoice.RecordPayment)
			})
		})
	})
	return r
}
