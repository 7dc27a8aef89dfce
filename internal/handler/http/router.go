package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/leavetrack/leavetrack-backend-go/internal/handler/http/middleware"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	managerHandler ManagerHandler,
	adminHandler AdminHandler,
	userHandler UserHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leavetrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)
			r.Get("/users/profile", authHandler.Me)
			r.Put("/users/profile", userHandler.UpdateProfile)

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/", leaveHandler.ListMyRequests)
				r.Get("/balance", leaveHandler.MyBalances)
				r.Get("/stats", leaveHandler.MyStats)
				r.Get("/{id}", leaveHandler.GetRequest)
				r.Put("/{id}/cancel", leaveHandler.CancelRequest)
			})

			// Managerial roles only
			r.Route("/manager", func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Get("/pending", managerHandler.ListPending)
				r.Put("/requests/{id}/approve", managerHandler.ApproveRequest)
				r.Put("/requests/{id}/reject", managerHandler.RejectRequest)
				r.Get("/team-members", managerHandler.TeamMembers)
				r.Get("/team-calendar", managerHandler.TeamCalendar)
				r.Get("/report", managerHandler.TeamReport)
				r.Route("/balance/{employeeId}", func(r chi.Router) {
					r.Get("/", managerHandler.EmployeeBalance)
					r.Put("/", managerHandler.UpdateEmployeeBalance)
				})
			})

			// General manager only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireGeneralManager)

				r.Route("/users", func(r chi.Router) {
					r.Post("/", adminHandler.CreateEmployee)
					r.Get("/", adminHandler.ListEmployees)
					r.Get("/{id}", adminHandler.GetEmployee)
					r.Put("/{id}", adminHandler.UpdateEmployee)
					r.Delete("/{id}", adminHandler.DeactivateEmployee)
				})

				r.Route("/departments", func(r chi.Router) {
					r.Post("/", adminHandler.CreateDepartment)
					r.Get("/", adminHandler.ListDepartments)
					r.Get("/{id}", adminHandler.GetDepartment)
					r.Put("/{id}", adminHandler.UpdateDepartment)
				})

				r.Route("/policies", func(r chi.Router) {
					r.Post("/", adminHandler.CreatePolicy)
					r.Get("/", adminHandler.ListPolicies)
					r.Get("/{id}", adminHandler.GetPolicy)
					r.Put("/{id}", adminHandler.UpdatePolicy)
					r.Delete("/{id}", adminHandler.DeletePolicy)
				})

				r.Get("/reports", adminHandler.OrganizationReport)
				r.Post("/reset-balances", adminHandler.ResetBalances)
			})
		})
	})
	return r
}
