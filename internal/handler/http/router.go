package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/naumur/presence-backend-go/internal/config"
	"github.com/naumur/presence-backend-go/internal/domain/presence"
	"github.com/naumur/presence-backend-go/internal/handler/http/middleware"
	"github.com/naumur/presence-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	Config        *config.Config
	JWTService    jwt.Service
	PresenceSvc   presence.PresenceService
	Auth          AuthHandler
	Attendance    AttendanceHandler
	Employee      EmployeeHandler
	Department    DepartmentHandler
	Justification JustificationHandler
	Report        ReportHandler
	System        SystemHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presence-backend"),
		slog.String("env", deps.Config.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/login", deps.Auth.Login)
			r.Post("/refresh", deps.Auth.Refresh)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(deps.JWTService))
				r.Post("/logout", deps.Auth.Logout)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService))
			r.Use(middleware.ActivityTracker(deps.PresenceSvc))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/week", deps.Attendance.GetWeek)
				r.Post("/day", deps.Attendance.SaveDay)
				r.Post("/check-in", deps.Attendance.CheckIn)
				r.Post("/check-out", deps.Attendance.CheckOut)

				// Supervisor or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Get("/pending", deps.Attendance.Pending)
					r.Post("/verify", deps.Attendance.Verify)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", deps.Employee.Me)
				r.Post("/me/profile-image", deps.Employee.UploadProfileImage)

				// Supervisor or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Get("/", deps.Employee.List)
					r.Post("/", deps.Employee.Create)
					r.Get("/{id}", deps.Employee.Get)
					r.Post("/{id}/profile-image", deps.Employee.UploadProfileImage)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", deps.Department.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", deps.Department.Create)
					r.Delete("/{id}", deps.Department.Deactivate)
				})
			})

			// Supervisor or admin only
			r.Route("/justifications", func(r chi.Router) {
				r.Use(middleware.RequireElevated)
				r.Get("/", deps.Justification.List)
				r.Post("/", deps.Justification.Create)
				r.Post("/{id}/approve", deps.Justification.Approve)
				r.Post("/{id}/reject", deps.Justification.Reject)
			})

			r.Route("/reports", func(r chi.Router) {
				// Dashboard is admin only; supervisors get history,
				// the week matrix, and exports.
				r.With(middleware.RequireAdmin).Get("/dashboard", deps.Report.Dashboard)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Get("/history", deps.Report.History)
					r.Get("/week", deps.Report.WeekMatrix)
					r.Get("/export", deps.Report.Export)
				})
			})

			// Admin only
			r.Route("/system", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/backup", deps.System.RunBackup)
				r.Get("/logs", deps.System.Logs)
				r.Get("/online", deps.System.OnlineToday)
			})
		})
	})

	// Stored uploads (profile images, receipts)
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.Config.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	return r
}
