package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Harshavarthini19/campus-connect/internal/config"
	"github.com/Harshavarthini19/campus-connect/internal/handlers"
	"github.com/Harshavarthini19/campus-connect/internal/middleware"
	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"
	"github.com/Harshavarthini19/campus-connect/internal/repository/memory"
	"github.com/Harshavarthini19/campus-connect/internal/repository/postgres"
	"github.com/Harshavarthini19/campus-connect/internal/service"
)

// New wires the full HTTP surface. The persistence backend is chosen
// here, once, from config; nothing downstream branches on it.
func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config) http.Handler {
	var (
		issues repository.IssueRepository
		notifs repository.NotificationRepository
		users  repository.UserRepository
	)
	if cfg.Store == "memory" {
		mi, mn, mu := memory.NewIssueRepo(), memory.NewNotificationRepo(), memory.NewUserRepo()
		if cfg.Env == "dev" {
			if err := memory.SeedDemo(context.Background(), mu, mi, mn); err != nil {
				log.Warn().Err(err).Msg("demo seed failed")
			}
		}
		issues, notifs, users = mi, mn, mu
	} else {
		issues = postgres.NewIssueRepo(db)
		notifs = postgres.NewNotificationRepo(db)
		users = postgres.NewUserRepo(db)
	}

	lifecycle := service.NewLifecycle(issues, notifs, log)
	authSvc := service.NewAuthService(users, cfg.SessionSecret)

	ah := handlers.NewAuthHTTP(authSvc, users)
	ih := handlers.NewIssueHTTP(issues, lifecycle)
	nh := handlers.NewNotificationHTTP(notifs)
	sh := handlers.NewStatsHTTP(issues)
	uh := handlers.NewUserHTTP(users, authSvc)

	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(log, cfg))

	r.Get("/healthz", handlers.Health())

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", ah.Register())
		r.Post("/login", ah.Login())
		r.Post("/logout", ah.Logout())
		r.Get("/me", ah.Me())
	})

	staffOnly := middleware.RequireRoles(string(models.RoleStaff), string(models.RoleAdmin))
	adminOnly := middleware.RequireRoles(string(models.RoleAdmin))

	r.Route("/api/issues", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", ih.List())
		r.Post("/", ih.Create())
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", ih.Get())
			r.Delete("/", ih.Delete())
			r.Post("/comments", ih.AddComment())
			r.With(staffOnly).Patch("/", ih.Update())
			r.With(staffOnly).Patch("/status", ih.ChangeStatus())
			r.With(staffOnly).Patch("/assignee", ih.Assign())
		})
	})

	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", nh.List())
		r.Post("/{id}/read", nh.MarkRead())
		r.Post("/read-all", nh.MarkAllRead())
	})

	r.With(middleware.RequireAuth).Get("/api/stats", sh.Summary())

	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.With(adminOnly).Get("/", uh.List())
		r.With(adminOnly).Patch("/{id}/role", uh.UpdateRole())
		r.With(adminOnly).Patch("/{id}/active", uh.SetActive())
		r.With(middleware.RequireSelfOrRoles(string(models.RoleAdmin))).Patch("/{id}/basic", uh.UpdateBasic())
		r.With(middleware.RequireSelfOrRoles()).Patch("/{id}/password", uh.UpdatePassword())
	})

	return r
}
