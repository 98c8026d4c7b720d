package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/609harsh/realtor-app/internal/config"
	"github.com/609harsh/realtor-app/internal/handlers"
	"github.com/609harsh/realtor-app/internal/middleware"
	"github.com/609harsh/realtor-app/internal/models"
	"github.com/609harsh/realtor-app/internal/repository/postgres"
	"github.com/609harsh/realtor-app/internal/service"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config) http.Handler {
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

	// Health
	r.Get("/healthz", handlers.Health())

	// Repos + services + handlers
	users := postgres.NewUserRepo(db)
	homes := postgres.NewHomeRepo(db)
	messages := postgres.NewMessageRepo(db)

	authSvc := service.NewAuthService(users, cfg.JWTSecret, cfg.ProductKeySecret, cfg.TokenTTL)
	homeSvc := service.NewHomeService(homes, messages)

	ah := handlers.NewAuthHTTP(authSvc)
	hh := handlers.NewHomeHTTP(homeSvc)

	authn := middleware.Authenticate(cfg.JWTSecret)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup/{userType}", ah.Signup())
		r.Post("/signin", ah.Signin())
		r.Post("/key", ah.GenerateProductKey())
		r.Group(func(r chi.Router) {
			r.Use(authn, middleware.RequireRoles())
			r.Get("/me", ah.Me())
		})
	})

	r.Route("/api/homes", func(r chi.Router) {
		// public listing
		r.Get("/", hh.List())
		r.Get("/{id}", hh.Get())

		r.Group(func(r chi.Router) {
			r.Use(authn, middleware.RequireRoles(models.RoleRealtor))
			r.Post("/", hh.Create())
			r.Put("/{id}", hh.Update())
			r.Delete("/{id}", hh.Delete())
			r.Get("/{id}/messages", hh.Messages())
		})

		r.Group(func(r chi.Router) {
			r.Use(authn, middleware.RequireRoles(models.RoleBuyer))
			r.Post("/{id}/inquire", hh.Inquire())
		})
	})

	return r
}
