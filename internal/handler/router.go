package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/obaro89/afridev-backend/internal/config"
	"github.com/obaro89/afridev-backend/internal/middleware"
	"github.com/obaro89/afridev-backend/internal/observability"
	"github.com/obaro89/afridev-backend/internal/service"
)

// Services bundles what the router dispatches to.
type Services struct {
	Auth    *service.AuthService
	Profile *service.ProfileService
	Post    *service.PostService
	GitHub  *service.GitHubClient
}

// NewRouter builds the HTTP router with every API, health and metrics route.
func NewRouter(cfg *config.Config, s Services, ready observability.Pinger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(observability.RequestLogger)
	r.Use(observability.MetricsMiddleware(cfg.ServiceName))
	r.Use(middleware.Recovery())
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	auth := middleware.JWT(cfg.JWTSecret)
	limit := middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow)

	ah := NewAuthHandler(s.Auth)
	ph := NewProfileHandler(s.Profile, s.GitHub)
	poh := NewPostHandler(s.Post)

	// Account routes
	r.With(limit).Post("/api/users", ah.Register)
	r.With(limit).Post("/api/auth", ah.Login)
	r.With(auth).Get("/api/auth", ah.Me)

	// Profile routes
	path := "/api/profile"
	r.Get(path, ph.List)
	r.With(auth).Post(path, ph.Upsert)
	r.With(auth).Delete(path, ph.Delete)
	r.With(auth).Get(path+"/me", ph.Me)
	r.Get(path+"/user/{user_id}", ph.ByUser)
	r.With(auth).Put(path+"/experience", ph.AddExperience)
	r.With(auth).Delete(path+"/experience/{exp_id}", ph.RemoveExperience)
	r.With(auth).Put(path+"/education", ph.AddEducation)
	r.With(auth).Delete(path+"/education/{edu_id}", ph.RemoveEducation)
	r.Get(path+"/github/{username}", ph.GitHubRepos)

	// Post routes
	r.Route("/api/posts", func(p chi.Router) {
		p.Use(auth)
		p.Post("/", poh.Create)
		p.Get("/", poh.List)
		p.Get("/{id}", poh.Get)
		p.Delete("/{id}", poh.Delete)
		p.Put("/like/{id}", poh.Like)
		p.Put("/unlike/{id}", poh.Unlike)
		p.Post("/comment/{id}", poh.AddComment)
		p.Delete("/comment/{id}/{comment_id}", poh.RemoveComment)
	})

	// Health & metrics
	r.Get("/health/live", observability.HealthLiveHandler)
	r.Get("/health/ready", observability.HealthReadyHandler(ready))
	r.Handle("/metrics", promhttp.Handler())

	return otelhttp.NewHandler(r, cfg.ServiceName)
}
