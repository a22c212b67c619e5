package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/davidjulakidze/lolly-law-assessment/internal/auth"
	"github.com/davidjulakidze/lolly-law-assessment/internal/customers"
	"github.com/davidjulakidze/lolly-law-assessment/internal/dashboard"
	"github.com/davidjulakidze/lolly-law-assessment/internal/matters"
	"github.com/davidjulakidze/lolly-law-assessment/internal/observability"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	TokenService     *auth.TokenService
	AuthHandler      *auth.Handler
	CustomerHandler  *customers.Handler
	MatterHandler    *matters.Handler
	DashboardHandler *dashboard.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Use(AuthRateLimiter())
		params.AuthHandler.MountRoutes(r)
	})

	// Every route beyond this point requires an authenticated identity.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(params.TokenService))

		r.Route("/customers", func(r chi.Router) {
			params.CustomerHandler.MountRoutes(r)
			params.MatterHandler.MountCustomerRoutes(r)
		})
		r.Route("/matters", params.MatterHandler.MountRoutes)
		if params.DashboardHandler != nil {
			r.Route("/dashboard", params.DashboardHandler.MountRoutes)
		}
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
