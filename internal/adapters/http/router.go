// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Items  *handlers.ItemHandler
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler
}

// RouterConfig holds the router's non-handler dependencies.
type RouterConfig struct {
	// Sessions resolves the session cookie on every request.
	Sessions middleware.SessionVerifier
	// StaticDir, when set, is served at the root for paths no API route claims.
	StaticDir string
	Logger    *slog.Logger
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given, followed by session
// resolution.
func NewRouter(h Handlers, cfg RouterConfig, middlewares ...func(http.Handler) http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}
	r.Use(middleware.Session(cfg.Sessions))

	// Health endpoints (outside /api prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/public", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.Get("/items", h.Items.ListViews)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireSession(logger))

		r.Get("/health", h.Health.Details)
		r.Get("/collections", h.Items.ListCollections)

		r.Get("/items", h.Items.ListItems)
		r.Post("/items", h.Items.CreateItem)
		r.Get("/items/{id}", h.Items.GetItem)
		r.Patch("/items/{id}", h.Items.UpdateItem)
		r.Delete("/items/{id}", h.Items.ArchiveItem)
	})

	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return r
}
