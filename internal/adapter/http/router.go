package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/macadden/monetary-movements-test/internal/adapter/http/handler"
	"github.com/macadden/monetary-movements-test/internal/adapter/http/middleware"
	"github.com/macadden/monetary-movements-test/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ClientHandler    *handler.ClientHandler
	CategoryHandler  *handler.CategoryHandler
	AccountHandler   *handler.AccountHandler
	MovementHandler  *handler.MovementHandler
	BalanceHandler   *handler.BalanceHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logging          *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Clients
		r.Route("/clientes", func(r chi.Router) {
			r.Post("/", cfg.ClientHandler.Create)
			r.Get("/", cfg.ClientHandler.List)
			r.Get("/{id}", cfg.ClientHandler.Get)
			r.Put("/{id}", cfg.ClientHandler.Update)
			r.Delete("/{id}", cfg.ClientHandler.Delete)
			r.Post("/{id}/categorias", cfg.ClientHandler.AssignCategory)
			r.Get("/{id}/categorias", cfg.ClientHandler.ListCategories)
			r.Get("/{id}/cuentas", cfg.AccountHandler.ListByClient)
			r.Get("/{id}/saldo", cfg.BalanceHandler.Report)
		})

		// Categories
		r.Route("/categorias", func(r chi.Router) {
			r.Post("/", cfg.CategoryHandler.Create)
			r.Get("/", cfg.CategoryHandler.List)
			r.Get("/{id}", cfg.CategoryHandler.Get)
			r.Delete("/{id}", cfg.CategoryHandler.Delete)
		})

		// Accounts
		r.Route("/cuentas", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/movimientos", cfg.MovementHandler.ListByAccount)
		})

		// Movements
		r.Post("/movimientos", cfg.MovementHandler.Create)
	})

	return r
}
