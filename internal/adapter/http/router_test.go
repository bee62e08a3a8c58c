package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/macadden/monetary-movements-test/internal/adapter/http/handler"
	apimiddleware "github.com/macadden/monetary-movements-test/internal/adapter/http/middleware"
	"github.com/macadden/monetary-movements-test/internal/domain"
	"github.com/macadden/monetary-movements-test/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"nombre":"Juan"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clientes/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"POST /api/v1/clientes/",
		"GET /api/v1/clientes/",
		"GET /api/v1/clientes/{id}",
		"PUT /api/v1/clientes/{id}",
		"DELETE /api/v1/clientes/{id}",
		"POST /api/v1/clientes/{id}/categorias",
		"GET /api/v1/clientes/{id}/saldo",
		"POST /api/v1/categorias/",
		"GET /api/v1/categorias/{id}",
		"POST /api/v1/cuentas/",
		"GET /api/v1/cuentas/{id}/movimientos",
		"POST /api/v1/movimientos",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		ClientHandler:   handler.NewClientHandler(&stubClientService{}),
		CategoryHandler: handler.NewCategoryHandler(&stubCategoryService{}),
		AccountHandler:  handler.NewAccountHandler(&stubAccountService{}),
		MovementHandler: handler.NewMovementHandler(&stubMovementService{}),
		BalanceHandler:  handler.NewBalanceHandler(&stubBalanceService{}),
		HealthHandler:   &handler.HealthHandler{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubClientService struct{}

func (stubClientService) CreateClient(ctx context.Context, name string) (*domain.Client, error) {
	return &domain.Client{ID: "cli", Name: name}, nil
}

func (stubClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return &domain.Client{ID: id}, nil
}

func (stubClientService) ListClients(ctx context.Context, input usecase.ListClientsInput) ([]*domain.Client, error) {
	return []*domain.Client{}, nil
}

func (stubClientService) RenameClient(ctx context.Context, id, name string) (*domain.Client, error) {
	return &domain.Client{ID: id, Name: name}, nil
}

func (stubClientService) DeleteClient(ctx context.Context, id string) error {
	return nil
}

func (stubClientService) AssignCategory(ctx context.Context, clientID, categoryID string) (*domain.ClientCategory, error) {
	return &domain.ClientCategory{ID: "link", ClientID: clientID, CategoryID: categoryID}, nil
}

func (stubClientService) ListCategories(ctx context.Context, clientID string) ([]*domain.Category, error) {
	return []*domain.Category{}, nil
}

type stubCategoryService struct{}

func (stubCategoryService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	return &domain.Category{ID: "cat", Name: name}, nil
}

func (stubCategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return &domain.Category{ID: id}, nil
}

func (stubCategoryService) ListCategories(ctx context.Context, input usecase.ListCategoriesInput) ([]*domain.Category, error) {
	return []*domain.Category{}, nil
}

func (stubCategoryService) DeleteCategory(ctx context.Context, id string) error {
	return nil
}

type stubAccountService struct{}

func (stubAccountService) CreateAccount(ctx context.Context, clientID string) (*domain.Account, error) {
	return &domain.Account{ID: "acc", ClientID: clientID}, nil
}

func (stubAccountService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return &domain.Account{ID: id}, nil
}

func (stubAccountService) ListAccountsByClient(ctx context.Context, clientID string) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

type stubMovementService struct{}

func (stubMovementService) RecordMovement(ctx context.Context, input usecase.RecordMovementInput) (*domain.Movement, error) {
	return &domain.Movement{ID: "mov", AccountID: input.AccountID}, nil
}

func (stubMovementService) ListMovements(ctx context.Context, input usecase.ListMovementsInput) ([]*domain.Movement, error) {
	return []*domain.Movement{}, nil
}

type stubBalanceService struct{}

func (stubBalanceService) BuildReport(ctx context.Context, clientID string) (*domain.BalanceReport, error) {
	return &domain.BalanceReport{
		Client:  &domain.Client{ID: clientID},
		Account: &domain.Account{ID: "acc", ClientID: clientID},
	}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
