package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/macadden/monetary-movements-test/internal/domain"
)

// ClientRepository defines data access for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Client, error)
	UpdateName(ctx context.Context, id, name string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	AddCategory(ctx context.Context, link *domain.ClientCategory) error
	ListCategories(ctx context.Context, clientID string) ([]*domain.Category, error)
}

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	GetFirstByClient(ctx context.Context, clientID string) (*domain.Account, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Account, error)
}

// MovementRepository defines data access for movements. The balance is
// never stored; both Sum variants derive it from the movement rows.
type MovementRepository interface {
	Create(ctx context.Context, tx Transaction, movement *domain.Movement) error
	SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
	SumByAccountTx(ctx context.Context, tx Transaction, accountID string) (decimal.Decimal, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Movement, error)
}

// RateProvider fetches the current buy rate for a named quote from the
// external source. Every call is a fresh synchronous fetch.
type RateProvider interface {
	FetchBuyRate(ctx context.Context, quoteName string) (decimal.Decimal, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation when it fails with a transient storage
// conflict (deadlock, serialization failure).
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
