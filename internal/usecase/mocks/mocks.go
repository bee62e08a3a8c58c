// Package mocks provides hand-written test doubles for the usecase
// interfaces. Behavior defaults to an in-memory store; individual methods
// can be overridden through the *Func fields.
package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/macadden/monetary-movements-test/internal/domain"
	"github.com/macadden/monetary-movements-test/internal/usecase"
)

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
	links   []*domain.ClientCategory

	GetByIDFunc func(ctx context.Context, id string) (*domain.Client, error)
}

func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{clients: make(map[string]*domain.Client)}
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.ID] = client
	return nil
}

func (m *MockClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrClientNotFound
}

func (m *MockClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var clients []*domain.Client
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	return clients, nil
}

func (m *MockClientRepository) UpdateName(ctx context.Context, id, name string, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.clients[id]; ok {
		c.Name = name
		c.UpdatedAt = updatedAt
		return nil
	}
	return domain.ErrClientNotFound
}

func (m *MockClientRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, id)
	return nil
}

func (m *MockClientRepository) AddCategory(ctx context.Context, link *domain.ClientCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links = append(m.links, link)
	return nil
}

func (m *MockClientRepository) ListCategories(ctx context.Context, clientID string) ([]*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var categories []*domain.Category
	for _, l := range m.links {
		if l.ClientID == clientID {
			categories = append(categories, &domain.Category{ID: l.CategoryID})
		}
	}
	return categories, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.Category

	GetByIDFunc func(ctx context.Context, id string) (*domain.Category, error)
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{categories: make(map[string]*domain.Category)}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) List(ctx context.Context, limit, offset int) ([]*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var categories []*domain.Category
	for _, c := range m.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, id)
	return nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	GetByIDFunc          func(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error)
	GetFirstByClientFunc func(ctx context.Context, clientID string) (*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) GetFirstByClient(ctx context.Context, clientID string) (*domain.Account, error) {
	if m.GetFirstByClientFunc != nil {
		return m.GetFirstByClientFunc(ctx, clientID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var first *domain.Account
	for _, a := range m.accounts {
		if a.ClientID != clientID {
			continue
		}
		if first == nil || a.CreatedAt.Before(first.CreatedAt) {
			first = a
		}
	}
	if first == nil {
		return nil, domain.ErrAccountNotFound
	}
	return first, nil
}

func (m *MockAccountRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, a := range m.accounts {
		if a.ClientID == clientID {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

// MockMovementRepository is a mock implementation of MovementRepository.
// Sums are derived with domain.BalanceOf, mirroring the SQL aggregation.
type MockMovementRepository struct {
	mu        sync.RWMutex
	movements []*domain.Movement

	CreateFunc       func(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error
	SumByAccountFunc func(ctx context.Context, accountID string) (decimal.Decimal, error)
}

func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{}
}

func (m *MockMovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.movements = append(m.movements, movement)
	return nil
}

func (m *MockMovementRepository) SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if m.SumByAccountFunc != nil {
		return m.SumByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.BalanceOf(m.byAccount(accountID)), nil
}

func (m *MockMovementRepository) SumByAccountTx(ctx context.Context, tx usecase.Transaction, accountID string) (decimal.Decimal, error) {
	return m.SumByAccount(ctx, accountID)
}

func (m *MockMovementRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Movement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := m.byAccount(accountID)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// Count returns the number of stored movements for an account.
func (m *MockMovementRepository) Count(accountID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byAccount(accountID))
}

func (m *MockMovementRepository) byAccount(accountID string) []*domain.Movement {
	var movements []*domain.Movement
	for _, mv := range m.movements {
		if mv.AccountID == accountID {
			movements = append(movements, mv)
		}
	}
	return movements
}

// MockRateProvider is a mock implementation of RateProvider.
type MockRateProvider struct {
	FetchBuyRateFunc func(ctx context.Context, quoteName string) (decimal.Decimal, error)
}

func (m *MockRateProvider) FetchBuyRate(ctx context.Context, quoteName string) (decimal.Decimal, error) {
	if m.FetchBuyRateFunc != nil {
		return m.FetchBuyRateFunc(ctx, quoteName)
	}
	return decimal.Zero, domain.ErrRateUnavailable
}

// LockingTxManager serializes transactions with a single mutex, emulating
// the row lock the postgres tx manager takes on the account. Commit or the
// first Rollback releases the lock.
type LockingTxManager struct {
	mu sync.Mutex
}

func NewLockingTxManager() *LockingTxManager {
	return &LockingTxManager{}
}

func (m *LockingTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	m.mu.Lock()
	tx := &lockingTx{}
	tx.release = func() { m.mu.Unlock() }
	return tx, nil
}

type lockingTx struct {
	once    sync.Once
	release func()
}

func (t *lockingTx) Commit(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

func (t *lockingTx) Rollback(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

// PassthroughRetrier runs the operation once without retrying.
type PassthroughRetrier struct{}

func (PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%d", m.next)
}
