package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/macadden/monetary-movements-test/internal/domain"
	"github.com/macadden/monetary-movements-test/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO cuentas (id, cliente_id, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		account.ID, account.ClientID, timeToTimestamptz(account.CreatedAt), timeToTimestamptz(account.UpdatedAt),
	)

	return err
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, cliente_id, created_at, updated_at FROM cuentas WHERE id = $1`, id)

	return scanAccount(row)
}

// GetByIDForUpdate retrieves an account with a FOR UPDATE row lock. The
// lock serializes the solvency check-then-append sequence per account.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		`SELECT id, cliente_id, created_at, updated_at FROM cuentas WHERE id = $1 FOR UPDATE`, id)

	return scanAccount(row)
}

// GetFirstByClient retrieves the client's oldest account. The report path
// treats this as "the account" of the client.
func (r *AccountRepository) GetFirstByClient(ctx context.Context, clientID string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, cliente_id, created_at, updated_at FROM cuentas
		 WHERE cliente_id = $1 ORDER BY created_at LIMIT 1`,
		clientID,
	)

	return scanAccount(row)
}

// ListByClient lists a client's accounts.
func (r *AccountRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, cliente_id, created_at, updated_at FROM cuentas
		 WHERE cliente_id = $1 ORDER BY created_at`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account   domain.Account
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&account.ID, &account.ClientID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}
