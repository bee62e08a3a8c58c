package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/macadden/monetary-movements-test/internal/domain"
	"github.com/macadden/monetary-movements-test/internal/usecase"
)

// Balance derivation. There is no balance column; the signed sum over the
// movement rows is the balance.
const sumByAccountQuery = `
SELECT COALESCE(SUM(CASE WHEN tipo = 'Ingreso' THEN importe ELSE -importe END), 0)
FROM movimientos
WHERE cuenta_id = $1`

// MovementRepository implements usecase.MovementRepository.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

// Create appends a movement inside the given transaction.
func (r *MovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO movimientos (id, cuenta_id, tipo, importe, fecha, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		movement.ID,
		movement.AccountID,
		string(movement.Kind),
		decimalToNumeric(movement.Amount),
		timeToDate(movement.Date),
		timeToTimestamptz(movement.CreatedAt),
	)

	return err
}

// SumByAccount derives the account balance outside a transaction.
func (r *MovementRepository) SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	return sumByAccount(ctx, r.pool, accountID)
}

// SumByAccountTx derives the account balance inside a transaction, for use
// under the account row lock.
func (r *MovementRepository) SumByAccountTx(ctx context.Context, tx usecase.Transaction, accountID string) (decimal.Decimal, error) {
	return sumByAccount(ctx, tx.(*Tx).PgxTx(), accountID)
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func sumByAccount(ctx context.Context, q querier, accountID string) (decimal.Decimal, error) {
	var sum pgtype.Numeric

	if err := q.QueryRow(ctx, sumByAccountQuery, accountID).Scan(&sum); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// ListByAccount lists movements for an account, newest first.
func (r *MovementRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Movement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, cuenta_id, tipo, importe, fecha, created_at
		 FROM movimientos
		 WHERE cuenta_id = $1
		 ORDER BY fecha DESC, created_at DESC
		 LIMIT $2 OFFSET $3`,
		accountID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]*domain.Movement, 0)

	for rows.Next() {
		var (
			movement  domain.Movement
			kind      string
			amount    pgtype.Numeric
			date      pgtype.Date
			createdAt pgtype.Timestamptz
		)

		if err := rows.Scan(&movement.ID, &movement.AccountID, &kind, &amount, &date, &createdAt); err != nil {
			return nil, err
		}

		movement.Kind = domain.MovementKind(kind)
		movement.Amount = numericToDecimal(amount)
		movement.Date = date.Time
		movement.CreatedAt = createdAt.Time

		movements = append(movements, &movement)
	}

	return movements, rows.Err()
}
