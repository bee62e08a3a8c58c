package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/macadden/monetary-movements-test/internal/domain"
)

// ClientRepository implements usecase.ClientRepository.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

// Create creates a new client.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO clientes (id, nombre, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		client.ID, client.Name, timeToTimestamptz(client.CreatedAt), timeToTimestamptz(client.UpdatedAt),
	)

	return err
}

// GetByID retrieves a client by ID.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, nombre, created_at, updated_at FROM clientes WHERE id = $1`, id)

	return scanClient(row)
}

// List lists clients with pagination.
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, nombre, created_at, updated_at FROM clientes ORDER BY created_at LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)

	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}

		clients = append(clients, client)
	}

	return clients, rows.Err()
}

// UpdateName updates a client's display name.
func (r *ClientRepository) UpdateName(ctx context.Context, id, name string, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE clientes SET nombre = $2, updated_at = $3 WHERE id = $1`,
		id, name, timeToTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

// Delete deletes a client. Accounts and movements cascade at the schema
// level.
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

// AddCategory links a client to a category.
func (r *ClientRepository) AddCategory(ctx context.Context, link *domain.ClientCategory) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO categoria_cliente (id, cliente_id, categoria_id, created_at) VALUES ($1, $2, $3, $4)`,
		link.ID, link.ClientID, link.CategoryID, timeToTimestamptz(link.CreatedAt),
	)

	return err
}

// ListCategories lists the categories a client belongs to.
func (r *ClientRepository) ListCategories(ctx context.Context, clientID string) ([]*domain.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.nombre, c.created_at
		 FROM categorias c
		 JOIN categoria_cliente cc ON cc.categoria_id = c.id
		 WHERE cc.cliente_id = $1
		 ORDER BY c.created_at`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)

	for rows.Next() {
		var (
			category  domain.Category
			createdAt pgtype.Timestamptz
		)

		if err := rows.Scan(&category.ID, &category.Name, &createdAt); err != nil {
			return nil, err
		}

		category.CreatedAt = createdAt.Time
		categories = append(categories, &category)
	}

	return categories, rows.Err()
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var (
		client    domain.Client
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&client.ID, &client.Name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}

		return nil, err
	}

	client.CreatedAt = createdAt.Time
	client.UpdatedAt = updatedAt.Time

	return &client, nil
}
