package repository

import (
	"context"
	"database/sql"

	"crypto-assets/internal/models"
)

type ExchangeRepository struct {
	db *sql.DB
}

func NewExchangeRepository(db *sql.DB) *ExchangeRepository {
	return &ExchangeRepository{db: db}
}

func (r *ExchangeRepository) List(ctx context.Context) ([]models.Exchange, error) {
	query := `SELECT id, name, created_at, updated_at FROM exchanges ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exchanges []models.Exchange
	for rows.Next() {
		var exchange models.Exchange
		if err := rows.Scan(&exchange.ID, &exchange.Name, &exchange.CreatedAt, &exchange.UpdatedAt); err != nil {
			return nil, err
		}
		exchanges = append(exchanges, exchange)
	}
	return exchanges, rows.Err()
}

func (r *ExchangeRepository) GetByName(ctx context.Context, name string) (*models.Exchange, error) {
	query := `SELECT id, name, created_at, updated_at FROM exchanges WHERE LOWER(name) = LOWER($1)`

	var exchange models.Exchange
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&exchange.ID,
		&exchange.Name,
		&exchange.CreatedAt,
		&exchange.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &exchange, nil
}

func (r *ExchangeRepository) Create(ctx context.Context, exchange *models.Exchange) error {
	query := `INSERT INTO exchanges (name) VALUES ($1) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query, exchange.Name).Scan(
		&exchange.ID,
		&exchange.CreatedAt,
		&exchange.UpdatedAt,
	)
}
