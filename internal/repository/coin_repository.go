package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"crypto-assets/internal/models"
)

type CoinRepository struct {
	db *sql.DB
}

func NewCoinRepository(db *sql.DB) *CoinRepository {
	return &CoinRepository{db: db}
}

// ListEnabled devuelve las monedas habilitadas ordenadas por código.
func (r *CoinRepository) ListEnabled(ctx context.Context) ([]models.Coin, error) {
	query := `
		SELECT id, code, title, enable, icon, icon_png, markets, created_at, updated_at
		FROM coins
		WHERE enable = TRUE
		ORDER BY code`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coins []models.Coin
	for rows.Next() {
		coin, err := scanCoin(rows)
		if err != nil {
			return nil, err
		}
		coins = append(coins, *coin)
	}
	return coins, rows.Err()
}

// GetByCode busca una moneda por su código, sin distinguir mayúsculas.
func (r *CoinRepository) GetByCode(ctx context.Context, code string) (*models.Coin, error) {
	query := `
		SELECT id, code, title, enable, icon, icon_png, markets, created_at, updated_at
		FROM coins
		WHERE LOWER(code) = LOWER($1)`

	return scanCoin(r.db.QueryRowContext(ctx, query, code))
}

func (r *CoinRepository) GetByID(ctx context.Context, id int64) (*models.Coin, error) {
	query := `
		SELECT id, code, title, enable, icon, icon_png, markets, created_at, updated_at
		FROM coins
		WHERE id = $1`

	return scanCoin(r.db.QueryRowContext(ctx, query, id))
}

func (r *CoinRepository) Create(ctx context.Context, coin *models.Coin) error {
	query := `
		INSERT INTO coins (code, title, enable, icon, icon_png, markets)
		VALUES (LOWER($1), $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		coin.Code,
		coin.Title,
		coin.Enable,
		coin.Icon,
		coin.IconPNG,
		pq.Array(coin.Markets),
	).Scan(&coin.ID, &coin.CreatedAt, &coin.UpdatedAt)
}

func (r *CoinRepository) Update(ctx context.Context, coin *models.Coin) error {
	query := `
		UPDATE coins
		SET code = LOWER($1), title = $2, enable = $3, icon = $4, icon_png = $5, markets = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`

	return r.db.QueryRowContext(ctx, query,
		coin.Code,
		coin.Title,
		coin.Enable,
		coin.Icon,
		coin.IconPNG,
		pq.Array(coin.Markets),
		coin.ID,
	).Scan(&coin.UpdatedAt)
}

// Delete elimina una moneda solo si ninguna transacción la referencia.
func (r *CoinRepository) Delete(ctx context.Context, id int64) error {
	var count int
	countQuery := `SELECT COUNT(*) FROM transactions WHERE coin_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("la moneda tiene %d transacciones asociadas y no puede eliminarse", count)
	}

	_, err := r.db.ExecContext(ctx, `DELETE FROM coins WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoin(row rowScanner) (*models.Coin, error) {
	var coin models.Coin
	var markets pq.StringArray
	err := row.Scan(
		&coin.ID,
		&coin.Code,
		&coin.Title,
		&coin.Enable,
		&coin.Icon,
		&coin.IconPNG,
		&markets,
		&coin.CreatedAt,
		&coin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	coin.Code = strings.ToLower(coin.Code)
	coin.Markets = markets
	return &coin, nil
}
