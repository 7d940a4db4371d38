package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"crypto-assets/internal/models"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Columnas permitidas para el parámetro ordering. El prefijo "-"
// invierte el orden, igual que en la API original.
var orderingColumns = map[string]string{
	"date":     "t.date",
	"quantity": "t.quantity",
	"price":    "t.price",
}

const transactionColumns = `
	t.id, t.profile_id, t.coin_id, c.code, t.exchange_id, e.name,
	t.market, t.type, t.quantity, t.price, t.date, t.platform_id, t.created_at`

const transactionJoins = `
	FROM transactions t
	JOIN coins c ON c.id = t.coin_id
	LEFT JOIN exchanges e ON e.id = t.exchange_id`

// Filter devuelve el conjunto completo de transacciones que cumplen el
// filtro, en el orden pedido (fecha descendente por omisión). El
// resumen por moneda necesita el conjunto entero, así que la
// paginación se aplica después, en memoria.
func (r *TransactionRepository) Filter(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `SELECT` + transactionColumns + transactionJoins

	var conditions []string
	var args []any

	if filter.CoinID != 0 {
		args = append(args, filter.CoinID)
		conditions = append(conditions, fmt.Sprintf("t.coin_id = $%d", len(args)))
	}
	if filter.CoinCode != "" {
		args = append(args, filter.CoinCode)
		conditions = append(conditions, fmt.Sprintf("LOWER(c.code) = LOWER($%d)", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("t.date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("t.date <= $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY " + orderingClause(filter.Ordering)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error en la consulta de transacciones: %v", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("error escaneando transacción: %v", err)
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := `SELECT` + transactionColumns + transactionJoins + ` WHERE t.id = $1`
	return scanTransaction(r.db.QueryRowContext(ctx, query, id))
}

func (r *TransactionRepository) Insert(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, profile_id, coin_id, exchange_id, market, type, quantity, price, date, platform_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		tx.ID,
		tx.ProfileID,
		tx.CoinID,
		tx.ExchangeID,
		tx.Market,
		tx.Type,
		tx.Quantity,
		tx.Price,
		tx.Date,
		tx.PlatformID,
	).Scan(&tx.CreatedAt)
}

// Update aplica una corrección administrativa sobre los campos editables.
func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET market = $1, type = $2, quantity = $3, price = $4, date = $5, platform_id = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		tx.Market,
		tx.Type,
		tx.Quantity,
		tx.Price,
		tx.Date,
		tx.PlatformID,
		tx.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func orderingClause(ordering string) string {
	direction := "ASC"
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		ordering = ordering[1:]
	}
	column, ok := orderingColumns[ordering]
	if !ok {
		// Orden por omisión: fecha descendente
		return "t.date DESC"
	}
	return column + " " + direction
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var tx models.Transaction
	var exchangeID sql.NullInt64
	var exchangeName sql.NullString
	err := row.Scan(
		&tx.ID,
		&tx.ProfileID,
		&tx.CoinID,
		&tx.CoinCode,
		&exchangeID,
		&exchangeName,
		&tx.Market,
		&tx.Type,
		&tx.Quantity,
		&tx.Price,
		&tx.Date,
		&tx.PlatformID,
		&tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if exchangeID.Valid {
		tx.ExchangeID = &exchangeID.Int64
	}
	if exchangeName.Valid {
		tx.ExchangeName = &exchangeName.String
	}
	return &tx, nil
}
