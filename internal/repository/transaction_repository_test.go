package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto-assets/internal/models"
)

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "profile_id", "coin_id", "code", "exchange_id", "name",
		"market", "type", "quantity", "price", "date", "platform_id", "created_at",
	})
}

func TestTransactionFilterByCoinCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)SELECT.+FROM transactions t.+LOWER\(c\.code\) = LOWER\(\$1\).+ORDER BY t\.date DESC`).
		WithArgs("btc").
		WillReturnRows(transactionRows().
			AddRow("tx-1", "profile-1", 1, "btc", nil, nil, "usdt", "BUY", "0.5", "97000.00", now, "ext-1", now).
			AddRow("tx-2", "profile-1", 1, "btc", 3, "nobitex", "irt", "SELL", "2", "5400000000", now, "", now))

	repo := NewTransactionRepository(db)
	transactions, err := repo.Filter(context.Background(), models.TransactionFilter{CoinCode: "btc"})
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	first := transactions[0]
	assert.Equal(t, "tx-1", first.ID)
	assert.Equal(t, "btc", first.CoinCode)
	assert.Equal(t, "0.5", first.Quantity.String())
	assert.Nil(t, first.ExchangeID)

	second := transactions[1]
	require.NotNil(t, second.ExchangeName)
	assert.Equal(t, "nobitex", *second.ExchangeName)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionFilterByDateRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)SELECT.+t\.date >= \$1 AND t\.date <= \$2.+ORDER BY t\.quantity ASC`).
		WithArgs(from, to).
		WillReturnRows(transactionRows())

	repo := NewTransactionRepository(db)
	_, err = repo.Filter(context.Background(), models.TransactionFilter{
		DateFrom: &from,
		DateTo:   &to,
		Ordering: "quantity",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderingClause(t *testing.T) {
	tests := []struct {
		ordering string
		want     string
	}{
		{"", "t.date DESC"},
		{"date", "t.date ASC"},
		{"-date", "t.date DESC"},
		{"quantity", "t.quantity ASC"},
		{"-price", "t.price DESC"},
		{"profile_id; DROP TABLE transactions", "t.date DESC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, orderingClause(tt.ordering), "ordering=%q", tt.ordering)
	}
}

func TestTransactionUpdateMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE transactions`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTransactionRepository(db)
	err = repo.Update(context.Background(), &models.Transaction{ID: "no-existe"})
	assert.Error(t, err)
}
