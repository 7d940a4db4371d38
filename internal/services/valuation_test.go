package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto-assets/internal/models"
)

func buyTransaction(quantity, price string) *models.Transaction {
	return &models.Transaction{
		ID:       "tx-1",
		CoinCode: "btc",
		Market:   "usdt",
		Type:     models.TransactionTypeBuy,
		Quantity: decimal.RequireFromString(quantity),
		Price:    decimal.RequireFromString(price),
	}
}

func TestValuateBuyWithCurrentPrice(t *testing.T) {
	cache := NewMemoryCache()
	cache.Set("coin_btc_usdt", "150")
	engine := NewValuationEngine(NewPriceReader(cache))

	valuation := engine.Valuate(context.Background(), buyTransaction("2", "100"))

	assert.Equal(t, "200", valuation.TotalPrice.String())
	require.NotNil(t, valuation.CurrentPrice)
	assert.Equal(t, "150", valuation.CurrentPrice.String())
	require.NotNil(t, valuation.CurrentValue)
	assert.Equal(t, "300", valuation.CurrentValue.String())
	require.NotNil(t, valuation.ProfitOrLoss)
	assert.Equal(t, "100", valuation.ProfitOrLoss.String())
	require.NotNil(t, valuation.ChangePercentage)
	assert.Equal(t, "50", valuation.ChangePercentage.String())
}

func TestValuateWithoutCurrentPrice(t *testing.T) {
	engine := NewValuationEngine(NewPriceReader(NewMemoryCache()))

	valuation := engine.Valuate(context.Background(), buyTransaction("2", "100"))

	// El precio total no depende del caché; el resto queda ausente,
	// nunca un cero fabricado
	assert.Equal(t, "200", valuation.TotalPrice.String())
	assert.Nil(t, valuation.CurrentPrice)
	assert.Nil(t, valuation.CurrentValue)
	assert.Nil(t, valuation.ProfitOrLoss)
	assert.Nil(t, valuation.ChangePercentage)
}

func TestValuateSellOmitsProfit(t *testing.T) {
	cache := NewMemoryCache()
	cache.Set("coin_btc_usdt", "150")
	engine := NewValuationEngine(NewPriceReader(cache))

	tx := buyTransaction("2", "100")
	tx.Type = models.TransactionTypeSell

	valuation := engine.Valuate(context.Background(), tx)

	require.NotNil(t, valuation.CurrentValue)
	assert.Equal(t, "300", valuation.CurrentValue.String())
	assert.Nil(t, valuation.ProfitOrLoss, "la ganancia no tiene sentido para ventas")
	require.NotNil(t, valuation.ChangePercentage)
}

func TestValuateZeroExecutionPrice(t *testing.T) {
	cache := NewMemoryCache()
	cache.Set("coin_btc_usdt", "150")
	engine := NewValuationEngine(NewPriceReader(cache))

	tx := buyTransaction("2", "100")
	tx.Price = decimal.Decimal{}

	valuation := engine.Valuate(context.Background(), tx)

	assert.Nil(t, valuation.ChangePercentage, "sin división por cero: el porcentaje queda ausente")
	require.NotNil(t, valuation.CurrentValue)
}

func TestValuationResponseFormatting(t *testing.T) {
	cache := NewMemoryCache()
	cache.Set("coin_btc_usdt", "150.00")
	engine := NewValuationEngine(NewPriceReader(cache))

	resp := engine.Valuate(context.Background(), buyTransaction("2.0", "100.50")).Response()

	assert.Equal(t, "201", resp.TotalPrice.String())
	require.NotNil(t, resp.CurrentPrice)
	assert.Equal(t, "150", resp.CurrentPrice.String())
}

func TestCurrentValueAdmin(t *testing.T) {
	cache := NewMemoryCache()
	cache.Set("coin_btc_usdt", "150.555")
	engine := NewValuationEngine(NewPriceReader(cache))

	valuation := engine.Valuate(context.Background(), buyTransaction("1", "100"))
	assert.Equal(t, "150.56", valuation.CurrentValueAdmin())

	empty := engine.Valuate(context.Background(), &models.Transaction{
		CoinCode: "xyz",
		Market:   "usdt",
		Type:     models.TransactionTypeBuy,
		Quantity: decimal.RequireFromString("1"),
		Price:    decimal.RequireFromString("1"),
	})
	assert.Equal(t, "-", empty.CurrentValueAdmin())
}
