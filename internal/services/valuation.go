package services

import (
	"context"

	"github.com/shopspring/decimal"

	"crypto-assets/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// ValuationEngine calcula los campos derivados de una transacción
// frente al precio actual. Es una función pura sobre la transacción
// más el lector de precios inyectado: no memoriza resultados.
type ValuationEngine struct {
	prices *PriceReader
}

func NewValuationEngine(prices *PriceReader) *ValuationEngine {
	return &ValuationEngine{prices: prices}
}

// Valuate calcula precio total, precio actual, valor actual,
// ganancia/pérdida y porcentaje de cambio. Cuando el precio actual es
// desconocido, los campos dependientes quedan nulos. La ganancia solo
// tiene sentido para compras; para ventas se omite.
func (e *ValuationEngine) Valuate(ctx context.Context, tx *models.Transaction) models.Valuation {
	valuation := models.Valuation{TotalPrice: tx.TotalPrice()}

	current, ok := e.prices.CurrentPrice(ctx, tx.CoinCode, tx.Market)
	if !ok {
		return valuation
	}

	valuation.CurrentPrice = &current

	value := tx.Quantity.Mul(current)
	valuation.CurrentValue = &value

	if tx.Type == models.TransactionTypeBuy {
		profit := value.Sub(valuation.TotalPrice)
		valuation.ProfitOrLoss = &profit
	}

	// Porcentaje indefinido con precio de ejecución cero: se reporta
	// como ausente, nunca como división por cero
	if !tx.Price.IsZero() {
		change := current.Sub(tx.Price).Div(tx.Price).Mul(oneHundred)
		valuation.ChangePercentage = &change
	}

	return valuation
}
