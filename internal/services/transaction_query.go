package services

import (
	"context"

	"github.com/shopspring/decimal"

	"crypto-assets/internal/models"
	"crypto-assets/internal/utils"
)

// Política para compras sin precio actual al acumular ganancia/pérdida.
// La implementación original restaba solo la base de costo (política
// "cost"), lo que subreporta pérdidas de forma dudosa; aquí la opción
// es explícita y la predeterminada excluye esas compras de la suma.
const (
	UnpricedBuySkip = "skip"
	UnpricedBuyCost = "cost"
)

// TransactionQueryService calcula el resumen por moneda del listado
// de transacciones ya filtrado.
type TransactionQueryService struct {
	valuation      *ValuationEngine
	prices         *PriceReader
	unpricedPolicy string
}

func NewTransactionQueryService(valuation *ValuationEngine, prices *PriceReader, unpricedPolicy string) *TransactionQueryService {
	if unpricedPolicy != UnpricedBuyCost {
		unpricedPolicy = UnpricedBuySkip
	}
	return &TransactionQueryService{
		valuation:      valuation,
		prices:         prices,
		unpricedPolicy: unpricedPolicy,
	}
}

// CoinStats acumula la ganancia/pérdida de las compras del conjunto
// filtrado y resuelve el precio actual de la moneda. Se usa cuando el
// listado está acotado a una sola moneda; devuelve nil con el conjunto
// vacío.
func (s *TransactionQueryService) CoinStats(ctx context.Context, transactions []models.Transaction) *models.CoinStats {
	if len(transactions) == 0 {
		return nil
	}

	total := decimal.Decimal{}
	coinCode := ""
	market := ""

	for i := range transactions {
		tx := &transactions[i]
		if tx.Type != models.TransactionTypeBuy {
			continue
		}

		// Moneda y mercado se toman de la primera compra
		if coinCode == "" {
			coinCode = tx.CoinCode
			market = tx.Market
		}

		valuation := s.valuation.Valuate(ctx, tx)
		if valuation.ProfitOrLoss != nil {
			total = total.Add(*valuation.ProfitOrLoss)
		} else if s.unpricedPolicy == UnpricedBuyCost {
			total = total.Sub(valuation.TotalPrice)
		}
	}

	// Sin compras, la moneda y el mercado salen de la primera
	// transacción que haya; la suma queda en cero
	if coinCode == "" {
		coinCode = transactions[0].CoinCode
		market = transactions[0].Market
	}

	stats := &models.CoinStats{
		TotalProfitLoss: utils.FormatDecimal(total),
	}
	if price, ok := s.prices.CurrentPrice(ctx, coinCode, market); ok {
		stats.CurrentPrice = utils.NumberPtr(price)
	}
	return stats
}
