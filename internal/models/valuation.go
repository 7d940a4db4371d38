package models

import (
	"github.com/shopspring/decimal"

	"crypto-assets/internal/utils"
)

// Valuation contiene los campos derivados de una transacción frente
// al precio actual de mercado. Los punteros nulos señalan "precio
// actualmente desconocido": nunca se fabrica un cero en su lugar.
type Valuation struct {
	TotalPrice       decimal.Decimal
	CurrentPrice     *decimal.Decimal
	CurrentValue     *decimal.Decimal
	ProfitOrLoss     *decimal.Decimal
	ChangePercentage *decimal.Decimal
}

// ValuationResponse es la forma serializada de la valuación.
// ProfitOrLoss solo se incluye para compras.
type ValuationResponse struct {
	TotalPrice       utils.Number  `json:"total_price"`
	CurrentPrice     *utils.Number `json:"current_price"`
	CurrentValue     *utils.Number `json:"current_value"`
	ProfitOrLoss     *utils.Number `json:"profit_or_loss,omitempty"`
	ChangePercentage *utils.Number `json:"change_percentage"`
}

// Response normaliza todos los campos derivados con el formateador.
func (v Valuation) Response() ValuationResponse {
	resp := ValuationResponse{TotalPrice: utils.FormatDecimal(v.TotalPrice)}
	if v.CurrentPrice != nil {
		resp.CurrentPrice = utils.NumberPtr(*v.CurrentPrice)
	}
	if v.CurrentValue != nil {
		resp.CurrentValue = utils.NumberPtr(*v.CurrentValue)
	}
	if v.ProfitOrLoss != nil {
		resp.ProfitOrLoss = utils.NumberPtr(*v.ProfitOrLoss)
	}
	if v.ChangePercentage != nil {
		resp.ChangePercentage = utils.NumberPtr(*v.ChangePercentage)
	}
	return resp
}

// CurrentValueAdmin es la variante de presentación para el panel de
// administración: mismo valor, redondeado a dos decimales.
func (v Valuation) CurrentValueAdmin() string {
	if v.CurrentValue == nil {
		return "-"
	}
	return v.CurrentValue.Round(2).String()
}

// CoinStats es el resumen por moneda del listado de transacciones.
type CoinStats struct {
	TotalProfitLoss utils.Number  `json:"total_profit_loss"`
	CurrentPrice    *utils.Number `json:"current_price"`
}
