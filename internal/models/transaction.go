package models

import (
	"time"

	"github.com/shopspring/decimal"

	"crypto-assets/internal/utils"
)

// Tipos de transacción permitidos
const (
	TransactionTypeBuy  = "BUY"
	TransactionTypeSell = "SELL"
)

// Transaction es una compra o venta de una moneda en un mercado,
// registrada con la fecha de ejecución en calendario gregoriano.
// Es inmutable una vez creada, salvo corrección de un administrador.
type Transaction struct {
	ID           string          `json:"id"`
	ProfileID    string          `json:"profile_id"`
	CoinID       int64           `json:"coin_id"`
	CoinCode     string          `json:"coin_code"`
	ExchangeID   *int64          `json:"exchange_id,omitempty"`
	ExchangeName *string         `json:"exchange_name,omitempty"`
	Market       string          `json:"market"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Date         time.Time       `json:"date"`
	PlatformID   string          `json:"platform_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TotalPrice es la base de costo de una compra (o lo recibido en una venta).
func (t *Transaction) TotalPrice() decimal.Decimal {
	return t.Quantity.Mul(t.Price)
}

// TransactionInput es el cuerpo de creación de transacciones.
type TransactionInput struct {
	CoinCode   string  `json:"coin_code" binding:"required"`
	Market     string  `json:"market" binding:"required"`
	Type       string  `json:"type" binding:"required,oneof=BUY SELL"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Exchange   string  `json:"exchange,omitempty"`
	Date       string  `json:"date,omitempty"`
	PlatformID string  `json:"platform_id,omitempty"`
}

// TransactionCorrection es la corrección parcial de un administrador.
// Solo los campos presentes se modifican.
type TransactionCorrection struct {
	Market     *string  `json:"market"`
	Type       *string  `json:"type" binding:"omitempty,oneof=BUY SELL"`
	Quantity   *float64 `json:"quantity" binding:"omitempty,gt=0"`
	Price      *float64 `json:"price" binding:"omitempty,gt=0"`
	Date       *string  `json:"date"`
	PlatformID *string  `json:"platform_id"`
}

// TransactionFilter son los criterios de consulta del listado.
type TransactionFilter struct {
	CoinID   int64
	CoinCode string
	DateFrom *time.Time
	DateTo   *time.Time
	Ordering string
}

// TransactionResponse es la forma serializada de una transacción,
// con los números normalizados y las fechas en calendario jalali.
type TransactionResponse struct {
	ID            string       `json:"id"`
	CoinCode      string       `json:"coin_code"`
	Market        string       `json:"market"`
	Type          string       `json:"type"`
	Quantity      utils.Number `json:"quantity"`
	Price         utils.Number `json:"price"`
	TotalPrice    utils.Number `json:"total_price"`
	Date          string       `json:"date"`
	GregorianDate string       `json:"gregorian_date"`
	ExchangeName  *string      `json:"exchange,omitempty"`
	PlatformID    string       `json:"platform_id,omitempty"`
}

// Response construye la representación de presentación de la transacción.
func (t *Transaction) Response() TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		CoinCode:      t.CoinCode,
		Market:        t.Market,
		Type:          t.Type,
		Quantity:      utils.FormatDecimal(t.Quantity),
		Price:         utils.FormatDecimal(t.Price),
		TotalPrice:    utils.FormatDecimal(t.TotalPrice()),
		Date:          utils.ToDisplayLocal(t.Date),
		GregorianDate: t.Date.UTC().Format("2006-01-02 15:04"),
		ExchangeName:  t.ExchangeName,
		PlatformID:    t.PlatformID,
	}
}
