package models

import (
	"strings"
	"time"

	"crypto-assets/internal/utils"
)

// Coin es una criptomoneda del catálogo, curada por un administrador.
// Nunca se elimina mientras existan transacciones que la referencien.
type Coin struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code" binding:"required"`
	Title     string    `json:"title"`
	Enable    bool      `json:"enable"`
	Icon      string    `json:"icon,omitempty"`
	IconPNG   string    `json:"icon_png,omitempty"`
	Markets   []string  `json:"markets"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayTitle devuelve el título, o el código cuando no hay título.
func (c *Coin) DisplayTitle() string {
	if c.Title == "" {
		return c.Code
	}
	return c.Title
}

// TradesOn indica si la moneda opera en el mercado dado.
func (c *Coin) TradesOn(market string) bool {
	market = strings.ToLower(market)
	for _, m := range c.Markets {
		if strings.ToLower(m) == market {
			return true
		}
	}
	return false
}

// CoinInput es el cuerpo de creación/actualización de monedas (admin).
type CoinInput struct {
	Code    string   `json:"code" binding:"required"`
	Title   string   `json:"title"`
	Enable  *bool    `json:"enable"`
	Icon    string   `json:"icon"`
	IconPNG string   `json:"icon_png"`
	Markets []string `json:"markets"`
}

// CoinPrice es una entrada del listado de precios agregados.
// El precio es nulo cuando el caché no conoce la moneda.
type CoinPrice struct {
	Code  string        `json:"code"`
	Title string        `json:"title"`
	Icon  *string       `json:"icon"`
	Price *utils.Number `json:"price"`
}
