package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// Orden de prioridad de mercados cuando no se conoce el mercado de la
// transacción. Coincide con las claves que escribe el trabajo de ingesta.
var marketPriority = []string{"irt", "usdt"}

// PriceReader resuelve el precio actual de una moneda consultando el
// caché: primero la clave directa coin_<codigo> y luego las claves por
// mercado. Es de solo lectura y no valida la frescura de las entradas.
type PriceReader struct {
	cache PriceCache
}

func NewPriceReader(cache PriceCache) *PriceReader {
	return &PriceReader{cache: cache}
}

// CurrentPrice devuelve el precio actual y si se encontró. La ausencia
// no es un error: significa "precio actualmente desconocido". Los
// errores del caché se registran y se tratan como ausencia.
func (r *PriceReader) CurrentPrice(ctx context.Context, code, market string) (decimal.Decimal, bool) {
	code = strings.ToLower(code)

	keys := []string{fmt.Sprintf("coin_%s", code)}
	if market != "" {
		keys = append(keys, fmt.Sprintf("coin_%s_%s", code, strings.ToLower(market)))
	} else {
		for _, m := range marketPriority {
			keys = append(keys, fmt.Sprintf("coin_%s_%s", code, m))
		}
	}

	for _, key := range keys {
		raw, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			log.Printf("Error al leer la clave %s del caché: %v", key, err)
			continue
		}
		if !ok || raw == "" {
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			log.Printf("Valor no numérico en la clave %s: %v", key, err)
			continue
		}
		// Un precio cero se trata como ausencia, igual que una clave vacía
		if price.IsZero() {
			continue
		}
		return price, true
	}

	return decimal.Decimal{}, false
}
