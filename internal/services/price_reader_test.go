package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceReaderCurrentPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("clave de mercado", func(t *testing.T) {
		cache := NewMemoryCache()
		cache.Set("coin_btc_usdt", "97000.50")
		reader := NewPriceReader(cache)

		price, ok := reader.CurrentPrice(ctx, "btc", "usdt")
		require.True(t, ok)
		assert.Equal(t, "97000.5", price.String())
	})

	t.Run("otro mercado no encuentra la entrada", func(t *testing.T) {
		cache := NewMemoryCache()
		cache.Set("coin_btc_usdt", "97000.50")
		reader := NewPriceReader(cache)

		_, ok := reader.CurrentPrice(ctx, "btc", "irt")
		assert.False(t, ok)
	})

	t.Run("la clave directa tiene prioridad", func(t *testing.T) {
		cache := NewMemoryCache()
		cache.Set("coin_btc", "96000")
		cache.Set("coin_btc_usdt", "97000")
		reader := NewPriceReader(cache)

		price, ok := reader.CurrentPrice(ctx, "btc", "usdt")
		require.True(t, ok)
		assert.Equal(t, "96000", price.String())
	})

	t.Run("sin mercado recorre la prioridad fija", func(t *testing.T) {
		cache := NewMemoryCache()
		cache.Set("coin_eth_usdt", "3500")
		reader := NewPriceReader(cache)

		price, ok := reader.CurrentPrice(ctx, "eth", "")
		require.True(t, ok)
		assert.Equal(t, "3500", price.String())
	})

	t.Run("el codigo se normaliza a minusculas", func(t *testing.T) {
		cache := NewMemoryCache()
		cache.Set("coin_btc_usdt", "97000")
		reader := NewPriceReader(cache)

		_, ok := reader.CurrentPrice(ctx, "BTC", "USDT")
		assert.True(t, ok)
	})

	t.Run("ausencia total", func(t *testing.T) {
		reader := NewPriceReader(NewMemoryCache())

		_, ok := reader.CurrentPrice(ctx, "btc", "usdt")
		assert.False(t, ok)
	})

	t.Run("valor no numerico se trata como ausencia", func(t *testing.T) {
		cache := NewMemoryCache()
		cache.Set("coin_btc", "basura")
		cache.Set("coin_btc_usdt", "97000")
		reader := NewPriceReader(cache)

		price, ok := reader.CurrentPrice(ctx, "btc", "usdt")
		require.True(t, ok)
		assert.Equal(t, "97000", price.String())
	})

	t.Run("precio cero se trata como ausencia", func(t *testing.T) {
		cache := NewMemoryCache()
		cache.Set("coin_btc", "0")
		reader := NewPriceReader(cache)

		_, ok := reader.CurrentPrice(ctx, "btc", "")
		assert.False(t, ok)
	})

	t.Run("error del cache no falla la consulta", func(t *testing.T) {
		reader := NewPriceReader(failingCache{})

		_, ok := reader.CurrentPrice(ctx, "btc", "usdt")
		assert.False(t, ok)
	})

	t.Run("lecturas repetidas son identicas", func(t *testing.T) {
		cache := NewMemoryCache()
		cache.Set("coin_btc", "96000")
		reader := NewPriceReader(cache)

		first, ok1 := reader.CurrentPrice(ctx, "btc", "usdt")
		second, ok2 := reader.CurrentPrice(ctx, "btc", "usdt")
		require.True(t, ok1)
		require.True(t, ok2)
		assert.True(t, first.Equal(second))
	})
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("conexión rechazada")
}
