package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"crypto-assets/internal/models"
	"crypto-assets/internal/utils"
)

// CoinSource es la parte del repositorio de monedas que necesitan los
// servicios de lectura.
type CoinSource interface {
	ListEnabled(ctx context.Context) ([]models.Coin, error)
	GetByCode(ctx context.Context, code string) (*models.Coin, error)
}

// PriceListingService arma el listado de precios actuales de todas las
// monedas habilitadas. El listado completo se construye en memoria; la
// paginación la aplica la capa HTTP.
type PriceListingService struct {
	coins        CoinSource
	prices       *PriceReader
	mediaBaseURL string
}

func NewPriceListingService(coins CoinSource, prices *PriceReader, mediaBaseURL string) *PriceListingService {
	return &PriceListingService{
		coins:        coins,
		prices:       prices,
		mediaBaseURL: strings.TrimRight(mediaBaseURL, "/"),
	}
}

// ListCurrentPrices resuelve el precio de cada moneda habilitada y
// ordena el resultado: primero las monedas con precio (descendente),
// después las de precio desconocido, en orden estable.
func (s *PriceListingService) ListCurrentPrices(ctx context.Context) ([]models.CoinPrice, error) {
	coins, err := s.coins.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("Se encontraron %d monedas habilitadas", len(coins))

	prices := make([]models.CoinPrice, 0, len(coins))
	for i := range coins {
		coin := &coins[i]

		entry := models.CoinPrice{
			Code:  coin.Code,
			Title: coin.DisplayTitle(),
			Icon:  s.iconURL(coin),
		}

		// El mercado no se conoce en el listado: se recorren las
		// claves por mercado en orden de prioridad
		if price, ok := s.prices.CurrentPrice(ctx, coin.Code, ""); ok {
			entry.Price = utils.NumberPtr(price)
		}

		prices = append(prices, entry)
	}

	sort.SliceStable(prices, func(i, j int) bool {
		pi, pj := prices[i].Price, prices[j].Price
		if (pi == nil) != (pj == nil) {
			return pj == nil
		}
		if pi == nil {
			return false
		}
		return pi.Decimal().GreaterThan(pj.Decimal())
	})

	return prices, nil
}

// iconURL prefiere el ícono PNG sobre el SVG y lo convierte a URL absoluta.
func (s *PriceListingService) iconURL(coin *models.Coin) *string {
	path := coin.IconPNG
	if path == "" {
		path = coin.Icon
	}
	if path == "" {
		return nil
	}
	url := s.mediaBaseURL + "/" + strings.TrimLeft(path, "/")
	return &url
}
