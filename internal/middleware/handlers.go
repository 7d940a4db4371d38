package middleware

import (
	"os"

	"crypto-assets/internal/database"
	"crypto-assets/internal/repository"
	"crypto-assets/internal/services"
)

var (
	coinRepo        *repository.CoinRepository
	transactionRepo *repository.TransactionRepository
	exchangeRepo    *repository.ExchangeRepository
	importerRepo    *repository.ImporterRepository

	priceReader     *services.PriceReader
	valuationEngine *services.ValuationEngine
	priceListing    *services.PriceListingService
	transactionQry  *services.TransactionQueryService
	importerService *services.ImporterService
)

// InitHandlers construye los repositorios y servicios que usan los
// handlers. El caché de precios llega inyectado desde main: es un
// recurso externo compartido que este sistema solo lee.
func InitHandlers(cache services.PriceCache) {
	coinRepo = repository.NewCoinRepository(database.DB)
	transactionRepo = repository.NewTransactionRepository(database.DB)
	exchangeRepo = repository.NewExchangeRepository(database.DB)
	importerRepo = repository.NewImporterRepository(database.DB)

	priceReader = services.NewPriceReader(cache)
	valuationEngine = services.NewValuationEngine(priceReader)
	priceListing = services.NewPriceListingService(coinRepo, priceReader, os.Getenv("MEDIA_BASE_URL"))
	transactionQry = services.NewTransactionQueryService(valuationEngine, priceReader, os.Getenv("UNPRICED_BUY_POLICY"))
	importerService = services.NewImporterService(coinRepo, transactionRepo, importerRepo)
}
