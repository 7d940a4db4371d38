package routes

import (
	"github.com/gin-gonic/gin"

	"crypto-assets/internal/middleware"
	"crypto-assets/internal/services"
)

func RegisterRoutes(router *gin.Engine, cache services.PriceCache) {
	// Inicializar repositorios y servicios
	middleware.InitHandlers(cache)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API de lectura pública
	router.GET("/prices/", middleware.GetPrices)
	router.GET("/transactions/", middleware.GetTransactions)
	router.GET("/transactions/:id", middleware.GetTransactionDetails)
	router.GET("/coins/", middleware.GetCoins)
	router.GET("/exchanges/", middleware.GetExchanges)

	// Escritura de perfiles autenticados
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/transactions", middleware.CreateTransaction)
		protected.POST("/imports", middleware.CreateImport)
	}

	// Rutas de admin para la curación del catálogo
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.POST("/coins", middleware.CreateCoin)
		admin.PUT("/coins/:id", middleware.UpdateCoin)
		admin.DELETE("/coins/:id", middleware.DeleteCoin)
		admin.PUT("/transactions/:id", middleware.UpdateTransaction)
		admin.GET("/importers", middleware.GetImporters)
	}
}
