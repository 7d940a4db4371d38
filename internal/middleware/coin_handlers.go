package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCoins devuelve el catálogo paginado de monedas habilitadas,
// sin resolución de precios.
func GetCoins(c *gin.Context) {
	coins, err := coinRepo.ListEnabled(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las monedas"})
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse(c, coins, GetPagination(c)))
}

// GetExchanges devuelve el catálogo de casas de cambio.
func GetExchanges(c *gin.Context) {
	exchanges, err := exchangeRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las casas de cambio"})
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse(c, exchanges, GetPagination(c)))
}
