package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPrices devuelve el listado paginado de precios actuales de todas
// las monedas habilitadas. Las monedas sin precio en el caché aparecen
// al final con precio nulo: datos parciales son un resultado normal.
func GetPrices(c *gin.Context) {
	prices, err := priceListing.ListCurrentPrices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los precios"})
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse(c, prices, GetPagination(c)))
}
