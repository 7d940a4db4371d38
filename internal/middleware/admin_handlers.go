package middleware

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"crypto-assets/internal/models"
	"crypto-assets/internal/utils"
)

// CreateCoin da de alta una moneda en el catálogo.
func CreateCoin(c *gin.Context) {
	var input models.CoinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coin := &models.Coin{
		Code:    input.Code,
		Title:   input.Title,
		Enable:  true,
		Icon:    input.Icon,
		IconPNG: input.IconPNG,
		Markets: input.Markets,
	}
	if input.Enable != nil {
		coin.Enable = *input.Enable
	}

	if err := coinRepo.Create(c.Request.Context(), coin); err != nil {
		log.Printf("Error al crear la moneda: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la moneda"})
		return
	}

	c.JSON(http.StatusCreated, coin)
}

// UpdateCoin actualiza los datos de una moneda del catálogo.
func UpdateCoin(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador inválido"})
		return
	}

	coin, err := coinRepo.GetByID(c.Request.Context(), id)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Moneda no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la moneda"})
		return
	}

	var input models.CoinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coin.Code = input.Code
	coin.Title = input.Title
	coin.Icon = input.Icon
	coin.IconPNG = input.IconPNG
	coin.Markets = input.Markets
	if input.Enable != nil {
		coin.Enable = *input.Enable
	}

	if err := coinRepo.Update(c.Request.Context(), coin); err != nil {
		log.Printf("Error al actualizar la moneda: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la moneda"})
		return
	}

	c.JSON(http.StatusOK, coin)
}

// DeleteCoin elimina una moneda, solo si no tiene transacciones.
func DeleteCoin(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador inválido"})
		return
	}

	if err := coinRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Moneda eliminada"})
}

// UpdateTransaction aplica una corrección administrativa. Es la única
// vía de modificación de una transacción después de su creación.
func UpdateTransaction(c *gin.Context) {
	tx, err := transactionRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la transacción"})
		return
	}

	var correction models.TransactionCorrection
	if err := c.ShouldBindJSON(&correction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if correction.Market != nil {
		coin, err := coinRepo.GetByID(c.Request.Context(), tx.CoinID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la moneda"})
			return
		}
		if !coin.TradesOn(*correction.Market) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "La moneda no opera en ese mercado"})
			return
		}
		tx.Market = *correction.Market
	}
	if correction.Type != nil {
		tx.Type = *correction.Type
	}
	if correction.Quantity != nil {
		tx.Quantity = decimal.NewFromFloat(*correction.Quantity)
	}
	if correction.Price != nil {
		tx.Price = decimal.NewFromFloat(*correction.Price)
	}
	if correction.Date != nil {
		date, err := utils.ParseLocalDate(*correction.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		tx.Date = date
	}
	if correction.PlatformID != nil {
		tx.PlatformID = *correction.PlatformID
	}

	if err := transactionRepo.Update(c.Request.Context(), tx); err != nil {
		log.Printf("Error al corregir la transacción %s: %v", tx.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al corregir la transacción"})
		return
	}

	valuation := valuationEngine.Valuate(c.Request.Context(), tx)
	c.JSON(http.StatusOK, gin.H{
		"transaction":         tx.Response(),
		"valuation":           valuation.Response(),
		"current_value_admin": valuation.CurrentValueAdmin(),
	})
}

// GetImporters lista los trabajos de importación registrados.
func GetImporters(c *gin.Context) {
	importers, err := importerRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las importaciones"})
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse(c, importers, GetPagination(c)))
}
