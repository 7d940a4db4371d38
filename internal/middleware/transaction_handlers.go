package middleware

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crypto-assets/internal/models"
	"crypto-assets/internal/utils"
)

// GetTransactions devuelve el listado paginado de transacciones.
// Cuando el filtro acota a una sola moneda, la respuesta incluye el
// resumen coin_stats con la ganancia/pérdida acumulada de las compras.
func GetTransactions(c *gin.Context) {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transactions, err := transactionRepo.Filter(c.Request.Context(), filter)
	if err != nil {
		log.Printf("Error al filtrar transacciones: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las transacciones"})
		return
	}

	responses := make([]models.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, transactions[i].Response())
	}

	response := PaginatedResponse(c, responses, GetPagination(c))

	// El resumen por moneda solo aplica con el listado acotado a una
	if filter.CoinID != 0 || filter.CoinCode != "" {
		if stats := transactionQry.CoinStats(c.Request.Context(), transactions); stats != nil {
			response["coin_stats"] = stats
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetTransactionDetails devuelve una transacción con su valuación completa.
func GetTransactionDetails(c *gin.Context) {
	tx, err := transactionRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la transacción"})
		return
	}

	valuation := valuationEngine.Valuate(c.Request.Context(), tx)
	c.JSON(http.StatusOK, gin.H{
		"transaction": tx.Response(),
		"valuation":   valuation.Response(),
	})
}

// CreateTransaction registra una transacción del perfil autenticado.
func CreateTransaction(c *gin.Context) {
	var input models.TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profileID := c.GetString("profileId")

	coin, err := coinRepo.GetByCode(c.Request.Context(), input.CoinCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moneda no encontrada"})
		return
	}
	if !coin.TradesOn(input.Market) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La moneda no opera en ese mercado"})
		return
	}

	tx := &models.Transaction{
		ID:         uuid.NewString(),
		ProfileID:  profileID,
		CoinID:     coin.ID,
		CoinCode:   coin.Code,
		Market:     input.Market,
		Type:       input.Type,
		Quantity:   decimal.NewFromFloat(input.Quantity),
		Price:      decimal.NewFromFloat(input.Price),
		Date:       time.Now(),
		PlatformID: input.PlatformID,
	}

	// Fecha jalali opcional del cuerpo
	if input.Date != "" {
		date, err := utils.ParseLocalDate(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		tx.Date = date
	}

	// Casa de cambio opcional, por nombre
	if input.Exchange != "" {
		exchange, err := exchangeRepo.GetByName(c.Request.Context(), input.Exchange)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Casa de cambio no encontrada"})
			return
		}
		tx.ExchangeID = &exchange.ID
		tx.ExchangeName = &exchange.Name
	}

	if err := transactionRepo.Insert(c.Request.Context(), tx); err != nil {
		log.Printf("Error al crear la transacción: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la transacción"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Transacción creada exitosamente",
		"transaction": tx.Response(),
	})
}

func parseTransactionFilter(c *gin.Context) (models.TransactionFilter, error) {
	filter := models.TransactionFilter{
		CoinCode: c.Query("coin_code"),
		Ordering: c.Query("ordering"),
	}

	if raw := c.Query("coin"); raw != "" {
		coinID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.CoinID = coinID
	}

	// date_from y date_to llegan como fechas jalali YYYY-MM-DD
	if raw := c.Query("date_from"); raw != "" {
		from, err := utils.ParseLocalDate(raw)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := utils.ParseLocalDate(raw)
		if err != nil {
			return filter, err
		}
		// El límite superior incluye todo el día indicado
		end := to.Add(24*time.Hour - time.Second)
		filter.DateTo = &end
	}

	return filter, nil
}
