package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crypto-assets/internal/models"
	"crypto-assets/internal/utils"
)

// TransactionWriter es la parte de escritura del repositorio de
// transacciones que necesita el importador.
type TransactionWriter interface {
	Insert(ctx context.Context, tx *models.Transaction) error
}

// ImporterWriter registra el resultado de un trabajo de importación.
type ImporterWriter interface {
	Create(ctx context.Context, importer *models.Importer) error
}

// ImporterService procesa archivos CSV de transacciones. Cada fila se
// valida de forma independiente: las filas inválidas se cuentan y se
// anotan en el registro de errores sin abortar el resto del archivo.
type ImporterService struct {
	coins        CoinSource
	transactions TransactionWriter
	importers    ImporterWriter
}

func NewImporterService(coins CoinSource, transactions TransactionWriter, importers ImporterWriter) *ImporterService {
	return &ImporterService{
		coins:        coins,
		transactions: transactions,
		importers:    importers,
	}
}

// Columnas esperadas del CSV, en orden:
// coin_code, market, type, quantity, price, date (jalali, opcional), platform_id (opcional)
const importColumns = 5

// ImportCSV procesa el archivo y devuelve el registro del trabajo con
// los contadores de filas exitosas y fallidas.
func (s *ImporterService) ImportCSV(ctx context.Context, profileID, fileName string, file io.Reader) (*models.Importer, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	importer := &models.Importer{
		ID:        uuid.NewString(),
		FileName:  fileName,
		ProfileID: profileID,
		CreatedAt: time.Now(),
	}

	var errorLines []string
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			importer.FailCount++
			errorLines = append(errorLines, fmt.Sprintf("línea %d: %v", line, err))
			continue
		}

		// Saltar el encabezado si está presente
		if line == 1 && len(record) > 0 && strings.EqualFold(record[0], "coin_code") {
			line--
			continue
		}

		if err := s.importRow(ctx, profileID, record); err != nil {
			importer.FailCount++
			errorLines = append(errorLines, fmt.Sprintf("línea %d: %v", line, err))
			continue
		}
		importer.SuccessCount++
	}

	importer.Errors = strings.Join(errorLines, "\n")

	if err := s.importers.Create(ctx, importer); err != nil {
		return nil, err
	}
	return importer, nil
}

func (s *ImporterService) importRow(ctx context.Context, profileID string, record []string) error {
	if len(record) < importColumns {
		return fmt.Errorf("se esperaban al menos %d columnas, hay %d", importColumns, len(record))
	}

	code := strings.ToLower(strings.TrimSpace(record[0]))
	market := strings.ToLower(strings.TrimSpace(record[1]))
	txType := strings.ToUpper(strings.TrimSpace(record[2]))

	if txType != models.TransactionTypeBuy && txType != models.TransactionTypeSell {
		return fmt.Errorf("tipo inválido %q", record[2])
	}

	quantity, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil || !quantity.IsPositive() {
		return fmt.Errorf("cantidad inválida %q", record[3])
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil || !price.IsPositive() {
		return fmt.Errorf("precio inválido %q", record[4])
	}

	coin, err := s.coins.GetByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("moneda %q no encontrada", code)
	}
	if !coin.TradesOn(market) {
		return fmt.Errorf("la moneda %s no opera en el mercado %s", coin.Code, market)
	}

	date := time.Now()
	if len(record) > 5 && strings.TrimSpace(record[5]) != "" {
		date, err = utils.ParseLocalDate(strings.TrimSpace(record[5]))
		if err != nil {
			return err
		}
	}

	platformID := ""
	if len(record) > 6 {
		platformID = strings.TrimSpace(record[6])
	}

	tx := &models.Transaction{
		ID:         uuid.NewString(),
		ProfileID:  profileID,
		CoinID:     coin.ID,
		CoinCode:   coin.Code,
		Market:     market,
		Type:       txType,
		Quantity:   quantity,
		Price:      price,
		Date:       date,
		PlatformID: platformID,
	}
	return s.transactions.Insert(ctx, tx)
}
