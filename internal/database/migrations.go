package database

import (
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations() error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para asociar transacciones a una casa de cambio
	addExchangeColumnSQL := `
	ALTER TABLE transactions ADD COLUMN IF NOT EXISTS exchange_id BIGINT REFERENCES exchanges(id);
	`

	if _, err := DB.Exec(addExchangeColumnSQL); err != nil {
		log.Printf("Error al añadir la columna exchange_id: %v", err)
		return err
	}

	// Migración para el filtro por código de moneda
	createCoinCodeIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_coins_code ON coins(LOWER(code));
	`

	if _, err := DB.Exec(createCoinCodeIndexSQL); err != nil {
		log.Printf("Error al crear el índice de código de moneda: %v", err)
		return err
	}

	return nil
}
