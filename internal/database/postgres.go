package database

import (
	"database/sql"
	"os"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitDB() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "postgres://localhost:5432/crypto_assets?sslmode=disable"
	}

	var err error
	DB, err = sql.Open("postgres", dsn)
	if err != nil {
		return err
	}

	if err := DB.Ping(); err != nil {
		return err
	}

	// Crear tabla de monedas si no existe
	createCoinsTableSQL := `
	CREATE TABLE IF NOT EXISTS coins (
		id BIGSERIAL PRIMARY KEY,
		code TEXT UNIQUE NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		enable BOOLEAN NOT NULL DEFAULT TRUE,
		icon TEXT NOT NULL DEFAULT '',
		icon_png TEXT NOT NULL DEFAULT '',
		markets TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	if _, err = DB.Exec(createCoinsTableSQL); err != nil {
		return err
	}

	// Crear tabla de casas de cambio
	createExchangesTableSQL := `
	CREATE TABLE IF NOT EXISTS exchanges (
		id BIGSERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	if _, err = DB.Exec(createExchangesTableSQL); err != nil {
		return err
	}

	// Crear tabla de transacciones
	createTransactionsTableSQL := `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		coin_id BIGINT NOT NULL REFERENCES coins(id),
		market TEXT NOT NULL,
		type TEXT NOT NULL CHECK (type IN ('BUY', 'SELL')),
		quantity NUMERIC NOT NULL CHECK (quantity > 0),
		price NUMERIC NOT NULL CHECK (price > 0),
		date TIMESTAMPTZ NOT NULL,
		platform_id TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	if _, err = DB.Exec(createTransactionsTableSQL); err != nil {
		return err
	}

	// Crear índice para el orden por fecha dentro de una moneda
	createTransactionsIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_transactions_coin_date
	ON transactions(coin_id, date DESC);`

	if _, err = DB.Exec(createTransactionsIndexSQL); err != nil {
		return err
	}

	// Crear tabla de importaciones masivas
	createImportersTableSQL := `
	CREATE TABLE IF NOT EXISTS importers (
		id TEXT PRIMARY KEY,
		file_name TEXT NOT NULL,
		profile_id TEXT NOT NULL,
		success_count INTEGER NOT NULL DEFAULT 0,
		fail_count INTEGER NOT NULL DEFAULT 0,
		errors TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	if _, err = DB.Exec(createImportersTableSQL); err != nil {
		return err
	}

	// Ejecutar migraciones para actualizar el esquema
	return RunMigrations()
}
