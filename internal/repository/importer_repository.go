package repository

import (
	"context"
	"database/sql"

	"crypto-assets/internal/models"
)

type ImporterRepository struct {
	db *sql.DB
}

func NewImporterRepository(db *sql.DB) *ImporterRepository {
	return &ImporterRepository{db: db}
}

// Create registra el resultado de un trabajo de importación. El
// registro no vuelve a modificarse después.
func (r *ImporterRepository) Create(ctx context.Context, importer *models.Importer) error {
	query := `
		INSERT INTO importers (id, file_name, profile_id, success_count, fail_count, errors)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		importer.ID,
		importer.FileName,
		importer.ProfileID,
		importer.SuccessCount,
		importer.FailCount,
		importer.Errors,
	).Scan(&importer.CreatedAt)
}

func (r *ImporterRepository) List(ctx context.Context) ([]models.Importer, error) {
	query := `
		SELECT id, file_name, profile_id, success_count, fail_count, errors, created_at
		FROM importers
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var importers []models.Importer
	for rows.Next() {
		var importer models.Importer
		err := rows.Scan(
			&importer.ID,
			&importer.FileName,
			&importer.ProfileID,
			&importer.SuccessCount,
			&importer.FailCount,
			&importer.Errors,
			&importer.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		importers = append(importers, importer)
	}
	return importers, rows.Err()
}
