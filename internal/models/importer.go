package models

import "time"

// Importer registra un trabajo de importación masiva de transacciones.
// Se escribe una sola vez al terminar el procesamiento.
type Importer struct {
	ID           string    `json:"id"`
	FileName     string    `json:"file_name"`
	ProfileID    string    `json:"profile_id"`
	SuccessCount int       `json:"success_count"`
	FailCount    int       `json:"fail_count"`
	Errors       string    `json:"errors,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
