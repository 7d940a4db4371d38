package models

import "time"

// Exchange es una casa de cambio; informativa, se asocia a las
// transacciones para indicar su procedencia.
type Exchange struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" binding:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
