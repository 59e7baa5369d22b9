package models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectType struct {
	ID           uuid.UUID `json:"id"`
	TypeKey      string    `json:"type_key"` // unique per type
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
