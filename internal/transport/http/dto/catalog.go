package dto

import "github.com/google/uuid"

type CreateProjectTypeRequest struct {
	TypeKey      string `json:"type_key" validate:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// HeroImagePayload and ClientLogoPayload follow the project upsert
// convention: zero ID inserts, set ID updates.
type HeroImagePayload struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url" validate:"required"`
	Alt          string    `json:"alt"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
}

type ClientLogoPayload struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name" validate:"required"`
	URL          string    `json:"url" validate:"required"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
}
