package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProjectPayload is the admin upsert body. A zero ID means insert; a set ID
// means full-row update. Gallery is a pointer on purpose: nil leaves the
// stored gallery alone, an empty slice clears it.
type ProjectPayload struct {
	ID           uuid.UUID              `json:"id"`
	Title        string                 `json:"title" validate:"required"`
	Category     string                 `json:"category"`
	Description  string                 `json:"description"`
	Details      string                 `json:"details"`
	Year         int                    `json:"year"`
	Client       string                 `json:"client"`
	TypeKey      string                 `json:"type_key"`
	Tags         []string               `json:"tags"`
	DisplayOrder int                    `json:"display_order"`
	IsActive     bool                   `json:"is_active"`
	IsFeatured   bool                   `json:"is_featured"`
	Gallery      *[]GalleryImagePayload `json:"gallery"`
}

type GalleryImagePayload struct {
	URL          string `json:"url" validate:"required"`
	Alt          string `json:"alt"`
	DisplayOrder int    `json:"display_order"`
}

type ProjectResponse struct {
	ID           uuid.UUID              `json:"id"`
	Title        string                 `json:"title"`
	Category     string                 `json:"category"`
	Description  string                 `json:"description"`
	Details      string                 `json:"details"`
	Year         int                    `json:"year"`
	Client       string                 `json:"client"`
	TypeKey      string                 `json:"type_key"`
	Tags         []string               `json:"tags"`
	DisplayOrder int                    `json:"display_order"`
	IsActive     bool                   `json:"is_active"`
	IsFeatured   bool                   `json:"is_featured"`
	Gallery      []GalleryImageResponse `json:"gallery"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type GalleryImageResponse struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	Alt          string    `json:"alt"`
	DisplayOrder int       `json:"display_order"`
}
