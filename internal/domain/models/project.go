package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Category     string         `json:"category"`
	Description  string         `json:"description"`
	Details      string         `json:"details"` // long-form body shown on the project page
	Year         int            `json:"year"`
	Client       string         `json:"client"`
	TypeKey      string         `json:"type_key"` // references project_types.type_key
	Tags         []string       `json:"tags"`
	DisplayOrder int            `json:"display_order"` // presentation sort only, not unique
	IsActive     bool           `json:"is_active"`
	IsFeatured   bool           `json:"is_featured"`
	Gallery      []GalleryImage `json:"gallery"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// GalleryImage is a single image belonging to a project. The set is
// replaced as a whole on every project update, never diffed.
type GalleryImage struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	URL          string    `json:"url"`
	Alt          string    `json:"alt"`
	DisplayOrder int       `json:"display_order"`
}
