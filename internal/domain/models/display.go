package models

import "github.com/google/uuid"

// HeroImage and ClientLogo are simple ordered, toggleable display lists
// consumed by the landing page.

type HeroImage struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	Alt          string    `json:"alt"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
}

type ClientLogo struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
}
