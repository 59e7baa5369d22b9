package dto

import (
	"time"

	"eventcraft/internal/domain/models"
)

type InquiryRequest struct {
	Name           string     `json:"name" validate:"required"`
	Email          string     `json:"email" validate:"required,email"`
	Phone          string     `json:"phone"`
	Company        string     `json:"company"`
	EventDate      *time.Time `json:"event_date"`
	Headcount      int        `json:"headcount"`
	Budget         string     `json:"budget"`
	Location       string     `json:"location"`
	Message        string     `json:"message"`
	TrainingTopic  string     `json:"training_topic"`
	TrainingFormat string     `json:"training_format"`
}

type InquiryListResponse struct {
	Items   []models.Inquiry `json:"items"`
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

// InquiryWebhookRequest is the database webhook body: one row insert event.
type InquiryWebhookRequest struct {
	Type   string                 `json:"type"`
	Table  string                 `json:"table" validate:"required"`
	Record map[string]interface{} `json:"record" validate:"required"`
}
