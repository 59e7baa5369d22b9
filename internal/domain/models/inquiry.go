package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceLine identifies which of the four inquiry forms a lead came from.
// Each line has its own table, mirroring the site's service pages.
type ServiceLine string

const (
	ServiceCSR            ServiceLine = "csr"
	ServiceTeamBuilding   ServiceLine = "team-building"
	ServiceCorporateEvent ServiceLine = "corporate-event"
	ServiceTraining       ServiceLine = "training-program"
)

var serviceTables = map[ServiceLine]string{
	ServiceCSR:            "csr_inquiries",
	ServiceTeamBuilding:   "team_building_inquiries",
	ServiceCorporateEvent: "corporate_event_inquiries",
	ServiceTraining:       "training_program_inquiries",
}

var serviceLabels = map[ServiceLine]string{
	ServiceCSR:            "CSR Initiative",
	ServiceTeamBuilding:   "Team Building",
	ServiceCorporateEvent: "Corporate Event",
	ServiceTraining:       "Training Program",
}

// Table returns the inquiry table backing this service line.
func (s ServiceLine) Table() (string, bool) {
	t, ok := serviceTables[s]
	return t, ok
}

// Label returns the human-readable name used in notification emails.
func (s ServiceLine) Label() string {
	return serviceLabels[s]
}

// ServiceByTable resolves an inquiry table name back to its service line.
// Used by the webhook formatter, which receives raw table names.
func ServiceByTable(table string) (ServiceLine, bool) {
	for s, t := range serviceTables {
		if t == table {
			return s, true
		}
	}
	return "", false
}

// Inquiry is a lead submitted through one of the service pages.
// status is free text, "new" on insert; no transition set is enforced.
type Inquiry struct {
	ID             uuid.UUID   `json:"id"`
	Service        ServiceLine `json:"service"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Company        string      `json:"company"`
	EventDate      *time.Time  `json:"event_date"`
	Headcount      int         `json:"headcount"`
	Budget         string      `json:"budget"`
	Location       string      `json:"location"`
	Message        string      `json:"message"`
	TrainingTopic  string      `json:"training_topic,omitempty"`  // training-program line only
	TrainingFormat string      `json:"training_format,omitempty"` // training-program line only
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}
