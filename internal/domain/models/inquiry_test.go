package models_test

import (
	"testing"

	"eventcraft/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceLine_Table(t *testing.T) {
	cases := map[models.ServiceLine]string{
		models.ServiceCSR:            "csr_inquiries",
		models.ServiceTeamBuilding:   "team_building_inquiries",
		models.ServiceCorporateEvent: "corporate_event_inquiries",
		models.ServiceTraining:       "training_program_inquiries",
	}

	for service, table := range cases {
		got, ok := service.Table()
		require.True(t, ok)
		assert.Equal(t, table, got)
	}

	_, ok := models.ServiceLine("catering").Table()
	assert.False(t, ok)
}

func TestServiceByTable(t *testing.T) {
	service, ok := models.ServiceByTable("training_program_inquiries")
	require.True(t, ok)
	assert.Equal(t, models.ServiceTraining, service)

	_, ok = models.ServiceByTable("users")
	assert.False(t, ok)
}

func TestServiceLine_Label(t *testing.T) {
	assert.Equal(t, "CSR Initiative", models.ServiceCSR.Label())
	assert.Equal(t, "Training Program", models.ServiceTraining.Label())
}
