package workspace

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

func estaVisa() models.VisaRequirement {
	return models.VisaRequirement{
		Required:       true,
		Type:           "ESTA",
		Duration:       "90 jours",
		Cost:           decimal.NewFromInt(21),
		ProcessingTime: "72 heures",
		Documents:      []string{"Passeport biométrique"},
	}
}

func tropicalHealth() models.HealthInfo {
	return models.HealthInfo{
		Vaccinations: []models.Vaccination{
			{Name: "Hépatite A"},
			{Name: "Fièvre jaune", Required: true},
		},
		Risks:            []string{"Paludisme"},
		MedicalInsurance: true,
	}
}

func TestChecklistFromAdvice(t *testing.T) {
	t.Parallel()

	items := ChecklistFromAdvice("u1", "t1", estaVisa(), tropicalHealth())

	// One visa task, one document, two vaccinations, one insurance task.
	require.Len(t, items, 5)
	for _, item := range items {
		require.Equal(t, "u1", item.UserID)
		require.Equal(t, "t1", item.TripID)
	}

	require.Equal(t, "Obtenir ESTA", items[0].Title)
	require.Equal(t, models.ChecklistDocuments, items[0].Category)
	require.Equal(t, models.PriorityHigh, items[0].Priority)

	var highHealth int
	for _, item := range items {
		if item.Category == models.ChecklistHealth && item.Priority == models.PriorityHigh {
			highHealth++
		}
	}
	require.Equal(t, 1, highHealth, "the mandatory vaccination is the only high-priority health task")
}

func TestChecklistFromAdviceVisaFree(t *testing.T) {
	t.Parallel()

	visa := models.VisaRequirement{Documents: []string{"Passeport valide"}}
	health := models.HealthInfo{MedicalInsurance: true}

	items := ChecklistFromAdvice("u1", "t1", visa, health)
	require.Len(t, items, 2)
	for _, item := range items {
		require.NotEqual(t, models.PriorityHigh, item.Priority)
	}
}

func TestSeedTripChecklistPersists(t *testing.T) {
	t.Parallel()

	s, b := newTestStore(t)
	ctx := context.Background()

	added, err := s.SeedTripChecklist(ctx, "u1", "t1", estaVisa(), tropicalHealth())
	require.NoError(t, err)
	require.Len(t, added, 5)
	for _, item := range added {
		require.NotEmpty(t, item.ID)
	}

	// One batch, one backend write.
	require.Equal(t, 1, b.SetCalls[KeyChecklist])

	restarted := New(b)
	require.NoError(t, restarted.Initialize(ctx))
	require.Len(t, restarted.ChecklistItems(), 5)
}
