package workspace

import (
	"context"

	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

// ChecklistFromAdvice turns visa and health advisories into preparation
// tasks for a trip. Pure; the caller decides whether to store the result.
func ChecklistFromAdvice(userID, tripID string, visa models.VisaRequirement, health models.HealthInfo) []models.ChecklistItem {
	var items []models.ChecklistItem

	if visa.Required {
		items = append(items, models.ChecklistItem{
			UserID:      userID,
			TripID:      tripID,
			Title:       "Obtenir " + visa.Type,
			Description: "Délai de traitement : " + visa.ProcessingTime,
			Category:    models.ChecklistDocuments,
			Priority:    models.PriorityHigh,
		})
	}
	for _, doc := range visa.Documents {
		items = append(items, models.ChecklistItem{
			UserID:   userID,
			TripID:   tripID,
			Title:    doc,
			Category: models.ChecklistDocuments,
			Priority: models.PriorityMedium,
		})
	}

	for _, vac := range health.Vaccinations {
		priority := models.PriorityMedium
		if vac.Required {
			priority = models.PriorityHigh
		}
		items = append(items, models.ChecklistItem{
			UserID:   userID,
			TripID:   tripID,
			Title:    "Vaccination : " + vac.Name,
			Category: models.ChecklistHealth,
			Priority: priority,
		})
	}
	if health.MedicalInsurance {
		items = append(items, models.ChecklistItem{
			UserID:   userID,
			TripID:   tripID,
			Title:    "Souscrire une assurance voyage",
			Category: models.ChecklistHealth,
			Priority: models.PriorityMedium,
		})
	}

	return items
}

// SeedTripChecklist stores the advisory-derived tasks for a trip in one
// write.
func (s *Store) SeedTripChecklist(ctx context.Context, userID, tripID string, visa models.VisaRequirement, health models.HealthInfo) ([]models.ChecklistItem, error) {
	return s.AddChecklistItems(ctx, ChecklistFromAdvice(userID, tripID, visa, health))
}
