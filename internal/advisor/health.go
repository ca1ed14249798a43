package advisor

import (
	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

// tropicalCountries is the fixed set of destinations with elevated
// tropical-disease risk.
var tropicalCountries = map[string]bool{
	"Brésil":        true,
	"Cambodge":      true,
	"Colombie":      true,
	"Côte d'Ivoire": true,
	"Inde":          true,
	"Indonésie":     true,
	"Kenya":         true,
	"Laos":          true,
	"Malaisie":      true,
	"Philippines":   true,
	"Sénégal":       true,
	"Tanzanie":      true,
	"Thaïlande":     true,
	"Vietnam":       true,
}

// HealthRequirements resolves health preparation advice for a destination
// country. Unknown countries get the universal baseline, never an error.
func HealthRequirements(destCountry string) models.HealthInfo {
	info := models.HealthInfo{
		Vaccinations: []models.Vaccination{
			{Name: "Hépatite A", Required: false},
			{Name: "Hépatite B", Required: false},
		},
		// Insurance is recommended for every trip. Deliberate policy, not a
		// computed value.
		MedicalInsurance: true,
	}

	if tropicalCountries[destCountry] {
		info.Vaccinations = append(info.Vaccinations,
			models.Vaccination{Name: "Fièvre jaune", Required: true},
			models.Vaccination{Name: "Traitement antipaludéen", Required: false},
		)
		info.Risks = append(info.Risks,
			"Paludisme",
			"Dengue",
			"Fièvre typhoïde",
		)
	}

	return info
}
