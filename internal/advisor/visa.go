package advisor

import (
	"github.com/shopspring/decimal"

	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

// countryUS is the destination country triggering the ESTA special case.
const countryUS = "États-Unis"

// euMembers is the fixed EU membership set. Travel between two member
// states needs no visa. This is configuration, not a live data source.
var euMembers = map[string]bool{
	"Allemagne":  true,
	"Autriche":   true,
	"Belgique":   true,
	"Bulgarie":   true,
	"Chypre":     true,
	"Croatie":    true,
	"Danemark":   true,
	"Espagne":    true,
	"Estonie":    true,
	"Finlande":   true,
	"France":     true,
	"Grèce":      true,
	"Hongrie":    true,
	"Irlande":    true,
	"Italie":     true,
	"Lettonie":   true,
	"Lituanie":   true,
	"Luxembourg": true,
	"Malte":      true,
	"Pays-Bas":   true,
	"Pologne":    true,
	"Portugal":   true,
	"Roumanie":   true,
	"Slovaquie":  true,
	"Slovénie":   true,
	"Suède":      true,
	"Tchéquie":   true,
}

// standardDocuments is the default document list for visa-free entry.
var standardDocuments = []string{
	"Passeport valide 6 mois après la date de retour",
	"Billet de retour ou de continuation",
	"Justificatif d'hébergement",
}

// VisaRequirements resolves the visa rule for a destination country and a
// traveler nationality. Unknown countries resolve to the visa-free default,
// never to an error.
func VisaRequirements(destCountry, nationality string) models.VisaRequirement {
	if euMembers[nationality] && euMembers[destCountry] {
		return models.VisaRequirement{
			Required: false,
			Type:     "Libre circulation UE",
			Duration: "Illimitée",
			Cost:     decimal.Zero,
			Documents: []string{
				"Carte nationale d'identité ou passeport en cours de validité",
			},
		}
	}

	if destCountry == countryUS {
		return models.VisaRequirement{
			Required:       true,
			Type:           "ESTA",
			Duration:       "90 jours",
			Cost:           decimal.NewFromInt(21),
			ProcessingTime: "72 heures",
			Documents: []string{
				"Passeport biométrique ou électronique",
				"Autorisation ESTA approuvée avant l'embarquement",
				"Billet de retour ou de continuation",
			},
		}
	}

	return models.VisaRequirement{
		Required:  false,
		Type:      "Exemption de visa",
		Duration:  "90 jours",
		Cost:      decimal.Zero,
		Documents: standardDocuments,
	}
}
