// Package catalog holds the read-only destination catalog.
//
// Country names are in French, matching the product's locale; the advisor's
// rule tables key off these exact strings.
package catalog

import (
	"github.com/shopspring/decimal"

	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

func budgets(low, mid, high int64) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		models.TierBudget:   decimal.NewFromInt(low),
		models.TierModerate: decimal.NewFromInt(mid),
		models.TierLuxury:   decimal.NewFromInt(high),
	}
}

var destinations = []models.Destination{
	{
		ID:              "paris",
		Name:            "Paris",
		Country:         "France",
		Continent:       "Europe",
		Categories:      []string{"culture", "gastronomie", "romantique"},
		AverageBudget:   budgets(70, 150, 350),
		RecommendedDays: 4,
		BestTime:        "Avril - Juin, Septembre - Octobre",
		Languages:       []string{"Français"},
		Timezone:        "Europe/Paris",
		Currency:        "EUR",
	},
	{
		ID:              "berlin",
		Name:            "Berlin",
		Country:         "Allemagne",
		Continent:       "Europe",
		Categories:      []string{"culture", "histoire", "vie nocturne"},
		AverageBudget:   budgets(55, 110, 260),
		RecommendedDays: 4,
		BestTime:        "Mai - Septembre",
		Languages:       []string{"Allemand", "Anglais"},
		Timezone:        "Europe/Berlin",
		Currency:        "EUR",
	},
	{
		ID:              "barcelone",
		Name:            "Barcelone",
		Country:         "Espagne",
		Continent:       "Europe",
		Categories:      []string{"plage", "architecture", "gastronomie"},
		AverageBudget:   budgets(60, 120, 280),
		RecommendedDays: 5,
		BestTime:        "Mai - Juin, Septembre",
		Languages:       []string{"Espagnol", "Catalan"},
		Timezone:        "Europe/Madrid",
		Currency:        "EUR",
	},
	{
		ID:              "rome",
		Name:            "Rome",
		Country:         "Italie",
		Continent:       "Europe",
		Categories:      []string{"histoire", "culture", "gastronomie"},
		AverageBudget:   budgets(65, 130, 300),
		RecommendedDays: 4,
		BestTime:        "Avril - Mai, Octobre",
		Languages:       []string{"Italien"},
		Timezone:        "Europe/Rome",
		Currency:        "EUR",
	},
	{
		ID:              "new-york",
		Name:            "New York",
		Country:         "États-Unis",
		Continent:       "Amérique du Nord",
		Categories:      []string{"ville", "culture", "shopping"},
		AverageBudget:   budgets(120, 250, 550),
		RecommendedDays: 6,
		BestTime:        "Avril - Juin, Septembre - Novembre",
		Languages:       []string{"Anglais"},
		Timezone:        "America/New_York",
		Currency:        "USD",
	},
	{
		ID:              "bali",
		Name:            "Bali",
		Country:         "Indonésie",
		Continent:       "Asie",
		Categories:      []string{"plage", "nature", "bien-être"},
		AverageBudget:   budgets(30, 70, 200),
		RecommendedDays: 10,
		BestTime:        "Avril - Octobre",
		Languages:       []string{"Indonésien", "Anglais"},
		Timezone:        "Asia/Makassar",
		Currency:        "IDR",
	},
	{
		ID:              "bangkok",
		Name:            "Bangkok",
		Country:         "Thaïlande",
		Continent:       "Asie",
		Categories:      []string{"ville", "gastronomie", "temples"},
		AverageBudget:   budgets(35, 75, 220),
		RecommendedDays: 7,
		BestTime:        "Novembre - Février",
		Languages:       []string{"Thaï", "Anglais"},
		Timezone:        "Asia/Bangkok",
		Currency:        "THB",
	},
	{
		ID:              "tokyo",
		Name:            "Tokyo",
		Country:         "Japon",
		Continent:       "Asie",
		Categories:      []string{"ville", "culture", "gastronomie"},
		AverageBudget:   budgets(90, 180, 420),
		RecommendedDays: 8,
		BestTime:        "Mars - Mai, Octobre - Novembre",
		Languages:       []string{"Japonais"},
		Timezone:        "Asia/Tokyo",
		Currency:        "JPY",
	},
	{
		ID:              "marrakech",
		Name:            "Marrakech",
		Country:         "Maroc",
		Continent:       "Afrique",
		Categories:      []string{"culture", "désert", "souks"},
		AverageBudget:   budgets(40, 85, 240),
		RecommendedDays: 5,
		BestTime:        "Mars - Mai, Septembre - Novembre",
		Languages:       []string{"Arabe", "Français"},
		Timezone:        "Africa/Casablanca",
		Currency:        "MAD",
	},
	{
		ID:              "rio-de-janeiro",
		Name:            "Rio de Janeiro",
		Country:         "Brésil",
		Continent:       "Amérique du Sud",
		Categories:      []string{"plage", "carnaval", "nature"},
		AverageBudget:   budgets(45, 95, 260),
		RecommendedDays: 7,
		BestTime:        "Décembre - Mars",
		Languages:       []string{"Portugais"},
		Timezone:        "America/Sao_Paulo",
		Currency:        "BRL",
	},
}

// Destinations returns a copy of the full catalog.
func Destinations() []models.Destination {
	out := make([]models.Destination, len(destinations))
	copy(out, destinations)
	return out
}

// FindDestinationByID looks up a destination. The boolean reports presence;
// an unknown id is a valid input, not an error.
func FindDestinationByID(id string) (models.Destination, bool) {
	for _, d := range destinations {
		if d.ID == id {
			return d, true
		}
	}
	return models.Destination{}, false
}
