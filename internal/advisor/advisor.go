// Package advisor derives trip preparation advisories from a destination and
// a travel request.
//
// Everything in this package is pure computation: no I/O, no clock, no
// catalog writes. Failures are input-validation failures, reported
// synchronously.
package advisor

import (
	"math"

	"github.com/shopspring/decimal"

	"gitlab.com/yelinaung/trip-workspace/internal/catalog"
	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

// DefaultTripDays is assumed when a request has no travel window yet.
const DefaultTripDays = 7

// BudgetRatios is the canonical split of a trip budget across categories.
// The shares sum to exactly 1; this table is the single source of truth for
// every breakdown the application displays.
var BudgetRatios = map[string]decimal.Decimal{
	models.CategoryTransport:     decimal.NewFromFloat(0.30),
	models.CategoryAccommodation: decimal.NewFromFloat(0.35),
	models.CategoryFood:          decimal.NewFromFloat(0.20),
	models.CategoryActivities:    decimal.NewFromFloat(0.10),
	models.CategoryShopping:      decimal.NewFromFloat(0.05),
}

// InvalidRequestError reports a malformed travel request or an unknown
// destination id.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid travel request: " + e.Reason
}

// Validate checks a travel request. Dates are optional; when both are
// present the window must not be inverted.
func Validate(req models.TravelRequest) error {
	if req.Travelers < 1 {
		return &InvalidRequestError{Reason: "travelers must be at least 1"}
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		return &InvalidRequestError{Reason: "end date precedes start date"}
	}
	return nil
}

// TripDays derives the trip length from the request's travel window, falling
// back to DefaultTripDays when either date is absent. A same-day window
// counts as one day.
func TripDays(req models.TravelRequest) int {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return DefaultTripDays
	}
	days := int(math.Ceil(req.EndDate.Sub(req.StartDate).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// CalculateBudget derives a spending plan for a destination.
//
// Category amounts are rounded to the nearest currency unit, but Total is
// always dailyBudget x days x travelers computed directly, never the sum of
// the rounded parts.
func CalculateBudget(dest models.Destination, req models.TravelRequest) (models.BudgetBreakdown, error) {
	if err := Validate(req); err != nil {
		return models.BudgetBreakdown{}, err
	}

	daily, ok := dest.AverageBudget[req.BudgetLevel]
	if !ok {
		return models.BudgetBreakdown{}, &InvalidRequestError{Reason: "unknown budget level " + req.BudgetLevel}
	}

	days := TripDays(req)
	total := daily.Mul(decimal.NewFromInt(int64(days))).Mul(decimal.NewFromInt(int64(req.Travelers)))

	return models.BudgetBreakdown{
		Transport:     total.Mul(BudgetRatios[models.CategoryTransport]).Round(0),
		Accommodation: total.Mul(BudgetRatios[models.CategoryAccommodation]).Round(0),
		Food:          total.Mul(BudgetRatios[models.CategoryFood]).Round(0),
		Activities:    total.Mul(BudgetRatios[models.CategoryActivities]).Round(0),
		Shopping:      total.Mul(BudgetRatios[models.CategoryShopping]).Round(0),
		Total:         total.Round(0),
		Currency:      dest.Currency,
		Days:          days,
	}, nil
}

// Advice bundles the three advisories for one destination and request.
type Advice struct {
	Destination models.Destination
	Budget      models.BudgetBreakdown
	Visa        models.VisaRequirement
	Health      models.HealthInfo
}

// Advise resolves a destination id against the catalog and produces all
// three advisories. An unknown destination id is an InvalidRequestError;
// unknown countries inside the visa/health tables are not.
func Advise(destinationID string, req models.TravelRequest) (Advice, error) {
	dest, ok := catalog.FindDestinationByID(destinationID)
	if !ok {
		return Advice{}, &InvalidRequestError{Reason: "unknown destination " + destinationID}
	}

	budget, err := CalculateBudget(dest, req)
	if err != nil {
		return Advice{}, err
	}

	return Advice{
		Destination: dest,
		Budget:      budget,
		Visa:        VisaRequirements(dest.Country, req.Nationality),
		Health:      HealthRequirements(dest.Country),
	}, nil
}
