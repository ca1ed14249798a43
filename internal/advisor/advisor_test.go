package advisor

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

func testDestination() models.Destination {
	return models.Destination{
		ID:      "testville",
		Name:    "Testville",
		Country: "Japon",
		AverageBudget: map[string]decimal.Decimal{
			models.TierBudget:   decimal.NewFromInt(50),
			models.TierModerate: decimal.NewFromInt(100),
			models.TierLuxury:   decimal.NewFromInt(250),
		},
		Currency: "EUR",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     models.TravelRequest
		wantErr string
	}{
		{
			name: "valid with dates",
			req: models.TravelRequest{
				StartDate:   start,
				EndDate:     start.AddDate(0, 0, 7),
				Travelers:   2,
				BudgetLevel: models.TierModerate,
			},
		},
		{
			name: "valid without dates",
			req:  models.TravelRequest{Travelers: 1, BudgetLevel: models.TierBudget},
		},
		{
			name:    "zero travelers",
			req:     models.TravelRequest{Travelers: 0, BudgetLevel: models.TierBudget},
			wantErr: "travelers must be at least 1",
		},
		{
			name:    "negative travelers",
			req:     models.TravelRequest{Travelers: -3, BudgetLevel: models.TierBudget},
			wantErr: "travelers must be at least 1",
		},
		{
			name: "inverted window",
			req: models.TravelRequest{
				StartDate:   start,
				EndDate:     start.AddDate(0, 0, -1),
				Travelers:   1,
				BudgetLevel: models.TierBudget,
			},
			wantErr: "end date precedes start date",
		},
		{
			name: "only start date set",
			req: models.TravelRequest{
				StartDate:   start,
				Travelers:   1,
				BudgetLevel: models.TierBudget,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.req)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var invalid *InvalidRequestError
			require.ErrorAs(t, err, &invalid)
			require.Contains(t, invalid.Reason, tt.wantErr)
		})
	}
}

func TestTripDays(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  models.TravelRequest
		want int
	}{
		{name: "no dates falls back to a week", req: models.TravelRequest{}, want: DefaultTripDays},
		{
			name: "only end date falls back to a week",
			req:  models.TravelRequest{EndDate: start},
			want: DefaultTripDays,
		},
		{
			name: "full week",
			req:  models.TravelRequest{StartDate: start, EndDate: start.AddDate(0, 0, 7)},
			want: 7,
		},
		{
			name: "same day counts as one",
			req:  models.TravelRequest{StartDate: start, EndDate: start},
			want: 1,
		},
		{
			name: "partial day rounds up",
			req:  models.TravelRequest{StartDate: start, EndDate: start.Add(36 * time.Hour)},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, TripDays(tt.req))
		})
	}
}

func TestBudgetRatiosSumToOne(t *testing.T) {
	t.Parallel()

	sum := decimal.Zero
	for _, ratio := range BudgetRatios {
		sum = sum.Add(ratio)
	}
	require.True(t, sum.Equal(decimal.NewFromInt(1)), "ratios sum to %s", sum)
}

// Scenario: moderate tier, two travelers, one week.
func TestCalculateBudgetModerateWeek(t *testing.T) {
	t.Parallel()

	req := models.TravelRequest{
		Travelers:   2,
		BudgetLevel: models.TierModerate,
	}

	breakdown, err := CalculateBudget(testDestination(), req)
	require.NoError(t, err)
	require.Equal(t, 7, breakdown.Days)
	require.True(t, breakdown.Total.Equal(decimal.NewFromInt(1400)),
		"total is %s", breakdown.Total)
	require.Equal(t, "EUR", breakdown.Currency)
	require.True(t, breakdown.Accommodation.Equal(decimal.NewFromInt(490)))
	require.True(t, breakdown.Transport.Equal(decimal.NewFromInt(420)))
}

func TestCalculateBudgetRejectsUnknownTier(t *testing.T) {
	t.Parallel()

	_, err := CalculateBudget(testDestination(), models.TravelRequest{
		Travelers:   1,
		BudgetLevel: "imperial",
	})
	var invalid *InvalidRequestError
	require.ErrorAs(t, err, &invalid)
}

// The total is always daily x days x travelers computed directly, never the
// sum of the rounded category fields, and rounding drift across categories
// stays below one unit per category.
func TestBudgetTotalIndependentOfRounding(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		dest := testDestination()
		daily := decimal.NewFromInt(rapid.Int64Range(1, 10000).Draw(t, "daily")).
			Div(decimal.NewFromInt(rapid.Int64Range(1, 7).Draw(t, "divisor")))
		dest.AverageBudget[models.TierModerate] = daily

		start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		days := rapid.IntRange(1, 60).Draw(t, "days")
		travelers := rapid.IntRange(1, 9).Draw(t, "travelers")

		req := models.TravelRequest{
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, days),
			Travelers:   travelers,
			BudgetLevel: models.TierModerate,
		}

		breakdown, err := CalculateBudget(dest, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		direct := daily.
			Mul(decimal.NewFromInt(int64(days))).
			Mul(decimal.NewFromInt(int64(travelers))).
			Round(0)
		if !breakdown.Total.Equal(direct) {
			t.Fatalf("total %s diverges from direct computation %s", breakdown.Total, direct)
		}

		categorySum := breakdown.Transport.
			Add(breakdown.Accommodation).
			Add(breakdown.Food).
			Add(breakdown.Activities).
			Add(breakdown.Shopping)
		slack := categorySum.Sub(breakdown.Total).Abs()
		if slack.GreaterThan(decimal.NewFromInt(5)) {
			t.Fatalf("rounding slack %s exceeds one unit per category", slack)
		}
	})
}

func TestAdvise(t *testing.T) {
	t.Parallel()

	advice, err := Advise("bali", models.TravelRequest{
		Travelers:   2,
		BudgetLevel: models.TierBudget,
		Nationality: "France",
	})
	require.NoError(t, err)
	require.Equal(t, "Indonésie", advice.Destination.Country)
	require.False(t, advice.Visa.Required)
	require.True(t, advice.Health.MedicalInsurance)
	require.True(t, advice.Budget.Total.IsPositive())
}

func TestAdviseUnknownDestination(t *testing.T) {
	t.Parallel()

	_, err := Advise("atlantis", models.TravelRequest{
		Travelers:   1,
		BudgetLevel: models.TierBudget,
	})
	var invalid *InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	require.Contains(t, invalid.Reason, "atlantis")
}
