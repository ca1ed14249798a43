package workspace

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"gitlab.com/yelinaung/trip-workspace/internal/exchange"
)

// SpentByCategory sums a trip's expenses per category.
func (s *Store) SpentByCategory(tripID string) map[string]decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := make(map[string]decimal.Decimal)
	for _, e := range s.expenses {
		if e.TripID != tripID {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// HomeCurrencyTotal converts a trip's expenses to the target currency and
// returns their sum. Read-only: it never writes to the backend or mutates a
// collection, so a conversion failure has no durability consequences.
func (s *Store) HomeCurrencyTotal(
	ctx context.Context,
	tripID, targetCurrency string,
	converter exchange.Converter,
) (decimal.Decimal, error) {
	expenses := s.ExpensesForTrip(tripID)

	total := decimal.Zero
	for _, e := range expenses {
		if e.Currency == targetCurrency {
			total = total.Add(e.Amount)
			continue
		}
		result, err := converter.Convert(ctx, e.Amount, e.Currency, targetCurrency)
		if err != nil {
			return decimal.Zero, fmt.Errorf("converting expense %s: %w", e.ID, err)
		}
		total = total.Add(result.Amount)
	}
	return total, nil
}
