package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"gitlab.com/yelinaung/trip-workspace/internal/logger"
	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

var errNonPositiveAmount = errors.New("expense amount must be positive")

// AddExpense records an expense and, in the same logical unit, raises the
// owning trip's spent amount so that trip.Budget.Spent always equals the sum
// of its expenses.
//
// The expense collection is written first. If the subsequent trip write
// fails, the returned error is a *PartialWriteError: the expense is durable,
// the budget update is not, and in-memory state matches storage on both
// sides. An expense against an unknown trip is recorded without a budget
// update.
func (s *Store) AddExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return models.Expense{}, ErrNotInitialized
	}
	if !expense.Amount.IsPositive() {
		return models.Expense{}, errNonPositiveAmount
	}

	now := s.now()
	expense.ID = s.newID()
	expense.CreatedAt = now
	if expense.Date.IsZero() {
		expense.Date = now
	}
	if expense.Category == "" {
		expense.Category = models.CategoryOther
	}
	if expense.Currency == "" {
		expense.Currency = models.DefaultCurrency
	}

	nextExpenses := append(append([]models.Expense(nil), s.expenses...), expense)
	if err := persist(ctx, s, KeyExpenses, nextExpenses); err != nil {
		return models.Expense{}, fmt.Errorf("recording expense: %w", err)
	}
	s.expenses = nextExpenses

	tripIdx := -1
	for i, t := range s.trips {
		if t.ID == expense.TripID {
			tripIdx = i
			break
		}
	}
	if tripIdx < 0 {
		logger.Log.Debug().Str("trip", logger.HashID(expense.TripID)).
			Msg("Expense recorded against unknown trip, budget untouched")
		return expense, nil
	}

	nextTrips := append([]models.Trip(nil), s.trips...)
	trip := nextTrips[tripIdx]
	trip.Budget.Spent = trip.Budget.Spent.Add(expense.Amount)
	trip.UpdatedAt = now
	nextTrips[tripIdx] = trip

	if err := persist(ctx, s, KeyTrips, nextTrips); err != nil {
		return expense, &PartialWriteError{
			ExpenseID: expense.ID,
			TripID:    expense.TripID,
			Err:       err,
		}
	}
	s.trips = nextTrips

	return expense, nil
}

// RepairTripSpent recomputes a trip's spent amount from its expenses and
// persists the correction. Callers use it to recover after a
// PartialWriteError.
func (s *Store) RepairTripSpent(ctx context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	idx := -1
	for i, t := range s.trips {
		if t.ID == tripID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	spent := decimal.Zero
	for _, e := range s.expenses {
		if e.TripID == tripID {
			spent = spent.Add(e.Amount)
		}
	}
	if s.trips[idx].Budget.Spent.Equal(spent) {
		return nil
	}

	next := append([]models.Trip(nil), s.trips...)
	next[idx].Budget.Spent = spent
	next[idx].UpdatedAt = s.now()
	if err := persist(ctx, s, KeyTrips, next); err != nil {
		return fmt.Errorf("repairing trip budget: %w", err)
	}
	s.trips = next
	return nil
}
