package workspace

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned by mutators called before Initialize has
// completed.
var ErrNotInitialized = errors.New("workspace not initialized")

// PartialWriteError reports that the expense/trip dual write only half
// succeeded: the expense was persisted but the owning trip's budget was not
// updated. In-memory state matches what was durably written, so the trip
// budget temporarily undercounts until the caller retries the trip update.
type PartialWriteError struct {
	ExpenseID string
	TripID    string
	Err       error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("expense %s persisted but budget update for trip %s failed: %v",
		e.ExpenseID, e.TripID, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
