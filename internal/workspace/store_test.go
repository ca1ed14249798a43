package workspace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gitlab.com/yelinaung/trip-workspace/internal/backend"
	"gitlab.com/yelinaung/trip-workspace/internal/codec"
	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

var errBackendDown = errors.New("backend down")

func newTestStore(t *testing.T) (*Store, *backend.MemoryBackend) {
	t.Helper()
	b := backend.NewMemoryBackend()
	s := New(b)
	require.NoError(t, s.Initialize(context.Background()))
	return s, b
}

// seedCollection writes an encoded collection directly into the backend so a
// test can control the pre-initialize state.
func seedCollection[T any](t *testing.T, b *backend.MemoryBackend, key string, v T) {
	t.Helper()
	payload, err := codec.Encode(v)
	require.NoError(t, err)
	require.NoError(t, b.Set(context.Background(), key, payload))
}

func TestInitializeEmptyBackend(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	require.False(t, s.Loading())
	require.Nil(t, s.User())
	require.Empty(t, s.Trips())
	require.Empty(t, s.Expenses())
	require.Empty(t, s.ChecklistItems())
	require.Empty(t, s.Media())
	require.Empty(t, s.SavedPlaces())
	require.Empty(t, s.Journals())
	require.Empty(t, s.Playlists())
	require.Empty(t, s.Posts())
	require.Empty(t, s.Notifications())
	require.False(t, s.OnboardingComplete())
}

func TestMutatorsBeforeInitialize(t *testing.T) {
	t.Parallel()

	s := New(backend.NewMemoryBackend())
	ctx := context.Background()

	require.True(t, s.Loading())

	_, err := s.AddTrip(ctx, models.Trip{Title: "too early"})
	require.ErrorIs(t, err, ErrNotInitialized)

	_, err = s.SaveUser(ctx, models.User{Name: "too early"})
	require.ErrorIs(t, err, ErrNotInitialized)

	require.ErrorIs(t, s.DeleteAccount(ctx), ErrNotInitialized)
	require.ErrorIs(t, s.Logout(ctx), ErrNotInitialized)
}

func TestSaveUserPersistsAcrossRestart(t *testing.T) {
	t.Parallel()

	s, b := newTestStore(t)
	ctx := context.Background()

	saved, err := s.SaveUser(ctx, models.User{
		Name:        "Claire",
		Email:       "claire@example.com",
		Nationality: "France",
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	// A fresh store over the same backend simulates a process restart.
	restarted := New(b)
	require.NoError(t, restarted.Initialize(ctx))

	user := restarted.User()
	require.NotNil(t, user)
	require.Equal(t, saved, *user)
}

// Initializing twice with no mutations in between yields identical
// collections.
func TestInitializeIdempotent(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaveUser(ctx, models.User{Name: "Claire", Email: "c@example.com"})
	require.NoError(t, err)
	trip, err := s.AddTrip(ctx, models.Trip{Title: "Bali", Destination: "Bali", Country: "Indonésie"})
	require.NoError(t, err)
	_, err = s.AddExpense(ctx, models.Expense{TripID: trip.ID, Title: "Taxi", Amount: decimal.NewFromInt(12)})
	require.NoError(t, err)

	require.NoError(t, s.Initialize(ctx))
	firstUser := s.User()
	firstTrips := s.Trips()
	firstExpenses := s.Expenses()

	require.NoError(t, s.Initialize(ctx))
	require.Equal(t, firstUser, s.User())
	require.Equal(t, firstTrips, s.Trips())
	require.Equal(t, firstExpenses, s.Expenses())
}

func TestInitializeToleratesReadFailure(t *testing.T) {
	t.Parallel()

	b := backend.NewMemoryBackend()
	seedCollection(t, b, KeyUser, models.User{ID: "u1", Name: "Claire"})
	seedCollection(t, b, KeyTrips, []models.Trip{{ID: "t1", Title: "Bali"}})
	b.FailGet = func(key string) error {
		if key == KeyTrips {
			return errBackendDown
		}
		return nil
	}

	s := New(b)
	require.NoError(t, s.Initialize(context.Background()))

	// The failed key starts empty; the rest loads normally.
	require.Empty(t, s.Trips())
	require.NotNil(t, s.User())
}

func TestInitializeToleratesCorruptValue(t *testing.T) {
	t.Parallel()

	b := backend.NewMemoryBackend()
	require.NoError(t, b.Set(context.Background(), KeyTrips, "{corrupt"))
	seedCollection(t, b, KeyExpenses, []models.Expense{{ID: "e1", Amount: decimal.NewFromInt(5)}})

	s := New(b)
	require.NoError(t, s.Initialize(context.Background()))
	require.Empty(t, s.Trips())
	require.Len(t, s.Expenses(), 1)
}

func TestAddTripDefaults(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	trip, err := s.AddTrip(context.Background(), models.Trip{
		Title:       "Tokyo au printemps",
		Destination: "Tokyo",
		Country:     "Japon",
	})
	require.NoError(t, err)
	require.NotEmpty(t, trip.ID)
	require.Equal(t, models.TripStatusPlanning, trip.Status)
	require.Equal(t, 1, trip.Travelers)
	require.Equal(t, models.DefaultCurrency, trip.Budget.Currency)
	require.False(t, trip.CreatedAt.IsZero())

	got, ok := s.TripByID(trip.ID)
	require.True(t, ok)
	require.Equal(t, trip, got)
}

func TestUpdateTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	trip, err := s.AddTrip(ctx, models.Trip{Title: "Bali"})
	require.NoError(t, err)

	trip.Title = "Bali en famille"
	trip.Status = models.TripStatusUpcoming
	require.NoError(t, s.UpdateTrip(ctx, trip))

	got, ok := s.TripByID(trip.ID)
	require.True(t, ok)
	require.Equal(t, "Bali en famille", got.Title)
	require.Equal(t, models.TripStatusUpcoming, got.Status)
}

func TestUpdateUnknownTripIsNoop(t *testing.T) {
	t.Parallel()

	s, b := newTestStore(t)

	require.NoError(t, s.UpdateTrip(context.Background(), models.Trip{ID: "ghost", Title: "x"}))
	require.Empty(t, s.Trips())
	require.Zero(t, b.SetCalls[KeyTrips])
}

func TestDeleteTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	trip, err := s.AddTrip(ctx, models.Trip{Title: "Bali"})
	require.NoError(t, err)
	keep, err := s.AddTrip(ctx, models.Trip{Title: "Rome"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTrip(ctx, trip.ID))

	trips := s.Trips()
	require.Len(t, trips, 1)
	require.Equal(t, keep.ID, trips[0].ID)
}

func TestAddTripLocation(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	trip, err := s.AddTrip(ctx, models.Trip{Title: "Bali"})
	require.NoError(t, err)

	require.NoError(t, s.AddTripLocation(ctx, trip.ID, models.Location{
		Name:      "Ubud",
		Latitude:  -8.5069,
		Longitude: 115.2625,
	}))

	got, ok := s.TripByID(trip.ID)
	require.True(t, ok)
	require.Len(t, got.Locations, 1)
	require.NotEmpty(t, got.Locations[0].ID)
}

// A failed backend write must not update in-memory state.
func TestWriteFailureLeavesMemoryUnchanged(t *testing.T) {
	t.Parallel()

	s, b := newTestStore(t)
	b.FailSet = func(key string) error { return errBackendDown }

	_, err := s.AddTrip(context.Background(), models.Trip{Title: "doomed"})
	require.ErrorIs(t, err, errBackendDown)
	require.Empty(t, s.Trips())

	_, err = s.SaveUser(context.Background(), models.User{Name: "doomed"})
	require.ErrorIs(t, err, errBackendDown)
	require.Nil(t, s.User())
}

func TestChecklistLifecycle(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	item, err := s.AddChecklistItem(ctx, models.ChecklistItem{
		UserID: "u1",
		Title:  "Renouveler le passeport",
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.Equal(t, models.ChecklistOther, item.Category)
	require.Equal(t, models.PriorityMedium, item.Priority)

	require.NoError(t, s.ToggleChecklistItem(ctx, item.ID))
	require.True(t, s.ChecklistItems()[0].Completed)

	require.NoError(t, s.ToggleChecklistItem(ctx, item.ID))
	require.False(t, s.ChecklistItems()[0].Completed)

	require.NoError(t, s.DeleteChecklistItem(ctx, item.ID))
	require.Empty(t, s.ChecklistItems())
}

func TestAppendOnlyCollections(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddMedia(ctx, models.Media{UserID: "u1", Type: "photo", URL: "file:///p.jpg"})
	require.NoError(t, err)
	_, err = s.AddSavedPlace(ctx, models.SavedPlace{UserID: "u1", Location: models.Location{Name: "Louvre"}})
	require.NoError(t, err)
	_, err = s.AddJournal(ctx, models.TravelJournal{UserID: "u1", Title: "Jour 1", Content: "Arrivée"})
	require.NoError(t, err)
	_, err = s.AddPlaylist(ctx, models.Playlist{UserID: "u1", Name: "Route"})
	require.NoError(t, err)
	_, err = s.AddPost(ctx, models.Post{UserID: "u1", Content: "Enfin partis !"})
	require.NoError(t, err)
	n, err := s.AddNotification(ctx, models.Notification{UserID: "u1", Type: "info", Title: "Bienvenue"})
	require.NoError(t, err)

	require.Len(t, s.Media(), 1)
	require.Len(t, s.SavedPlaces(), 1)
	require.Len(t, s.Journals(), 1)
	require.Len(t, s.Playlists(), 1)
	require.Len(t, s.Posts(), 1)
	require.Len(t, s.Notifications(), 1)

	require.NoError(t, s.MarkNotificationRead(ctx, n.ID))
	require.True(t, s.Notifications()[0].Read)
}

func TestOnboardingFlagPersists(t *testing.T) {
	t.Parallel()

	s, b := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetOnboardingComplete(ctx, true))
	require.True(t, s.OnboardingComplete())

	restarted := New(b)
	require.NoError(t, restarted.Initialize(ctx))
	require.True(t, restarted.OnboardingComplete())
}

func TestLogoutKeepsOtherCollections(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaveUser(ctx, models.User{Name: "Claire", Email: "c@example.com"})
	require.NoError(t, err)
	_, err = s.AddTrip(ctx, models.Trip{Title: "Bali"})
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))

	require.Nil(t, s.User())
	require.Len(t, s.Trips(), 1)
}

// Account deletion removes every key; a later initialize finds nothing.
func TestDeleteAccountThenInitialize(t *testing.T) {
	t.Parallel()

	s, b := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaveUser(ctx, models.User{Name: "Claire", Email: "c@example.com"})
	require.NoError(t, err)
	trip, err := s.AddTrip(ctx, models.Trip{Title: "Bali"})
	require.NoError(t, err)
	_, err = s.AddExpense(ctx, models.Expense{TripID: trip.ID, Title: "Taxi", Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)
	require.NoError(t, s.SetOnboardingComplete(ctx, true))

	require.NoError(t, s.DeleteAccount(ctx))
	require.Zero(t, b.Len())
	require.Nil(t, s.User())
	require.Empty(t, s.Trips())
	require.Empty(t, s.Expenses())
	require.False(t, s.OnboardingComplete())

	restarted := New(b)
	require.NoError(t, restarted.Initialize(ctx))
	require.Nil(t, restarted.User())
	require.Empty(t, restarted.Trips())
	require.Empty(t, restarted.Expenses())
	require.False(t, restarted.OnboardingComplete())
}

func TestDeleteAccountRetriesOnce(t *testing.T) {
	t.Parallel()

	s, b := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddTrip(ctx, models.Trip{Title: "Bali"})
	require.NoError(t, err)

	failures := 1
	b.FailRemove = func(key string) error {
		if failures > 0 {
			failures--
			return errBackendDown
		}
		return nil
	}

	require.NoError(t, s.DeleteAccount(ctx))
	require.Zero(t, b.Len())
	require.Empty(t, s.Trips())
}

func TestDeleteAccountSurfacesPersistentFailure(t *testing.T) {
	t.Parallel()

	s, b := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddTrip(ctx, models.Trip{Title: "Bali"})
	require.NoError(t, err)

	b.FailRemove = func(key string) error { return errBackendDown }

	require.ErrorIs(t, s.DeleteAccount(ctx), errBackendDown)
	// Memory is left intact so the caller never sees a silently mixed state.
	require.Len(t, s.Trips(), 1)
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	trip, err := s.AddTrip(ctx, models.Trip{Title: "Bali"})
	require.NoError(t, err)

	trips := s.Trips()
	trips[0].Title = "mutated"

	got, ok := s.TripByID(trip.ID)
	require.True(t, ok)
	require.Equal(t, "Bali", got.Title)

	user, err := s.SaveUser(ctx, models.User{Name: "Claire", Email: "c@example.com"})
	require.NoError(t, err)
	s.User().Name = "mutated"
	require.Equal(t, user.Name, s.User().Name)
}

func TestConcurrentMutatorsLoseNoUpdates(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	const n = 20
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			_, err := s.AddTrip(ctx, models.Trip{Title: "concurrent"})
			done <- err
		}()
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-done)
	}
	require.Len(t, s.Trips(), n)
}

func fixedClock(s *Store, at time.Time) {
	s.now = func() time.Time { return at }
}
