// Package workspace implements the trip workspace store: ten entity
// collections held in memory and mirrored to a durable key-value backend.
//
// Every mutation is serialized behind one store-level mutex and follows the
// write-through contract: the new collection value is persisted first, and
// in-memory state is updated only after the backend write succeeded. A
// failed write therefore never leaves memory ahead of durable state.
package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"gitlab.com/yelinaung/trip-workspace/internal/backend"
	"gitlab.com/yelinaung/trip-workspace/internal/codec"
	"gitlab.com/yelinaung/trip-workspace/internal/logger"
	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

// Store owns the workspace collections and their durable mirror. Construct
// one per process with New, call Initialize before use, and Close on
// shutdown.
type Store struct {
	backend backend.Backend

	mu          sync.Mutex
	initialized bool

	user          *models.User
	trips         []models.Trip
	expenses      []models.Expense
	checklist     []models.ChecklistItem
	media         []models.Media
	savedPlaces   []models.SavedPlace
	journals      []models.TravelJournal
	playlists     []models.Playlist
	posts         []models.Post
	notifications []models.Notification

	onboardingDone bool

	// Injectable for tests.
	now   func() time.Time
	newID func() string
}

// New creates a store over the given backend. The store is not usable until
// Initialize has completed.
func New(b backend.Backend) *Store {
	return &Store{
		backend: b,
		// UTC without a monotonic reading, so timestamps survive the codec
		// round trip unchanged.
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Initialize bulk-reads every storage key in parallel and populates the
// in-memory collections. Absent keys yield empty collections (nil for the
// user record); a read or decode failure for one key is logged and treated
// as an empty collection so one corrupt value cannot block startup.
//
// Calling Initialize again reloads from the backend; with no mutations in
// between, the result is identical.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := make(map[string]string)
	var rmu sync.Mutex
	var wg sync.WaitGroup

	for _, key := range AllKeys() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, ok, err := s.backend.Get(ctx, key)
			if err != nil {
				logger.Log.Warn().Err(err).Str("key", key).
					Msg("Failed to read collection, starting empty")
				return
			}
			if !ok {
				return
			}
			rmu.Lock()
			raw[key] = value
			rmu.Unlock()
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.user = decodeRecord[models.User](raw, KeyUser)
	s.trips = decodeCollection[models.Trip](raw, KeyTrips)
	s.expenses = decodeCollection[models.Expense](raw, KeyExpenses)
	s.checklist = decodeCollection[models.ChecklistItem](raw, KeyChecklist)
	s.media = decodeCollection[models.Media](raw, KeyMedia)
	s.savedPlaces = decodeCollection[models.SavedPlace](raw, KeySavedPlaces)
	s.journals = decodeCollection[models.TravelJournal](raw, KeyJournals)
	s.playlists = decodeCollection[models.Playlist](raw, KeyPlaylists)
	s.posts = decodeCollection[models.Post](raw, KeyPosts)
	s.notifications = decodeCollection[models.Notification](raw, KeyNotifications)
	s.onboardingDone = raw[KeyOnboarding] == "true"

	s.initialized = true

	logger.Log.Info().
		Int("trips", len(s.trips)).
		Int("expenses", len(s.expenses)).
		Bool("hasUser", s.user != nil).
		Msg("Workspace initialized")

	return nil
}

func decodeCollection[T any](raw map[string]string, key string) []T {
	value, ok := raw[key]
	if !ok {
		return nil
	}
	items, err := codec.Decode[[]T](value)
	if err != nil {
		logger.Log.Warn().Err(err).Str("key", key).
			Msg("Failed to decode collection, starting empty")
		return nil
	}
	return items
}

func decodeRecord[T any](raw map[string]string, key string) *T {
	value, ok := raw[key]
	if !ok {
		return nil
	}
	record, err := codec.Decode[T](value)
	if err != nil {
		logger.Log.Warn().Err(err).Str("key", key).
			Msg("Failed to decode record, starting empty")
		return nil
	}
	return &record
}

// Loading reports whether Initialize has not yet completed. Callers gate
// interaction on this flag.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.initialized
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// persist encodes v and writes it under key. In-memory state must only be
// updated after persist returns nil.
func persist[T any](ctx context.Context, s *Store, key string, v T) error {
	payload, err := codec.Encode(v)
	if err != nil {
		return err
	}
	return s.backend.Set(ctx, key, payload)
}

// User returns a copy of the profile, or nil when signed out.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Trips returns a copy of the trip collection.
func (s *Store) Trips() []models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Trip(nil), s.trips...)
}

// TripByID returns the trip with the given id. Absence is reported via the
// boolean, not an error.
func (s *Store) TripByID(id string) (models.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trips {
		if t.ID == id {
			return t, true
		}
	}
	return models.Trip{}, false
}

// Expenses returns a copy of the expense collection.
func (s *Store) Expenses() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Expense(nil), s.expenses...)
}

// ExpensesForTrip returns the expenses recorded against one trip.
func (s *Store) ExpensesForTrip(tripID string) []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Expense
	for _, e := range s.expenses {
		if e.TripID == tripID {
			out = append(out, e)
		}
	}
	return out
}

// ChecklistItems returns a copy of the checklist collection.
func (s *Store) ChecklistItems() []models.ChecklistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChecklistItem(nil), s.checklist...)
}

// Media returns a copy of the media collection.
func (s *Store) Media() []models.Media {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Media(nil), s.media...)
}

// SavedPlaces returns a copy of the saved place collection.
func (s *Store) SavedPlaces() []models.SavedPlace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SavedPlace(nil), s.savedPlaces...)
}

// Journals returns a copy of the travel journal collection.
func (s *Store) Journals() []models.TravelJournal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TravelJournal(nil), s.journals...)
}

// Playlists returns a copy of the playlist collection.
func (s *Store) Playlists() []models.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Playlist(nil), s.playlists...)
}

// Posts returns a copy of the post collection.
func (s *Store) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Post(nil), s.posts...)
}

// Notifications returns a copy of the notification collection.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.notifications...)
}

// OnboardingComplete reports whether onboarding has been completed on this
// device.
func (s *Store) OnboardingComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboardingDone
}
