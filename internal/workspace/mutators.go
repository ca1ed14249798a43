package workspace

import (
	"context"
	"fmt"

	"gitlab.com/yelinaung/trip-workspace/internal/logger"
	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

// SaveUser creates or replaces the profile record. An empty id marks a new
// profile and gets one assigned.
func (s *Store) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return models.User{}, ErrNotInitialized
	}

	now := s.now()
	if user.ID == "" {
		user.ID = s.newID()
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if err := persist(ctx, s, KeyUser, user); err != nil {
		return models.User{}, fmt.Errorf("saving user: %w", err)
	}
	s.user = &user

	logger.Log.Debug().Str("user", logger.HashEmail(user.Email)).Msg("Profile saved")
	return user, nil
}

// AddTrip appends a new trip with a freshly generated id.
func (s *Store) AddTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return models.Trip{}, ErrNotInitialized
	}

	now := s.now()
	trip.ID = s.newID()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	if trip.Status == "" {
		trip.Status = models.TripStatusPlanning
	}
	if trip.Travelers < 1 {
		trip.Travelers = 1
	}
	if trip.Budget.Currency == "" {
		trip.Budget.Currency = models.DefaultCurrency
	}

	next := append(append([]models.Trip(nil), s.trips...), trip)
	if err := persist(ctx, s, KeyTrips, next); err != nil {
		return models.Trip{}, fmt.Errorf("adding trip: %w", err)
	}
	s.trips = next
	return trip, nil
}

// UpdateTrip replaces a trip by id. Updating an unknown id is a no-op.
func (s *Store) UpdateTrip(ctx context.Context, trip models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	idx := -1
	for i, t := range s.trips {
		if t.ID == trip.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Log.Debug().Str("trip", logger.HashID(trip.ID)).Msg("Update for unknown trip ignored")
		return nil
	}

	trip.CreatedAt = s.trips[idx].CreatedAt
	trip.UpdatedAt = s.now()

	next := append([]models.Trip(nil), s.trips...)
	next[idx] = trip
	if err := persist(ctx, s, KeyTrips, next); err != nil {
		return fmt.Errorf("updating trip: %w", err)
	}
	s.trips = next
	return nil
}

// DeleteTrip removes a trip by id. Deleting an unknown id is a no-op.
func (s *Store) DeleteTrip(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	next := make([]models.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		if t.ID != id {
			next = append(next, t)
		}
	}
	if len(next) == len(s.trips) {
		return nil
	}

	if err := persist(ctx, s, KeyTrips, next); err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	s.trips = next
	return nil
}

// AddTripLocation attaches a point of interest to a trip.
func (s *Store) AddTripLocation(ctx context.Context, tripID string, loc models.Location) error {
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
		logger.Log.Debug().Str("trip", logger.HashID(tripID)).Msg("Location for unknown trip ignored")
		return nil
	}

	loc.ID = s.newID()

	next := append([]models.Trip(nil), s.trips...)
	trip := next[idx]
	trip.Locations = append(append([]models.Location(nil), trip.Locations...), loc)
	trip.UpdatedAt = s.now()
	next[idx] = trip

	if err := persist(ctx, s, KeyTrips, next); err != nil {
		return fmt.Errorf("adding trip location: %w", err)
	}
	s.trips = next
	return nil
}

// AddChecklistItem appends a single preparation task.
func (s *Store) AddChecklistItem(ctx context.Context, item models.ChecklistItem) (models.ChecklistItem, error) {
	items, err := s.AddChecklistItems(ctx, []models.ChecklistItem{item})
	if err != nil {
		return models.ChecklistItem{}, err
	}
	return items[0], nil
}

// AddChecklistItems appends a batch of preparation tasks in one write. The
// visa/health advisory flows use this to seed a trip's checklist.
func (s *Store) AddChecklistItems(ctx context.Context, items []models.ChecklistItem) ([]models.ChecklistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return nil, ErrNotInitialized
	}
	if len(items) == 0 {
		return nil, nil
	}

	now := s.now()
	added := make([]models.ChecklistItem, len(items))
	for i, item := range items {
		item.ID = s.newID()
		item.CreatedAt = now
		if item.Category == "" {
			item.Category = models.ChecklistOther
		}
		if item.Priority == "" {
			item.Priority = models.PriorityMedium
		}
		added[i] = item
	}

	next := append(append([]models.ChecklistItem(nil), s.checklist...), added...)
	if err := persist(ctx, s, KeyChecklist, next); err != nil {
		return nil, fmt.Errorf("adding checklist items: %w", err)
	}
	s.checklist = next
	return added, nil
}

// UpdateChecklistItem replaces a checklist item by id. Unknown ids are a
// no-op.
func (s *Store) UpdateChecklistItem(ctx context.Context, item models.ChecklistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	idx := -1
	for i, existing := range s.checklist {
		if existing.ID == item.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	item.CreatedAt = s.checklist[idx].CreatedAt

	next := append([]models.ChecklistItem(nil), s.checklist...)
	next[idx] = item
	if err := persist(ctx, s, KeyChecklist, next); err != nil {
		return fmt.Errorf("updating checklist item: %w", err)
	}
	s.checklist = next
	return nil
}

// ToggleChecklistItem flips the completion flag of a checklist item.
func (s *Store) ToggleChecklistItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	idx := -1
	for i, item := range s.checklist {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := append([]models.ChecklistItem(nil), s.checklist...)
	next[idx].Completed = !next[idx].Completed
	if err := persist(ctx, s, KeyChecklist, next); err != nil {
		return fmt.Errorf("toggling checklist item: %w", err)
	}
	s.checklist = next
	return nil
}

// DeleteChecklistItem removes a checklist item by id.
func (s *Store) DeleteChecklistItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	next := make([]models.ChecklistItem, 0, len(s.checklist))
	for _, item := range s.checklist {
		if item.ID != id {
			next = append(next, item)
		}
	}
	if len(next) == len(s.checklist) {
		return nil
	}

	if err := persist(ctx, s, KeyChecklist, next); err != nil {
		return fmt.Errorf("deleting checklist item: %w", err)
	}
	s.checklist = next
	return nil
}

// AddMedia appends a media record.
func (s *Store) AddMedia(ctx context.Context, m models.Media) (models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return models.Media{}, ErrNotInitialized
	}

	m.ID = s.newID()
	m.CreatedAt = s.now()

	next := append(append([]models.Media(nil), s.media...), m)
	if err := persist(ctx, s, KeyMedia, next); err != nil {
		return models.Media{}, fmt.Errorf("adding media: %w", err)
	}
	s.media = next
	return m, nil
}

// AddSavedPlace appends a bookmarked location.
func (s *Store) AddSavedPlace(ctx context.Context, p models.SavedPlace) (models.SavedPlace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return models.SavedPlace{}, ErrNotInitialized
	}

	p.ID = s.newID()
	if p.Location.ID == "" {
		p.Location.ID = s.newID()
	}
	p.CreatedAt = s.now()

	next := append(append([]models.SavedPlace(nil), s.savedPlaces...), p)
	if err := persist(ctx, s, KeySavedPlaces, next); err != nil {
		return models.SavedPlace{}, fmt.Errorf("adding saved place: %w", err)
	}
	s.savedPlaces = next
	return p, nil
}

// AddJournal appends a travel journal entry.
func (s *Store) AddJournal(ctx context.Context, j models.TravelJournal) (models.TravelJournal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return models.TravelJournal{}, ErrNotInitialized
	}

	now := s.now()
	j.ID = s.newID()
	j.CreatedAt = now
	j.UpdatedAt = now

	next := append(append([]models.TravelJournal(nil), s.journals...), j)
	if err := persist(ctx, s, KeyJournals, next); err != nil {
		return models.TravelJournal{}, fmt.Errorf("adding journal: %w", err)
	}
	s.journals = next
	logger.Log.Debug().
		Str("journal", logger.HashID(j.ID)).
		Str("content", logger.SanitizeText(j.Content)).
		Msg("Journal entry added")
	return j, nil
}

// UpdateJournal replaces a journal entry by id. Unknown ids are a no-op.
func (s *Store) UpdateJournal(ctx context.Context, j models.TravelJournal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	idx := -1
	for i, existing := range s.journals {
		if existing.ID == j.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	j.CreatedAt = s.journals[idx].CreatedAt
	j.UpdatedAt = s.now()

	next := append([]models.TravelJournal(nil), s.journals...)
	next[idx] = j
	if err := persist(ctx, s, KeyJournals, next); err != nil {
		return fmt.Errorf("updating journal: %w", err)
	}
	s.journals = next
	return nil
}

// AddPlaylist appends a playlist.
func (s *Store) AddPlaylist(ctx context.Context, p models.Playlist) (models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return models.Playlist{}, ErrNotInitialized
	}

	p.ID = s.newID()
	p.CreatedAt = s.now()

	next := append(append([]models.Playlist(nil), s.playlists...), p)
	if err := persist(ctx, s, KeyPlaylists, next); err != nil {
		return models.Playlist{}, fmt.Errorf("adding playlist: %w", err)
	}
	s.playlists = next
	return p, nil
}

// AddPost appends a social post.
func (s *Store) AddPost(ctx context.Context, p models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return models.Post{}, ErrNotInitialized
	}

	p.ID = s.newID()
	p.CreatedAt = s.now()

	next := append(append([]models.Post(nil), s.posts...), p)
	if err := persist(ctx, s, KeyPosts, next); err != nil {
		return models.Post{}, fmt.Errorf("adding post: %w", err)
	}
	s.posts = next
	return p, nil
}

// AddNotification appends an in-app notification.
func (s *Store) AddNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return models.Notification{}, ErrNotInitialized
	}

	n.ID = s.newID()
	n.CreatedAt = s.now()

	next := append(append([]models.Notification(nil), s.notifications...), n)
	if err := persist(ctx, s, KeyNotifications, next); err != nil {
		return models.Notification{}, fmt.Errorf("adding notification: %w", err)
	}
	s.notifications = next
	return n, nil
}

// MarkNotificationRead marks a notification as read. Unknown ids are a
// no-op.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	idx := -1
	for i, n := range s.notifications {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || s.notifications[idx].Read {
		return nil
	}

	next := append([]models.Notification(nil), s.notifications...)
	next[idx].Read = true
	if err := persist(ctx, s, KeyNotifications, next); err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	s.notifications = next
	return nil
}

// SetOnboardingComplete records whether onboarding has been completed.
func (s *Store) SetOnboardingComplete(ctx context.Context, done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	value := "false"
	if done {
		value = "true"
	}
	if err := s.backend.Set(ctx, KeyOnboarding, value); err != nil {
		return fmt.Errorf("saving onboarding flag: %w", err)
	}
	s.onboardingDone = done
	return nil
}
