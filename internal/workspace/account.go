package workspace

import (
	"context"
	"fmt"

	"gitlab.com/yelinaung/trip-workspace/internal/logger"
)

// DeleteAccount clears every storage key and all in-memory collections. The
// removal is retried once; on a second failure the error is returned and
// memory is left untouched so the caller never sees a silently mixed state.
func (s *Store) DeleteAccount(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	keys := AllKeys()
	if err := s.backend.RemoveMany(ctx, keys); err != nil {
		logger.Log.Warn().Err(err).Msg("Account deletion failed, retrying once")
		if err := s.backend.RemoveMany(ctx, keys); err != nil {
			return fmt.Errorf("deleting account data: %w", err)
		}
	}

	s.user = nil
	s.trips = nil
	s.expenses = nil
	s.checklist = nil
	s.media = nil
	s.savedPlaces = nil
	s.journals = nil
	s.playlists = nil
	s.posts = nil
	s.notifications = nil
	s.onboardingDone = false

	logger.Log.Info().Msg("Account deleted, workspace cleared")
	return nil
}

// Logout clears only the profile. Trips and the other collections remain on
// the device for the next login.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	if err := s.backend.Remove(ctx, KeyUser); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	s.user = nil

	logger.Log.Info().Msg("Logged out")
	return nil
}
