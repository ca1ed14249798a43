package workspace

import (
	"context"
	"time"

	"gitlab.com/yelinaung/trip-workspace/internal/logger"
	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

// DefaultReminderCheckInterval is how often the reminder loop scans the
// checklist.
const DefaultReminderCheckInterval = 30 * time.Minute

// DueChecklistReminders returns incomplete checklist items whose reminder
// time has passed.
func (s *Store) DueChecklistReminders(now time.Time) []models.ChecklistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []models.ChecklistItem
	for _, item := range s.checklist {
		if item.Completed || item.ReminderAt == nil {
			continue
		}
		if !item.ReminderAt.After(now) {
			due = append(due, item)
		}
	}
	return due
}

// StartReminderLoop periodically scans for due checklist reminders and
// records an in-app notification for each, once per item. Blocks until ctx
// is cancelled.
func (s *Store) StartReminderLoop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultReminderCheckInterval
	}

	logger.Log.Info().Dur("interval", interval).Msg("Checklist reminder loop started")

	notified := make(map[string]bool)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run one check immediately so reminders aren't delayed a full interval
	// after startup.
	s.notifyDueReminders(ctx, notified, s.now())

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info().Msg("Checklist reminder loop stopped")
			return
		case <-ticker.C:
			s.notifyDueReminders(ctx, notified, s.now())
		}
	}
}

func (s *Store) notifyDueReminders(ctx context.Context, notified map[string]bool, now time.Time) {
	for _, item := range s.DueChecklistReminders(now) {
		if notified[item.ID] {
			continue
		}

		_, err := s.AddNotification(ctx, models.Notification{
			UserID: item.UserID,
			Type:   "checklist_reminder",
			Title:  "Rappel : " + item.Title,
			Body:   item.Description,
		})
		if err != nil {
			logger.Log.Error().Err(err).Str("item", logger.HashID(item.ID)).
				Msg("Failed to record checklist reminder")
			continue
		}
		notified[item.ID] = true
	}
}
