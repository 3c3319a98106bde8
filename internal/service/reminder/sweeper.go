package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/vatisha/water-reminders/internal/domain"
	"github.com/vatisha/water-reminders/internal/infra/push"
	"github.com/vatisha/water-reminders/internal/observability/metrics"
)

// Sweeper wakes snoozed notifications whose snooze window has passed:
// it re-sends the push and moves SNOOZED back to SENT.
type Sweeper struct {
	notifications domain.NotificationRepository
	sender        push.Sender
	metrics       *metrics.ReminderMetrics
}

func NewSweeper(notifications domain.NotificationRepository, sender push.Sender, reminderMetrics *metrics.ReminderMetrics) *Sweeper {
	return &Sweeper{
		notifications: notifications,
		sender:        sender,
		metrics:       reminderMetrics,
	}
}

// Sweep processes every due snoozed notification. Push delivery is best
// effort; the state transition happens regardless so the reminder surfaces
// in-app even when the push fails.
func (s *Sweeper) Sweep(ctx context.Context, now time.Time) (*SweepStats, error) {
	start := time.Now()

	due, err := s.notifications.ListDueSnoozed(ctx, now)
	if err != nil {
		return nil, err
	}

	stats := &SweepStats{}
	for _, notification := range due {
		stats.Processed++

		if notification.State != domain.NotificationStateSnoozed {
			// Stale index entry; the next Update call will drop it.
			continue
		}

		pushErr := s.sender.SendPush(ctx, notification.UserID, notification.Title, notification.Message, map[string]string{
			"notification_id":   notification.ID,
			"notification_type": notification.Type,
			"plant_id":          notification.PrimaryPlantID,
			"action_url":        notification.ActionURL,
		})
		if pushErr != nil {
			slog.ErrorContext(ctx, "failed to send push for woken reminder",
				slog.String("notification_id", notification.ID),
				slog.String("error", pushErr.Error()),
			)
		}

		if err := notification.Transition(domain.NotificationStateSent); err != nil {
			stats.Errors++
			s.metrics.RecordSnoozedWoken(ctx, "error")
			slog.ErrorContext(ctx, "failed to wake snoozed notification",
				slog.String("notification_id", notification.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		notification.SnoozedUntil = nil
		notification.IsRead = false

		if err := s.notifications.Update(ctx, notification); err != nil {
			stats.Errors++
			s.metrics.RecordSnoozedWoken(ctx, "error")
			slog.ErrorContext(ctx, "failed to update woken notification",
				slog.String("notification_id", notification.ID),
				slog.String("error", err.Error()),
			)
			continue
		}

		stats.Sent++
		s.metrics.RecordSnoozedWoken(ctx, "sent")
	}

	s.metrics.RecordSweepDuration(ctx, time.Since(start))
	if stats.Sent > 0 {
		slog.InfoContext(ctx, "processed snoozed reminders",
			slog.Int("processed", stats.Processed),
			slog.Int("sent", stats.Sent),
			slog.Int("errors", stats.Errors),
		)
	}
	return stats, nil
}
