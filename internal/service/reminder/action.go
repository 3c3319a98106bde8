package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vatisha/water-reminders/internal/config"
	"github.com/vatisha/water-reminders/internal/domain"
	"github.com/vatisha/water-reminders/internal/infra/plantstore"
	"github.com/vatisha/water-reminders/internal/observability/metrics"
	"github.com/vatisha/water-reminders/internal/timezone"
)

// Cutoff after which "snooze until tomorrow" lands the day after tomorrow,
// so a late-evening snooze is not woken a few hours later.
const lateSnoozeCutoffHour = 17

type ActionService struct {
	notifications domain.NotificationRepository
	states        domain.ReminderStateRepository
	plants        plantstore.PlantRepository
	tz            timezone.Resolver
	cfg           *config.ReminderConfig
	metrics       *metrics.ReminderMetrics
}

func NewActionService(
	notifications domain.NotificationRepository,
	states domain.ReminderStateRepository,
	plants plantstore.PlantRepository,
	tz timezone.Resolver,
	cfg *config.ReminderConfig,
	reminderMetrics *metrics.ReminderMetrics,
) *ActionService {
	return &ActionService{
		notifications: notifications,
		states:        states,
		plants:        plants,
		tz:            tz,
		cfg:           cfg,
		metrics:       reminderMetrics,
	}
}

// Handle applies a user action to a notification. plantID narrows a watered
// action to one plant of a batched notification; empty means all of them.
func (s *ActionService) Handle(ctx context.Context, notificationID, userID, action, plantID string, now time.Time) (*ActionResult, error) {
	notification, err := s.notifications.Get(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification.UserID != userID {
		return nil, domain.ErrNotificationNotFound
	}

	var result *ActionResult
	switch action {
	case ActionWatered:
		result, err = s.handleWatered(ctx, notification, plantID, now)
	case ActionSnooze4h:
		result, err = s.handleSnooze(ctx, notification, now.Add(4*time.Hour), now, "Reminder snoozed for 4 hours")
	case ActionSnoozeTomorrow:
		result, err = s.handleSnooze(ctx, notification, s.nextMorning(notification.Timezone, now), now, "Reminder scheduled for tomorrow morning")
	case ActionDismiss:
		result, err = s.handleDismiss(ctx, notification)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.RecordActionHandled(ctx, action, outcome)
	return result, err
}

func (s *ActionService) handleWatered(ctx context.Context, notification *domain.Notification, plantID string, now time.Time) (*ActionResult, error) {
	toMark := notification.PlantIDs
	if plantID != "" {
		toMark = nil
		for _, pid := range notification.PlantIDs {
			if pid == plantID {
				toMark = []string{plantID}
				break
			}
		}
	}

	watered := make([]string, 0, len(toMark))
	singleName := "Your plant"
	for _, pid := range toMark {
		plant, err := s.plants.GetPlant(ctx, pid, notification.UserID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to load plant for watering",
				slog.String("plant_id", pid),
				slog.String("error", err.Error()),
			)
			continue
		}
		dp := plant.ToDomain()
		if len(toMark) == 1 {
			singleName = dp.DisplayName()
		}

		streak := domain.NextWateringStreak(dp.LastWatered, dp.WateringStreak, now)
		if err := s.plants.MarkWatered(ctx, pid, notification.UserID, streak, now); err != nil {
			slog.ErrorContext(ctx, "failed to mark plant as watered",
				slog.String("plant_id", pid),
				slog.String("error", err.Error()),
			)
			continue
		}
		watered = append(watered, pid)

		s.resetState(ctx, notification.UserID, pid, now)
	}

	// Completion counts plants watered by prior calls on this notification,
	// so a batch watered one plant at a time still reaches ACTIONED.
	merged := mergeWatered(notification.Metadata.WateredPlants, watered)
	allWatered := containsAll(merged, notification.PlantIDs)
	if allWatered {
		if err := notification.Transition(domain.NotificationStateActioned); err != nil {
			return nil, err
		}
		actionedAt := now
		notification.ActionedAt = &actionedAt
	}
	notification.IsRead = true
	notification.Metadata.WateredPlants = merged

	if err := s.notifications.Update(ctx, notification); err != nil {
		return nil, err
	}

	feedback := ActionConfirmed(singleName)
	if len(watered) > 1 {
		feedback = ActionConfirmedAll()
	}
	return &ActionResult{
		Success:         true,
		WateredCount:    len(watered),
		AllWatered:      allWatered,
		FeedbackMessage: feedback,
	}, nil
}

func (s *ActionService) handleSnooze(ctx context.Context, notification *domain.Notification, until, now time.Time, feedback string) (*ActionResult, error) {
	if err := notification.Transition(domain.NotificationStateSnoozed); err != nil {
		return nil, err
	}
	notification.SnoozedUntil = &until
	notification.IsRead = true

	if err := s.notifications.Update(ctx, notification); err != nil {
		return nil, err
	}

	for _, pid := range notification.PlantIDs {
		state, err := s.states.GetOrCreate(ctx, notification.UserID, pid, now)
		if err != nil {
			slog.ErrorContext(ctx, "failed to load reminder state for snooze",
				slog.String("plant_id", pid),
				slog.String("error", err.Error()),
			)
			continue
		}
		state.Apply(domain.StateUpdate{
			Action:       domain.ReminderActionSnoozed,
			SnoozedUntil: &until,
		}, now, s.cfg.MaxDays)
		if err := s.states.Save(ctx, state); err != nil {
			slog.ErrorContext(ctx, "failed to save reminder state",
				slog.String("plant_id", pid),
				slog.String("error", err.Error()),
			)
		}
	}

	return &ActionResult{
		Success:         true,
		SnoozedUntil:    &until,
		FeedbackMessage: feedback,
	}, nil
}

func (s *ActionService) handleDismiss(ctx context.Context, notification *domain.Notification) (*ActionResult, error) {
	// Dismiss does not reset reminder state; escalation continues tomorrow.
	if err := notification.Transition(domain.NotificationStateDismissed); err != nil {
		return nil, err
	}
	notification.IsRead = true

	if err := s.notifications.Update(ctx, notification); err != nil {
		return nil, err
	}
	return &ActionResult{
		Success:         true,
		FeedbackMessage: "Reminder dismissed",
	}, nil
}

// ResumeReminders clears a silence pause for a plant, called when the user
// opens the plant detail or re-enables reminders. Returns false when nothing
// was paused.
func (s *ActionService) ResumeReminders(ctx context.Context, userID, plantID string, now time.Time) (bool, error) {
	state, err := s.states.Get(ctx, userID, plantID)
	if err != nil {
		if errors.Is(err, domain.ErrReminderStateNotFound) {
			return false, nil
		}
		return false, err
	}
	if state.ConsecutiveDays < s.cfg.MaxDays {
		return false, nil
	}

	state.Apply(domain.StateUpdate{Action: domain.ReminderActionResumed}, now, s.cfg.MaxDays)
	if err := s.states.Save(ctx, state); err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "resumed reminders",
		slog.String("user_id", userID),
		slog.String("plant_id", plantID),
	)
	return true, nil
}

// nextMorning is the next delivery hour in the notification's timezone,
// skipping an extra day when snoozed in the late evening.
func (s *ActionService) nextMorning(tzName string, now time.Time) time.Time {
	loc := s.tz.Location(tzName)
	localNow := now.In(loc)

	tomorrow := localNow.AddDate(0, 0, 1)
	wake := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), s.cfg.HourLocal, 0, 0, 0, loc)
	if localNow.Hour() >= lateSnoozeCutoffHour {
		wake = wake.AddDate(0, 0, 1)
	}
	return wake.UTC()
}

func (s *ActionService) resetState(ctx context.Context, userID, plantID string, now time.Time) {
	state, err := s.states.GetOrCreate(ctx, userID, plantID, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load reminder state for reset",
			slog.String("plant_id", plantID),
			slog.String("error", err.Error()),
		)
		return
	}
	state.Apply(domain.StateUpdate{Action: domain.ReminderActionWatered}, now, s.cfg.MaxDays)
	if err := s.states.Save(ctx, state); err != nil {
		slog.ErrorContext(ctx, "failed to save reminder state",
			slog.String("plant_id", plantID),
			slog.String("error", err.Error()),
		)
	}
}

// mergeWatered unions newly watered plants into the progress already recorded
// on the notification, keeping first-watered order.
func mergeWatered(existing, added []string) []string {
	merged := make([]string, 0, len(existing)+len(added))
	seen := make(map[string]struct{}, len(existing)+len(added))
	for _, id := range existing {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}
	for _, id := range added {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}
	return merged
}

func containsAll(have, want []string) bool {
	if len(want) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(have))
	for _, id := range have {
		set[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
