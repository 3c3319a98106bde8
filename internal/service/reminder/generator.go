// Package reminder implements the daily water reminder flow: one batched
// notification per user per local morning, escalating copy over consecutive
// silent days, snooze and watered actions, and a sweep that re-sends snoozed
// notifications when their wake time passes.
package reminder

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/vatisha/water-reminders/internal/config"
	"github.com/vatisha/water-reminders/internal/domain"
	"github.com/vatisha/water-reminders/internal/infra/plantstore"
	"github.com/vatisha/water-reminders/internal/infra/push"
	"github.com/vatisha/water-reminders/internal/observability/metrics"
	"github.com/vatisha/water-reminders/internal/service/recommend"
	"github.com/vatisha/water-reminders/internal/timezone"
)

const (
	waterIconPath = "icons/notif_water.svg"

	// Metadata caps keep the notification document small.
	metadataNameLimit = 30
	metadataNameCount = 5
)

type Generator struct {
	plants        plantstore.PlantRepository
	notifications domain.NotificationRepository
	states        domain.ReminderStateRepository
	engine        *recommend.Engine
	sender        push.Sender
	tz            timezone.Resolver
	cfg           *config.ReminderConfig
	metrics       *metrics.ReminderMetrics
}

func NewGenerator(
	plants plantstore.PlantRepository,
	notifications domain.NotificationRepository,
	states domain.ReminderStateRepository,
	engine *recommend.Engine,
	sender push.Sender,
	tz timezone.Resolver,
	cfg *config.ReminderConfig,
	reminderMetrics *metrics.ReminderMetrics,
) *Generator {
	return &Generator{
		plants:        plants,
		notifications: notifications,
		states:        states,
		engine:        engine,
		sender:        sender,
		tz:            tz,
		cfg:           cfg,
		metrics:       reminderMetrics,
	}
}

// Run generates reminders for every opted-in user. A failure for one user is
// logged and counted, never fatal for the run.
func (g *Generator) Run(ctx context.Context, now time.Time) (*RunStats, error) {
	start := time.Now()

	users, err := g.plants.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &RunStats{}
	for _, user := range users.Users {
		if !user.WantsNotifications() {
			stats.UsersSkipped++
			g.metrics.RecordUserProcessed(ctx, "opted_out")
			continue
		}

		result, err := g.GenerateUserReminder(ctx, user, now)
		stats.UsersProcessed++
		if err != nil {
			slog.ErrorContext(ctx, "failed to generate reminder",
				slog.String("user_id", user.ID),
				slog.String("error", err.Error()),
			)
			stats.UsersSkipped++
			g.metrics.RecordUserProcessed(ctx, "error")
			continue
		}
		if result == nil {
			stats.UsersSkipped++
			g.metrics.RecordUserProcessed(ctx, "no_reminder")
			continue
		}

		stats.NotificationsCreated++
		stats.PlantsNeedingWater += result.PlantCount
		g.metrics.RecordUserProcessed(ctx, "created")
		g.metrics.RecordNotificationCreated(ctx, result.PlantCount, result.ReminderDay)
	}

	g.metrics.RecordRunDuration(ctx, time.Since(start))
	slog.InfoContext(ctx, "daily water reminder run complete",
		slog.Int("users_processed", stats.UsersProcessed),
		slog.Int("notifications_created", stats.NotificationsCreated),
		slog.Int("plants_needing_water", stats.PlantsNeedingWater),
		slog.Int("users_skipped", stats.UsersSkipped),
	)
	return stats, nil
}

type reminderCandidate struct {
	plant *domain.Plant
	rec   domain.WateringRecommendation
}

// GenerateUserReminder builds at most one notification for the user's current
// local day. It returns (nil, nil) when nothing is due, the user already has
// today's reminder, or reminders are paused.
func (g *Generator) GenerateUserReminder(ctx context.Context, user plantstore.UserResponse, now time.Time) (*UserReminderResult, error) {
	loc := g.tz.Location(user.Timezone)
	dedupeKey := domain.DailyDedupeKey(user.ID, timezone.LocalDate(now, loc))

	exists, err := g.notifications.ExistsByDedupeKey(ctx, dedupeKey)
	if err != nil {
		return nil, err
	}
	if exists {
		slog.DebugContext(ctx, "water reminder already sent today",
			slog.String("user_id", user.ID),
		)
		return nil, nil
	}

	candidates, err := g.plantsNeedingWater(ctx, user.ID, now)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sortByUrgency(candidates)
	primary := candidates[0]

	state, err := g.states.GetOrCreate(ctx, user.ID, primary.plant.ID, now)
	if err != nil {
		return nil, err
	}
	if state.ShouldPause(now, g.cfg.MaxDays) {
		slog.DebugContext(ctx, "reminders paused",
			slog.String("user_id", user.ID),
			slog.String("plant_id", primary.plant.ID),
		)
		return nil, nil
	}

	reminderDay := min(state.ConsecutiveDays+1, g.cfg.MaxDays)
	notification := g.buildNotification(user, candidates, reminderDay, dedupeKey, now)

	if err := g.notifications.Create(ctx, notification); err != nil {
		if errors.Is(err, domain.ErrDuplicateNotification) {
			// Lost a concurrent-run race; today's reminder already exists.
			return nil, nil
		}
		return nil, err
	}

	state.Apply(domain.StateUpdate{
		Action:      domain.ReminderActionSent,
		ReminderDay: reminderDay,
	}, now, g.cfg.MaxDays)
	if err := g.states.Save(ctx, state); err != nil {
		slog.ErrorContext(ctx, "failed to save reminder state",
			slog.String("user_id", user.ID),
			slog.String("plant_id", primary.plant.ID),
			slog.String("error", err.Error()),
		)
	}

	g.sendPush(ctx, notification)

	slog.InfoContext(ctx, "created water reminder",
		slog.String("user_id", user.ID),
		slog.String("notification_id", notification.ID),
		slog.Int("plant_count", len(candidates)),
		slog.Int("reminder_day", reminderDay),
	)

	return &UserReminderResult{
		NotificationID:   notification.ID,
		PlantCount:       len(candidates),
		PrimaryPlantName: primary.plant.DisplayName(),
		ReminderDay:      reminderDay,
	}, nil
}

// plantsNeedingWater evaluates every reminder-enabled plant and keeps those
// due today or overdue whose reminder state is not paused.
func (g *Generator) plantsNeedingWater(ctx context.Context, userID string, now time.Time) ([]reminderCandidate, error) {
	resp, err := g.plants.ListPlants(ctx, userID)
	if err != nil {
		return nil, err
	}

	var candidates []reminderCandidate
	for _, doc := range resp.Plants {
		plant := doc.ToDomain()
		if !plant.RemindersEnabled {
			continue
		}

		rec := g.engine.Recommend(plant, now)
		if !rec.Urgency.NeedsWaterToday() {
			continue
		}

		state, err := g.states.Get(ctx, userID, plant.ID)
		if err != nil && !errors.Is(err, domain.ErrReminderStateNotFound) {
			return nil, err
		}
		if state.ShouldPause(now, g.cfg.MaxDays) {
			continue
		}

		candidates = append(candidates, reminderCandidate{plant: plant, rec: rec})
	}
	return candidates, nil
}

// sortByUrgency orders candidates most overdue first, breaking ties by oldest
// last-watered and then by name.
func sortByUrgency(candidates []reminderCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.rec.DaysUntilDue != b.rec.DaysUntilDue {
			return a.rec.DaysUntilDue < b.rec.DaysUntilDue
		}
		aw, bw := a.plant.LastWatered, b.plant.LastWatered
		switch {
		case aw == nil && bw != nil:
			return true
		case aw != nil && bw == nil:
			return false
		case aw != nil && bw != nil && !aw.Equal(*bw):
			return aw.Before(*bw)
		}
		return strings.ToLower(a.plant.DisplayName()) < strings.ToLower(b.plant.DisplayName())
	})
}

func (g *Generator) buildNotification(user plantstore.UserResponse, candidates []reminderCandidate, reminderDay int, dedupeKey string, now time.Time) *domain.Notification {
	primary := candidates[0].plant
	primaryName := primary.DisplayName()

	var (
		message   string
		actionURL string
		ctaType   domain.CTAType
	)
	if len(candidates) == 1 {
		message = SinglePlantMessage(primaryName, reminderDay)
		actionURL = "/plants/" + primary.ID
		ctaType = domain.CTAWatered
	} else {
		otherCount := len(candidates) - 1
		displayCount := min(otherCount, g.cfg.BatchDisplayCap)
		message = MultiplePlantsMessage(primaryName, displayCount, reminderDay, otherCount > g.cfg.BatchDisplayCap)
		actionURL = "/care"
		ctaType = domain.CTAViewPlants
	}

	plantIDs := make([]string, 0, len(candidates))
	urgencies := make(map[string]domain.Urgency, len(candidates))
	var plantNames []string
	for i, c := range candidates {
		plantIDs = append(plantIDs, c.plant.ID)
		urgencies[c.plant.ID] = c.rec.Urgency
		if i < metadataNameCount {
			plantNames = append(plantNames, truncate(c.plant.DisplayName(), metadataNameLimit))
		}
	}

	imageURL := ""
	if len(candidates) == 1 {
		imageURL = primary.ImageURL
	}

	return &domain.Notification{
		UserID:         user.ID,
		Timezone:       user.Timezone,
		Type:           domain.NotificationTypeWaterReminder,
		Title:          Title(reminderDay),
		Message:        message,
		ImageURL:       imageURL,
		IconPath:       waterIconPath,
		PlantIDs:       plantIDs,
		PrimaryPlantID: primary.ID,
		State:          domain.NotificationStateSent,
		ReminderDay:    reminderDay,
		ActionURL:      actionURL,
		DedupeKey:      dedupeKey,
		Metadata: domain.NotificationMetadata{
			PlantCount:  len(candidates),
			CTAType:     ctaType,
			PlantNames:  plantNames,
			ReminderDay: reminderDay,
			Urgencies:   urgencies,
		},
		CreatedAt: now,
	}
}

// sendPush is best effort; delivery failure never rolls back the notification.
func (g *Generator) sendPush(ctx context.Context, notification *domain.Notification) {
	err := g.sender.SendPush(ctx, notification.UserID, notification.Title, notification.Message, map[string]string{
		"notification_id":   notification.ID,
		"notification_type": notification.Type,
		"plant_id":          notification.PrimaryPlantID,
		"action_url":        notification.ActionURL,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to send push",
			slog.String("user_id", notification.UserID),
			slog.String("notification_id", notification.ID),
			slog.String("error", err.Error()),
		)
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
