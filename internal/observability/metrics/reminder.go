package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	reminderMeterName = "reminder.service"
)

type ReminderMetrics struct {
	usersProcessed       metric.Int64Counter
	notificationsCreated metric.Int64Counter
	plantsNeedingWater   metric.Int64Counter
	actionsHandled       metric.Int64Counter
	snoozedWoken         metric.Int64Counter
	runDuration          metric.Float64Histogram
	sweepDuration        metric.Float64Histogram
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	usersProcessed, err := meter.Int64Counter(
		"reminder_users_processed_total",
		metric.WithDescription("Total number of users evaluated by the daily run"),
		metric.WithUnit("{user}"),
	)
	if err != nil {
		return nil, err
	}

	notificationsCreated, err := meter.Int64Counter(
		"reminder_notifications_created_total",
		metric.WithDescription("Total number of water reminder notifications created"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	plantsNeedingWater, err := meter.Int64Counter(
		"reminder_plants_needing_water_total",
		metric.WithDescription("Total number of plants included in created reminders"),
		metric.WithUnit("{plant}"),
	)
	if err != nil {
		return nil, err
	}

	actionsHandled, err := meter.Int64Counter(
		"reminder_actions_handled_total",
		metric.WithDescription("Total number of notification actions handled"),
		metric.WithUnit("{action}"),
	)
	if err != nil {
		return nil, err
	}

	snoozedWoken, err := meter.Int64Counter(
		"reminder_snoozed_woken_total",
		metric.WithDescription("Total number of snoozed notifications re-sent by the sweeper"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"reminder_run_duration_seconds",
		metric.WithDescription("Daily reminder run duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	sweepDuration, err := meter.Float64Histogram(
		"reminder_sweep_duration_seconds",
		metric.WithDescription("Snoozed notification sweep duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		usersProcessed:       usersProcessed,
		notificationsCreated: notificationsCreated,
		plantsNeedingWater:   plantsNeedingWater,
		actionsHandled:       actionsHandled,
		snoozedWoken:         snoozedWoken,
		runDuration:          runDuration,
		sweepDuration:        sweepDuration,
	}, nil
}

func (m *ReminderMetrics) RecordUserProcessed(ctx context.Context, outcome string) {
	m.usersProcessed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordNotificationCreated(ctx context.Context, plantCount, reminderDay int) {
	m.notificationsCreated.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("reminder_day", reminderDay),
	))
	m.plantsNeedingWater.Add(ctx, int64(plantCount))
}

func (m *ReminderMetrics) RecordActionHandled(ctx context.Context, action, outcome string) {
	m.actionsHandled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordSnoozedWoken(ctx context.Context, outcome string) {
	m.snoozedWoken.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordRunDuration(ctx context.Context, duration time.Duration) {
	m.runDuration.Record(ctx, duration.Seconds())
}

func (m *ReminderMetrics) RecordSweepDuration(ctx context.Context, duration time.Duration) {
	m.sweepDuration.Record(ctx, duration.Seconds())
}
