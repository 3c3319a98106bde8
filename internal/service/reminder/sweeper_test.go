package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vatisha/water-reminders/internal/domain"
	"github.com/vatisha/water-reminders/internal/infra/push"
	"github.com/vatisha/water-reminders/internal/observability/metrics"
)

func createTestSweeper(t *testing.T, ctrl *gomock.Controller) (*Sweeper, *domain.MockNotificationRepository, *push.MockSender) {
	t.Helper()

	notifications := domain.NewMockNotificationRepository(ctrl)
	sender := push.NewMockSender(ctrl)

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		t.Fatalf("failed to build metrics: %v", err)
	}

	return NewSweeper(notifications, sender, reminderMetrics), notifications, sender
}

func snoozedNotification(id string, until time.Time) *domain.Notification {
	return &domain.Notification{
		ID:             id,
		UserID:         "user-1",
		Type:           domain.NotificationTypeWaterReminder,
		Title:          TitleDefault,
		Message:        "Your Fern is still waiting for some water.",
		State:          domain.NotificationStateSnoozed,
		PlantIDs:       []string{"plant-1"},
		PrimaryPlantID: "plant-1",
		SnoozedUntil:   &until,
		IsRead:         true,
	}
}

func TestSweepWakesDueNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sweeper, notifications, sender := createTestSweeper(t, ctrl)
	now := time.Date(2026, 4, 15, 14, 0, 0, 0, time.UTC)
	due := snoozedNotification("notif-1", now.Add(-10*time.Minute))

	notifications.EXPECT().
		ListDueSnoozed(gomock.Any(), now).
		Return([]*domain.Notification{due}, nil)
	sender.EXPECT().
		SendPush(gomock.Any(), "user-1", due.Title, due.Message, gomock.Any()).
		Return(nil)
	notifications.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			if n.State != domain.NotificationStateSent {
				t.Errorf("state: got %q, want SENT", n.State)
			}
			if n.SnoozedUntil != nil {
				t.Error("expected snoozed_until cleared")
			}
			if n.IsRead {
				t.Error("expected notification marked unread again")
			}
			return nil
		})

	stats, err := sweeper.Sweep(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Processed != 1 || stats.Sent != 1 || stats.Errors != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestSweepPushFailureStillWakes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sweeper, notifications, sender := createTestSweeper(t, ctrl)
	now := time.Date(2026, 4, 15, 14, 0, 0, 0, time.UTC)
	due := snoozedNotification("notif-1", now.Add(-10*time.Minute))

	notifications.EXPECT().
		ListDueSnoozed(gomock.Any(), now).
		Return([]*domain.Notification{due}, nil)
	sender.EXPECT().
		SendPush(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))
	notifications.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			if n.State != domain.NotificationStateSent {
				t.Errorf("state: got %q, want SENT", n.State)
			}
			return nil
		})

	stats, err := sweeper.Sweep(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Sent != 1 {
		t.Errorf("sent: got %d, want 1", stats.Sent)
	}
}

func TestSweepSkipsNonSnoozedEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sweeper, notifications, _ := createTestSweeper(t, ctrl)
	now := time.Date(2026, 4, 15, 14, 0, 0, 0, time.UTC)

	stale := snoozedNotification("notif-1", now.Add(-10*time.Minute))
	stale.State = domain.NotificationStateActioned

	notifications.EXPECT().
		ListDueSnoozed(gomock.Any(), now).
		Return([]*domain.Notification{stale}, nil)

	stats, err := sweeper.Sweep(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Processed != 1 || stats.Sent != 0 || stats.Errors != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestSweepNothingDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sweeper, notifications, _ := createTestSweeper(t, ctrl)
	now := time.Date(2026, 4, 15, 14, 0, 0, 0, time.UTC)

	notifications.EXPECT().
		ListDueSnoozed(gomock.Any(), now).
		Return(nil, nil)

	stats, err := sweeper.Sweep(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Processed != 0 {
		t.Errorf("processed: got %d, want 0", stats.Processed)
	}
}
