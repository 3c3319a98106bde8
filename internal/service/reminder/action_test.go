package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vatisha/water-reminders/internal/domain"
	"github.com/vatisha/water-reminders/internal/infra/plantstore"
	"github.com/vatisha/water-reminders/internal/observability/metrics"
	"github.com/vatisha/water-reminders/internal/timezone"
)

type actionMocks struct {
	notifications *domain.MockNotificationRepository
	states        *domain.MockReminderStateRepository
	plants        *plantstore.MockPlantRepository
}

func createTestActionService(t *testing.T, ctrl *gomock.Controller) (*ActionService, *actionMocks) {
	t.Helper()

	m := &actionMocks{
		notifications: domain.NewMockNotificationRepository(ctrl),
		states:        domain.NewMockReminderStateRepository(ctrl),
		plants:        plantstore.NewMockPlantRepository(ctrl),
	}

	cfg := testReminderConfig()
	tz, err := timezone.NewResolver(cfg.Timezone)
	if err != nil {
		t.Fatalf("failed to build resolver: %v", err)
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		t.Fatalf("failed to build metrics: %v", err)
	}

	return NewActionService(m.notifications, m.states, m.plants, tz, cfg, reminderMetrics), m
}

func sentNotification(plantIDs ...string) *domain.Notification {
	return &domain.Notification{
		ID:             "notif-1",
		UserID:         "user-1",
		Type:           domain.NotificationTypeWaterReminder,
		State:          domain.NotificationStateSent,
		PlantIDs:       plantIDs,
		PrimaryPlantID: plantIDs[0],
		ReminderDay:    2,
	}
}

func TestHandleWatered_SinglePlant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := createTestActionService(t, ctrl)
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)
	lastWatered := now.AddDate(0, 0, -2)

	m.notifications.EXPECT().
		Get(gomock.Any(), "notif-1").
		Return(sentNotification("plant-1"), nil)
	m.plants.EXPECT().
		GetPlant(gomock.Any(), "plant-1", "user-1").
		Return(&plantstore.PlantResponse{
			ID:             "plant-1",
			UserID:         "user-1",
			Nickname:       "Fern",
			LastWatered:    &lastWatered,
			WateringStreak: 3,
		}, nil)
	m.plants.EXPECT().
		MarkWatered(gomock.Any(), "plant-1", "user-1", 4, now).
		Return(nil)
	m.states.EXPECT().
		GetOrCreate(gomock.Any(), "user-1", "plant-1", now).
		Return(&domain.ReminderState{UserID: "user-1", PlantID: "plant-1", ConsecutiveDays: 2}, nil)
	m.states.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, state *domain.ReminderState) error {
			if state.ConsecutiveDays != 0 {
				t.Errorf("consecutive days: got %d, want 0", state.ConsecutiveDays)
			}
			if state.LastAction != domain.ReminderActionWatered {
				t.Errorf("last action: got %q, want watered", state.LastAction)
			}
			return nil
		})
	m.notifications.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			if n.State != domain.NotificationStateActioned {
				t.Errorf("state: got %q, want ACTIONED", n.State)
			}
			if !n.IsRead {
				t.Error("expected notification marked read")
			}
			if len(n.Metadata.WateredPlants) != 1 || n.Metadata.WateredPlants[0] != "plant-1" {
				t.Errorf("watered plants: got %v", n.Metadata.WateredPlants)
			}
			return nil
		})

	result, err := svc.Handle(context.Background(), "notif-1", "user-1", ActionWatered, "", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || !result.AllWatered || result.WateredCount != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.FeedbackMessage != "Fern care logged." {
		t.Errorf("feedback: got %q", result.FeedbackMessage)
	}
}

func TestHandleWatered_OneOfBatchKeepsNotificationOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := createTestActionService(t, ctrl)
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)

	m.notifications.EXPECT().
		Get(gomock.Any(), "notif-1").
		Return(sentNotification("plant-1", "plant-2"), nil)
	m.plants.EXPECT().
		GetPlant(gomock.Any(), "plant-2", "user-1").
		Return(&plantstore.PlantResponse{ID: "plant-2", UserID: "user-1", Nickname: "Monstera"}, nil)
	m.plants.EXPECT().
		MarkWatered(gomock.Any(), "plant-2", "user-1", 1, now).
		Return(nil)
	m.states.EXPECT().
		GetOrCreate(gomock.Any(), "user-1", "plant-2", now).
		Return(domain.NewReminderState("user-1", "plant-2", now), nil)
	m.states.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.notifications.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			if n.State != domain.NotificationStateSent {
				t.Errorf("state: got %q, want SENT", n.State)
			}
			return nil
		})

	result, err := svc.Handle(context.Background(), "notif-1", "user-1", ActionWatered, "plant-2", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AllWatered {
		t.Error("expected all_watered false")
	}
	if result.FeedbackMessage != "Monstera care logged." {
		t.Errorf("feedback: got %q", result.FeedbackMessage)
	}
}

func TestHandleWatered_SecondCallCompletesBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := createTestActionService(t, ctrl)
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)

	// plant-1 was watered through this notification in an earlier call.
	notification := sentNotification("plant-1", "plant-2")
	notification.Metadata.WateredPlants = []string{"plant-1"}

	m.notifications.EXPECT().
		Get(gomock.Any(), "notif-1").
		Return(notification, nil)
	m.plants.EXPECT().
		GetPlant(gomock.Any(), "plant-2", "user-1").
		Return(&plantstore.PlantResponse{ID: "plant-2", UserID: "user-1", Nickname: "Monstera"}, nil)
	m.plants.EXPECT().
		MarkWatered(gomock.Any(), "plant-2", "user-1", 1, now).
		Return(nil)
	m.states.EXPECT().
		GetOrCreate(gomock.Any(), "user-1", "plant-2", now).
		Return(domain.NewReminderState("user-1", "plant-2", now), nil)
	m.states.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.notifications.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			if n.State != domain.NotificationStateActioned {
				t.Errorf("state: got %q, want ACTIONED", n.State)
			}
			want := []string{"plant-1", "plant-2"}
			if len(n.Metadata.WateredPlants) != len(want) {
				t.Fatalf("watered plants: got %v, want %v", n.Metadata.WateredPlants, want)
			}
			for i, id := range want {
				if n.Metadata.WateredPlants[i] != id {
					t.Errorf("watered plants: got %v, want %v", n.Metadata.WateredPlants, want)
					break
				}
			}
			return nil
		})

	result, err := svc.Handle(context.Background(), "notif-1", "user-1", ActionWatered, "plant-2", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.AllWatered {
		t.Error("expected all_watered true once every plant has been watered")
	}
	if result.WateredCount != 1 {
		t.Errorf("watered count: got %d, want 1", result.WateredCount)
	}
}

func TestHandleSnooze4h(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := createTestActionService(t, ctrl)
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)
	wantUntil := now.Add(4 * time.Hour)

	m.notifications.EXPECT().
		Get(gomock.Any(), "notif-1").
		Return(sentNotification("plant-1"), nil)
	m.notifications.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			if n.State != domain.NotificationStateSnoozed {
				t.Errorf("state: got %q, want SNOOZED", n.State)
			}
			if n.SnoozedUntil == nil || !n.SnoozedUntil.Equal(wantUntil) {
				t.Errorf("snoozed until: got %v, want %v", n.SnoozedUntil, wantUntil)
			}
			return nil
		})
	m.states.EXPECT().
		GetOrCreate(gomock.Any(), "user-1", "plant-1", now).
		Return(domain.NewReminderState("user-1", "plant-1", now), nil)
	m.states.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, state *domain.ReminderState) error {
			if state.LastAction != domain.ReminderActionSnoozed {
				t.Errorf("last action: got %q, want snoozed", state.LastAction)
			}
			return nil
		})

	result, err := svc.Handle(context.Background(), "notif-1", "user-1", ActionSnooze4h, "", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SnoozedUntil == nil || !result.SnoozedUntil.Equal(wantUntil) {
		t.Errorf("snoozed until: got %v, want %v", result.SnoozedUntil, wantUntil)
	}
}

func TestHandleSnoozeTomorrow(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		now      time.Time
		expected time.Time
	}{
		{
			name:     "morning snooze lands tomorrow",
			now:      time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 4, 16, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "late evening snooze skips a day",
			now:      time.Date(2026, 4, 15, 18, 30, 0, 0, time.UTC),
			expected: time.Date(2026, 4, 17, 8, 0, 0, 0, time.UTC),
		},
		{
			// 07:30 IST; wake is 08:00 IST the next day.
			name:     "wake hour resolved in the user's timezone",
			timezone: "Asia/Kolkata",
			now:      time.Date(2026, 4, 15, 2, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 4, 16, 2, 30, 0, 0, time.UTC),
		},
		{
			// 18:30 IST is past the late cutoff even though it is still
			// early afternoon UTC.
			name:     "late cutoff applies in the user's timezone",
			timezone: "Asia/Kolkata",
			now:      time.Date(2026, 4, 15, 13, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 4, 17, 2, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := createTestActionService(t, ctrl)

			notification := sentNotification("plant-1")
			notification.Timezone = tt.timezone
			m.notifications.EXPECT().
				Get(gomock.Any(), "notif-1").
				Return(notification, nil)
			m.notifications.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			m.states.EXPECT().
				GetOrCreate(gomock.Any(), "user-1", "plant-1", tt.now).
				Return(domain.NewReminderState("user-1", "plant-1", tt.now), nil)
			m.states.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

			result, err := svc.Handle(context.Background(), "notif-1", "user-1", ActionSnoozeTomorrow, "", tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.SnoozedUntil == nil || !result.SnoozedUntil.Equal(tt.expected) {
				t.Errorf("snoozed until: got %v, want %v", result.SnoozedUntil, tt.expected)
			}
		})
	}
}

func TestHandleDismissKeepsReminderState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := createTestActionService(t, ctrl)
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)

	m.notifications.EXPECT().
		Get(gomock.Any(), "notif-1").
		Return(sentNotification("plant-1"), nil)
	m.notifications.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			if n.State != domain.NotificationStateDismissed {
				t.Errorf("state: got %q, want DISMISSED", n.State)
			}
			return nil
		})

	result, err := svc.Handle(context.Background(), "notif-1", "user-1", ActionDismiss, "", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FeedbackMessage != "Reminder dismissed" {
		t.Errorf("feedback: got %q", result.FeedbackMessage)
	}
}

func TestHandleUnknownAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := createTestActionService(t, ctrl)
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)

	m.notifications.EXPECT().
		Get(gomock.Any(), "notif-1").
		Return(sentNotification("plant-1"), nil)

	_, err := svc.Handle(context.Background(), "notif-1", "user-1", "explode", "", now)
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestHandleRejectsForeignNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := createTestActionService(t, ctrl)
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)

	m.notifications.EXPECT().
		Get(gomock.Any(), "notif-1").
		Return(sentNotification("plant-1"), nil)

	_, err := svc.Handle(context.Background(), "notif-1", "someone-else", ActionDismiss, "", now)
	if !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestResumeReminders(t *testing.T) {
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		state    *domain.ReminderState
		stateErr error
		expected bool
		saves    bool
	}{
		{
			name:     "no state",
			stateErr: domain.ErrReminderStateNotFound,
			expected: false,
		},
		{
			name:     "not paused",
			state:    &domain.ReminderState{UserID: "user-1", PlantID: "plant-1", ConsecutiveDays: 2},
			expected: false,
		},
		{
			name:     "paused state resumes",
			state:    &domain.ReminderState{UserID: "user-1", PlantID: "plant-1", ConsecutiveDays: 5, LastAction: domain.ReminderActionSent},
			expected: true,
			saves:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := createTestActionService(t, ctrl)

			m.states.EXPECT().
				Get(gomock.Any(), "user-1", "plant-1").
				Return(tt.state, tt.stateErr)
			if tt.saves {
				m.states.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, state *domain.ReminderState) error {
						if state.ConsecutiveDays != 0 {
							t.Errorf("consecutive days: got %d, want 0", state.ConsecutiveDays)
						}
						if state.LastAction != domain.ReminderActionResumed {
							t.Errorf("last action: got %q, want resumed", state.LastAction)
						}
						return nil
					})
			}

			resumed, err := svc.ResumeReminders(context.Background(), "user-1", "plant-1", now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resumed != tt.expected {
				t.Errorf("got %v, want %v", resumed, tt.expected)
			}
		})
	}
}
