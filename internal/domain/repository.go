package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=domain

// NotificationRepository persists water reminder notifications. Create must
// enforce dedupe-key uniqueness natively and return ErrDuplicateNotification
// on collision so concurrent or retried runs treat it as already created.
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	Get(ctx context.Context, id string) (*Notification, error)
	Update(ctx context.Context, notification *Notification) error
	ExistsByDedupeKey(ctx context.Context, dedupeKey string) (bool, error)
	ListDueSnoozed(ctx context.Context, now time.Time) ([]*Notification, error)
}

// ReminderStateRepository persists per-(user, plant) reminder state.
// GetOrCreate is idempotent: a concurrent-creation conflict re-reads and
// returns the existing record instead of failing.
type ReminderStateRepository interface {
	Get(ctx context.Context, userID, plantID string) (*ReminderState, error)
	GetOrCreate(ctx context.Context, userID, plantID string, now time.Time) (*ReminderState, error)
	Save(ctx context.Context, state *ReminderState) error
}
