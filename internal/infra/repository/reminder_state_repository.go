package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vatisha/water-reminders/internal/domain"
)

const reminderStateKeyPrefix = "reminder:state:"

type reminderStateRecord struct {
	UserID           string     `json:"user_id"`
	PlantID          string     `json:"plant_id"`
	ConsecutiveDays  int        `json:"consecutive_days"`
	LastReminderDate string     `json:"last_reminder_date,omitempty"`
	LastAction       string     `json:"last_action,omitempty"`
	LastActionAt     *time.Time `json:"last_action_at,omitempty"`
	PausedUntil      *time.Time `json:"paused_until,omitempty"`
	SnoozedUntil     *time.Time `json:"snoozed_until,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type reminderStateRepository struct {
	client *redis.Client
}

func NewReminderStateRepository(client *redis.Client) domain.ReminderStateRepository {
	return &reminderStateRepository{
		client: client,
	}
}

func reminderStateKey(userID, plantID string) string {
	return reminderStateKeyPrefix + userID + ":" + plantID
}

func (r *reminderStateRepository) Get(ctx context.Context, userID, plantID string) (*domain.ReminderState, error) {
	data, err := r.client.Get(ctx, reminderStateKey(userID, plantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrReminderStateNotFound
		}
		return nil, err
	}

	var record reminderStateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidReminderStateData
	}
	return fromReminderStateRecord(&record), nil
}

// GetOrCreate lazily creates the state on first reminder. SETNX makes a
// concurrent-creation conflict benign: the loser re-reads and returns the
// existing record.
func (r *reminderStateRepository) GetOrCreate(ctx context.Context, userID, plantID string, now time.Time) (*domain.ReminderState, error) {
	state, err := r.Get(ctx, userID, plantID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, domain.ErrReminderStateNotFound) {
		return nil, err
	}

	fresh := domain.NewReminderState(userID, plantID, now)
	data, err := json.Marshal(toReminderStateRecord(fresh))
	if err != nil {
		return nil, ErrInvalidReminderStateData
	}

	created, err := r.client.SetNX(ctx, reminderStateKey(userID, plantID), data, 0).Result()
	if err != nil {
		return nil, err
	}
	if !created {
		return r.Get(ctx, userID, plantID)
	}
	return fresh, nil
}

func (r *reminderStateRepository) Save(ctx context.Context, state *domain.ReminderState) error {
	if state == nil || state.UserID == "" || state.PlantID == "" {
		return ErrInvalidReminderStateData
	}

	data, err := json.Marshal(toReminderStateRecord(state))
	if err != nil {
		return ErrInvalidReminderStateData
	}
	return r.client.Set(ctx, reminderStateKey(state.UserID, state.PlantID), data, 0).Err()
}

func toReminderStateRecord(s *domain.ReminderState) *reminderStateRecord {
	return &reminderStateRecord{
		UserID:           s.UserID,
		PlantID:          s.PlantID,
		ConsecutiveDays:  s.ConsecutiveDays,
		LastReminderDate: s.LastReminderDate,
		LastAction:       string(s.LastAction),
		LastActionAt:     s.LastActionAt,
		PausedUntil:      s.PausedUntil,
		SnoozedUntil:     s.SnoozedUntil,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func fromReminderStateRecord(record *reminderStateRecord) *domain.ReminderState {
	return &domain.ReminderState{
		UserID:           record.UserID,
		PlantID:          record.PlantID,
		ConsecutiveDays:  record.ConsecutiveDays,
		LastReminderDate: record.LastReminderDate,
		LastAction:       domain.ReminderAction(record.LastAction),
		LastActionAt:     record.LastActionAt,
		PausedUntil:      record.PausedUntil,
		SnoozedUntil:     record.SnoozedUntil,
		CreatedAt:        record.CreatedAt,
		UpdatedAt:        record.UpdatedAt,
	}
}
