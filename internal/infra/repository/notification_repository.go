package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vatisha/water-reminders/internal/domain"
)

const (
	notificationKeyPrefix = "reminder:notification:"
	dedupeKeyPrefix       = "reminder:dedupe:"
	snoozedIndexKey       = "reminder:snoozed"

	// Notifications stay readable in the client inbox well past the
	// reminder window; the dedupe marker only has to outlive its local day.
	notificationTTL = 45 * 24 * time.Hour
	dedupeTTL       = 48 * time.Hour
)

type notificationRecord struct {
	ID             string               `json:"id"`
	UserID         string               `json:"user_id"`
	Timezone       string               `json:"timezone,omitempty"`
	Type           string               `json:"notification_type"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	ImageURL       string               `json:"image_url,omitempty"`
	IconPath       string               `json:"icon_path,omitempty"`
	PlantIDs       []string             `json:"plant_ids"`
	PrimaryPlantID string               `json:"primary_plant_id"`
	State          string               `json:"state"`
	ReminderDay    int                  `json:"reminder_day"`
	IsRead         bool                 `json:"is_read"`
	SnoozedUntil   *time.Time           `json:"snoozed_until,omitempty"`
	ActionedAt     *time.Time           `json:"actioned_at,omitempty"`
	ActionURL      string               `json:"action_url,omitempty"`
	DedupeKey      string               `json:"dedupe_key"`
	Metadata       notificationMetadata `json:"metadata"`
	CreatedAt      time.Time            `json:"created_at"`
}

type notificationMetadata struct {
	PlantCount    int               `json:"plant_count"`
	CTAType       string            `json:"cta_type"`
	PlantNames    []string          `json:"plant_names,omitempty"`
	ReminderDay   int               `json:"reminder_day"`
	Urgencies     map[string]string `json:"urgencies,omitempty"`
	WateredPlants []string          `json:"watered_plants,omitempty"`
}

type notificationRepository struct {
	client *redis.Client
}

func NewNotificationRepository(client *redis.Client) domain.NotificationRepository {
	return &notificationRepository{
		client: client,
	}
}

// Create persists a new notification. The dedupe key is claimed with SETNX,
// which is the uniqueness constraint guaranteeing at most one notification
// per user per local day; a lost race returns ErrDuplicateNotification.
func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if notification == nil {
		return ErrInvalidNotificationData
	}
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}

	data, err := json.Marshal(toNotificationRecord(notification))
	if err != nil {
		return ErrInvalidNotificationData
	}

	claimed, err := r.client.SetNX(ctx, dedupeKeyPrefix+notification.DedupeKey, notification.ID, dedupeTTL).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return domain.ErrDuplicateNotification
	}

	if err := r.client.Set(ctx, notificationKeyPrefix+notification.ID, data, notificationTTL).Err(); err != nil {
		// Release the claim, otherwise a retry sees a dedupe hit with no
		// notification behind it and the user loses the day's reminder.
		if delErr := r.client.Del(ctx, dedupeKeyPrefix+notification.DedupeKey).Err(); delErr != nil {
			slog.WarnContext(ctx, "failed to release dedupe key after create failure",
				slog.String("dedupe_key", notification.DedupeKey),
				slog.String("error", delErr.Error()),
			)
		}
		return err
	}
	return nil
}

func (r *notificationRepository) Get(ctx context.Context, id string) (*domain.Notification, error) {
	data, err := r.client.Get(ctx, notificationKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}

	var record notificationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidNotificationData
	}
	return fromNotificationRecord(&record), nil
}

// Update rewrites the notification and keeps the snoozed index in sync:
// snoozed notifications are scored by wake time, everything else is removed.
func (r *notificationRepository) Update(ctx context.Context, notification *domain.Notification) error {
	if notification == nil || notification.ID == "" {
		return ErrInvalidNotificationData
	}

	data, err := json.Marshal(toNotificationRecord(notification))
	if err != nil {
		return ErrInvalidNotificationData
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, notificationKeyPrefix+notification.ID, data, notificationTTL)

	if notification.State == domain.NotificationStateSnoozed && notification.SnoozedUntil != nil {
		pipe.ZAdd(ctx, snoozedIndexKey, redis.Z{
			Score:  float64(notification.SnoozedUntil.Unix()),
			Member: notification.ID,
		})
	} else {
		pipe.ZRem(ctx, snoozedIndexKey, notification.ID)
	}

	_, err = pipe.Exec(ctx)
	return err
}

func (r *notificationRepository) ExistsByDedupeKey(ctx context.Context, dedupeKey string) (bool, error) {
	exists, err := r.client.Exists(ctx, dedupeKeyPrefix+dedupeKey).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// ListDueSnoozed returns snoozed notifications whose wake time has passed.
// Index entries whose notification has expired are dropped from the index.
func (r *notificationRepository) ListDueSnoozed(ctx context.Context, now time.Time) ([]*domain.Notification, error) {
	ids, err := r.client.ZRangeByScore(ctx, snoozedIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]*domain.Notification, 0, len(ids))
	for _, id := range ids {
		notification, err := r.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotificationNotFound) {
				r.client.ZRem(ctx, snoozedIndexKey, id)
				continue
			}
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func toNotificationRecord(n *domain.Notification) *notificationRecord {
	urgencies := make(map[string]string, len(n.Metadata.Urgencies))
	for plantID, urgency := range n.Metadata.Urgencies {
		urgencies[plantID] = string(urgency)
	}

	return &notificationRecord{
		ID:             n.ID,
		UserID:         n.UserID,
		Timezone:       n.Timezone,
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		ImageURL:       n.ImageURL,
		IconPath:       n.IconPath,
		PlantIDs:       n.PlantIDs,
		PrimaryPlantID: n.PrimaryPlantID,
		State:          string(n.State),
		ReminderDay:    n.ReminderDay,
		IsRead:         n.IsRead,
		SnoozedUntil:   n.SnoozedUntil,
		ActionedAt:     n.ActionedAt,
		ActionURL:      n.ActionURL,
		DedupeKey:      n.DedupeKey,
		Metadata: notificationMetadata{
			PlantCount:    n.Metadata.PlantCount,
			CTAType:       string(n.Metadata.CTAType),
			PlantNames:    n.Metadata.PlantNames,
			ReminderDay:   n.Metadata.ReminderDay,
			Urgencies:     urgencies,
			WateredPlants: n.Metadata.WateredPlants,
		},
		CreatedAt: n.CreatedAt,
	}
}

func fromNotificationRecord(record *notificationRecord) *domain.Notification {
	urgencies := make(map[string]domain.Urgency, len(record.Metadata.Urgencies))
	for plantID, urgency := range record.Metadata.Urgencies {
		urgencies[plantID] = domain.Urgency(urgency)
	}

	return &domain.Notification{
		ID:             record.ID,
		UserID:         record.UserID,
		Timezone:       record.Timezone,
		Type:           record.Type,
		Title:          record.Title,
		Message:        record.Message,
		ImageURL:       record.ImageURL,
		IconPath:       record.IconPath,
		PlantIDs:       record.PlantIDs,
		PrimaryPlantID: record.PrimaryPlantID,
		State:          domain.NotificationState(record.State),
		ReminderDay:    record.ReminderDay,
		IsRead:         record.IsRead,
		SnoozedUntil:   record.SnoozedUntil,
		ActionedAt:     record.ActionedAt,
		ActionURL:      record.ActionURL,
		DedupeKey:      record.DedupeKey,
		Metadata: domain.NotificationMetadata{
			PlantCount:    record.Metadata.PlantCount,
			CTAType:       domain.CTAType(record.Metadata.CTAType),
			PlantNames:    record.Metadata.PlantNames,
			ReminderDay:   record.Metadata.ReminderDay,
			Urgencies:     urgencies,
			WateredPlants: record.Metadata.WateredPlants,
		},
		CreatedAt: record.CreatedAt,
	}
}
