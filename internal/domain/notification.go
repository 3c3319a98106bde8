package domain

import (
	"fmt"
	"time"
)

const NotificationTypeWaterReminder = "water_reminder"

// NotificationState is the lifecycle state of a reminder notification.
//
// Valid transitions: SENT -> SNOOZED -> SENT (sweeper fires),
// SENT -> DISMISSED (terminal), SENT -> ACTIONED (terminal).
type NotificationState string

const (
	NotificationStateSent      NotificationState = "SENT"
	NotificationStateSnoozed   NotificationState = "SNOOZED"
	NotificationStateDismissed NotificationState = "DISMISSED"
	NotificationStateActioned  NotificationState = "ACTIONED"
)

func (s NotificationState) CanTransitionTo(next NotificationState) bool {
	switch s {
	case NotificationStateSent:
		return next == NotificationStateSnoozed ||
			next == NotificationStateDismissed ||
			next == NotificationStateActioned
	case NotificationStateSnoozed:
		return next == NotificationStateSent
	default:
		return false
	}
}

// CTAType selects the primary button rendered by the client.
type CTAType string

const (
	CTAWatered    CTAType = "watered"
	CTAViewPlants CTAType = "view_plants"
)

// NotificationMetadata is client-facing detail attached to a notification.
type NotificationMetadata struct {
	PlantCount    int
	CTAType       CTAType
	PlantNames    []string
	ReminderDay   int
	Urgencies     map[string]Urgency
	WateredPlants []string
}

// Notification is a water reminder delivered to one user, covering one or
// more plants. Created only by the daily generator; mutated only by the
// action handler and the snooze sweeper; never deleted by this service.
type Notification struct {
	ID     string
	UserID string
	// Timezone is the user's zone at creation time; snooze wake times are
	// resolved in it.
	Timezone       string
	Type           string
	Title          string
	Message        string
	ImageURL       string
	IconPath       string
	PlantIDs       []string
	PrimaryPlantID string
	State          NotificationState
	ReminderDay    int
	IsRead         bool
	SnoozedUntil   *time.Time
	ActionedAt     *time.Time
	ActionURL      string
	DedupeKey      string
	Metadata       NotificationMetadata
	CreatedAt      time.Time
}

// DailyDedupeKey is unique per user per local calendar day and backs the
// at-most-one-notification-per-day guarantee.
func DailyDedupeKey(userID string, localDate time.Time) string {
	return fmt.Sprintf("water_reminder_daily:%s:%s", userID, localDate.Format(time.DateOnly))
}

// Transition moves the notification to the next state, rejecting anything
// outside the state machine.
func (n *Notification) Transition(next NotificationState) error {
	if !n.State.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStateTransition, n.State, next)
	}
	n.State = next
	return nil
}
