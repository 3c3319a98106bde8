package reminder

import (
	"errors"
	"time"
)

// Actions a user can take on a water reminder notification.
const (
	ActionWatered        = "watered"
	ActionSnooze4h       = "snooze_4h"
	ActionSnoozeTomorrow = "snooze_tomorrow"
	ActionDismiss        = "dismiss"
)

var ErrUnknownAction = errors.New("unknown action")

// RunStats summarizes one daily generation run.
type RunStats struct {
	UsersProcessed       int `json:"users_processed"`
	NotificationsCreated int `json:"notifications_created"`
	PlantsNeedingWater   int `json:"plants_needing_water"`
	UsersSkipped         int `json:"users_skipped"`
}

// SweepStats summarizes one pass over due snoozed notifications.
type SweepStats struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Errors    int `json:"errors"`
}

// UserReminderResult describes the notification created for one user.
type UserReminderResult struct {
	NotificationID   string `json:"notification_id"`
	PlantCount       int    `json:"plant_count"`
	PrimaryPlantName string `json:"primary_plant"`
	ReminderDay      int    `json:"reminder_day"`
}

// ActionResult is returned to the client after handling an action.
type ActionResult struct {
	Success         bool       `json:"success"`
	WateredCount    int        `json:"watered_count,omitempty"`
	AllWatered      bool       `json:"all_watered,omitempty"`
	SnoozedUntil    *time.Time `json:"snoozed_until,omitempty"`
	FeedbackMessage string     `json:"feedback_message"`
}
