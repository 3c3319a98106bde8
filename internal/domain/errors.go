package domain

import "errors"

var (
	ErrNotificationNotFound   = errors.New("notification not found")
	ErrDuplicateNotification  = errors.New("notification already exists for this day")
	ErrReminderStateNotFound  = errors.New("reminder state not found")
	ErrInvalidStateTransition = errors.New("invalid notification state transition")
	ErrPlantNotFound          = errors.New("plant not found")
)
