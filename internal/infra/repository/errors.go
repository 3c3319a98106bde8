package repository

import "errors"

var (
	ErrInvalidNotificationData  = errors.New("invalid notification data")
	ErrInvalidReminderStateData = errors.New("invalid reminder state data")
)
