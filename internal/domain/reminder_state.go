package domain

import "time"

// ReminderAction is the last action recorded on a per-plant reminder state.
type ReminderAction string

const (
	ReminderActionSent    ReminderAction = "sent"
	ReminderActionWatered ReminderAction = "watered"
	ReminderActionSnoozed ReminderAction = "snoozed"
	ReminderActionIgnored ReminderAction = "ignored"
	ReminderActionResumed ReminderAction = "resumed"
)

// ReminderState tracks the escalation counter and pause/snooze bookkeeping
// for one (user, plant) pair. It is created lazily on the first reminder.
type ReminderState struct {
	UserID           string
	PlantID          string
	ConsecutiveDays  int
	LastReminderDate string
	LastAction       ReminderAction
	LastActionAt     *time.Time
	PausedUntil      *time.Time
	SnoozedUntil     *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewReminderState(userID, plantID string, now time.Time) *ReminderState {
	return &ReminderState{
		UserID:    userID,
		PlantID:   plantID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StateUpdate carries the optional parameters of a reminder state transition.
type StateUpdate struct {
	Action       ReminderAction
	ReminderDay  int
	SnoozedUntil *time.Time
}

// Apply performs the state transition for an action.
//
//	sent:    records today's reminder and sets the escalation counter to the
//	         tier just sent, capped at maxDays
//	watered: resets the counter and clears any pause
//	snoozed: records the snooze wake time
//	resumed: clears the counter and pause (user opened the plant)
//	ignored: informational only
func (s *ReminderState) Apply(update StateUpdate, now time.Time, maxDays int) {
	s.LastAction = update.Action
	at := now
	s.LastActionAt = &at
	s.UpdatedAt = now

	switch update.Action {
	case ReminderActionSent:
		s.LastReminderDate = now.Format(time.DateOnly)
		if update.ReminderDay > 0 {
			day := update.ReminderDay
			if day > maxDays {
				day = maxDays
			}
			s.ConsecutiveDays = day
		}
	case ReminderActionWatered:
		s.ConsecutiveDays = 0
		s.PausedUntil = nil
	case ReminderActionSnoozed:
		s.SnoozedUntil = update.SnoozedUntil
	case ReminderActionResumed:
		s.ConsecutiveDays = 0
		s.PausedUntil = nil
	case ReminderActionIgnored:
		// Tracked for visibility only; pause is driven by ConsecutiveDays.
	}
}

// ShouldPause reports whether reminders are suppressed for this plant:
// either an explicit pause is still in effect, or the user has stayed silent
// for maxDays straight without snoozing or watering.
func (s *ReminderState) ShouldPause(now time.Time, maxDays int) bool {
	if s == nil {
		return false
	}
	if s.PausedUntil != nil && now.Before(*s.PausedUntil) {
		return true
	}
	if s.ConsecutiveDays >= maxDays {
		if s.LastAction != ReminderActionSnoozed && s.LastAction != ReminderActionWatered {
			return true
		}
	}
	return false
}
