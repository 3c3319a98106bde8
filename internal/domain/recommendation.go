package domain

import "time"

// GuidanceType says whether the user should actively water or merely inspect soil.
type GuidanceType string

const (
	GuidanceCheck GuidanceType = "check"
	GuidanceWater GuidanceType = "water"
)

// Urgency is derived from days_until_due: negative overdue, zero due today,
// positive upcoming.
type Urgency string

const (
	UrgencyUpcoming Urgency = "upcoming"
	UrgencyDueToday Urgency = "due_today"
	UrgencyOverdue  Urgency = "overdue"
)

func (u Urgency) NeedsWaterToday() bool {
	return u == UrgencyDueToday || u == UrgencyOverdue
}

// WateringRecommendation is a pure value computed per plant per evaluation;
// it is never persisted. Repeated evaluation within the same calendar day
// yields the same result, which the daily dedupe logic depends on.
type WateringRecommendation struct {
	GuidanceType      GuidanceType
	Urgency           Urgency
	NextWaterDate     *time.Time
	DaysUntilDue      int
	RecommendedAction string
	Reason            string
}
