// Package recommend combines the seasonal schedule and the soil day-shift
// into a single watering recommendation. It is a deterministic rules engine;
// unknown watering history is handled without inventing fake dates.
package recommend

import (
	"fmt"
	"time"

	"github.com/vatisha/water-reminders/internal/domain"
	"github.com/vatisha/water-reminders/internal/service/schedule"
	"github.com/vatisha/water-reminders/internal/service/soil"
)

type Engine struct {
	calculator *schedule.Calculator
	adjuster   *soil.Adjuster
}

func NewEngine(calculator *schedule.Calculator, adjuster *soil.Adjuster) *Engine {
	return &Engine{
		calculator: calculator,
		adjuster:   adjuster,
	}
}

// Recommend computes watering guidance for a plant at the given instant.
// All comparisons are calendar-date based, so repeated evaluation within the
// same day is idempotent.
func (e *Engine) Recommend(plant *domain.Plant, now time.Time) domain.WateringRecommendation {
	nowUTC := now.UTC()

	if !plant.HasKnownWateringHistory() {
		return e.recommendUnknownHistory(plant, nowUTC)
	}

	base := e.calculator.NextWaterDate(plant, nowUTC)
	if base == nil {
		return domain.WateringRecommendation{
			GuidanceType:      domain.GuidanceCheck,
			Urgency:           domain.UrgencyDueToday,
			NextWaterDate:     &nowUTC,
			DaysUntilDue:      0,
			RecommendedAction: "Check soil today",
			Reason:            "Watering schedule is unavailable",
		}
	}

	shift := e.adjuster.ShiftDays(plant.SoilState, plant.LastWatered, nowUTC)
	next := base.AddDate(0, 0, shift)
	daysUntilDue := daysBetween(next, nowUTC)

	var (
		urgency domain.Urgency
		action  string
		reason  string
	)
	switch {
	case daysUntilDue < 0:
		urgency = domain.UrgencyOverdue
		action = "Water today"
		reason = fmt.Sprintf("Overdue by %d day(s)", -daysUntilDue)
	case daysUntilDue == 0:
		urgency = domain.UrgencyDueToday
		action = "Water today"
		reason = "Due today"
	default:
		urgency = domain.UrgencyUpcoming
		action = fmt.Sprintf("Next watering in %d day(s)", daysUntilDue)
		reason = "On schedule"
	}

	if shift != 0 {
		reason += " (adjusted by soil)"
	}

	return domain.WateringRecommendation{
		GuidanceType:      domain.GuidanceWater,
		Urgency:           urgency,
		NextWaterDate:     &next,
		DaysUntilDue:      daysUntilDue,
		RecommendedAction: action,
		Reason:            reason,
	}
}

// recommendUnknownHistory nudges today's guidance with a recent, confident
// soil observation instead of guessing a last-watered date.
func (e *Engine) recommendUnknownHistory(plant *domain.Plant, now time.Time) domain.WateringRecommendation {
	shift := e.adjuster.ShiftDays(plant.SoilState, nil, now)

	if shift >= 1 {
		next := now.AddDate(0, 0, shift)
		return domain.WateringRecommendation{
			GuidanceType:      domain.GuidanceCheck,
			Urgency:           domain.UrgencyUpcoming,
			NextWaterDate:     &next,
			DaysUntilDue:      daysBetween(next, now),
			RecommendedAction: "Hold watering today; recheck tomorrow",
			Reason:            "Last watering time is unknown (soil appears wet)",
		}
	}
	if shift <= -1 {
		return domain.WateringRecommendation{
			GuidanceType:      domain.GuidanceWater,
			Urgency:           domain.UrgencyDueToday,
			NextWaterDate:     &now,
			DaysUntilDue:      0,
			RecommendedAction: "Water today (soil looks dry)",
			Reason:            "Last watering time is unknown (soil appears dry)",
		}
	}
	return domain.WateringRecommendation{
		GuidanceType:      domain.GuidanceCheck,
		Urgency:           domain.UrgencyDueToday,
		NextWaterDate:     &now,
		DaysUntilDue:      0,
		RecommendedAction: "Check soil today",
		Reason:            "Last watering time is unknown",
	}
}

// daysBetween is the whole-day delta between the calendar dates of a and b.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(da.Sub(db).Hours() / 24)
}
