// Package soil converts a cached soil-moisture observation into a bounded
// day-shift applied to the watering schedule.
package soil

import (
	"time"

	"github.com/vatisha/water-reminders/internal/config"
	"github.com/vatisha/water-reminders/internal/domain"
)

type Adjuster struct {
	cfg *config.SoilConfig
}

func NewAdjuster(cfg *config.SoilConfig) *Adjuster {
	return &Adjuster{cfg: cfg}
}

var drynessShift = map[domain.Dryness]int{
	domain.DrynessVeryDry:     -1,
	domain.DrynessDry:         -1,
	domain.DrynessMoist:       0,
	domain.DrynessWet:         1,
	domain.DrynessWaterlogged: 2,
	domain.DrynessUnknown:     0,
}

// ShiftDays computes the day-shift modifier for the schedule-based next
// watering. Positive delays watering, negative pulls it earlier. The result
// is always within [-ShiftMaxDays, +ShiftMaxDays].
func (a *Adjuster) ShiftDays(soil *domain.SoilState, lastWatered *time.Time, now time.Time) int {
	if soil == nil || !soil.Visible {
		return 0
	}
	if soil.Confidence < a.cfg.ConfidenceThreshold {
		return 0
	}
	if soil.ObservedAt == nil {
		return 0
	}

	observedAt := *soil.ObservedAt
	if observedAt.Before(now.AddDate(0, 0, -a.cfg.MaxAgeDays)) {
		return 0
	}

	shift := drynessShift[soil.Dryness]

	// Wet soil right after a watering is expected and must not delay the
	// next one.
	if (soil.Dryness == domain.DrynessWet || soil.Dryness == domain.DrynessWaterlogged) && lastWatered != nil {
		if sameCalendarDay(*lastWatered, observedAt) {
			return 0
		}
		ignoreWindow := time.Duration(a.cfg.RecentWateringIgnoreHours) * time.Hour
		if observedAt.Sub(*lastWatered) <= ignoreWindow {
			return 0
		}
	}

	if shift > a.cfg.ShiftMaxDays {
		shift = a.cfg.ShiftMaxDays
	}
	if shift < -a.cfg.ShiftMaxDays {
		shift = -a.cfg.ShiftMaxDays
	}
	return shift
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
