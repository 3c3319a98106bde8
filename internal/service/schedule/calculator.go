// Package schedule derives a plant's next due-for-water date from its
// seasonal care schedule.
package schedule

import (
	"time"

	"github.com/vatisha/water-reminders/internal/domain"
)

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// NextWaterDate returns baseline + the watering interval for the current
// season, where baseline is last_watered or, for never-watered plants, the
// creation time. Returns nil when the plant has no care schedule or the
// interval is unset; callers treat nil as "cannot schedule", not an error.
func (c *Calculator) NextWaterDate(plant *domain.Plant, now time.Time) *time.Time {
	if plant.CareSchedule == nil {
		return nil
	}

	season := domain.SeasonForMonth(now.UTC().Month())
	days := plant.CareSchedule.Watering.Days(season)
	if days <= 0 {
		return nil
	}

	baseline := plant.CreatedAt
	if plant.LastWatered != nil {
		baseline = *plant.LastWatered
	}

	next := baseline.AddDate(0, 0, days)
	return &next
}
