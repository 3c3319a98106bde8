package domain

import (
	"time"
)

// Season buckets follow the Indian climate calendar used by the care schedules.
type Season string

const (
	SeasonSummer  Season = "summer"
	SeasonMonsoon Season = "monsoon"
	SeasonWinter  Season = "winter"
)

// SeasonForMonth maps a calendar month to a season bucket:
// Mar-May summer, Jun-Sep monsoon, Oct-Feb winter.
func SeasonForMonth(month time.Month) Season {
	switch {
	case month >= time.March && month <= time.May:
		return SeasonSummer
	case month >= time.June && month <= time.September:
		return SeasonMonsoon
	default:
		return SeasonWinter
	}
}

// WateringSource records how a plant's last_watered value was obtained.
type WateringSource string

const (
	WateringSourceUserExact    WateringSource = "user_exact"
	WateringSourceUserEstimate WateringSource = "user_estimate"
	WateringSourceUnknown      WateringSource = "unknown"
)

type Dryness string

const (
	DrynessVeryDry     Dryness = "very_dry"
	DrynessDry         Dryness = "dry"
	DrynessMoist       Dryness = "moist"
	DrynessWet         Dryness = "wet"
	DrynessWaterlogged Dryness = "waterlogged"
	DrynessUnknown     Dryness = "unknown"
)

// SoilState is the latest cached soil observation for a plant.
type SoilState struct {
	Visible    bool
	Confidence float64
	Dryness    Dryness
	ObservedAt *time.Time
}

// WateringSchedule holds watering intervals in days per season.
type WateringSchedule struct {
	Summer  int
	Monsoon int
	Winter  int
}

func (w WateringSchedule) Days(season Season) int {
	switch season {
	case SeasonSummer:
		return w.Summer
	case SeasonMonsoon:
		return w.Monsoon
	default:
		return w.Winter
	}
}

type CareSchedule struct {
	Watering WateringSchedule
}

// Plant is the subset of the plant-store document this service consumes.
type Plant struct {
	ID                string
	UserID            string
	Nickname          string
	CommonName        string
	CareSchedule      *CareSchedule
	LastWatered       *time.Time
	LastWateredSource WateringSource
	SoilState         *SoilState
	RemindersEnabled  bool
	WateringStreak    int
	ImageURL          string
	CreatedAt         time.Time
}

func (p *Plant) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	if p.CommonName != "" {
		return p.CommonName
	}
	return "Your plant"
}

// HasKnownWateringHistory reports whether last_watered can be trusted as a
// schedule baseline. A nil last_watered with no source (or an explicit
// "unknown") means the history is unknown and no date may be invented.
func (p *Plant) HasKnownWateringHistory() bool {
	if p.LastWatered != nil {
		return true
	}
	return p.LastWateredSource != "" && p.LastWateredSource != WateringSourceUnknown
}

// NextWateringStreak computes the watering streak recorded on mark_watered.
// Watering within 3 days of the previous one extends the streak, a gap of
// more than 7 days resets it to 1, and a 4-7 day gap still extends it.
func NextWateringStreak(lastWatered *time.Time, currentStreak int, now time.Time) int {
	if lastWatered == nil {
		return 1
	}
	daysSince := int(now.Sub(*lastWatered).Hours() / 24)
	if daysSince > 7 {
		return 1
	}
	return currentStreak + 1
}
