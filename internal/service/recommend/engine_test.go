package recommend

import (
	"testing"
	"time"

	"github.com/vatisha/water-reminders/internal/config"
	"github.com/vatisha/water-reminders/internal/domain"
	"github.com/vatisha/water-reminders/internal/service/schedule"
	"github.com/vatisha/water-reminders/internal/service/soil"
)

func newTestEngine() *Engine {
	cfg := &config.SoilConfig{
		ConfidenceThreshold:       0.6,
		MaxAgeDays:                3,
		RecentWateringIgnoreHours: 24,
		ShiftMaxDays:              2,
	}
	return NewEngine(schedule.NewCalculator(), soil.NewAdjuster(cfg))
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestRecommendOverdue(t *testing.T) {
	engine := newTestEngine()

	// Summer interval of 3 days, last watered 10 days ago.
	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	plant := &domain.Plant{
		CareSchedule: &domain.CareSchedule{
			Watering: domain.WateringSchedule{Summer: 3, Monsoon: 7, Winter: 10},
		},
		LastWatered: timePtr(now.AddDate(0, 0, -10)),
	}

	rec := engine.Recommend(plant, now)

	if rec.Urgency != domain.UrgencyOverdue {
		t.Errorf("urgency: got %s, want %s", rec.Urgency, domain.UrgencyOverdue)
	}
	if rec.DaysUntilDue != -7 {
		t.Errorf("days until due: got %d, want -7", rec.DaysUntilDue)
	}
	if rec.RecommendedAction != "Water today" {
		t.Errorf("action: got %q", rec.RecommendedAction)
	}
	if rec.Reason != "Overdue by 7 day(s)" {
		t.Errorf("reason: got %q", rec.Reason)
	}
}

func TestRecommendDueToday(t *testing.T) {
	engine := newTestEngine()

	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	plant := &domain.Plant{
		CareSchedule: &domain.CareSchedule{
			Watering: domain.WateringSchedule{Summer: 3, Monsoon: 7, Winter: 10},
		},
		LastWatered: timePtr(now.AddDate(0, 0, -3)),
	}

	rec := engine.Recommend(plant, now)

	if rec.Urgency != domain.UrgencyDueToday {
		t.Errorf("urgency: got %s, want %s", rec.Urgency, domain.UrgencyDueToday)
	}
	if rec.DaysUntilDue != 0 {
		t.Errorf("days until due: got %d, want 0", rec.DaysUntilDue)
	}
	if rec.Reason != "Due today" {
		t.Errorf("reason: got %q", rec.Reason)
	}
}

func TestRecommendUpcoming(t *testing.T) {
	engine := newTestEngine()

	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	plant := &domain.Plant{
		CareSchedule: &domain.CareSchedule{
			Watering: domain.WateringSchedule{Summer: 3, Monsoon: 7, Winter: 10},
		},
		LastWatered: timePtr(now.AddDate(0, 0, -1)),
	}

	rec := engine.Recommend(plant, now)

	if rec.Urgency != domain.UrgencyUpcoming {
		t.Errorf("urgency: got %s, want %s", rec.Urgency, domain.UrgencyUpcoming)
	}
	if rec.DaysUntilDue != 2 {
		t.Errorf("days until due: got %d, want 2", rec.DaysUntilDue)
	}
	if rec.RecommendedAction != "Next watering in 2 day(s)" {
		t.Errorf("action: got %q", rec.RecommendedAction)
	}
	if rec.Reason != "On schedule" {
		t.Errorf("reason: got %q", rec.Reason)
	}
}

func TestRecommendSoilShiftDelaysDueDate(t *testing.T) {
	engine := newTestEngine()

	// Due today by schedule, but a confident wet reading taken well after the
	// last watering pushes the due date out by one day.
	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	observed := now.Add(-2 * time.Hour)
	plant := &domain.Plant{
		CareSchedule: &domain.CareSchedule{
			Watering: domain.WateringSchedule{Summer: 5, Monsoon: 7, Winter: 10},
		},
		LastWatered: timePtr(now.AddDate(0, 0, -5)),
		SoilState: &domain.SoilState{
			Visible:    true,
			Confidence: 0.8,
			Dryness:    domain.DrynessWet,
			ObservedAt: &observed,
		},
	}

	rec := engine.Recommend(plant, now)

	if rec.Urgency != domain.UrgencyUpcoming {
		t.Errorf("urgency: got %s, want %s", rec.Urgency, domain.UrgencyUpcoming)
	}
	if rec.DaysUntilDue != 1 {
		t.Errorf("days until due: got %d, want 1", rec.DaysUntilDue)
	}
	if rec.Reason != "On schedule (adjusted by soil)" {
		t.Errorf("reason: got %q", rec.Reason)
	}
}

func TestRecommendNoSchedule(t *testing.T) {
	engine := newTestEngine()

	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	plant := &domain.Plant{
		LastWatered: timePtr(now.AddDate(0, 0, -2)),
	}

	rec := engine.Recommend(plant, now)

	if rec.GuidanceType != domain.GuidanceCheck {
		t.Errorf("guidance: got %s, want %s", rec.GuidanceType, domain.GuidanceCheck)
	}
	if rec.RecommendedAction != "Check soil today" {
		t.Errorf("action: got %q", rec.RecommendedAction)
	}
	if rec.Reason != "Watering schedule is unavailable" {
		t.Errorf("reason: got %q", rec.Reason)
	}
}

func TestRecommendUnknownHistory(t *testing.T) {
	engine := newTestEngine()
	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	observed := now.Add(-2 * time.Hour)

	tests := []struct {
		name             string
		soil             *domain.SoilState
		expectedGuidance domain.GuidanceType
		expectedUrgency  domain.Urgency
		expectedAction   string
	}{
		{
			name:             "no soil data",
			soil:             nil,
			expectedGuidance: domain.GuidanceCheck,
			expectedUrgency:  domain.UrgencyDueToday,
			expectedAction:   "Check soil today",
		},
		{
			name: "confident wet soil holds watering",
			soil: &domain.SoilState{
				Visible:    true,
				Confidence: 0.8,
				Dryness:    domain.DrynessWet,
				ObservedAt: &observed,
			},
			expectedGuidance: domain.GuidanceCheck,
			expectedUrgency:  domain.UrgencyUpcoming,
			expectedAction:   "Hold watering today; recheck tomorrow",
		},
		{
			name: "confident dry soil waters today",
			soil: &domain.SoilState{
				Visible:    true,
				Confidence: 0.8,
				Dryness:    domain.DrynessDry,
				ObservedAt: &observed,
			},
			expectedGuidance: domain.GuidanceWater,
			expectedUrgency:  domain.UrgencyDueToday,
			expectedAction:   "Water today (soil looks dry)",
		},
		{
			name: "low confidence falls back to check",
			soil: &domain.SoilState{
				Visible:    true,
				Confidence: 0.4,
				Dryness:    domain.DrynessDry,
				ObservedAt: &observed,
			},
			expectedGuidance: domain.GuidanceCheck,
			expectedUrgency:  domain.UrgencyDueToday,
			expectedAction:   "Check soil today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plant := &domain.Plant{SoilState: tt.soil}

			rec := engine.Recommend(plant, now)

			if rec.GuidanceType != tt.expectedGuidance {
				t.Errorf("guidance: got %s, want %s", rec.GuidanceType, tt.expectedGuidance)
			}
			if rec.Urgency != tt.expectedUrgency {
				t.Errorf("urgency: got %s, want %s", rec.Urgency, tt.expectedUrgency)
			}
			if rec.RecommendedAction != tt.expectedAction {
				t.Errorf("action: got %q, want %q", rec.RecommendedAction, tt.expectedAction)
			}
		})
	}
}
