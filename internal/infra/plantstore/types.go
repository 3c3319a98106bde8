package plantstore

import (
	"time"

	"github.com/vatisha/water-reminders/internal/domain"
)

type UserResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Timezone             string `json:"timezone,omitempty"`
	NotificationsEnabled *bool  `json:"notifications_enabled,omitempty"`
}

// WantsNotifications treats a missing flag as opted in.
func (u UserResponse) WantsNotifications() bool {
	return u.NotificationsEnabled == nil || *u.NotificationsEnabled
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

type WateringScheduleResponse struct {
	Summer  int `json:"summer"`
	Monsoon int `json:"monsoon"`
	Winter  int `json:"winter"`
}

type CareScheduleResponse struct {
	Watering WateringScheduleResponse `json:"watering"`
}

type SoilStateResponse struct {
	Visible    bool       `json:"visible"`
	Confidence float64    `json:"confidence"`
	Dryness    string     `json:"dryness"`
	ObservedAt *time.Time `json:"observed_at,omitempty"`
}

type PlantResponse struct {
	ID                string                `json:"id"`
	UserID            string                `json:"user_id"`
	Nickname          string                `json:"nickname,omitempty"`
	CommonName        string                `json:"common_name,omitempty"`
	CareSchedule      *CareScheduleResponse `json:"care_schedule,omitempty"`
	LastWatered       *time.Time            `json:"last_watered,omitempty"`
	LastWateredSource string                `json:"last_watered_source,omitempty"`
	SoilState         *SoilStateResponse    `json:"soil_state,omitempty"`
	RemindersEnabled  *bool                 `json:"reminders_enabled,omitempty"`
	WateringStreak    int                   `json:"watering_streak"`
	ImageURL          string                `json:"image_url,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
}

type PlantsResponse struct {
	Plants []PlantResponse `json:"plants"`
	Count  int             `json:"count"`
}

// ToDomain converts the wire document to the domain plant. A missing
// reminders_enabled flag means enabled.
func (p PlantResponse) ToDomain() *domain.Plant {
	plant := &domain.Plant{
		ID:                p.ID,
		UserID:            p.UserID,
		Nickname:          p.Nickname,
		CommonName:        p.CommonName,
		LastWatered:       p.LastWatered,
		LastWateredSource: domain.WateringSource(p.LastWateredSource),
		RemindersEnabled:  p.RemindersEnabled == nil || *p.RemindersEnabled,
		WateringStreak:    p.WateringStreak,
		ImageURL:          p.ImageURL,
		CreatedAt:         p.CreatedAt,
	}

	if p.CareSchedule != nil {
		plant.CareSchedule = &domain.CareSchedule{
			Watering: domain.WateringSchedule{
				Summer:  p.CareSchedule.Watering.Summer,
				Monsoon: p.CareSchedule.Watering.Monsoon,
				Winter:  p.CareSchedule.Watering.Winter,
			},
		}
	}

	if p.SoilState != nil {
		dryness := domain.Dryness(p.SoilState.Dryness)
		if dryness == "" {
			dryness = domain.DrynessUnknown
		}
		plant.SoilState = &domain.SoilState{
			Visible:    p.SoilState.Visible,
			Confidence: p.SoilState.Confidence,
			Dryness:    dryness,
			ObservedAt: p.SoilState.ObservedAt,
		}
	}

	return plant
}
