package config

import (
	"os"
	"strconv"
)

const (
	soilConfidenceThresholdEnv = "SOIL_CONFIDENCE_THRESHOLD"
	soilMaxAgeDaysEnv          = "SOIL_MAX_AGE_DAYS"
	soilRecentIgnoreHoursEnv   = "SOIL_RECENT_WATERING_IGNORE_HOURS"
	soilShiftMaxDaysEnv        = "SOIL_SHIFT_MAX_DAYS"

	defaultSoilConfidenceThreshold = 0.6
	defaultSoilMaxAgeDays          = 3
	defaultSoilRecentIgnoreHours   = 24
	defaultSoilShiftMaxDays        = 2
)

type SoilConfig struct {
	// ConfidenceThreshold is the minimum observation confidence; anything
	// below contributes no shift.
	ConfidenceThreshold float64
	// MaxAgeDays is how long an observation stays usable.
	MaxAgeDays int
	// RecentWateringIgnoreHours suppresses wet/waterlogged readings taken
	// shortly after a watering.
	RecentWateringIgnoreHours int
	// ShiftMaxDays bounds the schedule shift in either direction.
	ShiftMaxDays int
}

func LoadSoilConfig() *SoilConfig {
	threshold := defaultSoilConfidenceThreshold
	if v := os.Getenv(soilConfidenceThresholdEnv); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			threshold = parsed
		}
	}

	maxAge := defaultSoilMaxAgeDays
	if v := os.Getenv(soilMaxAgeDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxAge = parsed
		}
	}

	ignoreHours := defaultSoilRecentIgnoreHours
	if v := os.Getenv(soilRecentIgnoreHoursEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ignoreHours = parsed
		}
	}

	shiftMax := defaultSoilShiftMaxDays
	if v := os.Getenv(soilShiftMaxDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			shiftMax = parsed
		}
	}

	return &SoilConfig{
		ConfidenceThreshold:       threshold,
		MaxAgeDays:                maxAge,
		RecentWateringIgnoreHours: ignoreHours,
		ShiftMaxDays:              shiftMax,
	}
}
