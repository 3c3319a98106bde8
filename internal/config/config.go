package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	PlantStoreURL string
	Port          string
	LogLevel      slog.Level
	Redis         *RedisConfig
	Reminder      *ReminderConfig
	Soil          *SoilConfig
	Push          *PushConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	reminderConfig, err := LoadReminderConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		PlantStoreURL: os.Getenv("PLANT_STORE_URL"),
		Port:          port,
		LogLevel:      parseLogLevel(os.Getenv("LOG_LEVEL")),
		Redis:         redisConfig,
		Reminder:      reminderConfig,
		Soil:          LoadSoilConfig(),
		Push:          LoadPushConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
