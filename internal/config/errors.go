package config

import "errors"

var (
	ErrInvalidRedisDB       = errors.New("invalid REDIS_DB value")
	ErrRedisAddrMissing     = errors.New("redis address is required")
	ErrInvalidTimezone      = errors.New("invalid REMINDER_TIMEZONE value")
	ErrPlantStoreURLMissing = errors.New("PLANT_STORE_URL is required")
)
