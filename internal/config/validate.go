package config

// ValidateForRun checks the configuration needed to serve reminder traffic.
func ValidateForRun(cfg *Config) error {
	if cfg.PlantStoreURL == "" {
		return ErrPlantStoreURLMissing
	}
	return cfg.Redis.Validate()
}
