package config

import "time"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the application depends on at startup. Key material is
// required because every secret-store operation fails without it; the
// timezone must resolve so day-boundary queries are well-defined.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SecretKey == "" || cfg.App.SecretSalt == "" {
		return ErrInvalidSecretKeyConfigs
	}

	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return ErrInvalidTimezone
	}

	if cfg.Sync.HorizonDays <= 0 || cfg.Sync.MaxConcurrent <= 0 || cfg.Sync.ProviderTimeout <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
