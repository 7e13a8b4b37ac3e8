package store

import "calhub/internal/logger"

// Storages aggregates the repositories handed to the service layer.
type Storages struct {
	Events   EventRepository
	Settings SettingsRepository
	Secrets  SecretRepository
}

// NewStorages wires the concrete repository implementations over one
// shared connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Events:   NewEventRepository(db, log),
		Settings: NewSettingsRepository(db, log),
		Secrets:  NewSecretRepository(db, log),
	}
}
