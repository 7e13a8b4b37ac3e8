package service

import (
	"time"

	"calhub/internal/config"
	"calhub/internal/logger"
	"calhub/internal/secrets"
	"calhub/internal/store"
)

// Services aggregates the application services handed to the transport
// layer.
type Services struct {
	Calendars CalendarService
	Sync      SyncService
	Query     QueryService
	Tokens    TokenService
}

// Deps carries everything the services are wired from.
type Deps struct {
	Storages *store.Storages
	Secrets  secrets.Store
	Factory  ProviderFactory
	SyncCfg  config.Sync
	Location *time.Location
	Logger   *logger.Logger
}

// NewServices wires the application core.
func NewServices(deps Deps) *Services {
	calendars := NewCalendarService(deps.Storages.Settings, deps.Storages.Events, deps.Logger)

	return &Services{
		Calendars: calendars,
		Sync:      NewSyncService(calendars, deps.Storages.Events, deps.Factory, deps.SyncCfg, deps.Location, deps.Logger),
		Query:     NewQueryService(deps.Storages.Events, deps.Location, deps.Logger),
		Tokens:    NewTokenService(deps.Secrets, deps.Logger),
	}
}
