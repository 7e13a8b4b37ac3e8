package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"calhub/internal/config"
	"calhub/internal/logger"
	"calhub/internal/metrics"
	"calhub/internal/provider"
	"calhub/internal/store"
	"calhub/models"
)

// syncService implements [SyncService]. It fans provider fetches out
// over a bounded worker set and settles every calendar: an individual
// failure is recorded in the report, never propagated as a run failure.
type syncService struct {
	calendars CalendarService
	events    store.EventRepository
	factory   ProviderFactory
	cfg       config.Sync
	loc       *time.Location
	now       func() time.Time
	logger    *logger.Logger
}

// NewSyncService constructs the sync orchestrator. loc is the product
// timezone whose midnight anchors the rolling horizon window.
func NewSyncService(calendars CalendarService, events store.EventRepository, factory ProviderFactory, cfg config.Sync, loc *time.Location, log *logger.Logger) SyncService {
	return &syncService{
		calendars: calendars,
		events:    events,
		factory:   factory,
		cfg:       cfg,
		loc:       loc,
		now:       time.Now,
		logger:    log,
	}
}

// SyncAll implements [SyncService]. All calendars in one run share a
// single sync timestamp and a single horizon window, so their sync-state
// rows stay comparable.
func (s *syncService) SyncAll(ctx context.Context, userID int64) (models.SyncAllResult, error) {
	log := logger.FromContext(ctx)

	configs, err := s.calendars.List(ctx, userID)
	if err != nil {
		return models.SyncAllResult{}, fmt.Errorf("load calendar configurations: %w", err)
	}

	enabled := make([]models.CalendarConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg.Enabled {
			enabled = append(enabled, cfg)
		}
	}

	syncTime := s.now()
	result := models.SyncAllResult{
		TotalCount: len(enabled),
		SyncedAt:   syncTime,
	}
	if len(enabled) == 0 {
		return result, nil
	}

	window := s.window(syncTime)

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(s.cfg.MaxConcurrent)

	for _, cal := range enabled {
		g.Go(func() error {
			_, syncErr := s.syncOne(ctx, userID, cal, window, syncTime)

			mu.Lock()
			defer mu.Unlock()

			if syncErr != nil {
				metrics.SyncCalendar(string(cal.Type), metrics.OutcomeFailure)
				log.Err(syncErr).
					Str("func", "syncService.SyncAll").
					Int64("user_id", userID).
					Str("calendar_id", cal.ID).
					Str("kind", string(provider.Kind(syncErr))).
					Msg("calendar sync failed")
				result.ErrorCalendars = append(result.ErrorCalendars, models.SyncError{
					CalendarID: cal.ID,
					Name:       cal.Name,
					Error:      syncErr.Error(),
				})
				return nil
			}

			metrics.SyncCalendar(string(cal.Type), metrics.OutcomeSuccess)
			result.SuccessCount++
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	sort.Slice(result.ErrorCalendars, func(i, j int) bool {
		return result.ErrorCalendars[i].CalendarID < result.ErrorCalendars[j].CalendarID
	})

	log.Info().
		Str("func", "syncService.SyncAll").
		Int64("user_id", userID).
		Int("success_count", result.SuccessCount).
		Int("total_count", result.TotalCount).
		Msg("sync run settled")

	return result, nil
}

// SyncCalendar implements [SyncService].
func (s *syncService) SyncCalendar(ctx context.Context, userID int64, calendarID string) (models.SyncResult, error) {
	cfg, err := s.calendars.Get(ctx, userID, calendarID)
	if err != nil {
		return models.SyncResult{}, err
	}

	syncTime := s.now()
	return s.syncOne(ctx, userID, cfg, s.window(syncTime), syncTime)
}

// syncOne fetches one calendar and refreshes its slice of the event
// cache. The sync-state update failure is downgraded: the events are
// already cached, so the run still counts as a success.
func (s *syncService) syncOne(ctx context.Context, userID int64, cfg models.CalendarConfig, window models.TimeRange, syncTime time.Time) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	p, err := s.factory.ForConfig(ctx, userID, cfg)
	if err != nil {
		return models.SyncResult{}, err
	}

	events, err := p.GetEvents(ctx, window)
	if err != nil {
		return models.SyncResult{}, err
	}

	record, err := calendarRecord(cfg)
	if err != nil {
		return models.SyncResult{}, err
	}
	if err := s.events.EnsureCalendarRecord(ctx, userID, record); err != nil {
		return models.SyncResult{}, fmt.Errorf("ensure calendar record: %w", err)
	}

	if err := s.events.SaveMany(ctx, userID, events); err != nil {
		return models.SyncResult{}, fmt.Errorf("cache events: %w", err)
	}

	if err := s.events.UpdateLastSyncTime(ctx, userID, cfg.ID, syncTime); err != nil {
		metrics.SyncWarning(metrics.WarnSyncStateUpdate)
		log.Warn().
			Err(err).
			Str("func", "syncService.syncOne").
			Int64("user_id", userID).
			Str("calendar_id", cfg.ID).
			Msg("sync-state update failed after events were cached")
	}

	return models.SyncResult{
		CalendarID: cfg.ID,
		Name:       cfg.Name,
		EventCount: len(events),
		SyncedAt:   syncTime,
	}, nil
}

// window returns the rolling fetch window: HorizonDays before today's
// midnight through the end of the day HorizonDays ahead, in the product
// timezone.
func (s *syncService) window(now time.Time) models.TimeRange {
	local := now.In(s.loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)

	return models.TimeRange{
		Start: midnight.AddDate(0, 0, -s.cfg.HorizonDays),
		End:   midnight.AddDate(0, 0, s.cfg.HorizonDays+1),
	}
}

func calendarRecord(cfg models.CalendarConfig) (store.CalendarRecord, error) {
	encoded, err := json.Marshal(cfg)
	if err != nil {
		return store.CalendarRecord{}, fmt.Errorf("encode calendar configuration: %w", err)
	}

	return store.CalendarRecord{
		ID:         cfg.ID,
		Name:       cfg.Name,
		Type:       string(cfg.Type),
		ConfigBlob: string(encoded),
		IsActive:   cfg.Enabled,
	}, nil
}
