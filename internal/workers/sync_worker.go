package workers

import (
	"context"
	"sync"
	"time"

	"calhub/internal/config"
	"calhub/internal/logger"
	"calhub/internal/service"
	"calhub/internal/store"
)

// SyncWorker periodically re-syncs every calendar of every known user.
// Users are discovered from the settings table: anyone who owns at least
// one calendar configuration row takes part in the run.
//
// A zero or negative interval disables the worker entirely; on-demand
// syncs through the API keep working either way.
type SyncWorker struct {
	sync     service.SyncService
	settings store.SettingsRepository
	interval time.Duration
	logger   *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates the periodic sync worker.
func NewSyncWorker(syncService service.SyncService, settings store.SettingsRepository, cfg config.Workers, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{
		sync:     syncService,
		settings: settings,
		interval: cfg.SyncInterval,
		logger:   logger,
	}
}

// Run starts the periodic loop in its own goroutine and returns
// immediately. With a disabled interval it only logs and returns.
func (w *SyncWorker) Run() {
	if w.interval <= 0 {
		w.logger.Info().Msg("periodic sync disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.logger.Info().Dur("interval", w.interval).Msg("periodic sync started")

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.syncAllUsers(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for an in-flight run to finish.
func (w *SyncWorker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	w.wg.Wait()
	w.logger.Info().Msg("periodic sync stopped")
}

// syncAllUsers runs one full pass. One user's failure never aborts the
// pass for the remaining users.
func (w *SyncWorker) syncAllUsers(ctx context.Context) {
	userIDs, err := w.settings.ListUserIDs(ctx, service.CalendarSettingPrefix)
	if err != nil {
		w.logger.Err(err).Str("func", "*SyncWorker.syncAllUsers").Msg("error listing users with calendars")
		return
	}

	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return
		}

		result, err := w.sync.SyncAll(ctx, userID)
		if err != nil {
			w.logger.Err(err).Str("func", "*SyncWorker.syncAllUsers").Int64("user_id", userID).Msg("error syncing user calendars")
			continue
		}

		w.logger.Info().
			Int64("user_id", userID).
			Int("success", result.SuccessCount).
			Int("total", result.TotalCount).
			Msg("periodic sync pass finished for user")
	}
}
