package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"calhub/internal/logger"
	"calhub/internal/store"
	"calhub/models"
)

// CalendarSettingPrefix namespaces the calendar configuration rows in
// the settings store. Each calendar lives in its own row, so concurrent
// edits of two calendars never race on a shared document.
const CalendarSettingPrefix = "calendar:"

func calendarSettingKey(calendarID string) string {
	return CalendarSettingPrefix + calendarID
}

// calendarService implements [CalendarService] over the settings store.
type calendarService struct {
	settings store.SettingsRepository
	events   store.EventRepository
	logger   *logger.Logger
}

// NewCalendarService constructs the calendar configuration service.
func NewCalendarService(settings store.SettingsRepository, events store.EventRepository, log *logger.Logger) CalendarService {
	return &calendarService{
		settings: settings,
		events:   events,
		logger:   log,
	}
}

// List implements [CalendarService]. A row that no longer decodes is
// skipped with a warning instead of hiding the user's other calendars.
func (c *calendarService) List(ctx context.Context, userID int64) ([]models.CalendarConfig, error) {
	log := logger.FromContext(ctx)

	rows, err := c.settings.ListByPrefix(ctx, userID, CalendarSettingPrefix)
	if err != nil {
		return nil, fmt.Errorf("list calendar configurations: %w", err)
	}

	configs := make([]models.CalendarConfig, 0, len(rows))
	for key, value := range rows {
		var cfg models.CalendarConfig
		if decodeErr := json.Unmarshal([]byte(value), &cfg); decodeErr != nil {
			log.Warn().
				Err(decodeErr).
				Str("func", "calendarService.List").
				Int64("user_id", userID).
				Str("key", key).
				Msg("skipping undecodable calendar configuration row")
			continue
		}
		configs = append(configs, cfg)
	}

	sort.Slice(configs, func(i, j int) bool {
		if configs[i].Name != configs[j].Name {
			return configs[i].Name < configs[j].Name
		}
		return configs[i].ID < configs[j].ID
	})

	return configs, nil
}

// Get implements [CalendarService].
func (c *calendarService) Get(ctx context.Context, userID int64, calendarID string) (models.CalendarConfig, error) {
	value, err := c.settings.Get(ctx, userID, calendarSettingKey(calendarID))
	if errors.Is(err, store.ErrSettingNotFound) {
		return models.CalendarConfig{}, ErrCalendarNotFound
	}
	if err != nil {
		return models.CalendarConfig{}, fmt.Errorf("load calendar configuration: %w", err)
	}

	var cfg models.CalendarConfig
	if err := json.Unmarshal([]byte(value), &cfg); err != nil {
		return models.CalendarConfig{}, fmt.Errorf("decode calendar configuration %s: %w", calendarID, err)
	}

	return cfg, nil
}

// Add implements [CalendarService].
func (c *calendarService) Add(ctx context.Context, userID int64, cfg models.CalendarConfig) (models.CalendarConfig, error) {
	log := logger.FromContext(ctx)

	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	cfg.Enabled = true

	if err := cfg.Validate(); err != nil {
		return models.CalendarConfig{}, err
	}

	if _, err := c.Get(ctx, userID, cfg.ID); err == nil {
		return models.CalendarConfig{}, fmt.Errorf("%w: %s", ErrCalendarExists, cfg.ID)
	} else if !errors.Is(err, ErrCalendarNotFound) {
		return models.CalendarConfig{}, err
	}

	if err := c.save(ctx, userID, cfg); err != nil {
		return models.CalendarConfig{}, err
	}

	log.Info().
		Str("func", "calendarService.Add").
		Int64("user_id", userID).
		Str("calendar_id", cfg.ID).
		Str("type", string(cfg.Type)).
		Msg("calendar configuration added")

	return cfg, nil
}

// SetEnabled implements [CalendarService].
func (c *calendarService) SetEnabled(ctx context.Context, userID int64, calendarID string, enabled bool) (models.CalendarConfig, error) {
	cfg, err := c.Get(ctx, userID, calendarID)
	if err != nil {
		return models.CalendarConfig{}, err
	}

	cfg.Enabled = enabled
	if err := c.save(ctx, userID, cfg); err != nil {
		return models.CalendarConfig{}, err
	}

	return cfg, nil
}

// Delete implements [CalendarService]. The cascade is explicit: cached
// events, sync state, the calendar record, and finally the
// configuration row.
func (c *calendarService) Delete(ctx context.Context, userID int64, calendarID string) error {
	log := logger.FromContext(ctx)

	if _, err := c.Get(ctx, userID, calendarID); err != nil {
		return err
	}

	if err := c.events.DeleteByCalendar(ctx, userID, calendarID); err != nil {
		return fmt.Errorf("delete cached events: %w", err)
	}
	if err := c.events.DeleteSyncState(ctx, userID, calendarID); err != nil {
		return fmt.Errorf("delete sync state: %w", err)
	}
	if err := c.events.DeleteCalendarRecord(ctx, userID, calendarID); err != nil {
		return fmt.Errorf("delete calendar record: %w", err)
	}
	if err := c.settings.Delete(ctx, userID, calendarSettingKey(calendarID)); err != nil {
		return fmt.Errorf("delete calendar configuration: %w", err)
	}

	log.Info().
		Str("func", "calendarService.Delete").
		Int64("user_id", userID).
		Str("calendar_id", calendarID).
		Msg("calendar removed")

	return nil
}

func (c *calendarService) save(ctx context.Context, userID int64, cfg models.CalendarConfig) error {
	encoded, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode calendar configuration: %w", err)
	}
	if err := c.settings.Set(ctx, userID, calendarSettingKey(cfg.ID), string(encoded)); err != nil {
		return fmt.Errorf("store calendar configuration: %w", err)
	}
	return nil
}
