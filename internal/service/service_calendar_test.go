package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"calhub/internal/logger"
	"calhub/internal/mock"
	"calhub/internal/store"
	"calhub/models"
)

type calendarTestDeps struct {
	settings *mock.MockSettingsRepository
	events   *mock.MockEventRepository
}

func newTestCalendarService(t *testing.T) (CalendarService, calendarTestDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := calendarTestDeps{
		settings: mock.NewMockSettingsRepository(ctrl),
		events:   mock.NewMockEventRepository(ctrl),
	}
	return NewCalendarService(deps.settings, deps.events, logger.Nop()), deps
}

func mustMarshal(t *testing.T, cfg models.CalendarConfig) string {
	t.Helper()
	encoded, err := json.Marshal(cfg)
	require.NoError(t, err)
	return string(encoded)
}

func TestCalendarList(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted by name, corrupt rows skipped", func(t *testing.T) {
		s, deps := newTestCalendarService(t)

		beta := icalCalendar("cal-b", "Beta", true)
		alpha := icalCalendar("cal-a", "Alpha", false)

		deps.settings.EXPECT().ListByPrefix(ctx, int64(7), "calendar:").Return(map[string]string{
			"calendar:cal-b":  mustMarshal(t, beta),
			"calendar:cal-a":  mustMarshal(t, alpha),
			"calendar:broken": "{not json",
		}, nil)

		got, err := s.List(ctx, 7)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Alpha", got[0].Name)
		assert.Equal(t, "Beta", got[1].Name)
		assert.False(t, got[0].Enabled)
	})

	t.Run("no calendars", func(t *testing.T) {
		s, deps := newTestCalendarService(t)

		deps.settings.EXPECT().ListByPrefix(ctx, int64(7), "calendar:").
			Return(map[string]string{}, nil)

		got, err := s.List(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCalendarGet(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		s, deps := newTestCalendarService(t)

		cal := icalCalendar("cal-a", "Alpha", true)
		deps.settings.EXPECT().Get(ctx, int64(7), "calendar:cal-a").
			Return(mustMarshal(t, cal), nil)

		got, err := s.Get(ctx, 7, "cal-a")
		require.NoError(t, err)
		assert.Equal(t, cal, got)
	})

	t.Run("missing row maps to ErrCalendarNotFound", func(t *testing.T) {
		s, deps := newTestCalendarService(t)

		deps.settings.EXPECT().Get(ctx, int64(7), "calendar:missing").
			Return("", store.ErrSettingNotFound)

		_, err := s.Get(ctx, 7, "missing")
		require.ErrorIs(t, err, ErrCalendarNotFound)
	})
}

func TestCalendarAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id, enables, and stores its own row", func(t *testing.T) {
		s, deps := newTestCalendarService(t)

		deps.settings.EXPECT().Get(ctx, int64(7), gomock.Any()).
			Return("", store.ErrSettingNotFound)

		var storedKey, storedValue string
		deps.settings.EXPECT().Set(ctx, int64(7), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, key, value string) error {
				storedKey = key
				storedValue = value
				return nil
			})

		got, err := s.Add(ctx, 7, models.CalendarConfig{
			Type:    models.CalendarTypeICal,
			Name:    "Team Feed",
			ICalURL: "https://example.com/team.ics",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.True(t, got.Enabled)
		assert.Equal(t, "calendar:"+got.ID, storedKey)

		var stored models.CalendarConfig
		require.NoError(t, json.Unmarshal([]byte(storedValue), &stored))
		assert.Equal(t, got, stored)
	})

	t.Run("invalid configuration is rejected", func(t *testing.T) {
		s, _ := newTestCalendarService(t)

		_, err := s.Add(ctx, 7, models.CalendarConfig{
			Type: models.CalendarTypeICal,
			Name: "No URL",
		})
		require.ErrorIs(t, err, models.ErrICalURLMissing)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		s, deps := newTestCalendarService(t)

		existing := icalCalendar("cal-a", "Alpha", true)
		deps.settings.EXPECT().Get(ctx, int64(7), "calendar:cal-a").
			Return(mustMarshal(t, existing), nil)

		_, err := s.Add(ctx, 7, existing)
		require.ErrorIs(t, err, ErrCalendarExists)
	})
}

func TestCalendarSetEnabled(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestCalendarService(t)

	cal := icalCalendar("cal-a", "Alpha", true)
	deps.settings.EXPECT().Get(ctx, int64(7), "calendar:cal-a").
		Return(mustMarshal(t, cal), nil)

	var storedValue string
	deps.settings.EXPECT().Set(ctx, int64(7), "calendar:cal-a", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _, value string) error {
			storedValue = value
			return nil
		})

	got, err := s.SetEnabled(ctx, 7, "cal-a", false)
	require.NoError(t, err)
	assert.False(t, got.Enabled)

	var stored models.CalendarConfig
	require.NoError(t, json.Unmarshal([]byte(storedValue), &stored))
	assert.False(t, stored.Enabled)
	assert.Equal(t, "Alpha", stored.Name)
}

func TestCalendarDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades through cache, sync state, record, and config", func(t *testing.T) {
		s, deps := newTestCalendarService(t)

		cal := icalCalendar("cal-a", "Alpha", true)
		deps.settings.EXPECT().Get(ctx, int64(7), "calendar:cal-a").
			Return(mustMarshal(t, cal), nil)

		gomock.InOrder(
			deps.events.EXPECT().DeleteByCalendar(ctx, int64(7), "cal-a").Return(nil),
			deps.events.EXPECT().DeleteSyncState(ctx, int64(7), "cal-a").Return(nil),
			deps.events.EXPECT().DeleteCalendarRecord(ctx, int64(7), "cal-a").Return(nil),
			deps.settings.EXPECT().Delete(ctx, int64(7), "calendar:cal-a").Return(nil),
		)

		require.NoError(t, s.Delete(ctx, 7, "cal-a"))
	})

	t.Run("unknown calendar", func(t *testing.T) {
		s, deps := newTestCalendarService(t)

		deps.settings.EXPECT().Get(ctx, int64(7), "calendar:missing").
			Return("", store.ErrSettingNotFound)

		err := s.Delete(ctx, 7, "missing")
		require.ErrorIs(t, err, ErrCalendarNotFound)
	})
}
