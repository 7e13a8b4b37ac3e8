package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"calhub/internal/provider"
	"calhub/internal/service"
	"calhub/models"
)

func TestSyncAllEndpoint(t *testing.T) {
	t.Run("returns the settled batch result", func(t *testing.T) {
		h, deps := newTestHandler(t)

		result := models.SyncAllResult{
			SuccessCount: 2,
			TotalCount:   3,
			SyncedAt:     time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC),
			ErrorCalendars: []models.SyncError{
				{CalendarID: "cal-b", Name: "Beta", Error: "network error"},
			},
		}
		deps.sync.EXPECT().SyncAll(gomock.Any(), int64(7)).Return(result, nil)

		rr := doRequest(t, h, http.MethodPost, "/api/sync", nil, true)

		// Per-calendar failures are part of the payload, not an HTTP error.
		require.Equal(t, http.StatusOK, rr.Code)

		var got models.SyncAllResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 2, got.SuccessCount)
		require.Len(t, got.ErrorCalendars, 1)
		assert.Equal(t, "cal-b", got.ErrorCalendars[0].CalendarID)
	})

	t.Run("config load failure maps to 500", func(t *testing.T) {
		h, deps := newTestHandler(t)

		deps.sync.EXPECT().SyncAll(gomock.Any(), int64(7)).
			Return(models.SyncAllResult{}, assert.AnError)

		rr := doRequest(t, h, http.MethodPost, "/api/sync", nil, true)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSyncCalendarEndpoint(t *testing.T) {
	t.Run("synced", func(t *testing.T) {
		h, deps := newTestHandler(t)

		result := models.SyncResult{
			CalendarID: "cal-a",
			Name:       "Alpha",
			EventCount: 5,
			SyncedAt:   time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC),
		}
		deps.sync.EXPECT().SyncCalendar(gomock.Any(), int64(7), "cal-a").Return(result, nil)

		rr := doRequest(t, h, http.MethodPost, "/api/sync/cal-a", nil, true)

		require.Equal(t, http.StatusOK, rr.Code)

		var got models.SyncResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 5, got.EventCount)
	})

	t.Run("unknown calendar maps to 404", func(t *testing.T) {
		h, deps := newTestHandler(t)

		deps.sync.EXPECT().SyncCalendar(gomock.Any(), int64(7), "missing").
			Return(models.SyncResult{}, service.ErrCalendarNotFound)

		rr := doRequest(t, h, http.MethodPost, "/api/sync/missing", nil, true)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unreachable provider maps to 502", func(t *testing.T) {
		h, deps := newTestHandler(t)

		deps.sync.EXPECT().SyncCalendar(gomock.Any(), int64(7), "cal-a").
			Return(models.SyncResult{}, &provider.NetworkError{Cause: assert.AnError})

		rr := doRequest(t, h, http.MethodPost, "/api/sync/cal-a", nil, true)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
