package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"calhub/internal/service"
	"calhub/models"
)

func TestEventsForToday(t *testing.T) {
	h, deps := newTestHandler(t)

	cached := []models.CalendarEvent{
		{ID: "ev-1", CalendarID: "cal-a", Title: "Standup"},
		{ID: "ev-2", CalendarID: "cal-a", Title: "Review"},
	}
	deps.query.EXPECT().EventsForToday(gomock.Any(), int64(7)).Return(cached, nil)

	rr := doRequest(t, h, http.MethodGet, "/api/events/today", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.EventsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Length)
	assert.Equal(t, cached, response.Events)
}

func TestEventsForWeek(t *testing.T) {
	h, deps := newTestHandler(t)

	deps.query.EXPECT().EventsForWeek(gomock.Any(), int64(7)).Return(nil, nil)

	rr := doRequest(t, h, http.MethodGet, "/api/events/week", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.EventsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Zero(t, response.Length)
}

func TestEventsForRange(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		h, deps := newTestHandler(t)

		wantWindow := models.TimeRange{
			Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		}
		deps.query.EXPECT().
			EventsForRange(gomock.Any(), int64(7), wantWindow).
			Return([]models.CalendarEvent{{ID: "ev-1"}}, nil)

		target := "/api/events?start=2026-03-01T00:00:00Z&end=2026-03-08T00:00:00Z"
		rr := doRequest(t, h, http.MethodGet, target, nil, true)

		require.Equal(t, http.StatusOK, rr.Code)

		var response models.EventsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Length)
	})

	t.Run("missing params", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := doRequest(t, h, http.MethodGet, "/api/events", nil, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unparseable start", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := doRequest(t, h, http.MethodGet, "/api/events?start=yesterday&end=2026-03-08T00:00:00Z", nil, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("inverted window maps to 400", func(t *testing.T) {
		h, deps := newTestHandler(t)

		deps.query.EXPECT().
			EventsForRange(gomock.Any(), int64(7), gomock.Any()).
			Return(nil, service.ErrInvalidRange)

		target := "/api/events?start=2026-03-08T00:00:00Z&end=2026-03-01T00:00:00Z"
		rr := doRequest(t, h, http.MethodGet, target, nil, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
