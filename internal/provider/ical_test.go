package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calhub/internal/logger"
	"calhub/models"
)

const testFeed = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//calhub//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:single-1\r\n" +
	"DTSTAMP:20260301T000000Z\r\n" +
	"DTSTART:20260302T100000Z\r\n" +
	"DTEND:20260302T110000Z\r\n" +
	"SUMMARY:Standup\r\n" +
	"LOCATION:Room 1\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:allday-1\r\n" +
	"DTSTAMP:20260301T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20260303\r\n" +
	"DTEND;VALUE=DATE:20260304\r\n" +
	"SUMMARY:Conference\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:rec-1\r\n" +
	"DTSTAMP:20260301T000000Z\r\n" +
	"DTSTART:20260302T090000Z\r\n" +
	"DTEND:20260302T093000Z\r\n" +
	"RRULE:FREQ=DAILY;COUNT=5\r\n" +
	"EXDATE:20260304T090000Z\r\n" +
	"SUMMARY:Daily sync\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:outside-1\r\n" +
	"DTSTAMP:20260301T000000Z\r\n" +
	"DTSTART:20260401T100000Z\r\n" +
	"DTEND:20260401T110000Z\r\n" +
	"SUMMARY:Next month\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func newFeedProvider(t *testing.T, url string) *icalProvider {
	t.Helper()

	p, err := newICalProvider(models.CalendarConfig{
		ID:      "cal-ics",
		Type:    models.CalendarTypeICal,
		Name:    "Team Feed",
		ICalURL: url,
	}, resty.New(), time.UTC, logger.Nop())
	require.NoError(t, err)
	return p
}

func feedWindow() models.TimeRange {
	return models.TimeRange{
		Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestICalGetEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	p := newFeedProvider(t, srv.URL)

	events, err := p.GetEvents(context.Background(), feedWindow())
	require.NoError(t, err)

	byID := make(map[string]models.CalendarEvent, len(events))
	for _, ev := range events {
		byID[ev.ID] = ev
	}

	// single + all-day + 4 recurring instances (one removed by EXDATE);
	// the April event lies outside the window.
	assert.Len(t, events, 6)

	single, ok := byID["single-1"]
	require.True(t, ok)
	assert.Equal(t, "Standup", single.Title)
	assert.Equal(t, "Room 1", single.Location)
	assert.Equal(t, "cal-ics", single.CalendarID)
	assert.Equal(t, models.CalendarTypeICal, single.Source.Type)
	assert.False(t, single.AllDay)

	allDay, ok := byID["allday-1"]
	require.True(t, ok)
	assert.True(t, allDay.AllDay)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), allDay.StartTime)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), allDay.EndTime)

	// Recurring instances carry the occurrence start in their id.
	for _, day := range []int{2, 3, 5, 6} {
		start := time.Date(2026, 3, day, 9, 0, 0, 0, time.UTC)
		id := "rec-1/" + start.Format(time.RFC3339)
		instance, found := byID[id]
		require.True(t, found, "missing recurring instance %s", id)
		assert.True(t, instance.StartTime.Equal(start))
		assert.Equal(t, 30*time.Minute, instance.EndTime.Sub(instance.StartTime))
	}

	// The excluded occurrence must not reappear.
	excluded := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	_, found := byID["rec-1/"+excluded.Format(time.RFC3339)]
	assert.False(t, found)

	_, found = byID["outside-1"]
	assert.False(t, found)
}

func TestICalGetEvents_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := newFeedProvider(t, srv.URL)

	_, err := p.GetEvents(context.Background(), feedWindow())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "gone fishing")
}

func TestICalGetEvents_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listening anymore

	p := newFeedProvider(t, srv.URL)

	_, err := p.GetEvents(context.Background(), feedWindow())
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestICalListCalendars(t *testing.T) {
	p := newFeedProvider(t, "https://example.com/team.ics")

	cals, err := p.ListCalendars(context.Background())
	require.NoError(t, err)
	require.Len(t, cals, 1)
	assert.Equal(t, "cal-ics", cals[0].ID)
	assert.Equal(t, "Team Feed", cals[0].Name)
	assert.True(t, cals[0].Primary)
}

func TestNormalizeFeedURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "https passes through", raw: "https://example.com/a.ics", want: "https://example.com/a.ics"},
		{name: "http passes through", raw: "http://example.com/a.ics", want: "http://example.com/a.ics"},
		{name: "webcal rewritten to https", raw: "webcal://example.com/a.ics", want: "https://example.com/a.ics"},
		{name: "empty rejected", raw: "", wantErr: true},
		{name: "file scheme rejected", raw: "file:///etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeFeedURL(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrConfigIncomplete)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestICalGetEvents_BrokenEventIsSkipped(t *testing.T) {
	feed := strings.Replace(testFeed, "UID:single-1\r\n", "", 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	p := newFeedProvider(t, srv.URL)

	events, err := p.GetEvents(context.Background(), feedWindow())
	require.NoError(t, err)

	for _, ev := range events {
		assert.NotEqual(t, "Standup", ev.Title)
	}
}
