package provider

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/go-resty/resty/v2"
	"github.com/teambition/rrule-go"

	"calhub/internal/logger"
	"calhub/models"
)

const (
	icsDateLayout     = "20060102"
	icsDateTimeLayout = "20060102T150405"
	icsUTCLayout      = "20060102T150405Z"

	// Safety cap so a malformed RRULE cannot expand without bound.
	maxInstancesPerEvent = 5000

	maxErrorBodyBytes = 512
)

// icalProvider implements [Provider] over a subscribed ICS feed.
type icalProvider struct {
	cfg     models.CalendarConfig
	feedURL string
	client  *resty.Client
	loc     *time.Location
	logger  *logger.Logger
}

func newICalProvider(cfg models.CalendarConfig, client *resty.Client, loc *time.Location, log *logger.Logger) (*icalProvider, error) {
	feedURL, err := normalizeFeedURL(cfg.ICalURL)
	if err != nil {
		return nil, err
	}

	return &icalProvider{
		cfg:     cfg,
		feedURL: feedURL,
		client:  client,
		loc:     loc,
		logger:  log,
	}, nil
}

// normalizeFeedURL validates the subscription URL and rewrites the
// webcal scheme apps commonly hand out to https.
func normalizeFeedURL(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: ical url is empty", ErrConfigIncomplete)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: invalid ical url: %v", ErrConfigIncomplete, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "webcal":
		u.Scheme = "https"
	case "http", "https":
	default:
		return "", fmt.Errorf("%w: unsupported ical url scheme %q", ErrConfigIncomplete, u.Scheme)
	}

	return u.String(), nil
}

// ListCalendars implements [Provider]. A feed is a single calendar.
func (p *icalProvider) ListCalendars(_ context.Context) ([]models.ProviderCalendar, error) {
	return []models.ProviderCalendar{
		{ID: p.cfg.ID, Name: p.cfg.Name, Primary: true},
	}, nil
}

// GetEvents implements [Provider]. The feed is fetched in full on every
// call; recurrence rules are expanded locally into the window.
func (p *icalProvider) GetEvents(ctx context.Context, window models.TimeRange) ([]models.CalendarEvent, error) {
	log := logger.FromContext(ctx)

	resp, err := p.client.R().SetContext(ctx).Get(p.feedURL)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	if !resp.IsSuccess() {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Body:       truncateBody(resp.String()),
		}
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse ics feed: %w", err)
	}

	parsed := make([]feedEvent, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		fe, parseErr := p.parseFeedEvent(ve)
		if parseErr != nil {
			// One broken VEVENT must not sink the feed.
			log.Warn().
				Err(parseErr).
				Str("func", "icalProvider.GetEvents").
				Str("calendar_id", p.cfg.ID).
				Msg("skipping unparseable feed event")
			continue
		}
		parsed = append(parsed, fe)
	}

	events := p.expand(parsed, window)

	log.Debug().
		Str("func", "icalProvider.GetEvents").
		Str("calendar_id", p.cfg.ID).
		Int("event_count", len(events)).
		Msg("fetched ics feed events")

	return events, nil
}

// feedEvent is the normalized form of one VEVENT before recurrence
// expansion.
type feedEvent struct {
	uid         string
	summary     string
	description string
	location    string
	start       time.Time
	end         time.Time
	allDay      bool
	rrule       string
	exDates     []time.Time
	recurrence  *time.Time
}

func (p *icalProvider) parseFeedEvent(ve *ics.VEvent) (feedEvent, error) {
	var fe feedEvent

	uidProp := ve.GetProperty(ics.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return fe, fmt.Errorf("missing UID")
	}
	fe.uid = uidProp.Value

	if prop := ve.GetProperty(ics.ComponentPropertySummary); prop != nil {
		fe.summary = prop.Value
	}
	if prop := ve.GetProperty(ics.ComponentPropertyDescription); prop != nil {
		fe.description = prop.Value
	}
	if prop := ve.GetProperty(ics.ComponentPropertyLocation); prop != nil {
		fe.location = prop.Value
	}

	startProp := ve.GetProperty(ics.ComponentPropertyDtStart)
	if startProp == nil || startProp.Value == "" {
		return fe, fmt.Errorf("missing DTSTART")
	}
	fe.allDay = isDateValue(startProp)

	if fe.allDay {
		start, err := time.ParseInLocation(icsDateLayout, startProp.Value, p.loc)
		if err != nil {
			return fe, fmt.Errorf("invalid all-day DTSTART %q: %w", startProp.Value, err)
		}
		fe.start = start
		fe.end = start.Add(24 * time.Hour)
		if endProp := ve.GetProperty(ics.ComponentPropertyDtEnd); endProp != nil {
			if end, endErr := time.ParseInLocation(icsDateLayout, endProp.Value, p.loc); endErr == nil {
				fe.end = end
			}
		}
	} else {
		start, err := ve.GetStartAt()
		if err != nil {
			return fe, fmt.Errorf("invalid DTSTART: %w", err)
		}
		fe.start = start
		// Missing DTEND means a zero-duration event per RFC 5545.
		fe.end = start
		if end, endErr := ve.GetEndAt(); endErr == nil {
			fe.end = end
		}
	}

	if prop := ve.GetProperty(ics.ComponentPropertyRrule); prop != nil {
		fe.rrule = prop.Value
	}

	for _, prop := range ve.GetProperties(ics.ComponentPropertyExdate) {
		for _, part := range strings.Split(prop.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := p.parseFeedTime(part); err == nil {
				fe.exDates = append(fe.exDates, t)
			}
		}
	}

	if prop := ve.GetProperty("RECURRENCE-ID"); prop != nil {
		if t, err := p.parseFeedTime(prop.Value); err == nil {
			fe.recurrence = &t
		}
	}

	return fe, nil
}

// isDateValue reports whether a DTSTART/DTEND property carries a civil
// date (all-day) rather than a timestamp.
func isDateValue(prop *ics.IANAProperty) bool {
	if prop.ICalParameters != nil {
		if vs, ok := prop.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(prop.Value, "T")
}

// parseFeedTime parses the basic ICS date and date-time forms used by
// EXDATE and RECURRENCE-ID values.
func (p *icalProvider) parseFeedTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return time.Time{}, fmt.Errorf("empty time value")
	case strings.HasSuffix(v, "Z"):
		return time.Parse(icsUTCLayout, v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation(icsDateTimeLayout, v, p.loc)
	default:
		return time.ParseInLocation(icsDateLayout, v, p.loc)
	}
}

// expand turns parsed feed events into concrete instances inside the
// window, applying RRULE expansion, EXDATE removal, and RECURRENCE-ID
// overrides.
func (p *icalProvider) expand(events []feedEvent, window models.TimeRange) []models.CalendarEvent {
	baseByUID := make(map[string][]feedEvent)
	overridesByUID := make(map[string][]feedEvent)

	for _, fe := range events {
		if fe.recurrence != nil {
			overridesByUID[fe.uid] = append(overridesByUID[fe.uid], fe)
		} else {
			baseByUID[fe.uid] = append(baseByUID[fe.uid], fe)
		}
	}

	out := make([]models.CalendarEvent, 0, len(events))

	for uid, bases := range baseByUID {
		overrides := overridesByUID[uid]
		for _, fe := range bases {
			if fe.rrule == "" {
				if !window.Overlaps(fe.start, fe.end) {
					continue
				}
				out = append(out, p.makeEvent(fe, fe.start, fe.end, false))
				continue
			}
			out = append(out, p.expandRecurring(fe, overrides, window)...)
		}
	}

	return out
}

func (p *icalProvider) expandRecurring(fe feedEvent, overrides []feedEvent, window models.TimeRange) []models.CalendarEvent {
	rule, err := rrule.StrToRRule(fe.rrule)
	if err != nil {
		p.logger.Warn().
			Err(err).
			Str("func", "icalProvider.expandRecurring").
			Str("calendar_id", p.cfg.ID).
			Str("uid", fe.uid).
			Msg("skipping event with unparseable RRULE")
		return nil
	}
	rule.DTStart(fe.start)

	var set rrule.Set
	set.RRule(rule)
	for _, ex := range fe.exDates {
		set.ExDate(ex.In(fe.start.Location()))
	}

	starts := set.Between(
		window.Start.In(fe.start.Location()),
		window.End.In(fe.start.Location()),
		true,
	)
	if len(starts) > maxInstancesPerEvent {
		starts = starts[:maxInstancesPerEvent]
	}

	duration := fe.end.Sub(fe.start)

	out := make([]models.CalendarEvent, 0, len(starts))
	for _, start := range starts {
		end := start.Add(duration)
		if fe.allDay {
			start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
			end = start.Add(24 * time.Hour)
		}

		instance := fe
		if override, ok := findOverride(overrides, start); ok {
			instance = override
			start = override.start
			end = override.end
		}

		out = append(out, p.makeEvent(instance, start, end, true))
	}

	return out
}

// findOverride matches a RECURRENCE-ID override against one occurrence
// start.
func findOverride(overrides []feedEvent, start time.Time) (feedEvent, bool) {
	for _, ov := range overrides {
		if ov.recurrence != nil && ov.recurrence.In(start.Location()).Equal(start) {
			return ov, true
		}
	}
	return feedEvent{}, false
}

func (p *icalProvider) makeEvent(fe feedEvent, start, end time.Time, instance bool) models.CalendarEvent {
	id := fe.uid
	// Expanded instances share a UID, so the occurrence start joins the key.
	if instance {
		id = fe.uid + "/" + start.UTC().Format(time.RFC3339)
	}

	return models.CalendarEvent{
		ID:          id,
		CalendarID:  p.cfg.ID,
		Title:       fe.summary,
		StartTime:   start,
		EndTime:     end,
		AllDay:      fe.allDay,
		Location:    fe.location,
		Description: fe.description,
		Source: models.EventSource{
			Type: models.CalendarTypeICal,
			Name: p.cfg.Name,
		},
	}
}

func truncateBody(body string) string {
	if len(body) > maxErrorBodyBytes {
		return body[:maxErrorBodyBytes]
	}
	return body
}
