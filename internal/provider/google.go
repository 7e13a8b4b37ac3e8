package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"calhub/internal/logger"
	"calhub/internal/metrics"
	"calhub/models"
)

const allDayDateLayout = "2006-01-02"

// Credentials are the deployment's Google OAuth client credentials,
// injected at construction.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// TokenPersister stores a refreshed token set for later runs.
type TokenPersister func(ctx context.Context, tokens models.OAuthTokens) error

// tokenRefresher exchanges a refresh token for a fresh token set.
type tokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (models.OAuthTokens, error)
}

// oauthRefresher implements tokenRefresher against Google's token
// endpoint.
type oauthRefresher struct {
	conf *oauth2.Config
}

func newOAuthRefresher(creds Credentials) *oauthRefresher {
	return &oauthRefresher{
		conf: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			Endpoint:     googleauth.Endpoint,
			Scopes:       []string{calendar.CalendarReadonlyScope},
		},
	}
}

func (r *oauthRefresher) Refresh(ctx context.Context, refreshToken string) (models.OAuthTokens, error) {
	tok, err := r.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return models.OAuthTokens{}, err
	}

	refreshed := models.OAuthTokens{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
	}
	// Google usually omits the refresh token on refresh responses.
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = refreshToken
	}

	return refreshed, nil
}

// tokenSource implements [oauth2.TokenSource] over the stored token set.
// The access token is refreshed ahead of expiry (within the configured
// buffer) so it cannot lapse mid-request. A refreshed set is persisted
// through the [TokenPersister]; a persist failure is downgraded to a
// warning and the in-memory token still serves the current run.
type tokenSource struct {
	ctx       context.Context
	account   string
	refresher tokenRefresher
	persist   TokenPersister
	buffer    time.Duration
	now       func() time.Time
	logger    *logger.Logger

	mu     sync.Mutex
	tokens models.OAuthTokens
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tokens.ExpiresWithin(s.buffer, s.now()) {
		return s.oauthToken(), nil
	}

	if s.tokens.RefreshToken == "" {
		return nil, &AuthExpiredError{Account: s.account}
	}

	refreshed, err := s.refresher.Refresh(s.ctx, s.tokens.RefreshToken)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, &AuthExpiredError{Account: s.account}
		}
		return nil, &NetworkError{Cause: err}
	}

	s.tokens = refreshed

	if persistErr := s.persist(s.ctx, refreshed); persistErr != nil {
		metrics.SyncWarning(metrics.WarnTokenPersist)
		s.logger.Warn().
			Err(persistErr).
			Str("func", "tokenSource.Token").
			Str("account", s.account).
			Msg("refreshed google token was not persisted, continuing with in-memory token")
	}

	return s.oauthToken(), nil
}

func (s *tokenSource) oauthToken() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  s.tokens.AccessToken,
		RefreshToken: s.tokens.RefreshToken,
		Expiry:       s.tokens.ExpiresAt,
	}
}

// googleProvider implements [Provider] over the Google Calendar API.
type googleProvider struct {
	cfg     models.CalendarConfig
	loc     *time.Location
	service *calendar.Service
	logger  *logger.Logger
}

func newGoogleProvider(ctx context.Context, creds Credentials, cfg models.CalendarConfig, tokens models.OAuthTokens, persist TokenPersister, buffer time.Duration, loc *time.Location, log *logger.Logger) (*googleProvider, error) {
	src := &tokenSource{
		ctx:       ctx,
		account:   cfg.AccountEmail,
		refresher: newOAuthRefresher(creds),
		persist:   persist,
		buffer:    buffer,
		now:       time.Now,
		logger:    log,
		tokens:    tokens,
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &googleProvider{
		cfg:     cfg,
		loc:     loc,
		service: svc,
		logger:  log,
	}, nil
}

// ListCalendars implements [Provider].
func (g *googleProvider) ListCalendars(ctx context.Context) ([]models.ProviderCalendar, error) {
	var out []models.ProviderCalendar

	pageToken := ""
	for {
		call := g.service.CalendarList.List().Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, g.mapError(err)
		}

		for _, item := range page.Items {
			out = append(out, models.ProviderCalendar{
				ID:      item.Id,
				Name:    item.Summary,
				Primary: item.Primary,
			})
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return out, nil
}

// GetEvents implements [Provider]. Recurring events are expanded by the
// API itself via SingleEvents.
func (g *googleProvider) GetEvents(ctx context.Context, window models.TimeRange) ([]models.CalendarEvent, error) {
	log := logger.FromContext(ctx)

	var out []models.CalendarEvent

	pageToken := ""
	for {
		call := g.service.Events.List(g.cfg.ProviderCalendarID).
			SingleEvents(true).
			OrderBy("startTime").
			TimeMin(window.Start.Format(time.RFC3339)).
			TimeMax(window.End.Format(time.RFC3339)).
			MaxResults(250).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, g.mapError(err)
		}

		for _, item := range page.Items {
			ev, ok := g.convertEvent(item)
			if !ok {
				continue
			}
			out = append(out, ev)
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	log.Debug().
		Str("func", "googleProvider.GetEvents").
		Str("calendar_id", g.cfg.ID).
		Int("event_count", len(out)).
		Msg("fetched google calendar events")

	return out, nil
}

// convertEvent normalizes one API event. Cancelled instances and events
// with unparseable timestamps are dropped.
func (g *googleProvider) convertEvent(item *calendar.Event) (models.CalendarEvent, bool) {
	if item == nil || item.Status == "cancelled" || item.Start == nil {
		return models.CalendarEvent{}, false
	}

	ev := models.CalendarEvent{
		ID:          item.Id,
		CalendarID:  g.cfg.ID,
		Title:       item.Summary,
		Location:    item.Location,
		Description: item.Description,
		Source: models.EventSource{
			Type:         models.CalendarTypeGoogle,
			Name:         g.cfg.Name,
			AccountEmail: g.cfg.AccountEmail,
		},
	}

	// An all-day event carries Date instead of DateTime; its Date values
	// are civil dates pinned to the product timezone, with End exclusive.
	if item.Start.Date != "" {
		start, err := time.ParseInLocation(allDayDateLayout, item.Start.Date, g.loc)
		if err != nil {
			return models.CalendarEvent{}, false
		}
		end := start.Add(24 * time.Hour)
		if item.End != nil && item.End.Date != "" {
			if parsed, parseErr := time.ParseInLocation(allDayDateLayout, item.End.Date, g.loc); parseErr == nil {
				end = parsed
			}
		}
		ev.AllDay = true
		ev.StartTime = start
		ev.EndTime = end
		return ev, true
	}

	start, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return models.CalendarEvent{}, false
	}
	end := start
	if item.End != nil && item.End.DateTime != "" {
		if parsed, parseErr := time.Parse(time.RFC3339, item.End.DateTime); parseErr == nil {
			end = parsed
		}
	}
	ev.StartTime = start
	ev.EndTime = end

	return ev, true
}

// mapError translates API and transport failures into the provider error
// types. 401/403 means the stored authorization is no longer accepted.
func (g *googleProvider) mapError(err error) error {
	var authErr *AuthExpiredError
	if errors.As(err, &authErr) {
		return authErr
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return &AuthExpiredError{Account: g.cfg.AccountEmail}
		}
		return &APIError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return &AuthExpiredError{Account: g.cfg.AccountEmail}
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr
	}

	return &NetworkError{Cause: err}
}
