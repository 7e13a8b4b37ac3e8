package models

// EventsResponse is the payload of the event query endpoints.
type EventsResponse struct {
	Events []CalendarEvent `json:"events"`
	Length int             `json:"length"`
}

// CalendarsResponse is the payload of the calendar list endpoint.
type CalendarsResponse struct {
	Calendars []CalendarConfig `json:"calendars"`
	Length    int              `json:"length"`
}

// GoogleTokensRequest connects a Google account by handing over the token
// set obtained from the OAuth handshake.
type GoogleTokensRequest struct {
	AccountEmail string `json:"account_email"`
	OAuthTokens
}

// GoogleTokenStatus reports whether a Google account has a stored token
// set.
type GoogleTokenStatus struct {
	AccountEmail string `json:"account_email"`
	Connected    bool   `json:"connected"`
}

// ToggleCalendarRequest is the body of the calendar enable/disable
// endpoint.
type ToggleCalendarRequest struct {
	Enabled bool `json:"enabled"`
}
