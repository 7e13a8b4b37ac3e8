package models

import "time"

// OAuthTokens is the access/refresh token pair stored (encrypted) for one
// linked Google account. A provider adapter holds a copy in memory only for
// the duration of a single sync operation.
type OAuthTokens struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ExpiresWithin reports whether the access token expires at or before
// now+buffer. The buffer guards against tokens expiring mid-flight between
// the check and the upstream call.
func (t OAuthTokens) ExpiresWithin(buffer time.Duration, now time.Time) bool {
	return !t.ExpiresAt.After(now.Add(buffer))
}
