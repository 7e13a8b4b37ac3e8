package provider

import (
	"errors"
	"fmt"
)

// ErrConfigIncomplete is returned by the [Factory] when a calendar
// configuration lacks the fields its provider type needs.
var ErrConfigIncomplete = errors.New("calendar configuration incomplete")

// AuthExpiredError reports that the stored authorization for an account
// is missing or no longer accepted upstream. The account must be
// re-connected; retrying without new credentials cannot succeed.
type AuthExpiredError struct {
	Account string
}

func (e *AuthExpiredError) Error() string {
	return fmt.Sprintf("authorization for %s has expired, re-connect the account", e.Account)
}

// APIError reports a non-success response from an upstream API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// NetworkError reports a transport-level failure before any upstream
// response was received.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure reaching provider: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// ErrorKind buckets provider failures for reporting and retry decisions.
type ErrorKind string

const (
	// KindConfiguration marks failures fixable only by changing the
	// calendar configuration.
	KindConfiguration ErrorKind = "configuration"

	// KindAuthentication marks failures requiring the account to be
	// re-connected.
	KindAuthentication ErrorKind = "authentication"

	// KindNetwork marks transient transport failures worth retrying.
	KindNetwork ErrorKind = "network"

	// KindAPI marks upstream responses with a non-success status.
	KindAPI ErrorKind = "api"

	// KindUnknown marks everything else.
	KindUnknown ErrorKind = "unknown"
)

// Kind classifies a provider error into one of the [ErrorKind] buckets.
func Kind(err error) ErrorKind {
	var authErr *AuthExpiredError
	var apiErr *APIError
	var netErr *NetworkError

	switch {
	case errors.Is(err, ErrConfigIncomplete):
		return KindConfiguration
	case errors.As(err, &authErr):
		return KindAuthentication
	case errors.As(err, &netErr):
		return KindNetwork
	case errors.As(err, &apiErr):
		return KindAPI
	default:
		return KindUnknown
	}
}
