package http

import (
	"errors"
	"net/http"

	"calhub/internal/provider"
	"calhub/internal/secrets"
	"calhub/internal/service"
	"calhub/internal/store"
	"calhub/models"
)

var errorStatusMap = map[error]int{
	service.ErrCalendarNotFound: http.StatusNotFound,
	service.ErrCalendarExists:   http.StatusConflict,
	service.ErrInvalidRange:     http.StatusBadRequest,

	models.ErrCalendarIDMissing:     http.StatusBadRequest,
	models.ErrCalendarNameMissing:   http.StatusBadRequest,
	models.ErrUnsupportedType:       http.StatusBadRequest,
	models.ErrGoogleAccountMissing:  http.StatusBadRequest,
	models.ErrGoogleCalendarMissing: http.StatusBadRequest,
	models.ErrICalURLMissing:        http.StatusBadRequest,

	provider.ErrConfigIncomplete: http.StatusBadRequest,

	secrets.ErrNotFound: http.StatusNotFound,

	store.ErrSettingNotFound: http.StatusNotFound,
	store.ErrSecretNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusFromError translates a service-layer error into an HTTP status.
// Upstream provider failures surface as 502 so callers can tell an
// unreachable calendar source apart from a fault in this service.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var authErr *provider.AuthExpiredError
	var apiErr *provider.APIError
	var netErr *provider.NetworkError
	switch {
	case errors.As(err, &authErr), errors.As(err, &apiErr), errors.As(err, &netErr):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
