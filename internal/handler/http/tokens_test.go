package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"calhub/models"
)

func TestConnectGoogleAccount(t *testing.T) {
	t.Run("stores the handed-over token set", func(t *testing.T) {
		h, deps := newTestHandler(t)

		wantTokens := models.OAuthTokens{
			AccessToken:  "live",
			RefreshToken: "refresh",
			ExpiresAt:    time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC),
		}
		deps.tokens.EXPECT().
			StoreGoogleTokens(gomock.Any(), int64(7), "user@example.com", wantTokens).
			Return(nil)

		body := `{
			"account_email": "user@example.com",
			"access_token": "live",
			"refresh_token": "refresh",
			"expires_at": "2026-03-15T14:00:00Z"
		}`
		rr := doRequest(t, h, http.MethodPost, "/api/google/tokens", strings.NewReader(body), true)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("missing account email", func(t *testing.T) {
		h, _ := newTestHandler(t)

		body := `{"access_token": "live", "refresh_token": "refresh"}`
		rr := doRequest(t, h, http.MethodPost, "/api/google/tokens", strings.NewReader(body), true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing refresh token", func(t *testing.T) {
		h, _ := newTestHandler(t)

		body := `{"account_email": "user@example.com", "access_token": "live"}`
		rr := doRequest(t, h, http.MethodPost, "/api/google/tokens", strings.NewReader(body), true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := doRequest(t, h, http.MethodPost, "/api/google/tokens", strings.NewReader("{not json"), true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGoogleTokenStatus(t *testing.T) {
	h, deps := newTestHandler(t)

	deps.tokens.EXPECT().
		HasGoogleTokens(gomock.Any(), int64(7), "user@example.com").
		Return(true, nil)

	rr := doRequest(t, h, http.MethodGet, "/api/google/tokens/user@example.com", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)

	var status models.GoogleTokenStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.True(t, status.Connected)
	assert.Equal(t, "user@example.com", status.AccountEmail)
}

func TestDisconnectGoogleAccount(t *testing.T) {
	h, deps := newTestHandler(t)

	deps.tokens.EXPECT().
		DeleteGoogleTokens(gomock.Any(), int64(7), "user@example.com").
		Return(nil)

	rr := doRequest(t, h, http.MethodDelete, "/api/google/tokens/user@example.com", nil, true)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
