package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"calhub/internal/config"
	"calhub/internal/logger"
	"calhub/internal/mock"
	"calhub/internal/secrets"
	"calhub/models"
)

func newTestFactory(t *testing.T) (*Factory, *mock.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	secretStore := mock.NewMockStore(ctrl)

	f := NewFactory(
		Credentials{ClientID: "client-id", ClientSecret: "client-secret"},
		secretStore,
		config.Sync{TokenExpiryBuffer: 5 * time.Minute, ProviderTimeout: 30 * time.Second},
		time.UTC,
		logger.Nop(),
	)
	return f, secretStore
}

func TestFactoryForConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("ical calendar gets a feed provider", func(t *testing.T) {
		f, _ := newTestFactory(t)

		p, err := f.ForConfig(ctx, 7, models.CalendarConfig{
			ID:      "cal-1",
			Type:    models.CalendarTypeICal,
			Name:    "Team Feed",
			ICalURL: "https://example.com/team.ics",
		})
		require.NoError(t, err)
		assert.IsType(t, &icalProvider{}, p)
	})

	t.Run("google calendar without stored tokens needs re-connect", func(t *testing.T) {
		f, secretStore := newTestFactory(t)

		secretStore.EXPECT().
			Get(ctx, int64(7), secrets.GoogleTokenKey("user@example.com")).
			Return("", secrets.ErrNotFound)

		_, err := f.ForConfig(ctx, 7, models.CalendarConfig{
			ID:                 "cal-2",
			Type:               models.CalendarTypeGoogle,
			Name:               "Work",
			AccountEmail:       "user@example.com",
			ProviderCalendarID: "primary",
		})

		var authErr *AuthExpiredError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "user@example.com", authErr.Account)
	})

	t.Run("google calendar with stored tokens gets an API provider", func(t *testing.T) {
		f, secretStore := newTestFactory(t)

		secretStore.EXPECT().
			Get(ctx, int64(7), secrets.GoogleTokenKey("user@example.com")).
			Return(`{"access_token":"live","refresh_token":"refresh","expires_at":"2026-12-01T00:00:00Z"}`, nil)

		p, err := f.ForConfig(ctx, 7, models.CalendarConfig{
			ID:                 "cal-2",
			Type:               models.CalendarTypeGoogle,
			Name:               "Work",
			AccountEmail:       "user@example.com",
			ProviderCalendarID: "primary",
		})
		require.NoError(t, err)
		assert.IsType(t, &googleProvider{}, p)
	})

	t.Run("corrupt token blob is an error", func(t *testing.T) {
		f, secretStore := newTestFactory(t)

		secretStore.EXPECT().
			Get(ctx, int64(7), gomock.Any()).
			Return("not json", nil)

		_, err := f.ForConfig(ctx, 7, models.CalendarConfig{
			ID:                 "cal-2",
			Type:               models.CalendarTypeGoogle,
			Name:               "Work",
			AccountEmail:       "user@example.com",
			ProviderCalendarID: "primary",
		})
		require.Error(t, err)
	})

	t.Run("incomplete configuration is rejected before any lookup", func(t *testing.T) {
		f, _ := newTestFactory(t)

		_, err := f.ForConfig(ctx, 7, models.CalendarConfig{
			ID:   "cal-3",
			Type: models.CalendarTypeICal,
			Name: "No URL",
		})
		require.ErrorIs(t, err, ErrConfigIncomplete)
	})
}
