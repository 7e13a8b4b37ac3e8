package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"calhub/internal/config"
	"calhub/internal/logger"
	"calhub/internal/secrets"
	"calhub/models"
)

// Factory builds a [Provider] for one calendar configuration, resolving
// whatever credentials the provider type needs from the secret store.
type Factory struct {
	creds   Credentials
	secrets secrets.Store
	client  *resty.Client
	buffer  time.Duration
	loc     *time.Location
	logger  *logger.Logger
}

// NewFactory constructs the provider factory. loc is the product
// timezone used to pin all-day event boundaries.
func NewFactory(creds Credentials, secretStore secrets.Store, syncCfg config.Sync, loc *time.Location, log *logger.Logger) *Factory {
	client := resty.New().
		SetTimeout(syncCfg.ProviderTimeout).
		SetHeader("User-Agent", "calhub")

	return &Factory{
		creds:   creds,
		secrets: secretStore,
		client:  client,
		buffer:  syncCfg.TokenExpiryBuffer,
		loc:     loc,
		logger:  log,
	}
}

// ForConfig returns the provider matching the calendar's type. A google
// calendar with no stored authorization yields an [*AuthExpiredError]
// so the caller reports "re-connect" instead of a generic failure.
func (f *Factory) ForConfig(ctx context.Context, userID int64, cfg models.CalendarConfig) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigIncomplete, err)
	}

	switch cfg.Type {
	case models.CalendarTypeGoogle:
		return f.googleForConfig(ctx, userID, cfg)
	case models.CalendarTypeICal:
		return newICalProvider(cfg, f.client, f.loc, f.logger)
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedType, cfg.Type)
	}
}

func (f *Factory) googleForConfig(ctx context.Context, userID int64, cfg models.CalendarConfig) (Provider, error) {
	key := secrets.GoogleTokenKey(cfg.AccountEmail)

	blob, err := f.secrets.Get(ctx, userID, key)
	if errors.Is(err, secrets.ErrNotFound) {
		return nil, &AuthExpiredError{Account: cfg.AccountEmail}
	}
	if err != nil {
		return nil, fmt.Errorf("load google tokens: %w", err)
	}

	var tokens models.OAuthTokens
	if err := json.Unmarshal([]byte(blob), &tokens); err != nil {
		return nil, fmt.Errorf("decode google tokens: %w", err)
	}

	persist := func(ctx context.Context, refreshed models.OAuthTokens) error {
		encoded, marshalErr := json.Marshal(refreshed)
		if marshalErr != nil {
			return fmt.Errorf("encode google tokens: %w", marshalErr)
		}
		return f.secrets.Set(ctx, userID, key, string(encoded))
	}

	return newGoogleProvider(ctx, f.creds, cfg, tokens, persist, f.buffer, f.loc, f.logger)
}
