package service

import (
	"context"
	"encoding/json"
	"fmt"

	"calhub/internal/logger"
	"calhub/internal/secrets"
	"calhub/models"
)

// tokenService implements [TokenService] over the secret store.
type tokenService struct {
	secrets secrets.Store
	logger  *logger.Logger
}

// NewTokenService constructs the Google token service.
func NewTokenService(secretStore secrets.Store, log *logger.Logger) TokenService {
	return &tokenService{
		secrets: secretStore,
		logger:  log,
	}
}

// StoreGoogleTokens implements [TokenService].
func (t *tokenService) StoreGoogleTokens(ctx context.Context, userID int64, accountEmail string, tokens models.OAuthTokens) error {
	log := logger.FromContext(ctx)

	encoded, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("encode google tokens: %w", err)
	}

	if err := t.secrets.Set(ctx, userID, secrets.GoogleTokenKey(accountEmail), string(encoded)); err != nil {
		return err
	}

	log.Info().
		Str("func", "tokenService.StoreGoogleTokens").
		Int64("user_id", userID).
		Str("account", accountEmail).
		Msg("google account connected")

	return nil
}

// LoadGoogleTokens implements [TokenService].
func (t *tokenService) LoadGoogleTokens(ctx context.Context, userID int64, accountEmail string) (models.OAuthTokens, error) {
	blob, err := t.secrets.Get(ctx, userID, secrets.GoogleTokenKey(accountEmail))
	if err != nil {
		return models.OAuthTokens{}, err
	}

	var tokens models.OAuthTokens
	if err := json.Unmarshal([]byte(blob), &tokens); err != nil {
		return models.OAuthTokens{}, fmt.Errorf("decode google tokens: %w", err)
	}

	return tokens, nil
}

// DeleteGoogleTokens implements [TokenService].
func (t *tokenService) DeleteGoogleTokens(ctx context.Context, userID int64, accountEmail string) error {
	return t.secrets.Delete(ctx, userID, secrets.GoogleTokenKey(accountEmail))
}

// HasGoogleTokens implements [TokenService].
func (t *tokenService) HasGoogleTokens(ctx context.Context, userID int64, accountEmail string) (bool, error) {
	return t.secrets.Exists(ctx, userID, secrets.GoogleTokenKey(accountEmail))
}
