package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_DurationsAsStrings(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"secret_key": "k", "secret_salt": "s", "timezone": "UTC"},
		"sync": {"horizon_days": 7, "token_expiry_buffer": "5m", "provider_timeout": "20s"},
		"storage": {"db": {"dsn": "postgres://localhost/calhub"}},
		"server": {"http_address": ":8081", "request_timeout": "45s"},
		"workers": {"sync_interval": "1h"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.SecretKey)
	assert.Equal(t, 7, cfg.Sync.HorizonDays)
	assert.Equal(t, 5*time.Minute, cfg.Sync.TokenExpiryBuffer)
	assert.Equal(t, 20*time.Second, cfg.Sync.ProviderTimeout)
	assert.Equal(t, ":8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Hour, cfg.Workers.SyncInterval)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeTempJSON(t, `{"app":`) },
		},
		{
			name: "bad duration",
			path: func(t *testing.T) string {
				return writeTempJSON(t, `{"sync": {"token_expiry_buffer": "soon"}}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseJSON(tt.path(t))
			require.Error(t, err)
		})
	}
}
