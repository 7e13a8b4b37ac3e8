package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON strings in Go
// duration syntax ("5m", "30s") as well as bare nanosecond numbers.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", v)
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types. It exists so duration fields can be written as "5m" in the file
// instead of raw nanosecond counts.
type StructuredJSONConfig struct {
	App struct {
		SecretKey    string `json:"secret_key"`
		SecretSalt   string `json:"secret_salt"`
		TokenSignKey string `json:"token_sign_key"`
		Timezone     string `json:"timezone"`
	} `json:"app,omitempty"`

	Sync struct {
		HorizonDays       int      `json:"horizon_days"`
		TokenExpiryBuffer Duration `json:"token_expiry_buffer"`
		MaxConcurrent     int      `json:"max_concurrent"`
		ProviderTimeout   Duration `json:"provider_timeout"`
	} `json:"sync,omitempty"`

	Google struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	} `json:"google,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SecretKey:    jsonCfg.App.SecretKey,
			SecretSalt:   jsonCfg.App.SecretSalt,
			TokenSignKey: jsonCfg.App.TokenSignKey,
			Timezone:     jsonCfg.App.Timezone,
		},
		Sync: Sync{
			HorizonDays:       jsonCfg.Sync.HorizonDays,
			TokenExpiryBuffer: time.Duration(jsonCfg.Sync.TokenExpiryBuffer),
			MaxConcurrent:     jsonCfg.Sync.MaxConcurrent,
			ProviderTimeout:   time.Duration(jsonCfg.Sync.ProviderTimeout),
		},
		Google: Google{
			ClientID:     jsonCfg.Google.ClientID,
			ClientSecret: jsonCfg.Google.ClientSecret,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
	}

	return cfg, nil
}
