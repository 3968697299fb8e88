package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"app": {"bcrypt_cost": 12, "version": "1.2.3"},
		"storage": {
			"db": {"dsn": "postgres://u:p@localhost/contacts"},
			"sessions": {"path": "sessions.db", "ttl": "24h"}
		},
		"server": {"http_address": ":8081", "request_timeout": "45s"},
		"geocoder": {"base_url": "https://geo.example", "user_agent": "tests", "timeout": "5s"},
		"workers": {"sweep_interval": "1m"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "postgres://u:p@localhost/contacts", cfg.Storage.DB.DSN)
	assert.Equal(t, 24*time.Hour, cfg.Storage.Sessions.TTL)
	assert.Equal(t, ":8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://geo.example", cfg.Geocoder.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Geocoder.Timeout)
	assert.Equal(t, time.Minute, cfg.Workers.SweepInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string form", `"1h30m"`, 90 * time.Minute, false},
		{"numeric nanoseconds", `1000000000`, time.Second, false},
		{"garbage", `"soon"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
