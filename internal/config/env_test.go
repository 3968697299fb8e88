package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedGroups(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost:5432/contacts")
	t.Setenv("STORAGE_SESSIONS_PATH", "/tmp/sessions.db")
	t.Setenv("STORAGE_SESSIONS_TTL", "12h")
	t.Setenv("GEOCODER_BASE_URL", "https://geo.example")
	t.Setenv("WORKERS_SWEEP_INTERVAL", "5m")
	t.Setenv("APP_BCRYPT_COST", "12")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@localhost:5432/contacts", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/sessions.db", cfg.Storage.Sessions.Path)
	assert.Equal(t, 12*time.Hour, cfg.Storage.Sessions.TTL)
	assert.Equal(t, "https://geo.example", cfg.Geocoder.BaseURL)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SweepInterval)
	assert.Equal(t, 12, cfg.App.BcryptCost)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("STORAGE_SESSIONS_TTL", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
