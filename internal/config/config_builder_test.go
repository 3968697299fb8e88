package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultDatabaseDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultSessionsPath, cfg.Storage.Sessions.Path)
	assert.Equal(t, defaultSessionTTL, cfg.Storage.Sessions.TTL)
	assert.Equal(t, defaultSweepInterval, cfg.Workers.SweepInterval)
}

func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	b := newConfigBuilder()
	// env source (highest priority) sets the address, a later source
	// tries to override it and also supplies the DSN.
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: ":9000"}},
		&StructuredConfig{
			Server:  Server{HTTPAddress: ":9999"},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/contacts"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/contacts", cfg.Storage.DB.DSN)
}

func TestValidate_RejectsBadBcryptCost(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	cfg.App.BcryptCost = 99

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_RejectsNonPositiveTTL(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	cfg.Storage.Sessions.TTL = -time.Hour

	assert.ErrorIs(t, cfg.validate(), ErrInvalidSessionConfigs)
}
