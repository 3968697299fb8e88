package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied after all sources are merged. The application is meant
// to boot with zero configuration, like the original single-binary
// deployment: an embedded SQLite file for records and a bbolt file for
// sessions appear next to the working directory.
const (
	defaultHTTPAddress    = ":8080"
	defaultDatabaseDSN    = "contacts.db"
	defaultSessionsPath   = "sessions.db"
	defaultSessionTTL     = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultGeocoderURL    = "https://nominatim.openstreetmap.org"
	defaultGeocoderUA     = "go-contact-manager (contact@rcnj.example)"
	defaultGeocoderWait   = 15 * time.Second
	defaultSweepInterval  = 10 * time.Minute
	defaultAppVersion     = "dev"
)

// applyDefaults fills every field that no source populated.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDatabaseDSN
	}
	if cfg.Storage.Sessions.Path == "" {
		cfg.Storage.Sessions.Path = defaultSessionsPath
	}
	if cfg.Storage.Sessions.TTL == 0 {
		cfg.Storage.Sessions.TTL = defaultSessionTTL
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultAppVersion
	}
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = defaultGeocoderURL
	}
	if cfg.Geocoder.UserAgent == "" {
		cfg.Geocoder.UserAgent = defaultGeocoderUA
	}
	if cfg.Geocoder.Timeout == 0 {
		cfg.Geocoder.Timeout = defaultGeocoderWait
	}
	if cfg.Workers.SweepInterval == 0 {
		cfg.Workers.SweepInterval = defaultSweepInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Sessions.Path == "" || cfg.Storage.Sessions.TTL <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
