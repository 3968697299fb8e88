package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// contact manager application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the bcrypt cost and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// relational contact/user database and the session key/value file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Geocoder holds configuration for the external geocoding provider.
	Geocoder Geocoder `envPrefix:"GEOCODER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// BcryptCost is the bcrypt work factor used when hashing user
	// passwords. Higher is slower and stronger.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Sessions holds the session key/value store settings.
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" (or
	// "postgresql://") DSN selects the PostgreSQL backend; any other
	// value is treated as a path to an embedded SQLite database file
	// (e.g. "contacts.db"), so the application boots with zero
	// configuration.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sessions holds settings for the bbolt-backed session store.
type Sessions struct {
	// Path is the filesystem path of the bbolt session database file.
	// Env: STORAGE_SESSIONS_PATH
	Path string `env:"PATH"`

	// TTL is how long an established session remains valid before it
	// expires (e.g. "24h").
	// Env: STORAGE_SESSIONS_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for reading a
	// single inbound request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Geocoder holds settings for the external geocoding provider.
type Geocoder struct {
	// BaseURL is the root URL of the geocoding HTTP API.
	// Env: GEOCODER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// UserAgent identifies this application to the provider. Nominatim's
	// usage policy requires a meaningful User-Agent with a contact
	// address.
	// Env: GEOCODER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// Timeout bounds a single geocoding request (e.g. "15s").
	// Env: GEOCODER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is how often the session sweeper purges expired
	// sessions from the session store.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
