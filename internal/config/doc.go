// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with a builder: each source produces a partial
// StructuredConfig and mergo combines them so that the first non-zero
// value wins (environment > flags > JSON file). After merging, defaults
// are applied to any field left unset and the result is validated.
package config
