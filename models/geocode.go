package models

// GeocodeResult is one candidate match returned by the geocoding
// provider for a free-text address, ranked best-first by the provider.
type GeocodeResult struct {
	// Latitude of the matched place.
	Latitude float64 `json:"latitude"`

	// Longitude of the matched place.
	Longitude float64 `json:"longitude"`

	// FormattedAddress is the provider's normalized address text. It
	// replaces the user-supplied address when geocoding succeeds.
	FormattedAddress string `json:"formattedAddress"`
}
