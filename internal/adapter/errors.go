package adapter

import "errors"

var (
	// ErrGeocoderUnavailable is returned when the provider cannot be
	// reached or answers with a non-2xx status.
	ErrGeocoderUnavailable = errors.New("geocoding provider unavailable")

	// ErrBadProviderResponse is returned when the provider answers 2xx
	// but the payload cannot be decoded.
	ErrBadProviderResponse = errors.New("malformed geocoding response")
)
