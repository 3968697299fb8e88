// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for external services.
//
// The primary abstraction is [Geocoder], which decouples the service layer
// from the geocoding provider. The package ships an HTTP implementation
// ([NewNominatimGeocoder]) backed by the OpenStreetMap Nominatim search
// API.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-manager/models"
)

// Geocoder resolves a free-form postal address to geographic coordinates.
type Geocoder interface {
	// Geocode sends address to the provider and returns the candidate
	// matches, best match first. An address the provider does not know
	// yields an empty slice and no error; only transport and protocol
	// failures produce an error.
	Geocode(ctx context.Context, address string) ([]models.GeocodeResult, error)
}
