package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-contact-manager/internal/config"
	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/models"
)

type nominatimGeocoder struct {
	client *resty.Client
	logger *logger.Logger
}

// nominatimPlace is the provider's wire shape for one search hit.
// Nominatim encodes coordinates as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimGeocoder constructs a [Geocoder] backed by the Nominatim
// search API at cfg.BaseURL. It normalises and validates the base URL and
// configures the underlying HTTP client with the request timeout and the
// User-Agent the provider's usage policy requires.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewNominatimGeocoder(cfg config.Geocoder, logger *logger.Logger) (Geocoder, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoder base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent)

	return &nominatimGeocoder{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Geocode implements [Geocoder]. It GETs /search with format=jsonv2 and a
// single-result limit, then parses the string-encoded coordinates into
// floats. A hit with unparseable coordinates is skipped rather than
// failing the whole lookup.
func (g *nominatimGeocoder) Geocode(ctx context.Context, address string) ([]models.GeocodeResult, error) {
	log := logger.FromContext(ctx)

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "jsonv2",
			"limit":  "1",
			"q":      address,
		}).
		Get("/search")
	if err != nil {
		log.Err(err).Str("func", "*nominatimGeocoder.Geocode").Msg("geocode request failed")
		return nil, fmt.Errorf("%w: %w", ErrGeocoderUnavailable, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*nominatimGeocoder.Geocode").Int("status", resp.StatusCode()).Msg("geocode request rejected")
		return nil, fmt.Errorf("%w: status %d", ErrGeocoderUnavailable, resp.StatusCode())
	}

	var places []nominatimPlace
	if err := json.Unmarshal(resp.Body(), &places); err != nil {
		log.Err(err).Str("func", "*nominatimGeocoder.Geocode").Msg("error decoding geocode response")
		return nil, fmt.Errorf("%w: %w", ErrBadProviderResponse, err)
	}

	results := make([]models.GeocodeResult, 0, len(places))
	for _, place := range places {
		lat, latErr := strconv.ParseFloat(place.Lat, 64)
		lon, lonErr := strconv.ParseFloat(place.Lon, 64)
		if latErr != nil || lonErr != nil {
			log.Warn().Str("func", "*nominatimGeocoder.Geocode").Str("lat", place.Lat).Str("lon", place.Lon).Msg("skipping hit with unparseable coordinates")
			continue
		}

		results = append(results, models.GeocodeResult{
			Latitude:         lat,
			Longitude:        lon,
			FormattedAddress: place.DisplayName,
		})
	}

	return results, nil
}
