package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/datavtar/mcp-cloud-server/internal/providers/nominatim"
	"github.com/datavtar/mcp-cloud-server/internal/types"
)

var (
	// ErrEmptyQuery rejects blank geocoding queries before any network call
	ErrEmptyQuery = errors.New("geocoding query must not be empty")
	// ErrNoResults marks a well-formed query that resolved to nothing
	ErrNoResults = errors.New("no geocoding results")
)

// geocodeLimit caps candidates returned per query, matching Nominatim's
// default ranking behavior.
const geocodeLimit = 5

// GeocodeProvider fetches place data from the Nominatim API
type GeocodeProvider interface {
	Search(ctx context.Context, query string, limit int) ([]nominatim.PlaceAPIResponse, error)
	Reverse(ctx context.Context, latitude, longitude float64) (*nominatim.PlaceAPIResponse, error)
}

// Service provides forward and reverse geocoding
type Service interface {
	Geocode(ctx context.Context, query string) ([]Place, error)
	ReverseGeocode(ctx context.Context, coords types.Coords) (*Place, error)
	ResolvePlace(ctx context.Context, query string) (*Place, error)
}

type locationService struct {
	provider GeocodeProvider
	logger   *slog.Logger
}

// NewService creates a new location service backed by the Nominatim client
func NewService(provider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		provider: provider,
		logger:   logger.With("component", "location-service"),
	}
}

// Geocode resolves a free-text query into up to five ranked candidates.
// Zero candidates is a legitimate empty result.
func (s *locationService) Geocode(ctx context.Context, query string) ([]Place, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	results, err := s.provider.Search(ctx, query, geocodeLimit)
	if err != nil {
		s.logger.Error("failed to geocode", "query", query, "error", err)
		return nil, err
	}

	places := make([]Place, 0, len(results))
	for i := range results {
		place, err := mapPlace(&results[i])
		if err != nil {
			// Skip candidates with unparseable coordinates rather than
			// failing the whole query
			s.logger.Warn("skipping malformed geocode candidate", "query", query, "error", err)
			continue
		}
		places = append(places, *place)
	}

	s.logger.Debug("geocoded query", "query", query, "candidates", len(places))
	return places, nil
}

// ReverseGeocode resolves a coordinate to the place covering it
func (s *locationService) ReverseGeocode(ctx context.Context, coords types.Coords) (*Place, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.provider.Reverse(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to reverse geocode",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoResults, resp.Error)
	}

	return mapPlace(resp)
}

// ResolvePlace returns the first-ranked candidate for a query, the
// convention used by chained place-then-forecast lookups.
func (s *locationService) ResolvePlace(ctx context.Context, query string) (*Place, error) {
	places, err := s.Geocode(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoResults, query)
	}
	return &places[0], nil
}
