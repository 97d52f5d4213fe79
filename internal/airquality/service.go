package airquality

import (
	"context"
	"log/slog"

	"github.com/datavtar/mcp-cloud-server/internal/providers/openmeteo"
	"github.com/datavtar/mcp-cloud-server/internal/types"
)

// uvOutlookDays is the UV forecast window, matching the upstream default
// the tool contract promises.
const uvOutlookDays = 3

// Provider fetches air-quality and UV data from the Open-Meteo hosts
type Provider interface {
	GetAirQuality(ctx context.Context, latitude, longitude float64) (*openmeteo.AirQualityAPIResponse, error)
	GetUVIndex(ctx context.Context, latitude, longitude float64, days int) (*openmeteo.ForecastAPIResponse, error)
}

// Service provides air quality and UV index lookups
type Service interface {
	GetAirQuality(ctx context.Context, coords types.Coords) (*Report, error)
	GetUVIndex(ctx context.Context, coords types.Coords) (*UVReport, error)
}

type airQualityService struct {
	provider Provider
	logger   *slog.Logger
}

// NewService creates a new air-quality service backed by the Open-Meteo client
func NewService(provider Provider, logger *slog.Logger) Service {
	return &airQualityService{
		provider: provider,
		logger:   logger.With("component", "airquality-service"),
	}
}

// GetAirQuality returns the current air-quality snapshot for a coordinate
func (s *airQualityService) GetAirQuality(ctx context.Context, coords types.Coords) (*Report, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.provider.GetAirQuality(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to get air quality",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	return mapReport(coords, resp), nil
}

// GetUVIndex returns the current and three-day UV outlook for a coordinate
func (s *airQualityService) GetUVIndex(ctx context.Context, coords types.Coords) (*UVReport, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.provider.GetUVIndex(ctx, coords.Latitude, coords.Longitude, uvOutlookDays)
	if err != nil {
		s.logger.Error("failed to get UV index",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	return mapUVReport(coords, resp), nil
}
