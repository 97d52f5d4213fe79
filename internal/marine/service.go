package marine

import (
	"context"
	"log/slog"

	"github.com/datavtar/mcp-cloud-server/internal/providers/openmeteo"
	"github.com/datavtar/mcp-cloud-server/internal/types"
)

// CurrentConditions is a wave snapshot; heights in meters, periods in
// seconds, directions in degrees.
type CurrentConditions struct {
	Time          string   `json:"time,omitempty"`
	WaveHeight    *float64 `json:"waveHeight,omitempty"`
	WaveDirection *float64 `json:"waveDirection,omitempty"`
	WavePeriod    *float64 `json:"wavePeriod,omitempty"`
}

// DailyConditions is one day of the wave outlook
type DailyConditions struct {
	Date               string  `json:"date"`
	WaveHeightMax      float64 `json:"waveHeightMax"`
	WaveDirection      float64 `json:"waveDirection"`
	WavePeriodMax      float64 `json:"wavePeriodMax"`
	WindWaveHeightMax  float64 `json:"windWaveHeightMax"`
	SwellWaveHeightMax float64 `json:"swellWaveHeightMax"`
}

// Conditions is the full marine lookup result
type Conditions struct {
	Coordinates types.Coords       `json:"coordinates"`
	Current     *CurrentConditions `json:"current,omitempty"`
	Daily       []DailyConditions  `json:"daily"`
}

// Provider fetches marine data from the Open-Meteo marine host
type Provider interface {
	GetMarine(ctx context.Context, latitude, longitude float64) (*openmeteo.MarineAPIResponse, error)
}

// Service provides marine conditions for coastal coordinates
type Service interface {
	GetConditions(ctx context.Context, coords types.Coords) (*Conditions, error)
}

type marineService struct {
	provider Provider
	logger   *slog.Logger
}

// NewService creates a new marine service backed by the Open-Meteo client
func NewService(provider Provider, logger *slog.Logger) Service {
	return &marineService{
		provider: provider,
		logger:   logger.With("component", "marine-service"),
	}
}

// GetConditions returns current and daily wave conditions. Inland
// coordinates fail upstream and the failure is surfaced as-is.
func (s *marineService) GetConditions(ctx context.Context, coords types.Coords) (*Conditions, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.provider.GetMarine(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to get marine conditions",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	return mapConditions(coords, resp), nil
}

func mapConditions(coords types.Coords, resp *openmeteo.MarineAPIResponse) *Conditions {
	conditions := &Conditions{Coordinates: coords, Daily: []DailyConditions{}}

	if resp.Current != nil {
		conditions.Current = &CurrentConditions{
			Time:          resp.Current.Time,
			WaveHeight:    resp.Current.WaveHeight,
			WaveDirection: resp.Current.WaveDirection,
			WavePeriod:    resp.Current.WavePeriod,
		}
	}

	if resp.Daily != nil {
		daily := resp.Daily
		for i, date := range daily.Time {
			day := DailyConditions{Date: date}
			if i < len(daily.WaveHeightMax) {
				day.WaveHeightMax = daily.WaveHeightMax[i]
			}
			if i < len(daily.WaveDirectionDominant) {
				day.WaveDirection = daily.WaveDirectionDominant[i]
			}
			if i < len(daily.WavePeriodMax) {
				day.WavePeriodMax = daily.WavePeriodMax[i]
			}
			if i < len(daily.WindWaveHeightMax) {
				day.WindWaveHeightMax = daily.WindWaveHeightMax[i]
			}
			if i < len(daily.SwellWaveHeightMax) {
				day.SwellWaveHeightMax = daily.SwellWaveHeightMax[i]
			}
			conditions.Daily = append(conditions.Daily, day)
		}
	}

	return conditions
}
