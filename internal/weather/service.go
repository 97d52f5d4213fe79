package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/datavtar/mcp-cloud-server/internal/airquality"
	"github.com/datavtar/mcp-cloud-server/internal/config"
	"github.com/datavtar/mcp-cloud-server/internal/providers/nws"
	"github.com/datavtar/mcp-cloud-server/internal/providers/openmeteo"
	"github.com/datavtar/mcp-cloud-server/internal/types"
	"github.com/datavtar/mcp-cloud-server/internal/usstates"
)

var (
	ErrInvalidState = errors.New("invalid US state or territory code")
	ErrNoStations   = errors.New("no observation stations near the requested point")
	ErrInvalidDays  = errors.New("forecast days must be between 1 and 16")
	ErrInvalidHours = errors.New("forecast hours must be between 1 and 168")
)

// NWSProvider is the api.weather.gov surface the service consumes
type NWSProvider interface {
	GetPoint(ctx context.Context, latitude, longitude float64) (*nws.PointAPIResponse, error)
	GetForecast(ctx context.Context, forecastURL string) (*nws.ForecastAPIResponse, error)
	GetStations(ctx context.Context, state string) (*nws.StationsAPIResponse, error)
	GetObservationStations(ctx context.Context, stationsURL string) (*nws.StationsAPIResponse, error)
	GetLatestObservation(ctx context.Context, stationID string) (*nws.ObservationAPIResponse, error)
	GetRadarStations(ctx context.Context) (*nws.RadarStationsAPIResponse, error)
}

// GlobalProvider is the Open-Meteo surface the service consumes
type GlobalProvider interface {
	GetDailyForecast(ctx context.Context, latitude, longitude float64, days int) (*openmeteo.ForecastAPIResponse, error)
	GetHourlyForecast(ctx context.Context, latitude, longitude float64, hours int) (*openmeteo.ForecastAPIResponse, error)
	GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*openmeteo.ForecastAPIResponse, error)
	GetSummary(ctx context.Context, latitude, longitude float64, days int) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	GetForecast(ctx context.Context, coords types.Coords) (*Forecast, error)
	GetHourlyForecast(ctx context.Context, coords types.Coords) (*Forecast, error)
	GetCurrentConditions(ctx context.Context, coords types.Coords) (*CurrentConditions, error)
	GetGlobalForecast(ctx context.Context, coords types.Coords, days int) (*GlobalForecast, error)
	GetGlobalHourly(ctx context.Context, coords types.Coords, hours int) (*GlobalHourly, error)
	CompareWeather(ctx context.Context, labelA string, coordsA types.Coords, labelB string, coordsB types.Coords) (*Comparison, error)
	GetSummary(ctx context.Context, coords types.Coords) (*Summary, error)
	GetStations(ctx context.Context, state string) ([]Station, error)
	GetRadarStations(ctx context.Context) ([]Station, error)
}

type weatherService struct {
	nwsProvider    NWSProvider
	globalProvider GlobalProvider
	airQuality     airquality.Service
	cfg            *config.Config
	logger         *slog.Logger
}

// NewService creates the weather service over the NWS and Open-Meteo
// providers. The air-quality service enriches summaries and may be nil
// in narrow deployments.
func NewService(
	nwsProvider NWSProvider,
	globalProvider GlobalProvider,
	airQuality airquality.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		nwsProvider:    nwsProvider,
		globalProvider: globalProvider,
		airQuality:     airQuality,
		cfg:            cfg,
		logger:         logger.With("component", "weather-service"),
	}
}

// GetForecast resolves the coordinate through the NWS gridpoint chain and
// returns the next forecast periods.
func (s *weatherService) GetForecast(ctx context.Context, coords types.Coords) (*Forecast, error) {
	return s.getNWSForecast(ctx, coords, func(p *nws.PointAPIResponse) string {
		return p.Properties.Forecast
	}, s.cfg.App.ForecastPeriods)
}

// GetHourlyForecast is GetForecast against the hourly gridpoint product
func (s *weatherService) GetHourlyForecast(ctx context.Context, coords types.Coords) (*Forecast, error) {
	return s.getNWSForecast(ctx, coords, func(p *nws.PointAPIResponse) string {
		return p.Properties.ForecastHourly
	}, s.cfg.App.HourlyPeriods)
}

func (s *weatherService) getNWSForecast(ctx context.Context, coords types.Coords, pickURL func(*nws.PointAPIResponse) string, limit int) (*Forecast, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	point, err := s.nwsProvider.GetPoint(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to resolve forecast point",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	apiResp, err := s.nwsProvider.GetForecast(ctx, pickURL(point))
	if err != nil {
		s.logger.Error("failed to get forecast", "gridId", point.Properties.GridID, "error", err)
		return nil, err
	}

	periods := apiResp.Properties.Periods
	if limit > 0 && len(periods) > limit {
		periods = periods[:limit]
	}

	forecast := &Forecast{
		Coordinates: coords,
		Location: types.LocationInfo{
			Name:  point.Properties.RelativeLocation.Properties.City,
			State: point.Properties.RelativeLocation.Properties.State,
		},
		GridID:  point.Properties.GridID,
		Periods: make([]ForecastPeriod, 0, len(periods)),
	}
	for _, p := range periods {
		forecast.Periods = append(forecast.Periods, mapPeriod(p))
	}
	return forecast, nil
}

// GetCurrentConditions walks points, then the point's station list, then
// the latest observation of the nearest station.
func (s *weatherService) GetCurrentConditions(ctx context.Context, coords types.Coords) (*CurrentConditions, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	point, err := s.nwsProvider.GetPoint(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to resolve forecast point",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	stations, err := s.nwsProvider.GetObservationStations(ctx, point.Properties.ObservationStations)
	if err != nil {
		s.logger.Error("failed to list observation stations", "gridId", point.Properties.GridID, "error", err)
		return nil, err
	}
	if len(stations.Features) == 0 {
		return nil, ErrNoStations
	}

	// NWS orders the station list by distance from the point
	nearest := stations.Features[0]
	stationID := nearest.Properties.StationIdentifier

	obs, err := s.nwsProvider.GetLatestObservation(ctx, stationID)
	if err != nil {
		s.logger.Error("failed to get latest observation", "station", stationID, "error", err)
		return nil, err
	}

	location := types.LocationInfo{
		Name:  point.Properties.RelativeLocation.Properties.City,
		State: point.Properties.RelativeLocation.Properties.State,
	}
	conditions := mapObservation(coords, location, nearest.Properties.Name, obs)
	if conditions.StationID == "" {
		conditions.StationID = stationID
	}
	return conditions, nil
}

// GetGlobalForecast returns a worldwide daily forecast. Days defaults to
// 7 and Open-Meteo caps it at 16.
func (s *weatherService) GetGlobalForecast(ctx context.Context, coords types.Coords, days int) (*GlobalForecast, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	if days == 0 {
		days = 7
	}
	if days < 1 || days > 16 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}

	apiResp, err := s.globalProvider.GetDailyForecast(ctx, coords.Latitude, coords.Longitude, days)
	if err != nil {
		s.logger.Error("failed to get global forecast",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	return &GlobalForecast{
		Coordinates: coords,
		Timezone:    apiResp.Timezone,
		Days:        mapGlobalDays(apiResp.Daily),
	}, nil
}

// GetGlobalHourly returns a worldwide hourly forecast. Hours defaults to
// 24 and Open-Meteo caps it at a week.
func (s *weatherService) GetGlobalHourly(ctx context.Context, coords types.Coords, hours int) (*GlobalHourly, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	if hours == 0 {
		hours = 24
	}
	if hours < 1 || hours > 168 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHours, hours)
	}

	apiResp, err := s.globalProvider.GetHourlyForecast(ctx, coords.Latitude, coords.Longitude, hours)
	if err != nil {
		s.logger.Error("failed to get global hourly forecast",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	return &GlobalHourly{
		Coordinates: coords,
		Timezone:    apiResp.Timezone,
		Hours:       mapGlobalHours(apiResp.Hourly),
	}, nil
}

// CompareWeather fetches current conditions for both locations in
// parallel. A failed leg surfaces an error naming which location failed.
func (s *weatherService) CompareWeather(ctx context.Context, labelA string, coordsA types.Coords, labelB string, coordsB types.Coords) (*Comparison, error) {
	if err := coordsA.Validate(); err != nil {
		return nil, fmt.Errorf("location A (%s): %w", labelA, err)
	}
	if err := coordsB.Validate(); err != nil {
		return nil, fmt.Errorf("location B (%s): %w", labelB, err)
	}

	var (
		wg           sync.WaitGroup
		snapA, snapB *Snapshot
		errA, errB   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		snapA, errA = s.getSnapshot(ctx, coordsA)
	}()
	go func() {
		defer wg.Done()
		snapB, errB = s.getSnapshot(ctx, coordsB)
	}()
	wg.Wait()

	if errA != nil {
		return nil, fmt.Errorf("location A (%s): %w", labelA, errA)
	}
	if errB != nil {
		return nil, fmt.Errorf("location B (%s): %w", labelB, errB)
	}

	comparison := &Comparison{
		LabelA: labelA,
		LabelB: labelB,
		A:      snapA,
		B:      snapB,
	}
	if snapA != nil && snapB != nil && snapA.Temperature != nil && snapB.Temperature != nil {
		delta := snapA.Temperature.Celsius - snapB.Temperature.Celsius
		comparison.TemperatureDelta = &delta
	}
	return comparison, nil
}

func (s *weatherService) getSnapshot(ctx context.Context, coords types.Coords) (*Snapshot, error) {
	apiResp, err := s.globalProvider.GetCurrentWeather(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, err
	}
	return mapSnapshot(coords, apiResp.Current), nil
}

// GetSummary returns current conditions plus a short outlook. Air quality
// is best-effort: an air-quality upstream failure degrades the summary
// instead of failing it.
func (s *weatherService) GetSummary(ctx context.Context, coords types.Coords) (*Summary, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	apiResp, err := s.globalProvider.GetSummary(ctx, coords.Latitude, coords.Longitude, 3)
	if err != nil {
		s.logger.Error("failed to get weather summary",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	summary := &Summary{
		Coordinates: coords,
		Timezone:    apiResp.Timezone,
		Current:     mapSnapshot(coords, apiResp.Current),
		Outlook:     mapGlobalDays(apiResp.Daily),
	}

	if s.airQuality != nil {
		report, aqErr := s.airQuality.GetAirQuality(ctx, coords)
		if aqErr != nil {
			s.logger.Warn("air quality unavailable for summary",
				"latitude", coords.Latitude,
				"longitude", coords.Longitude,
				"error", aqErr,
			)
		} else {
			summary.AirQuality = report
		}
	}

	return summary, nil
}

// GetStations lists observation stations for a US state
func (s *weatherService) GetStations(ctx context.Context, state string) ([]Station, error) {
	normalized, ok := usstates.Normalize(state)
	if !ok {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidState, state)
	}

	apiResp, err := s.nwsProvider.GetStations(ctx, normalized)
	if err != nil {
		s.logger.Error("failed to list stations", "state", normalized, "error", err)
		return nil, err
	}

	return mapStations(apiResp.Features, s.cfg.App.StationLimit), nil
}

// GetRadarStations lists the national radar network
func (s *weatherService) GetRadarStations(ctx context.Context) ([]Station, error) {
	apiResp, err := s.nwsProvider.GetRadarStations(ctx)
	if err != nil {
		s.logger.Error("failed to list radar stations", "error", err)
		return nil, err
	}
	return mapRadarStations(apiResp.Features), nil
}
