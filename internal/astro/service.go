package astro

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/datavtar/mcp-cloud-server/internal/providers/sunrisesunset"
	"github.com/datavtar/mcp-cloud-server/internal/timezone"
	"github.com/datavtar/mcp-cloud-server/internal/types"
)

// ErrInvalidDate rejects dates that are neither "today" nor YYYY-MM-DD
var ErrInvalidDate = errors.New(`date must be "today" or YYYY-MM-DD`)

// SunTimes is the sun schedule for one coordinate and date. Times are in
// the coordinate's local timezone when it could be determined, UTC
// otherwise.
type SunTimes struct {
	Coordinates        types.Coords `json:"coordinates"`
	Date               string       `json:"date"`
	Timezone           string       `json:"timezone"`
	Sunrise            time.Time    `json:"sunrise"`
	Sunset             time.Time    `json:"sunset"`
	SolarNoon          time.Time    `json:"solarNoon"`
	DayLengthSeconds   int          `json:"dayLengthSeconds"`
	CivilTwilightBegin time.Time    `json:"civilTwilightBegin"`
	CivilTwilightEnd   time.Time    `json:"civilTwilightEnd"`
}

// DayLength renders the day length as "Xh Ym"
func (s *SunTimes) DayLength() string {
	return fmt.Sprintf("%dh %dm", s.DayLengthSeconds/3600, (s.DayLengthSeconds%3600)/60)
}

// SunTimesProvider fetches sun schedules from the sunrise-sunset API
type SunTimesProvider interface {
	GetTimes(ctx context.Context, latitude, longitude float64, date string) (*sunrisesunset.TimesAPIResponse, error)
}

// Service provides sunrise/sunset lookups
type Service interface {
	GetSunTimes(ctx context.Context, coords types.Coords, date string) (*SunTimes, error)
}

type astroService struct {
	provider SunTimesProvider
	timezone timezone.Service
	logger   *slog.Logger
}

// NewService creates a new astro service backed by the sunrise-sunset client
func NewService(provider SunTimesProvider, tzSvc timezone.Service, logger *slog.Logger) Service {
	return &astroService{
		provider: provider,
		timezone: tzSvc,
		logger:   logger.With("component", "astro-service"),
	}
}

// normalizeDate maps "today"/"" to the upstream default and validates
// explicit dates before any network call.
func normalizeDate(date string) (string, error) {
	if date == "" || date == "today" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("%w: got %q", ErrInvalidDate, date)
	}
	return date, nil
}

// GetSunTimes returns the sun schedule for a coordinate, localized to the
// coordinate's timezone.
func (s *astroService) GetSunTimes(ctx context.Context, coords types.Coords, date string) (*SunTimes, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	normalized, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	resp, err := s.provider.GetTimes(ctx, coords.Latitude, coords.Longitude, normalized)
	if err != nil {
		s.logger.Error("failed to get sun times",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, err
	}

	return s.mapSunTimes(coords, normalized, resp)
}

func (s *astroService) mapSunTimes(coords types.Coords, date string, resp *sunrisesunset.TimesAPIResponse) (*SunTimes, error) {
	parse := func(field, value string) (time.Time, error) {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse %s %q: %w", field, value, err)
		}
		return t, nil
	}

	sunrise, err := parse("sunrise", resp.Results.Sunrise)
	if err != nil {
		return nil, err
	}
	sunset, err := parse("sunset", resp.Results.Sunset)
	if err != nil {
		return nil, err
	}
	solarNoon, err := parse("solar_noon", resp.Results.SolarNoon)
	if err != nil {
		return nil, err
	}
	twilightBegin, err := parse("civil_twilight_begin", resp.Results.CivilTwilightBegin)
	if err != nil {
		return nil, err
	}
	twilightEnd, err := parse("civil_twilight_end", resp.Results.CivilTwilightEnd)
	if err != nil {
		return nil, err
	}

	// Present local time where the timezone is known; keep UTC otherwise
	tzName := "UTC"
	if name, err := s.timezone.GetTimezone(coords.Latitude, coords.Longitude); err == nil {
		if loc, lerr := time.LoadLocation(name); lerr == nil {
			tzName = name
			sunrise = sunrise.In(loc)
			sunset = sunset.In(loc)
			solarNoon = solarNoon.In(loc)
			twilightBegin = twilightBegin.In(loc)
			twilightEnd = twilightEnd.In(loc)
		}
	} else {
		s.logger.Warn("could not determine timezone, keeping UTC",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
		)
	}

	if date == "" {
		date = sunrise.Format("2006-01-02")
	}

	return &SunTimes{
		Coordinates:        coords,
		Date:               date,
		Timezone:           tzName,
		Sunrise:            sunrise,
		Sunset:             sunset,
		SolarNoon:          solarNoon,
		DayLengthSeconds:   resp.Results.DayLength,
		CivilTwilightBegin: twilightBegin,
		CivilTwilightEnd:   twilightEnd,
	}, nil
}
