package weather

import (
	"fmt"
	"strings"

	"github.com/datavtar/mcp-cloud-server/internal/airquality"
	"github.com/datavtar/mcp-cloud-server/internal/providers/nws"
	"github.com/datavtar/mcp-cloud-server/internal/providers/openmeteo"
	"github.com/datavtar/mcp-cloud-server/internal/types"
)

// ForecastPeriod is one named period of a US forecast ("Tonight",
// "Wednesday", or a single hour for the hourly product).
type ForecastPeriod struct {
	Name                     string            `json:"name,omitempty"`
	Start                    string            `json:"start"`
	End                      string            `json:"end"`
	Temperature              types.Temperature `json:"temperature"`
	WindSpeed                string            `json:"windSpeed"`
	WindDirection            string            `json:"windDirection"`
	ShortForecast            string            `json:"shortForecast"`
	DetailedForecast         string            `json:"detailedForecast,omitempty"`
	PrecipitationProbability *float64          `json:"precipitationProbability,omitempty"`
}

// Forecast is a US forecast resolved through the NWS gridpoint chain
type Forecast struct {
	Coordinates types.Coords       `json:"coordinates"`
	Location    types.LocationInfo `json:"location"`
	GridID      string             `json:"gridId,omitempty"`
	Periods     []ForecastPeriod   `json:"periods"`
}

// Render produces the human-readable forecast block
func (f *Forecast) Render() string {
	var b strings.Builder
	for i, p := range f.Periods {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		name := p.Name
		if name == "" {
			name = p.Start
		}
		fmt.Fprintf(&b, "%s:\n", name)
		fmt.Fprintf(&b, "Temperature: %.0f°F (%.1f°C)\n", p.Temperature.Fahrenheit, p.Temperature.Celsius)
		fmt.Fprintf(&b, "Wind: %s %s\n", p.WindSpeed, p.WindDirection)
		if p.DetailedForecast != "" {
			fmt.Fprintf(&b, "Forecast: %s", p.DetailedForecast)
		} else {
			fmt.Fprintf(&b, "Forecast: %s", p.ShortForecast)
		}
	}
	return b.String()
}

// CurrentConditions is the latest observation from the station nearest a
// coordinate. Instrument values can be nil when a sensor is offline.
type CurrentConditions struct {
	Coordinates      types.Coords       `json:"coordinates"`
	Location         types.LocationInfo `json:"location"`
	StationID        string             `json:"stationId"`
	StationName      string             `json:"stationName,omitempty"`
	Description      string             `json:"description,omitempty"`
	Temperature      *types.Temperature `json:"temperature,omitempty"`
	RelativeHumidity *float64           `json:"relativeHumidity,omitempty"`
	Wind             *types.Wind        `json:"wind,omitempty"`
	PressurePa       *float64           `json:"pressurePa,omitempty"`
	Timestamp        string             `json:"timestamp,omitempty"`
}

// GlobalDay is one day of a worldwide daily forecast
type GlobalDay struct {
	Date            string            `json:"date"`
	High            types.Temperature `json:"high"`
	Low             types.Temperature `json:"low"`
	PrecipitationMm float64           `json:"precipitationMm"`
	Weather         types.Weather     `json:"weather"`
	MaxWindSpeedKph float64           `json:"maxWindSpeedKph"`
}

// GlobalForecast is a worldwide daily forecast from Open-Meteo
type GlobalForecast struct {
	Coordinates types.Coords `json:"coordinates"`
	Timezone    string       `json:"timezone"`
	Days        []GlobalDay  `json:"days"`
}

// GlobalHour is one hour of a worldwide hourly forecast
type GlobalHour struct {
	Time            string            `json:"time"`
	Temperature     types.Temperature `json:"temperature"`
	PrecipitationMm float64           `json:"precipitationMm"`
	Weather         types.Weather     `json:"weather"`
	WindSpeedKph    float64           `json:"windSpeedKph"`
}

// GlobalHourly is a worldwide hourly forecast from Open-Meteo
type GlobalHourly struct {
	Coordinates types.Coords `json:"coordinates"`
	Timezone    string       `json:"timezone"`
	Hours       []GlobalHour `json:"hours"`
}

// Snapshot is a worldwide current-conditions reading used by comparisons
// and summaries
type Snapshot struct {
	Coordinates      types.Coords       `json:"coordinates"`
	Time             string             `json:"time,omitempty"`
	Temperature      *types.Temperature `json:"temperature,omitempty"`
	RelativeHumidity *float64           `json:"relativeHumidity,omitempty"`
	PrecipitationMm  *float64           `json:"precipitationMm,omitempty"`
	Weather          *types.Weather     `json:"weather,omitempty"`
	Wind             *types.Wind        `json:"wind,omitempty"`
	UVIndex          *float64           `json:"uvIndex,omitempty"`
}

// Comparison holds side-by-side current conditions for two locations
type Comparison struct {
	LabelA           string    `json:"labelA"`
	LabelB           string    `json:"labelB"`
	A                *Snapshot `json:"a"`
	B                *Snapshot `json:"b"`
	TemperatureDelta *float64  `json:"temperatureDeltaCelsius,omitempty"`
}

// Summary is current conditions plus a short outlook, with air quality
// attached when that upstream is reachable.
type Summary struct {
	Coordinates types.Coords       `json:"coordinates"`
	Timezone    string             `json:"timezone,omitempty"`
	Current     *Snapshot          `json:"current,omitempty"`
	Outlook     []GlobalDay        `json:"outlook"`
	AirQuality  *airquality.Report `json:"airQuality,omitempty"`
}

// Station is an observation or radar station
type Station struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Coordinates types.Coords `json:"coordinates"`
}

func mapPeriod(p nws.ForecastPeriod) ForecastPeriod {
	out := ForecastPeriod{
		Name:             p.Name,
		Start:            p.StartTime,
		End:              p.EndTime,
		WindSpeed:        p.WindSpeed,
		WindDirection:    p.WindDirection,
		ShortForecast:    p.ShortForecast,
		DetailedForecast: p.DetailedForecast,
	}
	if p.TemperatureUnit == "C" {
		out.Temperature = types.NewTemperatureFromCelsius(float64(p.Temperature))
	} else {
		out.Temperature = types.NewTemperatureFromFahrenheit(float64(p.Temperature))
	}
	if p.ProbabilityOfPrecipitation.Value != nil {
		out.PrecipitationProbability = p.ProbabilityOfPrecipitation.Value
	}
	return out
}

// mapSnapshot converts an Open-Meteo "current" block. Open-Meteo defaults
// are °C and km/h.
func mapSnapshot(coords types.Coords, current *openmeteo.CurrentWeather) *Snapshot {
	if current == nil {
		return nil
	}

	snap := &Snapshot{
		Coordinates:      coords,
		Time:             current.Time,
		RelativeHumidity: current.RelativeHumidity,
		PrecipitationMm:  current.Precipitation,
		UVIndex:          current.UVIndex,
	}
	if current.Temperature != nil {
		t := types.NewTemperatureFromCelsius(*current.Temperature)
		snap.Temperature = &t
	}
	if current.WeatherCode != nil {
		w := types.NewWeather(*current.WeatherCode)
		snap.Weather = &w
	}
	if current.WindSpeed != nil {
		direction := 0.0
		if current.WindDirection != nil {
			direction = *current.WindDirection
		}
		w := types.NewWindFromKph(*current.WindSpeed, direction)
		snap.Wind = &w
	}
	return snap
}

// mapGlobalDays converts an Open-Meteo daily block into canonical days.
// Array lengths follow the time axis; a short sibling array drops that
// field rather than panicking.
func mapGlobalDays(daily *openmeteo.DailyBlock) []GlobalDay {
	if daily == nil {
		return nil
	}

	days := make([]GlobalDay, 0, len(daily.Time))
	for i, date := range daily.Time {
		day := GlobalDay{Date: date}
		if i < len(daily.TemperatureMax) {
			day.High = types.NewTemperatureFromCelsius(daily.TemperatureMax[i])
		}
		if i < len(daily.TemperatureMin) {
			day.Low = types.NewTemperatureFromCelsius(daily.TemperatureMin[i])
		}
		if i < len(daily.PrecipitationSum) {
			day.PrecipitationMm = daily.PrecipitationSum[i]
		}
		if i < len(daily.WeatherCode) {
			day.Weather = types.NewWeather(daily.WeatherCode[i])
		}
		if i < len(daily.WindSpeedMax) {
			day.MaxWindSpeedKph = daily.WindSpeedMax[i]
		}
		days = append(days, day)
	}
	return days
}

func mapGlobalHours(hourly *openmeteo.HourlyBlock) []GlobalHour {
	if hourly == nil {
		return nil
	}

	hours := make([]GlobalHour, 0, len(hourly.Time))
	for i, t := range hourly.Time {
		hour := GlobalHour{Time: t}
		if i < len(hourly.Temperature) {
			hour.Temperature = types.NewTemperatureFromCelsius(hourly.Temperature[i])
		}
		if i < len(hourly.Precipitation) {
			hour.PrecipitationMm = hourly.Precipitation[i]
		}
		if i < len(hourly.WeatherCode) {
			hour.Weather = types.NewWeather(hourly.WeatherCode[i])
		}
		if i < len(hourly.WindSpeed) {
			hour.WindSpeedKph = hourly.WindSpeed[i]
		}
		hours = append(hours, hour)
	}
	return hours
}

func mapObservation(coords types.Coords, location types.LocationInfo, stationName string, resp *nws.ObservationAPIResponse) *CurrentConditions {
	props := resp.Properties

	conditions := &CurrentConditions{
		Coordinates: coords,
		Location:    location,
		StationID:   stationIDFromURL(props.Station),
		StationName: stationName,
		Description: props.TextDescription,
		Timestamp:   props.Timestamp,
	}
	if props.Temperature.Value != nil {
		t := types.NewTemperatureFromCelsius(*props.Temperature.Value)
		conditions.Temperature = &t
	}
	conditions.RelativeHumidity = props.RelativeHumidity.Value
	if props.WindSpeed.Value != nil {
		direction := 0.0
		if props.WindDirection.Value != nil {
			direction = *props.WindDirection.Value
		}
		// NWS reports wind speed in km/h
		w := types.NewWindFromKph(*props.WindSpeed.Value, direction)
		conditions.Wind = &w
	}
	conditions.PressurePa = props.BarometricPressure.Value

	return conditions
}

// stationIDFromURL trims "https://api.weather.gov/stations/KBJC" to "KBJC"
func stationIDFromURL(station string) string {
	if idx := strings.LastIndex(station, "/"); idx >= 0 {
		return station[idx+1:]
	}
	return station
}

func mapStations(features []nws.StationFeature, limit int) []Station {
	if limit > 0 && len(features) > limit {
		features = features[:limit]
	}

	stations := make([]Station, 0, len(features))
	for _, f := range features {
		s := Station{
			ID:   f.Properties.StationIdentifier,
			Name: f.Properties.Name,
		}
		// GeoJSON order is [lon, lat]
		if len(f.Geometry.Coordinates) >= 2 {
			s.Coordinates = types.Coords{Latitude: f.Geometry.Coordinates[1], Longitude: f.Geometry.Coordinates[0]}
		}
		stations = append(stations, s)
	}
	return stations
}

func mapRadarStations(features []nws.RadarStationFeature) []Station {
	stations := make([]Station, 0, len(features))
	for _, f := range features {
		s := Station{
			ID:   stationIDFromURL(f.Properties.ID),
			Name: f.Properties.Name,
		}
		if len(f.Geometry.Coordinates) >= 2 {
			s.Coordinates = types.Coords{Latitude: f.Geometry.Coordinates[1], Longitude: f.Geometry.Coordinates[0]}
		}
		stations = append(stations, s)
	}
	return stations
}
