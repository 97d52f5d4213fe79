package airquality

import (
	"github.com/datavtar/mcp-cloud-server/internal/providers/openmeteo"
	"github.com/datavtar/mcp-cloud-server/internal/types"
)

// Report is a current air-quality snapshot. Pollutant concentrations are
// in μg/m³; nil means the upstream had no reading for that pollutant.
type Report struct {
	Coordinates     types.Coords `json:"coordinates"`
	Time            string       `json:"time,omitempty"`
	AQI             *float64     `json:"usAqi,omitempty"`
	Level           string       `json:"level,omitempty"`
	PM25            *float64     `json:"pm25,omitempty"`
	PM10            *float64     `json:"pm10,omitempty"`
	Ozone           *float64     `json:"ozone,omitempty"`
	NitrogenDioxide *float64     `json:"nitrogenDioxide,omitempty"`
	CarbonMonoxide  *float64     `json:"carbonMonoxide,omitempty"`
}

// UVDay is one day of the UV outlook
type UVDay struct {
	Date  string   `json:"date"`
	Max   *float64 `json:"max,omitempty"`
	Level string   `json:"level,omitempty"`
}

// UVReport is the current plus short-outlook UV index
type UVReport struct {
	Coordinates  types.Coords `json:"coordinates"`
	Current      *float64     `json:"current,omitempty"`
	CurrentLevel string       `json:"currentLevel,omitempty"`
	Days         []UVDay      `json:"days"`
}

// AQILevel bands a US EPA AQI value into its descriptive level
func AQILevel(aqi float64) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups"
	case aqi <= 200:
		return "Unhealthy"
	case aqi <= 300:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}

// UVLevel bands a UV index into its descriptive level
func UVLevel(uv float64) string {
	switch {
	case uv < 3:
		return "Low"
	case uv < 6:
		return "Moderate"
	case uv < 8:
		return "High"
	case uv < 11:
		return "Very High"
	default:
		return "Extreme"
	}
}

// mapReport converts an Open-Meteo air-quality response to the canonical Report
func mapReport(coords types.Coords, resp *openmeteo.AirQualityAPIResponse) *Report {
	report := &Report{Coordinates: coords}
	if resp.Current == nil {
		return report
	}

	current := resp.Current
	report.Time = current.Time
	report.AQI = current.USAQI
	report.PM25 = current.PM25
	report.PM10 = current.PM10
	report.Ozone = current.Ozone
	report.NitrogenDioxide = current.NitrogenDioxide
	report.CarbonMonoxide = current.CarbonMonoxide

	if current.USAQI != nil {
		report.Level = AQILevel(*current.USAQI)
	}

	return report
}

// mapUVReport converts an Open-Meteo UV forecast response to the canonical UVReport
func mapUVReport(coords types.Coords, resp *openmeteo.ForecastAPIResponse) *UVReport {
	report := &UVReport{Coordinates: coords, Days: []UVDay{}}

	if resp.Current != nil && resp.Current.UVIndex != nil {
		report.Current = resp.Current.UVIndex
		report.CurrentLevel = UVLevel(*resp.Current.UVIndex)
	}

	if resp.Daily != nil {
		for i, date := range resp.Daily.Time {
			day := UVDay{Date: date}
			if i < len(resp.Daily.UVIndexMax) && resp.Daily.UVIndexMax[i] != nil {
				day.Max = resp.Daily.UVIndexMax[i]
				day.Level = UVLevel(*day.Max)
			}
			report.Days = append(report.Days, day)
		}
	}

	return report
}
