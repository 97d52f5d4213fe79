package openmeteo

// CurrentWeather carries the "current" block of a forecast response.
// Pointers mark values the API may omit depending on the requested
// variables or a partial outage.
type CurrentWeather struct {
	Time             string   `json:"time"`
	Temperature      *float64 `json:"temperature_2m"`
	RelativeHumidity *float64 `json:"relative_humidity_2m"`
	Precipitation    *float64 `json:"precipitation"`
	WeatherCode      *int     `json:"weathercode"`
	WindSpeed        *float64 `json:"windspeed_10m"`
	WindDirection    *float64 `json:"winddirection_10m"`
	UVIndex          *float64 `json:"uv_index"`
}

// DailyBlock carries parallel arrays keyed by the Time axis
type DailyBlock struct {
	Time             []string   `json:"time"`
	TemperatureMax   []float64  `json:"temperature_2m_max"`
	TemperatureMin   []float64  `json:"temperature_2m_min"`
	PrecipitationSum []float64  `json:"precipitation_sum"`
	WeatherCode      []int      `json:"weathercode"`
	WindSpeedMax     []float64  `json:"windspeed_10m_max"`
	UVIndexMax       []*float64 `json:"uv_index_max"`
	UVIndexClearSky  []*float64 `json:"uv_index_clear_sky_max"`
}

// HourlyBlock carries parallel arrays keyed by the Time axis
type HourlyBlock struct {
	Time          []string  `json:"time"`
	Temperature   []float64 `json:"temperature_2m"`
	Precipitation []float64 `json:"precipitation"`
	WeatherCode   []int     `json:"weathercode"`
	WindSpeed     []float64 `json:"windspeed_10m"`
}

// ForecastAPIResponse is the /v1/forecast response
type ForecastAPIResponse struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timezone  string          `json:"timezone"`
	Current   *CurrentWeather `json:"current"`
	Daily     *DailyBlock     `json:"daily"`
	Hourly    *HourlyBlock    `json:"hourly"`
}

// CurrentAirQuality carries the "current" block of an air-quality response
type CurrentAirQuality struct {
	Time            string   `json:"time"`
	USAQI           *float64 `json:"us_aqi"`
	PM10            *float64 `json:"pm10"`
	PM25            *float64 `json:"pm2_5"`
	CarbonMonoxide  *float64 `json:"carbon_monoxide"`
	NitrogenDioxide *float64 `json:"nitrogen_dioxide"`
	Ozone           *float64 `json:"ozone"`
}

// AirQualityAPIResponse is the air-quality host response
type AirQualityAPIResponse struct {
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	Current   *CurrentAirQuality `json:"current"`
}

// CurrentMarine carries the "current" block of a marine response
type CurrentMarine struct {
	Time          string   `json:"time"`
	WaveHeight    *float64 `json:"wave_height"`
	WaveDirection *float64 `json:"wave_direction"`
	WavePeriod    *float64 `json:"wave_period"`
}

// MarineDailyBlock carries parallel arrays keyed by the Time axis
type MarineDailyBlock struct {
	Time                  []string  `json:"time"`
	WaveHeightMax         []float64 `json:"wave_height_max"`
	WaveDirectionDominant []float64 `json:"wave_direction_dominant"`
	WavePeriodMax         []float64 `json:"wave_period_max"`
	WindWaveHeightMax     []float64 `json:"wind_wave_height_max"`
	SwellWaveHeightMax    []float64 `json:"swell_wave_height_max"`
}

// MarineAPIResponse is the marine host response
type MarineAPIResponse struct {
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Current   *CurrentMarine    `json:"current"`
	Daily     *MarineDailyBlock `json:"daily"`
}
