package nws

// PointAPIResponse is the /points/{lat},{lon} response. The URLs inside
// properties drive the forecast and observation chains.
type PointAPIResponse struct {
	Properties struct {
		Forecast            string `json:"forecast"`
		ForecastHourly      string `json:"forecastHourly"`
		ObservationStations string `json:"observationStations"`
		GridID              string `json:"gridId"`
		RelativeLocation    struct {
			Properties struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"properties"`
		} `json:"relativeLocation"`
	} `json:"properties"`
}

// ForecastAPIResponse is the gridpoint forecast response (daily or hourly)
type ForecastAPIResponse struct {
	Properties struct {
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

type ForecastPeriod struct {
	Number                     int    `json:"number"`
	Name                       string `json:"name"`
	StartTime                  string `json:"startTime"`
	EndTime                    string `json:"endTime"`
	Temperature                int    `json:"temperature"`
	TemperatureUnit            string `json:"temperatureUnit"`
	WindSpeed                  string `json:"windSpeed"`
	WindDirection              string `json:"windDirection"`
	ShortForecast              string `json:"shortForecast"`
	DetailedForecast           string `json:"detailedForecast"`
	ProbabilityOfPrecipitation struct {
		Value *float64 `json:"value"`
	} `json:"probabilityOfPrecipitation"`
}

// AlertsAPIResponse is the GeoJSON alert collection. Zero features is a
// well-formed response, not a failure.
type AlertsAPIResponse struct {
	Features []AlertFeature `json:"features"`
}

type AlertFeature struct {
	Properties struct {
		Event       string `json:"event"`
		AreaDesc    string `json:"areaDesc"`
		Severity    string `json:"severity"`
		Status      string `json:"status"`
		Headline    string `json:"headline"`
		Description string `json:"description"`
		Instruction string `json:"instruction"`
		Effective   string `json:"effective"`
		Expires     string `json:"expires"`
	} `json:"properties"`
}

// StationsAPIResponse is the observation station collection
type StationsAPIResponse struct {
	Features []StationFeature `json:"features"`
}

type StationFeature struct {
	Properties struct {
		StationIdentifier string `json:"stationIdentifier"`
		Name              string `json:"name"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [lon, lat]
	} `json:"geometry"`
}

// RadarStationsAPIResponse is the radar station collection
type RadarStationsAPIResponse struct {
	Features []RadarStationFeature `json:"features"`
}

type RadarStationFeature struct {
	Properties struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [lon, lat]
	} `json:"geometry"`
}

// ObservationAPIResponse is the latest-observation response. Instrument
// values can be null when a sensor is offline, hence the pointers.
type ObservationAPIResponse struct {
	Properties struct {
		Station            string      `json:"station"`
		Timestamp          string      `json:"timestamp"`
		TextDescription    string      `json:"textDescription"`
		Temperature        Measurement `json:"temperature"`
		RelativeHumidity   Measurement `json:"relativeHumidity"`
		WindSpeed          Measurement `json:"windSpeed"`
		WindDirection      Measurement `json:"windDirection"`
		BarometricPressure Measurement `json:"barometricPressure"`
	} `json:"properties"`
}

type Measurement struct {
	Value    *float64 `json:"value"`
	UnitCode string   `json:"unitCode"`
}
