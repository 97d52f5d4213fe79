package types

const MphToKph = 1.60934

type Wind struct {
	SpeedInMph        float64 `json:"speedMph"`
	SpeedInKph        float64 `json:"speedKph"`
	DirectionDegrees  float64 `json:"directionDegrees"`
	DirectionCardinal string  `json:"directionCardinal"`
}

var cardinalDirections = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CardinalDirection converts wind direction degrees to a 16-point compass label
func CardinalDirection(degrees float64) string {
	index := int((degrees/22.5)+.5) % 16 // .5 for rounding
	if index < 0 {
		index += 16
	}
	return cardinalDirections[index]
}

func NewWindFromMph(speedInMph, directionDegrees float64) Wind {
	return Wind{
		SpeedInMph:        speedInMph,
		SpeedInKph:        speedInMph * MphToKph,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: CardinalDirection(directionDegrees),
	}
}

func NewWindFromKph(speedInKph, directionDegrees float64) Wind {
	return Wind{
		SpeedInMph:        speedInKph / MphToKph,
		SpeedInKph:        speedInKph,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: CardinalDirection(directionDegrees),
	}
}
