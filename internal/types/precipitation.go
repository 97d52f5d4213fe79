package types

const InchesToMm = 25.4

type Precipitation struct {
	Inches float64 `json:"inches"`
	Mm     float64 `json:"mm"`
}

func NewPrecipitationFromInches(amountInInches float64) Precipitation {
	return Precipitation{
		Inches: amountInInches,
		Mm:     amountInInches * InchesToMm,
	}
}

func NewPrecipitationFromMm(amountInMm float64) Precipitation {
	return Precipitation{
		Inches: amountInMm / InchesToMm,
		Mm:     amountInMm,
	}
}
