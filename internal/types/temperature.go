package types

type Temperature struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}

func NewTemperatureFromFahrenheit(fahrenheit float64) Temperature {
	var celsius = (fahrenheit - 32) * 5 / 9
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: fahrenheit,
	}
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: celsius*9/5 + 32,
	}
}
