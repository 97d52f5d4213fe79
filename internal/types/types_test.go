package types

import (
	"errors"
	"math"
	"testing"
)

func TestCoords_Validate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr error
	}{
		{
			name: "valid coordinates",
			lat:  39.11539,
			lon:  -107.65840,
		},
		{
			name: "boundary values",
			lat:  90,
			lon:  -180,
		},
		{
			name:    "latitude too high",
			lat:     200,
			lon:     0,
			wantErr: ErrInvalidLatitude,
		},
		{
			name:    "latitude too low",
			lat:     -90.1,
			lon:     0,
			wantErr: ErrInvalidLatitude,
		},
		{
			name:    "longitude too high",
			lat:     0,
			lon:     180.5,
			wantErr: ErrInvalidLongitude,
		},
		{
			name:    "longitude too low",
			lat:     0,
			lon:     -181,
			wantErr: ErrInvalidLongitude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCoords(tt.lat, tt.lon).Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTemperatureFromFahrenheit(t *testing.T) {
	temp := NewTemperatureFromFahrenheit(32)
	if temp.Celsius != 0 {
		t.Errorf("Celsius = %v, want 0", temp.Celsius)
	}

	temp = NewTemperatureFromFahrenheit(212)
	if temp.Celsius != 100 {
		t.Errorf("Celsius = %v, want 100", temp.Celsius)
	}
}

func TestNewTemperatureFromCelsius(t *testing.T) {
	temp := NewTemperatureFromCelsius(100)
	if temp.Fahrenheit != 212 {
		t.Errorf("Fahrenheit = %v, want 212", temp.Fahrenheit)
	}
}

func TestCardinalDirection(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{359, "N"},
		{22.5, "NNE"},
	}

	for _, tt := range tests {
		if got := CardinalDirection(tt.degrees); got != tt.want {
			t.Errorf("CardinalDirection(%v) = %q, want %q", tt.degrees, got, tt.want)
		}
	}
}

func TestNewWindFromKph(t *testing.T) {
	wind := NewWindFromKph(16.0934, 90)
	if math.Abs(wind.SpeedInMph-10) > 0.001 {
		t.Errorf("SpeedInMph = %v, want 10", wind.SpeedInMph)
	}
	if wind.DirectionCardinal != "E" {
		t.Errorf("DirectionCardinal = %q, want E", wind.DirectionCardinal)
	}
}

func TestNewPrecipitationFromMm(t *testing.T) {
	p := NewPrecipitationFromMm(25.4)
	if math.Abs(p.Inches-1) > 0.001 {
		t.Errorf("Inches = %v, want 1", p.Inches)
	}
}

func TestGetWeatherDescription(t *testing.T) {
	if got := GetWeatherDescription(0); got != "Clear sky" {
		t.Errorf("GetWeatherDescription(0) = %q, want %q", got, "Clear sky")
	}
	if got := GetWeatherDescription(42); got != "Unknown (42)" {
		t.Errorf("GetWeatherDescription(42) = %q, want %q", got, "Unknown (42)")
	}
}
