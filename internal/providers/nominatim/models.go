package nominatim

import (
	"fmt"
	"strconv"
)

// PlaceAPIResponse is a single Nominatim place record, returned as an array
// element by /search and as a bare object by /reverse. Lat/Lon are strings
// in the upstream schema.
type PlaceAPIResponse struct {
	PlaceID     int      `json:"place_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	Importance  float64  `json:"importance"`
	Addresstype string   `json:"addresstype"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Boundingbox []string `json:"boundingbox"`
	Address     struct {
		City         string `json:"city"`
		County       string `json:"county"`
		State        string `json:"state"`
		ISO31662Lvl4 string `json:"ISO3166-2-lvl4"`
		Postcode     string `json:"postcode"`
		Country      string `json:"country"`
		CountryCode  string `json:"country_code"`
	} `json:"address"`
	// Error is set by /reverse when no place covers the coordinate
	Error string `json:"error"`
}

// Coordinates parses the upstream's string lat/lon pair
func (p *PlaceAPIResponse) Coordinates() (float64, float64, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse latitude %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse longitude %q: %w", p.Lon, err)
	}
	return lat, lon, nil
}
