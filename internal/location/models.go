package location

import (
	"strconv"

	"github.com/datavtar/mcp-cloud-server/internal/providers/nominatim"
	"github.com/datavtar/mcp-cloud-server/internal/types"
)

// Place is a resolved geocoding candidate
type Place struct {
	DisplayName string             `json:"displayName"`
	Coordinates types.Coords       `json:"coordinates"`
	Type        string             `json:"type,omitempty"`
	Address     types.LocationInfo `json:"address"`
	BoundingBox *BoundingBox       `json:"boundingBox,omitempty"`
}

// BoundingBox is the candidate's extent in degrees
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
}

// mapPlace converts a Nominatim place record to the canonical Place record
func mapPlace(resp *nominatim.PlaceAPIResponse) (*Place, error) {
	lat, lon, err := resp.Coordinates()
	if err != nil {
		return nil, err
	}

	name := resp.DisplayName
	if name == "" {
		name = resp.Name
	}

	place := &Place{
		DisplayName: name,
		Coordinates: types.NewCoords(lat, lon),
		Type:        resp.Type,
		Address: types.LocationInfo{
			Name:        resp.Name,
			County:      resp.Address.County,
			State:       resp.Address.State,
			Country:     resp.Address.Country,
			CountryCode: resp.Address.CountryCode,
		},
	}

	// Nominatim bounding boxes are [minLat, maxLat, minLon, maxLon] strings
	if len(resp.Boundingbox) == 4 {
		box := &BoundingBox{}
		fields := []*float64{&box.MinLat, &box.MaxLat, &box.MinLon, &box.MaxLon}
		ok := true
		for i, raw := range resp.Boundingbox {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				ok = false
				break
			}
			*fields[i] = v
		}
		if ok {
			place.BoundingBox = box
		}
	}

	return place, nil
}
