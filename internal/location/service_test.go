package location

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/datavtar/mcp-cloud-server/internal/providers/nominatim"
	"github.com/datavtar/mcp-cloud-server/internal/types"
)

// Mock provider for testing

type mockGeocodeProvider struct {
	searchResults []nominatim.PlaceAPIResponse
	reverseResult *nominatim.PlaceAPIResponse
	err           error
	calls         int
}

func (m *mockGeocodeProvider) Search(ctx context.Context, query string, limit int) ([]nominatim.PlaceAPIResponse, error) {
	m.calls++
	return m.searchResults, m.err
}

func (m *mockGeocodeProvider) Reverse(ctx context.Context, latitude, longitude float64) (*nominatim.PlaceAPIResponse, error) {
	m.calls++
	return m.reverseResult, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func placeResponse(name, lat, lon string) nominatim.PlaceAPIResponse {
	var p nominatim.PlaceAPIResponse
	p.DisplayName = name
	p.Lat = lat
	p.Lon = lon
	p.Type = "town"
	p.Boundingbox = []string{"39.1", "39.2", "-107.7", "-107.6"}
	return p
}

func TestLocationService_Geocode(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		results   []nominatim.PlaceAPIResponse
		wantErr   error
		wantCalls int
		wantCount int
	}{
		{
			name:  "candidates returned in rank order",
			query: "Aspen, Colorado",
			results: []nominatim.PlaceAPIResponse{
				placeResponse("Aspen, Pitkin County, Colorado", "39.1911", "-106.8175"),
				placeResponse("Aspen Springs, California", "38.0000", "-120.0000"),
			},
			wantCalls: 1,
			wantCount: 2,
		},
		{
			name:      "zero results is a valid empty answer",
			query:     "xyzzyplugh",
			results:   []nominatim.PlaceAPIResponse{},
			wantCalls: 1,
			wantCount: 0,
		},
		{
			name:      "empty query issues no network call",
			query:     "   ",
			wantErr:   ErrEmptyQuery,
			wantCalls: 0,
		},
		{
			name:  "malformed candidate is skipped",
			query: "Aspen",
			results: []nominatim.PlaceAPIResponse{
				placeResponse("Good", "39.1911", "-106.8175"),
				placeResponse("Bad", "not-a-number", "-106.8175"),
			},
			wantCalls: 1,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockGeocodeProvider{searchResults: tt.results}
			svc := NewService(provider, testLogger())

			places, err := svc.Geocode(context.Background(), tt.query)

			if provider.calls != tt.wantCalls {
				t.Errorf("provider calls = %d, want %d", provider.calls, tt.wantCalls)
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Geocode() error = %v", err)
			}
			if len(places) != tt.wantCount {
				t.Errorf("candidate count = %d, want %d", len(places), tt.wantCount)
			}
		})
	}
}

func TestLocationService_Geocode_MapsFields(t *testing.T) {
	resp := placeResponse("Aspen, Pitkin County, Colorado, United States", "39.1911", "-106.8175")
	resp.Address.County = "Pitkin County"
	resp.Address.State = "Colorado"
	resp.Address.Country = "United States"
	resp.Address.CountryCode = "us"

	provider := &mockGeocodeProvider{searchResults: []nominatim.PlaceAPIResponse{resp}}
	svc := NewService(provider, testLogger())

	places, err := svc.Geocode(context.Background(), "Aspen")
	if err != nil {
		t.Fatalf("Geocode() error = %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("candidate count = %d, want 1", len(places))
	}

	place := places[0]
	if place.Coordinates.Latitude != 39.1911 {
		t.Errorf("Latitude = %v, want 39.1911", place.Coordinates.Latitude)
	}
	if place.Address.State != "Colorado" {
		t.Errorf("State = %q, want Colorado", place.Address.State)
	}
	if place.BoundingBox == nil {
		t.Fatal("BoundingBox should be populated")
	}
	if place.BoundingBox.MinLat != 39.1 || place.BoundingBox.MaxLon != -107.6 {
		t.Errorf("BoundingBox = %+v", place.BoundingBox)
	}
}

func TestLocationService_ReverseGeocode(t *testing.T) {
	t.Run("valid coordinate", func(t *testing.T) {
		resp := placeResponse("Aspen, Pitkin County, Colorado", "39.1911", "-106.8175")
		provider := &mockGeocodeProvider{reverseResult: &resp}
		svc := NewService(provider, testLogger())

		place, err := svc.ReverseGeocode(context.Background(), types.NewCoords(39.1911, -106.8175))
		if err != nil {
			t.Fatalf("ReverseGeocode() error = %v", err)
		}
		if place.DisplayName != "Aspen, Pitkin County, Colorado" {
			t.Errorf("DisplayName = %q", place.DisplayName)
		}
	})

	t.Run("out-of-range latitude issues no network call", func(t *testing.T) {
		provider := &mockGeocodeProvider{}
		svc := NewService(provider, testLogger())

		_, err := svc.ReverseGeocode(context.Background(), types.NewCoords(200, 0))
		if !errors.Is(err, types.ErrInvalidLatitude) {
			t.Errorf("error = %v, want ErrInvalidLatitude", err)
		}
		if provider.calls != 0 {
			t.Errorf("provider calls = %d, want 0", provider.calls)
		}
	})

	t.Run("upstream error body maps to ErrNoResults", func(t *testing.T) {
		provider := &mockGeocodeProvider{reverseResult: &nominatim.PlaceAPIResponse{Error: "Unable to geocode"}}
		svc := NewService(provider, testLogger())

		_, err := svc.ReverseGeocode(context.Background(), types.NewCoords(0, 0))
		if !errors.Is(err, ErrNoResults) {
			t.Errorf("error = %v, want ErrNoResults", err)
		}
	})
}

func TestLocationService_ResolvePlace(t *testing.T) {
	t.Run("first candidate wins", func(t *testing.T) {
		provider := &mockGeocodeProvider{searchResults: []nominatim.PlaceAPIResponse{
			placeResponse("First", "39.0", "-107.0"),
			placeResponse("Second", "40.0", "-108.0"),
		}}
		svc := NewService(provider, testLogger())

		place, err := svc.ResolvePlace(context.Background(), "somewhere")
		if err != nil {
			t.Fatalf("ResolvePlace() error = %v", err)
		}
		if place.DisplayName != "First" {
			t.Errorf("DisplayName = %q, want First", place.DisplayName)
		}
	})

	t.Run("zero candidates is ErrNoResults", func(t *testing.T) {
		provider := &mockGeocodeProvider{}
		svc := NewService(provider, testLogger())

		_, err := svc.ResolvePlace(context.Background(), "xyzzyplugh")
		if !errors.Is(err, ErrNoResults) {
			t.Errorf("error = %v, want ErrNoResults", err)
		}
	})
}
