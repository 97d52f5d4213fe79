package marine

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/datavtar/mcp-cloud-server/internal/fetch"
	"github.com/datavtar/mcp-cloud-server/internal/providers/openmeteo"
	"github.com/datavtar/mcp-cloud-server/internal/types"
)

type mockProvider struct {
	response *openmeteo.MarineAPIResponse
	err      error
	calls    int
}

func (m *mockProvider) GetMarine(ctx context.Context, latitude, longitude float64) (*openmeteo.MarineAPIResponse, error) {
	m.calls++
	return m.response, m.err
}

func f(v float64) *float64 { return &v }

func TestService_GetConditions(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("maps current and daily blocks", func(t *testing.T) {
		resp := &openmeteo.MarineAPIResponse{
			Current: &openmeteo.CurrentMarine{
				Time:       "2025-01-15T10:00",
				WaveHeight: f(1.8),
				WavePeriod: f(9.5),
			},
			Daily: &openmeteo.MarineDailyBlock{
				Time:                  []string{"2025-01-15"},
				WaveHeightMax:         []float64{2.4},
				WaveDirectionDominant: []float64{270},
				WavePeriodMax:         []float64{11},
				WindWaveHeightMax:     []float64{1.1},
				SwellWaveHeightMax:    []float64{1.9},
			},
		}
		svc := NewService(&mockProvider{response: resp}, logger)

		conditions, err := svc.GetConditions(context.Background(), types.NewCoords(36.6, -121.9))
		if err != nil {
			t.Fatalf("GetConditions() error = %v", err)
		}

		if conditions.Current == nil || *conditions.Current.WaveHeight != 1.8 {
			t.Errorf("Current wave height = %+v, want 1.8", conditions.Current)
		}
		if len(conditions.Daily) != 1 {
			t.Fatalf("Daily length = %d, want 1", len(conditions.Daily))
		}
		if conditions.Daily[0].WaveDirection != 270 {
			t.Errorf("WaveDirection = %v, want 270", conditions.Daily[0].WaveDirection)
		}
	})

	t.Run("inland coordinate surfaces the upstream failure", func(t *testing.T) {
		providerErr := &fetch.Error{Upstream: openmeteo.UpstreamMarine, Kind: fetch.KindHTTP, Status: 400}
		svc := NewService(&mockProvider{err: providerErr}, logger)

		_, err := svc.GetConditions(context.Background(), types.NewCoords(39.1, -107.6))
		fe, ok := fetch.AsError(err)
		if !ok {
			t.Fatalf("error = %v, want *fetch.Error", err)
		}
		if fe.Upstream != openmeteo.UpstreamMarine {
			t.Errorf("Upstream = %q, want %q", fe.Upstream, openmeteo.UpstreamMarine)
		}
	})

	t.Run("invalid coordinate issues no network call", func(t *testing.T) {
		provider := &mockProvider{}
		svc := NewService(provider, logger)

		_, err := svc.GetConditions(context.Background(), types.NewCoords(-91, 0))
		if !errors.Is(err, types.ErrInvalidLatitude) {
			t.Errorf("error = %v, want ErrInvalidLatitude", err)
		}
		if provider.calls != 0 {
			t.Errorf("provider calls = %d, want 0", provider.calls)
		}
	})
}
