package alerts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/datavtar/mcp-cloud-server/internal/providers/nws"
	"github.com/datavtar/mcp-cloud-server/internal/usstates"
)

// ErrInvalidState rejects state codes outside the known US enumeration
// before any network call is made.
var ErrInvalidState = errors.New("state must be a two-letter US state code")

// hurricaneEvents is the NWS event filter for tropical systems
var hurricaneEvents = []string{"Hurricane", "Tropical Storm"}

// AlertProvider fetches active alert collections from the NWS API
type AlertProvider interface {
	GetActiveAlerts(ctx context.Context, state string) (*nws.AlertsAPIResponse, error)
	GetActiveAlertsByEvent(ctx context.Context, events []string) (*nws.AlertsAPIResponse, error)
	GetNationalAlerts(ctx context.Context) (*nws.AlertsAPIResponse, error)
}

// Service provides active weather alert data
type Service interface {
	GetActiveAlerts(ctx context.Context, state string) (*StateAlerts, error)
	GetActiveHurricanes(ctx context.Context) ([]Alert, error)
	GetNationalSummary(ctx context.Context) (*NationalSummary, error)
}

type alertService struct {
	provider AlertProvider
	logger   *slog.Logger
}

// NewService creates a new alert service backed by the NWS client
func NewService(provider AlertProvider, logger *slog.Logger) Service {
	return &alertService{
		provider: provider,
		logger:   logger.With("component", "alert-service"),
	}
}

// GetActiveAlerts returns active alerts for a US state. Zero alerts is a
// legitimate empty result, not an error.
func (s *alertService) GetActiveAlerts(ctx context.Context, state string) (*StateAlerts, error) {
	normalized, ok := usstates.Normalize(state)
	if !ok {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidState, state)
	}

	resp, err := s.provider.GetActiveAlerts(ctx, normalized)
	if err != nil {
		s.logger.Error("failed to get active alerts", "state", normalized, "error", err)
		return nil, err
	}

	result := &StateAlerts{State: normalized, Alerts: make([]Alert, 0, len(resp.Features))}
	for _, feature := range resp.Features {
		result.Alerts = append(result.Alerts, mapAlertFeature(feature))
	}

	s.logger.Debug("fetched active alerts", "state", normalized, "count", len(result.Alerts))
	return result, nil
}

// GetActiveHurricanes returns active hurricane and tropical storm alerts
func (s *alertService) GetActiveHurricanes(ctx context.Context) ([]Alert, error) {
	resp, err := s.provider.GetActiveAlertsByEvent(ctx, hurricaneEvents)
	if err != nil {
		s.logger.Error("failed to get hurricane alerts", "error", err)
		return nil, err
	}

	result := make([]Alert, 0, len(resp.Features))
	for _, feature := range resp.Features {
		result = append(result, mapAlertFeature(feature))
	}
	return result, nil
}

// GetNationalSummary returns nationwide active alert counts by event type
func (s *alertService) GetNationalSummary(ctx context.Context) (*NationalSummary, error) {
	resp, err := s.provider.GetNationalAlerts(ctx)
	if err != nil {
		s.logger.Error("failed to get national alerts", "error", err)
		return nil, err
	}

	summary := &NationalSummary{
		Total:   len(resp.Features),
		ByEvent: make(map[string]int),
	}
	for _, feature := range resp.Features {
		event := orUnknown(feature.Properties.Event)
		summary.ByEvent[event]++
	}

	// Highest count wins; ties broken alphabetically for stable output
	events := make([]string, 0, len(summary.ByEvent))
	for event := range summary.ByEvent {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		if summary.ByEvent[events[i]] != summary.ByEvent[events[j]] {
			return summary.ByEvent[events[i]] > summary.ByEvent[events[j]]
		}
		return events[i] < events[j]
	})
	if len(events) > 0 {
		summary.TopEvent = events[0]
	}

	return summary, nil
}
