package alerts

import (
	"fmt"
	"strings"
	"time"

	"github.com/datavtar/mcp-cloud-server/internal/providers/nws"
)

// Alert is a single active weather alert
type Alert struct {
	Event       string     `json:"event"`
	AreaDesc    string     `json:"areaDesc"`
	Severity    string     `json:"severity"`
	Status      string     `json:"status"`
	Headline    string     `json:"headline,omitempty"`
	Description string     `json:"description,omitempty"`
	Instruction string     `json:"instruction,omitempty"`
	Effective   *time.Time `json:"effective,omitempty"`
	Expires     *time.Time `json:"expires,omitempty"`
}

// StateAlerts is the result of an active-alerts lookup for one state
type StateAlerts struct {
	State  string  `json:"state"`
	Alerts []Alert `json:"alerts"`
}

// NationalSummary aggregates all active alerts nationwide by event type
type NationalSummary struct {
	Total    int            `json:"total"`
	ByEvent  map[string]int `json:"byEvent"`
	TopEvent string         `json:"topEvent,omitempty"`
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// Render formats an alert the way the get_alerts tool presents it
func (a Alert) Render() string {
	description := a.Description
	if description == "" {
		description = "No description available"
	}
	instruction := a.Instruction
	if instruction == "" {
		instruction = "No specific instructions provided"
	}

	return strings.Join([]string{
		fmt.Sprintf("Event: %s", orUnknown(a.Event)),
		fmt.Sprintf("Area: %s", orUnknown(a.AreaDesc)),
		fmt.Sprintf("Severity: %s", orUnknown(a.Severity)),
		fmt.Sprintf("Description: %s", description),
		fmt.Sprintf("Instructions: %s", instruction),
	}, "\n")
}

// mapAlertFeature converts an NWS alert feature to the canonical Alert record
func mapAlertFeature(feature nws.AlertFeature) Alert {
	props := feature.Properties

	alert := Alert{
		Event:       props.Event,
		AreaDesc:    props.AreaDesc,
		Severity:    props.Severity,
		Status:      props.Status,
		Headline:    props.Headline,
		Description: props.Description,
		Instruction: props.Instruction,
	}

	if t, err := time.Parse(time.RFC3339, props.Effective); err == nil {
		alert.Effective = &t
	}
	if t, err := time.Parse(time.RFC3339, props.Expires); err == nil {
		alert.Expires = &t
	}

	return alert
}
