package mcpserver

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/datavtar/mcp-cloud-server/internal/airquality"
	"github.com/datavtar/mcp-cloud-server/internal/alerts"
	"github.com/datavtar/mcp-cloud-server/internal/astro"
	"github.com/datavtar/mcp-cloud-server/internal/config"
	"github.com/datavtar/mcp-cloud-server/internal/fetch"
	"github.com/datavtar/mcp-cloud-server/internal/location"
	"github.com/datavtar/mcp-cloud-server/internal/marine"
	"github.com/datavtar/mcp-cloud-server/internal/weather"
)

const (
	serverName    = "weather"
	serverVersion = "1.0.0"
)

// Services bundles the domain services the MCP surface dispatches into
type Services struct {
	Weather    weather.Service
	Alerts     alerts.Service
	Location   location.Service
	AirQuality airquality.Service
	Marine     marine.Service
	Astro      astro.Service
}

// Server owns the MCP server and its tool handlers
type Server struct {
	mcp      *server.MCPServer
	services Services
	cfg      *config.Config
	logger   *slog.Logger
}

// New builds the MCP server and registers every tool, resource, and prompt
func New(services Services, cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			serverName,
			serverVersion,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithPromptCapabilities(false),
		),
		services: services,
		cfg:      cfg,
		logger:   logger.With("component", "mcp-server"),
	}

	s.registerNWSTools()
	s.registerGlobalTools()
	s.registerLocationTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// MCP exposes the underlying server for transport wiring
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// textAndJSON builds a tool result with a human-readable block followed by
// the canonical records as JSON.
func textAndJSON(rendered string, payload any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool payload: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(rendered),
			mcp.NewTextContent(string(data)),
		},
	}, nil
}

// toolError maps a service error to an MCP error result. Upstream failures
// name the upstream; everything else is a validation failure.
func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	if fe, ok := fetch.AsError(err); ok {
		s.logger.Warn("tool failed on upstream", "tool", tool, "upstream", fe.Upstream, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("upstream error (%s): %v", fe.Upstream, err))
	}
	s.logger.Debug("tool rejected input", "tool", tool, "error", err)
	return mcp.NewToolResultError(fmt.Sprintf("validation error: %v", err))
}
