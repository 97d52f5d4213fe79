package main

import (
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/datavtar/mcp-cloud-server/internal/airquality"
	"github.com/datavtar/mcp-cloud-server/internal/alerts"
	"github.com/datavtar/mcp-cloud-server/internal/astro"
	"github.com/datavtar/mcp-cloud-server/internal/config"
	"github.com/datavtar/mcp-cloud-server/internal/fetch"
	"github.com/datavtar/mcp-cloud-server/internal/location"
	"github.com/datavtar/mcp-cloud-server/internal/marine"
	"github.com/datavtar/mcp-cloud-server/internal/mcpserver"
	"github.com/datavtar/mcp-cloud-server/internal/providers/nominatim"
	"github.com/datavtar/mcp-cloud-server/internal/providers/nws"
	"github.com/datavtar/mcp-cloud-server/internal/providers/openmeteo"
	"github.com/datavtar/mcp-cloud-server/internal/providers/sunrisesunset"
	"github.com/datavtar/mcp-cloud-server/internal/timezone"
	"github.com/datavtar/mcp-cloud-server/internal/weather"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	// Shared upstream HTTP client and API clients
	fetchClient := fetch.NewClient(cfg.UpstreamTimeout(), cfg.HTTP.UserAgent, logger)
	nwsClient := nws.NewClient(fetchClient, logger)
	openMeteoClient := openmeteo.NewClient(fetchClient, logger)
	nominatimClient := nominatim.NewClient(fetchClient, logger)
	sunClient := sunrisesunset.NewClient(fetchClient, logger)

	tzService, err := timezone.NewService()
	if err != nil {
		log.Fatalf("Failed to initialize timezone lookup: %v", err)
	}

	// Domain services
	airQualityService := airquality.NewService(openMeteoClient, logger)
	services := mcpserver.Services{
		Weather:    weather.NewService(nwsClient, openMeteoClient, airQualityService, cfg, logger),
		Alerts:     alerts.NewService(nwsClient, logger),
		Location:   location.NewService(nominatimClient, logger),
		AirQuality: airQualityService,
		Marine:     marine.NewService(openMeteoClient, logger),
		Astro:      astro.NewService(sunClient, tzService, logger),
	}

	srv := mcpserver.New(services, cfg, logger)

	sseServer := server.NewSSEServer(srv.MCP(),
		server.WithBaseURL(cfg.GetBaseURL()),
	)

	// SSE transport plus a liveness probe for the platform
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
			return
		}
		sseServer.ServeHTTP(w, r)
	})

	httpServer := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("starting server",
		"addr", cfg.GetServerAddr(),
		"baseURL", cfg.GetBaseURL(),
		"sse", cfg.GetBaseURL()+"/sse",
	)
	if err := httpServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
