package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Log    LogConfig
	HTTP   HTTPConfig
	App    AppConfig
}

// ServerConfig holds transport-host configuration
type ServerConfig struct {
	Port    int
	BaseURL string // public base URL advertised to SSE clients
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// HTTPConfig holds settings for outbound upstream calls
type HTTPConfig struct {
	TimeoutSeconds int
	UserAgent      string
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	ForecastPeriods int // NWS forecast periods to render
	HourlyPeriods   int // hourly periods to render
	StationLimit    int // stations to list per state
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.mcp-cloud-server")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.baseurl", "")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("http.timeoutSeconds", 10)
	viper.SetDefault("http.userAgent", "mcp-cloud-server/1.0 (https://github.com/datavtar/mcp-cloud-server)")
	viper.SetDefault("app.forecastPeriods", 5)
	viper.SetDefault("app.hourlyPeriods", 24)
	viper.SetDefault("app.stationLimit", 50)

	// Read from environment variables
	viper.SetEnvPrefix("MCP_WEATHER")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Cloud Run injects the listen port via PORT
	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", portEnv, err)
		}
		cfg.Server.Port = port
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// GetBaseURL returns the externally visible base URL for the SSE transport
func (c *Config) GetBaseURL() string {
	if c.Server.BaseURL != "" {
		return c.Server.BaseURL
	}
	return fmt.Sprintf("http://localhost:%d", c.Server.Port)
}

// UpstreamTimeout returns the bounded wait applied to every upstream call
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
