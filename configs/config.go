package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/tablebridge/tablebridge/internal/domain"
	"github.com/tablebridge/tablebridge/internal/location"
)

// GazetteerEntry is one place-name row in the YAML config file.
type GazetteerEntry struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// AnchorConfig overrides the default fallback coordinate.
type AnchorConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// FileConfig is the structure loaded from the YAML configuration file.
// The file extends the built-in gazetteer; everything else is env-driven.
type FileConfig struct {
	Gazetteer     []GazetteerEntry `yaml:"gazetteer"`
	DefaultAnchor *AnchorConfig    `yaml:"default_anchor"`
}

// Config holds the final application configuration, merged from file and
// environment variables. Environment variables use the prefix
// "TABLEBRIDGE_" and override file settings.
type Config struct {
	// Config file path, loaded from env first. Empty means no file.
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	// File-loaded fields (merged).
	GazetteerOverlay []GazetteerEntry
	DefaultAnchor    *AnchorConfig

	// Environment-overridable fields.
	ListenAddr               string        `envconfig:"LISTEN_ADDR" default:":8080"`
	AdminListenAddr          string        `envconfig:"ADMIN_LISTEN_ADDR" default:":8081"`
	UpstreamBaseURL          string        `envconfig:"UPSTREAM_BASE_URL"`
	BookingBaseURL           string        `envconfig:"BOOKING_BASE_URL"`
	HTTPClientTimeout        time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	ShutdownTimeout          time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	OtelExporterOtlpEndpoint string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool          `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	LogLevel                 string        `envconfig:"LOG_LEVEL" default:"info"`
}

// ParsedLogLevel returns the slog.Level for the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// GazetteerTable builds the immutable lookup table from the built-in
// gazetteer plus the file overlay. Constructed once at startup and shared
// read-only by every request.
func (c *Config) GazetteerTable() *location.Table {
	overlay := make([]location.Entry, 0, len(c.GazetteerOverlay))
	for _, e := range c.GazetteerOverlay {
		overlay = append(overlay, location.Entry{
			Name: e.Name,
			Geo:  domain.Coordinate{Latitude: e.Latitude, Longitude: e.Longitude},
		})
	}
	var anchor *domain.Coordinate
	if c.DefaultAnchor != nil {
		anchor = &domain.Coordinate{Latitude: c.DefaultAnchor.Latitude, Longitude: c.DefaultAnchor.Longitude}
	}
	return location.NewTable(overlay, anchor)
}

// Load loads configuration first from environment variables (to get the
// file path), then from the YAML file, and finally applies environment
// variables again so env always wins.
func Load() (*Config, error) {
	var initialCfg Config
	if err := envconfig.Process("tablebridge", &initialCfg); err != nil {
		return nil, fmt.Errorf("failed to process initial environment variables: %w", err)
	}

	fileCfg := FileConfig{}
	if initialCfg.ConfigFilePath != "" {
		yamlFile, err := os.ReadFile(initialCfg.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", initialCfg.ConfigFilePath, err)
		}
		if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", initialCfg.ConfigFilePath, err)
		}
		slog.Info("Loaded configuration from file.", "path", initialCfg.ConfigFilePath)
	}

	finalCfg := initialCfg
	finalCfg.GazetteerOverlay = fileCfg.Gazetteer
	finalCfg.DefaultAnchor = fileCfg.DefaultAnchor

	if err := envconfig.Process("tablebridge", &finalCfg); err != nil {
		return nil, fmt.Errorf("failed to process overriding environment variables: %w", err)
	}

	return &finalCfg, nil
}
