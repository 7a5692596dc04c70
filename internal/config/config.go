// Package config provides configuration types, defaults and persistence for
// the workspaces CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lraycheva/core-sub003/internal/layoutstore"
	"github.com/lraycheva/core-sub003/internal/timedcache"
	"github.com/lraycheva/core-sub003/internal/tracing"
)

// Config holds all configuration options.
type Config struct {
	Log     LogConfig      `mapstructure:"log" yaml:"log"`
	Cache   CacheConfig    `mapstructure:"cache" yaml:"cache"`
	Events  EventsConfig   `mapstructure:"events" yaml:"events"`
	Store   StoreConfig    `mapstructure:"store" yaml:"store"`
	Watch   WatchConfig    `mapstructure:"watch" yaml:"watch"`
	Tracing tracing.Config `mapstructure:"tracing" yaml:"tracing"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`   // empty logs to stderr
	Level   string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}

// CacheConfig controls the timed caches.
type CacheConfig struct {
	ElementTTL time.Duration `mapstructure:"element_ttl" yaml:"element_ttl"`
	LayoutTTL  time.Duration `mapstructure:"layout_ttl" yaml:"layout_ttl"`
}

// EventsConfig controls event delivery.
type EventsConfig struct {
	// BufferSize is how many events a slow subscriber may lag behind before
	// it starts missing events.
	BufferSize int `mapstructure:"buffer_size" yaml:"buffer_size"`
}

// StoreConfig locates the layout database.
type StoreConfig struct {
	Path string `mapstructure:"path" yaml:"path"` // empty uses DefaultStorePath
}

// WatchConfig controls layout file watching.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// DefaultDir returns ~/.config/workspaces, or an empty string if the home
// directory is unavailable.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "workspaces")
}

// DefaultStorePath returns the default layout database path.
func DefaultStorePath() string {
	dir := DefaultDir()
	if dir == "" {
		return "layouts.db"
	}
	return filepath.Join(dir, "layouts.db")
}

// DefaultTracesFilePath returns the default path for trace file export.
func DefaultTracesFilePath() string {
	dir := DefaultDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// StorePath returns the configured store path or the default.
func (c Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return DefaultStorePath()
}

// TracingConfig returns the tracing config with the trace file defaulted.
func (c Config) TracingConfig() tracing.Config {
	t := c.Tracing
	if t.FilePath == "" {
		t.FilePath = DefaultTracesFilePath()
	}
	return t
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Log: LogConfig{
			Enabled: false,
			Level:   "info",
		},
		Cache: CacheConfig{
			ElementTTL: timedcache.DefaultElementTTL,
			LayoutTTL:  layoutstore.DefaultCacheTTL,
		},
		Events: EventsConfig{
			BufferSize: 64,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// SetDefaults registers every default with v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("log.enabled", d.Log.Enabled)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("cache.element_ttl", d.Cache.ElementTTL)
	v.SetDefault("cache.layout_ttl", d.Cache.LayoutTTL)
	v.SetDefault("events.buffer_size", d.Events.BufferSize)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func Validate(cfg Config) error {
	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.Log.Level)
	}
	if cfg.Cache.ElementTTL <= 0 {
		return fmt.Errorf("cache.element_ttl must be positive, got %v", cfg.Cache.ElementTTL)
	}
	if cfg.Cache.LayoutTTL <= 0 {
		return fmt.Errorf("cache.layout_ttl must be positive, got %v", cfg.Cache.LayoutTTL)
	}
	if cfg.Events.BufferSize < 0 {
		return fmt.Errorf("events.buffer_size must not be negative, got %d", cfg.Events.BufferSize)
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %v", cfg.Watch.Debounce)
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	if t.Exporter != "" {
		switch t.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
		}
	}

	if t.Enabled && t.Exporter == "otlp" && t.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}
	return nil
}
