// Package main provides the portfolio site CLI.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/contact"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/logging"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web"
)

// Config represents the site configuration.
type Config struct {
	Server  ServerConfig   `yaml:"server"`
	Metrics MetricsConfig  `yaml:"metrics"`
	Contact ContactConfig  `yaml:"contact"`
	Session SessionConfig  `yaml:"session"`
	Log     logging.Config `yaml:"log"`
	Watch   bool           `yaml:"watch"` // reload the config file on change
	Verbose bool           `yaml:"-"`     // set via CLI flag
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	HTTPAddress   string `yaml:"http_address"`   // HTTP listen address (default: :8080)
	SecureCookies bool   `yaml:"secure_cookies"` // Secure flag on cookies, for HTTPS deployments
	CSRFKey       string `yaml:"csrf_key"`       // 32-byte CSRF key; random per process when empty
}

// MetricsConfig contains Prometheus metrics server settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"` // default: :9090
}

// ContactConfig contains contact form settings.
type ContactConfig struct {
	Endpoint   string `yaml:"endpoint"`    // form endpoint URL
	ResetDelay string `yaml:"reset_delay"` // success view duration (default: 3s)
}

// SessionConfig contains visitor session settings.
type SessionConfig struct {
	TTL            string `yaml:"ttl"`               // default: 24h
	PerIPPerMinute int    `yaml:"per_ip_per_minute"` // new sessions per client IP (default: 30)
	Burst          int    `yaml:"burst"`             // default: 10
}

// envOverrides are the environment variables that override file values.
// Unset variables leave the pointer nil.
type envOverrides struct {
	HTTPAddress    *string `env:"PORTFOLIO_HTTP_ADDRESS"`
	MetricsAddress *string `env:"PORTFOLIO_METRICS_ADDRESS"`
	FormEndpoint   *string `env:"PORTFOLIO_FORM_ENDPOINT"`
	CSRFKey        *string `env:"PORTFOLIO_CSRF_KEY"`
	SecureCookies  *bool   `env:"PORTFOLIO_SECURE_COOKIES"`
	LogLevel       *string `env:"PORTFOLIO_LOG_LEVEL"`
	LogFormat      *string `env:"PORTFOLIO_LOG_FORMAT"`
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// setDefaults sets default values for missing config fields.
func (c *Config) setDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = ":8080"
	}
	if c.Metrics.Address == "" {
		c.Metrics.Address = ":9090"
	}
	if c.Contact.Endpoint == "" {
		c.Contact.Endpoint = contact.DefaultEndpoint
	}
	if c.Contact.ResetDelay == "" {
		c.Contact.ResetDelay = contact.DefaultResetDelay.String()
	}
	if c.Session.TTL == "" {
		c.Session.TTL = "24h"
	}
	if c.Session.PerIPPerMinute == 0 {
		c.Session.PerIPPerMinute = web.DefaultSessionsPerMinute
	}
	if c.Session.Burst == 0 {
		c.Session.Burst = web.DefaultSessionBurst
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.HTTPAddress == "" {
		return fmt.Errorf("server.http_address is required")
	}
	if c.Server.CSRFKey != "" && len(c.Server.CSRFKey) != 32 {
		return fmt.Errorf("server.csrf_key must be exactly 32 bytes, got %d", len(c.Server.CSRFKey))
	}
	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return fmt.Errorf("metrics.address is required when metrics are enabled")
	}
	if err := contact.ValidateEndpoint(c.Contact.Endpoint); err != nil {
		return fmt.Errorf("contact.endpoint: %w", err)
	}
	if _, err := parsePositiveDuration(c.Contact.ResetDelay); err != nil {
		return fmt.Errorf("contact.reset_delay: %w", err)
	}
	if _, err := parsePositiveDuration(c.Session.TTL); err != nil {
		return fmt.Errorf("session.ttl: %w", err)
	}
	if c.Session.PerIPPerMinute < 0 || c.Session.Burst < 0 {
		return fmt.Errorf("session.per_ip_per_minute and session.burst must not be negative")
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// ResetDelay returns the parsed contact.reset_delay. Call after Validate.
func (c *Config) ResetDelay() time.Duration {
	d, _ := parsePositiveDuration(c.Contact.ResetDelay)
	return d
}

// SessionTTL returns the parsed session.ttl. Call after Validate.
func (c *Config) SessionTTL() time.Duration {
	d, _ := parsePositiveDuration(c.Session.TTL)
	return d
}

// applyEnv overrides file values with variables from environ.
func (c *Config) applyEnv(environ map[string]string) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.HTTPAddress != nil {
		c.Server.HTTPAddress = *o.HTTPAddress
	}
	if o.MetricsAddress != nil {
		c.Metrics.Address = *o.MetricsAddress
	}
	if o.FormEndpoint != nil {
		c.Contact.Endpoint = *o.FormEndpoint
	}
	if o.CSRFKey != nil {
		c.Server.CSRFKey = *o.CSRFKey
	}
	if o.SecureCookies != nil {
		c.Server.SecureCookies = *o.SecureCookies
	}
	if o.LogLevel != nil {
		c.Log.Level = *o.LogLevel
	}
	if o.LogFormat != nil {
		c.Log.Format = *o.LogFormat
	}
	return nil
}

// resolveConfig builds the effective configuration: the file (or defaults),
// then .env and the process environment. CLI flags are applied by callers.
func resolveConfig(path string) (*Config, error) {
	var cfg *Config
	if path != "" {
		var err error
		cfg, err = LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg = DefaultConfig()
	}

	// A missing .env file is fine.
	_ = godotenv.Load()

	if err := cfg.applyEnv(env.ToMap(os.Environ())); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return d, nil
}
