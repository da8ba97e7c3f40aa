package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/contact"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate default config: %v", err)
	}
	if cfg.Server.HTTPAddress != ":8080" {
		t.Errorf("http_address = %q, want :8080", cfg.Server.HTTPAddress)
	}
	if cfg.Contact.Endpoint != contact.DefaultEndpoint {
		t.Errorf("endpoint = %q, want %q", cfg.Contact.Endpoint, contact.DefaultEndpoint)
	}
	if cfg.ResetDelay() != 3*time.Second {
		t.Errorf("ResetDelay() = %v, want 3s", cfg.ResetDelay())
	}
	if cfg.SessionTTL() != 24*time.Hour {
		t.Errorf("SessionTTL() = %v, want 24h", cfg.SessionTTL())
	}
	if cfg.Session.PerIPPerMinute != 30 || cfg.Session.Burst != 10 {
		t.Errorf("session limits = %d/min burst %d, want 30/min burst 10", cfg.Session.PerIPPerMinute, cfg.Session.Burst)
	}
}

func TestConfigValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"short csrf key", func(c *Config) { c.Server.CSRFKey = "too-short" }},
		{"relative endpoint", func(c *Config) { c.Contact.Endpoint = "/f/abc" }},
		{"ftp endpoint", func(c *Config) { c.Contact.Endpoint = "ftp://example.com/f" }},
		{"bad reset delay", func(c *Config) { c.Contact.ResetDelay = "soon" }},
		{"zero reset delay", func(c *Config) { c.Contact.ResetDelay = "0s" }},
		{"negative session ttl", func(c *Config) { c.Session.TTL = "-1h" }},
		{"negative session burst", func(c *Config) { c.Session.Burst = -1 }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
		{"metrics without address", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Address = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestConfigValidate_AcceptsExactCSRFKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.CSRFKey = strings.Repeat("k", 32)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}
}

func TestConfigApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.applyEnv(map[string]string{
		"PORTFOLIO_HTTP_ADDRESS":   ":9999",
		"PORTFOLIO_FORM_ENDPOINT":  "https://forms.example.com/f/x",
		"PORTFOLIO_SECURE_COOKIES": "true",
		"PORTFOLIO_LOG_LEVEL":      "debug",
	})
	if err != nil {
		t.Fatalf("applyEnv: %v", err)
	}

	if cfg.Server.HTTPAddress != ":9999" {
		t.Errorf("http_address = %q", cfg.Server.HTTPAddress)
	}
	if cfg.Contact.Endpoint != "https://forms.example.com/f/x" {
		t.Errorf("endpoint = %q", cfg.Contact.Endpoint)
	}
	if !cfg.Server.SecureCookies {
		t.Error("secure_cookies not applied")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("unset variable changed log format to %q", cfg.Log.Format)
	}
}

func TestConfigApplyEnv_InvalidBool(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.applyEnv(map[string]string{"PORTFOLIO_SECURE_COOKIES": "maybe"}); err == nil {
		t.Fatal("expected error for invalid bool")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  http_address: ":8081"
contact:
  endpoint: "https://forms.example.com/f/abc"
  reset_delay: "5s"
log:
  level: warn
  format: console
watch: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.HTTPAddress != ":8081" {
		t.Errorf("http_address = %q", cfg.Server.HTTPAddress)
	}
	if cfg.ResetDelay() != 5*time.Second {
		t.Errorf("ResetDelay() = %v", cfg.ResetDelay())
	}
	if cfg.Metrics.Address != ":9090" {
		t.Errorf("metrics address default not applied: %q", cfg.Metrics.Address)
	}
	if !cfg.Watch {
		t.Error("watch not loaded")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadConfig(writeConfig(t, "server: [")); err == nil {
		t.Error("expected error for malformed yaml")
	}
	if _, err := LoadConfig(writeConfig(t, "contact:\n  endpoint: nope\n")); err == nil {
		t.Error("expected error for invalid endpoint")
	}
}

func TestResolveConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  http_address: \":8081\"\n")
	t.Setenv("PORTFOLIO_HTTP_ADDRESS", ":7070")

	cfg, err := resolveConfig(path)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Server.HTTPAddress != ":7070" {
		t.Errorf("http_address = %q, want :7070", cfg.Server.HTTPAddress)
	}
}

type fakeEndpoint struct {
	endpoint string
	err      error
}

func (f *fakeEndpoint) SetEndpoint(endpoint string) error {
	if f.err != nil {
		return f.err
	}
	f.endpoint = endpoint
	return nil
}

func TestConfigReloader(t *testing.T) {
	path := writeConfig(t, "contact:\n  endpoint: \"https://forms.example.com/f/new\"\nlog:\n  level: warn\n")
	client := &fakeEndpoint{}
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	r := &configReloader{path: path, client: client, level: level, logger: zap.NewNop()}
	r.reload()

	if client.endpoint != "https://forms.example.com/f/new" {
		t.Errorf("endpoint = %q", client.endpoint)
	}
	if level.Level() != zapcore.WarnLevel {
		t.Errorf("level = %s, want warn", level.Level())
	}
}

func TestConfigReloader_KeepsSettingsOnError(t *testing.T) {
	path := writeConfig(t, "log:\n  level: warn\n")
	client := &fakeEndpoint{err: errors.New("rejected")}
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	r := &configReloader{path: path, client: client, level: level, logger: zap.NewNop()}
	r.reload()

	if level.Level() != zapcore.InfoLevel {
		t.Errorf("level changed to %s after failed reload", level.Level())
	}
}

func TestConfigReloader_VerboseKeepsLevel(t *testing.T) {
	path := writeConfig(t, "log:\n  level: error\n")
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)

	r := &configReloader{path: path, verbose: true, client: &fakeEndpoint{}, level: level, logger: zap.NewNop()}
	r.reload()

	if level.Level() != zapcore.DebugLevel {
		t.Errorf("level = %s, want debug", level.Level())
	}
}

func TestPrintProjects(t *testing.T) {
	list := []models.Project{
		{Title: "Bee", Description: "Site", Year: 2024, Tech: []string{"Go", "HTMX"}, Type: models.ProjectTypeRecent},
	}

	var buf bytes.Buffer
	if err := printProjects(&buf, list, "table"); err != nil {
		t.Fatalf("printProjects(table): %v", err)
	}
	if !strings.Contains(buf.String(), "TITLE") || !strings.Contains(buf.String(), "Go, HTMX") {
		t.Errorf("table output = %q", buf.String())
	}

	buf.Reset()
	if err := printProjects(&buf, list, "json"); err != nil {
		t.Fatalf("printProjects(json): %v", err)
	}
	var decoded []models.Project
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json output: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Title != "Bee" {
		t.Errorf("decoded = %+v", decoded)
	}

	if err := printProjects(&buf, list, "yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("portafolio", 20); got != "portafolio" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("diseño de portafolio", 8); got != "diseñ..." {
		t.Errorf("truncate long = %q", got)
	}
}
