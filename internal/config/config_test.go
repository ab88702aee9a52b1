package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "globe.yaml")
	yaml := `
window:
  mode: flat
map:
  max_zoom: 8
  transition_duration: 2s
data:
  activities_url: https://example.org/api/activities
locate:
  provider: http
  url: https://example.org/geo
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GLOBE_MAP__AMBIENT_SPEED", "0.1")
	t.Setenv("GLOBE_LOGGING__LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Window.Mode != "flat" {
		t.Errorf("mode = %q", cfg.Window.Mode)
	}
	if cfg.Map.MaxZoom != 8 {
		t.Errorf("max_zoom = %v, want 8 from file", cfg.Map.MaxZoom)
	}
	if cfg.Map.TransitionDuration != 2*time.Second {
		t.Errorf("transition_duration = %v", cfg.Map.TransitionDuration)
	}
	if cfg.Map.AmbientSpeed != 0.1 {
		t.Errorf("ambient_speed = %v, want 0.1 from env", cfg.Map.AmbientSpeed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q", cfg.Logging.Level)
	}
	if cfg.Map.FlatDefaultZoom != 1.7 || cfg.Map.ZoomDuration != 750*time.Millisecond {
		t.Errorf("defaults lost: %+v", cfg.Map)
	}
	if cfg.Locate.Provider != "http" || cfg.Locate.Timeout != 10*time.Second {
		t.Errorf("locate = %+v", cfg.Locate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit file should fail")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("GLOBE_MAP__MAX_ZOOM", "0.5")
	_, err := Load(filepath.Join("testdata", "empty.yaml"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad mode", func(c *Config) { c.Window.Mode = "cube" }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"flat zoom above max", func(c *Config) { c.Map.FlatDefaultZoom = 20 }},
		{"zoom step", func(c *Config) { c.Map.ZoomStep = 1 }},
		{"fill", func(c *Config) { c.Map.FocusFill = 1.5 }},
		{"negative speed", func(c *Config) { c.Map.AmbientSpeed = -1 }},
		{"zero duration", func(c *Config) { c.Map.TransitionDuration = 0 }},
		{"no world", func(c *Config) { c.Data.WorldPath = "" }},
		{"relative url", func(c *Config) { c.Data.ActivitiesURL = "/api" }},
		{"unknown provider", func(c *Config) { c.Locate.Provider = "gps" }},
		{"http without url", func(c *Config) { c.Locate.Provider = "http" }},
		{"geoip without db", func(c *Config) { c.Locate.Provider = "geoip" }},
		{"static out of range", func(c *Config) { c.Locate.Lat = 91 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"GLOBE_MAP__MAX_ZOOM":        "map.max_zoom",
		"GLOBE_LOCATE__GEOIP_DB":     "locate.geoip_db",
		"GLOBE_DATA__ACTIVITIES_URL": "data.activities_url",
		"GLOBE_CONFIG":               "",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
