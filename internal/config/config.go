// Package config loads layered application configuration: struct
// defaults, an optional YAML file, then GLOBE_ environment variables.
package config

import (
	"time"

	"github.com/elektrokombinacija/campaign-globe/internal/logging"
)

// Config is the full application configuration.
type Config struct {
	Window  WindowConfig   `koanf:"window"`
	Map     MapConfig      `koanf:"map"`
	Data    DataConfig     `koanf:"data"`
	Locate  LocateConfig   `koanf:"locate"`
	Logging logging.Config `koanf:"logging"`
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Title  string `koanf:"title"`
	Width  int    `koanf:"width"`
	Height int    `koanf:"height"`
	Mode   string `koanf:"mode"` // Initial view: globe or flat
}

// MapConfig tunes the camera engine and renderer.
type MapConfig struct {
	MaxZoom            float64       `koanf:"max_zoom"`
	FlatDefaultZoom    float64       `koanf:"flat_default_zoom"`
	FocusFill          float64       `koanf:"focus_fill"`
	DragSensitivity    float64       `koanf:"drag_sensitivity"`
	WheelSensitivity   float64       `koanf:"wheel_sensitivity"`
	TapSlop            float64       `koanf:"tap_slop"`
	TransitionDuration time.Duration `koanf:"transition_duration"`
	ZoomStep           float64       `koanf:"zoom_step"`
	ZoomDuration       time.Duration `koanf:"zoom_button_duration"`
	AmbientSpeed       float64       `koanf:"ambient_speed"`
	ManualSpeed        float64       `koanf:"manual_speed"`
	ResizeDebounce     time.Duration `koanf:"resize_debounce"`
	LabelMinArea       float64       `koanf:"label_min_area"`
}

// DataConfig locates the world geometry and campaign data.
type DataConfig struct {
	WorldPath        string        `koanf:"world_path"`
	ActivitiesPath   string        `koanf:"activities_path"`
	CountriesPath    string        `koanf:"countries_path"`
	ActivitiesURL    string        `koanf:"activities_url"`
	ActivitiesAPIKey string        `koanf:"activities_api_key"`
	RequestTimeout   time.Duration `koanf:"request_timeout"`
	RefreshInterval  time.Duration `koanf:"refresh_interval"` // Zero disables background refresh
}

// LocateConfig selects how the user's position is found.
type LocateConfig struct {
	Provider   string        `koanf:"provider"` // static, http or geoip
	URL        string        `koanf:"url"`
	Timeout    time.Duration `koanf:"timeout"`
	GeoIPDB    string        `koanf:"geoip_db"`
	IP         string        `koanf:"ip"`
	Lat        float64       `koanf:"lat"`
	Lon        float64       `koanf:"lon"`
	MessageTTL time.Duration `koanf:"message_ttl"`
	FlatZoom   float64       `koanf:"flat_zoom"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Campaign Globe",
			Width:  1280,
			Height: 800,
			Mode:   "globe",
		},
		Map: MapConfig{
			MaxZoom:            12,
			FlatDefaultZoom:    1.7,
			FocusFill:          0.9,
			DragSensitivity:    75,
			WheelSensitivity:   0.002,
			TapSlop:            4,
			TransitionDuration: 1500 * time.Millisecond,
			ZoomStep:           1.4,
			ZoomDuration:       750 * time.Millisecond,
			AmbientSpeed:       0.05,
			ManualSpeed:        2.5,
			ResizeDebounce:     150 * time.Millisecond,
			LabelMinArea:       80,
		},
		Data: DataConfig{
			WorldPath:      "data/world.geojson",
			ActivitiesPath: "data/activities.json",
			CountriesPath:  "data/countries.json",
			RequestTimeout: 15 * time.Second,
		},
		Locate: LocateConfig{
			Provider:   "static",
			Timeout:    10 * time.Second,
			MessageTTL: 5 * time.Second,
			FlatZoom:   4,
		},
		Logging: logging.Config{
			Level:  "info",
			Format: "console",
		},
	}
}
