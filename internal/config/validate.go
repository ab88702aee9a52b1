package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks value ranges and cross-field rules.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		fail("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, ok := core.ParseMode(c.Window.Mode); !ok {
		fail("window.mode %q", c.Window.Mode)
	}

	m := c.Map
	if m.MaxZoom < 1 {
		fail("map.max_zoom %v below 1", m.MaxZoom)
	}
	if m.FlatDefaultZoom < 1 || m.FlatDefaultZoom > m.MaxZoom {
		fail("map.flat_default_zoom %v outside [1, max_zoom]", m.FlatDefaultZoom)
	}
	if m.FocusFill <= 0 || m.FocusFill > 1 {
		fail("map.focus_fill %v outside (0, 1]", m.FocusFill)
	}
	if m.ZoomStep <= 1 {
		fail("map.zoom_step %v must exceed 1", m.ZoomStep)
	}
	for name, v := range map[string]float64{
		"map.drag_sensitivity":  m.DragSensitivity,
		"map.wheel_sensitivity": m.WheelSensitivity,
		"map.ambient_speed":     m.AmbientSpeed,
		"map.manual_speed":      m.ManualSpeed,
	} {
		if v <= 0 {
			fail("%s %v must be positive", name, v)
		}
	}
	if m.TapSlop < 0 || m.LabelMinArea < 0 {
		fail("map.tap_slop and map.label_min_area must not be negative")
	}
	if m.TransitionDuration <= 0 || m.ZoomDuration <= 0 || m.ResizeDebounce <= 0 {
		fail("map durations must be positive")
	}

	d := c.Data
	if d.WorldPath == "" {
		fail("data.world_path is required")
	}
	if d.ActivitiesURL != "" {
		if u, err := url.Parse(d.ActivitiesURL); err != nil || u.Scheme == "" || u.Host == "" {
			fail("data.activities_url %q", d.ActivitiesURL)
		}
	}
	if d.RequestTimeout <= 0 || d.RefreshInterval < 0 {
		fail("data timeouts must be positive")
	}

	l := c.Locate
	switch l.Provider {
	case "static":
		if l.Lat < -90 || l.Lat > 90 || l.Lon < -180 || l.Lon > 180 {
			fail("locate position (%v, %v) out of range", l.Lat, l.Lon)
		}
	case "http":
		if l.URL == "" {
			fail("locate.url is required for the http provider")
		}
	case "geoip":
		if l.GeoIPDB == "" {
			fail("locate.geoip_db is required for the geoip provider")
		}
	default:
		fail("locate.provider %q", l.Provider)
	}
	if l.Timeout <= 0 || l.MessageTTL <= 0 {
		fail("locate durations must be positive")
	}
	if l.FlatZoom < 1 || l.FlatZoom > m.MaxZoom {
		fail("locate.flat_zoom %v outside [1, max_zoom]", l.FlatZoom)
	}

	return errors.Join(errs...)
}
