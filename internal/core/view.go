// Package core defines domain models for the campaign globe.
package core

import "math"

// Mode selects which projection the map is drawn with.
type Mode int

const (
	ModeGlobe Mode = iota // Orthographic, hemisphere clipped
	ModeFlat              // Equirectangular, zoom/pan transform
)

func (m Mode) String() string {
	switch m {
	case ModeGlobe:
		return "globe"
	case ModeFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// ParseMode maps a config or keyboard name onto a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "globe", "3d":
		return ModeGlobe, true
	case "flat", "map", "2d":
		return ModeFlat, true
	}
	return ModeGlobe, false
}

// Rotation is a projection rotation in degrees.
type Rotation struct {
	Yaw   float64 // Longitude shift
	Pitch float64 // Latitude tilt
	Roll  float64
}

// IsFinite reports whether every component is a real number.
func (r Rotation) IsFinite() bool {
	return finite(r.Yaw) && finite(r.Pitch) && finite(r.Roll)
}

// Sanitized returns the rotation allowed in mode m.
// Flat mode only ever carries yaw.
func (r Rotation) Sanitized(m Mode) Rotation {
	if m == ModeFlat {
		return Rotation{Yaw: r.Yaw}
	}
	return r
}

// Normalized wraps yaw into (-180, 180] and clamps pitch to [-90, 90].
func (r Rotation) Normalized() Rotation {
	r.Yaw = WrapDegrees(r.Yaw)
	r.Pitch = math.Max(-90, math.Min(90, r.Pitch))
	return r
}

// WrapDegrees wraps an angle into (-180, 180].
func WrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

// ManualDirection is the state of the hold-to-rotate controls.
type ManualDirection int

const (
	RotateNone ManualDirection = iota
	RotateLeft
	RotateRight
)

// Sign returns the yaw direction: left spins the globe eastward.
func (d ManualDirection) Sign() float64 {
	switch d {
	case RotateLeft:
		return 1
	case RotateRight:
		return -1
	default:
		return 0
	}
}

func (d ManualDirection) String() string {
	return [...]string{"none", "left", "right"}[d]
}

// SelectionKind tells what a Selection refers to.
type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectCountry
	SelectActivity
)

// Selection identifies a hovered or selected map entity.
// Key is the country name or the activity ID.
type Selection struct {
	Kind SelectionKind
	Key  string
}

// None is the empty selection.
var None = Selection{}

// IsZero reports whether nothing is referenced.
func (s Selection) IsZero() bool {
	return s.Kind == SelectNone
}

// Country returns a selection for the named country.
func Country(name string) Selection {
	return Selection{Kind: SelectCountry, Key: name}
}

// ActivityRef returns a selection for the activity with the given ID.
func ActivityRef(id string) Selection {
	return Selection{Kind: SelectActivity, Key: id}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
