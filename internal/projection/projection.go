// Package projection adapts the orthographic globe and the equirectangular
// flat map to one interface: project, invert, and polygon paths.
package projection

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// GlobeScaleDivisor sets the globe radius relative to the viewport.
const GlobeScaleDivisor = 2.5

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

// Projection maps geographic coordinates onto the viewport for one mode.
// It is rebuilt whenever the mode or the viewport size changes.
type Projection struct {
	mode          core.Mode
	width, height float64
	rotation      core.Rotation
	rot           rotator
	base          float64
	scale         float64
	tx, ty        float64
}

// New builds a projection for mode sized to the viewport, carrying over rotation.
// A zero or negative viewport yields a degenerate projection whose
// inversions always fail.
func New(mode core.Mode, width, height float64, rotation core.Rotation) *Projection {
	p := &Projection{
		mode:   mode,
		width:  width,
		height: height,
		tx:     width / 2,
		ty:     height / 2,
	}
	p.base = BaseScale(mode, width, height)
	p.scale = p.base
	if !rotation.IsFinite() {
		rotation = core.Rotation{}
	}
	p.rotation = rotation.Sanitized(mode)
	p.rot = newRotator(p.rotation)
	return p
}

// BaseScale returns the scale a fresh projection starts at.
func BaseScale(mode core.Mode, width, height float64) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	if mode == core.ModeFlat {
		return width / (2 * math.Pi)
	}
	return math.Min(width, height) / GlobeScaleDivisor
}

// Mode returns the projection kind.
func (p *Projection) Mode() core.Mode { return p.mode }

// Size returns the viewport dimensions.
func (p *Projection) Size() (width, height float64) { return p.width, p.height }

// Degenerate reports whether the viewport has no area.
func (p *Projection) Degenerate() bool { return p.width <= 0 || p.height <= 0 }

// BaseScale returns the scale the projection was built with.
func (p *Projection) BaseScale() float64 { return p.base }

// Scale returns the current scale.
func (p *Projection) Scale() float64 { return p.scale }

// Center returns the screen position of the projection's origin.
func (p *Projection) Center() Point { return Point{p.tx, p.ty} }

// Rotation returns the current rotation.
func (p *Projection) Rotation() core.Rotation { return p.rotation }

// ClipAngle returns the clip radius in degrees, or 0 when the projection
// does not clip.
func (p *Projection) ClipAngle() float64 {
	if p.mode == core.ModeGlobe {
		return 90
	}
	return 0
}

// SetScale sets the scale. Non-finite or negative values are refused.
func (p *Projection) SetScale(k float64) bool {
	if math.IsNaN(k) || math.IsInf(k, 0) || k < 0 {
		return false
	}
	p.scale = k
	return true
}

// SetRotation sets the rotation, dropping pitch and roll in flat mode.
// Non-finite rotations are refused.
func (p *Projection) SetRotation(r core.Rotation) bool {
	if !r.IsFinite() {
		return false
	}
	p.rotation = r.Sanitized(p.mode)
	p.rot = newRotator(p.rotation)
	return true
}

// Project maps (lon, lat) in degrees to screen coordinates.
// ok is false for invalid input and, on the globe, for the hidden hemisphere.
func (p *Projection) Project(lon, lat float64) (Point, bool) {
	if !finite(lon) || !finite(lat) {
		return Point{}, false
	}
	if p.mode == core.ModeGlobe {
		v := p.rot.vector(lon, lat)
		if v.X <= 0 {
			return Point{}, false
		}
		return Point{p.tx + p.scale*v.Y, p.ty - p.scale*v.Z}, true
	}
	lambda, phi := p.rot.forward(lon*radians, lat*radians)
	return Point{p.tx + p.scale*lambda, p.ty - p.scale*phi}, true
}

// Invert maps a screen point back to (lon, lat) in degrees.
// ok is false off the globe disk, off the flat map, or on a degenerate projection.
func (p *Projection) Invert(pt Point) (lon, lat float64, ok bool) {
	if p.Degenerate() || p.scale <= 0 || !finite(pt.X) || !finite(pt.Y) {
		return 0, 0, false
	}
	x := (pt.X - p.tx) / p.scale
	y := (p.ty - pt.Y) / p.scale

	var lambda, phi float64
	if p.mode == core.ModeGlobe {
		z := math.Hypot(x, y)
		if z > 1 {
			return 0, 0, false
		}
		c := asin(z)
		sc, cc := math.Sin(c), math.Cos(c)
		lambda = math.Atan2(x*sc, z*cc)
		if z > 0 {
			phi = asin(y * sc / z)
		}
	} else {
		if math.Abs(x) > math.Pi || math.Abs(y) > math.Pi/2 {
			return 0, 0, false
		}
		lambda, phi = x, y
	}

	lambda, phi = p.rot.inverse(lambda, phi)
	return lambda * degrees, phi * degrees, true
}

// Visible reports whether (lon, lat) would be drawn.
func (p *Projection) Visible(lon, lat float64) bool {
	_, ok := p.Project(lon, lat)
	return ok
}

// PathFor projects a polygonal geometry. It returns nil when nothing is visible.
func (p *Projection) PathFor(geom orb.Geometry) *Path {
	polys := core.Polygons(geom)
	if len(polys) == 0 {
		return nil
	}
	path := &Path{}
	for _, poly := range polys {
		if p.mode == core.ModeGlobe {
			p.appendGlobePolygon(path, poly)
		} else {
			p.appendFlatPolygon(path, poly)
		}
	}
	if path.Empty() {
		return nil
	}
	return path
}

// AreaOf returns the projected area of geom in square pixels.
func (p *Projection) AreaOf(geom orb.Geometry) float64 {
	return p.PathFor(geom).Area()
}

// BoundsOf returns the projected bounding box of geom.
func (p *Projection) BoundsOf(geom orb.Geometry) (Bounds, bool) {
	return p.PathFor(geom).Bounds()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
