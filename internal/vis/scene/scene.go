// Package scene turns the engine state into a drawable frame: projected
// country shapes, labels, activity markers and the zoom readout.
package scene

import (
	"fmt"
	"math"

	"github.com/elektrokombinacija/campaign-globe/internal/campaign"
	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/projection"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/interact"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
)

// Sizes in screen pixels. Frames divide them by the flat zoom so they stay
// constant on screen.
const (
	MarkerRadius       = 5.0
	MarkerRadiusActive = 8.0
	MarkerHitRadius    = 24.0
	StrokeWidth        = 0.5
	StrokeWidthActive  = 1.5
	MinLabelArea       = 80.0
)

// Shape is one projected country.
type Shape struct {
	Name     string
	Region   campaign.Region
	Path     *projection.Path
	Stroke   float64
	Selected bool
	Hovered  bool
}

// Label is a country name placed at its centroid.
type Label struct {
	Text string
	At   projection.Point
	Size float64
}

// Marker is one activity pin.
type Marker struct {
	ID       string
	Type     string
	At       projection.Point
	Radius   float64
	Selected bool
	Hovered  bool
}

// Sphere outlines the globe disc.
type Sphere struct {
	Center projection.Point
	Radius float64
}

// Frame is everything drawn in one render tick. Coordinates are in
// projection space; Transform maps them to the screen.
type Frame struct {
	Mode      core.Mode
	Width     float64
	Height    float64
	Transform interact.Transform
	Sphere    *Sphere
	Shapes    []Shape
	Labels    []Label
	Markers   []Marker
	Zoom      string
}

// Options tunes frame building.
type Options struct {
	MinLabelArea float64
}

// Build projects world and the given activities through the engine's
// current camera.
func Build(e *state.Engine, world *core.Dataset, acts []core.Activity, opts Options) *Frame {
	if opts.MinLabelArea <= 0 {
		opts.MinLabelArea = MinLabelArea
	}
	proj := e.Projection()
	w, h := e.Size()
	fr := &Frame{
		Mode:      e.Mode(),
		Width:     w,
		Height:    h,
		Transform: e.Transform(),
		Zoom:      FormatZoom(e.ZoomLevel()),
	}
	if proj.Degenerate() {
		return fr
	}
	k := fr.Transform.K
	if k <= 0 {
		k = 1
	}

	if fr.Mode == core.ModeGlobe {
		fr.Sphere = &Sphere{Center: proj.Center(), Radius: proj.Scale()}
	}

	sel, hover := e.Selection(), e.Hover()
	if world != nil {
		for _, f := range world.Features {
			path := proj.PathFor(f.Geometry)
			if path.Empty() {
				continue
			}
			selected := sel.Kind == core.SelectCountry && sel.Key == f.Name
			s := Shape{
				Name:     f.Name,
				Region:   campaign.RegionOf(f),
				Path:     path,
				Stroke:   StrokeWidth / k,
				Selected: selected,
				Hovered:  hover.Kind == core.SelectCountry && hover.Key == f.Name,
			}
			if selected {
				s.Stroke = StrokeWidthActive / k
			}
			fr.Shapes = append(fr.Shapes, s)

			if l, ok := label(proj, f, path, opts.MinLabelArea, k); ok {
				fr.Labels = append(fr.Labels, l)
			}
		}
	}

	for _, a := range acts {
		pt, ok := proj.Project(a.Coordinates.Lon(), a.Coordinates.Lat())
		if !ok {
			continue
		}
		m := Marker{
			ID:       a.ID,
			Type:     a.Type,
			At:       pt,
			Selected: sel.Kind == core.SelectActivity && sel.Key == a.ID,
			Hovered:  hover.Kind == core.SelectActivity && hover.Key == a.ID,
		}
		m.Radius = MarkerRadius / k
		if m.Selected || m.Hovered {
			m.Radius = MarkerRadiusActive / k
		}
		fr.Markers = append(fr.Markers, m)
	}
	return fr
}

func label(proj *projection.Projection, f *core.Feature, path *projection.Path, minArea, k float64) (Label, bool) {
	area := path.Area()
	if area < minArea {
		return Label{}, false
	}
	var at projection.Point
	c, ok := f.Centroid()
	if ok {
		at, ok = proj.Project(c[0], c[1])
	}
	if !ok {
		b, _ := path.Bounds()
		at = b.Center()
	}
	size := math.Min(14, math.Max(8, math.Sqrt(area)/3)) / k
	return Label{Text: f.Name, At: at, Size: size}, true
}

// FormatZoom renders the zoom readout.
func FormatZoom(level float64) string {
	return fmt.Sprintf("%.1fx", level)
}

// ToMap converts a screen position to projection space.
func (fr *Frame) ToMap(x, y float64) projection.Point {
	mx, my := fr.Transform.Invert(x, y)
	return projection.Point{X: mx, Y: my}
}

// HitTest finds the entity under a screen position. Markers take priority
// over countries; the nearest marker within the hit radius wins.
func (fr *Frame) HitTest(proj *projection.Projection, world *core.Dataset, x, y float64) core.Selection {
	pt := fr.ToMap(x, y)
	k := fr.Transform.K
	if k <= 0 {
		k = 1
	}

	best, bestDist := -1, MarkerHitRadius/k
	for i, m := range fr.Markers {
		if d := math.Hypot(m.At.X-pt.X, m.At.Y-pt.Y); d <= bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		return core.ActivityRef(fr.Markers[best].ID)
	}

	if world == nil || proj == nil {
		return core.None
	}
	lon, lat, ok := proj.Invert(pt)
	if !ok {
		return core.None
	}
	if f := world.FeatureAt(lon, lat); f != nil {
		return core.Country(f.Name)
	}
	return core.None
}
