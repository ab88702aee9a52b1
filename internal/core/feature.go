package core

import (
	"sort"
	"strings"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// Feature is one country outline from the world dataset.
type Feature struct {
	ID       string
	Name     string
	ISO      string
	Geometry orb.Geometry // orb.Polygon or orb.MultiPolygon

	centroid    orb.Point
	hasCentroid bool
	shapes      []sphericalPolygon
}

// sphericalPolygon is one polygon on the sphere: an outer loop plus holes.
type sphericalPolygon struct {
	outer *s2.Loop
	holes []*s2.Loop
}

// NewFeature builds a feature and precomputes its spherical shape.
func NewFeature(id, name string, geom orb.Geometry) *Feature {
	f := &Feature{ID: id, Name: name, Geometry: geom}
	for _, poly := range Polygons(geom) {
		sp, ok := buildPolygon(poly)
		if ok {
			f.shapes = append(f.shapes, sp)
		}
	}
	f.centroid, f.hasCentroid = f.computeCentroid()
	return f
}

// Polygons flattens a polygonal geometry.
func Polygons(geom orb.Geometry) []orb.Polygon {
	switch g := geom.(type) {
	case orb.Polygon:
		return []orb.Polygon{g}
	case orb.MultiPolygon:
		return []orb.Polygon(g)
	case orb.Ring:
		return []orb.Polygon{{g}}
	default:
		return nil
	}
}

// Centroid returns the spherical centroid as (lon, lat).
// ok is false for geometries with no area.
func (f *Feature) Centroid() (orb.Point, bool) {
	return f.centroid, f.hasCentroid
}

// Bound returns the planar lon/lat bounding box.
func (f *Feature) Bound() orb.Bound {
	if f.Geometry == nil {
		return orb.Bound{}
	}
	return f.Geometry.Bound()
}

// Contains reports whether (lon, lat) falls inside the feature on the sphere.
func (f *Feature) Contains(lon, lat float64) bool {
	if !finite(lon) || !finite(lat) {
		return false
	}
	p := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	for _, sp := range f.shapes {
		if !sp.outer.ContainsPoint(p) {
			continue
		}
		inHole := false
		for _, h := range sp.holes {
			if h.ContainsPoint(p) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

func (f *Feature) computeCentroid() (orb.Point, bool) {
	if len(f.shapes) == 0 {
		return orb.Point{}, false
	}

	// Loop centroids are area weighted, so holes subtract.
	var sum s2.Point
	for _, sp := range f.shapes {
		sum.Vector = sum.Vector.Add(sp.outer.Centroid().Vector)
		for _, h := range sp.holes {
			sum.Vector = sum.Vector.Sub(h.Centroid().Vector)
		}
	}

	if sum.Norm() < 1e-15 {
		b := f.Bound()
		c := b.Center()
		return c, finite(c[0]) && finite(c[1])
	}

	ll := s2.LatLngFromPoint(sum)
	c := orb.Point{ll.Lng.Degrees(), ll.Lat.Degrees()}
	if !finite(c[0]) || !finite(c[1]) {
		return orb.Point{}, false
	}
	return c, true
}

func buildPolygon(poly orb.Polygon) (sphericalPolygon, bool) {
	if len(poly) == 0 {
		return sphericalPolygon{}, false
	}
	outer := buildLoop(poly[0])
	if outer == nil {
		return sphericalPolygon{}, false
	}
	sp := sphericalPolygon{outer: outer}
	for _, ring := range poly[1:] {
		if h := buildLoop(ring); h != nil {
			sp.holes = append(sp.holes, h)
		}
	}
	return sp, true
}

// buildLoop converts a GeoJSON ring into a normalized s2 loop.
// Rings with fewer than three distinct vertices yield nil.
func buildLoop(ring orb.Ring) *s2.Loop {
	pts := make([]s2.Point, 0, len(ring))
	for i, p := range ring {
		if !finite(p[0]) || !finite(p[1]) {
			return nil
		}
		if i > 0 && p == ring[i-1] {
			continue
		}
		pts = append(pts, s2.PointFromLatLng(s2.LatLngFromDegrees(p[1], p[0])))
	}
	if n := len(pts); n > 1 && pts[0].ApproxEqual(pts[n-1]) {
		pts = pts[:n-1]
	}
	if len(pts) < 3 {
		return nil
	}
	loop := s2.LoopFromPoints(pts)
	loop.Normalize()
	return loop
}

// Dataset is the loaded set of country features.
type Dataset struct {
	Features []*Feature
	byName   map[string]*Feature
}

// NewDataset indexes features by name.
func NewDataset(features []*Feature) *Dataset {
	d := &Dataset{
		Features: features,
		byName:   make(map[string]*Feature, len(features)),
	}
	for _, f := range features {
		if f.Name != "" {
			d.byName[f.Name] = f
		}
	}
	return d
}

// FeatureByName returns the feature with the given name, or nil.
func (d *Dataset) FeatureByName(name string) *Feature {
	if d == nil {
		return nil
	}
	return d.byName[name]
}

// FeatureAt returns the first feature containing (lon, lat), or nil.
func (d *Dataset) FeatureAt(lon, lat float64) *Feature {
	if d == nil {
		return nil
	}
	for _, f := range d.Features {
		b := f.Bound()
		// Bounding boxes of antimeridian-crossing shapes span the globe, so this only rejects.
		if lat < b.Min[1]-1e-9 || lat > b.Max[1]+1e-9 {
			continue
		}
		if f.Contains(lon, lat) {
			return f
		}
	}
	return nil
}

// Len returns the number of features.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Features)
}

// AngularDistance returns the great-circle distance in degrees.
func AngularDistance(lon1, lat1, lon2, lat2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Degrees()
}

// Search returns up to limit features whose name contains query,
// case-insensitively, in alphabetical order. Queries shorter than two
// characters match nothing.
func (d *Dataset) Search(query string, limit int) []*Feature {
	if d == nil || len([]rune(query)) < 2 {
		return nil
	}
	q := strings.ToLower(query)
	var out []*Feature
	for _, f := range d.Features {
		if strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
