package projection

import (
	"math"
	"strconv"
	"strings"
)

// Ring is a closed sequence of screen points; the closing vertex is implied.
type Ring []Point

// Polygon is an outer ring followed by its holes.
type Polygon []Ring

// Path is a projected polygonal geometry.
type Path struct {
	Polygons []Polygon
	// Copies repeat flat-map polygons that spill past the antimeridian,
	// shifted by one world width so the overhang shows on the other edge.
	Copies []Polygon
}

// Bounds is a screen-space bounding box.
type Bounds struct {
	Min, Max Point
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Center returns the midpoint.
func (b Bounds) Center() Point {
	return Point{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// Empty reports whether the path has no drawable rings.
func (p *Path) Empty() bool {
	return p == nil || len(p.Polygons) == 0
}

// Rings calls fn for every ring, copies included.
func (p *Path) Rings(fn func(Ring)) {
	if p == nil {
		return
	}
	for _, set := range [][]Polygon{p.Polygons, p.Copies} {
		for _, poly := range set {
			for _, r := range poly {
				fn(r)
			}
		}
	}
}

// Area returns the enclosed area in square pixels, holes subtracted.
func (p *Path) Area() float64 {
	if p == nil {
		return 0
	}
	total := 0.0
	for _, poly := range p.Polygons {
		if len(poly) == 0 {
			continue
		}
		a := math.Abs(poly[0].signedArea())
		for _, hole := range poly[1:] {
			a -= math.Abs(hole.signedArea())
		}
		if a > 0 {
			total += a
		}
	}
	return total
}

// Bounds returns the bounding box of the primary polygons.
func (p *Path) Bounds() (Bounds, bool) {
	if p.Empty() {
		return Bounds{}, false
	}
	b := Bounds{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
	for _, poly := range p.Polygons {
		for _, r := range poly {
			for _, pt := range r {
				b.Min.X = math.Min(b.Min.X, pt.X)
				b.Min.Y = math.Min(b.Min.Y, pt.Y)
				b.Max.X = math.Max(b.Max.X, pt.X)
				b.Max.Y = math.Max(b.Max.Y, pt.Y)
			}
		}
	}
	if math.IsInf(b.Min.X, 0) {
		return Bounds{}, false
	}
	return b, true
}

// Contains reports whether pt falls inside the path using the even-odd rule.
func (p *Path) Contains(pt Point) bool {
	inside := false
	p.Rings(func(r Ring) {
		if r.contains(pt) {
			inside = !inside
		}
	})
	return inside
}

// String renders the path as SVG path data.
func (p *Path) String() string {
	var sb strings.Builder
	p.Rings(func(r Ring) {
		for i, pt := range r {
			if i == 0 {
				sb.WriteByte('M')
			} else {
				sb.WriteByte('L')
			}
			sb.WriteString(strconv.FormatFloat(pt.X, 'f', 2, 64))
			sb.WriteByte(',')
			sb.WriteString(strconv.FormatFloat(pt.Y, 'f', 2, 64))
		}
		if len(r) > 0 {
			sb.WriteByte('Z')
		}
	})
	return sb.String()
}

func (r Ring) signedArea() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a, b := r[i], r[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func (r Ring) contains(pt Point) bool {
	in := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r[i], r[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func (r Ring) shifted(dx float64) Ring {
	out := make(Ring, len(r))
	for i, pt := range r {
		out[i] = Point{pt.X + dx, pt.Y}
	}
	return out
}
