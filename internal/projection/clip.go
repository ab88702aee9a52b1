package projection

import (
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r3"
)

// horizonStep is the angular spacing of points inserted along the globe rim.
const horizonStep = 4 * radians

func (p *Projection) appendGlobePolygon(path *Path, poly orb.Polygon) {
	var out Polygon
	for i, ring := range poly {
		r := p.globeRing(ring)
		if len(r) < 3 {
			if i == 0 {
				return
			}
			continue
		}
		out = append(out, r)
	}
	if len(out) > 0 {
		path.Polygons = append(path.Polygons, out)
	}
}

// globeRing clips a ring against the visible hemisphere (X > 0 after rotation).
// Stretches behind the globe are replaced by an arc along the horizon.
func (p *Projection) globeRing(ring orb.Ring) Ring {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	if n < 3 {
		return nil
	}

	vs := make([]r3.Vec, n)
	start := -1
	for i := 0; i < n; i++ {
		vs[i] = p.rot.vector(ring[i][0], ring[i][1])
		if start < 0 && vs[i].X > 0 {
			start = i
		}
	}
	if start < 0 {
		return nil
	}

	// Starting on a visible vertex guarantees every exit is followed by an entry.
	out := make([]r3.Vec, 0, n)
	var exit r3.Vec
	for j := 0; j < n; j++ {
		a := vs[(start+j)%n]
		b := vs[(start+j+1)%n]
		aIn, bIn := a.X > 0, b.X > 0
		if aIn {
			out = append(out, a)
		}
		switch {
		case aIn && !bIn:
			exit = horizonCrossing(a, b)
			out = append(out, exit)
		case !aIn && bIn:
			entry := horizonCrossing(a, b)
			out = append(out, horizonArc(exit, entry)...)
			out = append(out, entry)
		}
	}

	r := make(Ring, len(out))
	for i, v := range out {
		r[i] = Point{p.tx + p.scale*v.Y, p.ty - p.scale*v.Z}
	}
	return r
}

// horizonCrossing returns where the great circle through a and b meets X = 0.
// a and b must lie on opposite sides of the plane.
func horizonCrossing(a, b r3.Vec) r3.Vec {
	v := r3.Add(r3.Scale(math.Abs(b.X), a), r3.Scale(math.Abs(a.X), b))
	if r3.Norm(v) == 0 {
		return r3.Vec{Y: a.Y, Z: a.Z}
	}
	v = r3.Unit(v)
	v.X = 0
	return v
}

// horizonArc returns points strictly between from and to along the shorter
// arc of the horizon circle.
func horizonArc(from, to r3.Vec) []r3.Vec {
	t0 := math.Atan2(from.Z, from.Y)
	t1 := math.Atan2(to.Z, to.Y)
	d := wrapRadians(t1 - t0)
	steps := int(math.Abs(d) / horizonStep)
	if steps < 1 {
		return nil
	}
	out := make([]r3.Vec, 0, steps)
	for i := 1; i <= steps; i++ {
		t := t0 + d*float64(i)/float64(steps+1)
		out = append(out, r3.Vec{Y: math.Cos(t), Z: math.Sin(t)})
	}
	return out
}

func (p *Projection) appendFlatPolygon(path *Path, poly orb.Polygon) {
	var primary Polygon
	minL, maxL := math.Inf(1), math.Inf(-1)
	for i, ring := range poly {
		r, lo, hi := p.flatRing(ring)
		if len(r) < 3 {
			if i == 0 {
				return
			}
			continue
		}
		primary = append(primary, r)
		minL = math.Min(minL, lo)
		maxL = math.Max(maxL, hi)
	}
	if len(primary) == 0 {
		return
	}
	path.Polygons = append(path.Polygons, primary)

	world := 2 * math.Pi * p.scale
	if minL < -math.Pi {
		path.Copies = append(path.Copies, shiftPolygon(primary, world))
	}
	if maxL > math.Pi {
		path.Copies = append(path.Copies, shiftPolygon(primary, -world))
	}
}

// flatRing projects a ring with longitudes unwrapped so edges never jump
// across the antimeridian. Rings that wind around a pole are closed along
// the map's top or bottom edge. It returns the unwrapped longitude range.
func (p *Projection) flatRing(ring orb.Ring) (Ring, float64, float64) {
	n := len(ring)
	if n < 3 {
		return nil, 0, 0
	}

	lambdas := make([]float64, n)
	phis := make([]float64, n)
	offset := 0.0
	latSum := 0.0
	for i, pt := range ring {
		l, f := p.rot.forward(pt[0]*radians, pt[1]*radians)
		if i > 0 {
			prev := lambdas[i-1] - offset
			switch d := l - prev; {
			case d > math.Pi:
				offset -= 2 * math.Pi
			case d < -math.Pi:
				offset += 2 * math.Pi
			}
		}
		lambdas[i] = l + offset
		phis[i] = f
		latSum += f
	}

	if ring[0] != ring[n-1] {
		// Close implicitly so the winding check sees the final edge.
		l, _ := p.rot.forward(ring[0][0]*radians, ring[0][1]*radians)
		last := lambdas[n-1] - offset
		d := l - last
		if d > math.Pi {
			offset -= 2 * math.Pi
		} else if d < -math.Pi {
			offset += 2 * math.Pi
		}
		lambdas = append(lambdas, l+offset)
		phis = append(phis, phis[0])
	}

	winding := lambdas[len(lambdas)-1] - lambdas[0]
	if math.Abs(winding) > math.Pi {
		pole := math.Pi / 2
		if latSum < 0 {
			pole = -pole
		}
		lambdas = append(lambdas, lambdas[len(lambdas)-1], lambdas[0])
		phis = append(phis, pole, pole)
	}

	r := make(Ring, 0, len(lambdas))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range lambdas {
		lo = math.Min(lo, lambdas[i])
		hi = math.Max(hi, lambdas[i])
		r = append(r, Point{p.tx + p.scale*lambdas[i], p.ty - p.scale*phis[i]})
	}
	return r, lo, hi
}

func shiftPolygon(poly Polygon, dx float64) Polygon {
	out := make(Polygon, len(poly))
	for i, r := range poly {
		out[i] = r.shifted(dx)
	}
	return out
}
