package projection

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

const (
	degrees = 180 / math.Pi
	radians = math.Pi / 180
)

// rotator applies a yaw/pitch/roll rotation to spherical coordinates.
// Yaw is applied first as a longitude shift, then pitch and roll rotate
// the sphere about the y and x axes.
type rotator struct {
	dLambda              float64
	cosDPhi, sinDPhi     float64
	cosDGamma, sinDGamma float64
	tilted               bool
}

func newRotator(r core.Rotation) rotator {
	dPhi := r.Pitch * radians
	dGamma := r.Roll * radians
	return rotator{
		dLambda:   math.Mod(r.Yaw*radians, 2*math.Pi),
		cosDPhi:   math.Cos(dPhi),
		sinDPhi:   math.Sin(dPhi),
		cosDGamma: math.Cos(dGamma),
		sinDGamma: math.Sin(dGamma),
		tilted:    dPhi != 0 || dGamma != 0,
	}
}

// forward rotates (lambda, phi) in radians.
func (r rotator) forward(lambda, phi float64) (float64, float64) {
	lambda = wrapRadians(lambda + r.dLambda)
	if !r.tilted {
		return lambda, phi
	}
	v := cartesian(lambda, phi)
	k := v.Z*r.cosDPhi + v.X*r.sinDPhi
	return math.Atan2(v.Y*r.cosDGamma-k*r.sinDGamma, v.X*r.cosDPhi-v.Z*r.sinDPhi),
		asin(k*r.cosDGamma + v.Y*r.sinDGamma)
}

// inverse undoes forward.
func (r rotator) inverse(lambda, phi float64) (float64, float64) {
	if r.tilted {
		v := cartesian(lambda, phi)
		k := v.Z*r.cosDGamma - v.Y*r.sinDGamma
		lambda = math.Atan2(v.Y*r.cosDGamma+v.Z*r.sinDGamma, v.X*r.cosDPhi+k*r.sinDPhi)
		phi = asin(k*r.cosDPhi - v.X*r.sinDPhi)
	}
	return wrapRadians(lambda - r.dLambda), phi
}

// vector returns the rotated unit vector for a lon/lat in degrees.
// The view direction is +X, so X > 0 is the visible hemisphere.
func (r rotator) vector(lon, lat float64) r3.Vec {
	lambda, phi := r.forward(lon*radians, lat*radians)
	return cartesian(lambda, phi)
}

func cartesian(lambda, phi float64) r3.Vec {
	cosPhi := math.Cos(phi)
	return r3.Vec{X: math.Cos(lambda) * cosPhi, Y: math.Sin(lambda) * cosPhi, Z: math.Sin(phi)}
}

func spherical(v r3.Vec) (lambda, phi float64) {
	return math.Atan2(v.Y, v.X), asin(v.Z)
}

func wrapRadians(a float64) float64 {
	if a > math.Pi {
		return a - 2*math.Pi
	}
	if a < -math.Pi {
		return a + 2*math.Pi
	}
	return a
}

func asin(x float64) float64 {
	if x > 1 {
		return math.Pi / 2
	}
	if x < -1 {
		return -math.Pi / 2
	}
	return math.Asin(x)
}
