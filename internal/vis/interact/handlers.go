package interact

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// handler is the per-mode gesture interpretation.
type handler interface {
	drag(t Target, d r2.Vec) bool
	pinch(t Target, ratio float64, from, to r2.Vec) bool
	wheel(t Target, delta float64, at r2.Vec) bool
}

// globeHandler rotates the sphere on drag and scales it on pinch.
type globeHandler struct {
	sensitivity float64
}

func (h globeHandler) drag(t Target, d r2.Vec) bool {
	if d.X == 0 && d.Y == 0 {
		return false
	}
	k := t.Scale()
	if k <= 0 {
		return false
	}
	// Slower rotation when zoomed in keeps the ground under the finger.
	s := h.sensitivity / k
	r := t.Rotation()
	r.Yaw += d.X * s
	r.Pitch = math.Max(-90, math.Min(90, r.Pitch-d.Y*s))
	if !r.IsFinite() {
		return false
	}
	return t.SetRotation(r)
}

func (h globeHandler) pinch(t Target, ratio float64, _, _ r2.Vec) bool {
	if ratio == 1 || !finite(ratio) {
		return false
	}
	k := t.Scale()
	lo, hi := t.ScaleBounds()
	next := ClampZoom(k*ratio, lo, hi)
	if next == k {
		return false
	}
	return t.SetScale(next)
}

// Wheel zoom is not offered on the globe.
func (globeHandler) wheel(Target, float64, r2.Vec) bool { return false }

// flatHandler pans and zooms the map transform.
type flatHandler struct {
	wheelSensitivity float64
}

func (flatHandler) drag(t Target, d r2.Vec) bool {
	if d.X == 0 && d.Y == 0 {
		return false
	}
	return t.SetTransform(t.Transform().Pan(d.X, d.Y))
}

// pinch zooms about the finger midpoint and follows its movement.
func (flatHandler) pinch(t Target, ratio float64, from, to r2.Vec) bool {
	if !finite(ratio) || ratio <= 0 {
		return false
	}
	tr := t.Transform()
	lo, hi := t.ZoomBounds()
	k := ClampZoom(tr.K*ratio, lo, hi)
	wx, wy := tr.Invert(from.X, from.Y)
	next := Transform{X: to.X - wx*k, Y: to.Y - wy*k, K: k}
	if next == tr {
		return false
	}
	return t.SetTransform(next)
}

func (h flatHandler) wheel(t Target, delta float64, at r2.Vec) bool {
	tr := t.Transform()
	lo, hi := t.ZoomBounds()
	k := ClampZoom(tr.K*math.Pow(2, -delta*h.wheelSensitivity), lo, hi)
	if k == tr.K {
		return false
	}
	t.Interrupt()
	return t.SetTransform(tr.ZoomAbout(k, at.X, at.Y))
}
