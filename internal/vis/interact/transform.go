// Package interact handles user interactions like pan, zoom, and rotation.
package interact

import "math"

// Transform is a uniform zoom plus translation: screen = world*K + (X, Y).
type Transform struct {
	X, Y float64 // Translation in screen pixels
	K    float64 // Zoom factor (1.0 = 100%)
}

// Identity is the transform that leaves coordinates unchanged.
var Identity = Transform{K: 1}

// CenteredZoom returns the transform that zooms by k about the viewport centre.
func CenteredZoom(width, height, k float64) Transform {
	return Transform{X: width / 2 * (1 - k), Y: height / 2 * (1 - k), K: k}
}

// Apply converts world coordinates to screen coordinates.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.K + t.X, y*t.K + t.Y
}

// Invert converts screen coordinates to world coordinates.
func (t Transform) Invert(x, y float64) (float64, float64) {
	return (x - t.X) / t.K, (y - t.Y) / t.K
}

// IsFinite reports whether every component is a real number and K is positive.
func (t Transform) IsFinite() bool {
	return finite(t.X) && finite(t.Y) && finite(t.K) && t.K > 0
}

// Pan shifts the transform by a screen delta.
func (t Transform) Pan(dx, dy float64) Transform {
	t.X += dx
	t.Y += dy
	return t
}

// ZoomAbout scales to k while keeping the world point under (cx, cy) fixed.
func (t Transform) ZoomAbout(k, cx, cy float64) Transform {
	wx, wy := t.Invert(cx, cy)
	return Transform{X: cx - wx*k, Y: cy - wy*k, K: k}
}

// CenterOn returns a transform at zoom k that puts world point (x, y) at
// the viewport centre.
func CenterOn(x, y, k, width, height float64) Transform {
	return Transform{X: width/2 - x*k, Y: height/2 - y*k, K: k}
}

// FitBounds returns the zoom that fits a world box into fill of the viewport.
// ok is false when the box has no width or no height.
func FitBounds(minX, minY, maxX, maxY, width, height, fill float64) (k float64, ok bool) {
	dx := maxX - minX
	dy := maxY - minY
	if dx <= 0 || dy <= 0 || width <= 0 || height <= 0 {
		return 0, false
	}
	return fill / math.Max(dx/width, dy/height), true
}

// Lerp interpolates linearly between two transforms.
func Lerp(a, b Transform, t float64) Transform {
	return Transform{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		K: a.K + (b.K-a.K)*t,
	}
}

// Extent is an axis-aligned rectangle in world or screen units.
type Extent struct {
	MinX, MinY, MaxX, MaxY float64
}

// Constrain adjusts the translation so the translate extent keeps covering
// the viewport. When the extent is smaller than the viewport on an axis,
// it is centred on that axis instead.
func Constrain(t Transform, viewport, translate Extent) Transform {
	dx0 := (viewport.MinX-t.X)/t.K - translate.MinX
	dx1 := (viewport.MaxX-t.X)/t.K - translate.MaxX
	dy0 := (viewport.MinY-t.Y)/t.K - translate.MinY
	dy1 := (viewport.MaxY-t.Y)/t.K - translate.MaxY

	t.X += t.K * correction(dx0, dx1)
	t.Y += t.K * correction(dy0, dy1)
	return t
}

// correction returns the world-space translation along one axis.
func correction(d0, d1 float64) float64 {
	if d1 > d0 {
		return (d0 + d1) / 2
	}
	if v := math.Min(0, d0); v != 0 {
		return v
	}
	return math.Max(0, d1)
}

// ClampZoom bounds k to [min, max].
func ClampZoom(k, min, max float64) float64 {
	return math.Max(min, math.Min(max, k))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
