package interact

import (
	"math"
	"testing"
)

func TestTransformApplyInvert(t *testing.T) {
	tr := Transform{X: 30, Y: -20, K: 2.5}
	sx, sy := tr.Apply(10, 4)
	if sx != 55 || sy != -10 {
		t.Errorf("Apply = (%v, %v)", sx, sy)
	}
	wx, wy := tr.Invert(sx, sy)
	if math.Abs(wx-10) > 1e-12 || math.Abs(wy-4) > 1e-12 {
		t.Errorf("Invert = (%v, %v)", wx, wy)
	}
}

func TestCenteredZoom(t *testing.T) {
	tr := CenteredZoom(800, 600, 1.7)
	if math.Abs(tr.X-(-280)) > 1e-9 || math.Abs(tr.Y-(-210)) > 1e-9 || tr.K != 1.7 {
		t.Errorf("CenteredZoom = %+v", tr)
	}
	// The viewport centre stays put.
	x, y := tr.Apply(400, 300)
	if math.Abs(x-400) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Errorf("centre moved to (%v, %v)", x, y)
	}
}

func TestZoomAboutKeepsAnchor(t *testing.T) {
	tr := Transform{X: -100, Y: -50, K: 2}
	wx, wy := tr.Invert(250, 175)

	next := tr.ZoomAbout(5, 250, 175)
	sx, sy := next.Apply(wx, wy)
	if math.Abs(sx-250) > 1e-9 || math.Abs(sy-175) > 1e-9 {
		t.Errorf("anchor moved to (%v, %v)", sx, sy)
	}
}

func TestConstrain(t *testing.T) {
	view := Extent{0, 0, 800, 600}

	tests := []struct {
		name  string
		in    Transform
		wantX float64
		wantY float64
	}{
		{"inside", Transform{X: -100, Y: -100, K: 2}, -100, -100},
		{"too far right", Transform{X: 10000, Y: 0, K: 1.7}, 0, 0},
		{"too far left", Transform{X: -10000, Y: 0, K: 2}, -800, 0},
		{"too far down", Transform{X: 0, Y: -5000, K: 3}, 0, -1200},
		{"unit zoom centred", Transform{X: 50, Y: -40, K: 1}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Constrain(tt.in, view, view)
			if math.Abs(got.X-tt.wantX) > 1e-9 || math.Abs(got.Y-tt.wantY) > 1e-9 {
				t.Errorf("Constrain(%+v) = %+v, want X=%v Y=%v", tt.in, got, tt.wantX, tt.wantY)
			}
			if got.K != tt.in.K {
				t.Errorf("Constrain changed K to %v", got.K)
			}
		})
	}
}

func TestConstrainSmallExtentCentres(t *testing.T) {
	// Extent narrower than the viewport at this zoom gets centred.
	got := Constrain(Transform{X: 0, Y: 0, K: 0.5}, Extent{0, 0, 800, 600}, Extent{0, 0, 800, 600})
	if math.Abs(got.X-200) > 1e-9 || math.Abs(got.Y-150) > 1e-9 {
		t.Errorf("Constrain = %+v, want centred at (200,150)", got)
	}
}

func TestFitBounds(t *testing.T) {
	k, ok := FitBounds(0, 0, 80, 30, 800, 600, 0.9)
	if !ok || math.Abs(k-9) > 1e-9 {
		t.Errorf("FitBounds = %v, %v; want 9", k, ok)
	}
	if _, ok := FitBounds(5, 5, 5, 10, 800, 600, 0.9); ok {
		t.Error("zero-width bounds should fail")
	}
}

func TestLerp(t *testing.T) {
	a := Transform{X: 0, Y: 10, K: 1}
	b := Transform{X: 100, Y: 30, K: 3}
	got := Lerp(a, b, 0.5)
	if got != (Transform{X: 50, Y: 20, K: 2}) {
		t.Errorf("Lerp = %+v", got)
	}
	if Lerp(a, b, 1) != b {
		t.Error("Lerp at 1 should equal end")
	}
}

func TestTransformIsFinite(t *testing.T) {
	if !Identity.IsFinite() {
		t.Error("identity should be finite")
	}
	if (Transform{X: math.NaN(), K: 1}).IsFinite() || (Transform{K: 0}).IsFinite() {
		t.Error("invalid transform reported finite")
	}
}
