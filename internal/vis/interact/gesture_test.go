package interact

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// fakeTarget is a minimal camera with the same bounds rules as the engine.
type fakeTarget struct {
	mode        core.Mode
	rot         core.Rotation
	scale       float64
	base        float64
	tr          Transform
	w, h        float64
	dragging    bool
	begins      int
	ends        int
	interrupted int
}

func newFakeTarget(mode core.Mode) *fakeTarget {
	f := &fakeTarget{mode: mode, scale: 240, base: 240, w: 800, h: 600, tr: Identity}
	if mode == core.ModeFlat {
		f.tr = CenteredZoom(f.w, f.h, 1.7)
	}
	return f
}

func (f *fakeTarget) Mode() core.Mode         { return f.mode }
func (f *fakeTarget) Rotation() core.Rotation { return f.rot }
func (f *fakeTarget) Scale() float64          { return f.scale }
func (f *fakeTarget) Transform() Transform    { return f.tr }
func (f *fakeTarget) ScaleBounds() (float64, float64) {
	return f.base, f.base * 12
}
func (f *fakeTarget) ZoomBounds() (float64, float64) { return 1, 12 }

func (f *fakeTarget) SetRotation(r core.Rotation) bool {
	r = r.Sanitized(f.mode)
	if r == f.rot {
		return false
	}
	f.rot = r
	return true
}

func (f *fakeTarget) SetScale(k float64) bool {
	k = ClampZoom(k, f.base, f.base*12)
	if k == f.scale {
		return false
	}
	f.scale = k
	return true
}

func (f *fakeTarget) SetTransform(t Transform) bool {
	t.K = ClampZoom(t.K, 1, 12)
	view := Extent{0, 0, f.w, f.h}
	t = Constrain(t, view, view)
	if t == f.tr {
		return false
	}
	f.tr = t
	return true
}

func (f *fakeTarget) BeginInteraction() { f.dragging = true; f.begins++ }
func (f *fakeTarget) EndInteraction()   { f.dragging = false; f.ends++ }
func (f *fakeTarget) Interrupt()        { f.interrupted++ }

func newTestRouter(tgt *fakeTarget) *Router {
	r := NewRouter(tgt, DefaultConfig(), zerolog.Nop())
	r.Attach(tgt.mode)
	return r
}

func mouse(kind Kind, x, y float64) Event {
	return Event{Kind: kind, Source: SourceMouse, ID: 0, Position: r2.Vec{X: x, Y: y}}
}

func touch(kind Kind, id int, x, y float64) Event {
	return Event{Kind: kind, Source: SourceTouch, ID: id, Position: r2.Vec{X: x, Y: y}}
}

func TestGlobeDragRotates(t *testing.T) {
	tgt := newFakeTarget(core.ModeGlobe)
	r := newTestRouter(tgt)

	r.Handle(mouse(Press, 100, 100))
	if r.Phase() != PhaseDragging || !tgt.dragging {
		t.Fatalf("phase = %v, dragging = %v", r.Phase(), tgt.dragging)
	}

	res := r.Handle(mouse(Move, 124, 112))
	if !res.Changed {
		t.Fatal("drag should change rotation")
	}
	want := core.Rotation{Yaw: 24 * 75 / 240.0, Pitch: -12 * 75 / 240.0}
	if math.Abs(tgt.rot.Yaw-want.Yaw) > 1e-9 || math.Abs(tgt.rot.Pitch-want.Pitch) > 1e-9 {
		t.Errorf("rotation = %+v, want %+v", tgt.rot, want)
	}

	res = r.Handle(mouse(Release, 124, 112))
	if res.Tap {
		t.Error("long drag reported as tap")
	}
	if r.Phase() != PhaseIdle || tgt.dragging {
		t.Errorf("after release phase = %v, dragging = %v", r.Phase(), tgt.dragging)
	}
}

func TestGlobeDragClampsPitch(t *testing.T) {
	tgt := newFakeTarget(core.ModeGlobe)
	r := newTestRouter(tgt)

	r.Handle(mouse(Press, 0, 0))
	r.Handle(mouse(Move, 0, -5000))
	if tgt.rot.Pitch != 90 {
		t.Errorf("pitch = %v, want 90", tgt.rot.Pitch)
	}
}

func TestZeroDeltaMoveIsNoop(t *testing.T) {
	for _, mode := range []core.Mode{core.ModeGlobe, core.ModeFlat} {
		tgt := newFakeTarget(mode)
		r := newTestRouter(tgt)
		before := *tgt

		r.Handle(mouse(Press, 50, 50))
		if res := r.Handle(mouse(Move, 50, 50)); res.Changed {
			t.Errorf("%v: zero-delta move reported a change", mode)
		}
		if tgt.rot != before.rot || tgt.tr != before.tr || tgt.scale != before.scale {
			t.Errorf("%v: state changed on zero-delta move", mode)
		}
	}
}

func TestTap(t *testing.T) {
	tests := []struct {
		name    string
		dx      float64
		wantTap bool
	}{
		{"still", 0, true},
		{"within slop", 3, true},
		{"beyond slop", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt := newFakeTarget(core.ModeGlobe)
			r := newTestRouter(tgt)
			r.Handle(mouse(Press, 200, 200))
			r.Handle(mouse(Move, 200+tt.dx, 200))
			res := r.Handle(mouse(Release, 200+tt.dx, 200))
			if res.Tap != tt.wantTap {
				t.Errorf("Tap = %v, want %v", res.Tap, tt.wantTap)
			}
			if res.Tap && res.At.X != 200+tt.dx {
				t.Errorf("tap at %v", res.At)
			}
		})
	}
}

func TestPinchDoesNotRotate(t *testing.T) {
	tgt := newFakeTarget(core.ModeGlobe)
	tgt.rot = core.Rotation{Yaw: 12, Pitch: -8}
	r := newTestRouter(tgt)

	r.Handle(touch(Press, 1, 300, 300))
	r.Handle(touch(Press, 2, 400, 300))
	if r.Phase() != PhasePinching {
		t.Fatalf("phase = %v, want pinching", r.Phase())
	}

	// Fingers spread and both drift sideways.
	r.Handle(touch(Move, 1, 260, 320))
	r.Handle(touch(Move, 2, 460, 320))

	if tgt.rot != (core.Rotation{Yaw: 12, Pitch: -8}) {
		t.Errorf("rotation changed during pinch: %+v", tgt.rot)
	}
	if tgt.scale <= 240 {
		t.Errorf("scale = %v, want > 240", tgt.scale)
	}

	// Lifting one finger keeps the gesture a pinch.
	r.Handle(touch(Release, 2, 460, 320))
	if r.Phase() != PhasePinching {
		t.Errorf("phase = %v after one finger lifted", r.Phase())
	}
	if res := r.Handle(touch(Move, 1, 100, 100)); res.Changed {
		t.Error("single remaining finger should not rotate")
	}
	if tgt.rot != (core.Rotation{Yaw: 12, Pitch: -8}) {
		t.Errorf("rotation changed after pinch: %+v", tgt.rot)
	}

	res := r.Handle(touch(Release, 1, 100, 100))
	if res.Tap {
		t.Error("pinch should not end in a tap")
	}
	if r.Phase() != PhaseIdle || tgt.dragging {
		t.Errorf("phase = %v, dragging = %v", r.Phase(), tgt.dragging)
	}
	if tgt.begins != 1 || tgt.ends != 1 {
		t.Errorf("begins = %d, ends = %d", tgt.begins, tgt.ends)
	}
}

func TestFlatPinchZoomsAboutMidpoint(t *testing.T) {
	tgt := newFakeTarget(core.ModeFlat)
	r := newTestRouter(tgt)

	r.Handle(touch(Press, 1, 350, 300))
	r.Handle(touch(Press, 2, 450, 300))
	wx, wy := tgt.tr.Invert(400, 300)

	r.Handle(touch(Move, 2, 550, 300))
	r.Handle(touch(Move, 1, 250, 300))

	if tgt.tr.K <= 1.7 {
		t.Fatalf("K = %v, want zoomed in", tgt.tr.K)
	}
	sx, sy := tgt.tr.Apply(wx, wy)
	if math.Abs(sx-400) > 1e-6 || math.Abs(sy-300) > 1e-6 {
		t.Errorf("midpoint drifted to (%v, %v)", sx, sy)
	}
}

func TestPinchFingerSwapKeepsScale(t *testing.T) {
	tests := []struct {
		mode  core.Mode
		scale func(*fakeTarget) float64
		want  float64
	}{
		{core.ModeGlobe, func(f *fakeTarget) float64 { return f.scale }, 240 * 401.0 / 400},
		{core.ModeFlat, func(f *fakeTarget) float64 { return f.tr.K }, 1.7 * 401.0 / 400},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			tgt := newFakeTarget(tt.mode)
			r := newTestRouter(tgt)

			r.Handle(touch(Press, 1, 100, 300))
			r.Handle(touch(Press, 2, 200, 300))
			r.Handle(touch(Release, 2, 200, 300))
			r.Handle(touch(Press, 3, 500, 300))
			if r.Phase() != PhasePinching {
				t.Fatalf("phase = %v, want pinching", r.Phase())
			}

			// The new finger measures against its own landing spot.
			r.Handle(touch(Move, 3, 501, 300))
			if got := tt.scale(tgt); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("scale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWheel(t *testing.T) {
	globe := newFakeTarget(core.ModeGlobe)
	r := newTestRouter(globe)
	if res := r.Handle(Event{Kind: Scroll, Scroll: -100, Position: r2.Vec{X: 400, Y: 300}}); res.Changed {
		t.Error("wheel should be ignored on the globe")
	}

	flat := newFakeTarget(core.ModeFlat)
	r = newTestRouter(flat)
	res := r.Handle(Event{Kind: Scroll, Scroll: -100, Position: r2.Vec{X: 400, Y: 300}})
	if !res.Changed {
		t.Fatal("wheel should zoom the flat map")
	}
	want := 1.7 * math.Pow(2, 0.2)
	if math.Abs(flat.tr.K-want) > 1e-9 {
		t.Errorf("K = %v, want %v", flat.tr.K, want)
	}
	if flat.interrupted != 1 {
		t.Errorf("interrupted = %d, want 1", flat.interrupted)
	}

	if res := r.Handle(Event{Kind: Scroll, Scroll: 0}); res.Changed {
		t.Error("zero wheel delta should be a no-op")
	}
}

func TestScaleBoundsUnderRandomGestures(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, mode := range []core.Mode{core.ModeGlobe, core.ModeFlat} {
		tgt := newFakeTarget(mode)
		r := newTestRouter(tgt)

		for i := 0; i < 500; i++ {
			switch rng.Intn(3) {
			case 0:
				r.Handle(Event{Kind: Scroll, Scroll: rng.Float64()*4000 - 2000,
					Position: r2.Vec{X: rng.Float64() * 800, Y: rng.Float64() * 600}})
			case 1:
				x := rng.Float64() * 800
				r.Handle(touch(Press, 1, x, 300))
				r.Handle(touch(Press, 2, x+20, 300))
				r.Handle(touch(Move, 2, x+20+rng.Float64()*600, 300))
				r.Handle(touch(Release, 1, 0, 0))
				r.Handle(touch(Release, 2, 0, 0))
			case 2:
				r.Handle(touch(Press, 1, 400, 300))
				r.Handle(touch(Press, 2, 700, 300))
				r.Handle(touch(Move, 2, 400+rng.Float64()*10+1, 300))
				r.Handle(touch(Release, 2, 0, 0))
				r.Handle(touch(Release, 1, 0, 0))
			}

			if mode == core.ModeGlobe && (tgt.scale < 240 || tgt.scale > 240*12) {
				t.Fatalf("globe scale %v out of bounds at step %d", tgt.scale, i)
			}
			if mode == core.ModeFlat && (tgt.tr.K < 1 || tgt.tr.K > 12) {
				t.Fatalf("flat zoom %v out of bounds at step %d", tgt.tr.K, i)
			}
		}
	}
}

func TestPhaseTransitions(t *testing.T) {
	tgt := newFakeTarget(core.ModeGlobe)
	r := newTestRouter(tgt)

	if !r.Animate() || r.Phase() != PhaseAnimating {
		t.Fatal("idle router should enter animating")
	}
	r.Handle(mouse(Press, 10, 10))
	if r.Phase() != PhaseDragging {
		t.Fatalf("press during animation: phase = %v", r.Phase())
	}
	if r.Animate() {
		t.Error("animation must not start during a drag")
	}
	r.Handle(mouse(Release, 10, 10))
	r.Animate()
	r.Settle()
	if r.Phase() != PhaseIdle {
		t.Errorf("after settle phase = %v", r.Phase())
	}
}

func TestDetachForgetsPointers(t *testing.T) {
	tgt := newFakeTarget(core.ModeGlobe)
	r := newTestRouter(tgt)
	r.Handle(mouse(Press, 10, 10))

	r.Attach(core.ModeFlat)
	if r.Phase() != PhaseIdle {
		t.Errorf("phase = %v after re-attach", r.Phase())
	}
	if res := r.Handle(mouse(Move, 50, 50)); res.Changed {
		t.Error("stale pointer still drives the camera")
	}

	r.Detach()
	if r.Attached() {
		t.Error("router still attached")
	}
	if res := r.Handle(mouse(Press, 1, 1)); res != (Result{}) {
		t.Error("detached router handled an event")
	}
}
