package state

import (
	"math"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

func testWorld() *core.Dataset {
	return core.NewDataset([]*core.Feature{
		core.NewFeature("404", "Kenya", orb.Polygon{{{34, -4}, {41, -4}, {41, 4}, {34, 4}, {34, -4}}}),
		core.NewFeature("076", "Brazil", orb.Polygon{{{-73, -33}, {-35, -33}, {-35, 5}, {-73, 5}, {-73, -33}}}),
	})
}

func testActivities() []core.Activity {
	return []core.Activity{
		{ID: "a1", Title: "Nairobi tree planting", Type: "Tree Planting", Coordinates: core.Coordinates{36.8, -1.3}},
		{ID: "a2", Title: "Recife workshop", Type: "Workshop", Coordinates: core.Coordinates{-34.9, -8.1}, Status: core.StatusApproved},
		{ID: "a3", Title: "Draft", Type: "Workshop", Coordinates: core.Coordinates{0, 0}, Status: core.StatusPending},
	}
}

func newTestState() *State {
	e := NewEngine(DefaultConfig(), core.ModeGlobe, zerolog.Nop())
	e.OfferSize(800, 600, t0)
	return NewState(testWorld(), testActivities(), nil, e)
}

func TestNewStateHidesUnapproved(t *testing.T) {
	s := newTestState()
	if len(s.Activities) != 2 {
		t.Fatalf("got %d activities, want 2", len(s.Activities))
	}
	if _, ok := core.ActivityByID(s.Activities, "a3"); ok {
		t.Error("pending activity visible")
	}
}

func TestSelectCountryOpensPanelAndFocuses(t *testing.T) {
	s := newTestState()

	if !s.Select(core.Country("Kenya")) {
		t.Fatal("select returned false")
	}
	if s.Panel == nil || s.Panel.Title != "Kenya" {
		t.Fatalf("panel = %+v", s.Panel)
	}
	if s.Engine.Selection() != core.Country("Kenya") {
		t.Errorf("selection = %+v", s.Engine.Selection())
	}
	if !s.Engine.Transitioning() {
		t.Error("no focus transition")
	}

	s.Engine.Tick(at(0))
	s.Engine.Tick(at(1500))
	if y := s.Engine.Rotation().Yaw; math.Abs(y-(-37.5)) > 0.01 {
		t.Errorf("yaw = %v, want about -37.5", y)
	}
}

func TestSelectActivity(t *testing.T) {
	s := newTestState()

	s.Select(core.ActivityRef("a2"))
	if s.Panel == nil || s.Panel.ID != "a2" {
		t.Fatalf("panel = %+v", s.Panel)
	}
	s.Engine.Tick(at(0))
	s.Engine.Tick(at(1500))
	want := core.Rotation{Yaw: 34.9, Pitch: 8.1}
	if !rotNear(s.Engine.Rotation(), want, 1e-9) {
		t.Errorf("rotation = %+v, want %+v", s.Engine.Rotation(), want)
	}
}

func TestSelectUnknownClears(t *testing.T) {
	s := newTestState()
	s.Select(core.Country("Kenya"))

	if s.Select(core.Country("Atlantis")) {
		t.Error("unknown country selected")
	}
	if s.Panel != nil || !s.Engine.Selection().IsZero() {
		t.Error("selection not cleared")
	}
}

func TestSetActivitiesDropsStaleSelection(t *testing.T) {
	s := newTestState()
	s.Select(core.ActivityRef("a1"))
	s.Engine.SetHover(core.ActivityRef("a2"))

	s.SetActivities(testActivities()[2:])
	if !s.Engine.Selection().IsZero() || s.Panel != nil {
		t.Error("stale activity still selected")
	}
	if !s.Engine.Hover().IsZero() {
		t.Error("stale activity still hovered")
	}
}

func TestSetActivitiesKeepsCountrySelection(t *testing.T) {
	s := newTestState()
	s.Select(core.Country("Brazil"))
	s.SetActivities(nil)
	if s.Engine.Selection() != core.Country("Brazil") {
		t.Errorf("selection = %+v", s.Engine.Selection())
	}
}

func TestToggleTypeClearsHiddenHover(t *testing.T) {
	s := newTestState()
	s.Engine.SetHover(core.ActivityRef("a1"))

	s.ToggleType("Workshop")
	if got := len(s.VisibleActivities()); got != 1 {
		t.Errorf("visible = %d, want 1", got)
	}
	if !s.Engine.Hover().IsZero() {
		t.Error("hover on a filtered-out marker survived")
	}

	s.ClearFilter()
	if got := len(s.VisibleActivities()); got != 2 {
		t.Errorf("visible after clear = %d, want 2", got)
	}
}

func TestToast(t *testing.T) {
	var toast Toast
	if toast.Visible(t0) {
		t.Error("empty toast visible")
	}

	toast.Show("Moved to your location", ToastSuccess, t0, 3*time.Second)
	if !toast.Visible(t0.Add(time.Second)) {
		t.Error("toast hidden too early")
	}
	if toast.Visible(t0.Add(3 * time.Second)) {
		t.Error("toast outlived its ttl")
	}

	toast.Show("again", ToastError, t0, time.Minute)
	toast.Dismiss()
	if toast.Visible(t0) {
		t.Error("dismissed toast visible")
	}
}

func TestEasing(t *testing.T) {
	tests := []struct {
		name string
		fn   EaseFunc
	}{
		{"linear", EaseLinear},
		{"cubicInOut", EaseCubicInOut},
		{"cubicOut", EaseCubicOut},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(0); math.Abs(got) > 1e-12 {
				t.Errorf("f(0) = %v", got)
			}
			if got := tt.fn(1); math.Abs(got-1) > 1e-12 {
				t.Errorf("f(1) = %v", got)
			}
			prev := 0.0
			for i := 1; i <= 100; i++ {
				v := tt.fn(float64(i) / 100)
				if v < prev-1e-12 {
					t.Fatalf("not monotonic at %d", i)
				}
				prev = v
			}
		})
	}
	if got := EaseCubicInOut(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("cubicInOut(0.5) = %v", got)
	}
}

func TestDebouncer(t *testing.T) {
	d := Debouncer{Delay: 150 * time.Millisecond}
	if _, _, ok := d.Ready(t0); ok {
		t.Fatal("ready with nothing offered")
	}

	d.Offer(100, 100, t0)
	d.Offer(200, 150, t0.Add(100*time.Millisecond))
	if _, _, ok := d.Ready(t0.Add(200 * time.Millisecond)); ok {
		t.Error("ready before quiet period")
	}
	w, h, ok := d.Ready(t0.Add(250 * time.Millisecond))
	if !ok || w != 200 || h != 150 {
		t.Errorf("Ready = %v, %v, %v", w, h, ok)
	}
	if d.Pending() {
		t.Error("still pending after Ready")
	}
}
