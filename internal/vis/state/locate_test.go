package state

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/locate"
)

func TestShowLocation(t *testing.T) {
	ttl := 5 * time.Second

	t.Run("inside country", func(t *testing.T) {
		s := newTestState()
		out := s.ShowLocation(locate.Result{Position: locate.Position{Lat: 0, Lon: 37}}, t0, ttl, 4)
		if out.Country == nil || out.Country.Name != "Kenya" {
			t.Fatalf("country = %v", out.Country)
		}
		if s.Engine.Selection() != core.Country("Kenya") {
			t.Errorf("selection = %+v", s.Engine.Selection())
		}
		if s.Toast.Text != "Located in Kenya" || s.Toast.Kind != ToastSuccess {
			t.Errorf("toast = %+v", s.Toast)
		}
	})

	t.Run("open ocean on globe", func(t *testing.T) {
		s := newTestState()
		s.ShowLocation(locate.Result{Position: locate.Position{Lat: -50, Lon: 10}}, t0, ttl, 4)
		if !s.Engine.Selection().IsZero() {
			t.Errorf("selection = %+v", s.Engine.Selection())
		}
		if !s.Engine.Transitioning() {
			t.Fatal("no transition")
		}
		got := s.Engine.transition.Target()
		if math.Abs(got.Yaw+10) > 1e-9 || math.Abs(got.Pitch-50) > 1e-9 {
			t.Errorf("target = %+v", got)
		}
		if s.Toast.Text != "Moved to your location" {
			t.Errorf("toast = %q", s.Toast.Text)
		}
	})

	t.Run("open ocean on flat map", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), core.ModeFlat, zerolog.Nop())
		e.OfferSize(800, 600, t0)
		s := NewState(testWorld(), nil, nil, e)
		s.ShowLocation(locate.Result{Position: locate.Position{Lat: -50, Lon: 10}}, t0, ttl, 4)
		if !e.Transitioning() {
			t.Fatal("no transition")
		}
		if k := e.transition.TargetView().K; k != 4 {
			t.Errorf("zoom = %v, want 4", k)
		}
	})

	t.Run("failure", func(t *testing.T) {
		s := newTestState()
		s.ShowLocation(locate.Result{Err: locate.ErrPermissionDenied}, t0, ttl, 4)
		if s.Toast.Text != "Location permission denied" || s.Toast.Kind != ToastError {
			t.Errorf("toast = %+v", s.Toast)
		}
		if s.Engine.Transitioning() {
			t.Error("camera moved on failure")
		}
		if s.Toast.Visible(t0.Add(ttl)) {
			t.Error("toast outlived its ttl")
		}
	})
}
