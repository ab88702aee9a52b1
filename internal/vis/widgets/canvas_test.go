package widgets

import (
	"testing"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/interact"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/scene"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
)

func TestToEvent(t *testing.T) {
	tests := []struct {
		name   string
		in     pointer.Event
		ok     bool
		kind   interact.Kind
		source interact.Source
		scroll float64
	}{
		{"mouse press", pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary}, true, interact.Press, interact.SourceMouse, 0},
		{"right button ignored", pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonSecondary}, false, 0, 0, 0},
		{"touch press", pointer.Event{Kind: pointer.Press, Source: pointer.Touch, PointerID: 3}, true, interact.Press, interact.SourceTouch, 0},
		{"drag", pointer.Event{Kind: pointer.Drag, Source: pointer.Mouse}, true, interact.Move, interact.SourceMouse, 0},
		{"release", pointer.Event{Kind: pointer.Release, Source: pointer.Touch}, true, interact.Release, interact.SourceTouch, 0},
		{"cancel", pointer.Event{Kind: pointer.Cancel}, true, interact.Cancel, interact.SourceMouse, 0},
		{"scroll", pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, -120)}, true, interact.Scroll, interact.SourceMouse, -120},
		{"hover move", pointer.Event{Kind: pointer.Move}, false, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := r2.Vec{X: 10, Y: 20}
			got, ok := toEvent(tt.in, pos)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Kind != tt.kind || got.Source != tt.source || got.Scroll != tt.scroll {
				t.Errorf("got %+v", got)
			}
			if got.ID != int(tt.in.PointerID) || got.Position != pos {
				t.Errorf("identity lost: %+v", got)
			}
		})
	}
}

func TestCanvasTracksPointer(t *testing.T) {
	eng := state.NewEngine(state.DefaultConfig(), core.ModeGlobe, zerolog.Nop())
	st := state.NewState(core.NewDataset(nil), nil, nil, eng)
	c := NewCanvas(st, scene.Options{})

	if _, ok := c.Pointer(); ok {
		t.Fatal("pointer reported before any event")
	}
	c.handlePointerEvent(pointer.Event{Kind: pointer.Move, Source: pointer.Mouse, Position: f32.Pt(120, 80)})
	if at, ok := c.Pointer(); !ok || at != (r2.Vec{X: 120, Y: 80}) {
		t.Errorf("after move Pointer() = %v, %v", at, ok)
	}
	c.handlePointerEvent(pointer.Event{Kind: pointer.Leave, Source: pointer.Mouse})
	if _, ok := c.Pointer(); ok {
		t.Error("pointer still inside after leave")
	}
}
