// Package widgets provides Gio UI widgets for the visualizer.
package widgets

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/widget/material"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/draw"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/interact"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/scene"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
)

// scrollRange lets wheel deltas through unclamped.
var scrollRange = pointer.ScrollRange{Min: -1 << 20, Max: 1 << 20}

// Canvas is the map area: it feeds pointer input to the camera engine,
// advances it once per frame and draws the resulting scene.
type Canvas struct {
	state *state.State
	opts  scene.Options
	frame *scene.Frame

	pointer r2.Vec
	inside  bool
}

// NewCanvas creates a new map canvas.
func NewCanvas(st *state.State, opts scene.Options) *Canvas {
	return &Canvas{state: st, opts: opts}
}

// Frame returns the most recently built scene.
func (c *Canvas) Frame() *scene.Frame { return c.frame }

// Pointer returns the last pointer position over the canvas.
func (c *Canvas) Pointer() (r2.Vec, bool) { return c.pointer, c.inside }

// Layout renders the canvas.
func (c *Canvas) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	e := c.state.Engine
	e.OfferSize(float64(bounds.X), float64(bounds.Y), gtx.Now)

	c.handlePointerEvents(gtx)
	e.Tick(gtx.Now)

	c.frame = scene.Build(e, c.state.World, c.state.VisibleActivities(), c.opts)
	draw.DrawFrame(gtx, th, c.frame)
	e.Rendered()

	return layout.Dimensions{Size: bounds}
}

func (c *Canvas) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, c)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  c,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll | pointer.Move | pointer.Leave,
			ScrollY: scrollRange,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			c.handlePointerEvent(pe)
		}
	}
}

func (c *Canvas) handlePointerEvent(ev pointer.Event) {
	e := c.state.Engine
	pos := r2.Vec{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}

	switch ev.Kind {
	case pointer.Move:
		// Hover only; buttons are up.
		c.pointer, c.inside = pos, true
		e.SetHover(c.hitTest(pos))
		return
	case pointer.Leave:
		c.inside = false
		e.SetHover(core.None)
		return
	case pointer.Press, pointer.Drag:
		c.pointer, c.inside = pos, true
	}

	ie, ok := toEvent(ev, pos)
	if !ok {
		return
	}
	res := e.HandlePointer(ie)
	if !res.Tap {
		return
	}
	if hit := c.hitTest(res.At); !hit.IsZero() {
		c.state.Select(hit)
	} else {
		c.state.ClearSelection()
	}
}

func (c *Canvas) hitTest(at r2.Vec) core.Selection {
	if c.frame == nil {
		return core.None
	}
	return c.frame.HitTest(c.state.Engine.Projection(), c.state.World, at.X, at.Y)
}

// toEvent translates a Gio pointer event for the gesture router.
func toEvent(ev pointer.Event, pos r2.Vec) (interact.Event, bool) {
	out := interact.Event{
		Source:   interact.SourceMouse,
		ID:       int(ev.PointerID),
		Position: pos,
	}
	if ev.Source == pointer.Touch {
		out.Source = interact.SourceTouch
	}
	switch ev.Kind {
	case pointer.Press:
		if ev.Source == pointer.Mouse && !ev.Buttons.Contain(pointer.ButtonPrimary) {
			return out, false
		}
		out.Kind = interact.Press
	case pointer.Drag:
		out.Kind = interact.Move
	case pointer.Release:
		out.Kind = interact.Release
	case pointer.Cancel:
		out.Kind = interact.Cancel
	case pointer.Scroll:
		out.Kind = interact.Scroll
		out.Scroll = float64(ev.Scroll.Y)
	default:
		return out, false
	}
	return out, true
}
