package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/draw"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/scene"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
)

// holdZone is one press-and-hold rotate control.
type holdZone struct {
	dir     core.ManualDirection
	label   string
	pressed bool
}

// RotateBar is the status strip under the map. Its two ends spin the
// globe while held; the middle shows the view readout.
type RotateBar struct {
	state *state.State
	left  holdZone
	right holdZone
}

// NewRotateBar creates a new rotate bar.
func NewRotateBar(st *state.State) *RotateBar {
	return &RotateBar{
		state: st,
		left:  holdZone{dir: core.RotateLeft, label: "<<"},
		right: holdZone{dir: core.RotateRight, label: ">>"},
	}
}

// Layout renders the bar.
func (r *RotateBar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(40))
	width := gtx.Constraints.Max.X
	zone := gtx.Dp(unit.Dp(72))

	rect := image.Rect(0, 0, width, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 38, B: 42, A: 255}, clip.Rect(rect).Op())

	r.layoutZone(gtx, th, &r.left, image.Rect(0, 0, zone, height))
	r.layoutZone(gtx, th, &r.right, image.Rect(width-zone, 0, width, height))

	e := r.state.Engine
	rot := e.Rotation()
	status := fmt.Sprintf("%s  %s  yaw %.1f  pitch %.1f", e.Mode(), scene.FormatZoom(e.ZoomLevel()), rot.Yaw, rot.Pitch)
	if n := len(r.state.VisibleActivities()); n > 0 {
		status += fmt.Sprintf("  %d activities", n)
	}
	label := material.Label(th, 12, status)
	label.Color = color.NRGBA{R: 170, G: 175, B: 185, A: 255}
	label.Alignment = text.Middle

	middle := op.Offset(image.Pt(zone, 0)).Push(gtx.Ops)
	gtx.Constraints = layout.Exact(image.Pt(max(width-2*zone, 0), height))
	layout.Center.Layout(gtx, label.Layout)
	middle.Pop()

	return layout.Dimensions{Size: image.Point{X: width, Y: height}}
}

func (r *RotateBar) layoutZone(gtx layout.Context, th *material.Theme, z *holdZone, bounds image.Rectangle) {
	area := clip.Rect(bounds).Push(gtx.Ops)
	event.Op(gtx.Ops, z)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: z,
			Kinds:  pointer.Press | pointer.Release | pointer.Cancel | pointer.Leave,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch pe.Kind {
		case pointer.Press:
			z.pressed = true
			r.state.Engine.SetManual(z.dir)
		case pointer.Release, pointer.Cancel, pointer.Leave:
			if z.pressed {
				z.pressed = false
				r.state.Engine.SetManual(core.RotateNone)
			}
		}
	}

	bg := color.NRGBA{R: 50, G: 54, B: 60, A: 255}
	if z.pressed {
		bg = draw.Brighten(bg, 30)
	}
	paint.FillShape(gtx.Ops, bg, clip.Rect(bounds.Inset(4)).Op())

	off := op.Offset(bounds.Min).Push(gtx.Ops)
	cgtx := gtx
	cgtx.Constraints = layout.Exact(bounds.Size())
	label := material.Label(th, 14, z.label)
	label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	layout.Center.Layout(cgtx, label.Layout)
	off.Pop()
}
