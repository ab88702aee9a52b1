package widgets

import (
	"image"
	"image/color"
	"strings"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/scene"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
)

// Tooltip shows the hovered activity next to the pointer.
type Tooltip struct {
	state  *state.State
	canvas *Canvas
}

// NewTooltip creates a tooltip that follows the pointer over canvas.
func NewTooltip(st *state.State, canvas *Canvas) *Tooltip {
	return &Tooltip{state: st, canvas: canvas}
}

// Layout draws the card over the map. It takes no input.
func (t *Tooltip) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	hover := t.state.Engine.Hover()
	if hover.Kind != core.SelectActivity {
		return layout.Dimensions{}
	}
	at, ok := t.canvas.Pointer()
	if !ok {
		return layout.Dimensions{}
	}
	a, ok := core.ActivityByID(t.state.Activities, hover.Key)
	if !ok {
		return layout.Dimensions{}
	}
	tip := scene.TooltipFor(a)

	// Measure first, then place so the card stays on screen.
	cgtx := gtx
	cgtx.Constraints.Min = image.Point{}
	cgtx.Constraints.Max.X = min(gtx.Dp(unit.Dp(260)), gtx.Constraints.Max.X)
	macro := op.Record(gtx.Ops)
	dims := t.card(cgtx, th, tip)
	call := macro.Stop()

	view := gtx.Constraints.Max
	x, y := scene.PlaceTooltip(at.X, at.Y,
		float64(dims.Size.X), float64(dims.Size.Y),
		float64(view.X), float64(view.Y))
	defer op.Offset(image.Pt(int(x), int(y))).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return layout.Dimensions{Size: gtx.Constraints.Min}
}

func (t *Tooltip) card(gtx layout.Context, th *material.Theme, tip scene.Tooltip) layout.Dimensions {
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
			paint.FillShape(gtx.Ops, color.NRGBA{R: 24, G: 26, B: 30, A: 242}, clip.UniformRRect(rect, gtx.Dp(unit.Dp(6))).Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						label := material.Label(th, 13, strings.ToUpper(tip.Title))
						label.Font.Weight = font.Bold
						label.Color = color.NRGBA{R: 230, G: 90, B: 80, A: 255}
						return label.Layout(gtx)
					}),
					layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						label := material.Label(th, 9, strings.ToUpper(tip.Type))
						label.Font.Weight = font.Bold
						label.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
						return label.Layout(gtx)
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						if tip.Text == "" {
							return layout.Dimensions{}
						}
						return layout.Inset{Top: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							label := material.Label(th, 12, tip.Text)
							label.Color = color.NRGBA{R: 220, G: 215, B: 200, A: 255}
							return label.Layout(gtx)
						})
					}),
				)
			})
		},
	)
}
