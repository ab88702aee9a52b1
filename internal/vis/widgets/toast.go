package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
)

var toastColors = map[state.ToastKind]color.NRGBA{
	state.ToastInfo:    {R: 55, G: 58, B: 65, A: 235},
	state.ToastSuccess: {R: 40, G: 120, B: 70, A: 235},
	state.ToastError:   {R: 150, G: 50, B: 45, A: 235},
}

// Toast renders the status message near the bottom of the map.
type Toast struct {
	state *state.State
}

// NewToast creates a new toast widget.
func NewToast(st *state.State) *Toast {
	return &Toast{state: st}
}

// Layout draws the message while it is visible and schedules the frame
// that hides it.
func (t *Toast) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	msg := t.state.Toast
	if !msg.Visible(gtx.Now) {
		return layout.Dimensions{}
	}
	gtx.Execute(op.InvalidateCmd{At: msg.Expires})

	return layout.S.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Bottom: unit.Dp(24)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Background{}.Layout(gtx,
				func(gtx layout.Context) layout.Dimensions {
					rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
					paint.FillShape(gtx.Ops, toastColors[msg.Kind], clip.UniformRRect(rect, gtx.Dp(unit.Dp(6))).Op(gtx.Ops))
					return layout.Dimensions{Size: gtx.Constraints.Min}
				},
				func(gtx layout.Context) layout.Dimensions {
					return layout.Inset{Left: unit.Dp(14), Right: unit.Dp(14), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						label := material.Label(th, 13, msg.Text)
						label.Color = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
						return label.Layout(gtx)
					})
				},
			)
		})
	})
}
