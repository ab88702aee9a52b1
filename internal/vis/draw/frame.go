package draw

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/campaign-globe/internal/vis/interact"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/scene"
)

// ColorLabel is the country name color.
var ColorLabel = color.NRGBA{R: 235, G: 235, B: 240, A: 220}

// DrawBackground clears the window.
func DrawBackground(gtx layout.Context) {
	paint.Fill(gtx.Ops, ColorBackground)
}

// DrawFrame renders a scene frame: ocean, countries, labels, markers.
func DrawFrame(gtx layout.Context, th *material.Theme, fr *scene.Frame) {
	DrawBackground(gtx)
	if fr == nil {
		return
	}
	t := fr.Transform
	if t.K <= 0 {
		t = interact.Identity
	}

	if fr.Sphere != nil {
		c := fr.Sphere.Center
		drawFilledCircle(gtx, float32(c.X), float32(c.Y), float32(fr.Sphere.Radius), ColorOcean)
	} else {
		paint.Fill(gtx.Ops, ColorOcean)
	}

	affine := f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(float32(t.K), float32(t.K))).Offset(f32.Pt(float32(t.X), float32(t.Y)))
	stack := op.Affine(affine).Push(gtx.Ops)
	for _, s := range fr.Shapes {
		DrawShape(gtx, s)
	}
	stack.Pop()

	if fr.Sphere != nil {
		c := fr.Sphere.Center
		DrawCircleOutline(gtx, float32(c.X), float32(c.Y), float32(fr.Sphere.Radius), ColorSphereEdge, 1)
	}

	for _, l := range fr.Labels {
		DrawLabel(gtx, th, l, t)
	}
	DrawMarkers(gtx, fr.Markers, t)
}

// DrawLabel centres a country name on its anchor in screen space.
func DrawLabel(gtx layout.Context, th *material.Theme, l scene.Label, t interact.Transform) {
	x, y := t.Apply(l.At.X, l.At.Y)

	lbl := material.Label(th, unit.Sp(float32(l.Size*t.K)), l.Text)
	lbl.Color = ColorLabel
	lbl.MaxLines = 1

	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := lbl.Layout(gtx)
	call := macro.Stop()

	off := image.Pt(int(x)-dims.Size.X/2, int(y)-dims.Size.Y/2)
	stack := op.Offset(off).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()
}
