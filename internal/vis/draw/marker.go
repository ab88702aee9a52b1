package draw

import (
	"hash/fnv"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/campaign-globe/internal/vis/interact"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/scene"
)

// Marker colors by activity type
var markerPalette = []color.NRGBA{
	{R: 100, G: 200, B: 255, A: 255},
	{R: 255, G: 150, B: 100, A: 255},
	{R: 200, G: 100, B: 255, A: 255},
	{R: 120, G: 220, B: 120, A: 255},
	{R: 255, G: 220, B: 90, A: 255},
	{R: 255, G: 110, B: 150, A: 255},
}

var (
	ColorMarkerRing     = color.NRGBA{R: 255, G: 255, B: 255, A: 230}
	ColorMarkerSelected = color.NRGBA{R: 255, G: 255, B: 100, A: 255}
)

// MarkerColor picks a stable color for an activity type.
func MarkerColor(typ string) color.NRGBA {
	h := fnv.New32a()
	h.Write([]byte(typ))
	return markerPalette[h.Sum32()%uint32(len(markerPalette))]
}

// DrawMarker draws an activity pin in screen space.
func DrawMarker(gtx layout.Context, m scene.Marker, t interact.Transform) {
	x, y := t.Apply(m.At.X, m.At.Y)
	cx, cy := float32(x), float32(y)
	r := float32(m.Radius * t.K)

	col := MarkerColor(m.Type)
	if m.Selected {
		col = ColorMarkerSelected
	}
	drawFilledCircle(gtx, cx, cy, r+1.5, ColorMarkerRing)
	drawFilledCircle(gtx, cx, cy, r, col)
}

// DrawMarkers draws all activity pins.
func DrawMarkers(gtx layout.Context, markers []scene.Marker, t interact.Transform) {
	for _, m := range markers {
		DrawMarker(gtx, m, t)
	}
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: circleSpec(gtx, cx, cy, radius, 16)}.Op())
}

// DrawCircleOutline strokes a circle.
func DrawCircleOutline(gtx layout.Context, cx, cy, radius float32, col color.NRGBA, width float32) {
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: circleSpec(gtx, cx, cy, radius, 64), Width: width}.Op())
}

func circleSpec(gtx layout.Context, cx, cy, radius float32, segments int) clip.PathSpec {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(cx+radius, cy))
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		path.LineTo(f32.Pt(cx+radius*float32(math.Cos(angle)), cy+radius*float32(math.Sin(angle))))
	}
	path.Close()
	return path.End()
}
