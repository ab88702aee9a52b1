// Package draw provides rendering functions for visualization.
package draw

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/campaign-globe/internal/campaign"
	"github.com/elektrokombinacija/campaign-globe/internal/projection"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/scene"
)

// Colors for map surfaces
var (
	ColorBackground   = color.NRGBA{R: 14, G: 18, B: 28, A: 255}
	ColorOcean        = color.NRGBA{R: 24, G: 42, B: 66, A: 255}
	ColorSphereEdge   = color.NRGBA{R: 70, G: 110, B: 150, A: 255}
	ColorBorder       = color.NRGBA{R: 20, G: 26, B: 34, A: 200}
	ColorBorderActive = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ColorSelected     = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
)

var regionColors = map[campaign.Region]color.NRGBA{
	campaign.RegionAmericas: {R: 86, G: 160, B: 120, A: 255},
	campaign.RegionEurope:   {R: 100, G: 140, B: 220, A: 255},
	campaign.RegionAfrica:   {R: 220, G: 150, B: 90, A: 255},
	campaign.RegionAsia:     {R: 200, G: 110, B: 130, A: 255},
	campaign.RegionOceania:  {R: 120, G: 190, B: 200, A: 255},
}

// RegionColor returns the fill for a region.
func RegionColor(r campaign.Region) color.NRGBA {
	if c, ok := regionColors[r]; ok {
		return c
	}
	return color.NRGBA{R: 100, G: 120, B: 140, A: 255}
}

// ShapeColor returns the fill for a country, brightened when hovered.
func ShapeColor(s scene.Shape) color.NRGBA {
	if s.Selected {
		return ColorSelected
	}
	col := RegionColor(s.Region)
	if s.Hovered {
		col = Brighten(col, 40)
	}
	return col
}

// DrawShape fills a projected country and strokes its border. Coordinates
// are in projection space; the caller sets up the transform.
func DrawShape(gtx layout.Context, s scene.Shape) {
	if s.Path.Empty() {
		return
	}
	border := ColorBorder
	if s.Selected || s.Hovered {
		border = ColorBorderActive
	}
	fill := ShapeColor(s)
	for _, set := range [][]projection.Polygon{s.Path.Polygons, s.Path.Copies} {
		for _, poly := range set {
			paint.FillShape(gtx.Ops, fill, clip.Outline{Path: polygonSpec(gtx, poly)}.Op())
			paint.FillShape(gtx.Ops, border, clip.Stroke{Path: polygonSpec(gtx, poly), Width: float32(s.Stroke)}.Op())
		}
	}
}

func polygonSpec(gtx layout.Context, poly projection.Polygon) clip.PathSpec {
	var path clip.Path
	path.Begin(gtx.Ops)
	for _, ring := range poly {
		if len(ring) < 3 {
			continue
		}
		path.MoveTo(pt(ring[0]))
		for _, p := range ring[1:] {
			path.LineTo(pt(p))
		}
		path.Close()
	}
	return path.End()
}

func pt(p projection.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

// Brighten lifts each channel by d, saturating at 255.
func Brighten(c color.NRGBA, d uint8) color.NRGBA {
	return color.NRGBA{R: addU8(c.R, d), G: addU8(c.G, d), B: addU8(c.B, d), A: c.A}
}

func addU8(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}
