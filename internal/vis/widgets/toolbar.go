package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/draw"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/scene"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
)

// Toolbar provides control buttons.
type Toolbar struct {
	state  *state.State
	search *Search

	// View mode
	globeBtn widget.Clickable
	flatBtn  widget.Clickable

	// Zoom
	zoomOutBtn widget.Clickable
	zoomInBtn  widget.Clickable

	locateBtn widget.Clickable

	// Activity type filter
	allTypesBtn widget.Clickable
	typeBtns    map[string]*widget.Clickable

	// OnLocate is called when the locate button is clicked.
	OnLocate func()
	// Locating reports whether a location request is in flight.
	Locating func() bool
}

// NewToolbar creates a new toolbar.
func NewToolbar(st *state.State, search *Search) *Toolbar {
	return &Toolbar{
		state:    st,
		search:   search,
		typeBtns: make(map[string]*widget.Clickable),
	}
}

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(48))

	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	t.handleClicks(gtx)

	gtx.Constraints.Max.Y = height
	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutModeControls(gtx, th)
			}),
			layout.Rigid(t.layoutSeparator),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutZoomControls(gtx, th)
			}),
			layout.Rigid(t.layoutSeparator),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := "Locate me"
				if t.Locating != nil && t.Locating() {
					label = "Locating..."
				}
				return t.buttonBase(gtx, th, &t.locateBtn, label, false)
			}),
			layout.Rigid(t.layoutSeparator),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return t.layoutTypeFilter(gtx, th)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if t.search == nil {
					return layout.Dimensions{}
				}
				return t.search.LayoutInput(gtx, th)
			}),
		)
	})
}

func (t *Toolbar) layoutModeControls(gtx layout.Context, th *material.Theme) layout.Dimensions {
	mode := t.state.Engine.Mode()
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.globeBtn, "Globe", mode == core.ModeGlobe)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.flatBtn, "Map", mode == core.ModeFlat)
		}),
	)
}

func (t *Toolbar) layoutZoomControls(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.zoomOutBtn, "-", false)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Left: unit.Dp(6), Right: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.Label(th, 12, scene.FormatZoom(t.state.Engine.ZoomLevel()))
				label.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
				return label.Layout(gtx)
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.zoomInBtn, "+", false)
		}),
	)
}

func (t *Toolbar) layoutTypeFilter(gtx layout.Context, th *material.Theme) layout.Dimensions {
	types := t.state.Types()
	children := make([]layout.FlexChild, 0, 2*len(types)+1)
	children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return t.buttonBase(gtx, th, &t.allTypesBtn, "All", !t.state.Filter.Active())
	}))
	for _, typ := range types {
		typ := typ
		btn := t.typeButton(typ)
		active := t.state.Filter.Enabled(typ)
		children = append(children,
			layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.chip(gtx, th, btn, typ, active)
			}),
		)
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}

func (t *Toolbar) typeButton(typ string) *widget.Clickable {
	btn, ok := t.typeBtns[typ]
	if !ok {
		btn = new(widget.Clickable)
		t.typeBtns[typ] = btn
	}
	return btn
}

func (t *Toolbar) layoutSeparator(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		rect := image.Rect(0, 0, 1, 24)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(rect).Op())
		return layout.Dimensions{Size: image.Point{X: 1, Y: 24}}
	})
}

// chip is a filter button with the marker color as its swatch.
func (t *Toolbar) chip(gtx layout.Context, th *material.Theme, btn *widget.Clickable, typ string, active bool) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			size := gtx.Dp(unit.Dp(8))
			paint.FillShape(gtx.Ops, draw.MarkerColor(typ), clip.Ellipse(image.Rect(0, 0, size, size)).Op(gtx.Ops))
			return layout.Dimensions{Size: image.Pt(size, size)}
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(3)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, btn, typ, active)
		}),
	)
}

func (t *Toolbar) buttonBase(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, active bool) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if active {
		bg = color.NRGBA{R: 80, G: 130, B: 180, A: 255}
	}
	if btn.Hovered() {
		bg = draw.Brighten(bg, 15)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: gtx.Dp(unit.Dp(32)), Y: gtx.Dp(unit.Dp(28))}
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Inset{Left: unit.Dp(6), Right: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						label := material.Label(th, 12, text)
						label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
						return label.Layout(gtx)
					})
				})
			},
		)
	})
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	e := t.state.Engine

	for t.globeBtn.Clicked(gtx) {
		e.SetMode(core.ModeGlobe)
	}
	for t.flatBtn.Clicked(gtx) {
		e.SetMode(core.ModeFlat)
	}

	for t.zoomInBtn.Clicked(gtx) {
		e.ZoomIn()
	}
	for t.zoomOutBtn.Clicked(gtx) {
		e.ZoomOut()
	}

	for t.locateBtn.Clicked(gtx) {
		if t.OnLocate != nil {
			t.OnLocate()
		}
	}

	for t.allTypesBtn.Clicked(gtx) {
		t.state.ClearFilter()
	}
	for typ, btn := range t.typeBtns {
		for btn.Clicked(gtx) {
			t.state.ToggleType(typ)
		}
	}
}
