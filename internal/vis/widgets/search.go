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
	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
)

// maxResults bounds the country search dropdown.
const maxResults = 10

// Search is the country finder: a text field in the toolbar and a result
// list dropped over the map.
type Search struct {
	state   *state.State
	editor  widget.Editor
	results []*core.Feature
	buttons []widget.Clickable
}

// NewSearch creates a new search widget.
func NewSearch(st *state.State) *Search {
	return &Search{
		state:  st,
		editor: widget.Editor{SingleLine: true, Submit: true},
	}
}

// Focused reports whether the text field has keyboard focus.
func (s *Search) Focused(gtx layout.Context) bool {
	return gtx.Focused(&s.editor)
}

// Results returns the current matches.
func (s *Search) Results() []*core.Feature { return s.results }

// LayoutInput renders the text field.
func (s *Search) LayoutInput(gtx layout.Context, th *material.Theme) layout.Dimensions {
	s.update(gtx)

	width := gtx.Dp(unit.Dp(200))
	gtx.Constraints.Min.X = width
	gtx.Constraints.Max.X = width
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
			paint.FillShape(gtx.Ops, color.NRGBA{R: 28, G: 30, B: 34, A: 255}, clip.Rect(rect).Op())
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				ed := material.Editor(th, &s.editor, "Search countries")
				ed.TextSize = 12
				ed.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
				ed.HintColor = color.NRGBA{R: 120, G: 125, B: 130, A: 255}
				return ed.Layout(gtx)
			})
		},
	)
}

// LayoutResults renders the dropdown, if there is anything to show.
func (s *Search) LayoutResults(gtx layout.Context, th *material.Theme) layout.Dimensions {
	for i := range s.buttons {
		for s.buttons[i].Clicked(gtx) {
			if i < len(s.results) {
				s.choose(s.results[i])
				return layout.Dimensions{}
			}
		}
	}
	if len(s.results) == 0 {
		return layout.Dimensions{}
	}

	width := gtx.Dp(unit.Dp(200))
	gtx.Constraints.Min.X = width
	gtx.Constraints.Max.X = width
	children := make([]layout.FlexChild, len(s.results))
	for i, f := range s.results {
		btn := &s.buttons[i]
		name := f.Name
		children[i] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				bg := color.NRGBA{R: 45, G: 48, B: 54, A: 240}
				if btn.Hovered() {
					bg = draw.Brighten(bg, 20)
				}
				return layout.Background{}.Layout(gtx,
					func(gtx layout.Context) layout.Dimensions {
						rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
						paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
						return layout.Dimensions{Size: gtx.Constraints.Min}
					},
					func(gtx layout.Context) layout.Dimensions {
						return layout.Inset{Left: unit.Dp(8), Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							label := material.Label(th, 12, name)
							label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
							return label.Layout(gtx)
						})
					},
				)
			})
		})
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (s *Search) update(gtx layout.Context) {
	for {
		ev, ok := s.editor.Update(gtx)
		if !ok {
			break
		}
		switch ev.(type) {
		case widget.ChangeEvent:
			s.setQuery(s.editor.Text())
		case widget.SubmitEvent:
			if len(s.results) > 0 {
				s.choose(s.results[0])
			}
		}
	}
}

func (s *Search) setQuery(q string) {
	s.results = s.state.World.Search(q, maxResults)
	if len(s.buttons) < len(s.results) {
		s.buttons = make([]widget.Clickable, len(s.results))
	}
}

// choose selects a country and resets the field.
func (s *Search) choose(f *core.Feature) {
	s.state.Select(core.Country(f.Name))
	s.editor.SetText("")
	s.results = nil
}
