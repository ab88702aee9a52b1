package widgets

import (
	"image"
	"image/color"
	"io"
	"strings"

	"gioui.org/font"
	"gioui.org/io/clipboard"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/campaign-globe/internal/campaign"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/draw"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
)

// Panel colors.
var (
	ColorPanel     = color.NRGBA{R: 35, G: 38, B: 42, A: 245}
	ColorPanelText = color.NRGBA{R: 210, G: 212, B: 218, A: 255}
	ColorPanelDim  = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	ColorQuoteBar  = color.NRGBA{R: 90, G: 95, B: 105, A: 255}
	ColorLink      = color.NRGBA{R: 110, G: 170, B: 240, A: 255}
)

var toneColors = map[campaign.Tone]color.NRGBA{
	campaign.ToneNeutral: ColorPanelText,
	campaign.ToneGold:    {R: 240, G: 190, B: 60, A: 255},
	campaign.ToneRed:     {R: 230, G: 80, B: 70, A: 255},
	campaign.ToneGreen:   {R: 90, G: 200, B: 120, A: 255},
	campaign.ToneBlue:    {R: 90, G: 150, B: 230, A: 255},
	campaign.ToneGrey:    {R: 140, G: 145, B: 150, A: 255},
}

// InfoPanel shows the summary of the selected country or activity.
type InfoPanel struct {
	state    *state.State
	list     widget.List
	closeBtn widget.Clickable
	linkBtn  widget.Clickable

	// OnCopy is called after the link URL was put on the clipboard.
	OnCopy func(url string)
}

// NewInfoPanel creates a new info panel.
func NewInfoPanel(st *state.State) *InfoPanel {
	return &InfoPanel{
		state: st,
		list:  widget.List{List: layout.List{Axis: layout.Vertical}},
	}
}

// Layout renders the panel, or nothing when no summary is open.
func (p *InfoPanel) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	for p.closeBtn.Clicked(gtx) {
		p.state.ClearSelection()
	}
	s := p.state.Panel
	if s == nil {
		return layout.Dimensions{}
	}
	for p.linkBtn.Clicked(gtx) {
		if s.Link != nil {
			gtx.Execute(clipboard.WriteCmd{Type: "application/text", Data: io.NopCloser(strings.NewReader(s.Link.URL))})
			if p.OnCopy != nil {
				p.OnCopy(s.Link.URL)
			}
		}
	}

	width := gtx.Dp(unit.Dp(320))
	height := gtx.Constraints.Max.Y
	gtx.Constraints = layout.Exact(image.Pt(width, height))

	rect := image.Rect(0, 0, width, height)
	paint.FillShape(gtx.Ops, ColorPanel, clip.Rect(rect).Op())

	items := p.items(th, s)
	layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return material.List(th, &p.list).Layout(gtx, len(items), func(gtx layout.Context, i int) layout.Dimensions {
			return items[i](gtx)
		})
	})
	return layout.Dimensions{Size: image.Point{X: width, Y: height}}
}

func (p *InfoPanel) items(th *material.Theme, s *campaign.Summary) []layout.Widget {
	items := []layout.Widget{
		func(gtx layout.Context) layout.Dimensions {
			return p.layoutHeader(gtx, th, s)
		},
	}
	if s.Subtitle != "" {
		items = append(items, func(gtx layout.Context) layout.Dimensions {
			label := material.Label(th, 12, s.Subtitle)
			label.Color = ColorPanelDim
			return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, label.Layout)
		})
	}
	for _, st := range s.Stats {
		st := st
		items = append(items, func(gtx layout.Context) layout.Dimensions {
			return p.layoutStat(gtx, th, st)
		})
	}
	items = append(items, layout.Spacer{Height: unit.Dp(10)}.Layout)
	for _, b := range campaign.ParseContent(s.Content) {
		b := b
		items = append(items, func(gtx layout.Context) layout.Dimensions {
			return p.layoutBlock(gtx, th, b)
		})
	}
	if s.Link != nil {
		items = append(items, func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return p.linkBtn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 12, s.Link.Text+"  "+s.Link.URL)
					label.Color = ColorLink
					if p.linkBtn.Hovered() {
						label.Color = draw.Brighten(ColorLink, 30)
					}
					return label.Layout(gtx)
				})
			})
		})
	}
	return items
}

func (p *InfoPanel) layoutHeader(gtx layout.Context, th *material.Theme, s *campaign.Summary) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Start}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			title := material.Label(th, 18, s.Title)
			title.Color = ColorPanelText
			title.Font.Weight = font.Bold
			return title.Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return p.closeBtn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.Label(th, 14, "x")
				label.Color = ColorPanelDim
				if p.closeBtn.Hovered() {
					label.Color = ColorPanelText
				}
				return layout.UniformInset(unit.Dp(4)).Layout(gtx, label.Layout)
			})
		}),
	)
}

func (p *InfoPanel) layoutStat(gtx layout.Context, th *material.Theme, st campaign.Stat) layout.Dimensions {
	col, ok := toneColors[st.Tone]
	if !ok {
		col = ColorPanelText
	}
	return layout.Inset{Top: unit.Dp(2), Bottom: unit.Dp(2)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := material.Label(th, 11, st.Label)
				label.Color = ColorPanelDim
				return label.Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				value := material.Label(th, 12, st.Value)
				value.Color = col
				value.Font.Weight = font.Bold
				if !st.Action {
					return value.Layout(gtx)
				}
				return layout.Background{}.Layout(gtx,
					func(gtx layout.Context) layout.Dimensions {
						rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
						paint.FillShape(gtx.Ops, col, clip.UniformRRect(rect, gtx.Dp(unit.Dp(4))).Op(gtx.Ops))
						return layout.Dimensions{Size: gtx.Constraints.Min}
					},
					func(gtx layout.Context) layout.Dimensions {
						value.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
						return layout.Inset{Left: unit.Dp(6), Right: unit.Dp(6), Top: unit.Dp(2), Bottom: unit.Dp(2)}.Layout(gtx, value.Layout)
					},
				)
			}),
		)
	})
}

func (p *InfoPanel) layoutBlock(gtx layout.Context, th *material.Theme, b campaign.Block) layout.Dimensions {
	label := material.Label(th, 12, b.Text())
	label.Color = ColorPanelText
	if b.Bold() {
		label.Font.Weight = font.Bold
	}

	inset := layout.Inset{Top: unit.Dp(3), Bottom: unit.Dp(3)}
	switch b.Kind {
	case campaign.BlockBullet:
		label.Text = "• " + label.Text
		inset.Left = unit.Dp(8)
	case campaign.BlockQuote:
		label.Font.Style = font.Italic
		label.Color = ColorPanelDim
		inset.Left = unit.Dp(10)
		dims := inset.Layout(gtx, label.Layout)
		bar := image.Rect(gtx.Dp(unit.Dp(2)), 0, gtx.Dp(unit.Dp(4)), dims.Size.Y)
		paint.FillShape(gtx.Ops, ColorQuoteBar, clip.Rect(bar).Op())
		return dims
	}
	return inset.Layout(gtx, label.Layout)
}
