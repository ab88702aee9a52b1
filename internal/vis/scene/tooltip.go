package scene

import (
	"math"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// Tooltip placement in screen pixels.
const (
	TooltipChars  = 80   // Description runes shown before the ellipsis
	TooltipOffset = 20.0 // Distance from the pointer to the card corner
	TooltipGap    = 10.0 // Distance kept when the card flips to the other side
)

// Tooltip is the hover card for an activity marker.
type Tooltip struct {
	Title string
	Type  string
	Text  string
}

// TooltipFor builds the hover card for a.
func TooltipFor(a *core.Activity) Tooltip {
	return Tooltip{
		Title: a.Title,
		Type:  a.Type,
		Text:  Truncate(a.Description, TooltipChars),
	}
}

// Truncate shortens s to n runes followed by "...". Strings that fit are
// returned unchanged.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// PlaceTooltip returns the top-left corner for a card of size (w, h) shown
// for a pointer at (px, py) in a viewport of size (vw, vh). The card sits
// below and right of the pointer and flips to the other side of any edge it
// would cross.
func PlaceTooltip(px, py, w, h, vw, vh float64) (x, y float64) {
	x = px + TooltipOffset
	y = py + TooltipOffset
	if x+w > vw {
		x = px - w - TooltipGap
	}
	if y+h > vh {
		y = py - h - TooltipGap
	}
	return math.Max(0, x), math.Max(0, y)
}
