package scene

import (
	"strings"
	"testing"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 81)
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"", 80, ""},
		{"short", 80, "short"},
		{strings.Repeat("a", 80), 80, strings.Repeat("a", 80)},
		{long, 80, strings.Repeat("a", 80) + "..."},
		{"Žižkov čajovna", 5, "Žižko..."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestTooltipFor(t *testing.T) {
	a := &core.Activity{
		Title:       "Repair Cafe",
		Type:        "Workshop",
		Description: strings.Repeat("x", 100),
	}
	tip := TooltipFor(a)
	if tip.Title != "Repair Cafe" || tip.Type != "Workshop" {
		t.Errorf("tooltip = %+v", tip)
	}
	if len(tip.Text) != 83 || !strings.HasSuffix(tip.Text, "...") {
		t.Errorf("text = %q", tip.Text)
	}
}

func TestPlaceTooltip(t *testing.T) {
	tests := []struct {
		name         string
		px, py, vh   float64
		wantX, wantY float64
	}{
		{"below right", 100, 100, 600, 120, 120},
		{"flips left", 700, 100, 600, 430, 120},
		{"flips up", 100, 500, 600, 120, 340},
		{"flips both", 700, 500, 600, 430, 340},
		{"clamped", 200, 140, 200, 220, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := PlaceTooltip(tt.px, tt.py, 260, 150, 800, tt.vh)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("PlaceTooltip = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
