package campaign

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

func TestRegionAt(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		want     Region
	}{
		{"Brazil", -51, -10, RegionAmericas},
		{"France", 2, 46, RegionEurope},
		{"Nigeria", 8, 9, RegionAfrica},
		{"Egypt", 30, 26, RegionEurope},
		{"Australia", 134, -25, RegionOceania},
		{"Indonesia", 117, -2, RegionOceania},
		{"India", 79, 22, RegionAsia},
		{"Sri Lanka", 80, 7, RegionAsia},
	}

	for _, tt := range tests {
		if got := RegionAt(tt.lon, tt.lat); got != tt.want {
			t.Errorf("%s: RegionAt(%v, %v) = %v, want %v", tt.name, tt.lon, tt.lat, got, tt.want)
		}
	}
}

func TestRegionOf(t *testing.T) {
	if RegionOf(nil) != RegionUnknown {
		t.Error("nil feature should be unknown")
	}
	empty := core.NewFeature("x", "Empty", orb.Polygon{})
	if RegionOf(empty) != RegionUnknown {
		t.Error("feature without centroid should be unknown")
	}
	f := core.NewFeature("y", "Box", orb.Polygon{{{0, 40}, {4, 40}, {4, 44}, {0, 44}, {0, 40}}})
	if RegionOf(f) != RegionEurope {
		t.Errorf("RegionOf = %v", RegionOf(f))
	}
}
