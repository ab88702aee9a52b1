package main

import (
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

func TestRun(t *testing.T) {
	world := core.NewDataset([]*core.Feature{
		core.NewFeature("404", "Kenya", orb.Polygon{{{34, -4}, {41, -4}, {41, 4}, {34, 4}, {34, -4}}}),
	})
	acts := []core.Activity{{ID: "a", Title: "Walk", Coordinates: core.Coordinates{36.8, -1.3}}}

	for _, sc := range []Scenario{{core.ModeGlobe, 1}, {core.ModeFlat, 4}} {
		r := run(world, acts, sc, 800, 600, 5)
		if r.Frames != 5 || r.Shapes != 1 || r.Markers != 1 {
			t.Errorf("%v: %+v", sc, r)
		}
		if r.AvgMs < 0 || r.MaxMs < 0 {
			t.Errorf("%v: timings avg %v max %v", sc, r.AvgMs, r.MaxMs)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := writeCSV([]*Result{{Mode: "globe", Zoom: 1, Frames: 3}}, path); err != nil {
		t.Fatal(err)
	}
}
