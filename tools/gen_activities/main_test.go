package main

import (
	"reflect"
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/dataset"
)

func testWorld() *core.Dataset {
	return core.NewDataset([]*core.Feature{
		core.NewFeature("404", "Kenya", orb.Polygon{{{34, -4}, {41, -4}, {41, 4}, {34, 4}, {34, -4}}}),
		core.NewFeature("076", "Brazil", orb.Polygon{{{-73, -33}, {-35, -33}, {-35, 5}, {-73, 5}, {-73, -33}}}),
	})
}

func testParams() Params {
	return Params{Seed: 7, Activities: 25, Countries: 1, Pending: 0.2, Days: 10, Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestGenerateDeterministic(t *testing.T) {
	a1, c1 := generate(testWorld(), testParams())
	a2, c2 := generate(testWorld(), testParams())
	if !reflect.DeepEqual(a1, a2) || !reflect.DeepEqual(c1, c2) {
		t.Error("same seed produced different data")
	}
}

func TestGenerateValid(t *testing.T) {
	world := testWorld()
	acts, countries := generate(world, testParams())
	if len(acts) != 25 {
		t.Fatalf("got %d activities", len(acts))
	}
	if len(countries) != 1 {
		t.Errorf("got %d countries", len(countries))
	}
	for i, a := range acts {
		if err := dataset.ValidateActivity(a); err != nil {
			t.Errorf("activity %d invalid: %v", i, err)
		}
		if f := world.FeatureByName(a.Country); f == nil || !f.Contains(a.Coordinates.Lon(), a.Coordinates.Lat()) {
			t.Errorf("activity %d at %v outside %s", i, a.Coordinates, a.Country)
		}
		if i > 0 && acts[i-1].Day > a.Day {
			t.Errorf("activities not ordered by day at %d", i)
		}
	}
}

func TestGenerateEmptyWorld(t *testing.T) {
	acts, countries := generate(core.NewDataset(nil), testParams())
	if acts != nil || countries != nil {
		t.Error("generated data without countries")
	}
}
