// Package main measures how long the globe takes to build a frame for a
// world file across view modes and zoom levels.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/dataset"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/interact"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/scene"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
)

// Scenario is one camera setup to measure.
type Scenario struct {
	Mode core.Mode
	Zoom float64
}

// Result stores the measurements of one scenario.
type Result struct {
	Timestamp  string  `csv:"timestamp"`
	CommitHash string  `csv:"commit_hash"`
	GoVersion  string  `csv:"go_version"`
	OS         string  `csv:"os"`
	Arch       string  `csv:"arch"`
	Mode       string  `csv:"mode"`
	Zoom       float64 `csv:"zoom"`
	Viewport   string  `csv:"viewport"`
	Frames     int     `csv:"frames"`
	AvgMs      float64 `csv:"avg_ms"`
	MaxMs      float64 `csv:"max_ms"`
	Shapes     int     `csv:"shapes"`
	Labels     int     `csv:"labels"`
	Markers    int     `csv:"markers"`
}

var defaultZooms = []float64{1, 1.7, 4, 12}

func getGitCommit() string {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}

// run builds frames with ambient rotation running, one tick per frame.
func run(world *core.Dataset, acts []core.Activity, sc Scenario, width, height float64, frames int) Result {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	e := state.NewEngine(state.DefaultConfig(), sc.Mode, zerolog.Nop())
	e.OfferSize(width, height, start)
	if sc.Mode == core.ModeFlat {
		e.SetTransform(interact.CenteredZoom(width, height, sc.Zoom))
	} else {
		e.SetScale(e.Projection().BaseScale() * sc.Zoom)
	}

	res := Result{
		Mode:     sc.Mode.String(),
		Zoom:     sc.Zoom,
		Viewport: fmt.Sprintf("%.0fx%.0f", width, height),
		Frames:   frames,
	}
	var total time.Duration
	for i := 0; i < frames; i++ {
		e.Tick(start.Add(time.Duration(i) * 16 * time.Millisecond))
		t0 := time.Now()
		fr := scene.Build(e, world, acts, scene.Options{MinLabelArea: scene.MinLabelArea})
		d := time.Since(t0)
		total += d
		if ms := float64(d.Microseconds()) / 1000; ms > res.MaxMs {
			res.MaxMs = ms
		}
		res.Shapes, res.Labels, res.Markers = len(fr.Shapes), len(fr.Labels), len(fr.Markers)
		e.Rendered()
	}
	if frames > 0 {
		res.AvgMs = float64(total.Microseconds()) / 1000 / float64(frames)
	}
	return res
}

func writeCSV(results []*Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalFile(&results, file)
}

func printSummary(results []*Result) {
	fmt.Println("\n=== FRAME BENCHMARK ===")
	fmt.Printf("%-6s %6s %10s %10s %8s %8s %8s\n", "Mode", "Zoom", "Avg(ms)", "Max(ms)", "Shapes", "Labels", "Markers")
	fmt.Println(strings.Repeat("-", 62))
	for _, r := range results {
		fmt.Printf("%-6s %6.1f %10.3f %10.3f %8d %8d %8d\n",
			r.Mode, r.Zoom, r.AvgMs, r.MaxMs, r.Shapes, r.Labels, r.Markers)
	}
}

func main() {
	worldPath := flag.String("world", "data/world.geojson", "World GeoJSON file")
	actPath := flag.String("activities", "", "Optional activity file to draw markers from")
	outputFile := flag.String("output", "evidence/frame_benchmark.csv", "Output CSV file")
	frames := flag.Int("frames", 120, "Frames per scenario")
	width := flag.Float64("width", 1280, "Viewport width")
	height := flag.Float64("height", 760, "Viewport height")
	modeFilter := flag.String("mode", "", "Run only this mode (globe or flat)")

	flag.Parse()

	world, err := dataset.LoadWorld(*worldPath, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}
	var acts []core.Activity
	if *actPath != "" {
		src := &dataset.FileSource{Path: *actPath, Log: zerolog.Nop()}
		if acts, err = src.Activities(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading activities: %v\n", err)
			os.Exit(1)
		}
	}

	modes := []core.Mode{core.ModeGlobe, core.ModeFlat}
	if *modeFilter != "" {
		m, ok := core.ParseMode(*modeFilter)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown mode %q\n", *modeFilter)
			os.Exit(1)
		}
		modes = []core.Mode{m}
	}

	if err := os.MkdirAll(filepath.Dir(*outputFile), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	commit := getGitCommit()
	stamp := time.Now().UTC().Format(time.RFC3339)
	fmt.Printf("Benchmarking %d countries, %d activities, %d frames per scenario\n", world.Len(), len(acts), *frames)

	var results []*Result
	for _, m := range modes {
		for _, z := range defaultZooms {
			r := run(world, acts, Scenario{Mode: m, Zoom: z}, *width, *height, *frames)
			r.Timestamp, r.CommitHash = stamp, commit
			r.GoVersion, r.OS, r.Arch = runtime.Version(), runtime.GOOS, runtime.GOARCH
			results = append(results, &r)
		}
	}

	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to: %s\n", *outputFile)
	printSummary(results)
}
