// Command geocheck loads the globe's data files and reports what the map
// will show: countries without centroids, activities that land in no
// country and where a coordinate projects on screen.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/campaign-globe/internal/campaign"
	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/dataset"
	"github.com/elektrokombinacija/campaign-globe/internal/projection"
)

// Report summarises a data check.
type Report struct {
	Countries     int
	NoCentroid    []string
	Activities    int
	Hidden        int // Not approved
	Regions       map[campaign.Region]int
	Offshore      []string // Activities inside no country
	CountryClash  []string // Country field disagrees with location
	ActivityTypes []string
}

// check cross-references the world with the activities.
func check(world *core.Dataset, acts []core.Activity) Report {
	r := Report{
		Countries:     world.Len(),
		Activities:    len(acts),
		Regions:       make(map[campaign.Region]int),
		ActivityTypes: core.ActivityTypes(acts),
	}
	for _, f := range world.Features {
		if _, ok := f.Centroid(); !ok {
			r.NoCentroid = append(r.NoCentroid, f.Name)
		}
	}
	for _, a := range acts {
		if !a.Visible() {
			r.Hidden++
		}
		lon, lat := a.Coordinates.Lon(), a.Coordinates.Lat()
		f := world.FeatureAt(lon, lat)
		if f == nil {
			r.Offshore = append(r.Offshore, a.Title)
			r.Regions[campaign.RegionAt(lon, lat)]++
			continue
		}
		r.Regions[campaign.RegionOf(f)]++
		if a.Country != "" && !strings.EqualFold(a.Country, f.Name) {
			r.CountryClash = append(r.CountryClash, fmt.Sprintf("%s: %s vs %s", a.Title, a.Country, f.Name))
		}
	}
	return r
}

func (r Report) print(w io.Writer) {
	fmt.Fprintf(w, "Countries: %d (%d without centroid)\n", r.Countries, len(r.NoCentroid))
	for _, name := range r.NoCentroid {
		fmt.Fprintf(w, "  no centroid: %s\n", name)
	}
	fmt.Fprintf(w, "Activities: %d (%d hidden by moderation)\n", r.Activities, r.Hidden)
	if len(r.ActivityTypes) > 0 {
		fmt.Fprintf(w, "Types: %s\n", strings.Join(r.ActivityTypes, ", "))
	}

	regions := make([]campaign.Region, 0, len(r.Regions))
	for reg := range r.Regions {
		regions = append(regions, reg)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
	for _, reg := range regions {
		fmt.Fprintf(w, "  %-10s %d\n", reg, r.Regions[reg])
	}

	for _, t := range r.Offshore {
		fmt.Fprintf(w, "  offshore: %s\n", t)
	}
	for _, c := range r.CountryClash {
		fmt.Fprintf(w, "  country mismatch: %s\n", c)
	}
}

// find prints countries matching query with their label anchor.
func find(w io.Writer, world *core.Dataset, query string) {
	matches := world.Search(query, 0)
	if len(matches) == 0 {
		fmt.Fprintf(w, "No country matches %q\n", query)
		return
	}
	for _, f := range matches {
		c, ok := f.Centroid()
		if !ok {
			fmt.Fprintf(w, "%-30s %-4s no centroid\n", f.Name, f.ISO)
			continue
		}
		fmt.Fprintf(w, "%-30s %-4s centroid (%.2f, %.2f) %s\n", f.Name, f.ISO, c[0], c[1], campaign.RegionOf(f))
	}
}

// project prints where lon,lat lands in both modes at the given viewport
// with the default camera.
func project(w io.Writer, arg string, width, height float64) error {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return fmt.Errorf("want lon,lat, got %q", arg)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return fmt.Errorf("lon: %w", err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return fmt.Errorf("lat: %w", err)
	}

	for _, mode := range []core.Mode{core.ModeGlobe, core.ModeFlat} {
		p := projection.New(mode, width, height, core.Rotation{})
		pt, ok := p.Project(lon, lat)
		if !ok {
			fmt.Fprintf(w, "%-6s hidden\n", mode)
			continue
		}
		fmt.Fprintf(w, "%-6s (%.1f, %.1f) scale %.1f\n", mode, pt.X, pt.Y, p.Scale())
	}
	return nil
}

func main() {
	worldPath := flag.String("world", "data/world.geojson", "World GeoJSON file")
	actPath := flag.String("activities", "data/activities.json", "Activity file (.json or .csv)")
	query := flag.String("find", "", "List countries whose name contains this")
	point := flag.String("project", "", "Project lon,lat in both view modes")
	width := flag.Float64("width", 800, "Viewport width for -project")
	height := flag.Float64("height", 600, "Viewport height for -project")
	flag.Parse()

	if *point != "" {
		if err := project(os.Stdout, *point, *width, *height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	world, err := dataset.LoadWorld(*worldPath, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}
	if *query != "" {
		find(os.Stdout, world, *query)
		return
	}

	fmt.Println("=== Campaign Globe data check ===")
	src := &dataset.FileSource{Path: *actPath, Log: zerolog.New(os.Stderr).With().Timestamp().Logger()}
	acts, err := src.Activities(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading activities: %v\n", err)
		os.Exit(1)
	}
	check(world, acts).print(os.Stdout)
}
