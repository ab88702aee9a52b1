// Package main generates deterministic sample activity and country data
// for the globe from a world GeoJSON file.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/dataset"
)

// activityTypes are the kinds of event a campaign runs.
var activityTypes = []string{
	"Workshop",
	"Tree Planting",
	"Cleanup",
	"School Visit",
	"Rally",
}

var organizations = []string{
	"Green Schools Network",
	"Youth Climate Forum",
	"Coastal Care",
	"",
}

// Params defines the generated data set.
type Params struct {
	Seed       int64
	Activities int
	Countries  int     // Countries that get an editorial record
	Pending    float64 // Fraction of activities awaiting moderation
	Days       int     // Campaign length
	Start      time.Time
}

// generate places activities inside randomly chosen countries.
func generate(world *core.Dataset, p Params) ([]core.Activity, []core.CountryData) {
	rng := rand.New(rand.NewSource(p.Seed))
	if world.Len() == 0 {
		return nil, nil
	}

	var acts []core.Activity
	for tries := 0; len(acts) < p.Activities && tries < 100*p.Activities; tries++ {
		f := world.Features[rng.Intn(world.Len())]
		lon, lat, ok := pointIn(rng, f)
		if !ok {
			continue
		}
		typ := activityTypes[rng.Intn(len(activityTypes))]
		day := rng.Intn(max(p.Days, 1))
		a := core.Activity{
			Title:         fmt.Sprintf("%s in %s", typ, f.Name),
			Type:          typ,
			Coordinates:   core.Coordinates{lon, lat},
			Description:   fmt.Sprintf("A %s organised by local volunteers.", typ),
			Day:           day,
			EventDate:     p.Start.AddDate(0, 0, day).Format(time.DateOnly),
			PledgesCount:  rng.Intn(500),
			Organization:  organizations[rng.Intn(len(organizations))],
			ShowOrganizer: rng.Intn(2) == 0,
			SubmitterName: "Volunteer " + string(rune('A'+rng.Intn(26))),
			Country:       f.Name,
			Status:        core.StatusApproved,
		}
		if rng.Float64() < p.Pending {
			a.Status = core.StatusPending
		}
		a.ID = dataset.ActivityID(a)
		acts = append(acts, a)
	}
	sort.SliceStable(acts, func(i, j int) bool { return acts[i].Day < acts[j].Day })

	var countries []core.CountryData
	for _, i := range rng.Perm(world.Len())[:min(p.Countries, world.Len())] {
		f := world.Features[i]
		countries = append(countries, core.CountryData{
			ID:            f.Name,
			Name:          f.Name,
			Status:        "Active",
			ActiveSchools: rng.Intn(40),
			TotalPledges:  rng.Intn(20000),
			Highlights:    []string{"Regional launch event", "Schools pledge drive"},
			Body:          fmt.Sprintf("Volunteers across %s are running campaign events.", f.Name),
		})
	}
	return acts, countries
}

// pointIn rejection-samples the feature's bounding box.
func pointIn(rng *rand.Rand, f *core.Feature) (lon, lat float64, ok bool) {
	b := f.Bound()
	for i := 0; i < 50; i++ {
		lon = b.Min[0] + rng.Float64()*(b.Max[0]-b.Min[0])
		lat = b.Min[1] + rng.Float64()*(b.Max[1]-b.Min[1])
		if f.Contains(lon, lat) {
			return lon, lat, true
		}
	}
	return 0, 0, false
}

func main() {
	world := flag.String("world", "data/world.geojson", "World GeoJSON file")
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	count := flag.Int("activities", 200, "Number of activities")
	countries := flag.Int("countries", 20, "Number of countries with editorial records")
	pending := flag.Float64("pending", 0.1, "Fraction of activities awaiting moderation")
	days := flag.Int("days", 30, "Campaign length in days")
	start := flag.String("start", "2025-01-01", "First campaign day")
	format := flag.String("format", "json", "Activity output format: json or csv")
	outputDir := flag.String("output", "data", "Output directory")

	flag.Parse()

	first, err := time.Parse(time.DateOnly, *start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -start: %v\n", err)
		os.Exit(1)
	}
	ds, err := dataset.LoadWorld(*world, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	acts, records := generate(ds, Params{
		Seed:       *seed,
		Activities: *count,
		Countries:  *countries,
		Pending:    *pending,
		Days:       *days,
		Start:      first,
	})

	actPath := filepath.Join(*outputDir, "activities."+*format)
	if err := writeActivities(actPath, *format, acts); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", actPath, err)
		os.Exit(1)
	}
	fmt.Printf("Generated: %s (%d activities)\n", actPath, len(acts))

	countryPath := filepath.Join(*outputDir, "countries.json")
	if err := writeJSON(countryPath, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", countryPath, err)
		os.Exit(1)
	}
	fmt.Printf("Generated: %s (%d countries)\n", countryPath, len(records))
}

func writeActivities(path, format string, acts []core.Activity) error {
	switch format {
	case "json":
		return writeJSON(path, acts)
	case "csv":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := dataset.WriteActivitiesCSV(f, acts); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
