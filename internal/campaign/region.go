package campaign

import "github.com/elektrokombinacija/campaign-globe/internal/core"

// Region is the continental colour group a country is drawn in.
type Region int

const (
	RegionUnknown Region = iota
	RegionAmericas
	RegionEurope
	RegionAfrica
	RegionAsia
	RegionOceania
)

func (r Region) String() string {
	return [...]string{"unknown", "americas", "europe", "africa", "asia", "oceania"}[r]
}

// RegionAt approximates the continent of a centroid.
func RegionAt(lon, lat float64) Region {
	switch {
	case lon < -30:
		return RegionAmericas
	case lon < 60:
		if lat > 25 {
			return RegionEurope
		}
		return RegionAfrica
	case lat < 10 && lon > 90:
		return RegionOceania
	default:
		return RegionAsia
	}
}

// RegionOf classifies a country by its centroid.
func RegionOf(f *core.Feature) Region {
	if f == nil {
		return RegionUnknown
	}
	c, ok := f.Centroid()
	if !ok {
		return RegionUnknown
	}
	return RegionAt(c[0], c[1])
}
