// Package dataset loads the world geometry and campaign data the map draws.
package dataset

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

type goJSON struct{}

func (goJSON) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (goJSON) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

func init() {
	geojson.CustomJSONMarshaler = goJSON{}
	geojson.CustomJSONUnmarshaler = goJSON{}
}

// ReadWorld parses a GeoJSON FeatureCollection of country polygons.
// Features without polygonal geometry are skipped with a warning.
func ReadWorld(r io.Reader, log zerolog.Logger) (*core.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read world: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse world: %w", err)
	}

	features := make([]*core.Feature, 0, len(fc.Features))
	for i, gf := range fc.Features {
		name := gf.Properties.MustString("name", "")
		switch gf.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			log.Warn().Int("index", i).Str("name", name).Msg("skipping non-polygon feature")
			continue
		}

		f := core.NewFeature(featureID(gf), name, gf.Geometry)
		f.ISO = gf.Properties.MustString("iso_a3", "")
		if _, ok := f.Centroid(); !ok {
			log.Warn().Str("name", name).Msg("country has no centroid")
		}
		features = append(features, f)
	}
	log.Debug().Int("features", len(features)).Msg("world loaded")
	return core.NewDataset(features), nil
}

// LoadWorld reads a GeoJSON world file.
func LoadWorld(path string, log zerolog.Logger) (*core.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open world: %w", err)
	}
	defer f.Close()
	return ReadWorld(f, log)
}

func featureID(gf *geojson.Feature) string {
	switch id := gf.ID.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case nil:
	default:
		return fmt.Sprint(id)
	}
	return gf.Properties.MustString("id", "")
}
