package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// ReadCountries decodes a JSON array of country records keyed by name.
func ReadCountries(r io.Reader) (map[string]core.CountryData, error) {
	var list []core.CountryData
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}
	out := make(map[string]core.CountryData, len(list))
	for _, c := range list {
		key := c.Name
		if key == "" {
			key = c.ID
		}
		if key == "" {
			continue
		}
		out[key] = c
	}
	return out, nil
}

// LoadCountries reads country records from a file. A missing file yields
// an empty set so every country shows its outreach summary.
func LoadCountries(path string) (map[string]core.CountryData, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return map[string]core.CountryData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open countries: %w", err)
	}
	defer f.Close()
	return ReadCountries(f)
}
