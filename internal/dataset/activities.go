package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// Source supplies the complete activity list.
type Source interface {
	Name() string
	Activities(ctx context.Context) ([]core.Activity, error)
}

// activityNamespace seeds deterministic ids for records that lack one.
var activityNamespace = uuid.MustParse("6f1c9c52-3a57-4c6e-9f0e-5b9d2b8b7e11")

// record is the wire form of an activity. Feeds backed by the CMS name the
// identifier slug and the organisation organization_name.
type record struct {
	core.Activity
	Slug             string `json:"slug,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
}

func (r record) activity() core.Activity {
	a := r.Activity
	if a.ID == "" {
		a.ID = r.Slug
	}
	if a.Organization == "" {
		a.Organization = r.OrganizationName
	}
	return a
}

// DecodeActivities parses a JSON array of activity records.
func DecodeActivities(data []byte) ([]core.Activity, error) {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	acts := make([]core.Activity, len(recs))
	for i, r := range recs {
		acts[i] = r.activity()
	}
	return acts, nil
}

// ActivityID derives a stable id from an activity's title and position.
func ActivityID(a core.Activity) string {
	key := fmt.Sprintf("%s|%.5f|%.5f", strings.TrimSpace(a.Title), a.Coordinates.Lon(), a.Coordinates.Lat())
	return uuid.NewSHA1(activityNamespace, []byte(key)).String()
}

// Normalize fills missing ids, drops records that fail validation and
// orders the rest by campaign day.
func Normalize(acts []core.Activity, log zerolog.Logger) []core.Activity {
	out := make([]core.Activity, 0, len(acts))
	seen := make(map[string]bool, len(acts))
	for _, a := range acts {
		if a.ID == "" {
			a.ID = ActivityID(a)
		}
		if err := ValidateActivity(a); err != nil {
			log.Warn().Str("id", a.ID).Err(err).Msg("dropping invalid activity")
			continue
		}
		if seen[a.ID] {
			log.Warn().Str("id", a.ID).Msg("dropping duplicate activity")
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// FileSource reads activities from a .json or .csv file.
type FileSource struct {
	Path string
	Log  zerolog.Logger
}

// Name identifies the source in logs.
func (s *FileSource) Name() string { return "file:" + s.Path }

// Activities reads and normalizes the file.
func (s *FileSource) Activities(ctx context.Context) ([]core.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open activities: %w", err)
	}
	defer f.Close()

	acts, err := ReadActivities(f, filepath.Ext(s.Path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return Normalize(acts, s.Log), nil
}

// ReadActivities decodes activities in the format named by ext.
func ReadActivities(r io.Reader, ext string) ([]core.Activity, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		return ReadActivitiesCSV(r)
	case ".json", "":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read activities: %w", err)
		}
		return DecodeActivities(data)
	default:
		return nil, fmt.Errorf("unsupported activity format %q", ext)
	}
}

// StaticSource serves a fixed list.
type StaticSource struct {
	List []core.Activity
}

// Name identifies the source in logs.
func (s *StaticSource) Name() string { return "static" }

// Activities returns a copy of the list.
func (s *StaticSource) Activities(context.Context) ([]core.Activity, error) {
	return append([]core.Activity(nil), s.List...), nil
}

// FallbackSource serves Primary and falls back to Secondary when Primary
// fails or returns nothing.
type FallbackSource struct {
	Primary   Source
	Secondary Source
	Log       zerolog.Logger
}

// Name identifies the source in logs.
func (s *FallbackSource) Name() string {
	return s.Primary.Name() + "|" + s.Secondary.Name()
}

// Activities tries each source in turn.
func (s *FallbackSource) Activities(ctx context.Context) ([]core.Activity, error) {
	acts, err := s.Primary.Activities(ctx)
	if err == nil && len(acts) > 0 {
		return acts, nil
	}
	ev := s.Log.Warn().Str("source", s.Primary.Name()).Str("fallback", s.Secondary.Name())
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("primary activity source unusable")

	acts, ferr := s.Secondary.Activities(ctx)
	if ferr != nil {
		if err != nil {
			return nil, fmt.Errorf("%w (fallback: %v)", err, ferr)
		}
		return nil, ferr
	}
	return acts, nil
}
