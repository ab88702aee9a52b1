package core

import (
	"sort"
	"strings"
)

// ActivityStatus is the moderation state of a submitted activity.
type ActivityStatus string

const (
	StatusPending  ActivityStatus = "pending"
	StatusApproved ActivityStatus = "approved"
	StatusRejected ActivityStatus = "rejected"
)

// Coordinates is a GeoJSON-ordered position: [lon, lat].
type Coordinates [2]float64

// Lon returns the longitude.
func (c Coordinates) Lon() float64 { return c[0] }

// Lat returns the latitude.
func (c Coordinates) Lat() float64 { return c[1] }

// Activity is one campaign event pinned on the map.
type Activity struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Type                string         `json:"type"`
	Coordinates         Coordinates    `json:"coordinates"`
	Description         string         `json:"description,omitempty"`
	Body                string         `json:"body,omitempty"`
	Day                 int            `json:"day"`
	EventDate           string         `json:"event_date,omitempty"`
	EventEndDate        string         `json:"event_end_date,omitempty"`
	Image               string         `json:"image,omitempty"`
	LinkURL             string         `json:"link_url,omitempty"`
	LinkText            string         `json:"link_text,omitempty"`
	PledgesCount        int            `json:"pledges_count"`
	Organization        string         `json:"organization,omitempty"`
	ParticipantFeedback string         `json:"participant_feedback,omitempty"`
	SubmitterName       string         `json:"submitter_name,omitempty"`
	ShowOrganizer       bool           `json:"show_organizer"`
	Country             string         `json:"country,omitempty"`
	Status              ActivityStatus `json:"status,omitempty"`
}

// Visible reports whether the activity may be shown on the map.
// Records without a status predate moderation and are shown.
func (a *Activity) Visible() bool {
	return a.Status == "" || a.Status == StatusApproved
}

// CountryData is the editorial record for a participating country.
type CountryData struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Status        string   `json:"status,omitempty"`
	ActiveSchools int      `json:"active_schools"`
	TotalPledges  int      `json:"total_pledges"`
	Highlights    []string `json:"highlights,omitempty"`
	Body          string   `json:"body,omitempty"`
}

// ActivityTypes returns the distinct activity types, sorted.
func ActivityTypes(acts []Activity) []string {
	seen := make(map[string]bool)
	var types []string
	for _, a := range acts {
		if a.Type == "" || seen[a.Type] {
			continue
		}
		seen[a.Type] = true
		types = append(types, a.Type)
	}
	sort.Strings(types)
	return types
}

// TypeFilter holds the activity types the user has enabled.
// An empty filter admits everything.
type TypeFilter struct {
	enabled map[string]bool
}

// Toggle flips one type in or out of the filter.
func (f *TypeFilter) Toggle(typ string) {
	if f.enabled == nil {
		f.enabled = make(map[string]bool)
	}
	if f.enabled[typ] {
		delete(f.enabled, typ)
	} else {
		f.enabled[typ] = true
	}
}

// Clear removes every type from the filter.
func (f *TypeFilter) Clear() {
	f.enabled = nil
}

// Enabled reports whether typ is explicitly selected.
func (f *TypeFilter) Enabled(typ string) bool {
	return f.enabled[typ]
}

// Active reports whether any type is selected.
func (f *TypeFilter) Active() bool {
	return len(f.enabled) > 0
}

// Apply returns the activities admitted by the filter.
func (f *TypeFilter) Apply(acts []Activity) []Activity {
	if !f.Active() {
		return acts
	}
	out := make([]Activity, 0, len(acts))
	for _, a := range acts {
		if f.enabled[a.Type] {
			out = append(out, a)
		}
	}
	return out
}

// Label returns a short description of the filter for the toolbar.
func (f *TypeFilter) Label() string {
	if !f.Active() {
		return "All types"
	}
	types := make([]string, 0, len(f.enabled))
	for t := range f.enabled {
		types = append(types, t)
	}
	sort.Strings(types)
	return strings.Join(types, ", ")
}

// ActivityByID finds an activity by ID.
func ActivityByID(acts []Activity, id string) (*Activity, bool) {
	for i := range acts {
		if acts[i].ID == id {
			return &acts[i], true
		}
	}
	return nil, false
}
