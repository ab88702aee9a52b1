package campaign

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

func kenya() *core.Feature {
	f := core.NewFeature("404", "Kenya", orb.Polygon{{{34, -4}, {41, -4}, {41, 4}, {34, 4}, {34, -4}}})
	f.ISO = "KEN"
	return f
}

func TestForCountryWithCMS(t *testing.T) {
	cms := map[string]core.CountryData{
		"Kenya": {
			ID: "Kenya", Name: "Kenya", Status: "Active",
			TotalPledges: 12345, Body: "Schools across Kenya.",
			Highlights: []string{"Nairobi rally", "Mombasa cleanup"},
		},
	}
	acts := []core.Activity{
		{ID: "1", Title: "Kenya walk"},
		{ID: "2", Title: "Other", Country: "kenya"},
		{ID: "3", Title: "Uganda talk"},
	}

	s := ForCountry(kenya(), cms, acts)
	if s.Kind != core.SelectCountry || s.ID != "KEN" || s.Title != "Kenya" {
		t.Errorf("header = %v %q %q", s.Kind, s.ID, s.Title)
	}
	want := "Schools across Kenya.\n\n**Campaign Highlights:**\n- Nairobi rally\n- Mombasa cleanup"
	if s.Content != want {
		t.Errorf("Content = %q", s.Content)
	}

	tests := []struct {
		i     int
		label string
		value string
	}{
		{0, "Activities", "2"},
		{1, "Total Pledges", "12,345"},
		{2, "Status", "Active"},
		{3, "Get Involved", "Register Event"},
	}
	for _, tt := range tests {
		if s.Stats[tt.i].Label != tt.label || s.Stats[tt.i].Value != tt.value {
			t.Errorf("stat %d = %+v, want %s=%s", tt.i, s.Stats[tt.i], tt.label, tt.value)
		}
	}
	if !s.Stats[3].Action {
		t.Error("register stat should be an action")
	}
}

func TestForCountryFallback(t *testing.T) {
	s := ForCountry(kenya(), nil, nil)
	if !strings.HasPrefix(s.Content, "**Kenya** is currently being assessed") {
		t.Errorf("Content = %q", s.Content)
	}
	if s.Stats[1].Value != "Pending" || s.Stats[2].Value != "Outreach" {
		t.Errorf("stats = %+v", s.Stats)
	}

	s = ForCountry(kenya(), nil, []core.Activity{{Title: "KENYA march"}})
	if s.Stats[2].Value != "Active" || s.Stats[2].Tone != ToneGreen {
		t.Errorf("status = %+v", s.Stats[2])
	}
}

func TestForCountryIDFallback(t *testing.T) {
	f := core.NewFeature("", "Nowhere", nil)
	if s := ForCountry(f, nil, nil); s.ID != "Unknown" {
		t.Errorf("ID = %q, want Unknown", s.ID)
	}
}

func TestForActivity(t *testing.T) {
	a := core.Activity{
		ID:                  "a1",
		Title:               "Beach cleanup",
		Type:                "Cleanup drive",
		Description:         "Collected plastic.",
		ParticipantFeedback: "Loved it",
		EventDate:           "2025-03-03",
		EventEndDate:        "2025-03-05",
		PledgesCount:        40,
		LinkURL:             "https://example.org/a1",
		Organization:        "Green Club",
	}

	s := ForActivity(a)
	wantContent := "**Activity Snapshot:**\n> Collected plastic.\n\n**Voices from the Field:**\n> \"Loved it\""
	if s.Content != wantContent {
		t.Errorf("Content = %q", s.Content)
	}
	if s.Subtitle != "Green Club" {
		t.Errorf("Subtitle = %q", s.Subtitle)
	}

	labels := make([]string, len(s.Stats))
	for i, st := range s.Stats {
		labels[i] = st.Label
	}
	if strings.Join(labels, ",") != "Activity Type,Pledges Taken,Impact Reach,Event Date" {
		t.Errorf("stat order = %v", labels)
	}
	if s.Stats[0].Value != "Cleanup" {
		t.Errorf("type stat = %q", s.Stats[0].Value)
	}
	if s.Stats[3].Value != "3–5 Mar 2025" {
		t.Errorf("date stat = %q", s.Stats[3].Value)
	}
	if s.Link == nil || s.Link.Text != DefaultLinkText {
		t.Errorf("Link = %+v", s.Link)
	}
}

func TestForActivityBodyAndNoPledges(t *testing.T) {
	s := ForActivity(core.Activity{Body: "Full story", Type: "Talk"})
	if s.Content != "Full story" {
		t.Errorf("Content = %q", s.Content)
	}
	if len(s.Stats) != 3 {
		t.Errorf("stats = %d, want 3", len(s.Stats))
	}
	if s.Link != nil {
		t.Error("no link expected")
	}
}

func TestSubtitle(t *testing.T) {
	tests := []struct {
		a    core.Activity
		want string
	}{
		{core.Activity{ShowOrganizer: true, SubmitterName: "Ada", Organization: "Org", Type: "Walk"}, "Organized by Ada"},
		{core.Activity{ShowOrganizer: false, SubmitterName: "Ada", Organization: "Org", Type: "Walk"}, "Org"},
		{core.Activity{ShowOrganizer: true, Type: "Walk"}, "Walk"},
	}
	for _, tt := range tests {
		if got := Subtitle(tt.a); got != tt.want {
			t.Errorf("Subtitle(%+v) = %q, want %q", tt.a, got, tt.want)
		}
	}
}
