// Package campaign builds the info-panel summaries for selected countries
// and activities.
package campaign

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// Tone is the accent a stat is drawn with.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGold
	ToneRed
	ToneGreen
	ToneBlue
	ToneGrey
)

// Stat is one labelled figure in the info panel.
type Stat struct {
	Label  string
	Value  string
	Tone   Tone
	Action bool // Rendered as a call-to-action button
}

// Link points at further reading for an activity.
type Link struct {
	URL  string
	Text string
}

// Summary is the content of the info panel.
type Summary struct {
	Kind     core.SelectionKind
	ID       string
	Title    string
	Subtitle string
	Content  string // Lightweight markdown: **bold**, "> " quotes, "- " bullets
	Image    string
	Stats    []Stat
	Link     *Link
}

// DefaultLinkText labels activity links that carry no text of their own.
const DefaultLinkText = "Learn More"

var printer = message.NewPrinter(language.BritishEnglish)

// ForCountry summarises a country from its CMS record, or describes it as
// an outreach target when there is none.
func ForCountry(f *core.Feature, cms map[string]core.CountryData, acts []core.Activity) Summary {
	name := f.Name
	id := f.ISO
	if id == "" {
		id = f.ID
	}
	if id == "" {
		id = "Unknown"
	}

	count := strconv.Itoa(CountActivities(name, acts))
	s := Summary{Kind: core.SelectCountry, ID: id, Title: name}

	if c, ok := lookupCountry(cms, name); ok {
		s.Content = c.Body
		if len(c.Highlights) > 0 {
			var sb strings.Builder
			sb.WriteString("\n\n**Campaign Highlights:**")
			for _, h := range c.Highlights {
				sb.WriteString("\n- ")
				sb.WriteString(h)
			}
			s.Content += sb.String()
		}
		s.Stats = []Stat{
			{Label: "Activities", Value: count, Tone: ToneGold},
			{Label: "Total Pledges", Value: printer.Sprintf("%d", c.TotalPledges), Tone: ToneRed},
			{Label: "Status", Value: c.Status, Tone: ToneGreen},
			registerStat,
		}
		return s
	}

	s.Content = fmt.Sprintf("**%s** is currently being assessed for campaign activities.\n\n"+
		"Join the movement by registering a school or community group in this region.", name)
	status, tone := "Outreach", ToneGrey
	if count != "0" {
		status, tone = "Active", ToneGreen
	}
	s.Stats = []Stat{
		{Label: "Activities", Value: count, Tone: ToneGold},
		{Label: "Total Pledges", Value: "Pending", Tone: ToneGrey},
		{Label: "Status", Value: status, Tone: tone},
		registerStat,
	}
	return s
}

var registerStat = Stat{Label: "Get Involved", Value: "Register Event", Tone: ToneRed, Action: true}

// ForActivity summarises one activity.
func ForActivity(a core.Activity) Summary {
	content := a.Body
	if content == "" {
		content = "**Activity Snapshot:**\n> " + a.Description
	}
	if a.ParticipantFeedback != "" {
		content += "\n\n**Voices from the Field:**\n> \"" + a.ParticipantFeedback + "\""
	}

	stats := []Stat{
		{Label: "Activity Type", Value: firstWord(a.Type), Tone: ToneBlue},
		{Label: "Impact Reach", Value: "Pending", Tone: ToneGrey},
		{Label: "Event Date", Value: FormatEventDate(a.EventDate, a.EventEndDate), Tone: ToneGold},
	}
	if a.PledgesCount > 0 {
		pledges := Stat{Label: "Pledges Taken", Value: strconv.Itoa(a.PledgesCount), Tone: ToneRed}
		stats = append(stats[:1], append([]Stat{pledges}, stats[1:]...)...)
	}

	s := Summary{
		Kind:     core.SelectActivity,
		ID:       a.ID,
		Title:    a.Title,
		Subtitle: Subtitle(a),
		Content:  content,
		Image:    a.Image,
		Stats:    stats,
	}
	if a.LinkURL != "" {
		text := a.LinkText
		if text == "" {
			text = DefaultLinkText
		}
		s.Link = &Link{URL: a.LinkURL, Text: text}
	}
	return s
}

// Subtitle names the organiser when they agreed to be shown, otherwise the
// organisation or the activity type.
func Subtitle(a core.Activity) string {
	if a.ShowOrganizer && a.SubmitterName != "" {
		return "Organized by " + a.SubmitterName
	}
	if a.Organization != "" {
		return a.Organization
	}
	return a.Type
}

// CountActivities counts activities attributed to a country, either by
// their country field or by the name appearing in the title.
func CountActivities(name string, acts []core.Activity) int {
	if name == "" {
		return 0
	}
	lower := strings.ToLower(name)
	n := 0
	for _, a := range acts {
		if strings.EqualFold(a.Country, name) || strings.Contains(strings.ToLower(a.Title), lower) {
			n++
		}
	}
	return n
}

func lookupCountry(cms map[string]core.CountryData, name string) (core.CountryData, bool) {
	if c, ok := cms[name]; ok {
		return c, true
	}
	for _, c := range cms {
		if c.ID == name || c.Name == name {
			return c, true
		}
	}
	return core.CountryData{}, false
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
