package dataset

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// CSVRow is the flat CSV form of an activity.
type CSVRow struct {
	ID            string  `csv:"id"`
	Title         string  `csv:"title"`
	Type          string  `csv:"type"`
	Lon           float64 `csv:"lon"`
	Lat           float64 `csv:"lat"`
	Description   string  `csv:"description"`
	Day           int     `csv:"day"`
	EventDate     string  `csv:"event_date"`
	EventEndDate  string  `csv:"event_end_date"`
	Image         string  `csv:"image"`
	LinkURL       string  `csv:"link_url"`
	LinkText      string  `csv:"link_text"`
	PledgesCount  int     `csv:"pledges_count"`
	Organization  string  `csv:"organization"`
	Feedback      string  `csv:"participant_feedback"`
	SubmitterName string  `csv:"submitter_name"`
	ShowOrganizer bool    `csv:"show_organizer"`
	Country       string  `csv:"country"`
	Status        string  `csv:"status"`
}

// Activity converts the row.
func (r CSVRow) Activity() core.Activity {
	return core.Activity{
		ID:                  r.ID,
		Title:               r.Title,
		Type:                r.Type,
		Coordinates:         core.Coordinates{r.Lon, r.Lat},
		Description:         r.Description,
		Day:                 r.Day,
		EventDate:           r.EventDate,
		EventEndDate:        r.EventEndDate,
		Image:               r.Image,
		LinkURL:             r.LinkURL,
		LinkText:            r.LinkText,
		PledgesCount:        r.PledgesCount,
		Organization:        r.Organization,
		ParticipantFeedback: r.Feedback,
		SubmitterName:       r.SubmitterName,
		ShowOrganizer:       r.ShowOrganizer,
		Country:             r.Country,
		Status:              core.ActivityStatus(r.Status),
	}
}

// RowFor flattens an activity for CSV output.
func RowFor(a core.Activity) CSVRow {
	return CSVRow{
		ID:            a.ID,
		Title:         a.Title,
		Type:          a.Type,
		Lon:           a.Coordinates.Lon(),
		Lat:           a.Coordinates.Lat(),
		Description:   a.Description,
		Day:           a.Day,
		EventDate:     a.EventDate,
		EventEndDate:  a.EventEndDate,
		Image:         a.Image,
		LinkURL:       a.LinkURL,
		LinkText:      a.LinkText,
		PledgesCount:  a.PledgesCount,
		Organization:  a.Organization,
		Feedback:      a.ParticipantFeedback,
		SubmitterName: a.SubmitterName,
		ShowOrganizer: a.ShowOrganizer,
		Country:       a.Country,
		Status:        string(a.Status),
	}
}

// ReadActivitiesCSV parses activities with a header row.
func ReadActivitiesCSV(r io.Reader) ([]core.Activity, error) {
	var rows []*CSVRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("decode activity csv: %w", err)
	}
	acts := make([]core.Activity, len(rows))
	for i, row := range rows {
		acts[i] = row.Activity()
	}
	return acts, nil
}

// WriteActivitiesCSV writes activities with a header row.
func WriteActivitiesCSV(w io.Writer, acts []core.Activity) error {
	rows := make([]*CSVRow, len(acts))
	for i, a := range acts {
		row := RowFor(a)
		rows[i] = &row
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("encode activity csv: %w", err)
	}
	return nil
}
