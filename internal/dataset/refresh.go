package dataset

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// Refresher re-reads a source on an interval and delivers each complete
// list. Failed reads keep the previous list on screen.
type Refresher struct {
	Source   Source
	Interval time.Duration
	Log      zerolog.Logger
}

// Run fetches until ctx is done. Each successful fetch is sent on out,
// which the UI goroutine drains.
func (r *Refresher) Run(ctx context.Context, out chan<- []core.Activity) {
	if r.Interval <= 0 {
		return
	}
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		acts, err := r.Source.Activities(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			r.Log.Warn().Err(err).Str("source", r.Source.Name()).Msg("activity refresh failed")
			continue
		}
		r.Log.Debug().Int("activities", len(acts)).Msg("activities refreshed")

		select {
		case out <- acts:
		case <-ctx.Done():
			return
		}
	}
}
