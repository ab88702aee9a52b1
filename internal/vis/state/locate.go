package state

import (
	"time"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/locate"
)

// ShowLocation moves the camera to a location result and reports it in
// the toast. A position inside a country selects that country; anywhere
// else the camera centres on the raw point, zoomed to flatZoom on the map.
func (s *State) ShowLocation(res locate.Result, now time.Time, ttl time.Duration, flatZoom float64) locate.Outcome {
	out := locate.Resolve(s.World, res)
	if !out.OK {
		s.Notify(out.Message, ToastError, now, ttl)
		return out
	}

	if out.Country != nil {
		s.SelectCountry(out.Country)
	} else {
		zoom := 0.0
		if s.Engine.Mode() == core.ModeFlat {
			zoom = flatZoom
		}
		s.Engine.FocusOn(out.Position.Lon, out.Position.Lat, zoom)
	}
	s.Notify(out.Message, ToastSuccess, now, ttl)
	return out
}
