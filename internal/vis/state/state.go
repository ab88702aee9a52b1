// Package state manages the visualization state.
package state

import (
	"time"

	"github.com/elektrokombinacija/campaign-globe/internal/campaign"
	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// State holds all visualization state.
type State struct {
	World      *core.Dataset
	Activities []core.Activity
	Countries  map[string]core.CountryData
	Filter     core.TypeFilter
	Engine     *Engine
	Panel      *campaign.Summary // Info panel content, nil when closed
	Toast      Toast
}

// NewState creates a new visualization state.
func NewState(world *core.Dataset, acts []core.Activity, countries map[string]core.CountryData, engine *Engine) *State {
	s := &State{
		World:     world,
		Countries: countries,
		Engine:    engine,
	}
	s.SetActivities(acts)
	return s
}

// Types returns the activity types offered by the filter.
func (s *State) Types() []string {
	return core.ActivityTypes(s.Activities)
}

// VisibleActivities returns the activities that pass the type filter.
func (s *State) VisibleActivities() []core.Activity {
	return s.Filter.Apply(s.Activities)
}

// SetActivities replaces the whole activity list. A selected activity that
// no longer exists is deselected.
func (s *State) SetActivities(acts []core.Activity) {
	kept := make([]core.Activity, 0, len(acts))
	for _, a := range acts {
		if a.Visible() {
			kept = append(kept, a)
		}
	}
	s.Activities = kept

	sel := s.Engine.Selection()
	if sel.Kind == core.SelectActivity {
		if _, ok := core.ActivityByID(kept, sel.Key); !ok {
			s.ClearSelection()
		}
	}
	if h := s.Engine.Hover(); h.Kind == core.SelectActivity {
		if _, ok := core.ActivityByID(kept, h.Key); !ok {
			s.Engine.SetHover(core.None)
		}
	}
}

// Select resolves a selection reference, opens its summary and focuses
// the camera on it. Unknown references clear the selection.
func (s *State) Select(sel core.Selection) bool {
	switch sel.Kind {
	case core.SelectCountry:
		if f := s.World.FeatureByName(sel.Key); f != nil {
			return s.SelectCountry(f)
		}
	case core.SelectActivity:
		if a, ok := core.ActivityByID(s.Activities, sel.Key); ok {
			return s.SelectActivity(*a)
		}
	}
	s.ClearSelection()
	return false
}

// SelectCountry selects a country and focuses on it.
func (s *State) SelectCountry(f *core.Feature) bool {
	summary := campaign.ForCountry(f, s.Countries, s.Activities)
	s.Panel = &summary
	changed := s.Engine.Select(core.Country(f.Name))
	s.Engine.FocusFeature(f)
	return changed
}

// SelectActivity selects an activity and focuses on its location.
func (s *State) SelectActivity(a core.Activity) bool {
	summary := campaign.ForActivity(a)
	s.Panel = &summary
	changed := s.Engine.Select(core.ActivityRef(a.ID))
	s.Engine.FocusOn(a.Coordinates.Lon(), a.Coordinates.Lat(), 0)
	return changed
}

// ClearSelection closes the info panel and deselects.
func (s *State) ClearSelection() {
	s.Panel = nil
	s.Engine.Select(core.None)
}

// ToggleType flips one activity type in the filter. Hovering a marker that
// just disappeared would otherwise pin ambient rotation.
func (s *State) ToggleType(typ string) {
	s.Filter.Toggle(typ)
	if h := s.Engine.Hover(); h.Kind == core.SelectActivity {
		if _, ok := core.ActivityByID(s.VisibleActivities(), h.Key); !ok {
			s.Engine.SetHover(core.None)
		}
	}
}

// ClearFilter shows every activity type again.
func (s *State) ClearFilter() {
	s.Filter.Clear()
}

// Notify shows a transient status message.
func (s *State) Notify(text string, kind ToastKind, now time.Time, ttl time.Duration) {
	s.Toast.Show(text, kind, now, ttl)
}
