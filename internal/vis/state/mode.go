package state

import (
	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/projection"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/interact"
)

// SetMode switches between globe and flat map. Switching to the current
// mode does nothing.
func (e *Engine) SetMode(m core.Mode) bool {
	if m == e.mode {
		return false
	}
	prev := e.mode
	e.mode = m
	e.reset()
	e.log.Info().Stringer("from", prev).Stringer("to", m).Msg("view mode changed")
	return true
}

// ToggleMode flips between the two modes.
func (e *Engine) ToggleMode() bool {
	if e.mode == core.ModeGlobe {
		return e.SetMode(core.ModeFlat)
	}
	return e.SetMode(core.ModeGlobe)
}

// reset rebuilds the camera for the current mode and viewport. Yaw
// survives; pitch and roll are dropped on the flat map.
func (e *Engine) reset() {
	e.Interrupt()
	e.dragging = false

	rot := e.proj.Rotation().Sanitized(e.mode)
	e.proj = projection.New(e.mode, e.width, e.height, rot)

	if e.mode == core.ModeFlat {
		e.transform = e.constrain(interact.CenteredZoom(e.width, e.height, e.cfg.FlatDefaultZoom))
	} else {
		e.transform = interact.Identity
	}

	e.router.Attach(e.mode)
	e.requestRender()
}
