package state

import (
	"math"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// ambientActive reports whether the ambient scheduler would turn the
// globe on this tick. Eligibility is checked fresh every tick.
func (e *Engine) ambientActive() bool {
	if e.transition != nil || e.dragging {
		return false
	}
	if e.manual != core.RotateNone {
		return true
	}
	return e.hover.IsZero() && e.selection.IsZero()
}

// stepAmbient advances yaw by one tick of ambient or manual rotation.
func (e *Engine) stepAmbient() bool {
	if !e.ambientActive() {
		return false
	}

	speed := e.cfg.AmbientSpeed
	dir := 1.0
	if e.manual != core.RotateNone {
		speed = e.cfg.ManualSpeed
		dir = e.manual.Sign()
	}
	if e.mode == core.ModeFlat {
		// Slower when zoomed in.
		speed *= math.Max(0.1, (9-e.transform.K)/8)
	}

	r := e.proj.Rotation()
	r.Yaw += speed * dir
	return e.SetRotation(r)
}
