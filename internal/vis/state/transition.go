package state

import (
	"time"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/interact"
)

// Transition animates the camera between two states over a fixed duration.
// On the globe it interpolates rotation and scale; on the flat map it
// interpolates the zoom transform.
type Transition struct {
	Duration time.Duration
	Ease     EaseFunc

	start   time.Time
	started bool

	flat               bool
	fromRot, toRot     core.Rotation
	fromScale, toScale float64
	fromView, toView   interact.Transform
}

// Advance returns eased progress at now. The clock starts on the first call.
func (t *Transition) Advance(now time.Time) (progress float64, done bool) {
	if !t.started {
		t.start = now
		t.started = true
	}
	if t.Duration <= 0 {
		return 1, true
	}
	raw := float64(now.Sub(t.start)) / float64(t.Duration)
	if raw >= 1 {
		return 1, true
	}
	if raw < 0 {
		raw = 0
	}
	ease := t.Ease
	if ease == nil {
		ease = EaseLinear
	}
	return ease(raw), false
}

// Target returns the rotation a globe transition ends on.
func (t *Transition) Target() core.Rotation { return t.toRot }

// TargetView returns the transform a flat transition ends on.
func (t *Transition) TargetView() interact.Transform { return t.toView }

// RotationAt interpolates the rotation componentwise.
func (t *Transition) RotationAt(p float64) core.Rotation {
	return core.Rotation{
		Yaw:   lerp(t.fromRot.Yaw, t.toRot.Yaw, p),
		Pitch: lerp(t.fromRot.Pitch, t.toRot.Pitch, p),
		Roll:  lerp(t.fromRot.Roll, t.toRot.Roll, p),
	}
}

// FocusOn animates the camera to (lon, lat). zoom is a multiple of the
// mode's default scale; zero keeps the current zoom. It reports whether a
// transition started.
func (e *Engine) FocusOn(lon, lat, zoom float64) bool {
	if !finite(lon) || !finite(lat) || lat < -90 || lat > 90 {
		e.log.Warn().Float64("lon", lon).Float64("lat", lat).Msg("focus target out of range")
		return false
	}
	if e.mode == core.ModeGlobe {
		return e.focusGlobe(lon, lat, zoom)
	}

	p, ok := e.proj.Project(lon, lat)
	if !ok {
		return false
	}
	k := e.transform.K
	if zoom > 0 {
		k = zoom
	}
	k = interact.ClampZoom(k, 1, e.cfg.MaxZoom)
	return e.animateView(interact.CenterOn(p.X, p.Y, k, e.width, e.height), e.cfg.TransitionDuration, EaseCubicInOut)
}

// FocusFeature animates the camera to a country: the globe turns to its
// centroid, the flat map zooms to fit its bounds.
func (e *Engine) FocusFeature(f *core.Feature) bool {
	if f == nil {
		return false
	}
	if e.mode == core.ModeGlobe {
		c, ok := f.Centroid()
		if !ok {
			e.log.Warn().Str("country", f.Name).Msg("country has no centroid")
			return false
		}
		return e.focusGlobe(c[0], c[1], 0)
	}

	b, ok := e.proj.BoundsOf(f.Geometry)
	if !ok {
		return false
	}
	k, ok := interact.FitBounds(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, e.width, e.height, e.cfg.FocusFill)
	if !ok {
		e.log.Debug().Str("country", f.Name).Msg("country bounds are degenerate")
		return false
	}
	k = interact.ClampZoom(k, 1, e.cfg.MaxZoom)
	c := b.Center()
	return e.animateView(interact.CenterOn(c.X, c.Y, k, e.width, e.height), e.cfg.TransitionDuration, EaseCubicInOut)
}

// ZoomIn zooms one step towards the viewport centre.
func (e *Engine) ZoomIn() bool { return e.zoomBy(e.cfg.ZoomStep) }

// ZoomOut zooms one step away from the viewport centre.
func (e *Engine) ZoomOut() bool { return e.zoomBy(1 / e.cfg.ZoomStep) }

func (e *Engine) zoomBy(factor float64) bool {
	if e.dragging {
		return false
	}
	if e.mode == core.ModeGlobe {
		e.Interrupt()
		return e.SetScale(e.proj.Scale() * factor)
	}
	k := interact.ClampZoom(e.transform.K*factor, 1, e.cfg.MaxZoom)
	if k == e.transform.K {
		return false
	}
	to := e.transform.ZoomAbout(k, e.width/2, e.height/2)
	return e.animateView(to, e.cfg.ZoomDuration, EaseCubicOut)
}

func (e *Engine) focusGlobe(lon, lat, zoom float64) bool {
	from := e.proj.Rotation()
	// Turn the short way round.
	to := core.Rotation{
		Yaw:   from.Yaw + core.WrapDegrees(-lon-from.Yaw),
		Pitch: -lat,
	}
	toScale := e.proj.Scale()
	if zoom > 0 {
		lo, hi := e.ScaleBounds()
		toScale = interact.ClampZoom(e.proj.BaseScale()*zoom, lo, hi)
	}
	return e.start(&Transition{
		Duration:  e.cfg.TransitionDuration,
		Ease:      EaseCubicInOut,
		fromRot:   from,
		toRot:     to,
		fromScale: e.proj.Scale(),
		toScale:   toScale,
	})
}

func (e *Engine) animateView(to interact.Transform, d time.Duration, ease EaseFunc) bool {
	return e.start(&Transition{
		Duration: d,
		Ease:     ease,
		flat:     true,
		fromView: e.transform,
		toView:   e.constrain(to),
	})
}

// start installs t, replacing any running transition. User input wins, so
// nothing starts during a drag.
func (e *Engine) start(t *Transition) bool {
	if e.dragging {
		e.log.Debug().Msg("transition ignored during gesture")
		return false
	}
	e.Interrupt()
	if !e.router.Animate() {
		return false
	}
	e.transition = t
	e.log.Debug().Dur("duration", t.Duration).Bool("flat", t.flat).Msg("transition started")
	return true
}

func (e *Engine) stepTransition(now time.Time) {
	t := e.transition
	p, done := t.Advance(now)

	if t.flat {
		v := interact.Lerp(t.fromView, t.toView, p)
		if done {
			v = t.toView
		}
		e.SetTransform(v)
	} else {
		r := t.RotationAt(p)
		if done {
			r = t.toRot
		}
		e.SetRotation(r)
		if t.fromScale != t.toScale {
			e.SetScale(lerp(t.fromScale, t.toScale, p))
		}
	}

	if done {
		e.transition = nil
		e.router.Settle()
		e.log.Debug().Msg("transition settled")
	}
}
