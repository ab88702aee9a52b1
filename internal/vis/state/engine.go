package state

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/projection"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/interact"
)

// Config tunes the camera engine.
type Config struct {
	MaxZoom            float64       // Upper bound for both globe scale multiples and flat zoom
	FlatDefaultZoom    float64       // Flat-map zoom applied on entry and resize
	FocusFill          float64       // Share of the viewport a focused country fills
	TransitionDuration time.Duration // Focus animations
	ZoomStep           float64       // Zoom button factor
	ZoomDuration       time.Duration // Flat-map zoom button animation
	AmbientSpeed       float64       // Degrees of yaw per tick
	ManualSpeed        float64       // Degrees of yaw per tick while a rotate control is held
	ResizeDebounce     time.Duration
	Gestures           interact.Config
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		MaxZoom:            12,
		FlatDefaultZoom:    1.7,
		FocusFill:          0.9,
		TransitionDuration: 1500 * time.Millisecond,
		ZoomStep:           1.4,
		ZoomDuration:       750 * time.Millisecond,
		AmbientSpeed:       0.05,
		ManualSpeed:        2.5,
		ResizeDebounce:     150 * time.Millisecond,
		Gestures:           interact.DefaultConfig(),
	}
}

// Engine owns the camera: projection, flat-map transform, the gesture
// router, focus transitions and ambient rotation. It is not safe for
// concurrent use; all calls come from the UI goroutine.
type Engine struct {
	cfg Config
	log zerolog.Logger

	mode          core.Mode
	width, height float64
	sized         bool
	proj          *projection.Projection
	transform     interact.Transform

	dragging   bool
	transition *Transition
	manual     core.ManualDirection
	hover      core.Selection
	selection  core.Selection

	router *interact.Router
	resize Debouncer

	renders uint64
	dirty   bool
}

// NewEngine creates an engine in mode with no viewport yet.
func NewEngine(cfg Config, mode core.Mode, log zerolog.Logger) *Engine {
	e := &Engine{
		cfg:       cfg,
		log:       log,
		mode:      mode,
		proj:      projection.New(mode, 0, 0, core.Rotation{}),
		transform: interact.Identity,
		resize:    Debouncer{Delay: cfg.ResizeDebounce},
	}
	e.router = interact.NewRouter(e, cfg.Gestures, log)
	e.reset()
	return e
}

// Mode returns the current view mode.
func (e *Engine) Mode() core.Mode { return e.mode }

// Projection returns the active projection.
func (e *Engine) Projection() *projection.Projection { return e.proj }

// Size returns the applied viewport size.
func (e *Engine) Size() (width, height float64) { return e.width, e.height }

// Rotation returns the projection rotation.
func (e *Engine) Rotation() core.Rotation { return e.proj.Rotation() }

// Scale returns the projection scale.
func (e *Engine) Scale() float64 { return e.proj.Scale() }

// Transform returns the flat-map zoom transform. It is the identity on the globe.
func (e *Engine) Transform() interact.Transform { return e.transform }

// ScaleBounds returns the allowed globe scale range.
func (e *Engine) ScaleBounds() (min, max float64) {
	base := e.proj.BaseScale()
	return base, base * e.cfg.MaxZoom
}

// ZoomBounds returns the allowed flat-map zoom range.
func (e *Engine) ZoomBounds() (min, max float64) {
	return 1, e.cfg.MaxZoom
}

// ZoomLevel returns the zoom as a multiple of the mode's default scale.
func (e *Engine) ZoomLevel() float64 {
	if e.mode == core.ModeFlat {
		return e.transform.K
	}
	if base := e.proj.BaseScale(); base > 0 {
		return e.proj.Scale() / base
	}
	return 1
}

// Dragging reports whether a pointer gesture is in progress.
func (e *Engine) Dragging() bool { return e.dragging }

// Transitioning reports whether a focus or zoom animation is running.
func (e *Engine) Transitioning() bool { return e.transition != nil }

// Phase returns the gesture router state.
func (e *Engine) Phase() interact.Phase { return e.router.Phase() }

// Manual returns the held rotate direction.
func (e *Engine) Manual() core.ManualDirection { return e.manual }

// Hover returns the hovered entity.
func (e *Engine) Hover() core.Selection { return e.hover }

// Selection returns the selected entity.
func (e *Engine) Selection() core.Selection { return e.selection }

// RenderRequests counts render ticks requested since creation.
func (e *Engine) RenderRequests() uint64 { return e.renders }

// Dirty reports whether state changed since the last Rendered call.
func (e *Engine) Dirty() bool { return e.dirty }

// Rendered marks the current state as drawn.
func (e *Engine) Rendered() { e.dirty = false }

// NeedsFrame reports whether the engine wants another tick without new input.
func (e *Engine) NeedsFrame() bool {
	return e.dirty || e.transition != nil || e.ambientActive() || e.resize.Pending()
}

// HandlePointer feeds one pointer event to the gesture router.
func (e *Engine) HandlePointer(ev interact.Event) interact.Result {
	return e.router.Handle(ev)
}

// Tick advances time-driven state: pending resizes, the running
// transition, or ambient rotation. It reports whether anything changed.
func (e *Engine) Tick(now time.Time) bool {
	before := e.renders
	if w, h, ok := e.resize.Ready(now); ok && (w != e.width || h != e.height) {
		e.applySize(w, h)
	}
	if e.transition != nil {
		e.stepTransition(now)
	} else {
		e.stepAmbient()
	}
	return e.renders != before
}

// SetRotation applies a rotation. Non-finite values are refused.
func (e *Engine) SetRotation(r core.Rotation) bool {
	if !r.IsFinite() {
		e.log.Warn().Float64("yaw", r.Yaw).Float64("pitch", r.Pitch).Msg("rejected non-finite rotation")
		return false
	}
	r = r.Sanitized(e.mode).Normalized()
	if r == e.proj.Rotation() {
		return false
	}
	e.proj.SetRotation(r)
	e.requestRender()
	return true
}

// SetScale applies a globe scale clamped to ScaleBounds.
func (e *Engine) SetScale(k float64) bool {
	if !finite(k) {
		e.log.Warn().Float64("scale", k).Msg("rejected non-finite scale")
		return false
	}
	lo, hi := e.ScaleBounds()
	k = interact.ClampZoom(k, lo, hi)
	if k == e.proj.Scale() {
		return false
	}
	e.proj.SetScale(k)
	e.requestRender()
	return true
}

// SetTransform applies a flat-map transform, clamping zoom and keeping the
// map covering the viewport. It is refused on the globe.
func (e *Engine) SetTransform(t interact.Transform) bool {
	if e.mode != core.ModeFlat {
		return false
	}
	if !t.IsFinite() {
		e.log.Warn().Float64("x", t.X).Float64("y", t.Y).Float64("k", t.K).Msg("rejected invalid transform")
		return false
	}
	t = e.constrain(t)
	if t == e.transform {
		return false
	}
	e.transform = t
	e.requestRender()
	return true
}

// BeginInteraction marks a gesture as started. Any running transition is
// cancelled first.
func (e *Engine) BeginInteraction() {
	e.Interrupt()
	e.dragging = true
}

// EndInteraction marks the gesture as finished.
func (e *Engine) EndInteraction() {
	e.dragging = false
}

// Interrupt cancels the running transition, leaving the camera where it is.
func (e *Engine) Interrupt() {
	if e.transition == nil {
		return
	}
	e.transition = nil
	e.router.Settle()
	e.log.Debug().Msg("transition interrupted")
}

// SetManual sets the held rotate direction.
func (e *Engine) SetManual(d core.ManualDirection) {
	if d != e.manual {
		e.log.Debug().Stringer("direction", d).Msg("manual rotation")
	}
	e.manual = d
}

// SetHover records the entity under the pointer.
func (e *Engine) SetHover(s core.Selection) bool {
	if s == e.hover {
		return false
	}
	e.hover = s
	e.requestRender()
	return true
}

// Select records the selected entity.
func (e *Engine) Select(s core.Selection) bool {
	if s == e.selection {
		return false
	}
	e.selection = s
	e.requestRender()
	return true
}

// OfferSize reports the current viewport size. The first size is applied
// at once; later changes wait for the resize debounce to settle.
func (e *Engine) OfferSize(width, height float64, now time.Time) {
	if !e.sized {
		e.applySize(width, height)
		return
	}
	if width == e.width && height == e.height && !e.resize.Pending() {
		return
	}
	e.resize.Offer(width, height, now)
}

func (e *Engine) applySize(width, height float64) {
	if width <= 0 || height <= 0 {
		e.log.Warn().Float64("width", width).Float64("height", height).Msg("degenerate viewport")
	}
	e.width, e.height = width, height
	e.sized = true
	e.reset()
	e.log.Debug().Float64("width", width).Float64("height", height).Msg("viewport applied")
}

func (e *Engine) requestRender() {
	e.renders++
	e.dirty = true
}

func (e *Engine) viewport() interact.Extent {
	return interact.Extent{MaxX: e.width, MaxY: e.height}
}

func (e *Engine) constrain(t interact.Transform) interact.Transform {
	t.K = interact.ClampZoom(t.K, 1, e.cfg.MaxZoom)
	return interact.Constrain(t, e.viewport(), e.viewport())
}
