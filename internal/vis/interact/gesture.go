package interact

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// Phase is the state of the gesture state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhasePinching
	PhaseAnimating
)

func (p Phase) String() string {
	return [...]string{"idle", "dragging", "pinching", "animating"}[p]
}

// legalPhases lists the transitions the router may take.
// A pinch stays a pinch until every finger lifts.
var legalPhases = map[Phase][]Phase{
	PhaseIdle:      {PhaseDragging, PhaseAnimating},
	PhaseDragging:  {PhaseIdle, PhasePinching},
	PhasePinching:  {PhaseIdle},
	PhaseAnimating: {PhaseIdle, PhaseDragging},
}

// Source distinguishes mouse from touch input.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

// Kind is the type of a pointer event.
type Kind int

const (
	Press Kind = iota
	Move
	Release
	Cancel
	Scroll
)

// Event is a toolkit-neutral pointer event.
type Event struct {
	Kind     Kind
	Source   Source
	ID       int    // Pointer identity, stable from press to release
	Position r2.Vec // Screen pixels
	Scroll   float64
}

// Result reports what handling an event did.
type Result struct {
	Changed bool   // Camera state was mutated
	Tap     bool   // Press and release without meaningful movement
	At      r2.Vec // Tap position
}

// Target is the camera state the router drives.
type Target interface {
	Mode() core.Mode
	Rotation() core.Rotation
	SetRotation(core.Rotation) bool
	Scale() float64
	ScaleBounds() (min, max float64)
	SetScale(float64) bool
	Transform() Transform
	ZoomBounds() (min, max float64)
	SetTransform(Transform) bool
	BeginInteraction()
	EndInteraction()
	Interrupt()
}

// Config tunes gesture response.
type Config struct {
	DragSensitivity  float64 // Degrees of rotation per pixel at unit scale
	WheelSensitivity float64 // Exponent per wheel delta unit
	TapSlop          float64 // Pixels a tap may travel
}

// DefaultConfig returns the standard gesture tuning.
func DefaultConfig() Config {
	return Config{DragSensitivity: 75, WheelSensitivity: 0.002, TapSlop: 4}
}

// Router classifies pointer input into drag, pinch and wheel gestures and
// applies them to a Target through the handler set of the current mode.
type Router struct {
	target  Target
	cfg     Config
	log     zerolog.Logger
	handler handler
	mode    core.Mode
	phase   Phase

	pointers map[int]r2.Vec
	order    []int // Pointer IDs in press order
	dragID   int

	pinchDist float64
	pinchMid  r2.Vec

	travel float64
	tapOK  bool
}

// NewRouter creates a router with no handlers attached.
func NewRouter(target Target, cfg Config, log zerolog.Logger) *Router {
	return &Router{
		target:   target,
		cfg:      cfg,
		log:      log,
		pointers: make(map[int]r2.Vec),
	}
}

// Phase returns the current gesture state.
func (r *Router) Phase() Phase { return r.phase }

// Attached reports whether handlers for some mode are installed.
func (r *Router) Attached() bool { return r.handler != nil }

// Attach installs the handler set for mode, detaching any previous set.
func (r *Router) Attach(mode core.Mode) {
	r.Detach()
	r.mode = mode
	switch mode {
	case core.ModeFlat:
		r.handler = flatHandler{wheelSensitivity: r.cfg.WheelSensitivity}
	default:
		r.handler = globeHandler{sensitivity: r.cfg.DragSensitivity}
	}
	r.log.Debug().Str("mode", mode.String()).Msg("gesture handlers attached")
}

// Detach removes the handler set and forgets any pointers in flight.
func (r *Router) Detach() {
	r.handler = nil
	r.pointers = make(map[int]r2.Vec)
	r.order = r.order[:0]
	r.phase = PhaseIdle
	r.pinchDist = 0
	r.tapOK = false
}

// Animate enters the animating phase. It fails while a gesture is active.
func (r *Router) Animate() bool {
	if r.phase == PhaseAnimating {
		return true
	}
	return r.setPhase(PhaseAnimating)
}

// Settle leaves the animating phase.
func (r *Router) Settle() {
	if r.phase == PhaseAnimating {
		r.setPhase(PhaseIdle)
	}
}

// Handle routes one pointer event.
func (r *Router) Handle(ev Event) Result {
	if r.handler == nil {
		return Result{}
	}
	switch ev.Kind {
	case Press:
		r.press(ev)
	case Move:
		return r.move(ev)
	case Release, Cancel:
		return r.release(ev)
	case Scroll:
		if ev.Scroll == 0 {
			return Result{}
		}
		return Result{Changed: r.handler.wheel(r.target, ev.Scroll, ev.Position)}
	}
	return Result{}
}

func (r *Router) setPhase(next Phase) bool {
	for _, p := range legalPhases[r.phase] {
		if p == next {
			r.log.Trace().Stringer("from", r.phase).Stringer("to", next).Msg("gesture phase")
			r.phase = next
			return true
		}
	}
	r.log.Debug().Stringer("from", r.phase).Stringer("to", next).Msg("refused gesture transition")
	return false
}

func (r *Router) press(ev Event) {
	if _, down := r.pointers[ev.ID]; !down {
		r.order = append(r.order, ev.ID)
	}
	r.pointers[ev.ID] = ev.Position

	switch r.phase {
	case PhaseIdle, PhaseAnimating:
		// Pressing always wins over a running animation.
		r.target.BeginInteraction()
		if r.phase == PhaseAnimating {
			r.setPhase(PhaseIdle)
		}
		r.setPhase(PhaseDragging)
		r.dragID = ev.ID
		r.travel = 0
		r.tapOK = true

	case PhaseDragging:
		if len(r.order) >= 2 && ev.Source == SourceTouch {
			r.setPhase(PhasePinching)
			r.tapOK = false
			r.pinchDist, r.pinchMid = r.pinchGeometry()
		}

	case PhasePinching:
		// A finger landing mid-pinch starts a new baseline.
		if len(r.order) >= 2 {
			r.pinchDist, r.pinchMid = r.pinchGeometry()
		}
	}
}

func (r *Router) move(ev Event) Result {
	last, down := r.pointers[ev.ID]
	if !down {
		return Result{}
	}
	r.pointers[ev.ID] = ev.Position

	switch r.phase {
	case PhaseDragging:
		if ev.ID != r.dragID {
			return Result{}
		}
		d := r2.Sub(ev.Position, last)
		r.travel += r2.Norm(d)
		if r.travel > r.cfg.TapSlop {
			r.tapOK = false
		}
		return Result{Changed: r.handler.drag(r.target, d)}

	case PhasePinching:
		if len(r.order) < 2 || (ev.ID != r.order[0] && ev.ID != r.order[1]) {
			return Result{}
		}
		dist, mid := r.pinchGeometry()
		prevDist, prevMid := r.pinchDist, r.pinchMid
		r.pinchDist, r.pinchMid = dist, mid
		if prevDist <= 0 || dist <= 0 {
			return Result{}
		}
		return Result{Changed: r.handler.pinch(r.target, dist/prevDist, prevMid, mid)}
	}
	return Result{}
}

func (r *Router) release(ev Event) Result {
	if _, down := r.pointers[ev.ID]; !down {
		return Result{}
	}
	delete(r.pointers, ev.ID)
	for i, id := range r.order {
		if id == ev.ID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	if len(r.order) > 0 {
		switch r.phase {
		case PhaseDragging:
			r.dragID = r.order[0]
			r.tapOK = false
		case PhasePinching:
			if len(r.order) >= 2 {
				r.pinchDist, r.pinchMid = r.pinchGeometry()
			}
		}
		return Result{}
	}

	var res Result
	if r.phase == PhaseDragging && ev.Kind == Release && r.tapOK {
		res.Tap = true
		res.At = ev.Position
	}
	if r.phase == PhaseDragging || r.phase == PhasePinching {
		r.target.EndInteraction()
		r.setPhase(PhaseIdle)
	}
	return res
}

// pinchGeometry measures the first two pointers.
func (r *Router) pinchGeometry() (float64, r2.Vec) {
	if len(r.order) < 2 {
		return 0, r2.Vec{}
	}
	a := r.pointers[r.order[0]]
	b := r.pointers[r.order[1]]
	return r2.Norm(r2.Sub(b, a)), r2.Scale(0.5, r2.Add(a, b))
}
