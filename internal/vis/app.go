// Package vis implements the Gio front end of the campaign globe.
package vis

import (
	"context"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/locate"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/draw"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/scene"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/widgets"
)

// Options tunes the application shell.
type Options struct {
	MessageTTL   time.Duration // How long status toasts stay up
	LocateZoom   float64       // Flat-map zoom after locating the user
	LabelMinArea float64       // Smallest projected area that gets a label
}

// App is the main visualization application.
type App struct {
	state   *state.State
	theme   *material.Theme
	opts    Options
	log     zerolog.Logger
	locator *locate.Requester
	updates <-chan []core.Activity

	canvas  *widgets.Canvas
	toolbar *widgets.Toolbar
	search  *widgets.Search
	panel   *widgets.InfoPanel
	rotate  *widgets.RotateBar
	toast   *widgets.Toast
	tooltip *widgets.Tooltip

	// Work posted by background goroutines, run on the UI goroutine.
	inbox chan func()
}

// NewApp creates a new visualization application. locator and updates may
// be nil.
func NewApp(st *state.State, locator *locate.Requester, updates <-chan []core.Activity, opts Options, log zerolog.Logger) *App {
	th := material.NewTheme()
	search := widgets.NewSearch(st)
	canvas := widgets.NewCanvas(st, scene.Options{MinLabelArea: opts.LabelMinArea})

	a := &App{
		state:   st,
		theme:   th,
		opts:    opts,
		log:     log,
		locator: locator,
		updates: updates,
		canvas:  canvas,
		toolbar: widgets.NewToolbar(st, search),
		search:  search,
		panel:   widgets.NewInfoPanel(st),
		rotate:  widgets.NewRotateBar(st),
		toast:   widgets.NewToast(st),
		tooltip: widgets.NewTooltip(st, canvas),
		inbox:   make(chan func(), 16),
	}
	a.toolbar.Locating = a.locating
	a.panel.OnCopy = func(string) {
		a.state.Notify("Link copied", state.ToastInfo, time.Now(), a.opts.MessageTTL)
	}
	return a
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.forward(ctx, w)

	a.toolbar.OnLocate = func() { a.requestLocation(ctx) }

	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			a.drain()

			// Handle keyboard events
			for {
				ev, ok := gtx.Event(shortcuts...)
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok {
					a.handleKeyEvent(gtx, ke)
				}
			}
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if a.state.Engine.NeedsFrame() {
				w.Invalidate()
			}
		}
	}
}

// shortcuts are the global keys, delivered unless a focused editor
// consumes them.
var shortcuts = []event.Filter{
	key.Filter{Name: "G"},
	key.Filter{Name: "M"},
	key.Filter{Name: "+", Optional: key.ModShift},
	key.Filter{Name: "=", Optional: key.ModShift},
	key.Filter{Name: "-"},
	key.Filter{Name: key.NameEscape},
	key.Filter{Name: key.NameLeftArrow},
	key.Filter{Name: key.NameRightArrow},
}

func (a *App) handleKeyEvent(gtx layout.Context, e key.Event) {
	eng := a.state.Engine

	// Held arrows spin the globe like the rotate bar.
	switch e.Name {
	case key.NameLeftArrow, key.NameRightArrow:
		dir := core.RotateLeft
		if e.Name == key.NameRightArrow {
			dir = core.RotateRight
		}
		if e.State == key.Press {
			eng.SetManual(dir)
		} else if eng.Manual() == dir {
			eng.SetManual(core.RotateNone)
		}
		return
	}

	if e.State != key.Press || a.search.Focused(gtx) {
		return
	}
	switch e.Name {
	case "G":
		eng.SetMode(core.ModeGlobe)
	case "M":
		eng.SetMode(core.ModeFlat)
	case "+", "=":
		eng.ZoomIn()
	case "-":
		eng.ZoomOut()
	case key.NameEscape:
		a.state.ClearSelection()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	draw.DrawBackground(gtx)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		// Toolbar at top
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		// Map with overlays
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Stack{}.Layout(gtx,
						layout.Stacked(func(gtx layout.Context) layout.Dimensions {
							return a.canvas.Layout(gtx, a.theme)
						}),
						layout.Expanded(func(gtx layout.Context) layout.Dimensions {
							return a.tooltip.Layout(gtx, a.theme)
						}),
						layout.Expanded(func(gtx layout.Context) layout.Dimensions {
							return layout.NE.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
								return layout.Inset{Right: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
									return a.search.LayoutResults(gtx, a.theme)
								})
							})
						}),
						layout.Expanded(func(gtx layout.Context) layout.Dimensions {
							return a.toast.Layout(gtx, a.theme)
						}),
					)
				}),
				// Info panel when something is selected
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return a.panel.Layout(gtx, a.theme)
				}),
			)
		}),
		// Rotate bar at bottom
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.rotate.Layout(gtx, a.theme)
		}),
	)
}

func (a *App) locating() bool {
	return a.locator != nil && a.locator.Busy()
}

func (a *App) requestLocation(ctx context.Context) {
	if a.locator == nil {
		a.state.Notify("Location unavailable", state.ToastError, time.Now(), a.opts.MessageTTL)
		return
	}
	if !a.locator.Request(ctx) {
		a.log.Debug().Msg("location request already in flight")
	}
}

// forward relays background results into the inbox and wakes the window.
func (a *App) forward(ctx context.Context, w *app.Window) {
	post := func(fn func()) {
		select {
		case a.inbox <- fn:
			w.Invalidate()
		case <-ctx.Done():
		}
	}

	if a.updates != nil {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case acts, ok := <-a.updates:
					if !ok {
						return
					}
					post(func() {
						a.state.SetActivities(acts)
						a.log.Info().Int("activities", len(a.state.Activities)).Msg("activities refreshed")
					})
				}
			}
		}()
	}

	if a.locator != nil {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case res := <-a.locator.Results():
					post(func() {
						out := a.state.ShowLocation(res, time.Now(), a.opts.MessageTTL, a.opts.LocateZoom)
						lvl := zerolog.InfoLevel
						if !out.OK {
							lvl = zerolog.WarnLevel
						}
						a.log.WithLevel(lvl).Err(res.Err).Str("message", out.Message).Msg("location resolved")
					})
				}
			}
		}()
	}
}

// drain runs everything posted since the last frame.
func (a *App) drain() {
	for {
		select {
		case fn := <-a.inbox:
			fn()
		default:
			return
		}
	}
}
