// Package locate finds the user's position and turns the result into a
// camera action and status message.
package locate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// Sentinel failures. Locators wrap them so callers can classify.
var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("location unavailable")
	ErrTimeout          = errors.New("location request timed out")
)

// Failure classifies a locate error.
type Failure int

const (
	FailureNone Failure = iota
	FailurePermissionDenied
	FailureUnavailable
	FailureTimeout
	FailureUnknown
)

// Classify maps an error onto a Failure.
func Classify(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrPermissionDenied):
		return FailurePermissionDenied
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return FailureTimeout
	case errors.Is(err, ErrUnavailable):
		return FailureUnavailable
	default:
		return FailureUnknown
	}
}

// Message is the status text shown for a failed request.
func Message(err error) string {
	switch Classify(err) {
	case FailurePermissionDenied:
		return "Location permission denied"
	case FailureUnavailable:
		return "Location unavailable"
	case FailureTimeout:
		return "Location request timed out"
	case FailureNone:
		return ""
	default:
		return err.Error()
	}
}

// Position is a located point in degrees.
type Position struct {
	Lat      float64
	Lon      float64
	Accuracy float64 // Metres, zero when unknown
}

// Valid reports whether the position is a usable coordinate.
func (p Position) Valid() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lon) &&
		p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Locator finds the user's position.
type Locator interface {
	Locate(ctx context.Context) (Position, error)
}

// Static always reports the same position.
type Static struct {
	Position Position
}

// Locate returns the configured position.
func (s Static) Locate(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	if !s.Position.Valid() {
		return Position{}, fmt.Errorf("%w: configured position out of range", ErrUnavailable)
	}
	return s.Position, nil
}

// Result is one finished request.
type Result struct {
	Position Position
	Err      error
}

// Requester runs at most one locate request at a time in the background
// and delivers results on a channel for the UI goroutine.
type Requester struct {
	loc     Locator
	timeout time.Duration
	log     zerolog.Logger

	busy    atomic.Bool
	results chan Result
}

// NewRequester wraps loc. timeout bounds each request.
func NewRequester(loc Locator, timeout time.Duration, log zerolog.Logger) *Requester {
	return &Requester{
		loc:     loc,
		timeout: timeout,
		log:     log,
		results: make(chan Result, 1),
	}
}

// Busy reports whether a request is in flight.
func (r *Requester) Busy() bool { return r.busy.Load() }

// Results delivers finished requests.
func (r *Requester) Results() <-chan Result { return r.results }

// Request starts a locate request. It returns false when one is already
// running.
func (r *Requester) Request(ctx context.Context) bool {
	if !r.busy.CompareAndSwap(false, true) {
		r.log.Debug().Msg("locate request already in flight")
		return false
	}
	go func() {
		defer r.busy.Store(false)
		lctx := ctx
		if r.timeout > 0 {
			var cancel context.CancelFunc
			lctx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}
		pos, err := r.loc.Locate(lctx)
		if err == nil && !pos.Valid() {
			err = fmt.Errorf("%w: invalid position", ErrUnavailable)
		}
		if err != nil {
			r.log.Warn().Err(err).Msg("locate failed")
		} else {
			r.log.Info().Float64("lat", pos.Lat).Float64("lon", pos.Lon).Msg("located")
		}
		select {
		case r.results <- Result{Position: pos, Err: err}:
		case <-ctx.Done():
			r.log.Debug().Msg("locate result dropped after shutdown")
		}
	}()
	return true
}

// Outcome is what the map should do with a result.
type Outcome struct {
	OK       bool
	Country  *core.Feature // Set when the position falls inside a country
	Position Position
	Message  string
}

// Resolve turns a result into an outcome against world.
func Resolve(world *core.Dataset, res Result) Outcome {
	if res.Err != nil {
		return Outcome{Message: Message(res.Err)}
	}
	out := Outcome{OK: true, Position: res.Position}
	if world != nil {
		out.Country = world.FeatureAt(res.Position.Lon, res.Position.Lat)
	}
	if out.Country != nil {
		out.Message = "Located in " + out.Country.Name
	} else {
		out.Message = "Moved to your location"
	}
	return out
}
