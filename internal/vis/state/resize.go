package state

import "time"

// Debouncer holds back viewport sizes until they stop changing.
type Debouncer struct {
	Delay time.Duration

	pending bool
	width   float64
	height  float64
	at      time.Time
}

// Offer records a new size observed at now.
func (d *Debouncer) Offer(width, height float64, now time.Time) {
	d.width, d.height = width, height
	d.at = now
	d.pending = true
}

// Pending reports whether a size is waiting.
func (d *Debouncer) Pending() bool { return d.pending }

// Ready returns the waiting size once it has been quiet for Delay.
func (d *Debouncer) Ready(now time.Time) (width, height float64, ok bool) {
	if !d.pending || now.Sub(d.at) < d.Delay {
		return 0, 0, false
	}
	d.pending = false
	return d.width, d.height, true
}
