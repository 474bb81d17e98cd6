// Package dnd implements tab drag and drop: in-list reordering, side drops
// onto neighbouring windows and the application-edge drop zone. Everything
// here is geometry and index arithmetic; hosts supply rectangles and
// callbacks.
package dnd

import (
	"time"

	"golang.org/x/time/rate"
)

// DefaultHoverThrottle is the minimum interval between two accepted hover
// samples.
const DefaultHoverThrottle = 50 * time.Millisecond

// Throttle drops samples arriving faster than one per interval.
type Throttle struct {
	interval time.Duration
	now      func() time.Time
	limiter  *rate.Limiter
}

// NewThrottle returns a throttle admitting one sample per interval. A
// non-positive interval admits everything. now defaults to time.Now.
func NewThrottle(interval time.Duration, now func() time.Time) *Throttle {
	if now == nil {
		now = time.Now
	}
	t := &Throttle{interval: interval, now: now}
	t.Reset()
	return t
}

// Allow reports whether a sample arriving now should be processed.
func (t *Throttle) Allow() bool {
	if t.limiter == nil {
		return true
	}
	return t.limiter.AllowN(t.now(), 1)
}

// Reset forgets previous samples so the next one is admitted.
func (t *Throttle) Reset() {
	if t.interval <= 0 {
		t.limiter = nil
		return
	}
	t.limiter = rate.NewLimiter(rate.Every(t.interval), 1)
}
