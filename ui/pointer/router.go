// Package pointer routes terminal mouse events to the component that owns the
// current drag gesture.
//
// A Router plays the role a document plays in a browser: while a gesture is in
// progress exactly one Handler is captured and receives every motion and the
// terminal release, regardless of where the pointer is. Handlers capture on
// press and must release on every exit path.
package pointer

import (
	"paneldeck/log"

	tea "github.com/charmbracelet/bubbletea"
)

// Handler receives the events of a captured gesture. Coordinates are absolute
// terminal cells.
type Handler interface {
	PointerMove(x, y int)
	PointerUp(x, y int)
	PointerLeave()
}

// Capturer registers and removes the gesture handler.
type Capturer interface {
	Capture(h Handler)
	Release(h Handler)
}

// Router dispatches mouse messages to the captured handler.
type Router struct {
	captured Handler
}

// NewRouter returns an idle router.
func NewRouter() *Router {
	return &Router{}
}

// Capture implements Capturer. A second capture replaces the first; the
// replaced handler gets a PointerLeave so it can finish its gesture.
func (r *Router) Capture(h Handler) {
	if h == nil {
		return
	}
	if r.captured != nil && r.captured != h {
		prev := r.captured
		r.captured = nil
		prev.PointerLeave()
	}
	r.captured = h
	log.InputTrace("pointer captured (%T)", h)
}

// Release implements Capturer. Releasing a handler that is not captured is a no-op.
func (r *Router) Release(h Handler) {
	if r.captured == h {
		r.captured = nil
		log.InputTrace("pointer released (%T)", h)
	}
}

// Captured returns the handler owning the current gesture, or nil.
func (r *Router) Captured() Handler {
	return r.captured
}

// Active reports whether a gesture is in progress.
func (r *Router) Active() bool {
	return r.captured != nil
}

// Handle forwards msg to the captured handler. It reports whether the message
// was consumed; press events and events with no captured handler are not.
func (r *Router) Handle(msg tea.MouseMsg) bool {
	h := r.captured
	if h == nil {
		return false
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		h.PointerMove(msg.X, msg.Y)
		return true
	case tea.MouseActionRelease:
		h.PointerUp(msg.X, msg.Y)
		// Handlers release themselves; a handler that forgot must not leak.
		r.Release(h)
		return true
	}
	return false
}

// Leave ends the current gesture as if the pointer left the tracked area,
// e.g. when the terminal loses focus.
func (r *Router) Leave() {
	h := r.captured
	if h == nil {
		return
	}
	h.PointerLeave()
	r.Release(h)
}

// Reset drops any gesture without notifying the handler. Used when the
// component owning the handler is torn down.
func (r *Router) Reset() {
	r.captured = nil
}

// Noop is a Capturer that records nothing. Components built without a router
// still work, they simply never receive routed motion.
type Noop struct{}

func (Noop) Capture(Handler) {}
func (Noop) Release(Handler) {}
