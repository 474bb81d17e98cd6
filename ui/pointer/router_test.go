package pointer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	events []string
	router *Router
	// releaseOnUp mimics a well behaved handler releasing itself.
	releaseOnUp bool
}

func (h *recordingHandler) PointerMove(x, y int) { h.events = append(h.events, "move") }
func (h *recordingHandler) PointerUp(x, y int) {
	h.events = append(h.events, "up")
	if h.releaseOnUp {
		h.router.Release(h)
	}
}
func (h *recordingHandler) PointerLeave() { h.events = append(h.events, "leave") }

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	h := &recordingHandler{router: r, releaseOnUp: true}

	assert.False(t, r.Handle(tea.MouseMsg{Action: tea.MouseActionMotion}), "nothing captured")

	r.Capture(h)
	assert.True(t, r.Active())
	assert.True(t, r.Handle(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}))
	assert.False(t, r.Handle(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	assert.True(t, r.Handle(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease}))

	assert.Equal(t, []string{"move", "up"}, h.events)
	assert.Nil(t, r.Captured())

	assert.False(t, r.Handle(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionMotion}))
	assert.Equal(t, []string{"move", "up"}, h.events, "no events after release")
}

func TestRouterReleasesForgetfulHandlers(t *testing.T) {
	r := NewRouter()
	h := &recordingHandler{router: r}

	r.Capture(h)
	r.Handle(tea.MouseMsg{Action: tea.MouseActionRelease})

	assert.Nil(t, r.Captured())
}

func TestRouterCaptureReplacesHandler(t *testing.T) {
	r := NewRouter()
	first := &recordingHandler{router: r}
	second := &recordingHandler{router: r}

	r.Capture(first)
	r.Capture(second)

	assert.Equal(t, []string{"leave"}, first.events)
	assert.Equal(t, Handler(second), r.Captured())

	r.Capture(second)
	assert.Empty(t, second.events, "recapturing the same handler is silent")
}

func TestRouterLeave(t *testing.T) {
	r := NewRouter()
	h := &recordingHandler{router: r}

	r.Leave()
	r.Capture(h)
	r.Leave()

	assert.Equal(t, []string{"leave"}, h.events)
	assert.False(t, r.Active())
}

func TestRouterReleaseOther(t *testing.T) {
	r := NewRouter()
	h := &recordingHandler{router: r}
	other := &recordingHandler{router: r}

	r.Capture(h)
	r.Release(other)
	assert.Equal(t, Handler(h), r.Captured())

	r.Capture(nil)
	assert.Equal(t, Handler(h), r.Captured())

	r.Reset()
	assert.Nil(t, r.Captured())
	assert.Empty(t, h.events)
}
