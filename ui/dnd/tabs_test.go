package dnd

import (
	"slices"
	"testing"
	"time"

	"paneldeck/ui/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// tabRect lays tabs out ten cells wide starting at column 0.
func tabRect(i int) layout.Rect {
	return layout.Rect{X: i * 10, Y: 0, W: 10, H: 1}
}

type moveRecorder struct {
	calls [][2]int
}

func (m *moveRecorder) move(from, to int) {
	m.calls = append(m.calls, [2]int{from, to})
}

// applyMove reorders tabs the way a window applies a drop.
func applyMove(tabs []string, from, gap int) []string {
	out := slices.Clone(tabs)
	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, FinalIndex(from, gap), item)
}

func TestTabReorderScenarios(t *testing.T) {
	tabs := []string{"A", "B", "C", "D"}
	tests := []struct {
		name     string
		dragged  int
		hovered  int
		x        int
		wantMove bool
		wantGap  int
		want     []string
	}{
		{"B onto right half of C", 1, 2, 27, true, 3, []string{"A", "C", "B", "D"}},
		{"B onto left half of A", 1, 0, 2, true, 0, []string{"B", "A", "C", "D"}},
		{"B onto left half of C is its own slot", 1, 2, 21, false, 0, nil},
		{"B onto right half of A is its own slot", 1, 0, 7, false, 0, nil},
		{"B onto itself, left", 1, 1, 11, false, 0, nil},
		{"B onto itself, right", 1, 1, 18, false, 0, nil},
		{"A to the end", 0, 3, 39, true, 4, []string{"B", "C", "D", "A"}},
		{"D to the front", 3, 0, 0, true, 0, []string{"D", "A", "B", "C"}},
		{"A onto left half of C", 0, 2, 20, true, 2, []string{"B", "A", "C", "D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &moveRecorder{}
			r := NewTabReorder(rec.move)

			r.BeginDrag(tt.dragged)
			require.True(t, r.OnHover(tt.hovered, tt.x, tabRect(tt.hovered)))
			moved := r.OnDrop(tt.hovered)

			assert.Equal(t, tt.wantMove, moved)
			assert.False(t, r.Dragging(), "drop always clears the drag")
			assert.Nil(t, r.State().ActiveTab)
			if !tt.wantMove {
				assert.Empty(t, rec.calls)
				return
			}
			require.Len(t, rec.calls, 1)
			assert.Equal(t, [2]int{tt.dragged, tt.wantGap}, rec.calls[0])
			assert.Equal(t, tt.want, applyMove(tabs, tt.dragged, tt.wantGap))
		})
	}
}

func TestTabReorderNeverOffersBothSides(t *testing.T) {
	for dragged := 0; dragged < 4; dragged++ {
		for hovered := 0; hovered < 4; hovered++ {
			rect := tabRect(hovered)
			for x := rect.X; x < rect.Right(); x++ {
				r := NewTabReorder(nil, WithHoverThrottle(0))
				r.BeginDrag(dragged)
				r.OnHover(hovered, x, rect)

				at := r.State().ActiveTab
				if at == nil {
					continue
				}
				assert.False(t, at.CanDropOnLeft && at.CanDropOnRight,
					"dragged=%d hovered=%d x=%d", dragged, hovered, x)
				assert.NotEqual(t, dragged, at.Index, "self drop offered")
			}
		}
	}
}

func TestTabReorderThrottlesHover(t *testing.T) {
	clock := newFakeClock()
	r := NewTabReorder(nil, WithClock(clock.Now))

	r.BeginDrag(1)
	assert.True(t, r.OnHover(2, 27, tabRect(2)))
	assert.False(t, r.OnHover(0, 2, tabRect(0)), "second sample inside the interval is dropped")
	require.NotNil(t, r.State().ActiveTab)
	assert.Equal(t, 2, r.State().ActiveTab.Index)

	clock.Advance(20 * time.Millisecond)
	assert.False(t, r.OnHover(0, 2, tabRect(0)))

	clock.Advance(40 * time.Millisecond)
	assert.True(t, r.OnHover(0, 2, tabRect(0)))
	assert.Equal(t, 0, r.State().ActiveTab.Index)
}

func TestTabReorderBeginDragResetsThrottle(t *testing.T) {
	clock := newFakeClock()
	r := NewTabReorder(nil, WithClock(clock.Now))

	r.BeginDrag(0)
	assert.True(t, r.OnHover(2, 27, tabRect(2)))
	r.EndDrag()

	r.BeginDrag(0)
	assert.True(t, r.OnHover(3, 37, tabRect(3)), "a new drag starts with a fresh interval")
}

func TestTabReorderDropOnDifferentTarget(t *testing.T) {
	rec := &moveRecorder{}
	r := NewTabReorder(rec.move)

	r.BeginDrag(0)
	r.OnHover(2, 27, tabRect(2))

	assert.False(t, r.OnDrop(3))
	assert.Empty(t, rec.calls)
	assert.False(t, r.Dragging())
}

func TestTabReorderEndDragCancels(t *testing.T) {
	rec := &moveRecorder{}
	r := NewTabReorder(rec.move)

	r.BeginDrag(0)
	r.OnHover(2, 27, tabRect(2))
	r.EndDrag()

	assert.False(t, r.Dragging())
	assert.Equal(t, -1, r.DraggedIndex())
	assert.Nil(t, r.State().ActiveTab)
	assert.False(t, r.OnDrop(2), "drop after cancel is ignored")
	assert.Empty(t, rec.calls)
}

func TestTabReorderIdle(t *testing.T) {
	rec := &moveRecorder{}
	r := NewTabReorder(rec.move)

	assert.False(t, r.OnHover(1, 5, tabRect(1)))
	assert.False(t, r.OnDrop(1))
	assert.Empty(t, rec.calls)
	assert.Equal(t, -1, r.DraggedIndex())
}

func TestTabReorderDropHint(t *testing.T) {
	r := NewTabReorder(nil)

	r.BeginDrag(0)
	assert.Equal(t, 0, r.DraggedIndex())
	r.OnHover(2, 21, tabRect(2))

	left, right := r.DropHint(2)
	assert.True(t, left)
	assert.False(t, right)

	left, right = r.DropHint(1)
	assert.False(t, left)
	assert.False(t, right)

	r.ClearHover()
	left, right = r.DropHint(2)
	assert.False(t, left)
	assert.False(t, right)
}

func TestTabReorderStateIsACopy(t *testing.T) {
	r := NewTabReorder(nil)
	r.BeginDrag(0)
	r.OnHover(2, 27, tabRect(2))

	s := r.State()
	s.ActiveTab.CanDropOnRight = false

	_, right := r.DropHint(2)
	assert.True(t, right)
}

func TestFinalIndex(t *testing.T) {
	assert.Equal(t, 2, FinalIndex(1, 3))
	assert.Equal(t, 0, FinalIndex(1, 0))
	assert.Equal(t, 1, FinalIndex(1, 1))
	assert.Equal(t, 3, FinalIndex(0, 4))
}

func TestThrottle(t *testing.T) {
	clock := newFakeClock()
	th := NewThrottle(50*time.Millisecond, clock.Now)

	assert.True(t, th.Allow())
	assert.False(t, th.Allow())
	clock.Advance(60 * time.Millisecond)
	assert.True(t, th.Allow())

	th.Reset()
	assert.True(t, th.Allow())

	open := NewThrottle(0, clock.Now)
	for i := 0; i < 5; i++ {
		assert.True(t, open.Allow())
	}
}
