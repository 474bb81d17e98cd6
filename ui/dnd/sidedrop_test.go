package dnd

import (
	"testing"

	"paneldeck/ui/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dropRecorder struct {
	left, right []DraggedTab
}

func (d *dropRecorder) onLeft(tab DraggedTab)  { d.left = append(d.left, tab) }
func (d *dropRecorder) onRight(tab DraggedTab) { d.right = append(d.right, tab) }

func TestSideDropHoverState(t *testing.T) {
	box := layout.StaticContainer{X: 0, Y: 0, W: 100, H: 20}
	tests := []struct {
		name string
		x, y int
		want HoverState
	}{
		{"left edge", 5, 5, HoverState{IsOverContent: true, IsOverLeftSide: true, CanDropOnLeft: true}},
		{"last left drop column", 14, 5, HoverState{IsOverContent: true, IsOverLeftSide: true, CanDropOnLeft: true}},
		{"past the left zone", 15, 5, HoverState{IsOverContent: true, IsOverLeftSide: true}},
		{"middle", 50, 5, HoverState{IsOverContent: true, IsOverRightSide: true}},
		{"before the right zone", 84, 5, HoverState{IsOverContent: true, IsOverRightSide: true}},
		{"right edge", 85, 5, HoverState{IsOverContent: true, IsOverRightSide: true, CanDropOnRight: true}},
		{"tab bar row", 5, 0, HoverState{}},
		{"outside", 150, 5, HoverState{}},
		{"below", 5, 25, HoverState{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewSideDropTarget(box, DefaultSideDropConfig(), nil, nil)
			assert.Equal(t, tt.want, target.OnHover(tt.x, tt.y))
			assert.Equal(t, tt.want, target.HoverState())
		})
	}
}

func TestSideDropMutualExclusion(t *testing.T) {
	box := layout.StaticContainer{X: 3, Y: 2, W: 37, H: 10}
	for _, pct := range []float64{1, 15, 33, 49.9, 50} {
		cfg := DefaultSideDropConfig()
		cfg.DroppableAreaPercent = pct
		target := NewSideDropTarget(box, cfg, nil, nil)
		for x := 0; x < 45; x++ {
			for y := 0; y < 14; y++ {
				h := target.OnHover(x, y)
				assert.False(t, h.CanDropOnLeft && h.CanDropOnRight, "pct=%v x=%d y=%d", pct, x, y)
				assert.False(t, h.IsOverLeftSide && h.IsOverRightSide)
			}
		}
	}
}

func TestSideDropOnDrop(t *testing.T) {
	rec := &dropRecorder{}
	target := NewSideDropTarget(layout.StaticContainer{W: 100, H: 20}, DefaultSideDropConfig(), rec.onLeft, rec.onRight)
	tab := DraggedTab{Window: 1, Index: 2}

	target.OnHover(3, 4)
	assert.True(t, target.OnDrop(tab))
	assert.Equal(t, []DraggedTab{tab}, rec.left)
	assert.Equal(t, HoverState{}, target.HoverState(), "drop clears the hover state")

	target.OnHover(97, 4)
	assert.True(t, target.OnDrop(tab))
	assert.Equal(t, []DraggedTab{tab}, rec.right)

	target.OnHover(50, 4)
	assert.False(t, target.OnDrop(tab))
	assert.Len(t, rec.left, 1)
	assert.Len(t, rec.right, 1)
}

func TestSideDropDisabledEdge(t *testing.T) {
	rec := &dropRecorder{}
	cfg := DefaultSideDropConfig()
	cfg.LeftDropAreaEnabled = false
	target := NewSideDropTarget(layout.StaticContainer{W: 100, H: 20}, cfg, rec.onLeft, rec.onRight)

	assert.True(t, target.Active())
	h := target.OnHover(3, 4)
	assert.True(t, h.IsOverLeftSide)
	assert.False(t, h.CanDropOnLeft)
	assert.False(t, target.OnDrop(DraggedTab{}))
	assert.Empty(t, rec.left)

	left, right := target.Zones()
	assert.True(t, left.Empty())
	assert.Equal(t, layout.Rect{X: 85, Y: 1, W: 15, H: 19}, right)
}

func TestSideDropPassthrough(t *testing.T) {
	rec := &dropRecorder{}
	cfg := DefaultSideDropConfig()
	cfg.LeftDropAreaEnabled = false
	cfg.RightDropAreaEnabled = false
	target := NewSideDropTarget(layout.StaticContainer{W: 100, H: 20}, cfg, rec.onLeft, rec.onRight)

	assert.False(t, target.Active())
	for _, x := range []int{0, 5, 50, 95, 99} {
		assert.Equal(t, HoverState{}, target.OnHover(x, 5))
		assert.False(t, target.OnDrop(DraggedTab{Index: 1}))
	}
	assert.Empty(t, rec.left)
	assert.Empty(t, rec.right)
}

func TestSideDropUnmeasured(t *testing.T) {
	target := NewSideDropTarget(layout.StaticContainer{}, DefaultSideDropConfig(), nil, nil)

	assert.Equal(t, HoverState{}, target.OnHover(0, 0))
	left, right := target.Zones()
	assert.True(t, left.Empty())
	assert.True(t, right.Empty())
}

func TestSideDropDefaultPercent(t *testing.T) {
	target := NewSideDropTarget(layout.StaticContainer{W: 100, H: 20}, SideDropConfig{LeftDropAreaEnabled: true}, nil, nil)
	require.Equal(t, layout.SideDropPercent, target.Config().DroppableAreaPercent)

	left, _ := target.Zones()
	assert.Equal(t, layout.Rect{X: 0, Y: 0, W: 15, H: 20}, left)
}

func TestWindowSideDropTarget(t *testing.T) {
	var moved []DraggedTab
	target := NewWindowSideDropTarget(layout.StaticContainer{W: 100, H: 30}, func(tab DraggedTab) {
		moved = append(moved, tab)
	})

	assert.Equal(t, layout.Rect{X: 88, Y: 2, W: 12, H: 28}, target.Zone())

	assert.False(t, target.OnHover(95, 1), "rows above the offset are excluded")
	assert.False(t, target.OnHover(80, 10))
	assert.False(t, target.OnDrop(DraggedTab{Index: 3}))

	assert.True(t, target.OnHover(95, 10))
	assert.True(t, target.IsOver())
	assert.True(t, target.OnDrop(DraggedTab{Index: 3}))
	assert.Equal(t, []DraggedTab{{Index: 3}}, moved)
	assert.False(t, target.IsOver())

	target.SetEnabled(false)
	assert.True(t, target.Zone().Empty())
	assert.False(t, target.OnHover(95, 10))
	assert.False(t, target.OnDrop(DraggedTab{Index: 3}))
	assert.Len(t, moved, 1)
}
