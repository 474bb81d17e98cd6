package layout

import "cmp"

// Rect is a cell-addressed rectangle. X/Y is the top-left cell, W/H the size.
type Rect struct {
	X, Y, W, H int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// MidX returns the horizontal midpoint of the rectangle.
func (r Rect) MidX() int { return r.X + r.W/2 }

// Empty reports whether the rectangle has no area. Geometry that has not been
// measured yet is empty.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Container is the geometry capability a host provides to the layout engine:
// the current bounds of the region the engine manages. Implementations return
// an empty Rect until the region has been measured.
type Container interface {
	Bounds() Rect
}

// StaticContainer is a Container with fixed bounds.
type StaticContainer Rect

// Bounds implements Container.
func (c StaticContainer) Bounds() Rect { return Rect(c) }

// Clamp limits value to [lo, hi]. When lo > hi the lower bound wins.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	return max(min(value, hi), lo)
}

// ContainerFunc adapts a function to Container, for regions whose bounds are
// recomputed by the host on every resize.
type ContainerFunc func() Rect

// Bounds implements Container.
func (f ContainerFunc) Bounds() Rect { return f() }
