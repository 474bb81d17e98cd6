package layout

import (
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a named region of a split. The engine never looks at what the
// panel renders. Color and IsActive are styling hints the host sets and the
// split view draws with: Color is the panel's accent, IsActive marks the
// focused panel.
type Panel struct {
	Title    string
	MinWidth int
	Color    lipgloss.TerminalColor
	IsActive bool
}

// PanelsLayout is one width percentage per panel. After every committed drag
// the entries sum to 100.
type PanelsLayout []float64

// percentTolerance absorbs float rounding when comparing sums to 100.
const percentTolerance = 0.01

// EqualLayout splits 100 percent evenly across n panels.
func EqualLayout(n int) PanelsLayout {
	if n <= 0 {
		return nil
	}
	l := make(PanelsLayout, n)
	for i := range l {
		l[i] = 100 / float64(n)
	}
	return l
}

// Sum returns the total of all entries.
func (l PanelsLayout) Sum() float64 {
	var total float64
	for _, v := range l {
		total += v
	}
	return total
}

// Valid reports whether the layout has n non-negative entries summing to 100.
func (l PanelsLayout) Valid(n int) bool {
	if len(l) != n || n == 0 {
		return false
	}
	for _, v := range l {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return math.Abs(l.Sum()-100) <= percentTolerance
}

// Normalize rescales the entries so they sum to 100. A layout with a zero or
// invalid total becomes an equal layout.
func (l PanelsLayout) Normalize() PanelsLayout {
	total := l.Sum()
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return EqualLayout(len(l))
	}
	out := make(PanelsLayout, len(l))
	for i, v := range l {
		out[i] = max(v, 0) * 100 / total
	}
	return out
}

// Clone returns a copy of the layout.
func (l PanelsLayout) Clone() PanelsLayout {
	if l == nil {
		return nil
	}
	out := make(PanelsLayout, len(l))
	copy(out, l)
	return out
}

// LayoutFromWidths converts cell widths to percentages of their sum.
func LayoutFromWidths(widths []int) PanelsLayout {
	total := 0
	for _, w := range widths {
		total += max(w, 0)
	}
	if total == 0 {
		return EqualLayout(len(widths))
	}
	out := make(PanelsLayout, len(widths))
	for i, w := range widths {
		out[i] = float64(max(w, 0)) * 100 / float64(total)
	}
	return out
}

// ApplyFloors raises every entry below its floor to the floor and takes the
// difference from the entries above their floor, proportionally to how much
// each of them has to give. floors are percentages; when they cannot all be
// honoured (sum over 100) they are scaled down together.
func ApplyFloors(l PanelsLayout, floors []float64) PanelsLayout {
	out := l.Normalize()
	if len(floors) != len(out) {
		return out
	}
	var floorSum float64
	for _, f := range floors {
		floorSum += max(f, 0)
	}
	fl := make([]float64, len(floors))
	for i, f := range floors {
		fl[i] = max(f, 0)
		if floorSum > 100 {
			fl[i] = fl[i] * 100 / floorSum
		}
	}

	var deficit, spare float64
	for i, v := range out {
		if v < fl[i] {
			deficit += fl[i] - v
		} else {
			spare += v - fl[i]
		}
	}
	if deficit == 0 || spare == 0 {
		if deficit > 0 {
			copy(out, fl)
		}
		return out
	}
	for i, v := range out {
		if v < fl[i] {
			out[i] = fl[i]
			continue
		}
		out[i] = v - deficit*(v-fl[i])/spare
	}
	return out
}

// WidthsFromLayout converts a layout to integer cell widths that sum to
// available exactly (largest remainder rounding), then raises any width below
// its floor, taking the cells from the widest panels. mins may be shorter than
// the layout; missing floors are zero.
func WidthsFromLayout(l PanelsLayout, available int, mins []int) []int {
	n := len(l)
	if n == 0 {
		return nil
	}
	available = max(available, 0)
	norm := l.Normalize()

	widths := make([]int, n)
	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, n)
	used := 0
	for i, v := range norm {
		exact := v * float64(available) / 100
		widths[i] = int(math.Floor(exact))
		rems[i] = rem{idx: i, frac: exact - float64(widths[i])}
		used += widths[i]
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; used < available; i = (i + 1) % n {
		widths[rems[i].idx]++
		used++
	}

	floor := func(i int) int {
		if i < len(mins) {
			return max(mins[i], 0)
		}
		return 0
	}
	for i := range widths {
		for widths[i] < floor(i) {
			donor := -1
			for j := range widths {
				if j == i || widths[j] <= floor(j) {
					continue
				}
				if donor == -1 || widths[j] > widths[donor] {
					donor = j
				}
			}
			if donor == -1 {
				break
			}
			widths[donor]--
			widths[i]++
		}
	}
	return widths
}
