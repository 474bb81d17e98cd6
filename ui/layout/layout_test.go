package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineMode(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   LayoutMode
	}{
		{
			name:   "full mode - large terminal",
			width:  180,
			height: 55,
			want:   LayoutFull,
		},
		{
			name:   "standard mode - both at standard thresholds",
			width:  120,
			height: 40,
			want:   LayoutStandard,
		},
		{
			name:   "standard when only one side is full",
			width:  200,
			height: 45,
			want:   LayoutStandard,
		},
		{
			name:   "compact mode - medium terminal",
			width:  110,
			height: 35,
			want:   LayoutCompact,
		},
		{
			name:   "compact mode - small terminal",
			width:  85,
			height: 26,
			want:   LayoutCompact,
		},
		{
			name:   "minimal mode - below minimum width",
			width:  70,
			height: 30,
			want:   LayoutMinimal,
		},
		{
			name:   "minimal mode - below minimum height",
			width:  100,
			height: 20,
			want:   LayoutMinimal,
		},
		{
			name:   "exact minimum - should be compact",
			width:  80,
			height: 24,
			want:   LayoutCompact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineMode(tt.width, tt.height))
		})
	}
}

func TestLayoutModeString(t *testing.T) {
	assert.Equal(t, "full", LayoutFull.String())
	assert.Equal(t, "standard", LayoutStandard.String())
	assert.Equal(t, "compact", LayoutCompact.String())
	assert.Equal(t, "minimal", LayoutMinimal.String())
	assert.Equal(t, "unknown", LayoutMode(99).String())
}

func TestComputeConstraints(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		wantMenu    int
		wantContent Rect
		wantWarning bool
	}{
		{"standard", 140, 45, MenuStandardHeight, Rect{W: 140, H: 42}, false},
		{"compact", 90, 30, MenuMinHeight, Rect{W: 90, H: 28}, false},
		{"tiny", 40, 2, MenuMinHeight, Rect{W: 40, H: 0}, true},
		{"negative", -5, -5, MenuMinHeight, Rect{W: 0, H: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComputeConstraints(tt.width, tt.height)
			assert.Equal(t, tt.wantMenu, c.MenuHeight)
			assert.Equal(t, tt.wantContent, c.Content)
			assert.Equal(t, tt.wantWarning, c.ShowMinWarning)
		})
	}
}

func TestPanelAndTabBarArea(t *testing.T) {
	w := Rect{X: 10, Y: 0, W: 50, H: 20}
	assert.Equal(t, Rect{X: 10, Y: 0, W: 50, H: 1}, TabBarArea(w))
	assert.Equal(t, Rect{X: 10, Y: 1, W: 50, H: 19}, PanelArea(w))
	assert.Equal(t, Rect{X: 10, Y: 1, W: 50, H: 0}, PanelArea(Rect{X: 10, W: 50}))
}

func TestComputeDegradation(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   Degradation
	}{
		{"roomy", 170, 55, Degradation{}},
		{"narrow", 95, 40, Degradation{SimplifyTabs: true, SingleLineMenu: true}},
		{"very narrow", 85, 40, Degradation{SimplifyTabs: true, SingleLineMenu: true, HideDropHints: true}},
		{"short", 130, 25, Degradation{SingleLineMenu: true, HidePanelTitles: true}},
		{"below minimum", 60, 10, Degradation{
			SimplifyTabs: true, SingleLineMenu: true, HidePanelTitles: true, HideDropHints: true, ShowMinWarning: true,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDegradation(ComputeConstraints(tt.width, tt.height)))
		})
	}
}

func TestTabPadding(t *testing.T) {
	assert.Equal(t, 1, Degradation{}.TabPadding())
	assert.Equal(t, 0, Degradation{SimplifyTabs: true}.TabPadding())
}

func TestComputeOverlaySize(t *testing.T) {
	assert.Equal(t, 60, ComputeOverlaySize(200, 60))
	assert.Equal(t, OverlayMaxWidth, ComputeOverlaySize(200, 120))
	assert.Equal(t, OverlayMinWidth, ComputeOverlaySize(200, 10))
	assert.Equal(t, 52, ComputeOverlaySize(60, 70))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(30, 0, 10))
	assert.Equal(t, 7, Clamp(3, 7, 5), "lower bound wins when bounds cross")
	assert.InDelta(t, 0.5, Clamp(0.5, 0.0, 1.0), 1e-9)
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 10, H: 4}
	assert.Equal(t, 12, r.Right())
	assert.Equal(t, 7, r.Bottom())
	assert.Equal(t, 7, r.MidX())
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(11, 6))
	assert.False(t, r.Contains(12, 6))
	assert.False(t, r.Contains(5, 7))
	assert.True(t, Rect{W: 0, H: 5}.Empty())
	assert.False(t, r.Empty())
}

func TestWidthsFromLayout(t *testing.T) {
	tests := []struct {
		name      string
		layout    PanelsLayout
		available int
		mins      []int
		want      []int
	}{
		{"even", PanelsLayout{33.3, 33.3, 33.4}, 900, nil, []int{300, 300, 300}},
		{"largest remainder", PanelsLayout{50, 50}, 99, nil, []int{50, 49}},
		{"unnormalised input", PanelsLayout{1, 3}, 100, nil, []int{25, 75}},
		{"floors take from widest", PanelsLayout{2, 49, 49}, 100, []int{10, 10, 10}, []int{10, 45, 45}},
		{"impossible floors stop", PanelsLayout{50, 50}, 10, []int{8, 8}, []int{5, 5}},
		{"zero available", PanelsLayout{50, 50}, 0, nil, []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WidthsFromLayout(tt.layout, tt.available, tt.mins)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Nil(t, WidthsFromLayout(nil, 10, nil))
}

func TestApplyFloors(t *testing.T) {
	got := ApplyFloors(PanelsLayout{5, 45, 50}, []float64{20, 20, 20})
	assert.InDelta(t, 20, got[0], 1e-9)
	// 15 points are taken from the others in proportion to their spare
	// (25 and 30 over the floor).
	assert.InDelta(t, 45-15*25.0/55, got[1], 1e-9)
	assert.InDelta(t, 50-15*30.0/55, got[2], 1e-9)
	assert.InDelta(t, 100, got.Sum(), 1e-9)

	untouched := ApplyFloors(PanelsLayout{30, 70}, []float64{10, 10})
	assert.InDeltaSlice(t, []float64{30, 70}, untouched, 1e-9)

	scaled := ApplyFloors(PanelsLayout{0, 100}, []float64{80, 80})
	assert.InDeltaSlice(t, []float64{50, 50}, scaled, 1e-9)

	mismatched := ApplyFloors(PanelsLayout{1, 1}, []float64{10})
	assert.InDeltaSlice(t, []float64{50, 50}, mismatched, 1e-9)
}

func TestPanelsLayoutHelpers(t *testing.T) {
	assert.InDeltaSlice(t, []float64{25, 25, 25, 25}, EqualLayout(4), 1e-9)
	assert.Nil(t, EqualLayout(0))

	assert.True(t, PanelsLayout{40, 60}.Valid(2))
	assert.False(t, PanelsLayout{40, 50}.Valid(2))
	assert.False(t, PanelsLayout{-10, 110}.Valid(2))
	assert.False(t, PanelsLayout{100}.Valid(2))

	assert.InDeltaSlice(t, []float64{50, 50}, PanelsLayout{0, 0}.Normalize(), 1e-9)
	assert.InDeltaSlice(t, []float64{20, 80}, LayoutFromWidths([]int{10, 40}), 1e-9)

	orig := PanelsLayout{10, 90}
	clone := orig.Clone()
	clone[0] = 50
	assert.InDelta(t, 10, orig[0], 1e-9)
}
