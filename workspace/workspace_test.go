package workspace

import (
	"encoding/base64"
	"testing"

	"paneldeck/ui/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromPreset(t *testing.T) {
	p, ok := PresetByName("Timeline")
	require.True(t, ok)

	ws := New(p, "incident")
	assert.NotEmpty(t, ws.ID)
	assert.Equal(t, "timeline", ws.Preset)
	assert.Equal(t, layout.PanelsLayout{50, 50}, ws.Layout)
	assert.True(t, ws.Closable)
	assert.True(t, ws.Duplicable)
	require.NoError(t, ws.Validate())

	ws.Layout[0] = 10
	assert.Equal(t, 50.0, p.Layout[0], "preset layout must not be shared")
}

func TestPresetsAreValid(t *testing.T) {
	for _, p := range Presets {
		t.Run(p.Name, func(t *testing.T) {
			assert.True(t, p.Layout.Valid(len(p.Panels)))
			require.NoError(t, New(p, p.Name).Validate())
		})
	}
}

func TestPresetFromKinds(t *testing.T) {
	p, err := PresetFromKinds([]string{"events", " Search "})
	require.NoError(t, err)
	require.Len(t, p.Panels, 2)
	assert.Equal(t, PanelEvents, p.Panels[0].Kind)
	assert.Equal(t, PanelSearch, p.Panels[1].Kind)
	assert.Equal(t, layout.PanelsLayout{50, 50}, p.Layout)

	_, err = PresetFromKinds([]string{"events", "terminal"})
	assert.Error(t, err)

	_, err = PresetFromKinds(nil)
	assert.Error(t, err)
}

func TestWorkspaceDuplicate(t *testing.T) {
	ws := New(DefaultPreset(), "main")
	ws.Closable = false

	dup, err := ws.Duplicate()
	require.NoError(t, err)
	assert.NotEqual(t, ws.ID, dup.ID)
	assert.Equal(t, "main (copy)", dup.Title)
	assert.True(t, dup.Closable, "copies can always be closed")
	assert.Equal(t, ws.Layout, dup.Layout)

	dup.Layout[0] = 1
	dup.Panels[0].Title = "changed"
	assert.NotEqual(t, ws.Layout[0], dup.Layout[0])
	assert.NotEqual(t, "changed", ws.Panels[0].Title)
}

func TestWorkspaceSetLayout(t *testing.T) {
	ws := New(DefaultPreset(), "main")

	err := ws.SetLayout(layout.PanelsLayout{50, 50})
	assert.ErrorIs(t, err, ErrInvalidLayout)

	require.NoError(t, ws.SetLayout(layout.PanelsLayout{1, 1, 1, 1}))
	assert.InDeltaSlice(t, []float64{25, 25, 25, 25}, []float64(ws.Layout), 1e-9)
}

func TestWorkspaceValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Workspace)
		wantErr bool
		want    layout.PanelsLayout
	}{
		{
			name:   "wrong length becomes equal",
			mutate: func(w *Workspace) { w.Layout = layout.PanelsLayout{100} },
			want:   layout.PanelsLayout{25, 25, 25, 25},
		},
		{
			name:   "bad total is normalised",
			mutate: func(w *Workspace) { w.Layout = layout.PanelsLayout{20, 20, 20, 20} },
			want:   layout.PanelsLayout{25, 25, 25, 25},
		},
		{
			name:    "unknown kind",
			mutate:  func(w *Workspace) { w.Panels[0].Kind = "terminal" },
			wantErr: true,
		},
		{
			name:    "no panels",
			mutate:  func(w *Workspace) { w.Panels = nil },
			wantErr: true,
		},
		{
			name:    "no id",
			mutate:  func(w *Workspace) { w.ID = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := New(DefaultPreset(), "main")
			tt.mutate(ws)
			err := ws.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64(tt.want), []float64(ws.Layout), 1e-9)
		})
	}
}

func TestLayoutPanelsFloor(t *testing.T) {
	ws := New(DefaultPreset(), "main")
	ws.Panels[1].MinWidth = 30

	panels := ws.LayoutPanels(12)
	require.Len(t, panels, 4)
	assert.Equal(t, "Events", panels[0].Title)
	assert.Equal(t, 12, panels[0].MinWidth)
	assert.Equal(t, 30, panels[1].MinWidth)
}

func TestSnapshot(t *testing.T) {
	ws := New(DefaultPreset(), "shared")
	require.NoError(t, ws.SetLayout(layout.PanelsLayout{40, 30, 20, 10}))

	encoded, err := EncodeSnapshot(ws)
	require.NoError(t, err)
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, "/")

	got, err := DecodeSnapshot("  " + encoded + "\n")
	require.NoError(t, err)
	assert.NotEqual(t, ws.ID, got.ID)
	assert.Equal(t, ws.Title, got.Title)
	assert.Equal(t, ws.Panels, got.Panels)
	assert.InDeltaSlice(t, []float64(ws.Layout), []float64(got.Layout), 1e-9)
}

func TestDecodeSnapshotInvalid(t *testing.T) {
	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := map[string]string{
		"not base64":       "!!!",
		"not json":         enc("nope"),
		"wrong version":    enc(`{"v":9,"title":"x","panels":[{"kind":"events"}],"layout":[100]}`),
		"length mismatch":  enc(`{"v":1,"title":"x","panels":[{"kind":"events"}],"layout":[50,50]}`),
		"unknown kind":     enc(`{"v":1,"title":"x","panels":[{"kind":"shell"}],"layout":[100]}`),
		"no panels at all": enc(`{"v":1,"title":"x","panels":[],"layout":[]}`),
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSnapshot(input)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}
