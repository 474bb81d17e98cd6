package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "events", "events"},
		{"color", "\x1b[31mred\x1b[0m", "red"},
		{"several", "\x1b[1;31mbold\x1b[0m and \x1b[32mgreen\x1b[0m", "bold and green"},
		{"hyperlink", "\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\", "link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestLinesAndWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines int
		width int
	}{
		{"single", "hello", 1, 5},
		{"ragged", "short\nlonger line\nmed", 3, 11},
		{"styled", "\x1b[31mhello world\x1b[0m\nx", 2, 11},
		{"wide", "日本\nab", 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lines, Lines(tt.input))
			assert.Equal(t, tt.width, Width(tt.input))
		})
	}
}

func TestRow(t *testing.T) {
	out := "\x1b[31mfirst\x1b[0m\nsecond"
	assert.Equal(t, "first", Row(out, 0))
	assert.Equal(t, "second", Row(out, 1))
	assert.Equal(t, "", Row(out, 2))
	assert.Equal(t, "", Row(out, -1))
}

func TestLocate(t *testing.T) {
	out := "alpha  beta\n日本 │ gamma"
	x, y := Locate(out, "beta")
	assert.Equal(t, []int{7, 0}, []int{x, y})

	x, y = Locate(out, "gamma")
	assert.Equal(t, []int{7, 1}, []int{x, y})

	x, y = Locate(out, "delta")
	assert.Equal(t, []int{-1, -1}, []int{x, y})
}

func TestColumn(t *testing.T) {
	out := "ab│cd\nef│gh\nx"
	assert.Equal(t, "││ ", Column(out, 2))
	assert.Equal(t, "aex", Column(out, 0))
}
