package inspect

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	stylesMu sync.RWMutex
	styles   = map[string]lipgloss.Style{}
)

// RegisterStyle makes a named style available to inspectors.
func RegisterStyle(name string, style lipgloss.Style) {
	stylesMu.Lock()
	defer stylesMu.Unlock()
	styles[name] = style
}

// GetRegisteredStyle looks up a style registered under name.
func GetRegisteredStyle(name string) (lipgloss.Style, bool) {
	stylesMu.RLock()
	defer stylesMu.RUnlock()
	style, ok := styles[name]
	return style, ok
}

// ExtractStyleInfo summarises the colours, emphasis and padding of style.
func ExtractStyleInfo(style lipgloss.Style, names ...string) *StyleInfo {
	return &StyleInfo{
		Names:      names,
		Foreground: colorString(style.GetForeground()),
		Background: colorString(style.GetBackground()),
		Bold:       style.GetBold(),
		Underline:  style.GetUnderline(),
		Padding: [4]int{
			style.GetPaddingTop(),
			style.GetPaddingRight(),
			style.GetPaddingBottom(),
			style.GetPaddingLeft(),
		},
	}
}

func colorString(c lipgloss.TerminalColor) string {
	switch v := c.(type) {
	case nil, lipgloss.NoColor:
		return ""
	case lipgloss.Color:
		return string(v)
	case lipgloss.AdaptiveColor:
		return fmt.Sprintf("%s/%s", v.Light, v.Dark)
	default:
		return fmt.Sprintf("%v", c)
	}
}
