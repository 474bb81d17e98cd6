package inspect

import "paneldeck/ui/layout"

// Node is one component in the inspection tree: a deck, window, tab bar,
// tab, split, panel or splitter.
type Node struct {
	Type    string         `json:"type"`
	ID      string         `json:"id,omitempty"`
	Bounds  layout.Rect    `json:"bounds"`
	Visible bool           `json:"visible"`
	State   map[string]any `json:"state,omitempty"`

	Styles *StyleInfo `json:"styles,omitempty"`

	// Label is the text drawn for the component, e.g. a tab title after
	// truncation.
	Label    string    `json:"label,omitempty"`
	Clipped  *Clipping `json:"clipped,omitempty"`
	Children []*Node   `json:"children,omitempty"`
}

// StyleInfo describes the lipgloss style a component is drawn with.
type StyleInfo struct {
	Names      []string `json:"names,omitempty"`
	Foreground string   `json:"fg,omitempty"`
	Background string   `json:"bg,omitempty"`
	Bold       bool     `json:"bold,omitempty"`
	Underline  bool     `json:"underline,omitempty"`
	Padding    [4]int   `json:"padding"` // top, right, bottom, left
}

// Clipping records a label that did not fit its cell budget.
type Clipping struct {
	Full  int `json:"full"`
	Shown int `json:"shown"`
}

// NewNode returns a visible node of the given type.
func NewNode(nodeType string) *Node {
	return &Node{Type: nodeType, Visible: true}
}

func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithRect sets the node bounds. An empty rectangle marks the node hidden.
func (n *Node) WithRect(r layout.Rect) *Node {
	n.Bounds = r
	n.Visible = !r.Empty()
	return n
}

func (n *Node) WithState(key string, value any) *Node {
	if n.State == nil {
		n.State = make(map[string]any)
	}
	n.State[key] = value
	return n
}

func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// WithLabel sets the drawn text. When it is narrower than full cells the
// node is marked clipped.
func (n *Node) WithLabel(label string, shown, full int) *Node {
	n.Label = label
	n.Clipped = nil
	if shown < full {
		n.Clipped = &Clipping{Full: full, Shown: shown}
	}
	return n
}

func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// Find returns the first node of the given type and ID in a depth-first walk,
// or nil.
func (n *Node) Find(nodeType, id string) *Node {
	if n == nil {
		return nil
	}
	if n.Type == nodeType && n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(nodeType, id); found != nil {
			return found
		}
	}
	return nil
}
