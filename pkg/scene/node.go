package scene

import (
	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/errors"
)

// NodeType is the host's layer type tag.
type NodeType string

// Layer types known to the scene model.
const (
	TypeFrame     NodeType = "FRAME"
	TypeGroup     NodeType = "GROUP"
	TypeComponent NodeType = "COMPONENT"
	TypeInstance  NodeType = "INSTANCE"
	TypeText      NodeType = "TEXT"
	TypeRectangle NodeType = "RECTANGLE"
	TypeEllipse   NodeType = "ELLIPSE"
	TypeVector    NodeType = "VECTOR"
	TypeLine      NodeType = "LINE"
	TypeSlice     NodeType = "SLICE"
)

// Node is a layer in a scene document.
type Node struct {
	ID     string   `json:"id" toml:"id"`
	Name   string   `json:"name" toml:"name"`
	Type   NodeType `json:"type" toml:"type"`
	X      float64  `json:"x" toml:"x"`
	Y      float64  `json:"y" toml:"y"`
	Width  float64  `json:"width" toml:"width"`
	Height float64  `json:"height" toml:"height"`
	Locked bool     `json:"locked,omitempty" toml:"locked,omitempty"`

	// LayoutAlign is this node's alignment inside an auto-layout parent.
	LayoutAlign autolayout.Align `json:"layout_align,omitempty" toml:"layout_align,omitempty"`

	// Layout is set once the node is an auto-layout container.
	Layout *Layout `json:"layout,omitempty" toml:"layout,omitempty"`

	Children []*Node `json:"children,omitempty" toml:"children,omitempty"`
}

// Layout holds the auto-layout properties of a container.
type Layout struct {
	Mode          autolayout.Direction  `json:"layout_mode" toml:"layout_mode"`
	PrimarySizing autolayout.SizingMode `json:"primary_axis_sizing_mode" toml:"primary_axis_sizing_mode"`
	CounterSizing autolayout.SizingMode `json:"counter_axis_sizing_mode" toml:"counter_axis_sizing_mode"`
	ItemSpacing   int                   `json:"item_spacing" toml:"item_spacing"`
	PaddingTop    int                   `json:"padding_top" toml:"padding_top"`
	PaddingRight  int                   `json:"padding_right" toml:"padding_right"`
	PaddingBottom int                   `json:"padding_bottom" toml:"padding_bottom"`
	PaddingLeft   int                   `json:"padding_left" toml:"padding_left"`
}

// NodeType returns the layer type tag.
func (n *Node) NodeType() NodeType { return n.Type }

// NodeName returns the display name, falling back to the ID.
func (n *Node) NodeName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// Bounds returns the node's box relative to its parent.
func (n *Node) Bounds() autolayout.Box {
	return autolayout.Box{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// ChildBounds returns the boxes of the direct children in list order.
func (n *Node) ChildBounds() []autolayout.Box {
	boxes := make([]autolayout.Box, len(n.Children))
	for i, c := range n.Children {
		boxes[i] = c.Bounds()
	}
	return boxes
}

// SupportsLayoutAlign reports whether the node has a per-child alignment
// property. Slices are export regions, not layers, and have none.
func (n *Node) SupportsLayoutAlign() bool {
	return n.Type != TypeSlice
}

// writable rejects a write of the named property on a locked node.
func (n *Node) writable(property string) error {
	if n.Locked {
		return errors.New(errors.ErrCodeHostWrite, "cannot set %s on locked layer %q", property, n.NodeName())
	}
	return nil
}

// ApplyLayout turns the node into an auto-layout container configured by cfg,
// stretches every child that supports alignment, and reflows the children.
//
// Every write is checked before the first one happens, so a rejected
// container or child leaves the whole subtree untouched.
func (n *Node) ApplyLayout(cfg autolayout.Config) error {
	if err := n.writable("auto layout"); err != nil {
		return err
	}
	for _, c := range n.Children {
		if !c.SupportsLayoutAlign() {
			continue
		}
		if err := c.writable("alignment"); err != nil {
			return err
		}
	}

	n.Layout = &Layout{
		Mode:          cfg.LayoutMode,
		PrimarySizing: cfg.PrimarySizing,
		CounterSizing: cfg.CounterSizing,
		ItemSpacing:   cfg.ItemSpacing,
		PaddingTop:    cfg.Padding.Top,
		PaddingRight:  cfg.Padding.Right,
		PaddingBottom: cfg.Padding.Bottom,
		PaddingLeft:   cfg.Padding.Left,
	}
	for _, c := range n.Children {
		if c.SupportsLayoutAlign() {
			c.LayoutAlign = cfg.ChildAlign
		}
	}
	n.reflow()
	return nil
}

// Padding returns the container's padding, or zero when it has no layout.
func (l *Layout) Padding() autolayout.Padding {
	if l == nil {
		return autolayout.Padding{}
	}
	return autolayout.Padding{
		Top:    l.PaddingTop,
		Right:  l.PaddingRight,
		Bottom: l.PaddingBottom,
		Left:   l.PaddingLeft,
	}
}

// walk visits n and its descendants depth-first, stopping when fn returns false.
// Nil nodes are skipped.
func (n *Node) walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
