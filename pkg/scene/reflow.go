package scene

import "github.com/matzehuels/autoframe/pkg/autolayout"

// reflow positions the children the way an auto-layout host would: packed
// along the main axis from the leading padding, separated by the item
// spacing, stretched across the cross axis when they ask for it. Containers
// with AUTO sizing hug the result.
func (n *Node) reflow() {
	l := n.Layout
	if l == nil || !l.Mode.IsAxis() || len(n.Children) == 0 {
		return
	}
	pad := l.Padding()
	vertical := l.Mode == autolayout.Vertical

	// Cross size is the widest (or tallest) child; stretched children take it.
	cross := 0.0
	for _, c := range n.Children {
		if vertical {
			cross = max(cross, c.Width)
		} else {
			cross = max(cross, c.Height)
		}
	}
	if l.CounterSizing == autolayout.SizingFixed {
		if vertical {
			cross = n.Width - float64(pad.Left+pad.Right)
		} else {
			cross = n.Height - float64(pad.Top+pad.Bottom)
		}
	}

	cursor := float64(pad.Top)
	if !vertical {
		cursor = float64(pad.Left)
	}
	for i, c := range n.Children {
		if i > 0 {
			cursor += float64(l.ItemSpacing)
		}
		stretch := c.LayoutAlign == autolayout.AlignStretch
		if vertical {
			c.X, c.Y = float64(pad.Left), cursor
			if stretch {
				c.Width = cross
			}
			cursor += c.Height
		} else {
			c.X, c.Y = cursor, float64(pad.Top)
			if stretch {
				c.Height = cross
			}
			cursor += c.Width
		}
	}

	if vertical {
		if l.PrimarySizing == autolayout.SizingAuto {
			n.Height = cursor + float64(pad.Bottom)
		}
		if l.CounterSizing == autolayout.SizingAuto {
			n.Width = float64(pad.Left) + cross + float64(pad.Right)
		}
		return
	}
	if l.PrimarySizing == autolayout.SizingAuto {
		n.Width = cursor + float64(pad.Right)
	}
	if l.CounterSizing == autolayout.SizingAuto {
		n.Height = float64(pad.Top) + cross + float64(pad.Bottom)
	}
}
