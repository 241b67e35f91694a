package autolayout

import "math"

// Classify reports how the children are stacked, in the order given.
//
// The vertical test passes when every child starts at or below the bottom of
// the child before it. Only when it fails is the horizontal test attempted,
// with left/right edges instead. If both fail the result is [Mixed].
//
// Each test stops at the first violation. An empty or single-element list
// always classifies as [Vertical].
func Classify(children []Box) Direction {
	if stacked(children, vertical) {
		return Vertical
	}
	if stacked(children, horizontal) {
		return Horizontal
	}
	return Mixed
}

// axis projects a box onto one dimension as (start, length).
type axis func(Box) (start, length float64)

func vertical(b Box) (float64, float64)   { return b.Y, b.Height }
func horizontal(b Box) (float64, float64) { return b.X, b.Width }

func axisOf(d Direction) axis {
	if d == Horizontal {
		return horizontal
	}
	return vertical
}

// stacked reports whether the boxes are monotonically laid out along ax.
// Touching edges (start == previous end) are allowed.
func stacked(boxes []Box, ax axis) bool {
	lastEnd := math.Inf(-1)
	for _, b := range boxes {
		start, length := ax(b)
		if start < lastEnd {
			return false
		}
		lastEnd = start + length
	}
	return true
}
