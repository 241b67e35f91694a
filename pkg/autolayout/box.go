package autolayout

import "math"

// Box is an axis-aligned rectangle in the coordinate space of its parent.
type Box struct {
	X      float64 `json:"x" toml:"x"`
	Y      float64 `json:"y" toml:"y"`
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.Height }

// Size returns the width/height pair of the box.
func (b Box) Size() Size { return Size{Width: b.Width, Height: b.Height} }

// Size is a width/height pair. Containers are measured by size only: child
// coordinates are already relative to the container's origin.
type Size struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Padding holds the four inner spacings of a container, in whole units.
type Padding struct {
	Top    int `json:"top" toml:"top"`
	Right  int `json:"right" toml:"right"`
	Bottom int `json:"bottom" toml:"bottom"`
	Left   int `json:"left" toml:"left"`
}

// Clamped returns a copy with every negative side raised to zero.
func (p Padding) Clamped() Padding {
	return Padding{
		Top:    max(0, p.Top),
		Right:  max(0, p.Right),
		Bottom: max(0, p.Bottom),
		Left:   max(0, p.Left),
	}
}

// union returns the bounding box enclosing all boxes as min/max corners.
// The caller guarantees len(boxes) > 0.
func union(boxes []Box) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, b := range boxes {
		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.Right())
		maxY = math.Max(maxY, b.Bottom())
	}
	return minX, minY, maxX, maxY
}

// round rounds to the nearest integer with halves going up (toward +Inf),
// so -2.5 becomes -2 and 2.5 becomes 3.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
