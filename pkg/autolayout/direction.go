package autolayout

import (
	"fmt"
	"strings"
)

// Direction is the classified stacking axis of a container's children.
type Direction string

// Layout directions. Mixed is terminal: nothing is estimated or applied for it.
const (
	Vertical   Direction = "VERTICAL"
	Horizontal Direction = "HORIZONTAL"
	Mixed      Direction = "MIXED"
)

// IsAxis reports whether d is a single layout axis (Vertical or Horizontal).
func (d Direction) IsAxis() bool {
	return d == Vertical || d == Horizontal
}

// String returns the canonical upper-case name.
func (d Direction) String() string { return string(d) }

// ParseDirection parses a direction name, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToUpper(strings.TrimSpace(s))); d {
	case Vertical, Horizontal, Mixed:
		return d, nil
	default:
		return "", fmt.Errorf("invalid direction: %q (must be one of: vertical, horizontal, mixed)", s)
	}
}

// SizingMode controls how a container sizes itself along one axis.
type SizingMode string

const (
	// SizingAuto makes the container hug its contents.
	SizingAuto SizingMode = "AUTO"
	// SizingFixed keeps the container's explicit size.
	SizingFixed SizingMode = "FIXED"
)

// Align is the per-child alignment along the container's cross axis.
type Align string

const (
	AlignInherit Align = "INHERIT"
	AlignStretch Align = "STRETCH"
)
