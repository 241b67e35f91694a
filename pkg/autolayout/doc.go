// Package autolayout infers a single-axis auto-layout configuration from the
// static geometry of a container's direct children.
//
// The package is pure: it works on a snapshot of child bounding boxes and never
// touches a host object. Applying the result is a separate, explicitly named
// step (see [Resolve] and the scene package).
//
// # Pipeline
//
//  1. [Classify] decides whether the children form a vertical stack, a
//     horizontal stack, or neither ([Mixed]).
//  2. [EstimateSpacing] finds the most frequent rounded gap between
//     consecutive children along the classified axis.
//  3. [EstimatePadding] measures the gap between the container box and the
//     union box of its children on all four sides.
//  4. [Resolve] turns an [Analysis] plus user [Overrides] into a [Config]
//     ready to be written onto the container.
//
// [Analyze] runs steps 1 to 3 in one call.
//
// # Ordering
//
// Classification walks the children in the order the host lists them and
// stops at the first child that starts before the previous one ends. Children
// are never sorted: a stack whose children are listed bottom-to-top is
// reported as [Mixed].
//
// # Measured vs. applied values
//
// An [Analysis] keeps raw measurements. Padding may be negative when children
// overflow the container; only [Resolve] clamps it to zero. This keeps
// "measured" and "applied" values apart so both can be inspected.
//
// # Example
//
//	children := []autolayout.Box{
//	    {X: 10, Y: 10, Width: 80, Height: 20},
//	    {X: 10, Y: 40, Width: 80, Height: 20},
//	}
//	a := autolayout.Analyze(autolayout.Size{Width: 100, Height: 70}, children)
//	cfg, err := autolayout.Resolve(a, autolayout.Overrides{})
//	// cfg.LayoutMode == VERTICAL, cfg.ItemSpacing == 10
package autolayout
