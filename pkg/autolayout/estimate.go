package autolayout

// Gaps returns the distance between each consecutive pair of children along
// the direction's axis: the start of child i minus the end of child i-1.
// Gaps can be negative when children overlap.
//
// Returns nil for fewer than two children or when d is not a single axis.
func Gaps(children []Box, d Direction) []float64 {
	if len(children) < 2 || !d.IsAxis() {
		return nil
	}
	ax := axisOf(d)
	gaps := make([]float64, 0, len(children)-1)
	for i := 1; i < len(children); i++ {
		prevStart, prevLen := ax(children[i-1])
		start, _ := ax(children[i])
		gaps = append(gaps, start-(prevStart+prevLen))
	}
	return gaps
}

// ModeGap returns the most frequent gap after rounding each to the nearest
// integer. The result is the raw mode and may be zero or negative.
//
// All gaps are counted before a winner is picked. Ties go to the value seen
// first in gaps: [4, 8, 8, 4] yields 4 and [12, 10, 10] yields 10. An empty
// slice yields 0.
func ModeGap(gaps []float64) int {
	counts := make(map[int]int, len(gaps))
	order := make([]int, 0, len(gaps))
	for _, g := range gaps {
		v := round(g)
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best, bestCount := 0, 0
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// EstimateSpacing returns the representative item spacing for children
// stacked along d. It is zero for fewer than two children, for [Mixed], and
// whenever the most frequent gap is zero or negative.
func EstimateSpacing(children []Box, d Direction) int {
	gaps := Gaps(children, d)
	if len(gaps) == 0 {
		return 0
	}
	return max(0, ModeGap(gaps))
}

// EstimatePadding measures the gap between the container's box and the union
// box of its children on each side, rounded to whole units.
//
// Values are not clamped: children that overflow the container produce
// negative padding. With no children every side is zero.
func EstimatePadding(children []Box, container Size) Padding {
	if len(children) == 0 {
		return Padding{}
	}
	minX, minY, maxX, maxY := union(children)
	return Padding{
		Top:    round(minY),
		Right:  round(container.Width - maxX),
		Bottom: round(container.Height - maxY),
		Left:   round(minX),
	}
}
