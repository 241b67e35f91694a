package autolayout

// Analysis is the measured layout of one container.
//
// Spacing and Paddings are only meaningful when Direction is a single axis;
// for [Mixed] they must not be applied.
type Analysis struct {
	Direction Direction `json:"direction"`
	Spacing   int       `json:"spacing"`
	Paddings  Padding   `json:"paddings"`
}

// Analyze classifies the children and estimates spacing and padding in one
// pass over the snapshot.
func Analyze(container Size, children []Box) Analysis {
	d := Classify(children)
	return Analysis{
		Direction: d,
		Spacing:   EstimateSpacing(children, d),
		Paddings:  EstimatePadding(children, container),
	}
}
