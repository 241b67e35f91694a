package autolayout_test

import (
	"fmt"

	"github.com/matzehuels/autoframe/pkg/autolayout"
)

func ExampleAnalyze() {
	children := []autolayout.Box{
		{X: 16, Y: 16, Width: 120, Height: 24},
		{X: 16, Y: 48, Width: 120, Height: 24},
		{X: 16, Y: 80, Width: 120, Height: 24},
	}
	a := autolayout.Analyze(autolayout.Size{Width: 152, Height: 120}, children)
	fmt.Println(a.Direction, a.Spacing, a.Paddings)
	// Output: VERTICAL 8 {16 16 16 16}
}

func ExampleResolve() {
	a := autolayout.Analysis{
		Direction: autolayout.Horizontal,
		Spacing:   12,
		Paddings:  autolayout.Padding{Top: 4, Right: -6, Bottom: 4, Left: 8},
	}
	top := 20
	cfg, err := autolayout.Resolve(a, autolayout.Overrides{
		Padding: &autolayout.PaddingOverride{Top: &top},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cfg.LayoutMode, cfg.ItemSpacing, cfg.Padding)
	// Output: HORIZONTAL 12 {20 0 4 8}
}

func ExampleClassify() {
	grid := []autolayout.Box{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 20, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: 20, Width: 10, Height: 10},
	}
	fmt.Println(autolayout.Classify(grid))
	// Output: MIXED
}
