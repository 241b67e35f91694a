package scene

import (
	"testing"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/errors"
)

func verticalConfig() autolayout.Config {
	return autolayout.Config{
		LayoutMode:    autolayout.Vertical,
		PrimarySizing: autolayout.SizingAuto,
		CounterSizing: autolayout.SizingAuto,
		ItemSpacing:   10,
		Padding:       autolayout.Padding{Top: 8, Right: 4, Bottom: 8, Left: 4},
		ChildAlign:    autolayout.AlignStretch,
	}
}

func TestNodeBounds(t *testing.T) {
	n := &Node{
		X: 1, Y: 2, Width: 30, Height: 40,
		Children: []*Node{
			{X: 5, Y: 5, Width: 10, Height: 10},
			{X: 5, Y: 20, Width: 12, Height: 8},
		},
	}
	if got, want := n.Bounds(), (autolayout.Box{X: 1, Y: 2, Width: 30, Height: 40}); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	boxes := n.ChildBounds()
	if len(boxes) != 2 {
		t.Fatalf("ChildBounds() returned %d boxes, want 2", len(boxes))
	}
	if boxes[1] != (autolayout.Box{X: 5, Y: 20, Width: 12, Height: 8}) {
		t.Errorf("ChildBounds()[1] = %+v", boxes[1])
	}
}

func TestNodeName(t *testing.T) {
	if got := (&Node{ID: "1:2", Name: "Card"}).NodeName(); got != "Card" {
		t.Errorf("NodeName() = %q, want %q", got, "Card")
	}
	if got := (&Node{ID: "1:2"}).NodeName(); got != "1:2" {
		t.Errorf("NodeName() = %q, want ID fallback %q", got, "1:2")
	}
}

func TestApplyLayout(t *testing.T) {
	n := &Node{
		Name: "List", Type: TypeFrame, Width: 100, Height: 100,
		Children: []*Node{
			{Name: "a", Type: TypeText, X: 4, Y: 8, Width: 60, Height: 20},
			{Name: "b", Type: TypeRectangle, X: 4, Y: 38, Width: 80, Height: 20},
			{Name: "export", Type: TypeSlice, X: 0, Y: 0, Width: 10, Height: 10},
		},
	}
	if err := n.ApplyLayout(verticalConfig()); err != nil {
		t.Fatalf("ApplyLayout() error: %v", err)
	}

	if n.Layout == nil {
		t.Fatal("Layout should be set")
	}
	want := Layout{
		Mode:          autolayout.Vertical,
		PrimarySizing: autolayout.SizingAuto,
		CounterSizing: autolayout.SizingAuto,
		ItemSpacing:   10,
		PaddingTop:    8,
		PaddingRight:  4,
		PaddingBottom: 8,
		PaddingLeft:   4,
	}
	if *n.Layout != want {
		t.Errorf("Layout = %+v, want %+v", *n.Layout, want)
	}
	for _, c := range n.Children[:2] {
		if c.LayoutAlign != autolayout.AlignStretch {
			t.Errorf("child %q LayoutAlign = %q, want STRETCH", c.Name, c.LayoutAlign)
		}
	}
	if n.Children[2].LayoutAlign != "" {
		t.Errorf("slice LayoutAlign = %q, want unset", n.Children[2].LayoutAlign)
	}
}

func TestApplyLayoutLocked(t *testing.T) {
	n := &Node{Name: "Locked", Type: TypeFrame, Locked: true, Children: []*Node{{Type: TypeText}}}
	err := n.ApplyLayout(verticalConfig())
	if !errors.Is(err, errors.ErrCodeHostWrite) {
		t.Fatalf("ApplyLayout() error = %v, want %v", err, errors.ErrCodeHostWrite)
	}
	if n.Layout != nil {
		t.Error("locked node should not be mutated")
	}
}

func TestApplyLayoutLockedChild(t *testing.T) {
	n := &Node{
		Name: "Card", Type: TypeFrame, Width: 100, Height: 100,
		Children: []*Node{
			{Name: "free", Type: TypeText, X: 30, Y: 10, Width: 40, Height: 20},
			{Name: "pinned", Type: TypeText, X: 10, Y: 50, Width: 80, Height: 20, Locked: true},
		},
	}
	err := n.ApplyLayout(verticalConfig())
	if !errors.Is(err, errors.ErrCodeHostWrite) {
		t.Fatalf("ApplyLayout() error = %v, want %v", err, errors.ErrCodeHostWrite)
	}
	if n.Layout != nil {
		t.Error("container Layout should stay unset")
	}
	free := n.Children[0]
	if free.LayoutAlign != "" {
		t.Errorf("free child LayoutAlign = %q, want unset", free.LayoutAlign)
	}
	if free.X != 30 || free.Y != 10 || free.Width != 40 {
		t.Errorf("free child bounds = %+v, want unchanged", free.Bounds())
	}
}

func TestApplyLayoutLockedSliceChild(t *testing.T) {
	n := &Node{
		Name: "Card", Type: TypeFrame, Width: 100, Height: 100,
		Children: []*Node{
			{Name: "title", Type: TypeText, X: 10, Y: 10, Width: 80, Height: 20},
			{Name: "export", Type: TypeSlice, X: 0, Y: 40, Width: 100, Height: 20, Locked: true},
		},
	}
	if err := n.ApplyLayout(verticalConfig()); err != nil {
		t.Fatalf("ApplyLayout() error: %v", err)
	}
	if n.Layout == nil {
		t.Error("container should get a layout when only a slice is locked")
	}
}

func TestReflowVertical(t *testing.T) {
	n := &Node{
		Type: TypeFrame, Width: 500, Height: 500,
		Children: []*Node{
			{Type: TypeText, X: 30, Y: 40, Width: 60, Height: 20},
			{Type: TypeText, X: 12, Y: 90, Width: 80, Height: 30},
		},
	}
	if err := n.ApplyLayout(verticalConfig()); err != nil {
		t.Fatalf("ApplyLayout() error: %v", err)
	}

	first, second := n.Children[0], n.Children[1]
	if first.X != 4 || first.Y != 8 {
		t.Errorf("first at (%v,%v), want (4,8)", first.X, first.Y)
	}
	if second.X != 4 || second.Y != 38 {
		t.Errorf("second at (%v,%v), want (4,38)", second.X, second.Y)
	}
	if first.Width != 80 || second.Width != 80 {
		t.Errorf("stretched widths = %v, %v, want 80", first.Width, second.Width)
	}
	// Hug: 8 + 20 + 10 + 30 + 8, 4 + 80 + 4
	if n.Height != 76 || n.Width != 88 {
		t.Errorf("container size = %vx%v, want 88x76", n.Width, n.Height)
	}
}

func TestReflowHorizontalFixedCounter(t *testing.T) {
	n := &Node{
		Type: TypeFrame, Width: 300, Height: 60,
		Layout: nil,
		Children: []*Node{
			{Type: TypeRectangle, Width: 40, Height: 20},
			{Type: TypeRectangle, Width: 50, Height: 30},
		},
	}
	cfg := autolayout.Config{
		LayoutMode:    autolayout.Horizontal,
		PrimarySizing: autolayout.SizingAuto,
		CounterSizing: autolayout.SizingFixed,
		ItemSpacing:   6,
		Padding:       autolayout.Padding{Top: 5, Right: 10, Bottom: 5, Left: 10},
		ChildAlign:    autolayout.AlignStretch,
	}
	if err := n.ApplyLayout(cfg); err != nil {
		t.Fatalf("ApplyLayout() error: %v", err)
	}
	if n.Children[1].X != 56 {
		t.Errorf("second child X = %v, want 56", n.Children[1].X)
	}
	if n.Children[0].Height != 50 {
		t.Errorf("stretched height = %v, want 50", n.Children[0].Height)
	}
	if n.Width != 116 {
		t.Errorf("Width = %v, want 116", n.Width)
	}
	if n.Height != 60 {
		t.Errorf("fixed Height = %v, want 60", n.Height)
	}
}
