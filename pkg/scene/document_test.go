package scene

import (
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/autoframe/pkg/errors"
)

func sampleDocument() *Document {
	return &Document{
		Name: "Sample",
		Nodes: []*Node{
			{
				ID: "1:1", Name: "Page", Type: TypeFrame, Width: 400, Height: 400,
				Children: []*Node{
					{ID: "1:2", Name: "Header", Type: TypeFrame, Width: 400, Height: 60},
					{ID: "1:3", Name: "Body", Type: TypeGroup, Y: 60, Width: 400, Height: 340,
						Children: []*Node{
							{ID: "1:4", Name: "Label", Type: TypeText, Width: 80, Height: 20},
						},
					},
				},
			},
			{ID: "2:1", Name: "Loose", Type: TypeRectangle, Width: 10, Height: 10},
		},
	}
}

func TestDocumentFind(t *testing.T) {
	d := sampleDocument()

	tests := []struct {
		id   string
		want string
	}{
		{"1:1", "Page"},
		{"1:4", "Label"},
		{"2:1", "Loose"},
	}
	for _, tt := range tests {
		n := d.Find(tt.id)
		if n == nil {
			t.Errorf("Find(%q) = nil, want %q", tt.id, tt.want)
			continue
		}
		if n.Name != tt.want {
			t.Errorf("Find(%q).Name = %q, want %q", tt.id, n.Name, tt.want)
		}
	}
	if n := d.Find("9:9"); n != nil {
		t.Errorf("Find(missing) = %v, want nil", n)
	}
}

func TestDocumentSelect(t *testing.T) {
	d := sampleDocument()

	if err := d.Select([]string{"1:3", "1:1"}); err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	nodes, err := d.Selected()
	if err != nil {
		t.Fatalf("Selected() error: %v", err)
	}
	if len(nodes) != 2 || nodes[0].Name != "Body" || nodes[1].Name != "Page" {
		t.Errorf("Selected() did not preserve selection order: %v", nodes)
	}

	err = d.Select([]string{"1:1", "nope"})
	if !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Errorf("Select(unknown) error = %v, want %v", err, errors.ErrCodeNodeNotFound)
	}
	if len(d.Selection) != 2 || d.Selection[0] != "1:3" {
		t.Errorf("failed Select() should keep previous selection, got %v", d.Selection)
	}
}

func TestDocumentSelectedStale(t *testing.T) {
	d := sampleDocument()
	d.Selection = []string{"gone"}

	if _, err := d.Selected(); !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Errorf("Selected() error = %v, want %v", err, errors.ErrCodeNodeNotFound)
	}
}

func TestDocumentNormalize(t *testing.T) {
	d := &Document{Nodes: []*Node{
		{Type: TypeFrame, Width: 10, Height: 10, Children: []*Node{
			{Type: TypeText, Width: 5, Height: 5},
		}},
	}}
	if err := d.Normalize(); err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	for _, n := range []*Node{d.Nodes[0], d.Nodes[0].Children[0]} {
		if _, err := uuid.Parse(n.ID); err != nil {
			t.Errorf("generated ID %q is not a UUID: %v", n.ID, err)
		}
	}
	if d.Nodes[0].ID == d.Nodes[0].Children[0].ID {
		t.Error("generated IDs should be unique")
	}
}

func TestDocumentNormalizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		nodes []*Node
		code  errors.Code
	}{
		{
			name: "duplicate id",
			nodes: []*Node{
				{ID: "a", Type: TypeFrame},
				{ID: "a", Type: TypeFrame},
			},
			code: errors.ErrCodeInvalidDocument,
		},
		{
			name:  "missing type",
			nodes: []*Node{{ID: "a"}},
			code:  errors.ErrCodeInvalidDocument,
		},
		{
			name:  "bad id",
			nodes: []*Node{{ID: "has space", Type: TypeFrame}},
			code:  errors.ErrCodeInvalidDocument,
		},
		{
			name: "negative size in child",
			nodes: []*Node{
				{ID: "a", Type: TypeFrame, Children: []*Node{
					{ID: "b", Type: TypeText, Width: -1},
				}},
			},
			code: errors.ErrCodeInvalidGeometry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Document{Nodes: tt.nodes}
			err := d.Normalize()
			if !errors.Is(err, tt.code) {
				t.Errorf("Normalize() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestDocumentNodeCount(t *testing.T) {
	if got := sampleDocument().NodeCount(); got != 5 {
		t.Errorf("NodeCount() = %d, want 5", got)
	}
	if got := (&Document{}).NodeCount(); got != 0 {
		t.Errorf("NodeCount() on empty = %d, want 0", got)
	}
}
