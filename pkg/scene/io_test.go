package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/errors"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"scene.json", FormatJSON},
		{"scene.toml", FormatTOML},
		{"SCENE.TOML", FormatTOML},
		{"scene", FormatJSON},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestReadDocumentJSON(t *testing.T) {
	input := `{
  "name": "Cards",
  "selection": ["card"],
  "nodes": [
    {"id": "card", "name": "Card", "type": "FRAME", "width": 200, "height": 120,
     "children": [
       {"name": "Title", "type": "TEXT", "x": 16, "y": 16, "width": 100, "height": 20}
     ]}
  ]
}`
	d, err := ReadDocument(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}
	if d.Name != "Cards" || len(d.Nodes) != 1 {
		t.Fatalf("unexpected document: %+v", d)
	}
	title := d.Nodes[0].Children[0]
	if title.ID == "" {
		t.Error("ReadDocument() should assign IDs to anonymous layers")
	}
	if title.X != 16 || title.Width != 100 {
		t.Errorf("title geometry = %+v", title.Bounds())
	}
}

func TestReadDocumentErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format string
		code   errors.Code
	}{
		{"malformed json", `{"nodes": [`, FormatJSON, errors.ErrCodeInvalidDocument},
		{"malformed toml", `[[nodes]`, FormatTOML, errors.ErrCodeInvalidDocument},
		{"unknown format", `{}`, "yaml", errors.ErrCodeInvalidInput},
		{"invalid geometry", `{"nodes": [{"id": "a", "type": "FRAME", "width": -5}]}`, FormatJSON, errors.ErrCodeInvalidGeometry},
		{"null layer", `{"nodes": [null]}`, FormatJSON, errors.ErrCodeInvalidDocument},
		{"null child", `{"nodes": [{"id": "a", "type": "FRAME", "width": 10, "height": 10, "children": [null]}]}`, FormatJSON, errors.ErrCodeInvalidDocument},
		{"null nested child", `{"nodes": [{"id": "a", "type": "FRAME", "children": [{"id": "b", "type": "GROUP", "children": [{"id": "c", "type": "TEXT"}, null]}]}]}`, FormatJSON, errors.ErrCodeInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDocument(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadDocument() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestWriteDocumentLayout(t *testing.T) {
	d := &Document{Nodes: []*Node{{
		ID: "list", Type: TypeFrame,
		Layout: &Layout{Mode: autolayout.Vertical, ItemSpacing: 8},
	}}}

	var buf bytes.Buffer
	if err := WriteDocument(d, &buf, FormatJSON); err != nil {
		t.Fatalf("WriteDocument() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"layout_mode": "VERTICAL"`, `"item_spacing": 8`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}

	if err := WriteDocument(d, &buf, "xml"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("WriteDocument(xml) error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d := sampleDocument()
	d.Selection = []string{"1:3"}

	for _, name := range []string{"scene.json", "scene.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := WriteFile(d, path); err != nil {
				t.Fatalf("WriteFile() error: %v", err)
			}
			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error: %v", err)
			}
			if got.NodeCount() != d.NodeCount() {
				t.Errorf("NodeCount() = %d, want %d", got.NodeCount(), d.NodeCount())
			}
			if n := got.Find("1:4"); n == nil || n.Name != "Label" {
				t.Errorf("nested layer lost in %s", name)
			}
			if len(got.Selection) != 1 || got.Selection[0] != "1:3" {
				t.Errorf("Selection = %v, want [1:3]", got.Selection)
			}
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile() error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
	if !os.IsNotExist(errorsCause(err)) {
		t.Errorf("cause should be a not-exist error, got %v", err)
	}
}

func errorsCause(err error) error {
	if e, ok := err.(*errors.Error); ok {
		return e.Cause
	}
	return err
}
