package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const sceneJSON = `{
  "name": "Sample",
  "selection": ["list", "label"],
  "nodes": [
    {"id": "list", "name": "List", "type": "FRAME", "width": 100, "height": 100,
     "children": [
       {"id": "a", "type": "TEXT", "x": 10, "y": 10, "width": 80, "height": 20},
       {"id": "b", "type": "TEXT", "x": 10, "y": 40, "width": 80, "height": 20}
     ]},
    {"id": "label", "name": "Label", "type": "TEXT", "width": 10, "height": 10}
  ]
}`

// writeScene writes sceneJSON into a temp dir and returns its path.
func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(sceneJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// testCLI returns a CLI with a discarding logger and a context carrying it.
// The config lookup is pointed at an empty directory.
func testCLI(t *testing.T) (*CLI, context.Context) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(envConfig, "")
	t.Setenv(envAddr, "")
	t.Setenv(envRedisURL, "")
	c := New(io.Discard, LogInfo)
	return c, withLogger(context.Background(), c.Logger)
}

func intPtr(v int) *int { return &v }
