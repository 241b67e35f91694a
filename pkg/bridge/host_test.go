package bridge

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/autoframe/pkg/scene"
)

// brokenWriter accepts limit bytes in total, then fails.
type brokenWriter struct {
	buf   bytes.Buffer
	limit int
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.limit {
		return 0, io.ErrClosedPipe
	}
	return w.buf.Write(p)
}

func TestStreamHostWrites(t *testing.T) {
	var buf bytes.Buffer
	h := NewStreamHost(&scene.Document{}, &buf)

	h.Notify("hello")
	if err := h.PostMessage(Notification{Type: TypeNotify, Message: "again"}); err != nil {
		t.Fatalf("PostMessage() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("wrote %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"message":"hello"`) {
		t.Errorf("notification line = %q", lines[0])
	}
}

func TestStreamHostNotifyErrorSurfaces(t *testing.T) {
	w := &brokenWriter{}
	h := NewStreamHost(&scene.Document{}, w)

	h.Notify("lost")
	err := h.PostMessage(Notification{Type: TypeNotify, Message: "next"})
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("PostMessage() error = %v, want %v", err, io.ErrClosedPipe)
	}
}

func TestStreamHostErrorIsSticky(t *testing.T) {
	w := &brokenWriter{limit: 1 << 10}
	h := NewStreamHost(&scene.Document{}, w)

	h.Notify("first")
	if err := h.PostMessage(Notification{Type: TypeNotify, Message: strings.Repeat("x", 2<<10)}); err == nil {
		t.Fatal("PostMessage() should fail past the writer limit")
	}
	written := w.buf.Len()
	if err := h.PostMessage(Notification{Type: TypeNotify, Message: "small"}); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("PostMessage() error = %v, want %v", err, io.ErrClosedPipe)
	}
	if w.buf.Len() != written {
		t.Error("writes after a failure should be dropped")
	}
}
