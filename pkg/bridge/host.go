package bridge

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/matzehuels/autoframe/pkg/pipeline"
	"github.com/matzehuels/autoframe/pkg/scene"
)

// Host is the application side of a session: it owns the selection and
// displays notifications and posted messages.
type Host interface {
	Selection() []pipeline.Container
	Notify(message string)
	PostMessage(msg any) error
}

// selection resolves the document's selection, skipping IDs that no longer
// exist.
func selection(doc *scene.Document) []pipeline.Container {
	if doc == nil {
		return nil
	}
	out := make([]pipeline.Container, 0, len(doc.Selection))
	for _, id := range doc.Selection {
		if n := doc.Find(id); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// =============================================================================
// DocumentHost
// =============================================================================

// DocumentHost serves the selection of a scene document and records what the
// session sends back. It is safe for concurrent use.
type DocumentHost struct {
	Doc *scene.Document

	mu      sync.Mutex
	notices []string
	posted  []any
}

// NewDocumentHost creates a host over doc.
func NewDocumentHost(doc *scene.Document) *DocumentHost {
	return &DocumentHost{Doc: doc}
}

func (h *DocumentHost) Selection() []pipeline.Container {
	return selection(h.Doc)
}

func (h *DocumentHost) Notify(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notices = append(h.notices, message)
}

func (h *DocumentHost) PostMessage(msg any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.posted = append(h.posted, msg)
	return nil
}

// Drain returns everything recorded since the last call and clears it.
func (h *DocumentHost) Drain() (notices []string, posted []any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	notices, posted = h.notices, h.posted
	h.notices, h.posted = nil, nil
	return notices, posted
}

// =============================================================================
// StreamHost
// =============================================================================

// Notification is how StreamHost writes a notification.
type Notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// StreamHost serves the selection of a scene document and writes
// notifications and posted messages to w as newline-delimited JSON.
//
// The first write error is kept: later writes are dropped and every
// PostMessage returns it.
type StreamHost struct {
	Doc *scene.Document

	mu  sync.Mutex
	enc *json.Encoder
	err error
}

// NewStreamHost creates a host over doc writing to w.
func NewStreamHost(doc *scene.Document, w io.Writer) *StreamHost {
	return &StreamHost{Doc: doc, enc: json.NewEncoder(w)}
}

func (h *StreamHost) Selection() []pipeline.Container {
	return selection(h.Doc)
}

// Notify writes a notification. A write error is returned by the next
// PostMessage.
func (h *StreamHost) Notify(message string) {
	_ = h.PostMessage(Notification{Type: TypeNotify, Message: message})
}

func (h *StreamHost) PostMessage(msg any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return h.err
	}
	if err := h.enc.Encode(msg); err != nil {
		h.err = fmt.Errorf("write message: %w", err)
	}
	return h.err
}
