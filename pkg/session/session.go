// Package session keeps message-bridge sessions alive between HTTP requests.
//
// A remote plugin UI uploads a scene document once, receives a session ID,
// and then posts bridge messages against it. Each session owns its document,
// the host that records notifications, and the bridge session that tracks
// whether the UI has cancelled.
//
// Two stores are provided:
//   - MemoryStore keeps sessions in process, for a single server
//   - RedisStore keeps [Snapshot]s in Redis, for servers behind a load balancer
//
// # Usage
//
//	store := session.NewMemoryStore()
//	// or: store, err := session.NewRedisStore(ctx, session.RedisConfig{URL: "redis://localhost:6379/0"})
//	sess := session.New(doc, runner, logger, session.DefaultTTL)
//	store.Set(ctx, sess)
//
//	sess, err = store.Get(ctx, id)
//	if sess == nil {
//	    // not found or expired
//	}
//	ex, err := sess.Handle(ctx, bridge.Message{Type: bridge.TypeConvert})
package session

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/bridge"
	"github.com/matzehuels/autoframe/pkg/errors"
	"github.com/matzehuels/autoframe/pkg/pipeline"
	"github.com/matzehuels/autoframe/pkg/scene"
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 30 * time.Minute

// Session is a bridge session with its document.
type Session struct {
	ID        string
	CreatedAt time.Time

	expiresAt time.Time
	ttl       time.Duration
	doc       *scene.Document
	host      *bridge.DocumentHost
	bridge    *bridge.Session
	mu        sync.Mutex
}

// Exchange is what one message produced on the host side.
type Exchange struct {
	Closed        bool     `json:"closed"`
	Notifications []string `json:"notifications"`
	Messages      []any    `json:"messages"`
}

// New creates a session over doc. The session ID is the bridge session's
// UUID, so log lines and API responses agree.
func New(doc *scene.Document, runner *pipeline.Runner, logger *log.Logger, ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	host := bridge.NewDocumentHost(doc)
	b := bridge.NewSession(host, runner, logger)
	now := time.Now()
	return &Session{
		ID:        b.ID,
		CreatedAt: now,
		expiresAt: now.Add(ttl),
		ttl:       ttl,
		doc:       doc,
		host:      host,
		bridge:    b,
	}
}

// Snapshot is the serializable state of a session. Restore turns it back
// into a live session without re-running any conversion.
type Snapshot struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	ExpiresAt time.Time            `json:"expires_at"`
	TTL       time.Duration        `json:"ttl"`
	Closed    bool                 `json:"closed"`
	Defaults  autolayout.Overrides `json:"defaults"`
	Document  *scene.Document      `json:"document"`
}

// Snapshot captures the session's current state. The document is shared,
// not copied.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.expiresAt,
		TTL:       s.ttl,
		Closed:    s.bridge.Closed(),
		Defaults:  s.bridge.Defaults,
		Document:  s.doc,
	}
}

// Restore rebuilds a session from a snapshot. The document is normalized
// again, so a corrupted snapshot fails with the document's error.
func Restore(snap Snapshot, runner *pipeline.Runner, logger *log.Logger) (*Session, error) {
	if snap.ID == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "session snapshot has no id")
	}
	if snap.Document == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "session %q has no document", snap.ID)
	}
	if err := snap.Document.Normalize(); err != nil {
		return nil, err
	}
	ttl := snap.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	host := bridge.NewDocumentHost(snap.Document)
	b := bridge.ResumeSession(host, runner, logger, snap.ID, snap.Closed)
	b.Defaults = snap.Defaults
	return &Session{
		ID:        snap.ID,
		CreatedAt: snap.CreatedAt,
		expiresAt: snap.ExpiresAt,
		ttl:       ttl,
		doc:       snap.Document,
		host:      host,
		bridge:    b,
	}, nil
}

// Info is the public view of a session.
type Info struct {
	ID        string    `json:"id"`
	Closed    bool      `json:"closed"`
	Nodes     int       `json:"nodes"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Info returns a snapshot of the session's state.
func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Info{
		ID:        s.ID,
		Closed:    s.bridge.Closed(),
		Nodes:     s.doc.NodeCount(),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.expiresAt,
	}
}

// SetDefaults sets the option defaults applied to every convert message.
func (s *Session) SetDefaults(o autolayout.Overrides) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bridge.Defaults = o
}

// WriteDocument writes the session's current document to w.
func (s *Session) WriteDocument(w io.Writer, format string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scene.WriteDocument(s.doc, w, format)
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Now().After(s.expiresAt)
}

// Closed reports whether the UI has cancelled the session.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bridge.Closed()
}

// Handle passes one message to the bridge session and collects the host
// output. Handling a message extends the session's lifetime. Messages are
// handled one at a time per session.
func (s *Session) Handle(ctx context.Context, msg bridge.Message) (*Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	closed, err := s.bridge.Handle(ctx, msg)
	notices, posted := s.host.Drain()
	s.expiresAt = time.Now().Add(s.ttl)
	if err != nil {
		return nil, err
	}
	ex := &Exchange{Closed: closed, Notifications: notices, Messages: posted}
	if ex.Notifications == nil {
		ex.Notifications = []string{}
	}
	if ex.Messages == nil {
		ex.Messages = []any{}
	}
	return ex, nil
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Set stores a session. Stores that copy sessions out of process only
	// see a handled message once Set is called again.
	Set(ctx context.Context, session *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, sessionID string) error

	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}
