package bridge

import (
	"context"
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/errors"
	"github.com/matzehuels/autoframe/pkg/pipeline"
)

// Message types.
const (
	TypeConvert          = "convert-to-autolayout"
	TypeCancel           = "cancel"
	TypeConversionResult = "conversion-result"
	TypeNotify           = "notify"
)

// EmptySelectionNotice is the notification shown when a conversion is
// requested with nothing selected.
const EmptySelectionNotice = "Select at least one frame to convert."

// Message is an inbound message from the UI.
type Message struct {
	Type    string                `json:"type"`
	Options *autolayout.Overrides `json:"options,omitempty"`
}

// ResultMessage is posted to the host after a conversion.
type ResultMessage struct {
	Type   string           `json:"type"`
	Result *pipeline.Result `json:"result"`
}

// Session handles the messages of one UI connection. A Session is not safe
// for concurrent use.
type Session struct {
	ID string

	// Defaults fill option fields a convert message leaves unset.
	Defaults autolayout.Overrides

	host   Host
	runner *pipeline.Runner
	logger *log.Logger
	closed bool
}

// NewSession creates a session with a fresh UUID. A nil runner or logger
// gets a default that discards logs.
func NewSession(host Host, runner *pipeline.Runner, logger *log.Logger) *Session {
	return ResumeSession(host, runner, logger, uuid.NewString(), false)
}

// ResumeSession recreates a session under an existing ID, for example one
// loaded from a shared store. A closed session keeps ignoring messages.
func ResumeSession(host Host, runner *pipeline.Runner, logger *log.Logger, id string, closed bool) *Session {
	if runner == nil {
		runner = pipeline.NewRunner(logger)
	}
	if logger == nil {
		logger = runner.Logger
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return &Session{
		ID:     id,
		host:   host,
		runner: runner,
		logger: logger.With("session", short),
		closed: closed,
	}
}

// Closed reports whether a cancel message has been handled.
func (s *Session) Closed() bool { return s.closed }

// Handle processes one message and reports whether the session is closed.
// Messages arriving after cancel are ignored.
func (s *Session) Handle(ctx context.Context, msg Message) (bool, error) {
	if s.closed {
		return true, nil
	}
	switch msg.Type {
	case TypeConvert:
		if err := ctx.Err(); err != nil {
			return false, err
		}
		return false, s.convert(ctx, msg.Options)
	case TypeCancel:
		s.closed = true
		s.logger.Debug("session closed")
		return true, nil
	default:
		s.logger.Warn("ignoring unknown message", "type", msg.Type)
		return false, nil
	}
}

func (s *Session) convert(ctx context.Context, o *autolayout.Overrides) error {
	opts := pipeline.Options{Logger: s.logger}
	if o != nil {
		opts.Overrides = *o
	}
	opts.Overrides = opts.Overrides.WithDefaults(s.Defaults)

	result, err := s.runner.Convert(ctx, s.host.Selection(), opts)
	if errors.Is(err, errors.ErrCodeEmptySelection) {
		s.host.Notify(EmptySelectionNotice)
		return nil
	}
	if err != nil {
		return err
	}

	if summary := result.Summary(); summary != "" {
		s.host.Notify(summary)
	}
	if err := s.host.PostMessage(ResultMessage{Type: TypeConversionResult, Result: result}); err != nil {
		return errors.Wrap(errors.ErrCodeHostWrite, err, "post conversion result")
	}
	return nil
}

// Serve reads JSON messages from r and handles them in order until a cancel
// message, the end of the stream, or ctx is done. A clean end of stream
// returns nil.
func (s *Session) Serve(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgs := make(chan Message)
	errc := make(chan error, 1)

	go func() {
		dec := json.NewDecoder(r)
		for {
			var m Message
			if err := dec.Decode(&m); err != nil {
				errc <- err
				return
			}
			select {
			case msgs <- m:
			case <-ctx.Done():
				return
			}
		}
	}()

	s.logger.Debug("session started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errc:
			if err == io.EOF {
				s.logger.Debug("input closed")
				return nil
			}
			return errors.Wrap(errors.ErrCodeInvalidMessage, err, "decode message")
		case m := <-msgs:
			closed, err := s.Handle(ctx, m)
			if err != nil {
				return err
			}
			if closed {
				return nil
			}
		}
	}
}
