package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/bridge"
	"github.com/matzehuels/autoframe/pkg/buildinfo"
	"github.com/matzehuels/autoframe/pkg/errors"
	"github.com/matzehuels/autoframe/pkg/pipeline"
	"github.com/matzehuels/autoframe/pkg/scene"
	"github.com/matzehuels/autoframe/pkg/session"
)

// =============================================================================
// Request and Response Types
// =============================================================================

// DocumentRequest carries a scene document and an optional selection that
// replaces the document's own.
type DocumentRequest struct {
	Document  *scene.Document       `json:"document"`
	Selection []string              `json:"selection,omitempty"`
	Options   *autolayout.Overrides `json:"options,omitempty"`
}

// AnalyzeResponse is the body of POST /v1/analyze.
type AnalyzeResponse struct {
	Reports []pipeline.Report `json:"reports"`
}

// ConvertResponse is the body of POST /v1/convert.
type ConvertResponse struct {
	Result       *pipeline.Result `json:"result,omitempty"`
	Notification string           `json:"notification,omitempty"`
	Document     *scene.Document  `json:"document,omitempty"`
}

// ErrorResponse is the body of every error.
type ErrorResponse struct {
	Error        ErrorBody `json:"error"`
	Notification string    `json:"notification,omitempty"`
}

// ErrorBody is the machine-readable part of an error response.
type ErrorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Current())
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeDocument(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	nodes, err := req.Document.Selected()
	if err != nil {
		s.writeError(w, err)
		return
	}
	reports := pipeline.Inspect(pipeline.Selection(nodes), s.overrides(req.Options))
	writeJSON(w, http.StatusOK, AnalyzeResponse{Reports: reports})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeDocument(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	nodes, err := req.Document.Selected()
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := r.Context().Err(); err != nil {
		return
	}
	opts := pipeline.Options{Overrides: s.overrides(req.Options)}
	result, err := s.runner.Convert(r.Context(), pipeline.Selection(nodes), opts)
	if errors.Is(err, errors.ErrCodeEmptySelection) {
		writeJSON(w, errors.HTTPStatus(err), ErrorResponse{
			Error:        errorBody(err),
			Notification: bridge.EmptySelectionNotice,
		})
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ConvertResponse{
		Result:       result,
		Notification: result.Summary(),
		Document:     req.Document,
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeDocument(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sess := session.New(req.Document, s.runner, s.logger, s.cfg.SessionTTL)
	sess.SetDefaults(s.overrides(req.Options))
	if err := s.store.Set(r.Context(), sess); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store session"))
		return
	}
	s.logger.Info("session created", "session", sess.ID, "nodes", req.Document.NodeCount())
	writeJSON(w, http.StatusCreated, sess.Info())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Info())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), sess.ID); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "delete session"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSessionDocument(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := sess.WriteDocument(w, scene.FormatJSON); err != nil {
		s.logger.Error("write session document", "session", sess.ID, "error", err)
	}
}

func (s *Server) handleSessionMessage(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var msg bridge.Message
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&msg); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidMessage, err, "decode message"))
		return
	}
	ex, err := sess.Handle(r.Context(), msg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Set(r.Context(), sess); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store session"))
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

// =============================================================================
// Helpers
// =============================================================================

// decodeDocument reads a DocumentRequest, normalizes the document and applies
// the request's selection.
func (s *Server) decodeDocument(w http.ResponseWriter, r *http.Request) (*DocumentRequest, error) {
	var req DocumentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	if req.Document == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document is required")
	}
	if err := req.Document.Normalize(); err != nil {
		return nil, err
	}
	if req.Selection != nil {
		if err := req.Document.Select(req.Selection); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// overrides merges request options over the configured defaults.
func (s *Server) overrides(o *autolayout.Overrides) autolayout.Overrides {
	if o == nil {
		return s.cfg.Defaults
	}
	return o.WithDefaults(s.cfg.Defaults)
}

func (s *Server) session(r *http.Request) (*session.Session, error) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load session")
	}
	if sess == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "session %q not found", id)
	}
	return sess, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: errorBody(err)})
}

func errorBody(err error) ErrorBody {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return ErrorBody{Code: code, Message: errors.UserMessage(err)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
