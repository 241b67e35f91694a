package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewAndWrap(t *testing.T) {
	err := New(ErrCodeInvalidGeometry, "node %q has width %v", "card", -1)
	if got, want := err.Error(), `INVALID_GEOMETRY: node "card" has width -1`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("node is locked")
	wrapped := Wrap(ErrCodeHostWrite, cause, "set item spacing on %q", "Card")
	if got, want := wrapped.Error(), `HOST_WRITE: set item spacing on "Card": node is locked`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Unwrap(wrapped) != cause {
		t.Error("Unwrap() should return the cause")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is(wrapped, cause) = false, want true")
	}
}

func TestCodeLookup(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		wantIs   bool
		wantCode Code
	}{
		{"direct", New(ErrCodeMixedLayout, "grid"), ErrCodeMixedLayout, true, ErrCodeMixedLayout},
		{"other code", New(ErrCodeMixedLayout, "grid"), ErrCodeHostWrite, false, ErrCodeMixedLayout},
		{"outermost wins", Wrap(ErrCodeHostWrite, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInvalidInput, false, ErrCodeHostWrite},
		{"through fmt wrap", fmt.Errorf("load: %w", New(ErrCodeFileNotFound, "x")), ErrCodeFileNotFound, true, ErrCodeFileNotFound},
		{"plain error", errors.New("boom"), ErrCodeInternal, false, ""},
		{"nil", nil, ErrCodeInternal, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"coded with cause", Wrap(ErrCodeHostWrite, errors.New("node is locked"), "set item spacing"), "set item spacing: node is locked"},
		{"plain", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{New(ErrCodeInvalidDocument, "bad"), http.StatusBadRequest},
		{New(ErrCodeInvalidMessage, "bad"), http.StatusBadRequest},
		{New(ErrCodeNodeNotFound, "missing"), http.StatusNotFound},
		{New(ErrCodeNotFound, "session"), http.StatusNotFound},
		{New(ErrCodeEmptySelection, "nothing"), http.StatusUnprocessableEntity},
		{New(ErrCodeMixedLayout, "mixed"), http.StatusUnprocessableEntity},
		{New(ErrCodeHostWrite, "locked"), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
