package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxCoordinate bounds the magnitude of every position and size so that
// rounded values always fit in an int.
const MaxCoordinate = 1e9

// ValidateBox checks that a node's geometry is usable for layout inference.
// Coordinates may be negative (children can overflow their parent) but every
// value must be finite and within MaxCoordinate, and sizes must not be
// negative.
func ValidateBox(name string, x, y, width, height float64) error {
	for _, v := range []float64{x, y, width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidGeometry, "%q has a non-finite coordinate", name)
		}
		if math.Abs(v) > MaxCoordinate {
			return New(ErrCodeInvalidGeometry, "%q has a coordinate beyond ±%g", name, MaxCoordinate)
		}
	}
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidGeometry, "%q has a negative size (%gx%g)", name, width, height)
	}
	return nil
}

// ValidateNodeID validates a node identifier from a scene document or a
// selection list.
//
// The rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or whitespace
//   - Maximum length of 128 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDocument, "node id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidDocument, "node id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidDocument, "node id %q contains whitespace or control characters", id)
		}
	}
	return nil
}

// ValidateSelection validates a comma-separated selection flag value and
// returns the individual IDs. An empty string yields no IDs.
func ValidateSelection(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var ids []string
	for _, part := range strings.Split(s, ",") {
		id := strings.TrimSpace(part)
		if err := ValidateNodeID(id); err != nil {
			return nil, Wrap(ErrCodeInvalidInput, err, "invalid selection")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
