package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/autoframe/pkg/errors"
)

// Document file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// FormatFromPath picks the document format from a file extension.
// Anything other than .toml is treated as JSON.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// =============================================================================
// Document Serialization API
// =============================================================================

// MarshalDocument serializes a document in the given format.
// JSON output is pretty-printed.
func MarshalDocument(d *Document, format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteDocument(d, &buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalDocument decodes a document and normalizes it (see
// [Document.Normalize]).
func UnmarshalDocument(data []byte, format string) (*Document, error) {
	return ReadDocument(bytes.NewReader(data), format)
}

// WriteDocument encodes a document to w.
func WriteDocument(d *Document, w io.Writer, format string) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(d); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "invalid document format: %q (must be one of: json, toml)", format)
	}
	return nil
}

// ReadDocument decodes a document from r and normalizes it.
func ReadDocument(r io.Reader, format string) (*Document, error) {
	var d Document
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode toml")
		}
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid document format: %q (must be one of: json, toml)", format)
	}
	if err := d.Normalize(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadFile reads a document file, choosing the format from its extension.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDocument(f, FormatFromPath(path))
}

// WriteFile writes a document file, choosing the format from its extension.
func WriteFile(d *Document, path string) error {
	data, err := MarshalDocument(d, FormatFromPath(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
