package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Encode writes the forest as an indented JSON array. A nil forest is
// written as [].
func Encode(w io.Writer, f Forest) error {
	if f == nil {
		f = Forest{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding tree: %w", err)
	}
	return nil
}

// Decode reads a document and checks path uniqueness.
func Decode(r io.Reader) (Forest, error) {
	var f Forest
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding tree: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("decoding tree: unexpected data after document")
	}
	if f == nil {
		f = Forest{}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteFile encodes the forest to path, creating parent directories.
func WriteFile(path string, f Forest) error {
	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads a document from disk.
func Load(path string) (Forest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tree document: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
