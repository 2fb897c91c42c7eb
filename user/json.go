package user

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// JSONBackend stores the document as a single JSON file
// Writes go to a temp file renamed over the target so a crash never leaves a torn file
type JSONBackend struct {
	path string
}

// NewJSONBackend creates a backend for the file at path; the file is created on first Save
func NewJSONBackend(path string) *JSONBackend {
	return &JSONBackend{path: path}
}

// Path returns the backing file path
func (b *JSONBackend) Path() string {
	return b.path
}

func (b *JSONBackend) Load() (*Document, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Document{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", b.path)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s", b.path)
	}
	return doc, nil
}

func (b *JSONBackend) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode users")
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return errors.Wrapf(err, "replace %s", b.path)
	}
	return nil
}

func (b *JSONBackend) Close() error {
	return nil
}
