package user

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/threat-shooter/config"
)

// Backend persists the user Document
type Backend interface {
	// Load returns the stored document, an empty one when nothing was stored yet
	Load() (*Document, error)

	// Save replaces the stored document
	Save(doc *Document) error

	// Close releases the underlying resources
	Close() error
}

// NewBackend creates a storage backend based on configuration
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "json", "":
		return NewJSONBackend(cfg.JSON.Path), nil
	case "sqlite":
		return NewSQLiteBackend(cfg.SQLite.Path, log)
	case "postgres":
		return NewPostgresBackend(cfg.Postgres, log)
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, errors.Errorf("unknown storage type: %s", cfg.Type)
	}
}
