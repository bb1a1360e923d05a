// Package store persists the explorer's expansion state in a small
// key-value store, the way a browser keeps it in local storage.
package store

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/codeview/internal/config"
	"github.com/ziadkadry99/codeview/internal/db"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("store: closed")

// KV is an opaque string key-value store.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Open returns the backend selected by cfg.Driver.
func Open(cfg config.StorageConfig) (KV, error) {
	switch cfg.Driver {
	case config.StorageSQLite:
		d, err := db.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return NewSQLite(d), nil
	case config.StorageFile:
		return NewFile(cfg.Path), nil
	case config.StorageMemory, "":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
