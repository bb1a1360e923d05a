package store

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Expansion mirrors the set of open directories into one key of a KV
// store as a JSON object of path -> true. Failures never reach the caller:
// a store that cannot be read or written behaves like an empty one.
type Expansion struct {
	KV     KV
	Key    string
	Logger *zap.Logger
}

// NewExpansion returns an Expansion over kv under key.
func NewExpansion(kv KV, key string, logger *zap.Logger) *Expansion {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Expansion{KV: kv, Key: key, Logger: logger}
}

func (e *Expansion) log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Load returns the persisted open set. Entries whose value is not true are
// dropped.
func (e *Expansion) Load() map[string]bool {
	open := map[string]bool{}
	if e == nil || e.KV == nil {
		return open
	}
	raw, ok, err := e.KV.Get(e.Key)
	if err != nil {
		e.log().Debug("expansion store unavailable", zap.String("key", e.Key), zap.Error(err))
		return open
	}
	if !ok || raw == "" {
		return open
	}
	var stored map[string]bool
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		e.log().Debug("ignoring corrupt expansion state", zap.String("key", e.Key), zap.Error(err))
		return open
	}
	for path, v := range stored {
		if v {
			open[path] = true
		}
	}
	return open
}

// SetOpen records path as open, or removes it when open is false.
func (e *Expansion) SetOpen(path string, open bool) {
	if e == nil || e.KV == nil {
		return
	}
	current := e.Load()
	if open {
		current[path] = true
	} else {
		delete(current, path)
	}
	e.save(current)
}

// Clear forgets every open directory.
func (e *Expansion) Clear() {
	if e == nil || e.KV == nil {
		return
	}
	if err := e.KV.Delete(e.Key); err != nil {
		e.log().Debug("clearing expansion state failed", zap.String("key", e.Key), zap.Error(err))
	}
}

func (e *Expansion) save(open map[string]bool) {
	data, err := json.Marshal(open)
	if err != nil {
		e.log().Debug("encoding expansion state failed", zap.Error(err))
		return
	}
	if err := e.KV.Set(e.Key, string(data)); err != nil {
		e.log().Debug("writing expansion state failed", zap.String("key", e.Key), zap.Error(err))
	}
}
