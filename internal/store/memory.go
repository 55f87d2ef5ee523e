package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store used by tests and local development.
// It mirrors the remote store's semantics: generated child keys,
// merge-style updates, idempotent deletes.
type Memory struct {
	mu     sync.RWMutex
	data   map[string]map[string]json.RawMessage
	failed error
	writes int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: map[string]map[string]json.RawMessage{}}
}

// FailWith forces every subsequent operation to return err.
// Pass nil to restore normal behavior.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = err
}

// Writes reports how many mutating operations have been applied.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// Seed inserts a record under an explicit key, bypassing key generation.
func (m *Memory) Seed(path, key string, record any) {
	data, err := json.Marshal(record)
	if err != nil {
		panic("store: unserializable seed record: " + err.Error())
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[path] == nil {
		m.data[path] = map[string]json.RawMessage{}
	}
	m.data[path][key] = data
}

// splitPath separates "collection/key" into its two parts. A bare
// collection path has an empty key.
func splitPath(path string) (collection, key string) {
	path = strings.Trim(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}

func (m *Memory) FetchAll(_ context.Context, path string) (map[string]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failed != nil {
		return nil, &Error{Op: "fetch", Path: path, Kind: ErrUnavailable, Cause: m.failed}
	}

	out := map[string]json.RawMessage{}
	for key, record := range m.data[strings.Trim(path, "/")] {
		out[key] = record
	}
	return out, nil
}

func (m *Memory) FetchOne(_ context.Context, path string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failed != nil {
		return nil, &Error{Op: "fetch", Path: path, Kind: ErrUnavailable, Cause: m.failed}
	}

	collection, key := splitPath(path)
	record, ok := m.data[collection][key]
	if !ok {
		return nil, nil
	}
	return record, nil
}

func (m *Memory) Create(_ context.Context, path string, record any) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", &Error{Op: "create", Path: path, Kind: ErrInvalidRecord, Cause: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed != nil {
		return "", &Error{Op: "create", Path: path, Kind: ErrUnavailable, Cause: m.failed}
	}

	collection := strings.Trim(path, "/")
	if m.data[collection] == nil {
		m.data[collection] = map[string]json.RawMessage{}
	}
	key := uuid.NewString()
	m.data[collection][key] = data
	m.writes++
	return key, nil
}

func (m *Memory) Update(_ context.Context, path string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed != nil {
		return &Error{Op: "update", Path: path, Kind: ErrUnavailable, Cause: m.failed}
	}

	collection, key := splitPath(path)
	existing, ok := m.data[collection][key]
	if !ok {
		return &Error{Op: "update", Path: path, Kind: ErrNotFound}
	}

	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(existing, &merged); err != nil {
		return &Error{Op: "update", Path: path, Kind: ErrInvalidRecord, Cause: err}
	}
	for name, value := range fields {
		data, err := json.Marshal(value)
		if err != nil {
			return &Error{Op: "update", Path: path, Kind: ErrInvalidRecord, Cause: err}
		}
		merged[name] = data
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return &Error{Op: "update", Path: path, Kind: ErrInvalidRecord, Cause: err}
	}
	m.data[collection][key] = data
	m.writes++
	return nil
}

func (m *Memory) Delete(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed != nil {
		return &Error{Op: "delete", Path: path, Kind: ErrUnavailable, Cause: m.failed}
	}

	collection, key := splitPath(path)
	if key == "" {
		delete(m.data, collection)
	} else {
		delete(m.data[collection], key)
	}
	m.writes++
	return nil
}
