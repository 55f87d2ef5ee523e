// Package store provides gateway access to the remote record store.
// It is the only package that talks to the store; all other components
// receive a Store and stay independent of transport and auth concerns.
package store

import (
	"context"
	"encoding/json"
	"strings"
)

// Well-known top-level paths in the record tree.
const (
	ApplicantsPath = "users"
	CompaniesPath  = "companies"
	JobsPath       = "jobs"
)

// Store is the uniform interface to the path-addressed record tree.
// Paths are /-delimited strings, e.g. "users" or "companies/<key>".
type Store interface {
	// FetchAll returns every child record under path, keyed by the
	// store-assigned child key. An existing path with no children yields
	// an empty map, not an error.
	FetchAll(ctx context.Context, path string) (map[string]json.RawMessage, error)

	// FetchOne returns the record at path, or (nil, nil) when absent.
	FetchOne(ctx context.Context, path string) (json.RawMessage, error)

	// Create appends record as a new child of path and returns the
	// store-generated key.
	Create(ctx context.Context, path string, record any) (string, error)

	// Update merges fields into the record at path. Fails with
	// ErrNotFound when the path does not exist.
	Update(ctx context.Context, path string, fields map[string]any) error

	// Delete removes the subtree at path. Deleting an absent path is
	// not an error.
	Delete(ctx context.Context, path string) error
}

// ChildPath joins a collection path and a child key.
func ChildPath(parts ...string) string {
	return strings.Join(parts, "/")
}
