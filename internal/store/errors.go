package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gateway. Callers match with errors.Is.
var (
	// ErrUnavailable indicates the remote store could not be reached or
	// answered with a transport-level failure.
	ErrUnavailable = errors.New("record store unavailable")

	// ErrNotFound indicates the referenced path does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRecord indicates the record could not be serialized for
	// the store. Raised before any network call.
	ErrInvalidRecord = errors.New("record is not serializable")
)

// Error wraps a gateway failure with the operation and path it occurred on.
type Error struct {
	Op    string // "fetch", "create", "update", "delete"
	Path  string
	Kind  error // one of the sentinel errors above
	Cause error // underlying transport/decode error, may be nil
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store %s %s: %v: %v", e.Op, e.Path, e.Kind, e.Cause)
	}
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Path, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
