package storage

import (
	"errors"
	"fmt"

	"github.com/kalambet/dias/internal/platform"
)

var (
	// ErrNotFound is returned by Load when nothing was ever saved under a key.
	// Callers usually fall back to defaults.
	ErrNotFound = errors.New("not found")

	// ErrInvalidKey is returned, before any I/O, for keys that cannot name a
	// single entry (empty, absolute, "..", backslashes, ...).
	ErrInvalidKey = errors.New("invalid storage key")
)

// ResolutionError is returned by Open when the platform offers no usable
// storage location.
type ResolutionError = platform.ResolutionError

// ReadError reports an I/O or access fault while reading an existing entry.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %q: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a fault while writing or committing an entry. On native
// targets the previously committed value is left intact.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %q: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func notFound(key string) error {
	return fmt.Errorf("loading %q: %w", key, ErrNotFound)
}
