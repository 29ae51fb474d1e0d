package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSupported reports a concern the current target cannot provide.
	ErrNotSupported = errors.New("not supported on this platform")

	// ErrNoHome is returned on native targets when the OS reports no usable
	// home or profile directory.
	ErrNoHome = errors.New("no home directory")

	// ErrNoLocalStorage is returned on the web when the page has no usable
	// window.localStorage (missing, or disabled by browser policy).
	ErrNoLocalStorage = errors.New("localStorage is not available")
)

// ResolutionError reports that no storage location could be determined or
// accessed for an application. It is fatal to opening storage.
type ResolutionError struct {
	Identity Identity
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving storage location for %q: %v", e.Identity.Application, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
