//go:build js && wasm

package exit

import "log/slog"

type pageExiter struct{}

func (pageExiter) Exit(code int) {
	slog.Warn("exit requested; a page cannot be terminated", "code", code)
}

// New returns the Exiter for this target.
func New() Exiter { return pageExiter{} }

// Supported reports whether Exit actually ends the program.
func Supported() bool { return false }
