//go:build !js

package exit

import "os"

// osExit is replaced in tests.
var osExit = os.Exit

type processExiter struct{}

func (processExiter) Exit(code int) { osExit(code) }

// New returns the Exiter for this target.
func New() Exiter { return processExiter{} }

// Supported reports whether Exit actually ends the program.
func Supported() bool { return true }
