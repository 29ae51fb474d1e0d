// Package exit ends the program with a status code where the platform
// allows it.
//
// A native process exits immediately. A browser page cannot be terminated,
// so on the web Exit logs the request and returns; callers must be prepared
// to keep running. Supported tells the two apart.
package exit

// Exiter ends the program.
type Exiter interface {
	Exit(code int)
}

// Func adapts an ordinary function to Exiter.
type Func func(code int)

func (f Func) Exit(code int) { f(code) }
