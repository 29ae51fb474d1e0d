// Package platform resolves where an application keeps its durable state.
//
// On native targets a Location is a set of per-user directories following
// the OS conventions (XDG on Unix, Known Folders on Windows, ~/Library on
// macOS). On the web it is a handle to the page's localStorage, scoped by
// the browser's same-origin policy. Which one is compiled in is decided by
// build constraints, never at run time.
package platform

// ResolveOption customises Resolve.
type ResolveOption func(*resolveOptions)

type resolveOptions struct {
	root string
}

// WithRoot re-roots every resolved directory under dir, so that
// "/home/u/.local/share/app" becomes "<dir>/home/u/.local/share/app".
// It is meant for tests and portable installs and is ignored on the web.
func WithRoot(dir string) ResolveOption {
	return func(o *resolveOptions) { o.root = dir }
}

func buildResolveOptions(opts []ResolveOption) resolveOptions {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
