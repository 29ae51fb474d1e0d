//go:build !js

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Location is the set of per-user directories, one per Scope, that hold an
// application's durable state.
type Location struct {
	dirs [3]string
}

// Dir returns the absolute directory backing scope.
func (l Location) Dir(s Scope) string {
	if !s.Valid() {
		return ""
	}
	return l.dirs[s]
}

func (l Location) String() string {
	return l.dirs[ScopeData]
}

// baseDirs reports the user's home and the OS base directory for each scope.
// Replaced in tests.
var baseDirs = func() (home string, bases [3]string) {
	return xdg.Home, [3]string{xdg.DataHome, xdg.ConfigHome, xdg.CacheHome}
}

// Resolve maps id to its per-user directories and makes sure they exist.
// Creating a directory that already exists is not an error, so calling
// Resolve repeatedly with the same identity yields the same location.
func Resolve(id Identity, opts ...ResolveOption) (Location, error) {
	o := buildResolveOptions(opts)
	fail := func(err error) (Location, error) {
		return Location{}, &ResolutionError{Identity: id, Err: err}
	}

	if err := id.validate(); err != nil {
		return fail(err)
	}
	project := projectPath(id)
	if err := checkProject(project); err != nil {
		return fail(err)
	}

	home, bases := baseDirs()
	if home == "" {
		return fail(ErrNoHome)
	}

	var loc Location
	for _, s := range Scopes {
		if bases[s] == "" {
			return fail(fmt.Errorf("no base directory for %s", s))
		}
		loc.dirs[s] = filepath.Join(bases[s], project)
	}
	separateScopes(&loc)

	for _, s := range Scopes {
		dir := reroot(o.root, loc.dirs[s])
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fail(fmt.Errorf("creating %s directory: %w", s, err))
		}
		loc.dirs[s] = dir
	}
	return loc, nil
}

// separateScopes appends the scope name to every directory shared by more
// than one scope (data and config coincide on macOS and Windows), so no two
// scopes ever see each other's files.
func separateScopes(loc *Location) {
	shared := make(map[string]int, len(Scopes))
	for _, s := range Scopes {
		shared[loc.dirs[s]]++
	}
	var dirs [3]string
	for _, s := range Scopes {
		dirs[s] = loc.dirs[s]
		if shared[loc.dirs[s]] > 1 {
			dirs[s] = filepath.Join(loc.dirs[s], s.String())
		}
	}
	loc.dirs = dirs
}

func reroot(root, p string) string {
	if root == "" {
		return p
	}
	vol := filepath.VolumeName(p)
	rel := strings.TrimLeft(p[len(vol):], `/\`)
	return filepath.Join(root, rel)
}
