package platform

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Identity names an application for the purpose of locating its durable
// storage. Application is required; Qualifier (reverse domain, e.g. "com")
// and Organization may be empty.
//
// An identity must stay stable across releases, otherwise previously saved
// data is no longer found.
type Identity struct {
	Qualifier    string
	Organization string
	Application  string
}

var errNoApplication = errors.New("application name is required")

// Every part becomes a path element on some target, so none may carry a
// separator or name a relative directory.
func (id Identity) validate() error {
	if strings.TrimSpace(id.Application) == "" {
		return errNoApplication
	}
	for _, part := range []struct{ name, value string }{
		{"qualifier", id.Qualifier},
		{"organization", id.Organization},
		{"application", id.Application},
	} {
		if strings.ContainsAny(part.value, "/\\:\x00") {
			return fmt.Errorf("%s name %q contains a path separator", part.name, part.value)
		}
		if v := strings.TrimSpace(part.value); v == "." || v == ".." {
			return fmt.Errorf("%s name %q is not a directory name", part.name, part.value)
		}
	}
	return nil
}

// checkProject rejects a sanitized project path that still names the base
// directory or its parent, e.g. ". ." squashed to "..".
func checkProject(project string) error {
	if project == "" {
		return errors.New("application name is empty once sanitized")
	}
	for _, seg := range strings.FieldsFunc(project, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == "." || seg == ".." {
			return fmt.Errorf("project directory %q is not a directory name", project)
		}
	}
	return nil
}

// squash lowercases s and drops all whitespace: "Bar App" -> "barapp".
func squash(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// dashed trims s and replaces runs of whitespace with a single '-':
// "Foo Corp" -> "Foo-Corp".
func dashed(s string) string {
	return strings.Join(strings.Fields(s), "-")
}
