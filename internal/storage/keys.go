package storage

import (
	"fmt"
	"strings"

	"github.com/kalambet/dias/internal/platform"
)

// validateKey accepts slash-separated keys such as "config" or
// "saves/slot1". Each segment becomes a path element on native targets, so
// anything that could escape the scope directory is rejected.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	if strings.ContainsAny(key, "\\\x00") {
		return fmt.Errorf("%w: %q contains a backslash or NUL", ErrInvalidKey, key)
	}
	if strings.HasPrefix(key, "/") {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidKey, key)
	}
	for _, seg := range strings.Split(key, "/") {
		switch seg {
		case "":
			return fmt.Errorf("%w: %q has an empty segment", ErrInvalidKey, key)
		case ".", "..":
			return fmt.Errorf("%w: %q has a %q segment", ErrInvalidKey, key, seg)
		}
		if strings.Contains(seg, ":") {
			// Drive letters and NTFS alternate data streams.
			return fmt.Errorf("%w: %q contains ':'", ErrInvalidKey, key)
		}
	}
	return nil
}

// entryKey is the flat name used by backends without directories:
// "data/saves/slot1".
func entryKey(scope platform.Scope, key string) string {
	return scope.String() + "/" + key
}
