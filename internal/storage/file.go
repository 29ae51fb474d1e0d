//go:build !js

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/kalambet/dias/internal/platform"
)

// fileBackend keeps one regular file per key below the scope directory.
type fileBackend struct {
	loc platform.Location
}

func newPlatformBackend(loc platform.Location) Backend {
	return &fileBackend{loc: loc}
}

var errNoScopeDir = errors.New("no directory for scope")

func (b *fileBackend) path(scope platform.Scope, key string) (string, error) {
	dir := b.loc.Dir(scope)
	if dir == "" {
		return "", fmt.Errorf("%w %s", errNoScopeDir, scope)
	}
	return filepath.Join(dir, filepath.FromSlash(key)), nil
}

// missing reports whether err means no file exists at a key's path. A key
// that runs through another key's file ("config/sub" after "config") fails
// with ENOTDIR.
func missing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func (b *fileBackend) Save(scope platform.Scope, key string, payload []byte) error {
	p, err := b.path(scope, key)
	if err != nil {
		return &WriteError{Key: key, Err: err}
	}
	if err := writeFileAtomic(p, payload, 0o600); err != nil {
		return &WriteError{Key: key, Err: err}
	}
	return nil
}

func (b *fileBackend) Load(scope platform.Scope, key string) ([]byte, error) {
	p, err := b.path(scope, key)
	if err != nil {
		return nil, &ReadError{Key: key, Err: err}
	}
	payload, err := os.ReadFile(p)
	if err != nil {
		if missing(err) {
			return nil, notFound(key)
		}
		// Directories hold other keys ("saves" for "saves/slot1").
		if info, statErr := os.Stat(p); statErr == nil && info.IsDir() {
			return nil, notFound(key)
		}
		return nil, &ReadError{Key: key, Err: err}
	}
	return payload, nil
}

func (b *fileBackend) Exists(scope platform.Scope, key string) (bool, error) {
	p, err := b.path(scope, key)
	if err != nil {
		return false, &ReadError{Key: key, Err: err}
	}
	info, err := os.Stat(p)
	if err != nil {
		if missing(err) {
			return false, nil
		}
		return false, &ReadError{Key: key, Err: err}
	}
	return info.Mode().IsRegular(), nil
}

func (b *fileBackend) Remove(scope platform.Scope, key string) error {
	p, err := b.path(scope, key)
	if err != nil {
		return &WriteError{Key: key, Err: err}
	}
	info, err := os.Lstat(p)
	if err != nil {
		if missing(err) {
			return nil
		}
		return &WriteError{Key: key, Err: err}
	}
	if info.IsDir() {
		return nil
	}
	if err := os.Remove(p); err != nil && !missing(err) {
		return &WriteError{Key: key, Err: err}
	}
	return nil
}
