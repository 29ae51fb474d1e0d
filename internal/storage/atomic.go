//go:build !js

package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Seams for tests that simulate a save interrupted before commit.
var (
	renameFile = os.Rename
	syncFile   = (*os.File).Sync
)

// stagingName names the temporary file a save writes before committing.
// It lives next to the destination so the final rename never crosses a
// filesystem boundary.
func stagingName(base string) string {
	return "." + base + "." + uuid.NewString() + ".tmp"
}

// writeFileAtomic replaces path with payload so that readers observe either
// the old content or the new content, never a prefix of it, even across a
// crash or power loss. On failure the staging file is removed and path is
// left untouched.
func writeFileAtomic(path string, payload []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp := filepath.Join(dir, stagingName(filepath.Base(path)))
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("creating staging file: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			os.Remove(tmp)
		}
	}()

	if _, err := f.Write(payload); err != nil {
		f.Close()
		return fmt.Errorf("writing staging file: %w", err)
	}
	if err := syncFile(f); err != nil {
		f.Close()
		return fmt.Errorf("syncing staging file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing staging file: %w", err)
	}
	if err := renameFile(tmp, path); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	committed = true

	// The rename is only durable once the directory entry is.
	if err := syncDir(dir); err != nil {
		return fmt.Errorf("syncing directory: %w", err)
	}
	return nil
}
