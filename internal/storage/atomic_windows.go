//go:build windows

package storage

// Directories cannot be opened for syncing on Windows; NTFS journals the
// rename itself.
func syncDir(string) error { return nil }
