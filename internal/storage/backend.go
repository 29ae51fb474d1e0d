package storage

import "github.com/kalambet/dias/internal/platform"

// Backend is the per-platform half of Storage. Exactly one platform backend
// is compiled into a binary (files on native targets, localStorage on the
// web); the in-memory backend is available everywhere.
//
// Keys passed to a Backend are already validated. Load must return an error
// wrapping ErrNotFound for a key that was never saved, a *ReadError for any
// other failure, and a fresh slice the caller may keep. Save must either
// commit the whole payload or leave the previous value in place, reporting
// failures as *WriteError. Remove of a missing key succeeds.
type Backend interface {
	Save(scope platform.Scope, key string, payload []byte) error
	Load(scope platform.Scope, key string) ([]byte, error)
	Exists(scope platform.Scope, key string) (bool, error)
	Remove(scope platform.Scope, key string) error
}
