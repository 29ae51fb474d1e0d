// Package storage persists opaque byte payloads under string keys, the same
// way on every target.
//
// Native builds keep one regular file per key inside the application's
// per-user directories and replace files atomically (write to a staging file
// in the same directory, fsync, rename). Browser builds keep one
// localStorage entry per key. The backend is chosen by build constraints;
// callers only ever see Storage.
//
// There is no cache: every Load reads the medium and every Save is committed
// before it returns. There is also no locking. Concurrent saves to the same
// key are each atomic, and the last one to commit wins; callers that need
// more must serialize their own saves.
package storage

import (
	"fmt"
	"log/slog"

	"github.com/kalambet/dias/internal/platform"
)

// Storage is an open handle on an application's durable storage. It holds
// no OS resources between calls and needs no closing. A Storage is safe for
// concurrent use, subject to the last-writer-wins rule above.
type Storage struct {
	backend Backend
	scope   platform.Scope
	loc     platform.Location
	logger  *slog.Logger
}

// Option customises Open, New and NewMemory.
type Option func(*options)

type options struct {
	root   string
	logger *slog.Logger
}

// WithRoot re-roots the resolved directories under dir. Ignored on the web.
func WithRoot(dir string) Option {
	return func(o *options) { o.root = dir }
}

// WithLogger sets the logger used for debug traces. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Open resolves the storage location for id and returns a handle on its data
// scope. A *ResolutionError means the application has no persistence and no
// handle is returned.
func Open(id platform.Identity, opts ...Option) (*Storage, error) {
	o := buildOptions(opts)

	var ropts []platform.ResolveOption
	if o.root != "" {
		ropts = append(ropts, platform.WithRoot(o.root))
	}
	loc, err := platform.Resolve(id, ropts...)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("storage opened", "application", id.Application, "location", loc.String())

	return &Storage{
		backend: newPlatformBackend(loc),
		scope:   platform.ScopeData,
		loc:     loc,
		logger:  o.logger,
	}, nil
}

// New wraps a caller-supplied backend. The returned Storage has a zero
// Location.
func New(b Backend, opts ...Option) *Storage {
	o := buildOptions(opts)
	return &Storage{backend: b, scope: platform.ScopeData, logger: o.logger}
}

// Scope returns a view of the same storage on another scope. Keys in
// different scopes never collide. Scope panics if sc is not one of
// platform.Scopes.
func (s *Storage) Scope(sc platform.Scope) *Storage {
	if !sc.Valid() {
		panic(fmt.Sprintf("storage: invalid %s", sc))
	}
	view := *s
	view.scope = sc
	return &view
}

// CurrentScope reports which scope s reads and writes.
func (s *Storage) CurrentScope() platform.Scope { return s.scope }

// Location returns the resolved location backing s.
func (s *Storage) Location() platform.Location { return s.loc }

// Save durably stores payload under key, replacing any previous value.
func (s *Storage) Save(key string, payload []byte) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("saving: %w", err)
	}
	if err := s.backend.Save(s.scope, key, payload); err != nil {
		return err
	}
	s.logger.Debug("storage save", "scope", s.scope.String(), "key", key, "bytes", len(payload))
	return nil
}

// Load returns the payload last saved under key, or an error wrapping
// ErrNotFound if there is none.
func (s *Storage) Load(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, fmt.Errorf("loading: %w", err)
	}
	payload, err := s.backend.Load(s.scope, key)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("storage load", "scope", s.scope.String(), "key", key, "bytes", len(payload))
	return payload, nil
}

// Exists reports whether a value is stored under key.
func (s *Storage) Exists(key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, fmt.Errorf("checking: %w", err)
	}
	return s.backend.Exists(s.scope, key)
}

// Remove deletes the value stored under key. Removing a missing key is not
// an error.
func (s *Storage) Remove(key string) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("removing: %w", err)
	}
	if err := s.backend.Remove(s.scope, key); err != nil {
		return err
	}
	s.logger.Debug("storage remove", "scope", s.scope.String(), "key", key)
	return nil
}
