// Package config turns application state into bytes and back, and persists
// it through storage in the config scope.
//
// The wire format is fixed per target at compile time: TOML on native
// builds, JSON in the browser. Values round-trip on the target that wrote
// them; files are not meant to move between targets.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/kalambet/dias/internal/platform"
	"github.com/kalambet/dias/internal/storage"
)

var (
	// ErrEncode is returned when a value cannot be represented in Format().
	ErrEncode = errors.New("encoding config")

	// ErrDecode is returned when stored bytes do not parse into the target
	// value.
	ErrDecode = errors.New("decoding config")
)

// Marshal encodes v in the target's config format.
func Marshal(v any) ([]byte, error) {
	data, err := marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}

// Unmarshal decodes data into v, which must be a non-nil pointer.
func Unmarshal(data []byte, v any) error {
	if err := unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// Write encodes v to w.
func Write(w io.Writer, v any) error {
	if err := encode(w, v); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// Read decodes a single value from r into v.
func Read(r io.Reader, v any) error {
	if err := decode(r, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// Save encodes v and stores it under key in the config scope of s.
func Save(s *storage.Storage, key string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return s.Scope(platform.ScopeConfig).Save(key, data)
}

// Load reads key from the config scope of s and decodes it into v. Storage
// errors are returned as is, so errors.Is(err, storage.ErrNotFound) tells a
// first run apart from a broken file.
func Load(s *storage.Storage, key string, v any) error {
	data, err := s.Scope(platform.ScopeConfig).Load(key)
	if err != nil {
		return err
	}
	if err := Unmarshal(data, v); err != nil {
		return fmt.Errorf("loading %q: %w", key, err)
	}
	return nil
}
