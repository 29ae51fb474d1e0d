//go:build js && wasm

package storage

import (
	"encoding/base64"
	"fmt"
	"syscall/js"

	"github.com/kalambet/dias/internal/platform"
)

// webBackend keeps one localStorage entry per key, named "<scope>/<key>".
// localStorage only holds strings, so payloads are stored base64-encoded.
// A single synchronous setItem call is the unit of atomicity; durability is
// whatever the browser engine provides.
type webBackend struct {
	store js.Value
}

func newPlatformBackend(loc platform.Location) Backend {
	return &webBackend{store: loc.Store()}
}

// catchJS turns an exception thrown by a localStorage call (quota exceeded,
// storage disabled) into an error. syscall/js reports those as a js.Error
// panic.
func catchJS(err *error, wrap func(error) error) {
	r := recover()
	if r == nil {
		return
	}
	jsErr, ok := r.(js.Error)
	if !ok {
		panic(r)
	}
	*err = wrap(jsErr)
}

func (b *webBackend) Save(scope platform.Scope, key string, payload []byte) (err error) {
	defer catchJS(&err, func(e error) error { return &WriteError{Key: key, Err: e} })
	b.store.Call("setItem", entryKey(scope, key), base64.StdEncoding.EncodeToString(payload))
	return nil
}

func (b *webBackend) Load(scope platform.Scope, key string) (payload []byte, err error) {
	defer catchJS(&err, func(e error) error { return &ReadError{Key: key, Err: e} })
	v := b.store.Call("getItem", entryKey(scope, key))
	if v.IsNull() || v.IsUndefined() {
		return nil, notFound(key)
	}
	payload, err = base64.StdEncoding.DecodeString(v.String())
	if err != nil {
		return nil, &ReadError{Key: key, Err: fmt.Errorf("decoding stored value: %w", err)}
	}
	return payload, nil
}

func (b *webBackend) Exists(scope platform.Scope, key string) (ok bool, err error) {
	defer catchJS(&err, func(e error) error { return &ReadError{Key: key, Err: e} })
	v := b.store.Call("getItem", entryKey(scope, key))
	return !v.IsNull() && !v.IsUndefined(), nil
}

func (b *webBackend) Remove(scope platform.Scope, key string) (err error) {
	defer catchJS(&err, func(e error) error { return &WriteError{Key: key, Err: e} })
	b.store.Call("removeItem", entryKey(scope, key))
	return nil
}
