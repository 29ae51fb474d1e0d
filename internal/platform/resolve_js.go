//go:build js && wasm

package platform

import (
	"fmt"
	"syscall/js"
)

// Location is a handle to the page's localStorage. Every scope lives in the
// same storage object; callers separate them by key prefix.
type Location struct {
	store js.Value
}

// Store returns the underlying window.localStorage object.
func (l Location) Store() js.Value { return l.store }

// Dir returns the key prefix used for scope, e.g. "data/".
func (l Location) Dir(s Scope) string {
	if !s.Valid() {
		return ""
	}
	return s.String() + "/"
}

func (l Location) String() string { return "localStorage" }

// Resolve returns the page's localStorage. There is nothing to create and
// nothing keyed by id beyond validation: the browser already scopes storage
// to the page's origin.
func Resolve(id Identity, opts ...ResolveOption) (loc Location, err error) {
	if err := id.validate(); err != nil {
		return Location{}, &ResolutionError{Identity: id, Err: err}
	}

	// Reading window.localStorage throws a SecurityError when storage is
	// disabled. Property reads through js.Value.Get are not recoverable, so go
	// through Reflect.get, whose Call surfaces exceptions as a panic.
	defer func() {
		if r := recover(); r != nil {
			jsErr, ok := r.(js.Error)
			if !ok {
				panic(r)
			}
			loc, err = Location{}, &ResolutionError{Identity: id, Err: fmt.Errorf("%w: %v", ErrNoLocalStorage, jsErr)}
		}
	}()

	window := js.Global().Get("window")
	if window.IsUndefined() || window.IsNull() {
		return Location{}, &ResolutionError{Identity: id, Err: fmt.Errorf("%w: no window", ErrNoLocalStorage)}
	}
	store := js.Global().Get("Reflect").Call("get", window, "localStorage")
	if store.IsUndefined() || store.IsNull() {
		return Location{}, &ResolutionError{Identity: id, Err: ErrNoLocalStorage}
	}
	return Location{store: store}, nil
}
