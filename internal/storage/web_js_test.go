//go:build js && wasm

package storage

import (
	"errors"
	"syscall/js"
	"testing"

	"github.com/kalambet/dias/internal/platform"
)

// fakeLocalStorage builds a JS object with the localStorage methods the
// backend uses, backed by a Go map.
func fakeLocalStorage(t *testing.T) js.Value {
	t.Helper()
	items := make(map[string]string)
	obj := js.Global().Get("Object").New()

	setItem := js.FuncOf(func(this js.Value, args []js.Value) any {
		items[args[0].String()] = args[1].String()
		return nil
	})
	getItem := js.FuncOf(func(this js.Value, args []js.Value) any {
		v, ok := items[args[0].String()]
		if !ok {
			return nil
		}
		return v
	})
	removeItem := js.FuncOf(func(this js.Value, args []js.Value) any {
		delete(items, args[0].String())
		return nil
	})
	t.Cleanup(func() {
		setItem.Release()
		getItem.Release()
		removeItem.Release()
	})

	obj.Set("setItem", setItem)
	obj.Set("getItem", getItem)
	obj.Set("removeItem", removeItem)
	return obj
}

func TestWebBackend(t *testing.T) {
	runBackendSuite(t, func(t *testing.T) *Storage {
		return New(&webBackend{store: fakeLocalStorage(t)})
	})
}

func TestWebEntryLayout(t *testing.T) {
	store := fakeLocalStorage(t)
	s := New(&webBackend{store: store})
	if err := s.Scope(platform.ScopeConfig).Save("config", []byte("hi")); err != nil {
		t.Fatal(err)
	}
	got := store.Call("getItem", "config/config")
	if got.IsNull() || got.String() != "aGk=" {
		t.Errorf(`getItem("config/config") = %v, want "aGk="`, got)
	}
}

func TestWebCorruptEntry(t *testing.T) {
	store := fakeLocalStorage(t)
	store.Call("setItem", "data/broken", "not base64 !!")
	s := New(&webBackend{store: store})

	_, err := s.Load("broken")
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("Load err = %v, want *ReadError", err)
	}
}

// throwingStore returns an object whose localStorage methods all throw, the
// way a full or disabled storage area does.
func throwingStore(name string) js.Value {
	obj := js.Global().Get("Object").New()
	throw := js.Global().Get("Function").New("k", "v", "throw new Error('"+name+"')")
	obj.Set("setItem", throw)
	obj.Set("getItem", throw)
	obj.Set("removeItem", throw)
	return obj
}

func TestWebThrowingStore(t *testing.T) {
	s := New(&webBackend{store: throwingStore("QuotaExceededError")})

	var writeErr *WriteError
	if err := s.Save("config", []byte("x")); !errors.As(err, &writeErr) {
		t.Errorf("Save err = %v, want *WriteError", err)
	} else if writeErr.Key != "config" {
		t.Errorf("WriteError.Key = %q, want config", writeErr.Key)
	}
	if err := s.Remove("config"); !errors.As(err, &writeErr) {
		t.Errorf("Remove err = %v, want *WriteError", err)
	}

	var readErr *ReadError
	_, err := s.Load("config")
	if !errors.As(err, &readErr) {
		t.Errorf("Load err = %v, want *ReadError", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("a throwing getItem must not report ErrNotFound")
	}
	if _, err := s.Exists("config"); !errors.As(err, &readErr) {
		t.Errorf("Exists err = %v, want *ReadError", err)
	}
}

func TestWebOpen(t *testing.T) {
	s, err := Open(platform.Identity{Qualifier: "com", Organization: "Foo Corp", Application: "Bar App"})
	if err != nil {
		var resErr *ResolutionError
		if !errors.As(err, &resErr) {
			t.Fatalf("Open err = %v, want *ResolutionError", err)
		}
		t.Skipf("no localStorage in this runtime: %v", err)
	}
	if err := s.Save("marker", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("marker"); err != nil {
		t.Fatal(err)
	}
}
