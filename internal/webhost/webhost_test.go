package webhost

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func newTestHandler(t *testing.T) (http.Handler, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "demo.wasm"), wasmMagic, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "wasm_exec.js"), []byte("// go support"), 0o644); err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	h, err := NewHandler(Options{
		Dir:    dir,
		Module: "demo.wasm",
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	})
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	return h, &logs
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := get(h, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	if body["status"] != "ok" {
		t.Errorf("body = %v, want status=ok", body)
	}
}

func TestIndexBootsModule(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := get(h, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rr.Body.String()
	for _, want := range []string{`fetch("/demo.wasm")`, `src="/wasm_exec.js"`} {
		if !strings.Contains(body, want) {
			t.Errorf("index page lacks %s", want)
		}
	}
}

func TestModule(t *testing.T) {
	h, logs := newTestHandler(t)
	rr := get(h, "/demo.wasm")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/wasm" {
		t.Errorf("Content-Type = %q, want application/wasm", ct)
	}
	if !bytes.Equal(rr.Body.Bytes(), wasmMagic) {
		t.Errorf("body = %x", rr.Body.Bytes())
	}
	if !strings.Contains(logs.String(), "path=/demo.wasm") || !strings.Contains(logs.String(), "status=200") {
		t.Errorf("request not logged: %q", logs.String())
	}
}

func TestModuleMissing(t *testing.T) {
	h, _ := newTestHandler(t)
	if rr := get(h, "/other.wasm"); rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestWasmExec(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := get(h, "/wasm_exec.js")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Body.String() != "// go support" {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestNewHandlerErrors(t *testing.T) {
	if _, err := NewHandler(Options{Dir: t.TempDir()}); err == nil {
		t.Error("NewHandler without a module succeeded")
	}
	_, err := NewHandler(Options{Dir: t.TempDir(), Module: "demo.wasm", WasmExec: "/nonexistent/wasm_exec.js"})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}
