// Package webhost serves a WebAssembly build of a program together with the
// page that boots it, for trying the browser target locally.
package webhost

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed static/index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// Options configures NewHandler.
type Options struct {
	// Dir holds the .wasm modules, and optionally wasm_exec.js.
	Dir string
	// Module is the file name of the module the index page boots.
	Module string
	// WasmExec overrides where wasm_exec.js is read from. By default it is
	// taken from Dir, then from the Go installation.
	WasmExec string
	Logger   *slog.Logger
}

// NewHandler returns the dev host's routes:
//
//	GET /health          liveness probe
//	GET /                page that boots Options.Module
//	GET /wasm_exec.js    Go's JavaScript support file
//	GET /{name}.wasm     modules from Options.Dir
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Module == "" {
		return nil, errors.New("webhost: no module to serve")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	wasmExec, err := findWasmExec(opts)
	if err != nil {
		return nil, err
	}

	var page bytes.Buffer
	if err := indexTmpl.Execute(&page, struct{ Module string }{opts.Module}); err != nil {
		return nil, fmt.Errorf("rendering index page: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(opts.Logger))
	r.Use(middleware.NoCache)

	r.Get("/health", handleHealth)
	r.Get("/", handleIndex(page.Bytes()))
	r.Get("/wasm_exec.js", handleWasmExec(wasmExec))
	r.Get("/{name}.wasm", handleModule(opts.Dir))
	return r, nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleIndex(page []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}

func handleWasmExec(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		http.ServeFile(w, r, path)
	}
}

func handleModule(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name") + ".wasm"
		path := filepath.Join(dir, filepath.Base(name))
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			http.NotFound(w, r)
			return
		}
		// instantiateStreaming refuses any other content type.
		w.Header().Set("Content-Type", "application/wasm")
		http.ServeFile(w, r, path)
	}
}

// wasmExecCandidates lists where Go installations keep wasm_exec.js; it moved
// from misc/wasm to lib/wasm in Go 1.24.
func wasmExecCandidates(goroot string) []string {
	return []string{
		filepath.Join(goroot, "lib", "wasm", "wasm_exec.js"),
		filepath.Join(goroot, "misc", "wasm", "wasm_exec.js"),
	}
}

func findWasmExec(opts Options) (string, error) {
	candidates := []string{filepath.Join(opts.Dir, "wasm_exec.js")}
	if opts.WasmExec != "" {
		candidates = []string{opts.WasmExec}
	} else if goroot := runtime.GOROOT(); goroot != "" {
		candidates = append(candidates, wasmExecCandidates(goroot)...)
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			return c, nil
		}
	}
	return "", fmt.Errorf("webhost: wasm_exec.js not found (tried %v): %w", candidates, fs.ErrNotExist)
}

// RequestLogger logs one line per request at Info level.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
