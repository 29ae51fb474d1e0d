package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kalambet/dias/internal/webhost"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a WebAssembly build of the demo for local testing",
	Long: `Serve a WebAssembly build of the demo for local testing.

Build the module first:
  GOOS=js GOARCH=wasm go build -o web/demo.wasm ./cmd/dias-demo
  dias serve --dir web

Then open the printed address; launch options go in the query string.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		dir, _ := cmd.Flags().GetString("dir")
		module, _ := cmd.Flags().GetString("module")
		wasmExec, _ := cmd.Flags().GetString("wasm-exec")
		return runServer(cmd, addr, webhost.Options{
			Dir:      dir,
			Module:   module,
			WasmExec: wasmExec,
			Logger:   slog.Default(),
		})
	},
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "listen address")
	serveCmd.Flags().String("dir", ".", "directory holding the .wasm build")
	serveCmd.Flags().String("module", "demo.wasm", "module the index page boots")
	serveCmd.Flags().String("wasm-exec", "", "path to wasm_exec.js (default: --dir, then the Go installation)")
}

func runServer(cmd *cobra.Command, addr string, opts webhost.Options) error {
	handler, err := webhost.NewHandler(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	// Start server in a goroutine.
	noticeStep.print(cmd.ErrOrStderr(), "serving %s on http://%s/", opts.Module, ln.Addr())
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for signal or server error.
	select {
	case <-ctx.Done():
		noticeStep.print(cmd.ErrOrStderr(), "shutting down...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	// Graceful shutdown with timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
