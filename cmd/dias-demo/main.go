// Command dias-demo is a tiny game shell that runs unchanged as a native
// binary and as a WebAssembly module in a browser page.
//
//	go run ./cmd/dias-demo --name Ann --volume 7
//	GOOS=js GOARCH=wasm go build -o demo.wasm ./cmd/dias-demo
package main

import (
	"os"

	"github.com/kalambet/dias/internal/app"
	"github.com/kalambet/dias/internal/exit"
)

func main() {
	exit.New().Exit(app.Main(app.DefaultIdentity, os.Stdout))
}
