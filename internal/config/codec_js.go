//go:build js && wasm

package config

import (
	"encoding/json"
	"io"
)

// Format names the encoding used on this target.
func Format() string { return "json" }

func marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}
