//go:build !js

package config

import (
	"bytes"
	"io"

	"github.com/BurntSushi/toml"
)

// Format names the encoding used on this target.
func Format() string { return "toml" }

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

func encode(w io.Writer, v any) error {
	return toml.NewEncoder(w).Encode(v)
}

func decode(r io.Reader, v any) error {
	_, err := toml.NewDecoder(r).Decode(v)
	return err
}
