//go:build !js

package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatTOML(t *testing.T) {
	if Format() != "toml" {
		t.Errorf("Format() = %q, want %q", Format(), "toml")
	}
}

func TestUnmarshalTOML(t *testing.T) {
	in := "foo = 12345\nbar = \"hello world\"\nbaz = \"Two\"\n"
	var got sample
	if err := Unmarshal([]byte(in), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := sample{Foo: 12345, Bar: "hello world", Baz: Two}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unmarshal mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalTOML(t *testing.T) {
	data, err := Marshal(sample{Foo: 12345, Bar: "hello world", Baz: Two})
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{`foo = 12345`, `bar = "hello world"`, `baz = "Two"`} {
		if !strings.Contains(string(data), line) {
			t.Errorf("Marshal output %q lacks %q", data, line)
		}
	}
}
