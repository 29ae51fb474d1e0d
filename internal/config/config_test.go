package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kalambet/dias/internal/platform"
	"github.com/kalambet/dias/internal/storage"
)

type Choice string

const (
	One Choice = "One"
	Two Choice = "Two"
)

type sample struct {
	Foo int    `toml:"foo" json:"foo"`
	Bar string `toml:"bar" json:"bar"`
	Baz Choice `toml:"baz" json:"baz"`
}

type nested struct {
	Name  string   `toml:"name" json:"name"`
	Tags  []string `toml:"tags" json:"tags"`
	Inner sample   `toml:"inner" json:"inner"`
}

func TestMarshalRoundTrip(t *testing.T) {
	want := nested{
		Name:  "slot",
		Tags:  []string{"a", "b"},
		Inner: sample{Foo: 12345, Bar: "hello world", Baz: Two},
	}
	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got nested
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteRead(t *testing.T) {
	want := sample{Foo: 7, Bar: "x", Baz: One}
	var buf bytes.Buffer
	if err := Write(&buf, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var got sample
	if err := Read(&buf, &got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Write/Read mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadUsesConfigScope(t *testing.T) {
	s := storage.NewMemory()
	want := sample{Foo: 12345, Bar: "hello world", Baz: Two}
	if err := Save(s, "config", want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if ok, _ := s.Exists("config"); ok {
		t.Error("config value leaked into the data scope")
	}
	if ok, _ := s.Scope(platform.ScopeConfig).Exists("config"); !ok {
		t.Error("config value missing from the config scope")
	}

	var got sample
	if err := Load(s, "config", &got); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadNotFoundPassesThrough(t *testing.T) {
	var got sample
	err := Load(storage.NewMemory(), "missing", &got)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Load err = %v, want storage.ErrNotFound", err)
	}
	if errors.Is(err, ErrDecode) {
		t.Error("missing value reported as a decode failure")
	}
}

func TestLoadCorrupt(t *testing.T) {
	s := storage.NewMemory()
	if err := s.Scope(platform.ScopeConfig).Save("config", []byte("{{{ not config")); err != nil {
		t.Fatal(err)
	}
	var got sample
	err := Load(s, "config", &got)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Load err = %v, want ErrDecode", err)
	}
	if errors.Is(err, storage.ErrNotFound) {
		t.Error("corrupt value reported as not found")
	}
}

func TestSaveInvalidKey(t *testing.T) {
	err := Save(storage.NewMemory(), "../config", sample{})
	if !errors.Is(err, storage.ErrInvalidKey) {
		t.Errorf("Save err = %v, want storage.ErrInvalidKey", err)
	}
}

func TestMarshalUnsupported(t *testing.T) {
	if _, err := Marshal(make(chan int)); !errors.Is(err, ErrEncode) {
		t.Errorf("Marshal(chan) err = %v, want ErrEncode", err)
	}
}
