//go:build !js && !windows

package app

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// isolateHome points the XDG base directories at a temporary home.
func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home+"/data")
	t.Setenv("XDG_CONFIG_HOME", home+"/config")
	t.Setenv("XDG_CACHE_HOME", home+"/cache")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"dias-demo"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestDemoLaunches(t *testing.T) {
	isolateHome(t)

	withArgs(t, "--name", "Ann")
	var out bytes.Buffer
	if code := Main(DefaultIdentity, &out); code != 0 {
		t.Fatalf("Main = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "Welcome, Ann! Launch #1.") {
		t.Errorf("output = %q", out.String())
	}

	withArgs(t)
	out.Reset()
	if code := Main(DefaultIdentity, &out); code != 0 {
		t.Fatalf("Main = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "Welcome, Ann! Launch #2.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestDemoBadOptions(t *testing.T) {
	isolateHome(t)
	for _, args := range [][]string{{"--bogus"}, {"--volume", "99"}, {"--scale", "0"}} {
		withArgs(t, args...)
		if code := Main(DefaultIdentity, &bytes.Buffer{}); code != 2 {
			t.Errorf("Main(%v) = %d, want 2", args, code)
		}
	}
}
