package app

import (
	"errors"
	"testing"

	"github.com/kalambet/dias/internal/cmdline"
	"github.com/kalambet/dias/internal/platform"
	"github.com/kalambet/dias/internal/storage"
)

func runWith(t *testing.T, st *storage.Storage, args ...string) (Session, error) {
	t.Helper()
	p := cmdline.New()
	l := NewLaunch(p)
	parsed, err := p.ParseArgs(args)
	if err != nil {
		t.Fatalf("ParseArgs(%v): %v", args, err)
	}
	return Run(st, parsed, l, nil)
}

func TestRunCountsLaunches(t *testing.T) {
	st := storage.NewMemory()
	for want := 1; want <= 3; want++ {
		sess, err := runWith(t, st)
		if err != nil {
			t.Fatal(err)
		}
		if sess.Launches != want {
			t.Errorf("Launches = %d, want %d", sess.Launches, want)
		}
	}
}

func TestRunRemembersOptions(t *testing.T) {
	st := storage.NewMemory()
	if _, err := runWith(t, st, "--volume", "7", "-n", "Ann", "-f", "--scale=2"); err != nil {
		t.Fatal(err)
	}
	sess, err := runWith(t, st)
	if err != nil {
		t.Fatal(err)
	}
	s := sess.Settings
	if s.Audio.Volume != 7 || s.Player.Name != "Ann" || !s.Display.Fullscreen || s.Display.Scale != 2 {
		t.Errorf("settings after relaunch = %+v", s)
	}
}

func TestRunReset(t *testing.T) {
	st := storage.NewMemory()
	if _, err := runWith(t, st, "--mute"); err != nil {
		t.Fatal(err)
	}
	sess, err := runWith(t, st, "-r")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Launches != 1 {
		t.Errorf("Launches after reset = %d, want 1", sess.Launches)
	}
	if sess.Settings.Audio.Muted {
		t.Error("mute survived reset")
	}
}

func TestRunRejectsInvalidOption(t *testing.T) {
	st := storage.NewMemory()
	if _, err := runWith(t, st, "--volume", "42"); !errors.Is(err, ErrBadOption) {
		t.Fatalf("Run(--volume 42) err = %v, want ErrBadOption", err)
	}
	if ok, _ := st.Scope(platform.ScopeConfig).Exists(SettingsKey); ok {
		t.Error("invalid option was persisted")
	}
}

func TestRunCorruptCounter(t *testing.T) {
	st := storage.NewMemory()
	if err := st.Save(launchesKey, []byte("many")); err != nil {
		t.Fatal(err)
	}
	_, err := runWith(t, st)
	if err == nil {
		t.Fatal("Run accepted a corrupt launch counter")
	}
	if errors.Is(err, ErrBadOption) {
		t.Errorf("corrupt counter reported as a bad option: %v", err)
	}
}
