package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/kalambet/dias/internal/cmdline"
	"github.com/kalambet/dias/internal/platform"
	"github.com/kalambet/dias/internal/storage"
)

// DefaultIdentity is the identity the demo binary stores its state under.
var DefaultIdentity = platform.Identity{
	Qualifier:    "com",
	Organization: "Kalambet",
	Application:  "Dias Demo",
}

const launchesKey = "launches"

// ErrBadOption marks a launch option whose value is out of range.
var ErrBadOption = errors.New("bad launch option")

// Launch holds the launch options the demo understands.
type Launch struct {
	reset      cmdline.Arg[bool]
	volume     cmdline.Arg[int]
	name       cmdline.Arg[string]
	fullscreen cmdline.Arg[bool]
	mute       cmdline.Arg[bool]
	scale      cmdline.Arg[float64]
}

// NewLaunch registers the launch options on p.
func NewLaunch(p *cmdline.Parser) Launch {
	return Launch{
		reset:      p.Flag("reset", "r"),
		volume:     p.Int("volume", "v"),
		name:       p.String("name", "n"),
		fullscreen: p.Flag("fullscreen", "f"),
		mute:       p.Flag("mute"),
		scale: cmdline.Option(p, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}, "scale"),
	}
}

// apply copies the options present in parsed onto s and reports whether
// any were present.
func (l Launch) apply(parsed *cmdline.Parsed, s *Settings) bool {
	changed := false
	if v, ok := cmdline.Get(parsed, l.volume); ok {
		s.Audio.Volume, changed = v, true
	}
	if v, ok := cmdline.Get(parsed, l.mute); ok {
		s.Audio.Muted, changed = v, true
	}
	if v, ok := cmdline.Get(parsed, l.name); ok {
		s.Player.Name, changed = v, true
	}
	if v, ok := cmdline.Get(parsed, l.fullscreen); ok {
		s.Display.Fullscreen, changed = v, true
	}
	if v, ok := cmdline.Get(parsed, l.scale); ok {
		s.Display.Scale, changed = v, true
	}
	return changed
}

// Session is the state the game starts with.
type Session struct {
	Settings Settings
	Launches int
}

// Run prepares a session: it honours --reset, merges launch options into
// the saved settings (and remembers them), then bumps the launch counter.
// Out-of-range options fail with ErrBadOption before anything is saved.
func Run(st *storage.Storage, parsed *cmdline.Parsed, l Launch, logger *slog.Logger) (Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if reset, _ := cmdline.Get(parsed, l.reset); reset {
		if err := st.Scope(platform.ScopeConfig).Remove(SettingsKey); err != nil {
			return Session{}, fmt.Errorf("resetting settings: %w", err)
		}
		if err := st.Remove(launchesKey); err != nil {
			return Session{}, fmt.Errorf("resetting launch count: %w", err)
		}
		logger.Info("saved state cleared")
	}

	stored, err := loadStored(st)
	if err != nil {
		return Session{}, err
	}
	if l.apply(parsed, &stored) {
		if err := stored.Validate(); err != nil {
			return Session{}, fmt.Errorf("%w: %w", ErrBadOption, err)
		}
		if err := SaveSettings(st, stored); err != nil {
			return Session{}, err
		}
	}

	settings := stored
	applyEnvOverrides(&settings, logger)
	if err := settings.Validate(); err != nil {
		return Session{}, fmt.Errorf("invalid settings: %w", err)
	}

	launches, err := bumpLaunches(st)
	if err != nil {
		return Session{}, err
	}
	return Session{Settings: settings, Launches: launches}, nil
}

func bumpLaunches(st *storage.Storage) (int, error) {
	n := 0
	raw, err := st.Load(launchesKey)
	switch {
	case err == nil:
		n, err = strconv.Atoi(string(raw))
		if err != nil {
			return 0, fmt.Errorf("launch count %q is corrupt: %w", raw, err)
		}
	case !errors.Is(err, storage.ErrNotFound):
		return 0, fmt.Errorf("reading launch count: %w", err)
	}
	n++
	if err := st.Save(launchesKey, []byte(strconv.Itoa(n))); err != nil {
		return 0, fmt.Errorf("saving launch count: %w", err)
	}
	return n, nil
}

// Main runs the demo for id and returns the process exit status: 0 on
// success, 2 for bad launch options, 1 for anything else. Without usable
// storage it still runs, keeping state in memory.
func Main(id platform.Identity, out io.Writer) int {
	logger := slog.Default()

	st, err := storage.Open(id, storage.WithLogger(logger))
	if err != nil {
		var resErr *storage.ResolutionError
		if !errors.As(err, &resErr) {
			logger.Error("opening storage", "error", err)
			return 1
		}
		logger.Warn("no persistent storage, progress will not be saved", "error", err)
		st = storage.NewMemory(storage.WithLogger(logger))
	}

	p := cmdline.New()
	l := NewLaunch(p)
	parsed, err := p.Parse()
	if err != nil {
		logger.Error("bad launch options", "error", err)
		return 2
	}

	sess, err := Run(st, parsed, l, logger)
	if errors.Is(err, ErrBadOption) {
		logger.Error("bad launch options", "error", err)
		return 2
	}
	if err != nil {
		logger.Error("starting session", "error", err)
		return 1
	}

	s := sess.Settings
	fmt.Fprintf(out, "Welcome, %s! Launch #%d.\n", s.Player.Name, sess.Launches)
	fmt.Fprintf(out, "volume=%d muted=%t fullscreen=%t scale=%g\n",
		s.Audio.Volume, s.Audio.Muted, s.Display.Fullscreen, s.Display.Scale)
	return 0
}
