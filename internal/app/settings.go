// Package app is the body of the demo game. It builds unchanged for native
// and browser targets and touches every platform concern: it reads launch
// options, keeps settings in the config scope, counts launches in the data
// scope and reports an exit status.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kalambet/dias/internal/config"
	"github.com/kalambet/dias/internal/storage"
)

// SettingsKey is the storage key settings are saved under.
const SettingsKey = "settings"

type Settings struct {
	Audio   AudioSettings   `toml:"audio" json:"audio"`
	Display DisplaySettings `toml:"display" json:"display"`
	Player  PlayerSettings  `toml:"player" json:"player"`
}

type AudioSettings struct {
	Volume int  `toml:"volume" json:"volume"`
	Muted  bool `toml:"muted" json:"muted"`
}

type DisplaySettings struct {
	Fullscreen bool    `toml:"fullscreen" json:"fullscreen"`
	Scale      float64 `toml:"scale" json:"scale"`
}

type PlayerSettings struct {
	Name string `toml:"name" json:"name"`
}

const (
	minVolume = 0
	maxVolume = 10
	maxScale  = 4.0
)

func Defaults() Settings {
	return Settings{
		Audio:   AudioSettings{Volume: 5},
		Display: DisplaySettings{Scale: 1.0},
		Player:  PlayerSettings{Name: "Player"},
	}
}

// Validate reports the first out-of-range value.
func (s Settings) Validate() error {
	if s.Audio.Volume < minVolume || s.Audio.Volume > maxVolume {
		return fmt.Errorf("audio.volume must be between %d and %d, got %d", minVolume, maxVolume, s.Audio.Volume)
	}
	if s.Display.Scale <= 0 || s.Display.Scale > maxScale {
		return fmt.Errorf("display.scale must be in (0, %g], got %g", maxScale, s.Display.Scale)
	}
	if s.Player.Name == "" {
		return errors.New("player.name must not be empty")
	}
	return nil
}

// LoadSettings returns the saved settings with DIAS_SETTINGS_* environment
// overrides applied. A first run, with nothing saved yet, yields Defaults.
// On the web there is no environment, so only saved values apply.
func LoadSettings(st *storage.Storage, logger *slog.Logger) (Settings, error) {
	s, err := loadStored(st)
	if err != nil {
		return Settings{}, err
	}
	applyEnvOverrides(&s, logger)
	return s, nil
}

// loadStored reads settings without environment overrides, so that values
// written back never pick up the environment.
func loadStored(st *storage.Storage) (Settings, error) {
	s := Defaults()
	if err := config.Load(st, SettingsKey, &s); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return s, nil
}

// SaveSettings validates s and persists it.
func SaveSettings(st *storage.Storage, s Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	if err := config.Save(st, SettingsKey, s); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
