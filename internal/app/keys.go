package app

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type keyType int

const (
	kString keyType = iota
	kInt
	kBool
	kFloat
)

type keySpec struct {
	key     string
	typ     keyType
	env     string
	apply   func(s *Settings, v any)
	extract func(s Settings) any
}

var specs = []keySpec{
	{
		key: "audio.volume", typ: kInt, env: "DIAS_SETTINGS_AUDIO_VOLUME",
		apply:   func(s *Settings, v any) { s.Audio.Volume = v.(int) },
		extract: func(s Settings) any { return s.Audio.Volume },
	},
	{
		key: "audio.muted", typ: kBool, env: "DIAS_SETTINGS_AUDIO_MUTED",
		apply:   func(s *Settings, v any) { s.Audio.Muted = v.(bool) },
		extract: func(s Settings) any { return s.Audio.Muted },
	},
	{
		key: "display.fullscreen", typ: kBool, env: "DIAS_SETTINGS_DISPLAY_FULLSCREEN",
		apply:   func(s *Settings, v any) { s.Display.Fullscreen = v.(bool) },
		extract: func(s Settings) any { return s.Display.Fullscreen },
	},
	{
		key: "display.scale", typ: kFloat, env: "DIAS_SETTINGS_DISPLAY_SCALE",
		apply:   func(s *Settings, v any) { s.Display.Scale = v.(float64) },
		extract: func(s Settings) any { return s.Display.Scale },
	},
	{
		key: "player.name", typ: kString, env: "DIAS_SETTINGS_PLAYER_NAME",
		apply:   func(s *Settings, v any) { s.Player.Name = v.(string) },
		extract: func(s Settings) any { return s.Player.Name },
	},
}

func lookupSpec(key string) (keySpec, bool) {
	for _, s := range specs {
		if s.key == key {
			return s, true
		}
	}
	return keySpec{}, false
}

func (s keySpec) parse(raw string) (any, error) {
	switch s.typ {
	case kInt:
		return strconv.Atoi(raw)
	case kBool:
		return strconv.ParseBool(raw)
	case kFloat:
		return strconv.ParseFloat(raw, 64)
	default:
		return raw, nil
	}
}

func (t keyType) String() string {
	switch t {
	case kInt:
		return "integer"
	case kBool:
		return "bool"
	case kFloat:
		return "float"
	default:
		return "string"
	}
}

// applyEnvOverrides lets DIAS_SETTINGS_* variables win over saved values.
// Unparseable values are logged and skipped.
func applyEnvOverrides(st *Settings, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, s := range specs {
		raw := os.Getenv(s.env)
		if raw == "" {
			continue
		}
		v, err := s.parse(raw)
		if err != nil {
			logger.Warn(fmt.Sprintf("could not parse %s from env var, using saved value", s.typ),
				"env", s.env, "value", raw, "error", err)
			continue
		}
		s.apply(st, v)
	}
}
