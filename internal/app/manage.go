package app

import (
	"fmt"
	"strconv"

	"github.com/kalambet/dias/internal/storage"
)

// KeyInfo describes a settings key for display purposes.
type KeyInfo struct {
	Key    string
	EnvVar string
	Value  string
}

// ShowAll returns every settings key with its value in s.
func ShowAll(s Settings) []KeyInfo {
	result := make([]KeyInfo, 0, len(specs))
	for _, spec := range specs {
		v := spec.extract(s)
		var text string
		if f, ok := v.(float64); ok {
			text = strconv.FormatFloat(f, 'g', -1, 64)
		} else {
			text = fmt.Sprintf("%v", v)
		}
		result = append(result, KeyInfo{Key: spec.key, EnvVar: spec.env, Value: text})
	}
	return result
}

// SetKey parses value for key, applies it to the saved settings and saves
// them again.
func SetKey(st *storage.Storage, key, value string) error {
	spec, ok := lookupSpec(key)
	if !ok {
		return fmt.Errorf("unknown settings key: %q", key)
	}
	v, err := spec.parse(value)
	if err != nil {
		return fmt.Errorf("invalid %s value for %s: %w", spec.typ, key, err)
	}

	s, err := loadStored(st)
	if err != nil {
		return err
	}
	spec.apply(&s, v)
	return SaveSettings(st, s)
}

// ValidKeys returns the list of settings key names.
func ValidKeys() []string {
	keys := make([]string, 0, len(specs))
	for _, s := range specs {
		keys = append(keys, s.key)
	}
	return keys
}
