package platform

import "fmt"

// Scope selects one of the durable areas every location provides.
type Scope int

const (
	// ScopeData holds user data such as save games.
	ScopeData Scope = iota
	// ScopeConfig holds settings.
	ScopeConfig
	// ScopeCache holds data the application can regenerate.
	ScopeCache
)

// Scopes lists every scope in a stable order.
var Scopes = []Scope{ScopeData, ScopeConfig, ScopeCache}

func (s Scope) String() string {
	switch s {
	case ScopeData:
		return "data"
	case ScopeConfig:
		return "config"
	case ScopeCache:
		return "cache"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// ParseScope is the inverse of Scope.String.
func ParseScope(s string) (Scope, error) {
	for _, sc := range Scopes {
		if sc.String() == s {
			return sc, nil
		}
	}
	return 0, fmt.Errorf("unknown scope %q (want data, config or cache)", s)
}

// Valid reports whether s is one of Scopes.
func (s Scope) Valid() bool {
	return s >= ScopeData && s <= ScopeCache
}
