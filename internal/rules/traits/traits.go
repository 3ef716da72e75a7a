// Package traits defines the canonical trait schema for ainneve characters:
// the closed set of trait codes, their kinds, defaults, and the live Store
// the rest of the engine computes over.
package traits

// Kind classifies how a trait behaves
type Kind string

// Trait kinds
const (
	// KindTrait is a simple scalar with base and modifier
	KindTrait Kind = "trait"
	// KindGauge has a min/max range, e.g. mana pools
	KindGauge Kind = "gauge"
	// KindCounter has a min floor and no implicit max, e.g. carry weight
	KindCounter Kind = "counter"
)

// Trait is one live trait on a character. Base is mutable by chargen,
// leveling, and equipment; Mod holds situational adjustments such as an
// archetype penalty.
type Trait struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
	Base int    `json:"base"`
	Mod  int    `json:"mod"`
	Min  *int   `json:"min,omitempty"`
	Max  *int   `json:"max,omitempty"`

	// Extra is free-form metadata, e.g. XP level boundaries or the STR
	// carry factors consumed by the encumbrance layer.
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// Actual returns base + mod, clamped into [min, max] when both are set.
func (t *Trait) Actual() int {
	actual := t.Base + t.Mod
	if t.Min != nil && actual < *t.Min {
		actual = *t.Min
	}
	if t.Max != nil && actual > *t.Max {
		actual = *t.Max
	}
	return actual
}

// SetExtraInt stores an integer metadata value
func (t *Trait) SetExtraInt(key string, value int) {
	if t.Extra == nil {
		t.Extra = make(map[string]interface{})
	}
	t.Extra[key] = value
}

// ExtraInt reads an integer metadata value. JSON round-trips land numbers as
// float64, so both representations are accepted.
func (t *Trait) ExtraInt(key string) (int, bool) {
	v, ok := t.Extra[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// Copy returns a fully independent copy of the trait
func (t *Trait) Copy() *Trait {
	clone := *t
	if t.Min != nil {
		m := *t.Min
		clone.Min = &m
	}
	if t.Max != nil {
		m := *t.Max
		clone.Max = &m
	}
	if t.Extra != nil {
		clone.Extra = make(map[string]interface{}, len(t.Extra))
		for k, v := range t.Extra {
			if s, ok := v.([]interface{}); ok {
				v = append([]interface{}(nil), s...)
			}
			clone.Extra[k] = v
		}
	}
	return &clone
}

// Store maps trait codes to live traits. It is exclusively owned by one
// character context; nothing in this package shares nested state between
// two stores.
type Store map[string]*Trait

// Copy returns a deep copy of the store
func (s Store) Copy() Store {
	clone := make(Store, len(s))
	for code, trait := range s {
		clone[code] = trait.Copy()
	}
	return clone
}

// Actual returns the actual value of the coded trait, or 0 if absent
func (s Store) Actual(code string) int {
	if t, ok := s[code]; ok {
		return t.Actual()
	}
	return 0
}
