// Package archetypes implements the ainneve archetype system: the three base
// archetypes, dual-archetype blending, chargen point allocation, and the
// derivation of secondary traits from primary ones.
package archetypes

import (
	"fmt"

	"github.com/abbacode/ainneve/internal/rules/traits"
)

// Canonical archetype names
const (
	Warrior  = "Warrior"
	Scout    = "Scout"
	Arcanist = "Arcanist"
)

// ValidArchetypes are the base archetypes a character may apply
var ValidArchetypes = []string{Arcanist, Scout, Warrior}

// Archetype is a named bundle of starting trait values and a health roll
// token. Instances are constructed per request and never shared; the trait
// table is copied into the owning character's store and the instance
// discarded.
type Archetype struct {
	Name       string
	Traits     traits.Store
	HealthRoll string
}

// override holds the starting deviations of one base archetype from the
// canonical defaults. Pure data; the registry below is the only behavior.
type override struct {
	bases      map[string]int
	mods       map[string]int
	healthRoll string
}

var registry = map[string]override{
	Warrior: {
		bases:      map[string]int{traits.STR: 6, traits.DEX: 4, traits.CHA: 4, traits.VIT: 6, traits.PP: 2, traits.MV: 5},
		healthRoll: "1d6+1",
	},
	Scout: {
		bases:      map[string]int{traits.STR: 4, traits.PER: 6, traits.INT: 6, traits.DEX: 4},
		healthRoll: "1d6",
	},
	Arcanist: {
		bases:      map[string]int{traits.PER: 4, traits.INT: 6, traits.CHA: 4, traits.MAG: 6, traits.MV: 7},
		mods:       map[string]int{traits.SP: -2},
		healthRoll: "1d6-1",
	},
}

func init() {
	// Fail fast if the valid-archetype list and the registry ever drift.
	for _, name := range ValidArchetypes {
		ov, ok := registry[name]
		if !ok {
			panic(fmt.Sprintf("archetypes: %s has no registry entry", name))
		}
		for code := range ov.bases {
			if _, ok := traits.Defaults()[code]; !ok {
				panic(fmt.Sprintf("archetypes: %s overrides unknown trait %s", name, code))
			}
		}
	}
	if len(registry) != len(ValidArchetypes) {
		panic("archetypes: registry contains an unlisted archetype")
	}
}

// newBase returns an unnamed archetype holding only the canonical defaults
func newBase() *Archetype {
	return &Archetype{Traits: traits.Defaults()}
}

// newNamed builds the named base archetype from its registry entry. Callers
// go through Load; the name must already be canonical.
func newNamed(name string) (*Archetype, error) {
	ov, ok := registry[name]
	if !ok {
		return nil, errInvalidArchetype
	}

	arch := newBase()
	arch.Name = name
	arch.HealthRoll = ov.healthRoll
	for code, base := range ov.bases {
		arch.Traits[code].Base = base
	}
	for code, mod := range ov.mods {
		arch.Traits[code].Mod = mod
	}
	return arch, nil
}
