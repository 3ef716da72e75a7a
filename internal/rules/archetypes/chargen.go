package archetypes

import (
	"github.com/abbacode/ainneve/internal/errors"
	"github.com/abbacode/ainneve/internal/rules/traits"
)

// TotalPrimaryPoints is the chargen allocation budget across primary traits
const TotalPrimaryPoints = 30

// Per-trait allocation bounds. MAG alone may stay at zero.
const (
	MinPrimaryBase = 1
	MaxPrimaryBase = 10
)

// Character is the minimal contract this package needs from the host's
// character object: a settable trait store and archetype name.
type Character interface {
	ArchetypeName() string
	SetArchetypeName(name string)
	TraitStore() traits.Store
	SetTraitStore(store traits.Store)
}

// Apply sets a character's archetype and initializes its traits.
//
// Applying a second, different archetype without reset blends the two into
// the dual archetype. Applying with reset discards the current archetype and
// starts over from the named one. Either way the character's entire trait
// store is replaced; prior customization is lost.
func Apply(char Character, name string, reset bool) error {
	name = titleCase(name)
	if !isValid(name) {
		return errors.InvalidArgumentf("invalid archetype %q", name)
	}

	if existing := char.ArchetypeName(); existing != "" && !reset {
		if existing == name {
			return errors.AlreadyExistsf("character is already a %s", name)
		}
		name = existing + "-" + name
	}

	arch, err := Load(name)
	if err != nil {
		return err
	}

	char.SetTraitStore(arch.Traits)
	char.SetArchetypeName(arch.Name)
	return nil
}

// RemainingAllocation returns the number of primary trait points left for
// the player to allocate. Negative when over-allocated.
func RemainingAllocation(store traits.Store) int {
	allocated := 0
	for _, code := range traits.Primary {
		if t, ok := store[code]; ok {
			allocated += t.Base
		}
	}
	return TotalPrimaryPoints - allocated
}

// ValidatePrimary checks the proposed final primary trait allocation.
// Returns whether the allocation is valid and an error message when not.
//
// Only the 30-point total is checked here; the per-trait [1,10] bound is the
// allocation flow's job (see CheckBounds).
func ValidatePrimary(store traits.Store) (bool, string) {
	remaining := RemainingAllocation(store)
	if remaining < 0 {
		return false, "Too many trait points allocated."
	}
	if remaining > 0 {
		return false, "Not enough trait points allocated."
	}
	return true, ""
}

// CheckBounds verifies every primary trait base sits in [1,10], allowing
// MAG to be 0. Run by the allocation flow before accepting a new base value.
func CheckBounds(store traits.Store) error {
	for _, code := range traits.Primary {
		t, ok := store[code]
		if !ok {
			return errors.Internalf("trait store is missing %s", code)
		}
		min := MinPrimaryBase
		if code == traits.MAG {
			min = 0
		}
		if t.Base < min || t.Base > MaxPrimaryBase {
			return errors.InvalidArgumentf("%s must be between %d and %d", code, min, MaxPrimaryBase)
		}
	}
	return nil
}

func isValid(name string) bool {
	for _, valid := range ValidArchetypes {
		if name == valid {
			return true
		}
	}
	return false
}
