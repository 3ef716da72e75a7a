package archetypes

import (
	"github.com/abbacode/ainneve/internal/rules/traits"
)

// Encumbrance factors attached to STR for the equipment layer
const (
	CarryFactor = 10
	LiftFactor  = 20
	PushFactor  = 40
)

// CalculateSecondary populates every derived trait from the finalized
// primary trait values. Callers validate the allocation first; no bounds are
// checked here. Assignments overwrite, so repeated calls with unchanged
// primaries are idempotent.
func CalculateSecondary(store traits.Store) {
	// secondary traits
	store[traits.HP].Base = store.Actual(traits.VIT)
	store[traits.SP].Base = store.Actual(traits.VIT)
	// save rolls
	store[traits.FORT].Base = store.Actual(traits.VIT)
	store[traits.REFL].Base = store.Actual(traits.DEX)
	store[traits.WILL].Base = store.Actual(traits.INT)
	// combat
	store[traits.ATKM].Base = store.Actual(traits.STR)
	store[traits.ATKR].Base = store.Actual(traits.PER)
	store[traits.ATKU].Base = store.Actual(traits.DEX)
	store[traits.DEF].Base = store.Actual(traits.DEX)
	// mana pools open only for magic users
	manaMax := 0
	if store[traits.MAG].Base > 0 {
		manaMax = 10
	}
	*store[traits.BM].Max = manaMax
	*store[traits.WM].Max = manaMax
	// encumbrance
	str := store[traits.STR]
	str.SetExtraInt("carry_factor", CarryFactor)
	str.SetExtraInt("lift_factor", LiftFactor)
	str.SetExtraInt("push_factor", PushFactor)
	max := LiftFactor * str.Actual()
	store[traits.ENC].Max = &max
}
