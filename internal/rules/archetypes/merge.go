package archetypes

import (
	"strings"

	"github.com/abbacode/ainneve/internal/errors"
)

// RollComparator evaluates a health-roll token to a comparable value. The
// merge picks the token with the lower value; Load supplies
// rulebook.RollMax, which evaluates the maximum possible roll.
type RollComparator func(notation string) (int, error)

// dualNames maps an unordered pair of base archetypes (key sorted
// alphabetically) to its canonical dual name. The hyphen order in the value
// is fixed per pair, independent of merge argument order.
var dualNames = map[[2]string]string{
	{Scout, Warrior}:    "Warrior-Scout",
	{Arcanist, Warrior}: "Warrior-Arcanist",
	{Arcanist, Scout}:   "Arcanist-Scout",
}

// Merge combines two single archetypes into a dual archetype. Every merged
// base and mod is the floored average of the two sides; when a side lacks a
// code, the merged table's own value stands in as that side's contribution.
// The result shares no state with either input.
func Merge(a, b *Archetype, cmp RollComparator) (*Archetype, error) {
	if strings.Contains(a.Name, "-") || strings.Contains(b.Name, "-") {
		return nil, errors.FailedPrecondition("cannot create triple archetype")
	}
	if a.Name == b.Name {
		return nil, errors.FailedPreconditionf("cannot create dual of the same archetype %s", a.Name)
	}

	dual := newBase()
	for code, trait := range dual.Traits {
		trait.Base = floorDiv2(sideValue(a, code, trait.Base, false) + sideValue(b, code, trait.Base, false))
		trait.Mod = floorDiv2(sideValue(a, code, trait.Mod, true) + sideValue(b, code, trait.Mod, true))
	}

	roll, err := lowerRoll(a.HealthRoll, b.HealthRoll, cmp)
	if err != nil {
		return nil, err
	}
	dual.HealthRoll = roll

	name, ok := dualNames[pairKey(a.Name, b.Name)]
	if !ok {
		return nil, errors.Internalf("no dual name for pair %s/%s", a.Name, b.Name)
	}
	dual.Name = name
	return dual, nil
}

// sideValue returns one side's contribution for a code, falling back to the
// merged table's current value when the side has no such trait.
func sideValue(arch *Archetype, code string, fallback int, mod bool) int {
	trait, ok := arch.Traits[code]
	if !ok {
		return fallback
	}
	if mod {
		return trait.Mod
	}
	return trait.Base
}

// lowerRoll picks the health roll with the lower evaluated value, keeping
// the first argument on ties.
func lowerRoll(a, b string, cmp RollComparator) (string, error) {
	av, err := cmp(a)
	if err != nil {
		return "", errors.Wrapf(err, "evaluating health roll %q", a)
	}
	bv, err := cmp(b)
	if err != nil {
		return "", errors.Wrapf(err, "evaluating health roll %q", b)
	}
	if bv < av {
		return b, nil
	}
	return a, nil
}

// floorDiv2 halves n rounding toward negative infinity, matching integer
// floor division for negative modifier sums.
func floorDiv2(n int) int {
	if n < 0 {
		n--
	}
	return n / 2
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}
