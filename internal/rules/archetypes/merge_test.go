package archetypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbacode/ainneve/internal/errors"
	"github.com/abbacode/ainneve/internal/rules/archetypes"
	"github.com/abbacode/ainneve/internal/rules/rulebook"
	"github.com/abbacode/ainneve/internal/rules/traits"
)

func floorDiv2(n int) int {
	if n < 0 {
		n--
	}
	return n / 2
}

func TestLoadDualArchetypes(t *testing.T) {
	pairs := []struct {
		left, right string
		want        string
	}{
		{"warrior", "scout", "Warrior-Scout"},
		{"warrior", "arcanist", "Warrior-Arcanist"},
		{"scout", "arcanist", "Arcanist-Scout"},
	}

	for _, pair := range pairs {
		a, err := archetypes.Load(pair.left)
		require.NoError(t, err)
		b, err := archetypes.Load(pair.right)
		require.NoError(t, err)

		for _, name := range []string{pair.left + "-" + pair.right, pair.right + "-" + pair.left} {
			dual, err := archetypes.Load(name)
			require.NoError(t, err, name)
			assert.Equal(t, pair.want, dual.Name, name)

			for _, code := range traits.All() {
				wantBase := floorDiv2(a.Traits[code].Base + b.Traits[code].Base)
				wantMod := floorDiv2(a.Traits[code].Mod + b.Traits[code].Mod)
				assert.Equal(t, wantBase, dual.Traits[code].Base, "%s %s base", name, code)
				assert.Equal(t, wantMod, dual.Traits[code].Mod, "%s %s mod", name, code)
			}
		}
	}
}

func TestDualSpotValues(t *testing.T) {
	dual, err := archetypes.Load("warrior-arcanist")
	require.NoError(t, err)

	assert.Equal(t, 3, dual.Traits[traits.STR].Base)
	assert.Equal(t, 2, dual.Traits[traits.PER].Base)
	assert.Equal(t, 3, dual.Traits[traits.INT].Base)
	assert.Equal(t, 2, dual.Traits[traits.DEX].Base)
	assert.Equal(t, 4, dual.Traits[traits.CHA].Base)
	assert.Equal(t, 3, dual.Traits[traits.VIT].Base)
	assert.Equal(t, 3, dual.Traits[traits.MAG].Base)
	assert.Equal(t, 1, dual.Traits[traits.PP].Base)
	assert.Equal(t, 6, dual.Traits[traits.MV].Base)
	// the arcanist stamina penalty floors toward negative infinity
	assert.Equal(t, -1, dual.Traits[traits.SP].Mod)
}

func TestDualHealthRollTakesLowerMaximum(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"warrior-scout", "1d6"},
		{"warrior-arcanist", "1d6-1"},
		{"scout-arcanist", "1d6-1"},
		{"arcanist-scout", "1d6-1"},
	}
	for _, tt := range tests {
		dual, err := archetypes.Load(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, dual.HealthRoll, tt.name)
	}
}

func TestMergeRejectsSelfDual(t *testing.T) {
	a, err := archetypes.Load("warrior")
	require.NoError(t, err)
	b, err := archetypes.Load("warrior")
	require.NoError(t, err)

	_, err = archetypes.Merge(a, b, rulebook.RollMax)
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.Contains(t, err.Error(), "same archetype")
}

func TestMergeRejectsTripleArchetype(t *testing.T) {
	dual, err := archetypes.Load("warrior-scout")
	require.NoError(t, err)
	single, err := archetypes.Load("arcanist")
	require.NoError(t, err)

	_, err = archetypes.Merge(dual, single, rulebook.RollMax)
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.Contains(t, err.Error(), "triple")

	_, err = archetypes.Merge(single, dual, rulebook.RollMax)
	assert.Error(t, err)
}

func TestMergeTieKeepsFirstArgument(t *testing.T) {
	a, err := archetypes.Load("warrior")
	require.NoError(t, err)
	b, err := archetypes.Load("scout")
	require.NoError(t, err)
	a.HealthRoll = "1d6"

	dual, err := archetypes.Merge(a, b, rulebook.RollMax)
	require.NoError(t, err)
	assert.Equal(t, "1d6", dual.HealthRoll)
}

func TestMergeResultIsIndependent(t *testing.T) {
	a, err := archetypes.Load("warrior")
	require.NoError(t, err)
	b, err := archetypes.Load("scout")
	require.NoError(t, err)

	dual, err := archetypes.Merge(a, b, rulebook.RollMax)
	require.NoError(t, err)

	dual.Traits[traits.STR].Base = 10
	assert.Equal(t, 6, a.Traits[traits.STR].Base)
	assert.Equal(t, 4, b.Traits[traits.STR].Base)
}
