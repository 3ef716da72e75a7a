package archetypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbacode/ainneve/internal/rules/archetypes"
	"github.com/abbacode/ainneve/internal/rules/traits"
)

func TestLoadWarrior(t *testing.T) {
	arch, err := archetypes.Load("warrior")
	require.NoError(t, err)

	assert.Equal(t, "Warrior", arch.Name)
	assert.Equal(t, "1d6+1", arch.HealthRoll)

	assert.Equal(t, 6, arch.Traits[traits.STR].Base)
	assert.Equal(t, 1, arch.Traits[traits.PER].Base)
	assert.Equal(t, 1, arch.Traits[traits.INT].Base)
	assert.Equal(t, 4, arch.Traits[traits.DEX].Base)
	assert.Equal(t, 4, arch.Traits[traits.CHA].Base)
	assert.Equal(t, 6, arch.Traits[traits.VIT].Base)
	assert.Equal(t, 0, arch.Traits[traits.MAG].Base)
	assert.Equal(t, 2, arch.Traits[traits.PP].Base)
	assert.Equal(t, 5, arch.Traits[traits.MV].Base)
}

func TestLoadScout(t *testing.T) {
	arch, err := archetypes.Load("SCOUT")
	require.NoError(t, err)

	assert.Equal(t, "Scout", arch.Name)
	assert.Equal(t, "1d6", arch.HealthRoll)

	assert.Equal(t, 4, arch.Traits[traits.STR].Base)
	assert.Equal(t, 6, arch.Traits[traits.PER].Base)
	assert.Equal(t, 6, arch.Traits[traits.INT].Base)
	assert.Equal(t, 4, arch.Traits[traits.DEX].Base)
	assert.Equal(t, 1, arch.Traits[traits.CHA].Base)
	assert.Equal(t, 1, arch.Traits[traits.VIT].Base)
	assert.Equal(t, 0, arch.Traits[traits.MAG].Base)
	assert.Equal(t, traits.DefaultMV, arch.Traits[traits.MV].Base)
}

func TestLoadArcanist(t *testing.T) {
	arch, err := archetypes.Load("Arcanist")
	require.NoError(t, err)

	assert.Equal(t, "Arcanist", arch.Name)
	assert.Equal(t, "1d6-1", arch.HealthRoll)

	assert.Equal(t, 1, arch.Traits[traits.STR].Base)
	assert.Equal(t, 4, arch.Traits[traits.PER].Base)
	assert.Equal(t, 6, arch.Traits[traits.INT].Base)
	assert.Equal(t, 1, arch.Traits[traits.DEX].Base)
	assert.Equal(t, 4, arch.Traits[traits.CHA].Base)
	assert.Equal(t, 1, arch.Traits[traits.VIT].Base)
	assert.Equal(t, 6, arch.Traits[traits.MAG].Base)
	assert.Equal(t, -2, arch.Traits[traits.SP].Mod)
	assert.Equal(t, 7, arch.Traits[traits.MV].Base)
}

func TestLoadUnknownArchetype(t *testing.T) {
	for _, name := range []string{"wizard", "warrior-wizard", ""} {
		_, err := archetypes.Load(name)
		assert.Error(t, err, name)
	}
}

func TestLoadedInstancesShareNothing(t *testing.T) {
	first, err := archetypes.Load("warrior")
	require.NoError(t, err)
	second, err := archetypes.Load("warrior")
	require.NoError(t, err)

	first.Traits[traits.STR].Base = 10
	*first.Traits[traits.BM].Max = 99

	assert.Equal(t, 6, second.Traits[traits.STR].Base)
	assert.Equal(t, 0, *second.Traits[traits.BM].Max)
}

func TestLoadedTableIsComplete(t *testing.T) {
	arch, err := archetypes.Load("scout")
	require.NoError(t, err)

	for _, code := range traits.All() {
		assert.Contains(t, arch.Traits, code)
	}
}
