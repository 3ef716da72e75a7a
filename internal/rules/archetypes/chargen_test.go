package archetypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbacode/ainneve/internal/errors"
	"github.com/abbacode/ainneve/internal/rules/archetypes"
	"github.com/abbacode/ainneve/internal/rules/traits"
)

// fakeCharacter is a minimal host character for chargen tests
type fakeCharacter struct {
	archetype string
	store     traits.Store
}

func (c *fakeCharacter) ArchetypeName() string            { return c.archetype }
func (c *fakeCharacter) SetArchetypeName(name string)     { c.archetype = name }
func (c *fakeCharacter) TraitStore() traits.Store         { return c.store }
func (c *fakeCharacter) SetTraitStore(store traits.Store) { c.store = store }

func TestApplySingleArchetype(t *testing.T) {
	char := &fakeCharacter{}

	require.NoError(t, archetypes.Apply(char, "warrior", false))
	assert.Equal(t, "Warrior", char.archetype)
	assert.Equal(t, 6, char.store[traits.STR].Base)
	assert.Equal(t, 6, char.store[traits.VIT].Base)
	assert.Equal(t, 5, char.store[traits.MV].Base)
	assert.Equal(t, 2, char.store[traits.PP].Base)
}

func TestApplyUnknownArchetype(t *testing.T) {
	char := &fakeCharacter{}
	err := archetypes.Apply(char, "wizard", false)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Empty(t, char.archetype)
	assert.Nil(t, char.store)
}

func TestApplySameArchetypeTwice(t *testing.T) {
	char := &fakeCharacter{}
	require.NoError(t, archetypes.Apply(char, "warrior", false))

	err := archetypes.Apply(char, "Warrior", false)
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))
	assert.Equal(t, "Warrior", char.archetype)
}

func TestApplySecondArchetypeFormsDual(t *testing.T) {
	char := &fakeCharacter{}
	require.NoError(t, archetypes.Apply(char, "warrior", false))
	require.NoError(t, archetypes.Apply(char, "scout", false))

	assert.Equal(t, "Warrior-Scout", char.archetype)
	assert.Equal(t, 5, char.store[traits.STR].Base)
	assert.Equal(t, 3, char.store[traits.PER].Base)
}

func TestApplyResetReplacesArchetype(t *testing.T) {
	char := &fakeCharacter{}
	require.NoError(t, archetypes.Apply(char, "warrior", false))
	char.store[traits.STR].Base = 9

	require.NoError(t, archetypes.Apply(char, "arcanist", true))
	assert.Equal(t, "Arcanist", char.archetype)
	// the store is replaced wholesale; prior customization is gone
	assert.Equal(t, 1, char.store[traits.STR].Base)
	assert.Equal(t, 6, char.store[traits.MAG].Base)
}

func TestApplyCannotStackBeyondDual(t *testing.T) {
	char := &fakeCharacter{}
	require.NoError(t, archetypes.Apply(char, "warrior", false))
	require.NoError(t, archetypes.Apply(char, "scout", false))

	err := archetypes.Apply(char, "arcanist", false)
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))
}

func TestRemainingAllocation(t *testing.T) {
	store := traits.Defaults()
	// defaults: six primaries at 1, MAG at 0
	assert.Equal(t, 24, archetypes.RemainingAllocation(store))

	store[traits.STR].Base = 10
	store[traits.VIT].Base = 10
	store[traits.DEX].Base = 10
	assert.Equal(t, -3, archetypes.RemainingAllocation(store))
}

func TestValidatePrimary(t *testing.T) {
	store := traits.Defaults()

	valid, msg := archetypes.ValidatePrimary(store)
	assert.False(t, valid)
	assert.Equal(t, "Not enough trait points allocated.", msg)

	store[traits.STR].Base = 10
	store[traits.VIT].Base = 10
	store[traits.DEX].Base = 6
	// 10+1+1+6+10+1+0 = 29, one short
	valid, _ = archetypes.ValidatePrimary(store)
	assert.False(t, valid)

	store[traits.MAG].Base = 1
	valid, msg = archetypes.ValidatePrimary(store)
	assert.True(t, valid)
	assert.Empty(t, msg)

	store[traits.MAG].Base = 5
	valid, msg = archetypes.ValidatePrimary(store)
	assert.False(t, valid)
	assert.Equal(t, "Too many trait points allocated.", msg)
}

func TestCheckBounds(t *testing.T) {
	store := traits.Defaults()
	require.NoError(t, archetypes.CheckBounds(store))

	store[traits.STR].Base = 11
	err := archetypes.CheckBounds(store)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	store[traits.STR].Base = 0
	assert.Error(t, archetypes.CheckBounds(store))

	// MAG alone may be zero
	store[traits.STR].Base = 1
	store[traits.MAG].Base = 0
	assert.NoError(t, archetypes.CheckBounds(store))
}

func TestCalculateSecondary(t *testing.T) {
	store := traits.Defaults()
	store[traits.STR].Base = 9
	store[traits.PER].Base = 2
	store[traits.INT].Base = 1
	store[traits.DEX].Base = 5
	store[traits.CHA].Base = 4
	store[traits.VIT].Base = 9
	store[traits.MAG].Base = 0

	archetypes.CalculateSecondary(store)

	assert.Equal(t, 9, store[traits.HP].Base)
	assert.Equal(t, 9, store[traits.SP].Base)
	assert.Equal(t, 9, store[traits.FORT].Base)
	assert.Equal(t, 5, store[traits.REFL].Base)
	assert.Equal(t, 1, store[traits.WILL].Base)
	assert.Equal(t, 9, store[traits.ATKM].Base)
	assert.Equal(t, 2, store[traits.ATKR].Base)
	assert.Equal(t, 5, store[traits.ATKU].Base)
	assert.Equal(t, 5, store[traits.DEF].Base)
	assert.Equal(t, 0, *store[traits.BM].Max)
	assert.Equal(t, 0, *store[traits.WM].Max)
	require.NotNil(t, store[traits.ENC].Max)
	assert.Equal(t, 180, *store[traits.ENC].Max)

	carry, _ := store[traits.STR].ExtraInt("carry_factor")
	lift, _ := store[traits.STR].ExtraInt("lift_factor")
	push, _ := store[traits.STR].ExtraInt("push_factor")
	assert.Equal(t, 10, carry)
	assert.Equal(t, 20, lift)
	assert.Equal(t, 40, push)
}

func TestCalculateSecondaryOpensManaForCasters(t *testing.T) {
	store := traits.Defaults()
	store[traits.MAG].Base = 6

	archetypes.CalculateSecondary(store)
	assert.Equal(t, 10, *store[traits.BM].Max)
	assert.Equal(t, 10, *store[traits.WM].Max)
}

func TestCalculateSecondaryIsIdempotent(t *testing.T) {
	store := traits.Defaults()
	store[traits.STR].Base = 9
	store[traits.VIT].Base = 9
	store[traits.DEX].Base = 5

	archetypes.CalculateSecondary(store)
	first := store.Copy()
	archetypes.CalculateSecondary(store)

	for _, code := range traits.All() {
		assert.Equal(t, first[code].Base, store[code].Base, code)
		assert.Equal(t, first[code].Mod, store[code].Mod, code)
		if first[code].Max != nil {
			assert.Equal(t, *first[code].Max, *store[code].Max, code)
		}
	}
}
