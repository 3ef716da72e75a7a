package chargen

import (
	"github.com/abbacode/ainneve/internal/entities"
)

// CreateCharacterInput defines the input for creating a character
type CreateCharacterInput struct {
	PlayerID string
	Name     string
}

// CreateCharacterOutput defines the output for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the input for fetching a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the output for fetching a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// ApplyArchetypeInput defines the input for applying an archetype
type ApplyArchetypeInput struct {
	CharacterID string
	Archetype   string
	// Reset discards any existing archetype instead of blending into a dual
	Reset bool
}

// ApplyArchetypeOutput defines the output for applying an archetype
type ApplyArchetypeOutput struct {
	Character *entities.Character
	// Remaining is the unallocated primary trait point budget
	Remaining int
}

// SetTraitBaseInput defines the input for one allocation step
type SetTraitBaseInput struct {
	CharacterID string
	Code        string
	Base        int
}

// SetTraitBaseOutput defines the output for one allocation step
type SetTraitBaseOutput struct {
	Character *entities.Character
	Remaining int
}

// GetAllocationInput defines the input for checking the allocation state
type GetAllocationInput struct {
	CharacterID string
}

// GetAllocationOutput defines the output for checking the allocation state
type GetAllocationOutput struct {
	Remaining int
	Valid     bool
	// Message explains why the allocation is not yet valid
	Message string
}

// FinalizeTraitsInput defines the input for finalizing chargen
type FinalizeTraitsInput struct {
	CharacterID string
}

// FinalizeTraitsOutput defines the output for finalizing chargen
type FinalizeTraitsOutput struct {
	Character *entities.Character
}

// RollHealthInput defines the input for rolling the archetype health roll
type RollHealthInput struct {
	CharacterID string
}

// RollHealthOutput defines the output for rolling the archetype health roll
type RollHealthOutput struct {
	// Notation is the archetype's health roll token, e.g. "1d6+1"
	Notation string
	Rolled   int
}
