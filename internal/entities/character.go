// Package entities holds the domain entities shared by repositories and
// orchestrators.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/abbacode/ainneve/internal/rules/traits"
)

// EntityTypeCharacter is the rpg-toolkit entity type for characters
const EntityTypeCharacter = "character"

// Character is an ainneve character. The rules engine owns only the
// Archetype and Traits portions; everything else is host bookkeeping.
type Character struct {
	ID        string       `json:"id"`
	PlayerID  string       `json:"player_id"`
	Name      string       `json:"name"`
	Archetype string       `json:"archetype,omitempty"`
	Traits    traits.Store `json:"traits,omitempty"`
	Finalized bool         `json:"finalized"`
	CreatedAt int64        `json:"created_at"`
	UpdatedAt int64        `json:"updated_at"`
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// ArchetypeName returns the canonical archetype name, empty before chargen
func (c *Character) ArchetypeName() string {
	return c.Archetype
}

// SetArchetypeName records the canonical archetype name
func (c *Character) SetArchetypeName(name string) {
	c.Archetype = name
}

// TraitStore returns the live trait store
func (c *Character) TraitStore() traits.Store {
	return c.Traits
}

// SetTraitStore replaces the live trait store
func (c *Character) SetTraitStore(store traits.Store) {
	c.Traits = store
}

// Compile-time check that Character satisfies core.Entity
var _ core.Entity = (*Character)(nil)
