// Package character defines the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/abbacode/ainneve/internal/repositories/character Repository

import (
	"context"

	"github.com/abbacode/ainneve/internal/entities"
)

// Repository defines the interface for character persistence.
// Implements a single-character-per-player pattern during chargen.
type Repository interface {
	// Create stores a new character and its player mapping
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the character ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByPlayerID retrieves the player's character
	// Returns errors.NotFound if the player has none
	GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error)

	// Update replaces an existing character
	// Returns errors.NotFound if the character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character and its player mapping
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// GetByPlayerIDInput defines the input for getting a player's character
type GetByPlayerIDInput struct {
	PlayerID string
}

// GetByPlayerIDOutput defines the output for getting a player's character
type GetByPlayerIDOutput struct {
	Character *entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}
