// Package chargen implements the character generation orchestrator: it
// drives the archetype rules over persisted characters.
package chargen

//go:generate mockgen -destination=mock/mock_service.go -package=chargenmock github.com/abbacode/ainneve/internal/orchestrators/chargen Service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/abbacode/ainneve/internal/entities"
	"github.com/abbacode/ainneve/internal/errors"
	"github.com/abbacode/ainneve/internal/pkg/clock"
	"github.com/abbacode/ainneve/internal/pkg/idgen"
	characterrepo "github.com/abbacode/ainneve/internal/repositories/character"
	"github.com/abbacode/ainneve/internal/rules/archetypes"
	"github.com/abbacode/ainneve/internal/rules/rulebook"
	"github.com/abbacode/ainneve/internal/rules/traits"
)

// Service defines the interface for character generation operations
type Service interface {
	// CreateCharacter creates an empty character for a player
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	// GetCharacter fetches a character by ID
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	// ApplyArchetype applies a single archetype, blends a dual, or resets
	ApplyArchetype(ctx context.Context, input *ApplyArchetypeInput) (*ApplyArchetypeOutput, error)
	// SetTraitBase sets one primary trait base within bounds
	SetTraitBase(ctx context.Context, input *SetTraitBaseInput) (*SetTraitBaseOutput, error)
	// GetAllocation reports the remaining point budget and its validity
	GetAllocation(ctx context.Context, input *GetAllocationInput) (*GetAllocationOutput, error)
	// FinalizeTraits validates the allocation and derives secondary traits
	FinalizeTraits(ctx context.Context, input *FinalizeTraitsInput) (*FinalizeTraitsOutput, error)
	// RollHealth rolls the archetype's health roll for the leveling layer
	RollHealth(ctx context.Context, input *RollHealthInput) (*RollHealthOutput, error)
}

// Config holds the dependencies for the chargen orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	idGen         idgen.Generator
	clock         clock.Clock
}

// New creates a new chargen orchestrator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
	}, nil
}

func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	if _, err := o.characterRepo.GetByPlayerID(ctx, characterrepo.GetByPlayerIDInput{
		PlayerID: input.PlayerID,
	}); err == nil {
		return nil, errors.AlreadyExistsf("player %s already has a character", input.PlayerID)
	} else if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to check for existing character")
	}

	now := o.clock.Now().Unix()
	char := &entities.Character{
		ID:        o.idGen.Generate(),
		PlayerID:  input.PlayerID,
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	createOutput, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.Info("Character created",
		"character_id", char.ID,
		"player_id", char.PlayerID,
	)

	return &CreateCharacterOutput{Character: createOutput.Character}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: char}, nil
}

func (o *orchestrator) ApplyArchetype(ctx context.Context, input *ApplyArchetypeInput) (*ApplyArchetypeOutput, error) {
	if input.Archetype == "" {
		return nil, errors.InvalidArgument("archetype is required")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if char.Finalized {
		return nil, errors.FailedPrecondition("character traits are already finalized")
	}

	if err := archetypes.Apply(char, input.Archetype, input.Reset); err != nil {
		return nil, err
	}

	if err := o.save(ctx, char); err != nil {
		return nil, err
	}

	slog.Info("Archetype applied",
		"character_id", char.ID,
		"archetype", char.Archetype,
		"reset", input.Reset,
	)

	return &ApplyArchetypeOutput{
		Character: char,
		Remaining: archetypes.RemainingAllocation(char.Traits),
	}, nil
}

func (o *orchestrator) SetTraitBase(ctx context.Context, input *SetTraitBaseInput) (*SetTraitBaseOutput, error) {
	if !slices.Contains(traits.Primary, input.Code) {
		return nil, errors.InvalidArgumentf("%s is not a primary trait", input.Code)
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if char.Finalized {
		return nil, errors.FailedPrecondition("character traits are already finalized")
	}
	if char.Archetype == "" {
		return nil, errors.FailedPrecondition("apply an archetype before allocating traits")
	}

	trait := char.Traits[input.Code]
	previous := trait.Base
	trait.Base = input.Base
	if err := archetypes.CheckBounds(char.Traits); err != nil {
		trait.Base = previous
		return nil, err
	}

	if err := o.save(ctx, char); err != nil {
		return nil, err
	}

	return &SetTraitBaseOutput{
		Character: char,
		Remaining: archetypes.RemainingAllocation(char.Traits),
	}, nil
}

func (o *orchestrator) GetAllocation(ctx context.Context, input *GetAllocationInput) (*GetAllocationOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if char.Archetype == "" {
		return nil, errors.FailedPrecondition("apply an archetype before allocating traits")
	}

	valid, message := archetypes.ValidatePrimary(char.Traits)
	return &GetAllocationOutput{
		Remaining: archetypes.RemainingAllocation(char.Traits),
		Valid:     valid,
		Message:   message,
	}, nil
}

func (o *orchestrator) FinalizeTraits(ctx context.Context, input *FinalizeTraitsInput) (*FinalizeTraitsOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if char.Finalized {
		return nil, errors.FailedPrecondition("character traits are already finalized")
	}
	if char.Archetype == "" {
		return nil, errors.FailedPrecondition("apply an archetype before finalizing")
	}

	if valid, message := archetypes.ValidatePrimary(char.Traits); !valid {
		return nil, errors.FailedPrecondition(message)
	}
	if err := archetypes.CheckBounds(char.Traits); err != nil {
		return nil, err
	}

	archetypes.CalculateSecondary(char.Traits)
	char.Finalized = true

	if err := o.save(ctx, char); err != nil {
		return nil, err
	}

	slog.Info("Character traits finalized",
		"character_id", char.ID,
		"archetype", char.Archetype,
	)

	return &FinalizeTraitsOutput{Character: char}, nil
}

func (o *orchestrator) RollHealth(ctx context.Context, input *RollHealthInput) (*RollHealthOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if char.Archetype == "" {
		return nil, errors.FailedPrecondition("character has no archetype")
	}

	arch, err := archetypes.Load(char.Archetype)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload archetype")
	}

	rolled, err := rulebook.Roll(arch.HealthRoll)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll health")
	}

	slog.Info("Health rolled",
		"character_id", char.ID,
		"notation", arch.HealthRoll,
		"rolled", rolled,
	)

	return &RollHealthOutput{Notation: arch.HealthRoll, Rolled: rolled}, nil
}

func (o *orchestrator) getCharacter(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	return getOutput.Character, nil
}

func (o *orchestrator) save(ctx context.Context, char *entities.Character) error {
	char.UpdatedAt = o.clock.Now().Unix()
	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char}); err != nil {
		return errors.Wrap(err, "failed to update character")
	}
	return nil
}
