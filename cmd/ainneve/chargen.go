package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abbacode/ainneve/internal/entities"
	"github.com/abbacode/ainneve/internal/orchestrators/chargen"
	"github.com/abbacode/ainneve/internal/pkg/clock"
	"github.com/abbacode/ainneve/internal/pkg/idgen"
	"github.com/abbacode/ainneve/internal/redis"
	characterrepo "github.com/abbacode/ainneve/internal/repositories/character"
	"github.com/abbacode/ainneve/internal/rules/archetypes"
	"github.com/abbacode/ainneve/internal/rules/traits"
)

var (
	playerID    string
	charName    string
	characterID string
	resetArch   bool
)

var chargenCmd = &cobra.Command{
	Use:   "chargen",
	Short: "Character generation commands",
}

func newService() (chargen.Service, error) {
	client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err != nil {
		return nil, err
	}

	return chargen.New(&chargen.Config{
		CharacterRepo: characterrepo.NewRedisRepository(client),
		IDGenerator:   idgen.NewPrefixed("char"),
		Clock:         clock.New(),
	})
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new character",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		output, err := svc.CreateCharacter(context.Background(), &chargen.CreateCharacterInput{
			PlayerID: playerID,
			Name:     charName,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created character %s (%s)\n", output.Character.Name, output.Character.ID)
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <archetype>",
	Short: "Apply an archetype (a second one forms a dual archetype)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		output, err := svc.ApplyArchetype(context.Background(), &chargen.ApplyArchetypeInput{
			CharacterID: characterID,
			Archetype:   args[0],
			Reset:       resetArch,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Archetype: %s (%d points left to allocate)\n", output.Character.Archetype, output.Remaining)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <trait> <base>",
	Short: "Set a primary trait base value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid base value %q", args[1])
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		output, err := svc.SetTraitBase(context.Background(), &chargen.SetTraitBaseInput{
			CharacterID: characterID,
			Code:        args[0],
			Base:        base,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s set to %d (%d points left to allocate)\n", args[0], base, output.Remaining)
		return nil
	},
}

var allocationCmd = &cobra.Command{
	Use:   "allocation",
	Short: "Show the remaining trait point budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		output, err := svc.GetAllocation(context.Background(), &chargen.GetAllocationInput{
			CharacterID: characterID,
		})
		if err != nil {
			return err
		}
		if output.Valid {
			fmt.Println("Allocation complete.")
			return nil
		}
		fmt.Printf("%s %d points remaining.\n", output.Message, output.Remaining)
		return nil
	},
}

var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Validate the allocation and derive secondary traits",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		output, err := svc.FinalizeTraits(context.Background(), &chargen.FinalizeTraitsInput{
			CharacterID: characterID,
		})
		if err != nil {
			return err
		}
		fmt.Println("Traits finalized.")
		printSheet(output.Character)
		return nil
	},
}

var rollHealthCmd = &cobra.Command{
	Use:   "roll-health",
	Short: "Roll the archetype's health roll",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		output, err := svc.RollHealth(context.Background(), &chargen.RollHealthInput{
			CharacterID: characterID,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Rolled %s: %d\n", output.Notation, output.Rolled)
		return nil
	},
}

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Show the character sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		output, err := svc.GetCharacter(context.Background(), &chargen.GetCharacterInput{
			CharacterID: characterID,
		})
		if err != nil {
			return err
		}
		printSheet(output.Character)
		return nil
	},
}

func printSheet(char *entities.Character) {
	fmt.Printf("%s", char.Name)
	if char.Archetype != "" {
		fmt.Printf(" (%s)", char.Archetype)
	}
	fmt.Println()
	if char.Traits == nil {
		fmt.Println("No archetype applied yet.")
		return
	}

	groups := []struct {
		label string
		codes []string
	}{
		{"Primary", traits.Primary},
		{"Secondary", traits.Secondary},
		{"Saves", traits.Saves},
		{"Combat", traits.Combat},
		{"Other", traits.Other},
	}
	for _, group := range groups {
		fmt.Printf("%s:\n", group.label)
		for _, code := range group.codes {
			trait := char.Traits[code]
			line := fmt.Sprintf("  %-16s %3d", trait.Name, trait.Actual())
			if trait.Max != nil {
				line += fmt.Sprintf(" / %d", *trait.Max)
			}
			fmt.Println(line)
		}
	}
	if !char.Finalized {
		fmt.Printf("Unallocated points: %d\n", archetypes.RemainingAllocation(char.Traits))
	}
}

func init() {
	chargenCmd.PersistentFlags().StringVar(&characterID, "character", "", "character ID")

	createCmd.Flags().StringVar(&playerID, "player", "", "player ID")
	createCmd.Flags().StringVar(&charName, "name", "", "character name")
	applyCmd.Flags().BoolVar(&resetArch, "reset", false, "discard the current archetype first")

	chargenCmd.AddCommand(createCmd)
	chargenCmd.AddCommand(applyCmd)
	chargenCmd.AddCommand(setCmd)
	chargenCmd.AddCommand(allocationCmd)
	chargenCmd.AddCommand(finalizeCmd)
	chargenCmd.AddCommand(rollHealthCmd)
	chargenCmd.AddCommand(sheetCmd)
}
