package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare [rank] [spell-id]",
	Short: "Prepare a spell at a rank (0 for cantrips)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		rank, err := parseRank(args[0])
		if err != nil {
			return err
		}

		var resp v1alpha1.PrepareSpellResponse
		done, err := call(v1alpha1.MethodPrepareSpell, v1alpha1.PrepareSpellRequest{
			CharacterID: characterID,
			Rank:        rank,
			SpellID:     args[1],
		}, &resp)
		if err != nil || done {
			return err
		}

		if resp.Spell == nil {
			fmt.Printf("⚠️  Rank %d is full, %s was not prepared\n", rank, args[1])
		} else {
			fmt.Printf("✅ Prepared %s (%s)\n", resp.Spell.SpellID, resp.Spell.InstanceID)
		}
		printSheet(resp.Sheet)
		return nil
	},
}

var unprepareCmd = &cobra.Command{
	Use:   "unprepare [rank] [instance-id]",
	Short: "Free a prepared spell",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return spellInstanceCall(v1alpha1.MethodUnprepareSpell, args, "unprepared")
	},
}

var castCmd = &cobra.Command{
	Use:   "cast [rank] [instance-id]",
	Short: "Cast a prepared spell",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return spellInstanceCall(v1alpha1.MethodCastSpell, args, "cast")
	},
}

var fontCmd = &cobra.Command{
	Use:   "font",
	Short: "Spend a divine font slot",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return appliedCall(v1alpha1.MethodCastDivineFont, v1alpha1.CharacterRequest{CharacterID: characterID}, "divine font")
	},
}

var fontChoiceCmd = &cobra.Command{
	Use:       "font-choice [heal|harm]",
	Short:     "Switch the divine font between heal and harm",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(rules.FontHeal), string(rules.FontHarm)},
	RunE: func(_ *cobra.Command, args []string) error {
		return sheetCall(v1alpha1.MethodSetDivineFontChoice, v1alpha1.FontChoiceRequest{
			CharacterID: characterID,
			Choice:      rules.FontChoice(args[0]),
		})
	},
}

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Restore spell slots and the divine font",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return sheetCall(v1alpha1.MethodRest, v1alpha1.CharacterRequest{CharacterID: characterID})
	},
}

func parseRank(s string) (int, error) {
	rank, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid spell rank %q: %w", s, err)
	}
	return rank, nil
}

func spellInstanceCall(method string, args []string, verb string) error {
	rank, err := parseRank(args[0])
	if err != nil {
		return err
	}
	return appliedCall(method, v1alpha1.SpellInstanceRequest{
		CharacterID: characterID,
		Rank:        rank,
		InstanceID:  args[1],
	}, verb)
}

func appliedCall(method string, req any, what string) error {
	var resp v1alpha1.AppliedResponse
	done, err := call(method, req, &resp)
	if err != nil || done {
		return err
	}

	if resp.Applied {
		fmt.Printf("✅ %s applied\n", what)
	} else {
		fmt.Printf("⚠️  %s changed nothing\n", what)
	}
	printSheet(resp.Sheet)
	return nil
}
