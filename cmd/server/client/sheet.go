package client

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	v1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Show the computed character sheet",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return sheetCall(v1alpha1.MethodGetSheet, v1alpha1.CharacterRequest{CharacterID: characterID})
	},
}

var levelCmd = &cobra.Command{
	Use:   "level [level]",
	Short: "Set the character level (clamped to 1..20)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[0], err)
		}
		return sheetCall(v1alpha1.MethodSetLevel, v1alpha1.SetLevelRequest{
			CharacterID: characterID,
			Level:       level,
		})
	},
}

var hpCmd = &cobra.Command{
	Use:   "hp [+n|-n|n]",
	Short: "Heal, damage or set hit points",
	Long: `Adjust hit points. A signed number is applied as a delta, a bare
number sets the current value. Examples:

  hp -- -6    take 6 damage
  hp +4       heal 4
  hp 12       set current HP to 12`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid hit points %q: %w", args[0], err)
		}
		req := v1alpha1.AdjustHitPointsRequest{CharacterID: characterID}
		if strings.HasPrefix(args[0], "+") || strings.HasPrefix(args[0], "-") {
			req.Delta = n
		} else {
			req.Value = &n
		}
		return sheetCall(v1alpha1.MethodAdjustHitPoints, req)
	},
}

var (
	profileName   string
	profileGender string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Change the character name or gender",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := v1alpha1.ProfileRequest{CharacterID: characterID}
		if cmd.Flags().Changed("name") {
			req.Name = &profileName
		}
		if cmd.Flags().Changed("gender") {
			req.Gender = &profileGender
		}
		return sheetCall(v1alpha1.MethodUpdateProfile, req)
	},
}

var notesCmd = &cobra.Command{
	Use:   "notes [text]",
	Short: "Replace the character notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return sheetCall(v1alpha1.MethodSetNotes, v1alpha1.NotesRequest{
			CharacterID: characterID,
			Notes:       args[0],
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start the character over from the defaults",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return sheetCall(v1alpha1.MethodResetCharacter, v1alpha1.CharacterRequest{CharacterID: characterID})
	},
}

func init() {
	profileCmd.Flags().StringVar(&profileName, "name", "", "Character name")
	profileCmd.Flags().StringVar(&profileGender, "gender", "", "Character gender")
}

// sheetCall runs a request answered with a sheet and prints the summary
func sheetCall(method string, req any) error {
	var resp v1alpha1.SheetResponse
	done, err := call(method, req, &resp)
	if err != nil || done {
		return err
	}
	printSheet(resp.Sheet)
	return nil
}

func printSheet(s *engine.DerivedSheet) {
	if s == nil {
		return
	}

	fmt.Printf("\n📜 %s (level %d %s %s)\n", s.Profile.Name, s.Level, s.Profile.Ancestry, s.Profile.Class)
	fmt.Printf("==============================\n")
	fmt.Printf("  HP: %d/%d\n", s.HP.Current, s.HP.Max)

	if c := s.Combat; c != nil {
		fmt.Printf("  AC: %d   Perception: %+d   Speed: %d ft\n", c.ArmorClass.Value, c.Perception.Value, c.Speed)

		saves := make([]string, 0, len(c.Saves))
		for feature, stat := range c.Saves {
			saves = append(saves, fmt.Sprintf("%s %+d", feature, stat.Value))
		}
		sort.Strings(saves)
		fmt.Printf("  Saves: %s\n", strings.Join(saves, ", "))

		fmt.Printf("  Spell DC: %d   Spell attack: %+d\n", c.SpellDC, c.SpellAttack)

		if len(c.Attacks) > 0 {
			fmt.Printf("\n⚔️  Attacks:\n")
			for _, a := range c.Attacks {
				fmt.Printf("  %s %+d (%+d/%+d)  %s\n",
					a.Name, a.AttackBonus, a.MultipleAttack[0], a.MultipleAttack[1], a.Damage)
			}
		}
	}

	if len(s.Spells.Slots) > 0 {
		fmt.Printf("\n✨ Spells:\n")
		for _, slot := range s.Spells.Slots {
			fmt.Printf("  %s: %d/%d available, %d prepared\n", slot.Key, slot.Available, slot.Max, len(slot.Prepared))
			for _, p := range slot.Prepared {
				fmt.Printf("    - %s (%s)\n", p.SpellID, p.InstanceID)
			}
		}
		font := s.Spells.Font
		fmt.Printf("  Divine font (%s): %d/%d used\n", font.Choice, font.Used, font.Max)
	}
}
