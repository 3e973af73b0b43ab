package client

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	v1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

var (
	featName   string
	featSource string
	featRemove bool
)

var featCmd = &cobra.Command{
	Use:   "feat [level] [type] [feat-key]",
	Short: "Select a feat for a slot, or clear the slot with --remove",
	Long: `Select or clear the feat for a (level, type) slot. Examples:

  feat 2 class healing-hands --name "Healing Hands"
  feat 2 class --remove`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(_ *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[0], err)
		}

		if featRemove {
			return sheetCall(v1alpha1.MethodRemoveFeat, v1alpha1.RemoveFeatRequest{
				CharacterID: characterID,
				LevelGained: level,
				Type:        args[1],
			})
		}
		if len(args) < 3 {
			return fmt.Errorf("a feat key is required")
		}

		name := featName
		if name == "" {
			name = args[2]
		}

		var resp v1alpha1.SelectFeatResponse
		done, err := call(v1alpha1.MethodSelectFeat, v1alpha1.SelectFeatRequest{
			CharacterID: characterID,
			Feat: entity.Feat{
				LevelGained: level,
				Type:        args[1],
				FeatKey:     args[2],
				Name:        name,
				Source:      featSource,
			},
		}, &resp)
		if err != nil || done {
			return err
		}

		if resp.Replaced {
			fmt.Printf("🔁 Replaced the level %d %s feat with %s\n", level, args[1], name)
		} else {
			fmt.Printf("✅ Selected %s\n", name)
		}
		printFeats(resp.State)
		return nil
	},
}

var (
	skillLevel  int
	skillSource string
)

var skillCmd = &cobra.Command{
	Use:   "skill [skill] [rank]",
	Short: "Set a skill proficiency rank",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		rank, err := rules.ParseRank(args[1])
		if err != nil {
			return err
		}
		return sheetCall(v1alpha1.MethodSetSkillProficiency, v1alpha1.SkillRequest{
			CharacterID: characterID,
			Skill:       args[0],
			Rank:        rank,
			LevelGained: skillLevel,
			Source:      skillSource,
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the character with a Pathbuilder JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		if !json.Valid(data) {
			return fmt.Errorf("%s is not valid JSON", args[0])
		}

		var resp v1alpha1.ImportResponse
		done, err := call(v1alpha1.MethodImportPathbuilder, v1alpha1.ImportRequest{
			CharacterID: characterID,
			Document:    data,
		}, &resp)
		if err != nil || done {
			return err
		}

		fmt.Printf("✅ Imported %s\n", args[0])
		if len(resp.Unmatched) > 0 {
			fmt.Printf("  Kept as plain gear: %v\n", resp.Unmatched)
		}
		if len(resp.DroppedSpells) > 0 {
			fmt.Printf("  Spells that did not fit a slot: %v\n", resp.DroppedSpells)
		}
		printSheet(resp.Sheet)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the character as a Pathbuilder JSON document",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.ExportResponse
		done, err := call(v1alpha1.MethodExportPathbuilder, v1alpha1.CharacterRequest{CharacterID: characterID}, &resp)
		if err != nil || done {
			return err
		}
		return printJSON(resp.Document)
	},
}

func init() {
	featCmd.Flags().StringVar(&featName, "name", "", "Display name (defaults to the key)")
	featCmd.Flags().StringVar(&featSource, "source", "", "Source book")
	featCmd.Flags().BoolVar(&featRemove, "remove", false, "Clear the slot instead")

	skillCmd.Flags().IntVar(&skillLevel, "level", 0, "Level the rank was gained at")
	skillCmd.Flags().StringVar(&skillSource, "source", "", "What granted the rank")
}

func printFeats(state *entity.State) {
	if state == nil {
		return
	}
	fmt.Printf("\n🏅 Feats:\n")
	for _, f := range state.Feats {
		fmt.Printf("  %2d %-10s %s\n", f.LevelGained, f.Type, f.Name)
	}
}
