package client

import (
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
)

var rollStrike int

var rollCmd = &cobra.Command{
	Use:   "roll [check]",
	Short: "Roll a d20 check",
	Long: `Roll a check from the sheet and record it. Examples:

  roll perception
  roll save:will
  roll skill:religion
  roll attack:mace --strike 2
  roll spell-attack`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var resp v1alpha1.RollResponse
		done, err := call(v1alpha1.MethodRollCheck, v1alpha1.RollCheckRequest{
			CharacterID: characterID,
			Check:       args[0],
			Strike:      rollStrike,
		}, &resp)
		if err != nil || done {
			return err
		}

		printRoll(resp.Roll)
		switch resp.Natural {
		case 20:
			fmt.Printf("  Natural 20!\n")
		case 1:
			fmt.Printf("  Natural 1.\n")
		}
		return nil
	},
}

var damageCritical bool

var damageCmd = &cobra.Command{
	Use:   "damage [attack]",
	Short: "Roll an attack's damage",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var resp v1alpha1.RollResponse
		done, err := call(v1alpha1.MethodRollDamage, v1alpha1.RollDamageRequest{
			CharacterID: characterID,
			Attack:      args[0],
			Critical:    damageCritical,
		}, &resp)
		if err != nil || done {
			return err
		}
		printRoll(resp.Roll)
		return nil
	},
}

var (
	rollsLimit int
	rollsClear bool
)

var rollsCmd = &cobra.Command{
	Use:   "rolls",
	Short: "Show recent rolls, or clear them with --clear",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if rollsClear {
			var resp v1alpha1.ClearedResponse
			done, err := call(v1alpha1.MethodClearRolls, v1alpha1.CharacterRequest{CharacterID: characterID}, &resp)
			if err != nil || done {
				return err
			}
			fmt.Printf("🧹 Cleared %d rolls\n", resp.Cleared)
			return nil
		}

		var resp v1alpha1.RollsResponse
		done, err := call(v1alpha1.MethodListRolls, v1alpha1.LimitRequest{
			CharacterID: characterID,
			Limit:       rollsLimit,
		}, &resp)
		if err != nil || done {
			return err
		}

		fmt.Printf("\n🎲 Recent rolls:\n")
		for _, r := range resp.Rolls {
			fmt.Printf("  %s  %-28s %-10s %v = %d\n",
				r.RolledAt.Format("15:04:05"), r.Label, r.Expression, r.Dice, r.Total)
		}
		return nil
	},
}

func init() {
	rollCmd.Flags().IntVar(&rollStrike, "strike", 1, "Strike number for attacks (2 and 3 apply the multiple attack penalty)")
	damageCmd.Flags().BoolVar(&damageCritical, "crit", false, "Critical hit (double damage)")
	rollsCmd.Flags().IntVar(&rollsLimit, "limit", 10, "Number of rolls to show")
	rollsCmd.Flags().BoolVar(&rollsClear, "clear", false, "Clear the roll history")
}

func printRoll(r rolllog.Roll) {
	fmt.Printf("\n🎲 %s\n", r.Label)
	fmt.Printf("===================\n")
	fmt.Printf("  Expression: %s\n", r.Expression)
	fmt.Printf("  Dice: %v\n", r.Dice)
	fmt.Printf("  Total: %d\n", r.Total)
}
