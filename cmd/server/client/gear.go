package client

import (
	"fmt"

	"github.com/spf13/cobra"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	v1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

var gearCmd = &cobra.Command{
	Use:   "gear",
	Short: "List and change the inventory",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.SheetResponse
		done, err := call(v1alpha1.MethodGetSheet, v1alpha1.CharacterRequest{CharacterID: characterID}, &resp)
		if err != nil || done {
			return err
		}
		printGear(resp.State)
		return nil
	},
}

var (
	gearCatalogKey string
	gearQuantity   int
	gearEquip      bool
	gearSlot       string
	gearPotency    string
	gearStriking   string
	gearResilient  string
)

var gearAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add an inventory line",
	Long: `Add an item by name, by catalog key, or both. Examples:

  gear add --catalog mace --equip --slot weapon
  gear add "Rope (50 ft)" --qty 2
  gear add --catalog breastplate --equip --slot armor --potency +1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		req := v1alpha1.AddGearRequest{
			CharacterID: characterID,
			CatalogKey:  gearCatalogKey,
			Quantity:    gearQuantity,
			Equipped:    gearEquip,
			Slot:        entity.Slot(gearSlot),
			Runes:       runesFromFlags(),
		}
		if len(args) == 1 {
			req.Name = args[0]
		}
		if req.Name == "" && req.CatalogKey == "" {
			return fmt.Errorf("a name or --catalog is required")
		}

		var resp v1alpha1.AddGearResponse
		done, err := call(v1alpha1.MethodAddGear, req, &resp)
		if err != nil || done {
			return err
		}

		fmt.Printf("✅ Added %s (%s)\n", resp.Item.Name, resp.Item.ID)
		if len(resp.Suggestions) > 0 {
			fmt.Printf("  Not in the catalog. Did you mean: %v\n", resp.Suggestions)
		}
		printGear(resp.State)
		return nil
	},
}

var gearEquipCmd = &cobra.Command{
	Use:   "equip [item-id]",
	Short: "Equip an inventory line",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setEquipped(args[0], true)
	},
}

var gearUnequipCmd = &cobra.Command{
	Use:   "unequip [item-id]",
	Short: "Unequip an inventory line",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setEquipped(args[0], false)
	},
}

var gearRemoveCmd = &cobra.Command{
	Use:   "remove [item-id]",
	Short: "Drop an inventory line",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var resp v1alpha1.SheetResponse
		done, err := call(v1alpha1.MethodRemoveGear, v1alpha1.ItemRequest{
			CharacterID: characterID,
			ItemID:      args[0],
		}, &resp)
		if err != nil || done {
			return err
		}
		printGear(resp.State)
		return nil
	},
}

func init() {
	gearAddCmd.Flags().StringVar(&gearCatalogKey, "catalog", "", "Catalog key of the item")
	gearAddCmd.Flags().IntVar(&gearQuantity, "qty", 0, "Quantity")
	gearAddCmd.Flags().BoolVar(&gearEquip, "equip", false, "Equip the item")
	gearAddCmd.Flags().StringVar(&gearSlot, "slot", "", "Equipment slot: weapon, armor or shield")
	gearAddCmd.Flags().StringVar(&gearPotency, "potency", "", "Potency rune, e.g. +1")
	gearAddCmd.Flags().StringVar(&gearStriking, "striking", "", "Striking rune: striking, greater or major")
	gearAddCmd.Flags().StringVar(&gearResilient, "resilient", "", "Resilient rune: resilient, greater or major")

	gearCmd.AddCommand(gearAddCmd)
	gearCmd.AddCommand(gearEquipCmd)
	gearCmd.AddCommand(gearUnequipCmd)
	gearCmd.AddCommand(gearRemoveCmd)
}

func runesFromFlags() *rules.Runes {
	if gearPotency == "" && gearStriking == "" && gearResilient == "" {
		return nil
	}
	return &rules.Runes{
		Potency:   gearPotency,
		Striking:  gearStriking,
		Resilient: gearResilient,
	}
}

func setEquipped(itemID string, equipped bool) error {
	var resp v1alpha1.SheetResponse
	done, err := call(v1alpha1.MethodUpdateGear, v1alpha1.UpdateGearRequest{
		CharacterID: characterID,
		ItemID:      itemID,
		Equipped:    &equipped,
	}, &resp)
	if err != nil || done {
		return err
	}
	printGear(resp.State)
	return nil
}

func printGear(state *entity.State) {
	if state == nil {
		return
	}

	fmt.Printf("\n🎒 Gear:\n")
	if len(state.Gear) == 0 {
		fmt.Printf("  (empty)\n")
		return
	}
	for _, item := range state.Gear {
		mark := " "
		if item.Equipped {
			mark = "*"
		}
		line := fmt.Sprintf("  %s %s x%d", mark, item.Name, item.Qty())
		if item.Slot != entity.SlotNone {
			line += fmt.Sprintf(" [%s]", item.Slot)
		}
		fmt.Printf("%s  (%s)\n", line, item.ID)
	}
}
