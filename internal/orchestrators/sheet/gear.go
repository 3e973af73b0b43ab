package sheet

import (
	"context"
	"fmt"
	"strings"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/events"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// AddGear appends an item. The catalog key is resolved once here and stored
// on the item.
func (o *orchestrator) AddGear(ctx context.Context, input *AddGearInput) (*AddGearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" && input.CatalogKey == "" {
		return nil, errors.InvalidArgument("name or catalog key is required")
	}
	if !input.Slot.Valid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot).WithMeta("slot", string(input.Slot))
	}

	item := entity.GearItem{
		ID:         o.idGen.Generate(),
		Name:       name,
		CatalogKey: input.CatalogKey,
		Equipped:   input.Equipped,
		Quantity:   max(input.Quantity, 1),
		Slot:       input.Slot,
	}
	if input.Bulk != nil {
		b := *input.Bulk
		item.Bulk = &b
	}
	if input.Runes != nil && !input.Runes.IsZero() {
		runes := *input.Runes
		item.Runes = &runes
	}

	res := o.engine.ResolveGear([]entity.GearItem{item})[item.ID]
	item.CatalogKey = ""
	if res.Matched() {
		item.CatalogKey = res.CatalogKey
		if item.Name == "" {
			item.Name = res.Entry.Name
		}
		if item.Slot == entity.SlotNone {
			item.Slot = slotFor(res.Entry.Category)
		}
	} else if item.Name == "" {
		return nil, errors.InvalidArgumentf("unknown catalog key %q", input.CatalogKey).
			WithMeta("catalog_key", input.CatalogKey)
	}

	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		state.Gear = append(state.Gear, item)

		description := fmt.Sprintf("Picked up %s", describeItem(item))
		if item.Equipped {
			description = fmt.Sprintf("Picked up and equipped %s", describeItem(item))
		}
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceGear},
			action:      events.ActionGearAdded,
			description: description,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := &AddGearOutput{SheetOutput: o.output(state), Item: item}
	if !res.Matched() {
		out.Suggestions = res.Suggestions
	}
	return out, nil
}

// UpdateGear changes the fields set on the input
func (o *orchestrator) UpdateGear(ctx context.Context, input *UpdateGearInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item id is required")
	}
	if input.Slot != nil && !input.Slot.Valid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", *input.Slot).WithMeta("slot", string(*input.Slot))
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, errors.InvalidArgument("name cannot be empty")
	}

	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		idx, ok := state.FindGear(input.ItemID)
		if !ok {
			return nil, errors.NotFoundf("gear item %s not found", input.ItemID).WithMeta("item_id", input.ItemID)
		}

		item := &state.Gear[idx]
		wasEquipped := item.Equipped

		if input.Name != nil {
			item.Name = strings.TrimSpace(*input.Name)
			// a renamed free-text item may now match the catalog
			if item.CatalogKey == "" {
				if res := o.engine.ResolveName(item.Name); res.Matched() {
					item.CatalogKey = res.CatalogKey
				}
			}
		}
		if input.Equipped != nil {
			item.Equipped = *input.Equipped
		}
		if input.Quantity != nil {
			item.Quantity = max(*input.Quantity, 1)
		}
		if input.Slot != nil {
			item.Slot = *input.Slot
		}
		switch {
		case input.ClearBulk:
			item.Bulk = nil
		case input.Bulk != nil:
			b := *input.Bulk
			item.Bulk = &b
		}
		if input.Runes != nil {
			if input.Runes.IsZero() {
				item.Runes = nil
			} else {
				r := *input.Runes
				item.Runes = &r
			}
		}

		var description string
		switch {
		case item.Equipped && !wasEquipped:
			description = fmt.Sprintf("Equipped %s", item.Name)
		case !item.Equipped && wasEquipped:
			description = fmt.Sprintf("Unequipped %s", item.Name)
		default:
			description = fmt.Sprintf("Adjusted %s", item.Name)
		}
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceGear},
			action:      events.ActionGearUpdated,
			description: description,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}

// RemoveGear drops an item from the inventory
func (o *orchestrator) RemoveGear(ctx context.Context, input *RemoveGearInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item id is required")
	}

	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		idx, ok := state.FindGear(input.ItemID)
		if !ok {
			return nil, errors.NotFoundf("gear item %s not found", input.ItemID).WithMeta("item_id", input.ItemID)
		}

		item := state.Gear[idx]
		state.Gear = append(state.Gear[:idx:idx], state.Gear[idx+1:]...)

		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceGear},
			action:      events.ActionGearRemoved,
			description: fmt.Sprintf("Dropped %s", describeItem(item)),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}

func slotFor(category rules.Category) entity.Slot {
	switch category {
	case rules.CategoryArmor:
		return entity.SlotArmor
	case rules.CategoryShield:
		return entity.SlotShield
	case rules.CategoryWeapon:
		return entity.SlotWeapon
	default:
		return entity.SlotNone
	}
}

func describeItem(item entity.GearItem) string {
	if qty := item.Qty(); qty > 1 {
		return fmt.Sprintf("%d %s", qty, item.Name)
	}
	return item.Name
}
