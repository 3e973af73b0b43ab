package sheet

import (
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Slot is where an item is worn or wielded
type Slot string

// Slots
const (
	SlotNone   Slot = ""
	SlotWeapon Slot = "weapon"
	SlotArmor  Slot = "armor"
	SlotShield Slot = "shield"
)

// Valid reports whether s is a known slot or empty
func (s Slot) Valid() bool {
	switch s {
	case SlotNone, SlotWeapon, SlotArmor, SlotShield:
		return true
	}
	return false
}

// GearItem is one inventory line. CatalogKey is captured when the item is
// created; items from older saves may only carry Name.
type GearItem struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	CatalogKey string       `json:"catalogKey,omitempty"`
	Equipped   bool         `json:"equipped"`
	Quantity   int          `json:"quantity,omitempty"`
	Slot       Slot         `json:"slot,omitempty"`
	Bulk       *rules.Bulk  `json:"bulk,omitempty"`
	Runes      *rules.Runes `json:"runes,omitempty"`
}

// Qty returns the quantity, treating unset as one
func (g GearItem) Qty() int {
	if g.Quantity < 1 {
		return 1
	}
	return g.Quantity
}

func (g GearItem) clone() GearItem {
	if g.Bulk != nil {
		b := *g.Bulk
		g.Bulk = &b
	}
	if g.Runes != nil {
		r := *g.Runes
		g.Runes = &r
	}
	return g
}

// FindGear returns the index of the item with the given id
func (s *State) FindGear(id string) (int, bool) {
	for i, g := range s.Gear {
		if g.ID == id {
			return i, true
		}
	}
	return -1, false
}

// EquippedGear returns the equipped items in inventory order
func (s *State) EquippedGear() []GearItem {
	var out []GearItem
	for _, g := range s.Gear {
		if g.Equipped {
			out = append(out, g)
		}
	}
	return out
}
