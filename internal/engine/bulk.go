package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// TotalBulk sums carried bulk over all gear, equipped or not. A light item
// is a tenth, so ten of them make exactly 1.
func (c *Calculator) TotalBulk(gear []sheet.GearItem) float64 {
	return sumBulk(gear, c.ResolveGear(gear)).Float()
}

// sumBulk uses the item's own bulk, then the catalog's, then zero
func sumBulk(gear []sheet.GearItem, resolutions map[string]*Resolution) rules.Bulk {
	var total rules.Bulk
	for _, item := range gear {
		var each rules.Bulk
		switch res := resolutions[item.ID]; {
		case item.Bulk != nil:
			each = *item.Bulk
		case res.Matched():
			each = res.Entry.Bulk
		}
		total += each * rules.Bulk(item.Qty())
	}
	return total
}

// ComputeEncumbrance compares total bulk against 5 + strength modifier
func ComputeEncumbrance(total rules.Bulk, strMod int, limits rules.Encumbrance, speed rules.Speed) Encumbrance {
	capacity := limits.BaseCapacity + strMod
	enc := Encumbrance{
		TotalBulk: total.Float(),
		Display:   total.String(),
		Capacity:  capacity,
	}

	enc.Encumbered = total > rules.Whole(capacity)
	enc.Overloaded = total > rules.Whole(capacity+limits.OverloadMargin)

	switch {
	case enc.Overloaded:
		enc.SpeedPenalty = -speed.OverloadedPenalty
	case enc.Encumbered:
		enc.SpeedPenalty = -speed.EncumberedPenalty
	}

	return enc
}
