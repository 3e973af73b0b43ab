package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const maxSuggestions = 3

// ResolveName matches free text against the catalog, suggesting near keys
// when nothing matches
func (c *Calculator) ResolveName(name string) *Resolution {
	key := rules.NormalizeName(name)
	res := &Resolution{ByName: true}
	// "Religious Symbol (Wooden)" normalizes to "religious-symbol--wooden-"
	for _, candidate := range []string{key, collapseDashes(key)} {
		if entry, ok := c.catalog.Lookup(candidate); ok {
			res.CatalogKey = candidate
			res.Entry = &entry
			return res
		}
	}
	res.Suggestions = c.suggest(key)
	return res
}

func collapseDashes(key string) string {
	var b strings.Builder
	prev := byte('-')
	for i := 0; i < len(key); i++ {
		if key[i] == '-' && prev == '-' {
			continue
		}
		b.WriteByte(key[i])
		prev = key[i]
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ResolveGear resolves every item without touching the input. An explicit
// CatalogKey wins; otherwise the normalized name is tried.
func (c *Calculator) ResolveGear(gear []sheet.GearItem) map[string]*Resolution {
	out := make(map[string]*Resolution, len(gear))
	for _, item := range gear {
		out[item.ID] = c.resolveItem(item)
	}
	return out
}

func (c *Calculator) resolveItem(item sheet.GearItem) *Resolution {
	var res *Resolution
	if entry, ok := c.catalog.Lookup(item.CatalogKey); ok {
		res = &Resolution{CatalogKey: item.CatalogKey, Entry: &entry}
	} else {
		res = c.ResolveName(item.Name)
	}
	res.ItemID = item.ID

	if item.Runes == nil {
		return res
	}

	onArmor := item.Slot == sheet.SlotArmor ||
		(item.Slot == sheet.SlotNone && res.Matched() && res.Entry.Category == rules.CategoryArmor)
	for _, ref := range item.Runes.CatalogRefs(onArmor) {
		entry, ok := c.catalog.Lookup(ref.Key)
		if !ok || entry.Category != rules.CategoryRune {
			continue
		}
		res.Runes = append(res.Runes, ResolvedRune{Label: ref.Label, Entry: &entry})
	}
	return res
}

func (c *Calculator) suggest(key string) []string {
	if key == "" {
		return nil
	}

	type candidate struct {
		key      string
		distance int
	}

	limit := max(2, len(key)/3)
	var candidates []candidate
	for _, k := range c.catalogKeys {
		d := levenshtein.ComputeDistance(key, k)
		if d <= limit {
			candidates = append(candidates, candidate{key: k, distance: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].key < candidates[j].key
	})

	var out []string
	for i := 0; i < len(candidates) && i < maxSuggestions; i++ {
		out = append(out, candidates[i].key)
	}
	return out
}

// AggregateEquipmentModifiers sums the effect of every equipped item in
// gear order. Unmatched items contribute nothing.
func (c *Calculator) AggregateEquipmentModifiers(gear []sheet.GearItem) *ModifierBundle {
	return aggregate(gear, c.ResolveGear(gear))
}

func aggregate(gear []sheet.GearItem, resolutions map[string]*Resolution) *ModifierBundle {
	bundle := &ModifierBundle{}

	for _, item := range gear {
		if !item.Equipped {
			continue
		}
		res := resolutions[item.ID]
		if res == nil {
			continue
		}

		if res.Matched() {
			entry := res.Entry
			bundle.AC.add(item.Name, entry.ACBonus, categorySource(entry.Category))
			bundle.Speed.add(item.Name, entry.SpeedPenalty, categorySource(entry.Category))
			addStatModifiers(bundle, item.Name, entry.StatModifiers, SourceItem)
		}

		for _, r := range res.Runes {
			addStatModifiers(bundle, fmt.Sprintf("%s (%s)", item.Name, r.Label), r.Entry.StatModifiers, SourceRune)
		}
	}

	return bundle
}

func addStatModifiers(bundle *ModifierBundle, name string, mods rules.StatModifiers, sourceType string) {
	bundle.AC.add(name, mods.ACBonus, sourceType)
	bundle.AttackBonus.add(name, mods.AttackBonus, sourceType)
	bundle.SavingThrows.add(name, mods.SavingThrowBonus, sourceType)
	bundle.DamageDice.add(name, mods.DamageDice, sourceType)
}

func categorySource(cat rules.Category) string {
	switch cat {
	case rules.CategoryArmor:
		return SourceArmor
	case rules.CategoryShield:
		return SourceShield
	case rules.CategoryRune:
		return SourceRune
	default:
		return SourceItem
	}
}

// armorTraits returns the equipped armor's base AC and the tightest Dex cap
// among equipped armor. A nil cap means unlimited.
func armorTraits(gear []sheet.GearItem, resolutions map[string]*Resolution) (int, *int) {
	base := 0
	var dexCap *int
	for _, item := range gear {
		res := resolutions[item.ID]
		if !item.Equipped || !res.Matched() || res.Entry.Category != rules.CategoryArmor {
			continue
		}
		base += res.Entry.ACBonus
		if res.Entry.DexCap != nil && (dexCap == nil || *res.Entry.DexCap < *dexCap) {
			v := *res.Entry.DexCap
			dexCap = &v
		}
	}
	return base, dexCap
}
