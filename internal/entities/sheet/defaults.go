package sheet

import (
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// NewState builds a fresh character from the starting tables. HP is left at
// zero; the caller fills it from the engine once the level is known.
func NewState(characterID string, d *rules.Defaults, ids idgen.Generator) *State {
	s := &State{
		CharacterID: characterID,
		Level:       ClampLevel(d.Level),
		Spells:      NewSpellbook(),
		Skills:      make(map[string]SkillProficiency, len(d.Skills)),
		Profile: Profile{
			Name:     d.Name,
			Gender:   d.Gender,
			Ancestry: d.Ancestry,
			Class:    d.Class,
			Deity:    d.Deity,
		},
		Notes: d.Notes,
	}

	s.Abilities = DefaultAbilities(d)
	s.Gear = DefaultGear(d, ids)

	for key, skill := range d.Skills {
		s.Skills[key] = SkillProficiency{Rank: skill.Rank, LevelGained: 1, Source: skill.Source}
	}

	for _, f := range d.Feats {
		s.SelectFeat(Feat{
			LevelGained: f.LevelGained,
			Type:        f.Type,
			FeatKey:     f.FeatKey,
			Name:        f.Name,
			Source:      f.Source,
			URL:         f.URL,
		})
	}

	return s
}

// DefaultGear returns the starting inventory with fresh ids
func DefaultGear(d *rules.Defaults, ids idgen.Generator) []GearItem {
	gear := make([]GearItem, 0, len(d.Gear))
	for _, g := range d.Gear {
		item := GearItem{
			ID:         ids.Generate(),
			Name:       g.Name,
			CatalogKey: g.CatalogKey,
			Equipped:   g.Equipped,
			Quantity:   g.Quantity,
			Slot:       Slot(g.Slot),
		}
		if g.Bulk != nil {
			b := *g.Bulk
			item.Bulk = &b
		}
		if g.Runes != nil {
			r := *g.Runes
			item.Runes = &r
		}
		gear = append(gear, item)
	}
	return gear
}

// DefaultAbilities returns the starting base scores
func DefaultAbilities(d *rules.Defaults) map[rules.Ability]int {
	out := make(map[rules.Ability]int, len(rules.AllAbilities))
	for _, a := range rules.AllAbilities {
		score, ok := d.Abilities[a]
		if !ok {
			score = 10
		}
		out[a] = score
	}
	return out
}
