package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Sheet computes every derived value for state. The state is read, never
// written.
func (c *Calculator) Sheet(state *sheet.State) *DerivedSheet {
	level := sheet.ClampLevel(state.Level)
	scores := c.AbilityScores(state.Abilities, level)
	resolutions := c.ResolveGear(state.Gear)

	combat := c.combat(&CombatInput{
		Level:     level,
		Abilities: scores,
		Gear:      state.Gear,
	}, resolutions)

	return &DerivedSheet{
		CharacterID: state.CharacterID,
		Level:       level,
		Profile:     state.Profile,
		Abilities:   scores,
		HP: sheet.HitPoints{
			Current: state.HP.Current,
			Max:     c.MaxHP(level, state.Abilities),
		},
		Combat:      combat,
		Skills:      c.SkillBonuses(level, scores, state),
		Spells:      c.spellStats(level, state, combat),
		Resolutions: resolutions,
	}
}

func (c *Calculator) spellStats(level int, state *sheet.State, combat *CombatStats) SpellStats {
	stats := SpellStats{
		DC:     combat.SpellDC,
		Attack: combat.SpellAttack,
		Rank:   combat.SpellRank,
		Font: FontView{
			Max:    c.DivineFontSlots(level),
			Used:   state.Spells.Font.Used,
			Choice: state.Spells.Font.Choice,
		},
	}

	for rank := 0; rank <= rules.MaxSpellRank; rank++ {
		maxSlots := c.MaxSlots(level, rank)
		prepared := state.Spells.PreparedAt(rank)
		if maxSlots == 0 && len(prepared) == 0 {
			continue
		}
		cast := state.Spells.CastCount(rank)
		stats.Slots = append(stats.Slots, SlotView{
			Rank:      rank,
			Key:       rules.RankKey(rank),
			Max:       maxSlots,
			Prepared:  prepared,
			Cast:      cast,
			Available: max(0, maxSlots-len(prepared)-cast),
		})
	}

	return stats
}
