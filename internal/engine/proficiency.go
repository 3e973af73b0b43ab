package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// ProficiencyBonus is 0 untrained, otherwise level plus 0/2/4/6
func ProficiencyBonus(level int, rank rules.Rank) int {
	switch rank {
	case rules.Trained:
		return level
	case rules.Expert:
		return level + 2
	case rules.Master:
		return level + 4
	case rules.Legendary:
		return level + 6
	default:
		return 0
	}
}

// CurrentRank picks the rank of the highest threshold at or below level.
// Thresholds must be in ascending level order.
func CurrentRank(level int, thresholds []rules.Threshold) rules.Rank {
	rank := rules.Untrained
	for _, t := range thresholds {
		if t.Level > level {
			break
		}
		rank = t.Rank
	}
	return rank
}

// StepValue returns the value of the highest step at or below level, or 0
func StepValue(level int, steps []rules.LevelValue) int {
	value := 0
	for _, s := range steps {
		if s.Level > level {
			break
		}
		value = s.Value
	}
	return value
}

// RankFor resolves a feature's rank from its schedule
func (c *Calculator) RankFor(feature rules.Feature, level int) rules.Rank {
	return CurrentRank(level, c.progression.Proficiencies[feature])
}

// MaxSlots is the slot count for rank at level. Rank 0 is the cantrip count.
func (c *Calculator) MaxSlots(level, rank int) int {
	if rank == 0 {
		return c.progression.SpellSlots.Cantrips
	}
	if rank < 0 || rank > rules.MaxSpellRank {
		return 0
	}
	slots := c.progression.SpellSlots.ByLevel[sheet.ClampLevel(level)]
	if rank > len(slots) {
		return 0
	}
	return slots[rank-1]
}

// DivineFontSlots is the size of the font pool at level
func (c *Calculator) DivineFontSlots(level int) int {
	return StepValue(level, c.progression.DivineFont)
}

// WeaponSpecialization is the flat damage bonus at level
func (c *Calculator) WeaponSpecialization(level int) int {
	return StepValue(level, c.progression.WeaponSpecialization)
}
