// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// StateBuilder provides a fluent interface for building test sheet states
type StateBuilder struct {
	state  *sheet.State
	nextID int
}

// NewStateBuilder creates a level 1 character with all scores at 10 and
// nothing in the inventory
func NewStateBuilder() *StateBuilder {
	abilities := make(map[rules.Ability]int, len(rules.AllAbilities))
	for _, a := range rules.AllAbilities {
		abilities[a] = 10
	}

	return &StateBuilder{
		state: &sheet.State{
			CharacterID: sheet.DefaultCharacterID,
			Level:       1,
			Abilities:   abilities,
			HP:          sheet.HitPoints{Current: 10, Max: 10},
			Spells:      sheet.NewSpellbook(),
			Skills:      make(map[string]sheet.SkillProficiency),
			Profile: sheet.Profile{
				Name:     "Test Cleric",
				Ancestry: "Minotaur",
				Class:    "Cleric",
			},
		},
	}
}

// WithCharacterID sets the character id
func (b *StateBuilder) WithCharacterID(id string) *StateBuilder {
	b.state.CharacterID = id
	return b
}

// WithLevel sets the level without clamping
func (b *StateBuilder) WithLevel(level int) *StateBuilder {
	b.state.Level = level
	return b
}

// WithHP sets current and max hit points
func (b *StateBuilder) WithHP(current, maxHP int) *StateBuilder {
	b.state.HP = sheet.HitPoints{Current: current, Max: maxHP}
	return b
}

// WithAbilities sets the six base scores
func (b *StateBuilder) WithAbilities(str, dex, con, intel, wis, cha int) *StateBuilder {
	b.state.Abilities = map[rules.Ability]int{
		rules.Strength:     str,
		rules.Dexterity:    dex,
		rules.Constitution: con,
		rules.Intelligence: intel,
		rules.Wisdom:       wis,
		rules.Charisma:     cha,
	}
	return b
}

// WithGear appends an item, assigning a sequential id when none is set
func (b *StateBuilder) WithGear(item sheet.GearItem) *StateBuilder {
	if item.ID == "" {
		b.nextID++
		item.ID = fmt.Sprintf("gear_%d", b.nextID)
	}
	b.state.Gear = append(b.state.Gear, item)
	return b
}

// WithEquipped appends an equipped catalog item
func (b *StateBuilder) WithEquipped(name, catalogKey string, slot sheet.Slot) *StateBuilder {
	return b.WithGear(sheet.GearItem{
		Name:       name,
		CatalogKey: catalogKey,
		Equipped:   true,
		Quantity:   1,
		Slot:       slot,
	})
}

// WithPrepared places prepared instances directly, bypassing slot limits
func (b *StateBuilder) WithPrepared(rank int, spellIDs ...string) *StateBuilder {
	key := rules.RankKey(rank)
	for _, id := range spellIDs {
		b.nextID++
		b.state.Spells.Prepared[key] = append(b.state.Spells.Prepared[key], sheet.PreparedSpell{
			InstanceID: fmt.Sprintf("inst_%d", b.nextID),
			SpellID:    id,
		})
	}
	return b
}

// WithFontUsed sets the divine font counter
func (b *StateBuilder) WithFontUsed(used int) *StateBuilder {
	b.state.Spells.Font.Used = used
	return b
}

// WithSkill sets a skill rank gained at level 1
func (b *StateBuilder) WithSkill(key string, rank rules.Rank) *StateBuilder {
	b.state.SetSkill(key, sheet.SkillProficiency{Rank: rank, LevelGained: 1})
	return b
}

// WithFeat selects a feat
func (b *StateBuilder) WithFeat(levelGained int, featType, name string) *StateBuilder {
	b.state.SelectFeat(sheet.Feat{
		LevelGained: levelGained,
		Type:        featType,
		FeatKey:     rules.NormalizeName(name),
		Name:        name,
	})
	return b
}

// WithName sets the profile name
func (b *StateBuilder) WithName(name string) *StateBuilder {
	b.state.Profile.Name = name
	return b
}

// WithNotes sets free-form notes
func (b *StateBuilder) WithNotes(notes string) *StateBuilder {
	b.state.Notes = notes
	return b
}

// WithStoryLog appends a story line
func (b *StateBuilder) WithStoryLog(log sheet.StoryLog) *StateBuilder {
	b.state.StoryLogs = append(b.state.StoryLogs, log)
	return b
}

// Build returns a deep copy so the builder can be reused
func (b *StateBuilder) Build() *sheet.State {
	return b.state.Clone()
}
