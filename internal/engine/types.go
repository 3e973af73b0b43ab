package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Source types used for attribution
const (
	SourceArmor       = "armor"
	SourceShield      = "shield"
	SourceItem        = "item"
	SourceRune        = "rune"
	SourceEncumbrance = "encumbrance"
)

// AbilityScore is a resolved score at a level
type AbilityScore struct {
	Base     int `json:"base"`
	Score    int `json:"score"`
	Modifier int `json:"modifier"`
}

// Source attributes part of a total to one item. Penalties are negative.
type Source struct {
	Name  string `json:"name"`
	Bonus int    `json:"bonus"`
	Type  string `json:"type"`
}

// Aggregate is a summed modifier and where it came from, in gear order
type Aggregate struct {
	Value   int      `json:"value"`
	Sources []Source `json:"sources"`
}

func (a *Aggregate) add(name string, bonus int, sourceType string) {
	if bonus == 0 {
		return
	}
	a.Value += bonus
	a.Sources = append(a.Sources, Source{Name: name, Bonus: bonus, Type: sourceType})
}

// ModifierBundle is the sum of every equipped item's effect
type ModifierBundle struct {
	AC           Aggregate `json:"ac"`
	AttackBonus  Aggregate `json:"attackBonus"`
	DamageDice   Aggregate `json:"damageDice"`
	SavingThrows Aggregate `json:"savingThrows"`
	Speed        Aggregate `json:"speed"`
}

// ResolvedRune is a rune on a gear item matched to the rune catalog
type ResolvedRune struct {
	Label string              `json:"label"`
	Entry *rules.CatalogEntry `json:"entry"`
}

// Resolution is how one gear item matched the catalog. Unmatched items keep
// a nil Entry and may carry spelling suggestions.
type Resolution struct {
	ItemID      string              `json:"itemId"`
	CatalogKey  string              `json:"catalogKey,omitempty"`
	Entry       *rules.CatalogEntry `json:"entry,omitempty"`
	ByName      bool                `json:"byName,omitempty"`
	Runes       []ResolvedRune      `json:"runes,omitempty"`
	Suggestions []string            `json:"suggestions,omitempty"`
}

// Matched reports whether the item resolved to a catalog entry
func (r *Resolution) Matched() bool {
	return r != nil && r.Entry != nil
}

// Encumbrance compares carried bulk to the strength-derived capacity
type Encumbrance struct {
	TotalBulk    float64 `json:"totalBulk"`
	Display      string  `json:"display"`
	Capacity     int     `json:"capacity"`
	Encumbered   bool    `json:"encumbered"`
	Overloaded   bool    `json:"overloaded"`
	SpeedPenalty int     `json:"speedPenalty"`
}

// CheckStat is a d20 modifier built from an ability and a rank
type CheckStat struct {
	Ability rules.Ability `json:"ability"`
	Rank    rules.Rank    `json:"rank"`
	Value   int           `json:"value"`
}

// ArmorClass carries the total and each part that went into it. ArmorBase
// is the armor's own AC bonus, already included in Item.
type ArmorClass struct {
	Value       int        `json:"value"`
	Base        int        `json:"base"`
	Dex         int        `json:"dex"`
	DexCap      *int       `json:"dexCap,omitempty"`
	ArmorBase   int        `json:"armorBase"`
	Proficiency int        `json:"proficiency"`
	Rank        rules.Rank `json:"rank"`
	Item        int        `json:"item"`
	Sources     []Source   `json:"sources"`
}

// AttackStats is one natural attack
type AttackStats struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	AttackBonus    int      `json:"attackBonus"`
	MultipleAttack [2]int   `json:"multipleAttack"`
	DamageDice     int      `json:"damageDice"`
	Die            int      `json:"die"`
	DamageModifier int      `json:"damageModifier"`
	DamageType     string   `json:"damageType"`
	Damage         string   `json:"damage"`
	Traits         []string `json:"traits,omitempty"`
}

// CombatInput is everything ComputeCombatStats reads. Ranks overrides the
// level schedule per feature when set.
type CombatInput struct {
	Level     int
	Abilities map[rules.Ability]AbilityScore
	Gear      []sheet.GearItem
	Ranks     map[rules.Feature]rules.Rank
}

// CombatStats is the combat block of the sheet
type CombatStats struct {
	ArmorClass  ArmorClass                   `json:"armorClass"`
	Attacks     []AttackStats                `json:"attacks"`
	Saves       map[rules.Feature]CheckStat  `json:"saves"`
	Perception  CheckStat                    `json:"perception"`
	SpellDC     int                          `json:"spellDc"`
	SpellAttack int                          `json:"spellAttack"`
	SpellRank   rules.Rank                   `json:"spellRank"`
	Speed       int                          `json:"speed"`
	Encumbrance Encumbrance                  `json:"encumbrance"`
	Modifiers   ModifierBundle               `json:"modifiers"`
	Ranks       map[rules.Feature]rules.Rank `json:"ranks"`
}

// Attack returns the attack with the given key
func (c *CombatStats) Attack(key string) (AttackStats, bool) {
	for _, a := range c.Attacks {
		if a.Key == key {
			return a, true
		}
	}
	return AttackStats{}, false
}

// SlotView is one spell rank as displayed
type SlotView struct {
	Rank      int                   `json:"rank"`
	Key       string                `json:"key"`
	Max       int                   `json:"max"`
	Prepared  []sheet.PreparedSpell `json:"prepared"`
	Cast      int                   `json:"cast"`
	Available int                   `json:"available"`
}

// FontView is the divine font pool as displayed
type FontView struct {
	Max    int              `json:"max"`
	Used   int              `json:"used"`
	Choice rules.FontChoice `json:"choice"`
}

// SpellStats is the spellcasting block
type SpellStats struct {
	DC     int        `json:"dc"`
	Attack int        `json:"attack"`
	Rank   rules.Rank `json:"rank"`
	Slots  []SlotView `json:"slots"`
	Font   FontView   `json:"font"`
}

// DerivedSheet is every computed number for one state
type DerivedSheet struct {
	CharacterID string                         `json:"characterId"`
	Level       int                            `json:"level"`
	Profile     sheet.Profile                  `json:"profile"`
	Abilities   map[rules.Ability]AbilityScore `json:"abilities"`
	HP          sheet.HitPoints                `json:"hp"`
	Combat      *CombatStats                   `json:"combat"`
	Skills      map[string]CheckStat           `json:"skills"`
	Spells      SpellStats                     `json:"spells"`
	Resolutions map[string]*Resolution         `json:"resolutions"`
}
