package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const baseAC = 10

// Multiple attack penalties for the second and third strike
var (
	multipleAttackPenalty = [2]int{-5, -10}
	agilePenalty          = [2]int{-4, -8}
)

// ComputeCombatStats builds AC, attacks, saves, spell statistics,
// perception and speed from one input
func (c *Calculator) ComputeCombatStats(input *CombatInput) *CombatStats {
	resolutions := c.ResolveGear(input.Gear)
	return c.combat(input, resolutions)
}

func (c *Calculator) combat(input *CombatInput, resolutions map[string]*Resolution) *CombatStats {
	level := input.Level
	mod := func(a rules.Ability) int { return input.Abilities[a].Modifier }

	ranks := make(map[rules.Feature]rules.Rank, len(c.progression.Proficiencies))
	for feature := range c.progression.Proficiencies {
		ranks[feature] = c.RankFor(feature, level)
	}
	for feature, rank := range input.Ranks {
		ranks[feature] = rank
	}

	bundle := aggregate(input.Gear, resolutions)
	enc := ComputeEncumbrance(sumBulk(input.Gear, resolutions), mod(rules.Strength), c.progression.Encumbrance, c.progression.Speed)

	stats := &CombatStats{
		Modifiers:   *bundle,
		Encumbrance: enc,
		Ranks:       ranks,
		Saves:       make(map[rules.Feature]CheckStat, len(rules.Saves)),
	}

	stats.ArmorClass = c.armorClass(level, mod(rules.Dexterity), ranks[rules.FeatureArmor], input, resolutions, bundle, enc)

	strMod := mod(rules.Strength)
	spec := c.WeaponSpecialization(level)
	weaponProf := ProficiencyBonus(level, ranks[rules.FeatureWeapons])
	for _, a := range c.progression.Attacks {
		attack := AttackStats{
			Key:            a.Key,
			Name:           a.Name,
			AttackBonus:    strMod + weaponProf + bundle.AttackBonus.Value,
			DamageDice:     a.Dice + bundle.DamageDice.Value,
			Die:            a.Die,
			DamageModifier: strMod + spec,
			DamageType:     a.DamageType,
			Traits:         a.Traits,
		}
		penalties := multipleAttackPenalty
		if a.HasTrait("agile") {
			penalties = agilePenalty
		}
		attack.MultipleAttack = [2]int{attack.AttackBonus + penalties[0], attack.AttackBonus + penalties[1]}
		attack.Damage = DamageExpression(attack.DamageDice, attack.Die, attack.DamageModifier, attack.DamageType)
		stats.Attacks = append(stats.Attacks, attack)
	}

	for _, save := range rules.Saves {
		ability := c.progression.SaveAbilities[save]
		rank := ranks[save]
		stats.Saves[save] = CheckStat{
			Ability: ability,
			Rank:    rank,
			Value:   mod(ability) + ProficiencyBonus(level, rank) + bundle.SavingThrows.Value,
		}
	}

	wis := mod(rules.Wisdom)
	stats.SpellRank = ranks[rules.FeatureSpellcasting]
	stats.SpellAttack = wis + ProficiencyBonus(level, stats.SpellRank)
	stats.SpellDC = baseAC + stats.SpellAttack

	stats.Perception = CheckStat{
		Ability: rules.Wisdom,
		Rank:    ranks[rules.FeaturePerception],
		Value:   wis + ProficiencyBonus(level, ranks[rules.FeaturePerception]),
	}

	stats.Speed = max(0, c.progression.Speed.Base+bundle.Speed.Value+enc.SpeedPenalty)

	return stats
}

// armorClass is 10 + capped Dex + proficiency + item AC. The armor's own
// bonus arrives through the bundle, so it is reported but not added twice.
// While encumbered Dex may not raise AC.
func (c *Calculator) armorClass(
	level, dexMod int,
	rank rules.Rank,
	input *CombatInput,
	resolutions map[string]*Resolution,
	bundle *ModifierBundle,
	enc Encumbrance,
) ArmorClass {
	armorBase, dexCap := armorTraits(input.Gear, resolutions)
	if enc.Encumbered && (dexCap == nil || *dexCap > 0) {
		zero := 0
		dexCap = &zero
	}

	dex := dexMod
	if dexCap != nil && dex > *dexCap {
		dex = *dexCap
	}

	ac := ArmorClass{
		Base:        baseAC,
		Dex:         dex,
		DexCap:      dexCap,
		ArmorBase:   armorBase,
		Proficiency: ProficiencyBonus(level, rank),
		Rank:        rank,
		Item:        bundle.AC.Value,
		Sources:     bundle.AC.Sources,
	}
	ac.Value = ac.Base + ac.Dex + ac.Proficiency + ac.Item
	return ac
}

// DamageExpression renders "2d8+7 piercing"
func DamageExpression(dice, die, modifier int, damageType string) string {
	expr := fmt.Sprintf("%dd%d", dice, die)
	switch {
	case modifier > 0:
		expr += fmt.Sprintf("+%d", modifier)
	case modifier < 0:
		expr += fmt.Sprintf("%d", modifier)
	}
	if damageType != "" {
		expr += " " + damageType
	}
	return expr
}
