package rules

import (
	"fmt"
	"sort"
)

// BoostStep grants a boost to each listed ability at Level
type BoostStep struct {
	Level     int       `yaml:"level"`
	Abilities []Ability `yaml:"abilities"`
}

// SpellSlotTable maps level to per-rank slot counts. ByLevel[level][i] is
// the slot count for rank i+1; missing entries mean zero.
type SpellSlotTable struct {
	Cantrips int           `yaml:"cantrips"`
	ByLevel  map[int][]int `yaml:"byLevel"`
}

// HitPoints holds the fixed hit point contributions
type HitPoints struct {
	Ancestry      int `yaml:"ancestry"`
	ClassPerLevel int `yaml:"classPerLevel"`
}

// Speed holds the land speed and encumbrance penalties in feet
type Speed struct {
	Base              int `yaml:"base"`
	EncumberedPenalty int `yaml:"encumberedPenalty"`
	OverloadedPenalty int `yaml:"overloadedPenalty"`
}

// Encumbrance holds the carrying thresholds. Capacity is BaseCapacity plus
// the strength modifier; overloaded starts OverloadMargin above that.
type Encumbrance struct {
	BaseCapacity   int `yaml:"baseCapacity"`
	OverloadMargin int `yaml:"overloadMargin"`
}

// Attack is one of the natural attacks the character always has
type Attack struct {
	Key        string   `yaml:"key"`
	Name       string   `yaml:"name"`
	Dice       int      `yaml:"dice"`
	Die        int      `yaml:"die"`
	DamageType string   `yaml:"damageType"`
	Traits     []string `yaml:"traits"`
}

// HasTrait reports whether the attack carries trait t
func (a Attack) HasTrait(t string) bool {
	for _, trait := range a.Traits {
		if trait == t {
			return true
		}
	}
	return false
}

// Progression is the full level table of the build
type Progression struct {
	Boosts               []BoostStep             `yaml:"boosts"`
	Proficiencies        map[Feature][]Threshold `yaml:"proficiencies"`
	SpellSlots           SpellSlotTable          `yaml:"spellSlots"`
	DivineFont           []LevelValue            `yaml:"divineFont"`
	WeaponSpecialization []LevelValue            `yaml:"weaponSpecialization"`
	HitPoints            HitPoints               `yaml:"hitPoints"`
	Speed                Speed                   `yaml:"speed"`
	Encumbrance          Encumbrance             `yaml:"encumbrance"`
	Attacks              []Attack                `yaml:"attacks"`
	SaveAbilities        map[Feature]Ability     `yaml:"saves"`
	Skills               map[string]Ability      `yaml:"skills"`
}

// Attack returns the natural attack with the given key
func (p *Progression) Attack(key string) (Attack, bool) {
	for _, a := range p.Attacks {
		if a.Key == key {
			return a, true
		}
	}
	return Attack{}, false
}

// SkillKeys returns the skill keys in name order
func (p *Progression) SkillKeys() []string {
	keys := make([]string, 0, len(p.Skills))
	for k := range p.Skills {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var requiredFeatures = []Feature{
	FeatureWeapons, FeatureArmor, FeatureFortitude, FeatureReflex,
	FeatureWill, FeaturePerception, FeatureSpellcasting,
}

func (p *Progression) validate() error {
	for i := 1; i < len(p.Boosts); i++ {
		if p.Boosts[i].Level <= p.Boosts[i-1].Level {
			return fmt.Errorf("boost levels must ascend: %d after %d", p.Boosts[i].Level, p.Boosts[i-1].Level)
		}
	}
	for _, step := range p.Boosts {
		for _, a := range step.Abilities {
			if !a.Valid() {
				return fmt.Errorf("boost at level %d names unknown ability %q", step.Level, a)
			}
		}
	}

	for _, f := range requiredFeatures {
		thresholds, ok := p.Proficiencies[f]
		if !ok || len(thresholds) == 0 {
			return fmt.Errorf("missing proficiency schedule for %s", f)
		}
		for i, t := range thresholds {
			if !t.Rank.Valid() {
				return fmt.Errorf("%s schedule has unknown rank %q", f, t.Rank)
			}
			if i > 0 && t.Level <= thresholds[i-1].Level {
				return fmt.Errorf("%s schedule levels must ascend", f)
			}
		}
	}

	for _, save := range Saves {
		if !p.SaveAbilities[save].Valid() {
			return fmt.Errorf("save %s has no key ability", save)
		}
	}

	for level, slots := range p.SpellSlots.ByLevel {
		if len(slots) > MaxSpellRank {
			return fmt.Errorf("level %d lists %d spell ranks", level, len(slots))
		}
	}

	for _, a := range p.Attacks {
		if a.Key == "" || a.Dice < 1 || a.Die < 2 {
			return fmt.Errorf("attack %q needs a key and a damage die", a.Name)
		}
	}

	for skill, ability := range p.Skills {
		if !ability.Valid() {
			return fmt.Errorf("skill %s has unknown key ability %q", skill, ability)
		}
	}

	return nil
}
