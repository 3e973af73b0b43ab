package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// Ability is one of the six ability codes
type Ability string

// Abilities
const (
	Strength     Ability = "str"
	Dexterity    Ability = "dex"
	Constitution Ability = "con"
	Intelligence Ability = "int"
	Wisdom       Ability = "wis"
	Charisma     Ability = "cha"
)

// AllAbilities lists the abilities in sheet order
var AllAbilities = []Ability{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

// Valid reports whether a is a known ability
func (a Ability) Valid() bool {
	for _, known := range AllAbilities {
		if a == known {
			return true
		}
	}
	return false
}

// Rank is a proficiency tier
type Rank string

// Ranks in ascending order
const (
	Untrained Rank = "untrained"
	Trained   Rank = "trained"
	Expert    Rank = "expert"
	Master    Rank = "master"
	Legendary Rank = "legendary"
)

var rankOrder = []Rank{Untrained, Trained, Expert, Master, Legendary}

// Valid reports whether r is a known rank
func (r Rank) Valid() bool {
	return r.Numeric() >= 0
}

// Numeric returns 0 for untrained through 4 for legendary, or -1 for an
// unknown rank. The numeric form is what Pathbuilder stores.
func (r Rank) Numeric() int {
	for i, known := range rankOrder {
		if r == known {
			return i
		}
	}
	return -1
}

// RankFromNumeric is the inverse of Numeric. Out-of-range values clamp.
func RankFromNumeric(n int) Rank {
	switch {
	case n <= 0:
		return Untrained
	case n >= len(rankOrder):
		return Legendary
	default:
		return rankOrder[n]
	}
}

// ParseRank accepts a rank name in any case
func ParseRank(s string) (Rank, error) {
	r := Rank(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown proficiency rank %q", s)
	}
	return r, nil
}

// Feature names a proficiency with its own rank-by-level schedule
type Feature string

// Features of the build
const (
	FeatureWeapons      Feature = "weapons"
	FeatureArmor        Feature = "armor"
	FeatureFortitude    Feature = "fortitude"
	FeatureReflex       Feature = "reflex"
	FeatureWill         Feature = "will"
	FeaturePerception   Feature = "perception"
	FeatureSpellcasting Feature = "spellcasting"
)

// Saves in display order
var Saves = []Feature{FeatureFortitude, FeatureReflex, FeatureWill}

// Threshold is one step of a proficiency schedule
type Threshold struct {
	Level int  `yaml:"level" json:"level"`
	Rank  Rank `yaml:"rank" json:"rank"`
}

// LevelValue is a level-gated integer such as divine font size
type LevelValue struct {
	Level int `yaml:"level"`
	Value int `yaml:"value"`
}

// MaxSpellRank is the highest non-cantrip spell rank
const MaxSpellRank = 10

// CantripKey is the spellbook key for rank 0
const CantripKey = "cantrips"

// RankKey turns a spell rank into its storage key: 0 is "cantrips", 1 is
// "rank1" and so on.
func RankKey(rank int) string {
	if rank == 0 {
		return CantripKey
	}
	return "rank" + strconv.Itoa(rank)
}

// ParseRankKey accepts "cantrips", "rank3" or a bare "3"
func ParseRankKey(key string) (int, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == CantripKey || key == "cantrip" || key == "0" {
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimPrefix(key, "rank"))
	if err != nil || n < 1 || n > MaxSpellRank {
		return 0, fmt.Errorf("unknown spell rank %q", key)
	}
	return n, nil
}

// FontChoice selects the spell the divine font slots hold
type FontChoice string

// Font choices
const (
	FontHeal FontChoice = "heal"
	FontHarm FontChoice = "harm"
)

// Valid reports whether c is heal or harm
func (c FontChoice) Valid() bool {
	return c == FontHeal || c == FontHarm
}
