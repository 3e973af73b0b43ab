package pathbuilder

// Document is the top level of a Pathbuilder export
type Document struct {
	Success bool  `json:"success"`
	Build   Build `json:"build"`
}

// Build is the character inside a Document
type Build struct {
	Name          string         `json:"name"`
	Class         string         `json:"class"`
	Level         int            `json:"level"`
	Ancestry      string         `json:"ancestry"`
	Gender        string         `json:"gender"`
	Deity         string         `json:"deity"`
	KeyAbility    string         `json:"keyability"`
	Attributes    Attributes     `json:"attributes"`
	Abilities     Abilities      `json:"abilities"`
	Proficiencies map[string]int `json:"proficiencies"`
	Feats         [][]any        `json:"feats"`
	Lores         [][]any        `json:"lores"`
	Equipment     [][]any        `json:"equipment"`
	Weapons       []Weapon       `json:"weapons"`
	Armor         []Armor        `json:"armor"`
	SpellCasters  []SpellCaster  `json:"spellCasters"`
	ACTotal       ACTotal        `json:"acTotal"`
}

// Attributes carries hit point and speed inputs
type Attributes struct {
	AncestryHP    int `json:"ancestryhp"`
	ClassHP       int `json:"classhp"`
	BonusHP       int `json:"bonushp"`
	BonusHPPerLvl int `json:"bonushpPerLevel"`
	Speed         int `json:"speed"`
	SpeedBonus    int `json:"speedBonus"`
}

// Abilities are current ability scores
type Abilities struct {
	Str int `json:"str"`
	Dex int `json:"dex"`
	Con int `json:"con"`
	Int int `json:"int"`
	Wis int `json:"wis"`
	Cha int `json:"cha"`
}

// Weapon is a wielded weapon entry
type Weapon struct {
	Name     string `json:"name"`
	Qty      int    `json:"qty"`
	Prof     string `json:"prof"`
	Die      string `json:"die"`
	Pot      int    `json:"pot"`
	Str      string `json:"str"`
	Display  string `json:"display"`
	Equipped bool   `json:"equipped"`
}

// Armor is an armor or shield entry
type Armor struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
	Prof string `json:"prof"`
	Pot  int    `json:"pot"`
	Res  string `json:"res"`
	Worn bool   `json:"worn"`
}

// SpellCaster is one spellcasting entry
type SpellCaster struct {
	Name             string      `json:"name"`
	MagicTradition   string      `json:"magicTradition"`
	SpellcastingType string      `json:"spellcastingType"`
	Ability          string      `json:"ability"`
	Proficiency      int         `json:"proficiency"`
	PerDay           []int       `json:"perDay"`
	Spells           []SpellList `json:"spells"`
	Prepared         []SpellList `json:"prepared"`
}

// SpellList is the spells of one rank
type SpellList struct {
	SpellLevel int      `json:"spellLevel"`
	List       []string `json:"list"`
}

// ACTotal breaks down armor class
type ACTotal struct {
	ACProfBonus    int `json:"acProfBonus"`
	ACAbilityBonus int `json:"acAbilityBonus"`
	ACItemBonus    int `json:"acItemBonus"`
	ACTotal        int `json:"acTotal"`
}
