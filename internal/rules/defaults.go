package rules

// DefaultGear is one starting inventory entry
type DefaultGear struct {
	Name       string `yaml:"name"`
	CatalogKey string `yaml:"catalogKey"`
	Quantity   int    `yaml:"quantity"`
	Equipped   bool   `yaml:"equipped"`
	Slot       string `yaml:"slot"`
	Bulk       *Bulk  `yaml:"bulk"`
	Runes      *Runes `yaml:"runes"`
}

// DefaultSkill is a starting skill proficiency
type DefaultSkill struct {
	Rank   Rank   `yaml:"rank"`
	Source string `yaml:"source"`
}

// DefaultFeat is a starting feat selection
type DefaultFeat struct {
	LevelGained int    `yaml:"levelGained"`
	Type        string `yaml:"type"`
	FeatKey     string `yaml:"featKey"`
	Name        string `yaml:"name"`
	Source      string `yaml:"source"`
	URL         string `yaml:"url"`
}

// Defaults is the character a fresh sheet starts with
type Defaults struct {
	Name      string                  `yaml:"name"`
	Gender    string                  `yaml:"gender"`
	Ancestry  string                  `yaml:"ancestry"`
	Class     string                  `yaml:"class"`
	Deity     string                  `yaml:"deity"`
	Level     int                     `yaml:"level"`
	Abilities map[Ability]int         `yaml:"abilities"`
	Gear      []DefaultGear           `yaml:"gear"`
	Skills    map[string]DefaultSkill `yaml:"skills"`
	Feats     []DefaultFeat           `yaml:"feats"`
	Notes     string                  `yaml:"notes"`
}
