package rules

import (
	"fmt"
	"sort"
	"strings"
)

// Category of catalog entry
type Category string

// Categories, in lookup priority order
const (
	CategoryArmor  Category = "armor"
	CategoryShield Category = "shield"
	CategoryWeapon Category = "weapon"
	CategoryRune   Category = "rune"
	CategoryGear   Category = "gear"
)

// CategoryOrder is the order Lookup searches. The first match wins.
var CategoryOrder = []Category{CategoryArmor, CategoryShield, CategoryWeapon, CategoryRune, CategoryGear}

// StatModifiers are the item bonuses an entry grants while equipped
type StatModifiers struct {
	ACBonus          int `yaml:"acBonus" json:"acBonus,omitempty"`
	AttackBonus      int `yaml:"attackBonus" json:"attackBonus,omitempty"`
	SavingThrowBonus int `yaml:"savingThrowBonus" json:"savingThrowBonus,omitempty"`
	DamageDice       int `yaml:"damageDice" json:"damageDice,omitempty"`
}

// CatalogEntry is read-only reference data for one piece of equipment
type CatalogEntry struct {
	Key           string        `yaml:"-" json:"key"`
	Category      Category      `yaml:"-" json:"category"`
	Name          string        `yaml:"name" json:"name"`
	ACBonus       int           `yaml:"acBonus" json:"acBonus,omitempty"`
	DexCap        *int          `yaml:"dexCap" json:"dexCap,omitempty"`
	SpeedPenalty  int           `yaml:"speedPenalty" json:"speedPenalty,omitempty"`
	Damage        string        `yaml:"damage" json:"damage,omitempty"`
	Hardness      int           `yaml:"hardness" json:"hardness,omitempty"`
	Bulk          Bulk          `yaml:"bulk" json:"bulk"`
	StatModifiers StatModifiers `yaml:"statModifiers" json:"statModifiers"`
	Level         int           `yaml:"level" json:"level"`
	Price         string        `yaml:"price" json:"price,omitempty"`
	Traits        []string      `yaml:"traits" json:"traits,omitempty"`
}

// Catalog is the equipment reference, one map per category keyed by
// normalized name
type Catalog struct {
	Armor   map[string]CatalogEntry `yaml:"armor"`
	Shields map[string]CatalogEntry `yaml:"shields"`
	Weapons map[string]CatalogEntry `yaml:"weapons"`
	Runes   map[string]CatalogEntry `yaml:"runes"`
	Gear    map[string]CatalogEntry `yaml:"gear"`
}

// NewCatalog builds a catalog from entries, filing each under its Category
func NewCatalog(entries ...CatalogEntry) *Catalog {
	c := &Catalog{}
	for _, e := range entries {
		c.category(e.Category)[e.Key] = e
	}
	c.stamp()
	return c
}

func (c *Catalog) category(cat Category) map[string]CatalogEntry {
	var m *map[string]CatalogEntry
	switch cat {
	case CategoryArmor:
		m = &c.Armor
	case CategoryShield:
		m = &c.Shields
	case CategoryWeapon:
		m = &c.Weapons
	case CategoryRune:
		m = &c.Runes
	default:
		m = &c.Gear
	}
	if *m == nil {
		*m = make(map[string]CatalogEntry)
	}
	return *m
}

// stamp copies map keys and categories into the entries
func (c *Catalog) stamp() {
	for _, cat := range CategoryOrder {
		entries := c.category(cat)
		for key, e := range entries {
			e.Key = key
			e.Category = cat
			if e.Name == "" {
				e.Name = key
			}
			entries[key] = e
		}
	}
}

// Lookup finds an entry by key across categories in priority order
func (c *Catalog) Lookup(key string) (CatalogEntry, bool) {
	if key == "" {
		return CatalogEntry{}, false
	}
	for _, cat := range CategoryOrder {
		if e, ok := c.category(cat)[key]; ok {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// LookupName normalizes a free-text name and looks it up
func (c *Catalog) LookupName(name string) (CatalogEntry, bool) {
	return c.Lookup(NormalizeName(name))
}

// Keys returns every catalog key in sorted order
func (c *Catalog) Keys() []string {
	var keys []string
	for _, cat := range CategoryOrder {
		for key := range c.category(cat) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (c *Catalog) validate() error {
	for _, cat := range CategoryOrder {
		for key, e := range c.category(cat) {
			if key != NormalizeName(key) {
				return fmt.Errorf("catalog key %q is not normalized", key)
			}
			if e.SpeedPenalty > 0 {
				return fmt.Errorf("catalog entry %s has a positive speed penalty", key)
			}
		}
	}
	return nil
}

// NormalizeName turns a display name into a catalog key: lowercase, and
// every character outside [a-z0-9] becomes a hyphen. Used for legacy
// free-text gear and imports; new gear stores its catalog key directly.
func NormalizeName(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
