package pathbuilder

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// DefaultClass is the only class whose builds can be imported
const DefaultClass = "Cleric"

const importSource = "pathbuilder"

// proficiency keys written for each feature
var featureKeys = map[rules.Feature][]string{
	rules.FeaturePerception:   {"perception"},
	rules.FeatureFortitude:    {"fortitude"},
	rules.FeatureReflex:       {"reflex"},
	rules.FeatureWill:         {"will"},
	rules.FeatureWeapons:      {"unarmed", "simple"},
	rules.FeatureArmor:        {"unarmored", "light", "medium", "heavy"},
	rules.FeatureSpellcasting: {"castingDivine"},
}

var featureOrder = []rules.Feature{
	rules.FeaturePerception,
	rules.FeatureFortitude,
	rules.FeatureReflex,
	rules.FeatureWill,
	rules.FeatureWeapons,
	rules.FeatureArmor,
	rules.FeatureSpellcasting,
}

// Config holds the dependencies of the converter
type Config struct {
	Engine      engine.Engine
	Progression *rules.Progression
	IDGen       idgen.Generator
	// Class defaults to DefaultClass
	Class string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("engine")
	}
	if c.Progression == nil {
		vb.RequiredField("progression")
	}
	if c.IDGen == nil {
		vb.RequiredField("id_gen")
	}
	return vb.Build()
}

type converter struct {
	engine      engine.Engine
	progression *rules.Progression
	idGen       idgen.Generator
	class       string
}

// New creates a Pathbuilder converter
func New(cfg *Config) (Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	class := strings.TrimSpace(cfg.Class)
	if class == "" {
		class = DefaultClass
	}

	return &converter{
		engine:      cfg.Engine,
		progression: cfg.Progression,
		idGen:       cfg.IDGen,
		class:       class,
	}, nil
}

var _ Converter = (*converter)(nil)

func (c *converter) Export(state *sheet.State) ([]byte, error) {
	if state == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	derived := c.engine.Sheet(state)
	level := sheet.ClampLevel(state.Level)

	build := Build{
		Name:       state.Profile.Name,
		Class:      orDefault(state.Profile.Class, c.class),
		Level:      level,
		Ancestry:   state.Profile.Ancestry,
		Gender:     state.Profile.Gender,
		Deity:      state.Profile.Deity,
		KeyAbility: string(rules.Wisdom),
		Attributes: Attributes{
			AncestryHP: c.progression.HitPoints.Ancestry,
			ClassHP:    c.progression.HitPoints.ClassPerLevel,
			Speed:      c.progression.Speed.Base,
		},
		Abilities: Abilities{
			Str: derived.Abilities[rules.Strength].Score,
			Dex: derived.Abilities[rules.Dexterity].Score,
			Con: derived.Abilities[rules.Constitution].Score,
			Int: derived.Abilities[rules.Intelligence].Score,
			Wis: derived.Abilities[rules.Wisdom].Score,
			Cha: derived.Abilities[rules.Charisma].Score,
		},
		Proficiencies: make(map[string]int),
		Feats:         exportFeats(state.Feats),
		Lores:         [][]any{},
		Equipment:     [][]any{},
		Weapons:       []Weapon{},
		Armor:         []Armor{},
	}

	for _, feature := range featureOrder {
		rank := c.engine.RankFor(feature, level).Numeric()
		for _, key := range featureKeys[feature] {
			build.Proficiencies[key] = rank
		}
	}
	for _, key := range c.progression.SkillKeys() {
		build.Proficiencies[key] = state.SkillRank(key).Numeric()
	}

	for _, item := range state.Gear {
		var entry *rules.CatalogEntry
		if res := derived.Resolutions[item.ID]; res.Matched() {
			entry = res.Entry
		}
		c.exportItem(&build, item, entry)
	}

	build.SpellCasters = []SpellCaster{c.exportCaster(state, level)}

	if derived.Combat != nil {
		ac := derived.Combat.ArmorClass
		build.ACTotal = ACTotal{
			ACProfBonus:    ac.Proficiency,
			ACAbilityBonus: ac.Dex,
			ACItemBonus:    ac.Item,
			ACTotal:        ac.Value,
		}
	}

	data, err := json.MarshalIndent(Document{Success: true, Build: build}, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode pathbuilder document")
	}
	return data, nil
}

func (c *converter) exportItem(build *Build, item sheet.GearItem, entry *rules.CatalogEntry) {
	var runes rules.Runes
	if item.Runes != nil {
		runes = *item.Runes
	}

	slot := item.Slot
	if slot == sheet.SlotNone && entry != nil {
		switch entry.Category {
		case rules.CategoryArmor:
			slot = sheet.SlotArmor
		case rules.CategoryShield:
			slot = sheet.SlotShield
		case rules.CategoryWeapon:
			slot = sheet.SlotWeapon
		}
	}

	switch slot {
	case sheet.SlotArmor, sheet.SlotShield:
		build.Armor = append(build.Armor, Armor{
			Name: item.Name,
			Qty:  item.Qty(),
			Prof: string(slot),
			Pot:  potencyNumber(runes.Potency),
			Res:  tierName(runes.Resilient, "resilient", "Resilient"),
			Worn: item.Equipped,
		})
	case sheet.SlotWeapon:
		w := Weapon{
			Name:     item.Name,
			Qty:      item.Qty(),
			Prof:     "simple",
			Pot:      potencyNumber(runes.Potency),
			Str:      tierName(runes.Striking, "striking", "Striking"),
			Display:  item.Name,
			Equipped: item.Equipped,
		}
		if entry != nil {
			w.Die = dieSize(entry.Damage)
		}
		build.Weapons = append(build.Weapons, w)
	default:
		build.Equipment = append(build.Equipment, []any{item.Name, item.Qty()})
	}
}

func (c *converter) exportCaster(state *sheet.State, level int) SpellCaster {
	caster := SpellCaster{
		Name:             c.class,
		MagicTradition:   "divine",
		SpellcastingType: "prepared",
		Ability:          string(rules.Wisdom),
		Proficiency:      c.engine.RankFor(rules.FeatureSpellcasting, level).Numeric(),
		PerDay:           make([]int, rules.MaxSpellRank+1),
		Spells:           []SpellList{},
		Prepared:         []SpellList{},
	}

	for rank := 0; rank <= rules.MaxSpellRank; rank++ {
		caster.PerDay[rank] = c.engine.MaxSlots(level, rank)

		// spent slots were prepared today too
		var prepared []string
		for _, p := range state.Spells.PreparedAt(rank) {
			prepared = append(prepared, p.SpellID)
		}
		for _, p := range state.Spells.ExpendedAt(rank) {
			prepared = append(prepared, p.SpellID)
		}
		if len(prepared) == 0 {
			continue
		}

		caster.Prepared = append(caster.Prepared, SpellList{SpellLevel: rank, List: prepared})
		caster.Spells = append(caster.Spells, SpellList{SpellLevel: rank, List: distinct(prepared)})
	}

	return caster
}

func (c *converter) Import(input *ImportInput) (*ImportOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character id is required")
	}
	if !gjson.ValidBytes(input.Data) {
		return nil, errors.InvalidArgument("document is not valid JSON")
	}

	root := gjson.ParseBytes(input.Data)
	if success := root.Get("success"); success.Exists() && !success.Bool() {
		return nil, errors.InvalidArgument("document reports an unsuccessful export")
	}

	build := root.Get("build")
	if !build.IsObject() {
		return nil, errors.InvalidArgument("document has no build")
	}

	class := strings.TrimSpace(build.Get("class").String())
	if !strings.EqualFold(class, c.class) {
		return nil, errors.FailedPreconditionf("only %s builds can be imported", c.class).
			WithMeta("class", class)
	}

	level := 1
	if l := build.Get("level"); l.Exists() {
		level = int(l.Int())
	}
	level = sheet.ClampLevel(level)

	state := &sheet.State{
		CharacterID: input.CharacterID,
		Level:       level,
		Abilities:   c.importAbilities(build, level),
		Spells:      sheet.NewSpellbook(),
		Skills:      make(map[string]sheet.SkillProficiency),
		Profile: sheet.Profile{
			Name:     build.Get("name").String(),
			Gender:   build.Get("gender").String(),
			Ancestry: build.Get("ancestry").String(),
			Class:    c.class,
			Deity:    build.Get("deity").String(),
		},
	}

	for _, key := range c.progression.SkillKeys() {
		rank := rules.RankFromNumeric(int(build.Get("proficiencies." + key).Int()))
		state.SetSkill(key, sheet.SkillProficiency{Rank: rank, LevelGained: 1, Source: importSource})
	}

	build.Get("feats").ForEach(func(_, f gjson.Result) bool {
		name := strings.TrimSpace(f.Get("0").String())
		if name == "" {
			return true
		}
		gained := int(f.Get("3").Int())
		if gained < 1 {
			gained = 1
		}
		state.SelectFeat(sheet.Feat{
			LevelGained: gained,
			Type:        featType(f.Get("2").String()),
			FeatKey:     rules.NormalizeName(name),
			Name:        name,
			Source:      importSource,
		})
		return true
	})

	out := &ImportOutput{State: state}
	c.importGear(build, out)
	c.importSpells(build, out)

	state.HP.Max = c.engine.MaxHP(level, state.Abilities)
	state.HP.Current = state.HP.Max

	slog.Debug("imported pathbuilder build",
		"character_id", input.CharacterID,
		"level", level,
		"gear", len(state.Gear),
		"unmatched", len(out.Unmatched),
		"dropped_spells", len(out.DroppedSpells))

	return out, nil
}

// importAbilities converts current scores back to level 1 base scores.
// The inversion is lossy at odd scores above 18.
func (c *converter) importAbilities(build gjson.Result, level int) map[rules.Ability]int {
	current := make(map[rules.Ability]int, len(rules.AllAbilities))
	for _, a := range rules.AllAbilities {
		if v := build.Get("abilities." + string(a)); v.Exists() {
			current[a] = int(v.Int())
		}
	}

	base := c.engine.BaseAbilityScores(current, level)
	for _, a := range rules.AllAbilities {
		if _, ok := base[a]; !ok {
			base[a] = 10
		}
	}
	return base
}

func (c *converter) importGear(build gjson.Result, out *ImportOutput) {
	add := func(name string, qty int64, item sheet.GearItem) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		item.ID = c.idGen.Generate()
		item.Name = name
		if qty > 1 {
			item.Quantity = int(qty)
		} else {
			item.Quantity = 1
		}

		res := c.engine.ResolveName(name)
		if res.Matched() {
			item.CatalogKey = res.CatalogKey
			if item.Slot == sheet.SlotArmor && res.Entry.Category == rules.CategoryShield {
				item.Slot = sheet.SlotShield
			}
		} else {
			out.Unmatched = append(out.Unmatched, name)
		}
		if item.Runes != nil && item.Runes.IsZero() {
			item.Runes = nil
		}
		out.State.Gear = append(out.State.Gear, item)
	}

	build.Get("armor").ForEach(func(_, a gjson.Result) bool {
		add(a.Get("name").String(), a.Get("qty").Int(), sheet.GearItem{
			Slot:     sheet.SlotArmor,
			Equipped: a.Get("worn").Bool(),
			Runes: &rules.Runes{
				Potency:   potencyString(a.Get("pot").Int()),
				Resilient: tierString(a.Get("res").String()),
			},
		})
		return true
	})

	build.Get("weapons").ForEach(func(_, w gjson.Result) bool {
		equipped := w.Get("equipped")
		add(w.Get("name").String(), w.Get("qty").Int(), sheet.GearItem{
			Slot:     sheet.SlotWeapon,
			Equipped: !equipped.Exists() || equipped.Bool(),
			Runes: &rules.Runes{
				Potency:  potencyString(w.Get("pot").Int()),
				Striking: tierString(w.Get("str").String()),
			},
		})
		return true
	})

	build.Get("equipment").ForEach(func(_, e gjson.Result) bool {
		add(e.Get("0").String(), e.Get("1").Int(), sheet.GearItem{})
		return true
	})
}

func (c *converter) importSpells(build gjson.Result, out *ImportOutput) {
	var caster gjson.Result
	build.Get("spellCasters").ForEach(func(_, sc gjson.Result) bool {
		if !caster.Exists() {
			caster = sc
		}
		if strings.EqualFold(sc.Get("magicTradition").String(), "divine") &&
			strings.EqualFold(sc.Get("spellcastingType").String(), "prepared") {
			caster = sc
			return false
		}
		return true
	})
	if !caster.Exists() {
		return
	}

	state := out.State
	caster.Get("prepared").ForEach(func(_, list gjson.Result) bool {
		rank := int(list.Get("spellLevel").Int())
		if rank < 0 || rank > rules.MaxSpellRank {
			return true
		}
		list.Get("list").ForEach(func(_, name gjson.Result) bool {
			spellID := rules.NormalizeName(strings.TrimSpace(name.String()))
			if spellID == "" {
				return true
			}
			spell := sheet.PreparedSpell{InstanceID: c.idGen.Generate(), SpellID: spellID}
			if !state.Spells.Prepare(c.engine, state.Level, rank, spell) {
				out.DroppedSpells = append(out.DroppedSpells, spellID)
			}
			return true
		})
		return true
	})
}

func exportFeats(feats []sheet.Feat) [][]any {
	sorted := append([]sheet.Feat(nil), feats...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].LevelGained != sorted[j].LevelGained {
			return sorted[i].LevelGained < sorted[j].LevelGained
		}
		return sorted[i].Type < sorted[j].Type
	})

	out := make([][]any, 0, len(sorted))
	for _, f := range sorted {
		out = append(out, []any{f.Name, nil, featTypeLabel(f.Type), f.LevelGained})
	}
	return out
}

// featTypeLabel turns "ancestry" into "Ancestry Feat"
func featTypeLabel(t string) string {
	if t == "" {
		return "General Feat"
	}
	words := strings.Split(t, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ") + " Feat"
}

// featType is the inverse of featTypeLabel
func featType(label string) string {
	t := strings.ToLower(strings.TrimSpace(label))
	t = strings.TrimSuffix(t, " feat")
	t = strings.Join(strings.Fields(t), "-")
	if t == "" {
		return "general"
	}
	return t
}

func potencyNumber(s string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "+"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func potencyString(n int64) string {
	if n <= 0 {
		return ""
	}
	return "+" + strconv.FormatInt(n, 10)
}

// tierName renders a rune tier the way Pathbuilder spells it:
// "striking", "greaterStriking", "majorStriking"
func tierName(tier, base, suffix string) string {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "":
		return ""
	case "greater", "greater-" + base, "greater " + base:
		return "greater" + suffix
	case "major", "major-" + base, "major " + base:
		return "major" + suffix
	default:
		return base
	}
}

// tierString is the inverse of tierName
func tierString(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "0" || s == "false":
		return ""
	case strings.HasPrefix(s, "greater"):
		return "greater"
	case strings.HasPrefix(s, "major"):
		return "major"
	default:
		return strings.TrimSpace(s)
	}
}

// dieSize turns "1d8" into "d8"
func dieSize(damage string) string {
	if i := strings.IndexByte(damage, 'd'); i >= 0 {
		return damage[i:]
	}
	return damage
}

func distinct(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
