package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Config holds the tables a Calculator reads
type Config struct {
	Progression *rules.Progression
	Catalog     *rules.Catalog
}

// Validate checks the tables are present
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Progression == nil {
		vb.RequiredField("Progression")
	}
	if cfg.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Calculator implements Engine over fixed rule tables
type Calculator struct {
	progression *rules.Progression
	catalog     *rules.Catalog
	catalogKeys []string
}

var _ Engine = (*Calculator)(nil)
var _ sheet.SlotLimits = (*Calculator)(nil)

// New creates a Calculator
func New(cfg *Config) (*Calculator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{
		progression: cfg.Progression,
		catalog:     cfg.Catalog,
		catalogKeys: cfg.Catalog.Keys(),
	}, nil
}

// Progression exposes the level table
func (c *Calculator) Progression() *rules.Progression {
	return c.progression
}

// MaxHP is ancestry HP plus (class HP + Con modifier) per level
func (c *Calculator) MaxHP(level int, base map[rules.Ability]int) int {
	level = sheet.ClampLevel(level)
	con, ok := base[rules.Constitution]
	if !ok {
		con = 10
	}
	conMod := Modifier(ResolveAbilityScore(con, rules.Constitution, level, c.progression.Boosts))
	hp := c.progression.HitPoints.Ancestry + (c.progression.HitPoints.ClassPerLevel+conMod)*level
	return max(hp, 1)
}

// SkillBonuses computes every skill check modifier
func (c *Calculator) SkillBonuses(level int, scores map[rules.Ability]AbilityScore, state *sheet.State) map[string]CheckStat {
	out := make(map[string]CheckStat, len(c.progression.Skills))
	for skill, ability := range c.progression.Skills {
		rank := state.SkillRank(skill)
		out[skill] = CheckStat{
			Ability: ability,
			Rank:    rank,
			Value:   scores[ability].Modifier + ProficiencyBonus(level, rank),
		}
	}
	return out
}
