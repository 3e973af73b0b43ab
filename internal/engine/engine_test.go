package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type EngineTestSuite struct {
	suite.Suite
	tables *rules.Tables
	calc   *engine.Calculator
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupSuite() {
	tables, err := rules.Load()
	s.Require().NoError(err)
	s.tables = tables

	calc, err := engine.New(&engine.Config{Progression: tables.Progression, Catalog: tables.Catalog})
	s.Require().NoError(err)
	s.calc = calc
}

func (s *EngineTestSuite) TestNewRequiresTables() {
	_, err := engine.New(&engine.Config{})
	s.Error(err)

	_, err = engine.New(nil)
	s.Error(err)
}

func (s *EngineTestSuite) TestModifier() {
	testCases := []struct {
		score int
		want  int
	}{
		{10, 0},
		{11, 0},
		{12, 1},
		{9, -1},
		{8, -1},
		{7, -2},
		{1, -5},
		{18, 4},
		{21, 5},
	}
	for _, tc := range testCases {
		s.Equal(tc.want, engine.Modifier(tc.score), "score %d", tc.score)
	}
}

func (s *EngineTestSuite) TestAbilityScoreMonotonic() {
	boosts := s.tables.Progression.Boosts
	for _, ability := range rules.AllAbilities {
		for base := 8; base <= 18; base++ {
			prev := engine.ResolveAbilityScore(base, ability, 1, boosts)
			for level := 2; level <= 20; level++ {
				got := engine.ResolveAbilityScore(base, ability, level, boosts)
				s.GreaterOrEqual(got, prev, "%s base %d level %d", ability, base, level)
				prev = got
			}
		}
	}
}

func (s *EngineTestSuite) TestBoostCapRule() {
	boosts := []rules.BoostStep{
		{Level: 5, Abilities: []rules.Ability{rules.Strength}},
		{Level: 10, Abilities: []rules.Ability{rules.Strength}},
	}

	s.Equal(19, engine.ResolveAbilityScore(17, rules.Strength, 5, boosts))
	s.Equal(19, engine.ResolveAbilityScore(18, rules.Strength, 5, boosts))
	s.Equal(20, engine.ResolveAbilityScore(18, rules.Strength, 10, boosts))
	s.Equal(20, engine.ResolveAbilityScore(17, rules.Strength, 10, boosts))

	// a second boost after reaching 19 adds one again
	s.Equal(21, engine.ResolveAbilityScore(19, rules.Strength, 10, boosts))

	s.Equal(17, engine.ResolveAbilityScore(17, rules.Strength, 4, boosts))
	s.Equal(12, engine.ResolveAbilityScore(12, rules.Intelligence, 20, boosts))
}

func (s *EngineTestSuite) TestDefaultScheduleAtTwenty() {
	scores := s.calc.AbilityScores(map[rules.Ability]int{
		rules.Strength:     18,
		rules.Dexterity:    10,
		rules.Constitution: 14,
		rules.Intelligence: 10,
		rules.Wisdom:       16,
		rules.Charisma:     12,
	}, 20)

	s.Equal(21, scores[rules.Strength].Score)
	s.Equal(16, scores[rules.Dexterity].Score)
	s.Equal(19, scores[rules.Constitution].Score)
	s.Equal(12, scores[rules.Intelligence].Score)
	// 16 -> 18 -> 19 -> 20 -> 21
	s.Equal(21, scores[rules.Wisdom].Score)
	s.Equal(5, scores[rules.Wisdom].Modifier)
	s.Equal(14, scores[rules.Charisma].Score)
}

func (s *EngineTestSuite) TestInvertAbilityScore() {
	boosts := s.tables.Progression.Boosts

	for _, base := range []int{8, 10, 12, 14, 16, 18} {
		for _, level := range []int{1, 5, 10, 15, 20} {
			current := engine.ResolveAbilityScore(base, rules.Wisdom, level, boosts)
			s.Equal(base, engine.InvertAbilityScore(current, rules.Wisdom, level, boosts), "base %d level %d", base, level)
		}
	}

	// 17 boosted to 19 cannot be told apart from 18 boosted to 19
	current := engine.ResolveAbilityScore(17, rules.Strength, 5, boosts)
	s.Equal(18, engine.InvertAbilityScore(current, rules.Strength, 5, boosts))

	base := s.calc.BaseAbilityScores(map[rules.Ability]int{rules.Charisma: 14}, 20)
	s.Equal(12, base[rules.Charisma])
}

func (s *EngineTestSuite) TestProficiencyBonusOffsets() {
	for level := 1; level <= 20; level++ {
		trained := engine.ProficiencyBonus(level, rules.Trained)
		s.Equal(level, trained)
		s.Equal(trained+2, engine.ProficiencyBonus(level, rules.Expert))
		s.Equal(trained+4, engine.ProficiencyBonus(level, rules.Master))
		s.Equal(trained+6, engine.ProficiencyBonus(level, rules.Legendary))
		s.Zero(engine.ProficiencyBonus(level, rules.Untrained))
	}
}

func (s *EngineTestSuite) TestRankSchedules() {
	testCases := []struct {
		feature rules.Feature
		level   int
		want    rules.Rank
	}{
		{rules.FeatureWeapons, 6, rules.Trained},
		{rules.FeatureWeapons, 7, rules.Expert},
		{rules.FeatureWeapons, 19, rules.Legendary},
		{rules.FeatureArmor, 12, rules.Trained},
		{rules.FeatureArmor, 20, rules.Master},
		{rules.FeatureFortitude, 9, rules.Expert},
		{rules.FeatureReflex, 20, rules.Expert},
		{rules.FeatureWill, 1, rules.Expert},
		{rules.FeatureWill, 17, rules.Legendary},
		{rules.FeaturePerception, 5, rules.Expert},
		{rules.FeatureSpellcasting, 15, rules.Master},
	}

	for _, tc := range testCases {
		s.Equal(tc.want, s.calc.RankFor(tc.feature, tc.level), "%s at %d", tc.feature, tc.level)
	}

	s.Equal(rules.Untrained, engine.CurrentRank(0, s.tables.Progression.Proficiencies[rules.FeatureWeapons]))
}

func (s *EngineTestSuite) TestSlotTables() {
	s.Equal(5, s.calc.MaxSlots(1, 0))
	s.Equal(2, s.calc.MaxSlots(1, 1))
	s.Equal(0, s.calc.MaxSlots(1, 2))
	s.Equal(3, s.calc.MaxSlots(4, 2))
	s.Equal(1, s.calc.MaxSlots(19, 10))
	s.Equal(0, s.calc.MaxSlots(18, 10))
	s.Equal(0, s.calc.MaxSlots(20, 11))

	s.Equal(4, s.calc.DivineFontSlots(1))
	s.Equal(5, s.calc.DivineFontSlots(5))
	s.Equal(6, s.calc.DivineFontSlots(15))

	s.Equal(0, s.calc.WeaponSpecialization(12))
	s.Equal(2, s.calc.WeaponSpecialization(13))
	s.Equal(3, s.calc.WeaponSpecialization(16))
	s.Equal(4, s.calc.WeaponSpecialization(20))
}

func (s *EngineTestSuite) TestDivineFontExhaustionAtLevelOne() {
	book := sheet.NewSpellbook()
	for i := 0; i < 4; i++ {
		s.True(book.CastFont(s.calc, 1))
	}
	s.False(book.CastFont(s.calc, 1))
	s.Equal(4, book.Font.Used)
}

func (s *EngineTestSuite) TestMaxHP() {
	base := map[rules.Ability]int{rules.Constitution: 14}
	s.Equal(10+8+2, s.calc.MaxHP(1, base))
	// con 19 at level 15 -> +4
	s.Equal(10+(8+4)*15, s.calc.MaxHP(15, base))
}

func (s *EngineTestSuite) TestTenLightItemsMakeOneBulk() {
	gear := make([]sheet.GearItem, 10)
	light := rules.Light
	for i := range gear {
		gear[i] = sheet.GearItem{ID: string(rune('a' + i)), Name: "pebble", Bulk: &light, Quantity: 1}
	}

	s.Equal(1.0, s.calc.TotalBulk(gear))
}

func (s *EngineTestSuite) TestBulkFallsBackToCatalog() {
	two := rules.Whole(2)
	gear := []sheet.GearItem{
		{ID: "1", Name: "Full Plate", CatalogKey: "full-plate"},
		{ID: "2", Name: "Torch", Quantity: 5},
		{ID: "3", Name: "Sack of rocks", Bulk: &two},
		{ID: "4", Name: "Mystery box"},
	}

	// 4 + 0.5 + 2 + 0
	s.InDelta(6.5, s.calc.TotalBulk(gear), 1e-9)
}

func (s *EngineTestSuite) TestEncumbrance() {
	limits := s.tables.Progression.Encumbrance
	speed := s.tables.Progression.Speed

	light := engine.ComputeEncumbrance(rules.Whole(9), 4, limits, speed)
	s.False(light.Encumbered)
	s.Equal(9, light.Capacity)

	heavy := engine.ComputeEncumbrance(rules.Whole(9)+1, 4, limits, speed)
	s.True(heavy.Encumbered)
	s.False(heavy.Overloaded)
	s.Equal(-5, heavy.SpeedPenalty)

	over := engine.ComputeEncumbrance(rules.Whole(15), 4, limits, speed)
	s.True(over.Overloaded)
	s.Equal(-10, over.SpeedPenalty)
}

func (s *EngineTestSuite) TestDamageExpression() {
	s.Equal("2d8+7 piercing", engine.DamageExpression(2, 8, 7, "piercing"))
	s.Equal("1d4 bludgeoning", engine.DamageExpression(1, 4, 0, "bludgeoning"))
	s.Equal("1d4-1", engine.DamageExpression(1, 4, -1, ""))
}

func (s *EngineTestSuite) TestSheetForDefaults() {
	state := sheet.NewState("default", s.tables.Defaults, idgen.NewSequential("gear"))
	state.HP = sheet.HitPoints{Current: 12, Max: 12}

	derived := s.calc.Sheet(state)

	s.Equal(1, derived.Level)
	s.Equal(20, derived.HP.Max)
	s.Equal(12, derived.HP.Current)

	// 10 + min(0, 2) + trained 1 + scale mail 3 + steel shield 2
	s.Equal(16, derived.Combat.ArmorClass.Value)
	s.Equal(3, derived.Combat.ArmorClass.ArmorBase)

	fist, ok := derived.Combat.Attack("fist")
	s.Require().True(ok)
	s.Equal(4+1, fist.AttackBonus)
	s.Equal([2]int{1, -3}, fist.MultipleAttack)
	s.Equal("1d4+4 bludgeoning", fist.Damage)

	horn, _ := derived.Combat.Attack("horn")
	s.Equal([2]int{0, -5}, horn.MultipleAttack)

	s.Equal(2+1, derived.Combat.Saves[rules.FeatureFortitude].Value)
	s.Equal(3+3, derived.Combat.Saves[rules.FeatureWill].Value)
	s.Equal(10+3+1, derived.Combat.SpellDC)
	s.Equal(3+1, derived.Combat.Perception.Value)
	// scale mail -5
	s.Equal(20, derived.Combat.Speed)

	s.Equal(3+1, derived.Skills["religion"].Value)
	s.Equal(0, derived.Skills["thievery"].Value)

	s.Require().Len(derived.Spells.Slots, 2)
	s.Equal("cantrips", derived.Spells.Slots[0].Key)
	s.Equal(2, derived.Spells.Slots[1].Max)
	s.Equal(4, derived.Spells.Font.Max)

	for _, item := range state.Gear {
		s.True(derived.Resolutions[item.ID].Matched(), item.Name)
	}
}

func (s *EngineTestSuite) TestResolveNameWithPunctuation() {
	res := s.calc.ResolveName("Religious Symbol (Wooden)")
	s.Require().True(res.Matched())
	s.Equal("religious-symbol-wooden", res.CatalogKey)

	res = s.calc.ResolveName("Healer's Toolkit")
	s.Require().True(res.Matched())
	s.Equal("healer-s-toolkit", res.CatalogKey)
}
