package sheet_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// fixedLimits gives every rank the same cap
type fixedLimits struct {
	slots int
	font  int
}

func (f fixedLimits) MaxSlots(_, rank int) int {
	if rank == 0 {
		return 5
	}
	return f.slots
}

func (f fixedLimits) DivineFontSlots(_ int) int {
	return f.font
}

// levelLimits grows slots with level so Clamp can be exercised
type levelLimits struct{}

func (levelLimits) MaxSlots(level, rank int) int {
	if rank == 0 {
		return 5
	}
	if level >= 5 {
		return 3
	}
	return 1
}

func (levelLimits) DivineFontSlots(level int) int {
	if level >= 5 {
		return 5
	}
	return 4
}

type SpellbookTestSuite struct {
	suite.Suite
	book   sheet.Spellbook
	limits fixedLimits
	next   int
}

func TestSpellbookSuite(t *testing.T) {
	suite.Run(t, new(SpellbookTestSuite))
}

func (s *SpellbookTestSuite) SetupTest() {
	s.book = sheet.NewSpellbook()
	s.limits = fixedLimits{slots: 3, font: 4}
	s.next = 0
}

func (s *SpellbookTestSuite) spell(id string) sheet.PreparedSpell {
	s.next++
	return sheet.PreparedSpell{InstanceID: fmt.Sprintf("inst_%d", s.next), SpellID: id}
}

func (s *SpellbookTestSuite) TestPrepareSameSpellTwice() {
	s.True(s.book.Prepare(s.limits, 1, 1, s.spell("bless")))
	s.True(s.book.Prepare(s.limits, 1, 1, s.spell("bless")))

	prepared := s.book.PreparedAt(1)
	s.Require().Len(prepared, 2)
	s.Equal(prepared[0].SpellID, prepared[1].SpellID)
	s.NotEqual(prepared[0].InstanceID, prepared[1].InstanceID)
}

func (s *SpellbookTestSuite) TestPrepareAtLimitIsNoOp() {
	for i := 0; i < 3; i++ {
		s.True(s.book.Prepare(s.limits, 1, 2, s.spell("heal")))
	}
	before := s.book.PreparedAt(2)

	s.False(s.book.Prepare(s.limits, 1, 2, s.spell("bless")))
	s.Equal(before, s.book.PreparedAt(2))
}

func (s *SpellbookTestSuite) TestSlotLimitHoldsUnderRandomSequences() {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 200; round++ {
		rank := rng.Intn(rules.MaxSpellRank) + 1
		switch rng.Intn(3) {
		case 0, 1:
			s.book.Prepare(s.limits, 1, rank, s.spell("spell"))
		case 2:
			prepared := s.book.PreparedAt(rank)
			if len(prepared) > 0 {
				s.True(s.book.Unprepare(rank, prepared[rng.Intn(len(prepared))].InstanceID))
			}
		}

		for r := 1; r <= rules.MaxSpellRank; r++ {
			s.LessOrEqual(len(s.book.PreparedAt(r)), s.limits.MaxSlots(1, r))
		}
	}
}

func (s *SpellbookTestSuite) TestCastSpendsTheSpecificInstance() {
	first := s.spell("heal")
	second := s.spell("bless")
	s.book.Prepare(s.limits, 1, 1, first)
	s.book.Prepare(s.limits, 1, 1, second)

	s.True(s.book.Cast(1, second.InstanceID))
	s.Equal([]sheet.PreparedSpell{first}, s.book.PreparedAt(1))
	s.Equal([]sheet.PreparedSpell{second}, s.book.ExpendedAt(1))
	s.Equal(1, s.book.CastCount(1))

	// already spent
	s.False(s.book.Cast(1, second.InstanceID))
	s.False(s.book.Cast(1, "missing"))
}

func (s *SpellbookTestSuite) TestSpentSlotCannotBeRefilledBeforeRest() {
	spells := []sheet.PreparedSpell{s.spell("a"), s.spell("b"), s.spell("c")}
	for _, sp := range spells {
		s.book.Prepare(s.limits, 1, 1, sp)
	}
	s.book.Cast(1, spells[0].InstanceID)

	s.False(s.book.Prepare(s.limits, 1, 1, s.spell("d")))
	s.Equal(3, s.book.Used(1))
}

func (s *SpellbookTestSuite) TestCantripsAreNotConsumed() {
	light := s.spell("light")
	s.True(s.book.Prepare(s.limits, 1, 0, light))

	s.True(s.book.Cast(0, light.InstanceID))
	s.Equal([]sheet.PreparedSpell{light}, s.book.PreparedAt(0))
	s.Equal(0, s.book.CastCount(0))
}

func (s *SpellbookTestSuite) TestRestIsIdempotent() {
	light := s.spell("light")
	s.book.Prepare(s.limits, 1, 0, light)
	heal := s.spell("heal")
	s.book.Prepare(s.limits, 1, 1, heal)
	s.book.Prepare(s.limits, 1, 3, s.spell("fireball"))
	s.book.Cast(1, heal.InstanceID)
	s.book.CastFont(s.limits, 1)

	s.book.Rest()
	once := s.book.Clone()
	s.book.Rest()

	s.Equal(once, s.book)
	for r := 1; r <= rules.MaxSpellRank; r++ {
		s.Empty(s.book.PreparedAt(r))
		s.Zero(s.book.CastCount(r))
	}
	s.Zero(s.book.Font.Used)
	s.Equal([]sheet.PreparedSpell{light}, s.book.PreparedAt(0))
}

func (s *SpellbookTestSuite) TestDivineFontExhaustion() {
	for i := 0; i < 4; i++ {
		s.True(s.book.CastFont(s.limits, 1))
	}

	s.False(s.book.CastFont(s.limits, 1))
	s.Equal(4, s.book.Font.Used)
}

func (s *SpellbookTestSuite) TestClampOnLevelDrop() {
	var limits levelLimits
	spells := []sheet.PreparedSpell{s.spell("a"), s.spell("b"), s.spell("c")}
	for _, sp := range spells {
		s.Require().True(s.book.Prepare(limits, 5, 1, sp))
	}
	s.book.Cast(1, spells[0].InstanceID)
	s.book.Cast(1, spells[1].InstanceID)
	for i := 0; i < 5; i++ {
		s.book.CastFont(limits, 5)
	}

	s.True(s.book.Clamp(limits, 1))

	s.Empty(s.book.PreparedAt(1))
	s.Equal(1, s.book.CastCount(1))
	s.Equal(4, s.book.Font.Used)
	s.False(s.book.Clamp(limits, 1))
}

func (s *SpellbookTestSuite) TestZeroValueBook() {
	var book sheet.Spellbook
	s.False(book.Unprepare(1, "x"))
	s.False(book.Cast(1, "x"))
	s.True(book.Prepare(s.limits, 1, 1, s.spell("heal")))
	s.Equal(1, book.PreparedCount())
}
