package portrait_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/portrait"
)

type PromptTestSuite struct {
	suite.Suite
}

func (s *PromptTestSuite) TestCondition() {
	testCases := []struct {
		hp, maxHP int
		want      string
	}{
		{hp: 38, maxHP: 38, want: "healthy"},
		{hp: 30, maxHP: 40, want: "healthy"},
		{hp: 29, maxHP: 40, want: "wounded"},
		{hp: 16, maxHP: 40, want: "wounded"},
		{hp: 15, maxHP: 40, want: "badly wounded"},
		{hp: 4, maxHP: 40, want: "near death"},
		{hp: 0, maxHP: 40, want: "near death"},
		{hp: 0, maxHP: 0, want: "healthy"},
	}

	for _, tc := range testCases {
		s.Equal(tc.want, portrait.Condition(tc.hp, tc.maxHP), "%d/%d", tc.hp, tc.maxHP)
	}
}

func (s *PromptTestSuite) TestBuildPrompt() {
	prompt := portrait.BuildPrompt(portrait.PromptInput{
		Name:           "Korgrim Ashhorn",
		Gender:         "male",
		Ancestry:       "Minotaur",
		Class:          "Cleric",
		Deity:          "Gorum",
		Level:          12,
		HP:             5,
		MaxHP:          100,
		Equipped:       []string{"Full Plate", "Warhammer"},
		PreparedSpells: 3,
	})

	s.Contains(prompt, "male Minotaur Cleric named Korgrim Ashhorn, devoted to Gorum")
	s.Contains(prompt, "A renowned hero")
	s.Contains(prompt, "barely standing")
	s.Contains(prompt, "Full Plate, Warhammer")
	s.Contains(prompt, "holy glow")
}

func (s *PromptTestSuite) TestBuildPromptMinimal() {
	prompt := portrait.BuildPrompt(portrait.PromptInput{Level: 1})
	s.Contains(prompt, "portrait of adventurer.")
	s.Contains(prompt, "standing tall")
	s.NotContains(prompt, "Wearing")
}

func TestPromptSuite(t *testing.T) {
	suite.Run(t, new(PromptTestSuite))
}
