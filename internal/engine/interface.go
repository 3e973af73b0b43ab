// Package engine computes every derived number on the character sheet from
// the rule tables and a character state. All functions are deterministic;
// nothing here performs I/O or keeps state between calls.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-sheet/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Engine provides the rules calculations the orchestrators need
type Engine interface {
	// Slot limits, satisfies sheet.SlotLimits
	MaxSlots(level, rank int) int
	DivineFontSlots(level int) int

	// Ability scores and proficiency
	AbilityScores(base map[rules.Ability]int, level int) map[rules.Ability]AbilityScore
	BaseAbilityScores(current map[rules.Ability]int, level int) map[rules.Ability]int
	RankFor(feature rules.Feature, level int) rules.Rank
	MaxHP(level int, base map[rules.Ability]int) int

	// Equipment
	ResolveName(name string) *Resolution
	ResolveGear(gear []sheet.GearItem) map[string]*Resolution
	AggregateEquipmentModifiers(gear []sheet.GearItem) *ModifierBundle
	TotalBulk(gear []sheet.GearItem) float64

	// Composition
	ComputeCombatStats(input *CombatInput) *CombatStats
	Sheet(state *sheet.State) *DerivedSheet
}
