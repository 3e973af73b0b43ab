package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// boostCap is the running score at which a boost adds 1 instead of 2
const boostCap = 18

// Modifier is floor((score-10)/2), rounding toward negative infinity
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// ResolveAbilityScore replays the boost schedule up to level. Each boost
// adds 2, or 1 once the running score is 18 or more.
func ResolveAbilityScore(base int, ability rules.Ability, level int, boosts []rules.BoostStep) int {
	score := base
	for _, step := range boosts {
		if step.Level > level {
			break
		}
		if !boosted(step, ability) {
			continue
		}
		if score >= boostCap {
			score++
		} else {
			score += 2
		}
	}
	return score
}

// InvertAbilityScore undoes the boosts applied up to level. A boost that
// lands on 19 is ambiguous (17+2 or 18+1); it inverts to 18.
func InvertAbilityScore(current int, ability rules.Ability, level int, boosts []rules.BoostStep) int {
	score := current
	for i := len(boosts) - 1; i >= 0; i-- {
		step := boosts[i]
		if step.Level > level || !boosted(step, ability) {
			continue
		}
		if score-1 >= boostCap {
			score--
		} else {
			score -= 2
		}
	}
	return score
}

func boosted(step rules.BoostStep, ability rules.Ability) bool {
	for _, a := range step.Abilities {
		if a == ability {
			return true
		}
	}
	return false
}

// AbilityScores resolves all six abilities. Missing base scores count as 10.
func (c *Calculator) AbilityScores(base map[rules.Ability]int, level int) map[rules.Ability]AbilityScore {
	out := make(map[rules.Ability]AbilityScore, len(rules.AllAbilities))
	for _, a := range rules.AllAbilities {
		b, ok := base[a]
		if !ok {
			b = 10
		}
		score := ResolveAbilityScore(b, a, level, c.progression.Boosts)
		out[a] = AbilityScore{Base: b, Score: score, Modifier: Modifier(score)}
	}
	return out
}

// BaseAbilityScores inverts current scores at level back to level 1
func (c *Calculator) BaseAbilityScores(current map[rules.Ability]int, level int) map[rules.Ability]int {
	out := make(map[rules.Ability]int, len(current))
	for a, score := range current {
		out[a] = InvertAbilityScore(score, a, level, c.progression.Boosts)
	}
	return out
}
