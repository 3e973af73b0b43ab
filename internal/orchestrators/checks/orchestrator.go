// Package checks rolls d20 checks and damage against the character's
// derived bonuses and keeps a short history of the results
package checks

//go:generate mockgen -destination=mock/mock_service.go -package=checksmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/checks Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Check kinds and prefixes
const (
	CheckPerception  = "perception"
	CheckSpellAttack = "spell-attack"
	PrefixSave       = "save:"
	PrefixSkill      = "skill:"
	PrefixAttack     = "attack:"

	d20 = 20
)

// Service defines the interface for check rolling
type Service interface {
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)
	ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error)
	ClearRolls(ctx context.Context, input *ClearRollsInput) (*ClearRollsOutput, error)
}

// Config holds the dependencies for the checks orchestrator
type Config struct {
	SheetService       sheet.Service
	RollLogRepo        rolllog.Repository
	DiceRoller         dice.Roller
	IDGenerator        idgen.Generator
	Clock              clock.Clock
	DefaultCharacterID string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}
	if c.RollLogRepo == nil {
		vb.RequiredField("RollLogRepo")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	sheets    sheet.Service
	rollLog   rolllog.Repository
	roller    dice.Roller
	idGen     idgen.Generator
	clock     clock.Clock
	defaultID string
}

// NewOrchestrator creates a new checks orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	defaultID := cfg.DefaultCharacterID
	if defaultID == "" {
		defaultID = entity.DefaultCharacterID
	}

	return &orchestrator{
		sheets:    cfg.SheetService,
		rollLog:   cfg.RollLogRepo,
		roller:    cfg.DiceRoller,
		idGen:     cfg.IDGenerator,
		clock:     clk,
		defaultID: defaultID,
	}, nil
}

func (o *orchestrator) characterID(id string) string {
	if id == "" {
		return o.defaultID
	}
	return id
}

// target is what a check resolves to on the sheet
type target struct {
	label    string
	modifier int
}

// resolveCheck finds the bonus a check rolls against
func resolveCheck(derived *engine.DerivedSheet, check string, strike int) (target, error) {
	combat := derived.Combat
	if combat == nil {
		return target{}, errors.Internal("sheet has no combat block")
	}

	switch {
	case check == CheckPerception:
		return target{label: "Perception", modifier: combat.Perception.Value}, nil

	case check == CheckSpellAttack:
		return target{label: "Spell attack", modifier: combat.SpellAttack}, nil

	case strings.HasPrefix(check, PrefixSave):
		name := strings.TrimPrefix(check, PrefixSave)
		stat, ok := combat.Saves[rules.Feature(name)]
		if !ok {
			return target{}, errors.InvalidArgumentf("unknown save: %s", name).
				WithMeta("check", check)
		}
		return target{label: title(name) + " save", modifier: stat.Value}, nil

	case strings.HasPrefix(check, PrefixSkill):
		name := strings.TrimPrefix(check, PrefixSkill)
		stat, ok := derived.Skills[name]
		if !ok {
			return target{}, errors.InvalidArgumentf("unknown skill: %s", name).
				WithMeta("check", check)
		}
		return target{label: title(name) + " check", modifier: stat.Value}, nil

	case strings.HasPrefix(check, PrefixAttack):
		key := strings.TrimPrefix(check, PrefixAttack)
		attack, ok := combat.Attack(key)
		if !ok {
			return target{}, errors.NotFoundf("no attack %s", key).
				WithMeta("check", check)
		}
		modifier := attack.AttackBonus
		label := attack.Name + " strike"
		if strike > 1 {
			modifier = attack.MultipleAttack[min(strike, 3)-2]
			label = fmt.Sprintf("%s strike %d", attack.Name, min(strike, 3))
		}
		return target{label: label, modifier: modifier}, nil
	}

	return target{}, errors.InvalidArgumentf("unsupported check: %s", check)
}

// RollCheck rolls a d20 against the named bonus and logs the result
func (o *orchestrator) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	check := strings.ToLower(strings.TrimSpace(input.Check))
	if check == "" {
		return nil, errors.InvalidArgument("check is required")
	}
	if input.Strike < 0 {
		return nil, errors.InvalidArgument("strike cannot be negative")
	}
	characterID := o.characterID(input.CharacterID)

	current, err := o.sheets.GetSheet(ctx, &sheet.GetSheetInput{CharacterID: characterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read character")
	}

	t, err := resolveCheck(current.Sheet, check, input.Strike)
	if err != nil {
		return nil, err
	}

	natural, err := o.roller.Roll(d20)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll d20")
	}

	roll, err := o.log(ctx, characterID, rolllog.Roll{
		Kind:       rolllog.KindCheck,
		Check:      check,
		Label:      t.label,
		Expression: engine.DamageExpression(1, d20, t.modifier, ""),
		Dice:       []int{natural},
		Modifier:   t.modifier,
		Total:      natural + t.modifier,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "check rolled",
		"character_id", characterID,
		"check", check,
		"natural", natural,
		"total", roll.Total)

	return &RollCheckOutput{Roll: roll, Natural: natural}, nil
}

// RollDamage rolls an attack's damage dice. A critical doubles the total.
// Damage is never less than 1.
func (o *orchestrator) RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(input.Attack, PrefixAttack)))
	if key == "" {
		return nil, errors.InvalidArgument("attack is required")
	}
	characterID := o.characterID(input.CharacterID)

	current, err := o.sheets.GetSheet(ctx, &sheet.GetSheetInput{CharacterID: characterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read character")
	}
	if current.Sheet.Combat == nil {
		return nil, errors.Internal("sheet has no combat block")
	}

	attack, ok := current.Sheet.Combat.Attack(key)
	if !ok {
		return nil, errors.NotFoundf("no attack %s", key).WithMeta("attack", key)
	}

	rolled, err := o.roller.RollN(attack.DamageDice, attack.Die)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", attack.DamageDice, attack.Die)
	}

	total := attack.DamageModifier
	for _, d := range rolled {
		total += d
	}
	total = max(total, 1)

	label := fmt.Sprintf("%s damage", attack.Name)
	if input.Critical {
		total *= 2
		label = fmt.Sprintf("%s critical damage", attack.Name)
	}
	if attack.DamageType != "" {
		label += fmt.Sprintf(" (%s)", attack.DamageType)
	}

	roll, err := o.log(ctx, characterID, rolllog.Roll{
		Kind:       rolllog.KindDamage,
		Check:      PrefixAttack + key,
		Label:      label,
		Expression: engine.DamageExpression(attack.DamageDice, attack.Die, attack.DamageModifier, ""),
		Dice:       rolled,
		Modifier:   attack.DamageModifier,
		Total:      total,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "damage rolled",
		"character_id", characterID,
		"attack", key,
		"critical", input.Critical,
		"total", roll.Total)

	return &RollDamageOutput{Roll: roll}, nil
}

func (o *orchestrator) log(ctx context.Context, characterID string, roll rolllog.Roll) (rolllog.Roll, error) {
	roll.ID = o.idGen.Generate()
	roll.RolledAt = o.clock.Now()

	out, err := o.rollLog.Append(ctx, rolllog.AppendInput{
		CharacterID: characterID,
		Roll:        roll,
	})
	if err != nil {
		return rolllog.Roll{}, errors.Wrap(err, "failed to record roll")
	}
	return out.Roll, nil
}

// ListRolls returns recent rolls, newest first
func (o *orchestrator) ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	out, err := o.rollLog.List(ctx, rolllog.ListInput{
		CharacterID: o.characterID(input.CharacterID),
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rolls")
	}

	return &ListRollsOutput{Rolls: out.Rolls}, nil
}

// ClearRolls drops the roll history
func (o *orchestrator) ClearRolls(ctx context.Context, input *ClearRollsInput) (*ClearRollsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	characterID := o.characterID(input.CharacterID)

	out, err := o.rollLog.Clear(ctx, rolllog.ClearInput{CharacterID: characterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear rolls")
	}

	slog.InfoContext(ctx, "roll log cleared",
		"character_id", characterID,
		"cleared", out.Cleared)

	return &ClearRollsOutput{Cleared: out.Cleared}, nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var _ Service = (*orchestrator)(nil)
