package sheet

import (
	"context"
	"fmt"
	"strings"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/events"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

func validateRank(rank int) error {
	if rank < 0 || rank > rules.MaxSpellRank {
		return errors.InvalidArgumentf("spell rank must be between 0 and %d", rules.MaxSpellRank).
			WithMeta("rank", rank)
	}
	return nil
}

// PrepareSpell adds a prepared instance at rank. When every slot is used the
// request is refused silently and Spell is nil.
func (o *orchestrator) PrepareSpell(ctx context.Context, input *PrepareSpellInput) (*PrepareSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	spellID := strings.TrimSpace(input.SpellID)
	if spellID == "" {
		return nil, errors.InvalidArgument("spell id is required")
	}
	if err := validateRank(input.Rank); err != nil {
		return nil, err
	}

	var prepared *entity.PreparedSpell
	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		spell := entity.PreparedSpell{InstanceID: o.idGen.Generate(), SpellID: spellID}
		if !state.Spells.Prepare(o.engine, state.Level, input.Rank, spell) {
			return nil, nil
		}
		prepared = &spell

		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceSpells},
			action:      events.ActionPrepare,
			description: fmt.Sprintf("Prepared %s", spellName(spellID, input.Rank)),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return &PrepareSpellOutput{SheetOutput: o.output(state), Spell: prepared}, nil
}

// UnprepareSpell removes a prepared instance if it exists
func (o *orchestrator) UnprepareSpell(ctx context.Context, input *SpellInstanceInput) (*SpellActionOutput, error) {
	return o.spellInstance(ctx, input, func(state *entity.State, spell entity.PreparedSpell) (*change, bool) {
		if !state.Spells.Unprepare(input.Rank, input.InstanceID) {
			return nil, false
		}
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceSpells},
			action:      events.ActionUnprepare,
			description: fmt.Sprintf("Set aside %s", spellName(spell.SpellID, input.Rank)),
		}, true
	})
}

// CastSpell spends the named prepared instance. Unknown instances are a
// no-op.
func (o *orchestrator) CastSpell(ctx context.Context, input *SpellInstanceInput) (*SpellActionOutput, error) {
	return o.spellInstance(ctx, input, func(state *entity.State, spell entity.PreparedSpell) (*change, bool) {
		if !state.Spells.Cast(input.Rank, input.InstanceID) {
			return nil, false
		}
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceSpells},
			action:      events.ActionCast,
			description: fmt.Sprintf("Cast %s", spellName(spell.SpellID, input.Rank)),
		}, true
	})
}

func (o *orchestrator) spellInstance(ctx context.Context, input *SpellInstanceInput, apply func(*entity.State, entity.PreparedSpell) (*change, bool)) (*SpellActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.InstanceID == "" {
		return nil, errors.InvalidArgument("instance id is required")
	}
	if err := validateRank(input.Rank); err != nil {
		return nil, err
	}

	var applied bool
	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		var spell entity.PreparedSpell
		for _, s := range state.Spells.PreparedAt(input.Rank) {
			if s.InstanceID == input.InstanceID {
				spell = s
				break
			}
		}

		ch, ok := apply(state, spell)
		applied = ok
		return ch, nil
	})
	if err != nil {
		return nil, err
	}

	return &SpellActionOutput{SheetOutput: o.output(state), Applied: applied}, nil
}

// CastDivineFont spends one font slot when any remain
func (o *orchestrator) CastDivineFont(ctx context.Context, input *CastDivineFontInput) (*SpellActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var applied bool
	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		if !state.Spells.CastFont(o.engine, state.Level) {
			return nil, nil
		}
		applied = true

		remaining := o.engine.DivineFontSlots(state.Level) - state.Spells.Font.Used
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceSpells},
			action:      events.ActionCastFont,
			description: fmt.Sprintf("Channeled divine font to cast %s, %d left today", state.Spells.Font.Choice, remaining),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return &SpellActionOutput{SheetOutput: o.output(state), Applied: applied}, nil
}

// SetDivineFontChoice switches the font between heal and harm
func (o *orchestrator) SetDivineFontChoice(ctx context.Context, input *SetDivineFontChoiceInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	choice := rules.FontChoice(strings.ToLower(strings.TrimSpace(string(input.Choice))))
	if !choice.Valid() {
		return nil, errors.InvalidArgumentf("divine font choice must be %s or %s", rules.FontHeal, rules.FontHarm).
			WithMeta("choice", string(input.Choice))
	}

	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		if state.Spells.Font.Choice == choice {
			return nil, nil
		}
		state.Spells.Font.Choice = choice
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceSpells},
			action:      events.ActionFontChoice,
			description: fmt.Sprintf("Turned divine font toward %s", choice),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}

// Rest clears prepared and spent slots and refills the divine font
func (o *orchestrator) Rest(ctx context.Context, input *RestInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		state.Spells.Rest()
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceSpells},
			action:      events.ActionRest,
			description: "Rested and prayed for a new day of spells",
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}

func spellName(spellID string, rank int) string {
	name := strings.ReplaceAll(spellID, "-", " ")
	if rank == 0 {
		return fmt.Sprintf("the cantrip %s", name)
	}
	return name
}
