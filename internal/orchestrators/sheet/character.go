package sheet

import (
	"context"
	"fmt"
	"slices"
	"strings"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/events"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// SetLevel changes level, then pulls hit points and the spellbook within the
// new level's limits
func (o *orchestrator) SetLevel(ctx context.Context, input *SetLevelInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		from := state.Level
		to := state.SetLevel(input.Level)
		if to == from {
			return nil, nil
		}

		state.SetMaxHP(o.engine.MaxHP(to, state.Abilities))
		state.Spells.Clamp(o.engine, to)

		description := fmt.Sprintf("Reached level %d", to)
		if to < from {
			description = fmt.Sprintf("Dropped back to level %d", to)
		}
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceLevel, sheetrepo.SliceHP, sheetrepo.SliceSpells},
			action:      events.ActionLevel,
			description: description,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}

// AdjustHitPoints applies damage or healing, clamped to [0, max]
func (o *orchestrator) AdjustHitPoints(ctx context.Context, input *AdjustHitPointsInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		before := state.HP.Current
		if input.Value != nil {
			state.SetHP(*input.Value)
		} else {
			state.AdjustHP(input.Delta)
		}

		diff := state.HP.Current - before
		if diff == 0 {
			return nil, nil
		}

		var description string
		switch {
		case state.HP.Current == 0:
			description = fmt.Sprintf("Took %d damage and fell unconscious", -diff)
		case diff < 0:
			description = fmt.Sprintf("Took %d damage", -diff)
		case state.HP.Current == state.HP.Max:
			description = "Healed back to full health"
		default:
			description = fmt.Sprintf("Recovered %d hit points", diff)
		}
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceHP},
			action:      events.ActionHitPoints,
			description: description,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}

// SelectFeat places a feat in its (LevelGained, Type) slot, replacing any
// feat already there
func (o *orchestrator) SelectFeat(ctx context.Context, input *SelectFeatInput) (*SelectFeatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	feat := input.Feat
	feat.Name = strings.TrimSpace(feat.Name)
	feat.Type = strings.ToLower(strings.TrimSpace(feat.Type))
	if feat.FeatKey == "" {
		feat.FeatKey = rules.NormalizeName(feat.Name)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", feat.Name, vb)
	errors.ValidateRequired("type", feat.Type, vb)
	errors.ValidateRange("levelGained", feat.LevelGained, entity.MinLevel, entity.MaxLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var replaced bool
	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		if slices.Contains(state.Feats, feat) {
			return nil, nil
		}
		replaced = state.SelectFeat(feat)
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceFeats},
			action:      events.ActionFeat,
			description: fmt.Sprintf("Learned the %s feat", feat.Name),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return &SelectFeatOutput{SheetOutput: o.output(state), Replaced: replaced}, nil
}

// RemoveFeat clears one feat slot
func (o *orchestrator) RemoveFeat(ctx context.Context, input *RemoveFeatInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	featType := strings.ToLower(strings.TrimSpace(input.Type))

	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		var name string
		for _, f := range state.Feats {
			if f.LevelGained == input.LevelGained && f.Type == featType {
				name = f.Name
				break
			}
		}
		if !state.RemoveFeat(input.LevelGained, featType) {
			return nil, errors.NotFoundf("no %s feat at level %d", featType, input.LevelGained)
		}

		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceFeats},
			action:      events.ActionFeat,
			description: fmt.Sprintf("Forgot the %s feat", name),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}

// SetSkillProficiency records a rank in one skill. Untrained removes the
// entry.
func (o *orchestrator) SetSkillProficiency(ctx context.Context, input *SetSkillProficiencyInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	skill := strings.ToLower(strings.TrimSpace(input.Skill))
	if _, ok := o.progression.Skills[skill]; !ok {
		return nil, errors.InvalidArgumentf("unknown skill %q", input.Skill).WithMeta("skill", input.Skill)
	}
	rank, err := rules.ParseRank(string(input.Rank))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid rank")
	}

	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		if state.SkillRank(skill) == rank {
			return nil, nil
		}

		levelGained := input.LevelGained
		if levelGained == 0 {
			levelGained = state.Level
		}
		state.SetSkill(skill, entity.SkillProficiency{
			Rank:        rank,
			LevelGained: entity.ClampLevel(levelGained),
			Source:      input.Source,
		})

		description := fmt.Sprintf("Became %s in %s", rank, skill)
		if rank == rules.Untrained {
			description = fmt.Sprintf("Lost training in %s", skill)
		}
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceSkills},
			action:      events.ActionSkill,
			description: description,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}

// UpdateProfile changes name and gender
func (o *orchestrator) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, errors.InvalidArgument("name cannot be empty")
	}

	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		before := state.Profile
		if input.Name != nil {
			state.Profile.Name = strings.TrimSpace(*input.Name)
		}
		if input.Gender != nil {
			state.Profile.Gender = strings.TrimSpace(*input.Gender)
		}
		if state.Profile == before {
			return nil, nil
		}

		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceProfile},
			action:      events.ActionProfile,
			description: fmt.Sprintf("Now goes by %s", state.Profile.Name),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}

// SetNotes replaces the notes
func (o *orchestrator) SetNotes(ctx context.Context, input *SetNotesInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		if state.Notes == input.Notes {
			return nil, nil
		}
		state.Notes = input.Notes
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceNotes},
			action:      events.ActionNotes,
			description: "Updated notes",
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}
