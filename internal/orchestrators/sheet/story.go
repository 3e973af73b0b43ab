package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/portrait"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/events"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/services/pathbuilder"
)

// ListStoryLogs returns the story log oldest first
func (o *orchestrator) ListStoryLogs(ctx context.Context, input *ListStoryLogsInput) (*ListStoryLogsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.read(ctx, o.characterID(input.CharacterID))
	if err != nil {
		return nil, err
	}

	logs := state.StoryLogs
	if input.Limit > 0 && len(logs) > input.Limit {
		logs = logs[len(logs)-input.Limit:]
	}
	return &ListStoryLogsOutput{Logs: logs}, nil
}

// ClearStoryLogs empties the story log
func (o *orchestrator) ClearStoryLogs(ctx context.Context, input *ClearStoryLogsInput) (*ClearStoryLogsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var cleared int
	_, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		cleared = len(state.StoryLogs)
		if cleared == 0 {
			return nil, nil
		}
		state.StoryLogs = nil
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceStory},
			action:      events.ActionStoryCleared,
			description: "Cleared the story log",
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return &ClearStoryLogsOutput{Cleared: cleared}, nil
}

// AppendStoryLog stores a narrative line. It publishes nothing so the
// chronicle never narrates its own output.
func (o *orchestrator) AppendStoryLog(ctx context.Context, input *AppendStoryLogInput) (*AppendStoryLogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Log.Text) == "" {
		return nil, errors.InvalidArgument("story text is required")
	}

	entry := input.Log
	if entry.ID == "" {
		entry.ID = o.idGen.Generate()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = o.clock.Now()
	}

	_, err := o.mutate(ctx, o.characterID(input.CharacterID), func(state *entity.State) (*change, error) {
		state.StoryLogs = append(state.StoryLogs, entry)
		if over := len(state.StoryLogs) - MaxStoryLogs; over > 0 {
			state.StoryLogs = state.StoryLogs[over:]
		}
		return &change{slices: []sheetrepo.Slice{sheetrepo.SliceStory}}, nil
	})
	if err != nil {
		return nil, err
	}

	return &AppendStoryLogOutput{Log: entry}, nil
}

// GeneratePortrait asks the image service for a new avatar. The request runs
// outside the character lock; only the resulting URL is written. On failure
// the existing avatar is left alone and the error returned.
func (o *orchestrator) GeneratePortrait(ctx context.Context, input *GeneratePortraitInput) (*GeneratePortraitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	characterID := o.characterID(input.CharacterID)

	current, err := o.GetSheet(ctx, &GetSheetInput{CharacterID: characterID})
	if err != nil {
		return nil, err
	}

	gen, err := o.portraits.Generate(ctx, &portrait.GenerateInput{
		Prompt: portrait.BuildPrompt(promptInput(current)),
	})
	if err != nil {
		slog.WarnContext(ctx, "portrait generation failed",
			"character_id", characterID,
			"error", err)
		return nil, errors.Wrap(err, "failed to generate portrait")
	}

	state, err := o.mutate(ctx, characterID, func(state *entity.State) (*change, error) {
		state.Profile.AvatarURL = gen.URL
		return &change{
			slices:      []sheetrepo.Slice{sheetrepo.SliceProfile},
			action:      events.ActionPortrait,
			description: "Sat for a new portrait",
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return &GeneratePortraitOutput{SheetOutput: o.output(state), URL: gen.URL}, nil
}

func promptInput(current *SheetOutput) portrait.PromptInput {
	state := current.State
	in := portrait.PromptInput{
		Name:           state.Profile.Name,
		Gender:         state.Profile.Gender,
		Ancestry:       state.Profile.Ancestry,
		Class:          state.Profile.Class,
		Deity:          state.Profile.Deity,
		Level:          current.Sheet.Level,
		HP:             current.Sheet.HP.Current,
		MaxHP:          current.Sheet.HP.Max,
		PreparedSpells: state.Spells.PreparedCount(),
	}
	for _, g := range state.EquippedGear() {
		in.Equipped = append(in.Equipped, g.Name)
	}
	return in
}

// ResetCharacter discards everything stored and starts from the defaults
func (o *orchestrator) ResetCharacter(ctx context.Context, input *ResetCharacterInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	characterID := o.characterID(input.CharacterID)

	unlock := o.lock(characterID)
	defer unlock()

	if _, err := o.repo.Delete(ctx, sheetrepo.DeleteInput{CharacterID: characterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to reset character %s", characterID)
	}

	state, _, err := o.load(ctx, characterID)
	if err != nil {
		return nil, err
	}
	ch := &change{
		action:      events.ActionReset,
		description: "Started a new adventure from scratch",
	}
	if err := o.replace(ctx, characterID, state, ch); err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}

// ImportPathbuilder replaces the character with a Pathbuilder build. The
// stored state is untouched unless the whole document converts. Story,
// notes and avatar survive the import.
func (o *orchestrator) ImportPathbuilder(ctx context.Context, input *ImportPathbuilderInput) (*ImportPathbuilderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	characterID := o.characterID(input.CharacterID)

	imported, err := o.converter.Import(&pathbuilder.ImportInput{
		CharacterID: characterID,
		Data:        input.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to import pathbuilder build")
	}

	unlock := o.lock(characterID)
	defer unlock()

	current, _, err := o.load(ctx, characterID)
	if err != nil {
		return nil, err
	}

	state := imported.State
	state.CharacterID = characterID
	state.StoryLogs = current.StoryLogs
	state.Notes = current.Notes
	state.Profile.AvatarURL = current.Profile.AvatarURL
	state.SetMaxHP(o.engine.MaxHP(state.Level, state.Abilities))

	ch := &change{
		action:      events.ActionImport,
		description: fmt.Sprintf("Arrived as %s, a level %d %s", state.Profile.Name, state.Level, state.Profile.Class),
	}
	if err := o.replace(ctx, characterID, state, ch); err != nil {
		return nil, err
	}

	return &ImportPathbuilderOutput{
		SheetOutput:   o.output(state),
		Unmatched:     imported.Unmatched,
		DroppedSpells: imported.DroppedSpells,
	}, nil
}

// replace writes every slice. Callers hold the character lock.
func (o *orchestrator) replace(ctx context.Context, characterID string, state *entity.State, ch *change) error {
	if _, err := o.repo.Save(ctx, sheetrepo.SaveInput{
		CharacterID: characterID,
		State:       state,
	}); err != nil {
		return errors.Wrapf(err, "failed to save character %s", characterID)
	}

	o.publish(ctx, characterID, ch)
	return nil
}

// ExportPathbuilder renders the character as a Pathbuilder document
func (o *orchestrator) ExportPathbuilder(ctx context.Context, input *ExportPathbuilderInput) (*ExportPathbuilderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.read(ctx, o.characterID(input.CharacterID))
	if err != nil {
		return nil, err
	}

	data, err := o.converter.Export(state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export pathbuilder build")
	}

	return &ExportPathbuilderOutput{Data: data}, nil
}
