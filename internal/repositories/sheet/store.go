package sheet

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/kvstore"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const keyPrefix = "sheet:"

// Config holds the dependencies of the repository
type Config struct {
	Store    kvstore.Store
	Defaults *rules.Defaults
	IDGen    idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Store == nil {
		vb.RequiredField("store")
	}
	if c.Defaults == nil {
		vb.RequiredField("defaults")
	}
	if c.IDGen == nil {
		vb.RequiredField("id_gen")
	}
	return vb.Build()
}

type repository struct {
	store    kvstore.Store
	defaults *rules.Defaults
	idGen    idgen.Generator
}

// New creates a sheet repository on top of a key-value store
func New(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &repository{
		store:    cfg.Store,
		defaults: cfg.Defaults,
		idGen:    cfg.IDGen,
	}, nil
}

var _ Repository = (*repository)(nil)

// Key returns the store key of one slice
func Key(characterID string, slice Slice) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, characterID, slice)
}

func (r *repository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character id is required")
	}

	state := entity.NewState(input.CharacterID, r.defaults, r.idGen)
	out := &LoadOutput{State: state}

	for _, slice := range AllSlices {
		data, err := r.store.Get(ctx, Key(input.CharacterID, slice))
		if err != nil {
			if errors.IsNotFound(err) {
				out.Defaulted = append(out.Defaulted, slice)
				continue
			}
			return nil, errors.Wrapf(err, "failed to load %s slice", slice)
		}

		if err := decodeSlice(state, slice, data); err != nil {
			slog.WarnContext(ctx, "discarding malformed sheet slice",
				"character_id", input.CharacterID,
				"slice", slice,
				"error", err)
			resetSlice(state, slice, r.defaults, r.idGen)
			out.Defaulted = append(out.Defaulted, slice)
		}
	}

	normalize(state)

	return out, nil
}

func (r *repository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character id is required")
	}
	if input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	toWrite := input.Slices
	if len(toWrite) == 0 {
		toWrite = AllSlices
	}

	out := &SaveOutput{}
	for _, slice := range toWrite {
		data, err := encodeSlice(input.State, slice)
		if err != nil {
			return out, err
		}
		if err := r.store.Set(ctx, Key(input.CharacterID, slice), data); err != nil {
			return out, errors.Wrapf(err, "failed to save %s slice", slice)
		}
		out.Written = append(out.Written, slice)
	}

	slog.DebugContext(ctx, "saved sheet slices",
		"character_id", input.CharacterID,
		"slices", out.Written)

	return out, nil
}

func (r *repository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character id is required")
	}

	keys := make([]string, len(AllSlices))
	for i, slice := range AllSlices {
		keys[i] = Key(input.CharacterID, slice)
	}

	if err := r.store.Delete(ctx, keys...); err != nil {
		return nil, errors.Wrap(err, "failed to delete sheet")
	}

	return &DeleteOutput{}, nil
}

// ParseKey splits a store key into its character id and slice
func ParseKey(key string) (string, Slice, bool) {
	rest, ok := strings.CutPrefix(key, keyPrefix)
	if !ok {
		return "", "", false
	}
	i := strings.LastIndex(rest, ":")
	if i <= 0 {
		return "", "", false
	}
	slice := Slice(rest[i+1:])
	if !slices.Contains(AllSlices, slice) {
		return "", "", false
	}
	return rest[:i], slice, true
}

// ValidateSlice reports whether data is a slice value Load would keep
func ValidateSlice(slice Slice, data []byte) error {
	return decodeSlice(&entity.State{}, slice, data)
}

// target returns the field of state that holds slice
func target(state *entity.State, slice Slice) (any, error) {
	switch slice {
	case SliceLevel:
		return &state.Level, nil
	case SliceHP:
		return &state.HP, nil
	case SliceGear:
		return &state.Gear, nil
	case SliceSpells:
		return &state.Spells, nil
	case SliceFeats:
		return &state.Feats, nil
	case SliceSkills:
		return &state.Skills, nil
	case SliceStory:
		return &state.StoryLogs, nil
	case SliceProfile:
		return &state.Profile, nil
	case SliceNotes:
		return &state.Notes, nil
	case SliceAbilities:
		return &state.Abilities, nil
	default:
		return nil, errors.InvalidArgumentf("unknown slice %q", slice)
	}
}

func encodeSlice(state *entity.State, slice Slice) ([]byte, error) {
	field, err := target(state, slice)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(field)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s slice", slice)
	}
	return data, nil
}

// decodeSlice decodes into a scratch state so a failed decode leaves the
// default in place
func decodeSlice(state *entity.State, slice Slice, data []byte) error {
	scratch := &entity.State{}
	field, err := target(scratch, slice)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, field); err != nil {
		return err
	}
	if err := checkSlice(scratch, slice); err != nil {
		return err
	}

	copySlice(state, scratch, slice)
	return nil
}

// checkSlice rejects values that decode but cannot be right
func checkSlice(state *entity.State, slice Slice) error {
	switch slice {
	case SliceHP:
		if state.HP.Current < 0 || state.HP.Max < 0 {
			return fmt.Errorf("negative hit points")
		}
	case SliceGear:
		for _, g := range state.Gear {
			if g.ID == "" {
				return fmt.Errorf("gear item without id")
			}
		}
	case SliceSkills:
		for key, prof := range state.Skills {
			if !prof.Rank.Valid() {
				return fmt.Errorf("skill %s has unknown rank %q", key, prof.Rank)
			}
		}
	case SliceAbilities:
		for a := range state.Abilities {
			if !a.Valid() {
				return fmt.Errorf("unknown ability %q", a)
			}
		}
	}
	return nil
}

// resetSlice restores a single slice to its starting value
func resetSlice(state *entity.State, slice Slice, d *rules.Defaults, ids idgen.Generator) {
	copySlice(state, entity.NewState(state.CharacterID, d, ids), slice)
}

func copySlice(dst, src *entity.State, slice Slice) {
	switch slice {
	case SliceLevel:
		dst.Level = src.Level
	case SliceHP:
		dst.HP = src.HP
	case SliceGear:
		dst.Gear = src.Gear
	case SliceSpells:
		dst.Spells = src.Spells
	case SliceFeats:
		dst.Feats = src.Feats
	case SliceSkills:
		dst.Skills = src.Skills
	case SliceStory:
		dst.StoryLogs = src.StoryLogs
	case SliceProfile:
		dst.Profile = src.Profile
	case SliceNotes:
		dst.Notes = src.Notes
	case SliceAbilities:
		dst.Abilities = src.Abilities
	}
}

// normalize repairs values that decode cleanly but sit out of range
func normalize(state *entity.State) {
	state.Level = entity.ClampLevel(state.Level)

	for _, a := range rules.AllAbilities {
		if _, ok := state.Abilities[a]; !ok {
			if state.Abilities == nil {
				state.Abilities = make(map[rules.Ability]int, len(rules.AllAbilities))
			}
			state.Abilities[a] = 10
		}
	}

	if state.Skills == nil {
		state.Skills = make(map[string]entity.SkillProficiency)
	}
	if state.Spells.Prepared == nil {
		state.Spells.Prepared = make(map[string][]entity.PreparedSpell)
	}
	if state.Spells.Expended == nil {
		state.Spells.Expended = make(map[string][]entity.PreparedSpell)
	}
	if !state.Spells.Font.Choice.Valid() {
		state.Spells.Font.Choice = rules.FontHeal
	}
	if state.Spells.Font.Used < 0 {
		state.Spells.Font.Used = 0
	}
}
