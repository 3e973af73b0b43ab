// Package sheet implements the character sheet orchestrator. Every mutation
// loads the character, applies the change, writes back only the slices it
// touched and publishes an action event for the chronicle.
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet Service

import (
	"context"
	"log/slog"
	"sync"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/portrait"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/events"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/services/pathbuilder"
)

// MaxStoryLogs is how many story entries are kept per character
const MaxStoryLogs = 100

// Service defines the character sheet operations
type Service interface {
	GetSheet(ctx context.Context, input *GetSheetInput) (*SheetOutput, error)

	// Progression
	SetLevel(ctx context.Context, input *SetLevelInput) (*SheetOutput, error)
	AdjustHitPoints(ctx context.Context, input *AdjustHitPointsInput) (*SheetOutput, error)

	// Inventory
	AddGear(ctx context.Context, input *AddGearInput) (*AddGearOutput, error)
	UpdateGear(ctx context.Context, input *UpdateGearInput) (*SheetOutput, error)
	RemoveGear(ctx context.Context, input *RemoveGearInput) (*SheetOutput, error)

	// Spellcasting
	PrepareSpell(ctx context.Context, input *PrepareSpellInput) (*PrepareSpellOutput, error)
	UnprepareSpell(ctx context.Context, input *SpellInstanceInput) (*SpellActionOutput, error)
	CastSpell(ctx context.Context, input *SpellInstanceInput) (*SpellActionOutput, error)
	CastDivineFont(ctx context.Context, input *CastDivineFontInput) (*SpellActionOutput, error)
	SetDivineFontChoice(ctx context.Context, input *SetDivineFontChoiceInput) (*SheetOutput, error)
	Rest(ctx context.Context, input *RestInput) (*SheetOutput, error)

	// Feats and skills
	SelectFeat(ctx context.Context, input *SelectFeatInput) (*SelectFeatOutput, error)
	RemoveFeat(ctx context.Context, input *RemoveFeatInput) (*SheetOutput, error)
	SetSkillProficiency(ctx context.Context, input *SetSkillProficiencyInput) (*SheetOutput, error)

	// Presentation and story
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*SheetOutput, error)
	SetNotes(ctx context.Context, input *SetNotesInput) (*SheetOutput, error)
	ListStoryLogs(ctx context.Context, input *ListStoryLogsInput) (*ListStoryLogsOutput, error)
	ClearStoryLogs(ctx context.Context, input *ClearStoryLogsInput) (*ClearStoryLogsOutput, error)
	AppendStoryLog(ctx context.Context, input *AppendStoryLogInput) (*AppendStoryLogOutput, error)
	GeneratePortrait(ctx context.Context, input *GeneratePortraitInput) (*GeneratePortraitOutput, error)

	// Whole character
	ResetCharacter(ctx context.Context, input *ResetCharacterInput) (*SheetOutput, error)
	ImportPathbuilder(ctx context.Context, input *ImportPathbuilderInput) (*ImportPathbuilderOutput, error)
	ExportPathbuilder(ctx context.Context, input *ExportPathbuilderInput) (*ExportPathbuilderOutput, error)
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	SheetRepo          sheetrepo.Repository
	Engine             engine.Engine
	Progression        *rules.Progression
	Converter          pathbuilder.Converter
	PortraitClient     portrait.Client
	EventBus           rpgevents.EventBus
	IDGen              idgen.Generator
	Clock              clock.Clock
	DefaultCharacterID string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.SheetRepo == nil {
		vb.RequiredField("SheetRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Progression == nil {
		vb.RequiredField("Progression")
	}
	if c.Converter == nil {
		vb.RequiredField("Converter")
	}
	if c.PortraitClient == nil {
		vb.RequiredField("PortraitClient")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

type orchestrator struct {
	repo        sheetrepo.Repository
	engine      engine.Engine
	progression *rules.Progression
	converter   pathbuilder.Converter
	portraits   portrait.Client
	bus         rpgevents.EventBus
	idGen       idgen.Generator
	clock       clock.Clock
	defaultID   string

	// one writer per character
	locks sync.Map
}

// NewOrchestrator creates a new sheet orchestrator
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
		repo:        cfg.SheetRepo,
		engine:      cfg.Engine,
		progression: cfg.Progression,
		converter:   cfg.Converter,
		portraits:   cfg.PortraitClient,
		bus:         cfg.EventBus,
		idGen:       cfg.IDGen,
		clock:       clk,
		defaultID:   defaultID,
	}, nil
}

// change describes what a mutation touched. A nil change means the request
// was a no-op: nothing of the mutation is written and nothing is published.
type change struct {
	slices      []sheetrepo.Slice
	action      string
	description string
}

func (o *orchestrator) characterID(id string) string {
	if id == "" {
		return o.defaultID
	}
	return id
}

func (o *orchestrator) lock(characterID string) func() {
	mu, _ := o.locks.LoadOrStore(characterID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// load reads the character and brings cached hit points and the spellbook
// in line with the level. The returned slices came from the defaults or were corrected here
// and still need writing.
func (o *orchestrator) load(ctx context.Context, characterID string) (*entity.State, []sheetrepo.Slice, error) {
	out, err := o.repo.Load(ctx, sheetrepo.LoadInput{CharacterID: characterID})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to load character %s", characterID)
	}

	state := out.State
	maxHP := o.engine.MaxHP(state.Level, state.Abilities)
	dirty := append([]sheetrepo.Slice(nil), out.Defaulted...)

	switch {
	case out.IsDefaulted(sheetrepo.SliceHP):
		state.HP = entity.HitPoints{Current: maxHP, Max: maxHP}
	case state.HP.Max != maxHP:
		state.SetMaxHP(maxHP)
		dirty = append(dirty, sheetrepo.SliceHP)
	}

	// a level that fell back to its default can leave spells over the cap
	if state.Spells.Clamp(o.engine, state.Level) && !out.IsDefaulted(sheetrepo.SliceSpells) {
		dirty = append(dirty, sheetrepo.SliceSpells)
	}

	return state, dirty, nil
}

// read loads under the character's lock. Defaulted slices are written on
// first read so generated ids stay stable between calls.
func (o *orchestrator) read(ctx context.Context, characterID string) (*entity.State, error) {
	unlock := o.lock(characterID)
	defer unlock()

	state, dirty, err := o.load(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if len(dirty) == 0 {
		return state, nil
	}

	if _, err := o.repo.Save(ctx, sheetrepo.SaveInput{
		CharacterID: characterID,
		State:       state,
		Slices:      dirty,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", characterID)
	}
	slog.InfoContext(ctx, "initialized character slices",
		"character_id", characterID,
		"slices", dirty)

	return state, nil
}

// mutate runs fn under the character's lock and persists what it reports
func (o *orchestrator) mutate(ctx context.Context, characterID string, fn func(state *entity.State) (*change, error)) (*entity.State, error) {
	unlock := o.lock(characterID)
	defer unlock()

	state, dirty, err := o.load(ctx, characterID)
	if err != nil {
		return nil, err
	}

	ch, err := fn(state)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		ch = &change{}
	}

	slices := mergeSlices(dirty, ch.slices)
	if len(slices) > 0 {
		if _, err := o.repo.Save(ctx, sheetrepo.SaveInput{
			CharacterID: characterID,
			State:       state,
			Slices:      slices,
		}); err != nil {
			return nil, errors.Wrapf(err, "failed to save character %s", characterID)
		}
	}

	o.publish(ctx, characterID, ch)
	return state, nil
}

// publish announces a change. Delivery failures are logged, never returned;
// the state is already saved.
func (o *orchestrator) publish(ctx context.Context, characterID string, ch *change) {
	if ch.action == "" {
		return
	}

	slog.DebugContext(ctx, "sheet action",
		"character_id", characterID,
		"action", ch.action,
		"description", ch.description)

	if err := o.bus.Publish(ctx, events.NewActionEvent(characterID, ch.action, ch.description)); err != nil {
		slog.WarnContext(ctx, "failed to publish sheet action",
			"character_id", characterID,
			"action", ch.action,
			"error", err)
	}
}

func (o *orchestrator) output(state *entity.State) SheetOutput {
	return SheetOutput{
		Sheet: o.engine.Sheet(state),
		State: state,
	}
}

func mergeSlices(lists ...[]sheetrepo.Slice) []sheetrepo.Slice {
	seen := make(map[sheetrepo.Slice]bool)
	var out []sheetrepo.Slice
	for _, list := range lists {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// GetSheet reads a character and computes its sheet
func (o *orchestrator) GetSheet(ctx context.Context, input *GetSheetInput) (*SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.read(ctx, o.characterID(input.CharacterID))
	if err != nil {
		return nil, err
	}

	out := o.output(state)
	return &out, nil
}

var _ Service = (*orchestrator)(nil)
