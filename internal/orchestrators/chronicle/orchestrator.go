// Package chronicle narrates sheet actions. Actions arriving within the
// debounce window are coalesced into one narrative request per character
// and the result is appended to that character's story log.
package chronicle

//go:generate mockgen -destination=mock/mock_service.go -package=chroniclemock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/chronicle Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/narrative"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/events"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/debounce"
)

// DefaultWindow is the quiet period before a batch is narrated
const DefaultWindow = 3 * time.Second

// subscriberPriority runs the chronicle after any rule handlers
const subscriberPriority = 100

// quietActions are bookkeeping changes that make poor story lines
var quietActions = map[string]bool{
	events.ActionNotes:        true,
	events.ActionStoryCleared: true,
}

// Service defines the chronicle lifecycle
type Service interface {
	// Start subscribes to sheet actions. Batches run on ctx until Stop.
	Start(ctx context.Context) error

	// Flush narrates the pending batch now and waits for it
	Flush(ctx context.Context) error

	// Stop unsubscribes, cancels any in-flight request and drops whatever
	// is still pending
	Stop()
}

// Config holds the dependencies for the chronicle
type Config struct {
	EventBus        rpgevents.EventBus
	SheetService    sheet.Service
	NarrativeClient narrative.Client
	Window          time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}
	if c.NarrativeClient == nil {
		vb.RequiredField("NarrativeClient")
	}
	if c.Window < 0 {
		vb.Field("Window", "cannot be negative")
	}

	return vb.Build()
}

// run is one in-flight narrative batch
type run struct {
	cancel  context.CancelFunc
	actions []events.Action
}

type orchestrator struct {
	bus      rpgevents.EventBus
	sheets   sheet.Service
	narrator narrative.Client
	batcher  *debounce.Batcher[events.Action]
	window   time.Duration
	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	subID    string
	current  *run
	inflight sync.WaitGroup
}

// NewOrchestrator creates a new chronicle
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	window := cfg.Window
	if window == 0 {
		window = DefaultWindow
	}

	o := &orchestrator{
		bus:      cfg.EventBus,
		sheets:   cfg.SheetService,
		narrator: cfg.NarrativeClient,
		window:   window,
	}
	o.batcher = debounce.New(window, o.fire)
	return o, nil
}

func (o *orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.subID != "" {
		return errors.FailedPrecondition("chronicle already started")
	}

	o.ctx, o.cancel = context.WithCancel(context.WithoutCancel(ctx))
	o.subID = o.bus.SubscribeFunc(events.EventSheetAction, subscriberPriority, o.handle)

	slog.InfoContext(ctx, "chronicle started", "window", o.window)
	return nil
}

func (o *orchestrator) handle(ctx context.Context, e rpgevents.Event) error {
	action, ok := events.ActionFromEvent(e)
	if !ok || quietActions[action.Name] {
		return nil
	}

	slog.DebugContext(ctx, "queued action for the chronicle",
		"character_id", action.CharacterID,
		"action", action.Name)
	o.batcher.Add(action)
	return nil
}

func (o *orchestrator) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		o.batcher.Flush()
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "flush interrupted")
	}
}

func (o *orchestrator) Stop() {
	o.mu.Lock()
	if o.subID != "" {
		if err := o.bus.Unsubscribe(o.subID); err != nil {
			slog.Warn("failed to unsubscribe chronicle", "error", err)
		}
		o.subID = ""
	}
	if o.cancel != nil {
		o.cancel()
	}
	o.mu.Unlock()

	if dropped := o.batcher.Stop(); len(dropped) > 0 {
		slog.Warn("chronicle stopped with pending actions", "dropped", len(dropped))
	}
	o.inflight.Wait()
}

// fire narrates one batch. A batch still in flight is cancelled and its
// actions are folded into this one.
func (o *orchestrator) fire(batch []events.Action) {
	o.mu.Lock()
	base := o.ctx
	if base == nil {
		o.mu.Unlock()
		return
	}
	if prev := o.current; prev != nil {
		prev.cancel()
		if len(prev.actions) > 0 {
			batch = append(append([]events.Action(nil), prev.actions...), batch...)
		}
		slog.Debug("superseded in-flight narrative", "requeued", len(prev.actions))
	}
	ctx, cancel := context.WithCancel(base)
	r := &run{cancel: cancel, actions: batch}
	o.current = r
	o.inflight.Add(1)
	o.mu.Unlock()

	defer o.inflight.Done()
	defer cancel()

	for _, group := range groupByCharacter(batch) {
		if !o.narrate(ctx, r, group) {
			return
		}
	}

	o.mu.Lock()
	if o.current == r {
		o.current = nil
	}
	o.mu.Unlock()
}

// narrate generates and stores one story line. It returns false when the
// run was superseded or stopped and should be abandoned.
func (o *orchestrator) narrate(ctx context.Context, r *run, group actionGroup) bool {
	current, err := o.sheets.GetSheet(ctx, &sheet.GetSheetInput{CharacterID: group.characterID})
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		slog.ErrorContext(ctx, "failed to read character for narrative",
			"character_id", group.characterID,
			"error", err)
		return true
	}

	gen, err := o.narrator.Generate(ctx, &narrative.GenerateInput{
		Character: character(current),
		Actions:   group.descriptions(),
	})
	if err != nil {
		if errors.GetCode(err) == errors.CodeCanceled {
			return false
		}
		slog.ErrorContext(ctx, "narrative request rejected",
			"character_id", group.characterID,
			"error", err)
		return true
	}

	// a result that lost the race to a newer batch is discarded. Claiming the
	// actions under the same lock keeps a superseding batch from repeating them.
	o.mu.Lock()
	if o.current != r {
		o.mu.Unlock()
		return false
	}
	r.actions = withoutCharacter(r.actions, group.characterID)
	o.mu.Unlock()

	_, err = o.sheets.AppendStoryLog(ctx, &sheet.AppendStoryLogInput{
		CharacterID: group.characterID,
		Log: entity.StoryLog{
			Text:     gen.Text,
			Actions:  group.descriptions(),
			Fallback: gen.Fallback,
		},
	})
	if err != nil {
		o.release(r, group)
		if ctx.Err() != nil {
			return false
		}
		slog.ErrorContext(ctx, "failed to store story line",
			"character_id", group.characterID,
			"error", err)
		return true
	}

	slog.InfoContext(ctx, "chronicled actions",
		"character_id", group.characterID,
		"actions", len(group.actions),
		"fallback", gen.Fallback)
	return true
}

// release hands back actions whose story line was never stored. A run that
// was superseded meanwhile has already passed its actions on, so these go
// back to the batcher instead.
func (o *orchestrator) release(r *run, group actionGroup) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == r {
		r.actions = append(r.actions, group.actions...)
		return
	}
	o.batcher.Requeue(group.actions)
	slog.Debug("requeued actions of a superseded narrative",
		"character_id", group.characterID,
		"actions", len(group.actions))
}

type actionGroup struct {
	characterID string
	actions     []events.Action
}

func (g actionGroup) descriptions() []string {
	out := make([]string, len(g.actions))
	for i, a := range g.actions {
		out[i] = a.Description
	}
	return out
}

// groupByCharacter splits a batch by character, keeping first-seen order
func groupByCharacter(batch []events.Action) []actionGroup {
	var groups []actionGroup
	index := make(map[string]int)
	for _, a := range batch {
		i, ok := index[a.CharacterID]
		if !ok {
			i = len(groups)
			index[a.CharacterID] = i
			groups = append(groups, actionGroup{characterID: a.CharacterID})
		}
		groups[i].actions = append(groups[i].actions, a)
	}
	return groups
}

func withoutCharacter(actions []events.Action, characterID string) []events.Action {
	var out []events.Action
	for _, a := range actions {
		if a.CharacterID != characterID {
			out = append(out, a)
		}
	}
	return out
}

func character(out *sheet.SheetOutput) narrative.Character {
	state := out.State
	c := narrative.Character{
		Name:     state.Profile.Name,
		Gender:   state.Profile.Gender,
		Ancestry: state.Profile.Ancestry,
		Class:    state.Profile.Class,
		Level:    state.Level,
		HP:       state.HP.Current,
		MaxHP:    state.HP.Max,
	}
	for _, g := range state.EquippedGear() {
		c.Equipped = append(c.Equipped, g.Name)
	}
	return c
}

var _ Service = (*orchestrator)(nil)
