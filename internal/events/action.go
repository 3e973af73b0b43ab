// Package events defines the sheet action events published on the
// rpg-toolkit bus and the entity wrapper that carries the character id.
package events

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
)

// EventSheetAction is published after every mutation of a character
const EventSheetAction = "rpgsheet.sheet.action"

// Context keys set on action events
const (
	ContextKeyAction      = "action"
	ContextKeyDescription = "description"
)

// Action names
const (
	ActionLevel        = "level"
	ActionHitPoints    = "hit_points"
	ActionGearAdded    = "gear_added"
	ActionGearUpdated  = "gear_updated"
	ActionGearRemoved  = "gear_removed"
	ActionPrepare      = "prepare_spell"
	ActionUnprepare    = "unprepare_spell"
	ActionCast         = "cast_spell"
	ActionCastFont     = "cast_divine_font"
	ActionFontChoice   = "divine_font_choice"
	ActionRest         = "rest"
	ActionFeat         = "feat"
	ActionSkill        = "skill"
	ActionProfile      = "profile"
	ActionNotes        = "notes"
	ActionReset        = "reset"
	ActionImport       = "import"
	ActionPortrait     = "portrait"
	ActionStoryCleared = "story_cleared"
)

// EntityTypeCharacter is the core.Entity type of a sheet character
const EntityTypeCharacter = "character"

// CharacterEntity wraps a character id so it can ride on toolkit events
type CharacterEntity struct {
	ID string
}

// GetID returns the character id
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

var _ core.Entity = (*CharacterEntity)(nil)

// Action is the decoded payload of an action event
type Action struct {
	CharacterID string
	Name        string
	Description string
}

// NewActionEvent builds the toolkit event for one sheet action
func NewActionEvent(characterID, action, description string) rpgevents.Event {
	e := rpgevents.NewGameEvent(EventSheetAction, &CharacterEntity{ID: characterID}, nil)
	e.Context().Set(ContextKeyAction, action)
	e.Context().Set(ContextKeyDescription, description)
	return e
}

// ActionFromEvent decodes an action event. It reports false when the event
// carries no character or no description.
func ActionFromEvent(e rpgevents.Event) (Action, bool) {
	if e == nil || e.Source() == nil {
		return Action{}, false
	}

	out := Action{CharacterID: e.Source().GetID()}
	if v, ok := e.Context().Get(ContextKeyAction); ok {
		out.Name, _ = v.(string)
	}
	if v, ok := e.Context().Get(ContextKeyDescription); ok {
		out.Description, _ = v.(string)
	}

	if out.CharacterID == "" || out.Description == "" {
		return Action{}, false
	}
	return out, true
}
