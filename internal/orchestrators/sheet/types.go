package sheet

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// SheetOutput is returned by every operation that changes the character
type SheetOutput struct {
	Sheet *engine.DerivedSheet
	State *entity.State
}

// GetSheetInput defines the request for reading a character
type GetSheetInput struct {
	CharacterID string
}

// SetLevelInput defines the request for changing level. Out of range levels
// are clamped to 1..20.
type SetLevelInput struct {
	CharacterID string
	Level       int
}

// AdjustHitPointsInput applies Delta, or sets Value when it is non-nil.
// The result is clamped to [0, max].
type AdjustHitPointsInput struct {
	CharacterID string
	Delta       int
	Value       *int
}

// AddGearInput defines a new inventory line. Either Name or CatalogKey is
// required; the catalog entry's name fills in a missing Name.
type AddGearInput struct {
	CharacterID string
	Name        string
	CatalogKey  string
	Quantity    int
	Equipped    bool
	Slot        entity.Slot
	Bulk        *rules.Bulk
	Runes       *rules.Runes
}

// AddGearOutput carries the created item and, when its name matched
// nothing, close catalog keys
type AddGearOutput struct {
	SheetOutput
	Item        entity.GearItem
	Suggestions []string
}

// UpdateGearInput changes the non-nil fields of an item. ClearBulk drops a
// bulk override; a zero Runes value removes the runes.
type UpdateGearInput struct {
	CharacterID string
	ItemID      string
	Name        *string
	Equipped    *bool
	Quantity    *int
	Slot        *entity.Slot
	Bulk        *rules.Bulk
	ClearBulk   bool
	Runes       *rules.Runes
}

// RemoveGearInput defines the request for dropping an item
type RemoveGearInput struct {
	CharacterID string
	ItemID      string
}

// PrepareSpellInput defines the request for preparing a spell at a rank.
// Rank 0 is a cantrip.
type PrepareSpellInput struct {
	CharacterID string
	Rank        int
	SpellID     string
}

// PrepareSpellOutput reports the new instance. Spell is nil when every slot
// at the rank was already used.
type PrepareSpellOutput struct {
	SheetOutput
	Spell *entity.PreparedSpell
}

// SpellInstanceInput names one prepared instance
type SpellInstanceInput struct {
	CharacterID string
	Rank        int
	InstanceID  string
}

// SpellActionOutput reports whether the request changed the spellbook
type SpellActionOutput struct {
	SheetOutput
	Applied bool
}

// CastDivineFontInput defines the request for spending a font slot
type CastDivineFontInput struct {
	CharacterID string
}

// SetDivineFontChoiceInput defines the request for switching heal and harm
type SetDivineFontChoiceInput struct {
	CharacterID string
	Choice      rules.FontChoice
}

// RestInput defines the request for a daily rest
type RestInput struct {
	CharacterID string
}

// SelectFeatInput defines the feat to place in its (LevelGained, Type) slot
type SelectFeatInput struct {
	CharacterID string
	Feat        entity.Feat
}

// SelectFeatOutput reports whether an existing feat was replaced
type SelectFeatOutput struct {
	SheetOutput
	Replaced bool
}

// RemoveFeatInput names the feat slot to clear
type RemoveFeatInput struct {
	CharacterID string
	LevelGained int
	Type        string
}

// SetSkillProficiencyInput defines a skill rank. LevelGained defaults to
// the current level.
type SetSkillProficiencyInput struct {
	CharacterID string
	Skill       string
	Rank        rules.Rank
	LevelGained int
	Source      string
}

// UpdateProfileInput changes the non-nil presentation fields
type UpdateProfileInput struct {
	CharacterID string
	Name        *string
	Gender      *string
}

// SetNotesInput replaces the free-form notes
type SetNotesInput struct {
	CharacterID string
	Notes       string
}

// ListStoryLogsInput defines the request for reading the story log. Limit
// keeps only the newest entries when positive.
type ListStoryLogsInput struct {
	CharacterID string
	Limit       int
}

// ListStoryLogsOutput returns entries oldest first
type ListStoryLogsOutput struct {
	Logs []entity.StoryLog
}

// ClearStoryLogsInput defines the request for emptying the story log
type ClearStoryLogsInput struct {
	CharacterID string
}

// ClearStoryLogsOutput reports how many entries were removed
type ClearStoryLogsOutput struct {
	Cleared int
}

// AppendStoryLogInput adds a generated line to the story log
type AppendStoryLogInput struct {
	CharacterID string
	Log         entity.StoryLog
}

// AppendStoryLogOutput returns the stored entry
type AppendStoryLogOutput struct {
	Log entity.StoryLog
}

// ResetCharacterInput defines the request for starting over
type ResetCharacterInput struct {
	CharacterID string
}

// ImportPathbuilderInput carries a Pathbuilder JSON export
type ImportPathbuilderInput struct {
	CharacterID string
	Data        []byte
}

// ImportPathbuilderOutput lists what the import could not carry over
type ImportPathbuilderOutput struct {
	SheetOutput
	Unmatched     []string
	DroppedSpells []string
}

// ExportPathbuilderInput defines the request for a Pathbuilder export
type ExportPathbuilderInput struct {
	CharacterID string
}

// ExportPathbuilderOutput is the Pathbuilder JSON document
type ExportPathbuilderOutput struct {
	Data []byte
}

// GeneratePortraitInput defines the request for a new avatar
type GeneratePortraitInput struct {
	CharacterID string
}

// GeneratePortraitOutput carries the new avatar URL
type GeneratePortraitOutput struct {
	SheetOutput
	URL string
}
