// Package sheet persists a character's progression state as independent
// slices, one key per slice, so a corrupt slice never costs the others
package sheet

//go:generate mockgen -destination=mock/mock_repository.go -package=sheetrepomock github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet Repository

import (
	"context"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Slice names one independently stored part of the state
type Slice string

// Slices
const (
	SliceLevel     Slice = "level"
	SliceHP        Slice = "hp"
	SliceGear      Slice = "gear"
	SliceSpells    Slice = "spells"
	SliceFeats     Slice = "feats"
	SliceSkills    Slice = "skills"
	SliceStory     Slice = "story"
	SliceProfile   Slice = "profile"
	SliceNotes     Slice = "notes"
	SliceAbilities Slice = "abilities"
)

// AllSlices lists every slice in load order
var AllSlices = []Slice{
	SliceLevel,
	SliceHP,
	SliceGear,
	SliceSpells,
	SliceFeats,
	SliceSkills,
	SliceStory,
	SliceProfile,
	SliceNotes,
	SliceAbilities,
}

// Repository defines the interface for sheet persistence
type Repository interface {
	// Load reads every slice. Missing or malformed slices fall back to the
	// starting defaults and are listed in LoadOutput.Defaulted.
	// Returns errors.InvalidArgument for an empty character id
	// Returns errors.Internal when the store cannot be reached
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save writes the named slices, or all of them when none are named
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes every slice of a character
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// LoadInput defines the input for loading a character
type LoadInput struct {
	CharacterID string
}

// LoadOutput defines the output for loading a character
type LoadOutput struct {
	State     *entity.State
	Defaulted []Slice
}

// IsDefaulted reports whether slice came from the defaults
func (o *LoadOutput) IsDefaulted(slice Slice) bool {
	for _, s := range o.Defaulted {
		if s == slice {
			return true
		}
	}
	return false
}

// IsNew reports whether nothing was stored for the character
func (o *LoadOutput) IsNew() bool {
	return len(o.Defaulted) == len(AllSlices)
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	CharacterID string
	State       *entity.State
	Slices      []Slice
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	Written []Slice
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}
