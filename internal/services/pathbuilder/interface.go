// Package pathbuilder converts between character states and the JSON
// export format of the Pathbuilder 2e character builder
package pathbuilder

//go:generate mockgen -destination=mock/mock_converter.go -package=pathbuildermock github.com/KirkDiggler/rpg-sheet/internal/services/pathbuilder Converter

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Converter reads and writes Pathbuilder documents
type Converter interface {
	// Export renders the state, with current (boosted) ability scores and
	// numeric proficiency ranks, as an indented Pathbuilder document
	Export(state *sheet.State) ([]byte, error)

	// Import builds a complete state from a Pathbuilder document.
	// Returns errors.InvalidArgument for unreadable documents
	// Returns errors.FailedPrecondition for builds of an unsupported class
	Import(input *ImportInput) (*ImportOutput, error)
}

// ImportInput holds the raw document and the id the new state gets
type ImportInput struct {
	CharacterID string
	Data        []byte
}

// ImportOutput is the imported state plus what could not be carried over
type ImportOutput struct {
	State *sheet.State
	// Gear names with no catalog entry. They are imported as plain items.
	Unmatched []string
	// Prepared spells dropped because the slot limit was reached
	DroppedSpells []string
}
