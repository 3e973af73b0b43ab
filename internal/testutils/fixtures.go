package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// TestCharacterID is the character id used by fixtures
const TestCharacterID = "char_test"

// Tables returns the embedded rule tables
func Tables(t *testing.T) *rules.Tables {
	t.Helper()

	tables, err := rules.Load()
	require.NoError(t, err, "failed to load rule tables")
	return tables
}

// DefaultState returns the starting character with sequential gear ids
// (gear_1, gear_2, ...) and hit points filled in as maxHP
func DefaultState(t *testing.T, maxHP int) *sheet.State {
	t.Helper()

	tables := Tables(t)
	state := sheet.NewState(TestCharacterID, tables.Defaults, idgen.NewSequential("gear"))
	state.HP = sheet.HitPoints{Current: maxHP, Max: maxHP}
	return state
}
