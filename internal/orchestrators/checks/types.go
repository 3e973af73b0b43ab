package checks

import (
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
)

// RollCheckInput defines the request for a d20 check
type RollCheckInput struct {
	CharacterID string
	// Check is one of perception, spell-attack, save:<save>, skill:<skill>
	// or attack:<attack key>
	Check string
	// Strike is the attack's position in the turn (1-3) for the multiple
	// attack penalty. Zero means first. Only attack checks use it.
	Strike int
}

// RollCheckOutput defines the response for a d20 check
type RollCheckOutput struct {
	Roll rolllog.Roll
	// Natural is the unmodified d20
	Natural int
}

// RollDamageInput defines the request for a damage roll
type RollDamageInput struct {
	CharacterID string
	Attack      string
	Critical    bool
}

// RollDamageOutput defines the response for a damage roll
type RollDamageOutput struct {
	Roll rolllog.Roll
}

// ListRollsInput defines the request for listing recent rolls
type ListRollsInput struct {
	CharacterID string
	Limit       int
}

// ListRollsOutput contains rolls newest first
type ListRollsOutput struct {
	Rolls []rolllog.Roll
}

// ClearRollsInput defines the request for clearing the roll log
type ClearRollsInput struct {
	CharacterID string
}

// ClearRollsOutput defines the response for clearing the roll log
type ClearRollsOutput struct {
	Cleared int
}
