// Package rolllog keeps a short, expiring history of check and damage rolls
// per character
package rolllog

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rolllogmock github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log Repository

// Kind separates d20 checks from damage rolls
type Kind string

// Kinds
const (
	KindCheck  Kind = "check"
	KindDamage Kind = "damage"
)

// Roll is one logged roll
type Roll struct {
	// Unique identifier for this roll
	ID string `json:"id"`

	Kind Kind `json:"kind"`

	// What was rolled, e.g. "perception", "save:fortitude", "attack:horn"
	Check string `json:"check"`

	// Human-readable description of the roll
	Label string `json:"label"`

	// Dice notation that was rolled (e.g., "1d20+9", "2d8+7")
	Expression string `json:"expression"`

	// Individual dice values that were rolled
	Dice []int `json:"dice"`

	// Modifier applied to get final total
	Modifier int `json:"modifier"`

	// Final result after applying modifiers
	Total int `json:"total"`

	RolledAt time.Time `json:"rolledAt"`
}

// AppendInput contains the roll to store
type AppendInput struct {
	CharacterID string
	Roll        Roll
}

// AppendOutput contains the stored roll
type AppendOutput struct {
	Roll Roll
}

// ListInput contains parameters for listing rolls
type ListInput struct {
	CharacterID string
	// Limit caps the result; zero returns everything retained
	Limit int
}

// ListOutput contains rolls newest first
type ListOutput struct {
	Rolls []Roll
}

// ClearInput contains parameters for clearing a log
type ClearInput struct {
	CharacterID string
}

// ClearOutput reports how many rolls were dropped
type ClearOutput struct {
	Cleared int
}

// Repository defines the interface for roll log storage operations
type Repository interface {
	// Append stores a roll, trimming the log to its maximum size and
	// refreshing its expiry
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the retained rolls, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear removes the whole log
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}
