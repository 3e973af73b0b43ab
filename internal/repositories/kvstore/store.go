// Package kvstore provides the key-value persistence the sheet repositories
// are built on. Values are opaque byte strings, usually JSON.
package kvstore

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_store.go -package=kvstoremock github.com/KirkDiggler/rpg-sheet/internal/repositories/kvstore Store

// Store is a flat key-value store
type Store interface {
	// Get returns the value stored at key, or a NotFound error
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value at key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
