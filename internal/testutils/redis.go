// Package testutils provides helpers shared by package tests: in-memory
// Redis and ready-made character states.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/redis"
)

// CreateTestRedisClient creates a client against an in-memory Redis that is
// closed when the test ends. The miniredis handle allows direct inspection
// and fast-forwarding of TTLs.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}

// CreateTestRedisClientWithData creates an in-memory Redis client after
// letting setupFunc populate the server
func CreateTestRedisClientWithData(t *testing.T, setupFunc func(mr *miniredis.Miniredis)) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	if setupFunc != nil {
		setupFunc(mr)
	}

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
