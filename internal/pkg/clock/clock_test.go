package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

func TestRealClockIsCurrent(t *testing.T) {
	before := time.Now()
	got := clock.New().Now()
	assert.False(t, got.Before(before))
}

func TestFixedClockAdvance(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)

	assert.Equal(t, start, c.Now())
	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())
}
