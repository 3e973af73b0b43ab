package events_test

import (
	"context"
	"testing"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/events"
)

func TestActionEventRoundTrip(t *testing.T) {
	e := events.NewActionEvent("char_1", events.ActionCast, "Cast heal")

	action, ok := events.ActionFromEvent(e)
	require.True(t, ok)
	assert.Equal(t, events.Action{
		CharacterID: "char_1",
		Name:        events.ActionCast,
		Description: "Cast heal",
	}, action)
	assert.Equal(t, events.EntityTypeCharacter, e.Source().GetType())
}

func TestActionFromEventRejectsIncompleteEvents(t *testing.T) {
	_, ok := events.ActionFromEvent(nil)
	assert.False(t, ok)

	noSource := rpgevents.NewGameEvent(events.EventSheetAction, nil, nil)
	_, ok = events.ActionFromEvent(noSource)
	assert.False(t, ok)

	noDescription := events.NewActionEvent("char_1", events.ActionRest, "")
	_, ok = events.ActionFromEvent(noDescription)
	assert.False(t, ok)
}

func TestActionEventDeliveredThroughBus(t *testing.T) {
	bus := rpgevents.NewBus()

	var got []events.Action
	bus.SubscribeFunc(events.EventSheetAction, 50, func(_ context.Context, e rpgevents.Event) error {
		if a, ok := events.ActionFromEvent(e); ok {
			got = append(got, a)
		}
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), events.NewActionEvent("char_1", events.ActionRest, "Took a long rest")))

	require.Len(t, got, 1)
	assert.Equal(t, "Took a long rest", got[0].Description)
}
