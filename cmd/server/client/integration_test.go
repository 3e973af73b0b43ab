//go:build integration

package client

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

// connect dials the server named by GRPC_SERVER_ADDRESS
func connect(t *testing.T) *v1alpha1.Client {
	t.Helper()

	addr := os.Getenv("GRPC_SERVER_ADDRESS")
	if addr == "" {
		addr = "localhost:50051"
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Logf("Failed to close connection: %v", err)
		}
	})

	return v1alpha1.NewClient(conn)
}

func TestSheetRoundTripIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client := connect(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	charID := "it_" + time.Now().Format("150405.000000")

	var sheet v1alpha1.SheetResponse
	require.NoError(t, client.Call(ctx, v1alpha1.MethodGetSheet, v1alpha1.CharacterRequest{CharacterID: charID}, &sheet))
	require.NotNil(t, sheet.Sheet)
	require.NotNil(t, sheet.Sheet.Combat)
	assert.Equal(t, charID, sheet.State.CharacterID)
	assert.Equal(t, sheet.Sheet.HP.Max, sheet.Sheet.HP.Current)

	damage := -3
	require.NoError(t, client.Call(ctx, v1alpha1.MethodAdjustHitPoints, v1alpha1.AdjustHitPointsRequest{
		CharacterID: charID,
		Delta:       damage,
	}, &sheet))
	assert.Equal(t, sheet.Sheet.HP.Max-3, sheet.Sheet.HP.Current)

	require.NoError(t, client.Call(ctx, v1alpha1.MethodSetLevel, v1alpha1.SetLevelRequest{
		CharacterID: charID,
		Level:       25,
	}, &sheet))
	assert.Equal(t, 20, sheet.Sheet.Level, "level is clamped")

	var roll v1alpha1.RollResponse
	require.NoError(t, client.Call(ctx, v1alpha1.MethodRollCheck, v1alpha1.RollCheckRequest{
		CharacterID: charID,
		Check:       "perception",
	}, &roll))
	assert.GreaterOrEqual(t, roll.Natural, 1)
	assert.LessOrEqual(t, roll.Natural, 20)
	assert.Equal(t, roll.Natural+sheet.Sheet.Combat.Perception.Value, roll.Roll.Total)

	var rolls v1alpha1.RollsResponse
	require.NoError(t, client.Call(ctx, v1alpha1.MethodListRolls, v1alpha1.LimitRequest{CharacterID: charID, Limit: 1}, &rolls))
	require.Len(t, rolls.Rolls, 1)
	assert.Equal(t, roll.Roll.ID, rolls.Rolls[0].ID)

	require.NoError(t, client.Call(ctx, v1alpha1.MethodResetCharacter, v1alpha1.CharacterRequest{CharacterID: charID}, &sheet))
	assert.Equal(t, sheet.Sheet.HP.Max, sheet.Sheet.HP.Current)
}

func TestErrorsKeepTheirCodesIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client := connect(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := client.Call(ctx, v1alpha1.MethodRemoveGear, v1alpha1.ItemRequest{ItemID: "gear_missing"}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err), "got %v", err)

	err = client.Call(ctx, v1alpha1.MethodRollCheck, v1alpha1.RollCheckRequest{Check: "skill:basket-weaving"}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
}
