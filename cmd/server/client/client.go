// Package client provides commands for driving the sheet gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Request flags shared by every command
	characterID string
	rawOutput   bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the character sheet service",
	Long:  `Client commands read and change a character by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&characterID, "character", "", "Character id (server default when empty)")
	ClientCmd.PersistentFlags().BoolVar(&rawOutput, "json", false, "Print the raw response as JSON")

	// Sheet commands
	ClientCmd.AddCommand(sheetCmd)
	ClientCmd.AddCommand(levelCmd)
	ClientCmd.AddCommand(hpCmd)
	ClientCmd.AddCommand(profileCmd)
	ClientCmd.AddCommand(notesCmd)
	ClientCmd.AddCommand(resetCmd)

	// Inventory
	ClientCmd.AddCommand(gearCmd)

	// Spellcasting
	ClientCmd.AddCommand(prepareCmd)
	ClientCmd.AddCommand(unprepareCmd)
	ClientCmd.AddCommand(castCmd)
	ClientCmd.AddCommand(fontCmd)
	ClientCmd.AddCommand(fontChoiceCmd)
	ClientCmd.AddCommand(restCmd)

	// Build
	ClientCmd.AddCommand(featCmd)
	ClientCmd.AddCommand(skillCmd)
	ClientCmd.AddCommand(importCmd)
	ClientCmd.AddCommand(exportCmd)

	// Story, portrait and dice
	ClientCmd.AddCommand(storyCmd)
	ClientCmd.AddCommand(portraitCmd)
	ClientCmd.AddCommand(rollCmd)
	ClientCmd.AddCommand(damageCmd)
	ClientCmd.AddCommand(rollsCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createSheetClient creates a sheet service client
func createSheetClient() (*v1alpha1.Client, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// call sends one request and decodes the reply into resp. With --json the
// raw reply is printed and done reports true.
func call(method string, req, resp any) (done bool, err error) {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return false, err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if rawOutput {
		out, err := client.Raw(ctx, method, req)
		if err != nil {
			return false, fmt.Errorf("%s failed: %w", method, err)
		}
		return true, printJSON(out)
	}

	if err := client.Call(ctx, method, req, resp); err != nil {
		return false, fmt.Errorf("%s failed: %w", method, err)
	}
	return false, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
