// Package main is the entry point for the character sheet server and its
// command line client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-sheet",
	Short: "Character sheet gRPC server",
	Long:  `rpg-sheet serves a single cleric's character sheet over gRPC: level, hit points, gear, spells, feats, skills and a narrated story log.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
