package client

import (
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	storyLimit int
	storyClear bool
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Show the story log, or clear it with --clear",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if storyClear {
			var resp v1alpha1.ClearedResponse
			done, err := call(v1alpha1.MethodClearStoryLogs, v1alpha1.CharacterRequest{CharacterID: characterID}, &resp)
			if err != nil || done {
				return err
			}
			fmt.Printf("🧹 Cleared %d story entries\n", resp.Cleared)
			return nil
		}

		var resp v1alpha1.StoryLogsResponse
		done, err := call(v1alpha1.MethodListStoryLogs, v1alpha1.LimitRequest{
			CharacterID: characterID,
			Limit:       storyLimit,
		}, &resp)
		if err != nil || done {
			return err
		}

		fmt.Printf("\n📖 Story:\n")
		if len(resp.Logs) == 0 {
			fmt.Printf("  (nothing yet)\n")
		}
		for _, entry := range resp.Logs {
			fmt.Printf("\n[%s] %s\n", entry.CreatedAt.Format("Jan 2 15:04"), entry.Text)
			for _, a := range entry.Actions {
				fmt.Printf("  - %s\n", a)
			}
		}
		return nil
	},
}

var portraitCmd = &cobra.Command{
	Use:   "portrait",
	Short: "Generate a new character portrait",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.PortraitResponse
		done, err := call(v1alpha1.MethodGeneratePortrait, v1alpha1.CharacterRequest{CharacterID: characterID}, &resp)
		if err != nil || done {
			return err
		}
		fmt.Printf("🖼️  Portrait: %s\n", resp.URL)
		return nil
	},
}

func init() {
	storyCmd.Flags().IntVar(&storyLimit, "limit", 0, "Show only the newest entries")
	storyCmd.Flags().BoolVar(&storyClear, "clear", false, "Clear the story log")
}
