package cmd

import (
	"fmt"

	"secassist/internal"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <thread-id>",
	Short: "Delete a thread's transcript",
	Long:  `Remove a conversation thread's transcript file from the history directory.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		threadID := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		history := internal.NewHistory(cfg.HistoryDir)
		if history.Remove(threadID) {
			fmt.Printf("Deleted thread %s\n", threadID)
		} else {
			fmt.Printf("No transcript found for thread %s\n", threadID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
