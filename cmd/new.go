package cmd

import (
	"fmt"

	"secassist/internal"

	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a fresh thread id",
	Long: `Generate a unique id for a new conversation thread.

The thread has no transcript file until its first message is recorded;
pass the id to the chat front ends to continue under it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(internal.NewThreadID())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
