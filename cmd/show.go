package cmd

import (
	"fmt"

	"secassist/internal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles for show command
	threadHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 1)

	assistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	messageContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <thread-id>",
	Short: "Show a thread's transcript",
	Long:  `Display the full message transcript of a conversation thread.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		threadID := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		history := internal.NewHistory(cfg.HistoryDir)
		messages := history.Load(threadID)

		fmt.Println(threadHeaderStyle.Render(fmt.Sprintf("Thread %s (%d messages)", threadID, len(messages))))

		if len(messages) == 0 {
			fmt.Println("No messages in this thread.")
			return nil
		}

		for _, msg := range messages {
			roleStyle := assistantMessageStyle
			if msg.Role == internal.RoleUser {
				roleStyle = userMessageStyle
			}
			fmt.Println(roleStyle.Render(string(msg.Role)))
			fmt.Println(messageContentStyle.Render(msg.Content))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
