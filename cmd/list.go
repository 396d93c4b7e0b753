package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"secassist/internal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved conversation threads",
	Long:  `List all conversation threads persisted in the history directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		history := internal.NewHistory(cfg.HistoryDir)
		registry := internal.NewRegistry(history)

		threadIDs := registry.ListPrimary()
		if len(threadIDs) == 0 {
			fmt.Println("No past conversations found.")
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Conversations (%d)", len(threadIDs))))
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "THREAD\tMESSAGES\tUPDATED")
		for _, threadID := range threadIDs {
			messages := history.Load(threadID)

			updated := ""
			if info, err := os.Stat(history.FilePath(threadID)); err == nil {
				updated = info.ModTime().Format("2006-01-02 15:04")
			}

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				idStyle.Render(threadID),
				countStyle.Render(fmt.Sprintf("%d", len(messages))),
				dateStyle.Render(updated),
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
