package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"secassist/internal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	matchThreadStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	matchRoleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	matchContentStyle = lipgloss.NewStyle().
				Padding(0, 2)
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search across all transcripts",
	Long: `Search every persisted conversation for a term.

Transcripts are indexed into a local SQLite archive, rebuilt from the
history directory on each run, then queried for matching messages.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		history := internal.NewHistory(cfg.HistoryDir)
		registry := internal.NewRegistry(history)

		archive, err := internal.OpenArchive(cfg.ResolvedArchivePath())
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer func() { _ = archive.Close() }()

		indexed, err := archive.Rebuild(history, registry)
		if err != nil {
			return fmt.Errorf("failed to index transcripts: %w", err)
		}
		internal.LogDebug("Indexed %d threads", indexed)

		results, err := archive.Search(term)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(results) == 0 {
			threads, messages, statsErr := archive.Stats()
			if statsErr != nil {
				return fmt.Errorf("search failed: %w", statsErr)
			}
			fmt.Printf("No matches for %q in %d messages across %d threads\n", term, messages, threads)
			return nil
		}

		currentThread := ""
		for _, res := range results {
			if res.ThreadID != currentThread {
				currentThread = res.ThreadID
				fmt.Println(matchThreadStyle.Render(currentThread))
			}
			fmt.Printf("  %s %s\n",
				matchRoleStyle.Render("["+string(res.Role)+"]"),
				matchContentStyle.Render(excerpt(res.Content, term)),
			)
		}
		fmt.Printf("\n%d matching messages\n", len(results))
		return nil
	},
}

// excerpt trims long content to a window around the first match
func excerpt(content, term string) string {
	const window = 60

	idx := strings.Index(strings.ToLower(content), strings.ToLower(term))
	if idx < 0 {
		idx = 0
	}

	start := idx - window
	if start < 0 {
		start = 0
	}
	for start > 0 && !utf8.RuneStart(content[start]) {
		start--
	}
	end := idx + len(term) + window
	if end > len(content) {
		end = len(content)
	}
	for end < len(content) && !utf8.RuneStart(content[end]) {
		end++
	}

	out := content[start:end]
	out = strings.ReplaceAll(out, "\n", " ")
	if start > 0 {
		out = "..." + out
	}
	if end < len(content) {
		out = out + "..."
	}
	return out
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
