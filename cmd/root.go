package cmd

import (
	"fmt"
	"os"

	"secassist/internal"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	historyDir string
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "secassist",
	Short: "Chat with the MITRE ATT&CK and vulnerability-fixing agents",
	Long: `Security Assistant - a local chat front end for two security agents.

Messages are routed to a MITRE ATT&CK knowledge agent or a
vulnerability-fixing agent, and every conversation thread is persisted
as a JSON transcript in the history directory.

Quick Start:
  secassist serve                 # Open the browser chat UI
  secassist chat                  # Chat in the terminal
  secassist list                  # List saved conversation threads
  secassist show <thread-id>      # View a thread's transcript
  secassist export --format md    # Export transcripts as Markdown
  secassist search <term>         # Search across all transcripts`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&historyDir, "history-dir", "", "History directory (default \"chat_history\")")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig reads the config file (when set) and applies flag overrides
func loadConfig() (internal.Config, error) {
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if historyDir != "" {
		cfg.HistoryDir = historyDir
	}
	return cfg, nil
}

// newSession builds the history store and session state for cfg
func newSession(cfg internal.Config) *internal.Session {
	return internal.NewSession(internal.NewHistory(cfg.HistoryDir), cfg.DefaultThreadID)
}

// buildDispatchers constructs the two agent dispatch loops sharing one session
func buildDispatchers(cfg internal.Config, session *internal.Session) (mitre, vuln *internal.Dispatcher, err error) {
	mitreAgent, err := internal.NewAgentFromConfig(cfg.Agent("mitre"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build mitre agent: %w", err)
	}
	vulnAgent, err := internal.NewAgentFromConfig(cfg.Agent("vuln"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build vuln agent: %w", err)
	}

	mitre = internal.NewDispatcher(mitreAgent, session, internal.DispatcherOptions{
		Name:    "mitre",
		UserID:  cfg.UserID,
		Timeout: cfg.AgentTimeout(),
	})
	vuln = internal.NewDispatcher(vulnAgent, session, internal.DispatcherOptions{
		Name:         "vuln",
		UserID:       cfg.UserID,
		Timeout:      cfg.AgentTimeout(),
		ThreadSuffix: internal.DefaultVulnThreadTag,
	})
	return mitre, vuln, nil
}
