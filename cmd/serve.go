package cmd

import (
	"fmt"
	"net/http"

	"secassist/internal"
	"secassist/internal/web"

	"github.com/spf13/cobra"
)

var listenAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browser chat UI",
	Long: `Serve the Security Assistant web UI.

The page shows one tab per agent, a sidebar of past conversation
threads, and controls to start, switch, and clear threads. All state
lives in one chat session backed by the history directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if listenAddr != "" {
			cfg.ListenAddr = listenAddr
		}

		session := newSession(cfg)
		mitre, vuln, err := buildDispatchers(cfg, session)
		if err != nil {
			return err
		}

		server := web.NewServer(session, cfg.UserID, []web.Tab{
			{
				ID:          "mitre",
				Title:       "MITRE ATT&CK Assistant",
				Placeholder: "Ask about MITRE ATT&CK, scenarios, or general cybersecurity...",
				Dispatcher:  mitre,
			},
			{
				ID:          "vuln",
				Title:       "Vulnerability Fixing",
				Placeholder: "Ask about vulnerabilities or share code to analyze...",
				Dispatcher:  vuln,
			},
		})

		internal.LogInfo("Security Assistant listening on http://%s", cfg.ListenAddr)
		if err := http.ListenAndServe(cfg.ListenAddr, server.Handler()); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (default \"127.0.0.1:8787\")")
	rootCmd.AddCommand(serveCmd)
}
