package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"secassist/internal"
	"secassist/internal/export"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutDir string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [thread-id]",
	Short: "Export transcripts to file",
	Long: `Export conversation transcripts to various formats (jsonl, md, yaml, json).

Without an argument every persisted thread is exported. Use
'secassist list' to see available thread ids.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		history := internal.NewHistory(cfg.HistoryDir)
		registry := internal.NewRegistry(history)

		var threadIDs []string
		if len(args) == 1 {
			threadIDs = []string{args[0]}
		} else {
			threadIDs = registry.List()
		}
		if len(threadIDs) == 0 {
			fmt.Println("No past conversations found.")
			return nil
		}

		if err := os.MkdirAll(exportOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		exported := 0
		for _, threadID := range threadIDs {
			transcript := &internal.Transcript{
				ThreadID: threadID,
				Messages: history.Load(threadID),
			}

			name := internal.SanitizeThreadID(threadID) + "." + exporter.Extension()
			path := filepath.Join(exportOutDir, name)

			if err := writeExport(exporter, transcript, path); err != nil {
				internal.LogWarn("Failed to export thread %s: %v", threadID, err)
				continue
			}
			exported++
			fmt.Printf("Exported %s -> %s\n", threadID, path)
		}

		fmt.Printf("Exported %d of %d threads\n", exported, len(threadIDs))
		return nil
	},
}

func writeExport(exporter export.Exporter, transcript *internal.Transcript, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	if err := exporter.Export(transcript, f); err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "exports", "Output directory")
	rootCmd.AddCommand(exportCmd)
}
