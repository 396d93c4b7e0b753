package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"secassist/testutil"
)

func TestExportCommand_InvalidFormat(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	rootCmd.SetArgs([]string{"export", "--history-dir", dir, "--format", "invalid"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("export with an unsupported format should error")
	}
}

func TestExportCommand_WritesFiles(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	outDir := filepath.Join(testutil.CreateTempDir(t), "exports")
	testutil.CreateHistoryFixture(t, dir)

	rootCmd.SetArgs([]string{"export", "--history-dir", dir, "--format", "md", "--out", outDir})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("reading output directory: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("export wrote %d files, want 3", len(entries))
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".md" {
			t.Errorf("exported file %q should have .md extension", entry.Name())
		}
	}
}

func TestExportCommand_SingleThread(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	outDir := filepath.Join(testutil.CreateTempDir(t), "exports")
	testutil.CreateHistoryFixture(t, dir)

	rootCmd.SetArgs([]string{"export", "start-here", "--history-dir", dir, "--format", "json", "--out", outDir})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "start-here.json"))
	if err != nil {
		t.Fatalf("expected exported file: %v", err)
	}
	if !bytes.Contains(data, []byte("T1059")) {
		t.Error("exported transcript should contain the thread's messages")
	}
}
