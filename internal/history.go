package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// History persists one JSON transcript file per thread under a flat root
// directory. Load and Save never fail: every storage or format problem
// degrades to a safe default and is logged, so a broken file or disk can
// never abort an interaction.
type History struct {
	root string
}

// NewHistory creates a history store rooted at dir. The directory is
// created if absent (idempotent).
func NewHistory(root string) *History {
	if err := os.MkdirAll(root, 0755); err != nil {
		storageErr := &StorageError{Path: root, Op: "create", Err: err}
		LogError("Failed to create history directory: %v", storageErr)
	}
	return &History{root: root}
}

// Root returns the history root directory
func (h *History) Root() string {
	return h.root
}

// FilePath returns the on-disk path for a thread's transcript
func (h *History) FilePath(threadID string) string {
	return filepath.Join(h.root, SanitizeThreadID(threadID)+".json")
}

// Exists reports whether a transcript file exists for the thread
func (h *History) Exists(threadID string) bool {
	_, err := os.Stat(h.FilePath(threadID))
	return err == nil
}

// Load reads a thread's messages. A missing file is an empty history.
// Invalid JSON or a document that is not an array of role/content objects
// degrades to an empty history with a logged warning; any other I/O error
// degrades the same way with a logged error.
func (h *History) Load(threadID string) []Message {
	path := h.FilePath(threadID)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Message{}
		}
		storageErr := &StorageError{Path: path, Op: "read", Err: err}
		LogError("Failed to load history for thread %q: %v", threadID, storageErr)
		return []Message{}
	}

	messages, err := ParseHistory(data)
	if err != nil {
		LogWarn("Invalid format found in %s, starting fresh: %v", path, err)
		return []Message{}
	}

	return messages
}

// Save writes the full message sequence as 2-space indented JSON. The
// document is written to a temporary file and renamed into place, so a
// previously valid transcript is never left half-written. Write failures
// are logged, not returned.
func (h *History) Save(threadID string, messages []Message) {
	path := h.FilePath(threadID)

	if messages == nil {
		messages = []Message{}
	}
	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		LogError("Failed to encode history for thread %q: %v", threadID, err)
		return
	}

	tmp, err := os.CreateTemp(h.root, ".transcript-*.tmp")
	if err != nil {
		storageErr := &StorageError{Path: path, Op: "write", Err: err}
		LogError("Failed to save history for thread %q: %v", threadID, storageErr)
		return
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		storageErr := &StorageError{Path: path, Op: "write", Err: err}
		LogError("Failed to save history for thread %q: %v", threadID, storageErr)
		return
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		storageErr := &StorageError{Path: path, Op: "write", Err: err}
		LogError("Failed to save history for thread %q: %v", threadID, storageErr)
		return
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		storageErr := &StorageError{Path: path, Op: "write", Err: err}
		LogError("Failed to save history for thread %q: %v", threadID, storageErr)
	}
}

// Remove deletes a thread's transcript file. A missing file is reported
// with a warning, not an error; the return value says whether a file was
// actually removed.
func (h *History) Remove(threadID string) bool {
	path := h.FilePath(threadID)

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			LogWarn("History file for thread %q not found for deletion", threadID)
		} else {
			storageErr := &StorageError{Path: path, Op: "delete", Err: err}
			LogError("Could not delete history file: %v", storageErr)
		}
		return false
	}
	return true
}
