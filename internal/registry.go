package internal

import (
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const historyExtension = ".json"

// threadIDPrefix tags generated thread ids so they are recognizable in the
// history directory
const threadIDPrefix = "chat_"

// Registry enumerates the threads persisted in a history root
type Registry struct {
	history *History
}

// NewRegistry creates a registry over the given history store
func NewRegistry(h *History) *Registry {
	return &Registry{history: h}
}

// List returns the ids of all persisted threads, recovered by stripping
// the extension from every transcript file name. A missing or unreadable
// directory is non-fatal and yields an empty list with a logged error.
// The result is sorted so a given directory snapshot always lists the
// same way.
func (r *Registry) List() []string {
	entries, err := os.ReadDir(r.history.Root())
	if err != nil {
		storageErr := &StorageError{Path: r.history.Root(), Op: "list", Err: err}
		LogError("Failed to list history files: %v", storageErr)
		return []string{}
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, historyExtension) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, historyExtension))
	}

	sort.Strings(ids)
	return ids
}

// ListPrimary returns the persisted thread ids excluding derived per-agent
// transcripts. A derived transcript belongs to its base thread and is not
// an independently switchable conversation.
func (r *Registry) ListPrimary() []string {
	ids := r.List()
	primary := ids[:0]
	for _, id := range ids {
		if strings.HasSuffix(id, DefaultVulnThreadTag) {
			continue
		}
		primary = append(primary, id)
	}
	return primary
}

// NewThreadID generates a globally unique thread identifier
func NewThreadID() string {
	return threadIDPrefix + uuid.NewString()
}
