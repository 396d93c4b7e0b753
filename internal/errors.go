package internal

import "fmt"

// StorageError represents errors accessing the history directory
type StorageError struct {
	Path string
	Op   string // "create", "read", "write", "delete", "list"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// HistoryFormatError represents a persisted transcript that is not a valid
// message array
type HistoryFormatError struct {
	Reason string
}

func (e *HistoryFormatError) Error() string {
	return fmt.Sprintf("history format error: %s", e.Reason)
}

// AgentError represents a failed agent invocation
type AgentError struct {
	Agent    string
	ThreadID string
	Err      error
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("agent error [%s] thread %s: %v", e.Agent, e.ThreadID, e.Err)
}

func (e *AgentError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ArchiveError represents errors in the transcript search index
type ArchiveError struct {
	Op  string // "open", "index", "search"
	Err error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive error: %s: %v", e.Op, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}
