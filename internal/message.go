package internal

import (
	"encoding/json"
	"fmt"
)

// Role identifies the author of a transcript message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single transcript entry. Messages are immutable once
// created; ordering within a thread is chronological and append-only.
type Message struct {
	Role    Role   `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// Transcript is the export view of one thread
type Transcript struct {
	ThreadID string    `json:"thread_id" yaml:"thread_id"`
	Messages []Message `json:"messages" yaml:"messages"`
}

// MessageCount returns the number of messages in the transcript
func (t *Transcript) MessageCount() int {
	return len(t.Messages)
}

// ParseHistory decodes a persisted transcript. The document must be a JSON
// array of objects each carrying both a "role" and a "content" string;
// anything else is rejected so corrupt files can degrade to an empty
// history at the call site.
func ParseHistory(data []byte) ([]Message, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &HistoryFormatError{Reason: fmt.Sprintf("not a JSON array of objects: %v", err)}
	}

	messages := make([]Message, 0, len(raw))
	for i, obj := range raw {
		roleField, ok := obj["role"]
		if !ok {
			return nil, &HistoryFormatError{Reason: fmt.Sprintf("message %d has no role field", i)}
		}
		contentField, ok := obj["content"]
		if !ok {
			return nil, &HistoryFormatError{Reason: fmt.Sprintf("message %d has no content field", i)}
		}

		var msg Message
		if err := json.Unmarshal(roleField, &msg.Role); err != nil {
			return nil, &HistoryFormatError{Reason: fmt.Sprintf("message %d has a non-string role: %v", i, err)}
		}
		if err := json.Unmarshal(contentField, &msg.Content); err != nil {
			return nil, &HistoryFormatError{Reason: fmt.Sprintf("message %d has a non-string content: %v", i, err)}
		}
		messages = append(messages, msg)
	}

	return messages, nil
}
