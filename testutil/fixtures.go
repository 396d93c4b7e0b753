package testutil

import "testing"

// UserMessage builds a user message map for fixtures
func UserMessage(content string) map[string]interface{} {
	return map[string]interface{}{"role": "user", "content": content}
}

// AssistantMessage builds an assistant message map for fixtures
func AssistantMessage(content string) map[string]interface{} {
	return map[string]interface{}{"role": "assistant", "content": content}
}

// CreateHistoryFixture populates a history directory with a few threads
// and returns their ids
func CreateHistoryFixture(t *testing.T, dir string) []string {
	t.Helper()

	WriteThreadFile(t, dir, "start-here", []map[string]interface{}{
		UserMessage("What is T1059?"),
		AssistantMessage("T1059 is Command and Scripting Interpreter."),
	})
	WriteThreadFile(t, dir, "chat_incident-review", []map[string]interface{}{
		UserMessage("Summarize the phishing playbook."),
		AssistantMessage("Initial access via spearphishing, then credential harvesting."),
	})
	WriteThreadFile(t, dir, "empty-thread", []map[string]interface{}{})

	return []string{"chat_incident-review", "empty-thread", "start-here"}
}
