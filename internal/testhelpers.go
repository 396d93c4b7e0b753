package internal

// CreateTestMessages returns a short user/assistant exchange
func CreateTestMessages() []Message {
	return []Message{
		{Role: RoleUser, Content: "What is lateral movement?"},
		{Role: RoleAssistant, Content: "Lateral movement covers techniques adversaries use to move through a network."},
	}
}

// CreateTestTranscript returns a transcript with sample messages
func CreateTestTranscript(threadID string) *Transcript {
	return &Transcript{
		ThreadID: threadID,
		Messages: CreateTestMessages(),
	}
}

// CreateTestTranscriptWithMessages returns a transcript with custom messages
func CreateTestTranscriptWithMessages(threadID string, messages []Message) *Transcript {
	return &Transcript{
		ThreadID: threadID,
		Messages: messages,
	}
}
