package internal

import (
	"context"
	"fmt"
	"strings"
)

// Agent is the contract an external conversational agent exposes: one
// blocking request/response call carrying the prompt and the thread and
// user identity. Implementations may fail; dispatch converts failures to
// user-visible error surrogates.
type Agent interface {
	Invoke(ctx context.Context, prompt, threadID, userID string) (Response, error)
}

// AgentFunc adapts a plain function to the Agent interface
type AgentFunc func(ctx context.Context, prompt, threadID, userID string) (Response, error)

// Invoke calls f
func (f AgentFunc) Invoke(ctx context.Context, prompt, threadID, userID string) (Response, error) {
	return f(ctx, prompt, threadID, userID)
}

// Response normalizes the reply shapes the agents produce behind a single
// displayable-text accessor.
type Response interface {
	// DisplayText returns the text shown to the user. Empty means the
	// agent produced no displayable reply.
	DisplayText() string
}

// TextResponse is a plain text reply, the knowledge agent's shape
type TextResponse string

// DisplayText returns the reply text
func (r TextResponse) DisplayText() string {
	return string(r)
}

// AgentMessage is one entry of a structured agent reply
type AgentMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// MessageListResponse is a structured reply, the fixer agent's shape. The
// displayable text is the first message typed "ai".
type MessageListResponse struct {
	Messages []AgentMessage `json:"messages"`
}

// DisplayText returns the content of the first "ai" message, or empty
// when the reply carries none
func (r MessageListResponse) DisplayText() string {
	for _, msg := range r.Messages {
		if msg.Type == "ai" {
			return msg.Content
		}
	}
	return ""
}

// ScriptedAgent replies from a canned prompt table, falling back to a
// fixed reply for prompts it does not know. It stands in for an external
// agent in the built-in front ends and in tests.
type ScriptedAgent struct {
	Replies  map[string]string
	Fallback string
}

// Invoke looks the prompt up in the reply table
func (a *ScriptedAgent) Invoke(ctx context.Context, prompt, threadID, userID string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if reply, ok := a.Replies[strings.TrimSpace(prompt)]; ok {
		return TextResponse(reply), nil
	}
	if a.Fallback != "" {
		return TextResponse(a.Fallback), nil
	}
	return TextResponse(""), nil
}

// EchoAgent repeats the prompt back. Default stand-in when no agent
// backend is configured.
type EchoAgent struct {
	Prefix string
}

// Invoke returns the prompt, prefixed
func (a *EchoAgent) Invoke(ctx context.Context, prompt, threadID, userID string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return TextResponse(a.Prefix + prompt), nil
}

// NewAgentFromConfig builds the agent backend selected by an agent config
// block. This is the injection point for real agent gateways.
func NewAgentFromConfig(cfg AgentConfig) (Agent, error) {
	switch cfg.Kind {
	case "", "echo":
		return &EchoAgent{Prefix: cfg.Prefix}, nil
	case "scripted":
		return &ScriptedAgent{Replies: cfg.Replies, Fallback: cfg.Fallback}, nil
	default:
		return nil, fmt.Errorf("unsupported agent kind: %s (supported: echo, scripted)", cfg.Kind)
	}
}
