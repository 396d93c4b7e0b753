package internal

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Dispatcher runs the send loop for one agent: record the user message,
// invoke the agent, record the reply. Transitions are strictly sequential
// and blocking; there is one dispatcher per agent, both sharing the same
// session. A dispatcher with a thread suffix keeps its transcripts beside
// the base thread under a derived id, so both agents persist through the
// same thread-keyed path while their conversations stay separate.
type Dispatcher struct {
	agent   Agent
	session *Session

	name    string
	userID  string
	timeout time.Duration
	suffix  string
}

// DispatcherOptions parameterizes a dispatcher
type DispatcherOptions struct {
	// Name identifies the agent in logs and error surrogates
	Name string
	// UserID is passed through to every agent invocation
	UserID string
	// Timeout bounds one agent invocation; zero means no deadline
	Timeout time.Duration
	// ThreadSuffix derives this agent's transcript id from the active
	// thread id
	ThreadSuffix string
}

// NewDispatcher binds an agent to a session
func NewDispatcher(agent Agent, session *Session, opts DispatcherOptions) *Dispatcher {
	return &Dispatcher{
		agent:   agent,
		session: session,
		name:    opts.Name,
		userID:  opts.UserID,
		timeout: opts.Timeout,
		suffix:  opts.ThreadSuffix,
	}
}

// Name returns the agent's display name
func (d *Dispatcher) Name() string {
	return d.name
}

// ThreadID returns the transcript id this dispatcher currently writes to
func (d *Dispatcher) ThreadID() string {
	return d.session.ActiveThreadID() + d.suffix
}

// Messages returns the current transcript for rendering
func (d *Dispatcher) Messages() []Message {
	return d.session.GetOrLoad(d.ThreadID())
}

// Send runs one full dispatch pass: append and persist the user message,
// invoke the agent, append and persist the assistant reply (or an error
// surrogate when the invocation fails). It returns the recorded assistant
// message. Blank prompts are ignored and reported as not sent.
func (d *Dispatcher) Send(ctx context.Context, prompt string) (Message, bool) {
	if strings.TrimSpace(prompt) == "" {
		return Message{}, false
	}

	threadID := d.ThreadID()
	d.session.AppendAndPersist(threadID, Message{Role: RoleUser, Content: prompt})

	reply := Message{
		Role: RoleAssistant,
		// the agent sees the base thread identity, not the derived
		// transcript id
		Content: d.invoke(ctx, prompt, d.session.ActiveThreadID()),
	}
	d.session.AppendAndPersist(threadID, reply)

	return reply, true
}

// invoke calls the agent under the configured deadline and flattens every
// failure mode into displayable text
func (d *Dispatcher) invoke(ctx context.Context, prompt, threadID string) string {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := d.agent.Invoke(ctx, prompt, threadID, d.userID)
	if err != nil {
		agentErr := &AgentError{Agent: d.name, ThreadID: threadID, Err: err}
		LogError("Agent invocation failed: %v", agentErr)
		return fmt.Sprintf("Sorry, an error occurred: %v", err)
	}

	LogDebug("Agent %s replied for thread %q in %s", d.name, threadID, time.Since(start))

	text := resp.DisplayText()
	if text == "" {
		return "*No response generated.*"
	}
	return text
}
