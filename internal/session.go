package internal

import "sync"

// Session is the mutable state of one running chat session: the active
// thread pointer plus a write-through cache of thread histories layered
// over the History store. It is an explicit object rather than package
// state, so several sessions can coexist in one process.
type Session struct {
	mu sync.Mutex

	history       *History
	registry      *Registry
	defaultThread string

	active  string
	threads map[string][]Message
}

// NewSession creates a session whose active thread starts at the
// configured default id. No history is loaded until first access.
func NewSession(h *History, defaultThreadID string) *Session {
	return &Session{
		history:       h,
		registry:      NewRegistry(h),
		defaultThread: defaultThreadID,
		active:        defaultThreadID,
		threads:       make(map[string][]Message),
	}
}

// History returns the underlying store
func (s *Session) History() *History {
	return s.history
}

// Registry returns the thread registry over the same store
func (s *Session) Registry() *Registry {
	return s.registry
}

// ActiveThreadID returns the current active thread pointer
func (s *Session) ActiveThreadID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SwitchActive moves the active thread pointer. It does not load the
// thread; the next GetOrLoad does.
func (s *Session) SwitchActive(threadID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = threadID
}

// GetOrLoad returns the cached message sequence for a thread, loading it
// from the store on first access. Once loaded (even to empty), the cached
// copy is the session's source of truth and the store is not read again.
func (s *Session) GetOrLoad(threadID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrLoadLocked(threadID)
}

func (s *Session) getOrLoadLocked(threadID string) []Message {
	if messages, ok := s.threads[threadID]; ok {
		return messages
	}

	LogDebug("Loading history for thread: %s", threadID)
	messages := s.history.Load(threadID)
	s.threads[threadID] = messages
	return messages
}

// AppendAndPersist appends a message to the cached sequence and
// immediately writes the full updated sequence back to the store, so the
// cache and disk never diverge beyond a single atomic overwrite.
func (s *Session) AppendAndPersist(threadID string, msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := append(s.getOrLoadLocked(threadID), msg)
	s.threads[threadID] = messages
	s.history.Save(threadID, messages)
}

// NewThread generates a fresh unique thread id, registers an empty
// in-memory sequence for it, and makes it the active thread. No file is
// written until the first message is appended.
func (s *Session) NewThread() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	threadID := NewThreadID()
	s.threads[threadID] = []Message{}
	s.active = threadID
	LogInfo("Started new chat: %s", threadID)
	return threadID
}

// DeleteThread removes the thread's transcript file if present, along with
// the derived per-agent transcript stored beside it, evicts both cached
// sequences, and resets the active pointer to the default thread id.
func (s *Session) DeleteThread(threadID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.history.Remove(threadID) {
		LogInfo("History for thread %q cleared and file deleted", threadID)
	}
	delete(s.threads, threadID)

	derived := threadID + DefaultVulnThreadTag
	if s.history.Exists(derived) && s.history.Remove(derived) {
		LogInfo("History for derived thread %q cleared and file deleted", derived)
	}
	delete(s.threads, derived)

	s.active = s.defaultThread
}
