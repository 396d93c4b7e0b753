package web

import (
	"html/template"
	"net/http"
	"net/url"
	"sync"

	"secassist/internal"
)

// Tab describes one agent tab of the chat page
type Tab struct {
	ID          string
	Title       string
	Placeholder string
	Dispatcher  *internal.Dispatcher
}

// Server is the browser front end: a sidebar of persisted threads plus one
// chat tab per agent, all backed by a single chat session. Interactions
// are serialized with a mutex; the application is single-session, one
// writer at a time.
type Server struct {
	mu      sync.Mutex
	session *internal.Session
	userID  string
	tabs    []Tab
	tmpl    *template.Template
}

// NewServer builds the front end over a session and its agent tabs
func NewServer(session *internal.Session, userID string, tabs []Tab) *Server {
	return &Server{
		session: session,
		userID:  userID,
		tabs:    tabs,
		tmpl:    template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Handler returns the route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/send", s.handleSend)
	mux.HandleFunc("/threads/new", s.handleNewThread)
	mux.HandleFunc("/threads/switch", s.handleSwitchThread)
	mux.HandleFunc("/threads/delete", s.handleDeleteThread)
	return mux
}

type tabView struct {
	ID          string
	Title       string
	Placeholder string
	Active      bool
	Messages    []internal.Message
}

type pageData struct {
	ActiveThread string
	UserID       string
	Threads      []string
	Tabs         []tabView
	ActiveTab    string
}

func (s *Server) buildPage(activeTab string) pageData {
	if !s.validTab(activeTab) {
		activeTab = s.tabs[0].ID
	}

	page := pageData{
		ActiveThread: s.session.ActiveThreadID(),
		UserID:       s.userID,
		Threads:      s.session.Registry().ListPrimary(),
		ActiveTab:    activeTab,
	}

	for _, tab := range s.tabs {
		view := tabView{
			ID:          tab.ID,
			Title:       tab.Title,
			Placeholder: tab.Placeholder,
			Active:      tab.ID == activeTab,
		}
		if view.Active {
			view.Messages = tab.Dispatcher.Messages()
		}
		page.Tabs = append(page.Tabs, view)
	}

	return page
}

func (s *Server) validTab(id string) bool {
	for _, tab := range s.tabs {
		if tab.ID == id {
			return true
		}
	}
	return false
}

func (s *Server) dispatcherFor(id string) *internal.Dispatcher {
	for _, tab := range s.tabs {
		if tab.ID == id {
			return tab.Dispatcher
		}
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	s.mu.Lock()
	page := s.buildPage(r.URL.Query().Get("tab"))
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, page); err != nil {
		internal.LogError("Failed to render chat page: %v", err)
	}
}

func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	tabID := r.FormValue("tab")
	prompt := r.FormValue("prompt")

	s.mu.Lock()
	dispatcher := s.dispatcherFor(tabID)
	if dispatcher == nil {
		s.mu.Unlock()
		http.Error(w, "unknown tab", http.StatusBadRequest)
		return
	}
	// blocking dispatch: append user message, invoke agent, append reply
	dispatcher.Send(r.Context(), prompt)
	s.mu.Unlock()

	redirectToTab(w, r, tabID)
}

func (s *Server) handleNewThread(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	s.mu.Lock()
	s.session.NewThread()
	s.mu.Unlock()

	redirectToTab(w, r, r.FormValue("tab"))
}

func (s *Server) handleSwitchThread(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	threadID := r.FormValue("thread")
	if threadID == "" {
		http.Error(w, "thread is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.session.SwitchActive(threadID)
	s.mu.Unlock()

	redirectToTab(w, r, r.FormValue("tab"))
}

func (s *Server) handleDeleteThread(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	s.mu.Lock()
	s.session.DeleteThread(s.session.ActiveThreadID())
	s.mu.Unlock()

	redirectToTab(w, r, r.FormValue("tab"))
}

func redirectToTab(w http.ResponseWriter, r *http.Request, tabID string) {
	target := "/"
	if tabID != "" {
		target = "/?tab=" + url.QueryEscape(tabID)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
