package cmd

import (
	"context"
	"fmt"
	"strings"

	"secassist/internal"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	chatTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1)

	chatTabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	chatUserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	chatAssistantStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true)

	chatStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the agents in the terminal",
	Long: `Interactive terminal chat.

Tab switches between the MITRE ATT&CK and vulnerability-fixing agents;
enter sends the prompt; ctrl+n starts a new thread; esc quits. The same
session and history directory back the web UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		session := newSession(cfg)
		mitre, vuln, err := buildDispatchers(cfg, session)
		if err != nil {
			return err
		}

		model := newChatModel(session, []chatTab{
			{title: "MITRE ATT&CK", dispatcher: mitre},
			{title: "Vuln Fixing", dispatcher: vuln},
		})

		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

type chatTab struct {
	title      string
	dispatcher *internal.Dispatcher
}

// agentReplyMsg reports a finished dispatch pass
type agentReplyMsg struct {
	tab  int
	sent bool
}

type chatModel struct {
	session *internal.Session
	tabs    []chatTab
	active  int

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	waiting bool
	ready   bool
	width   int
	height  int
}

func newChatModel(session *internal.Session, tabs []chatTab) *chatModel {
	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return &chatModel{
		session: session,
		tabs:    tabs,
		input:   input,
		spinner: sp,
	}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewportHeight := msg.Height - 4
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 4
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if !m.waiting {
				m.active = (m.active + 1) % len(m.tabs)
				m.refreshTranscript()
			}
			return m, nil
		case "ctrl+n":
			if !m.waiting {
				m.session.NewThread()
				m.refreshTranscript()
			}
			return m, nil
		case "enter":
			if m.waiting {
				return m, nil
			}
			prompt := strings.TrimSpace(m.input.Value())
			if prompt == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.waiting = true
			return m, tea.Batch(m.spinner.Tick, m.sendCmd(m.active, prompt))
		}

	case agentReplyMsg:
		m.waiting = false
		m.refreshTranscript()
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var inputCmd, viewportCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, viewportCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, viewportCmd)
}

// sendCmd runs one blocking dispatch pass off the UI loop
func (m *chatModel) sendCmd(tab int, prompt string) tea.Cmd {
	dispatcher := m.tabs[tab].dispatcher
	return func() tea.Msg {
		_, sent := dispatcher.Send(context.Background(), prompt)
		return agentReplyMsg{tab: tab, sent: sent}
	}
}

func (m *chatModel) refreshTranscript() {
	if !m.ready {
		return
	}

	messages := m.tabs[m.active].dispatcher.Messages()
	if len(messages) == 0 {
		m.viewport.SetContent("Start the conversation by typing below.")
		m.viewport.GotoTop()
		return
	}

	var b strings.Builder
	for _, msg := range messages {
		style := chatAssistantStyle
		if msg.Role == internal.RoleUser {
			style = chatUserStyle
		}
		b.WriteString(style.Render(string(msg.Role)))
		b.WriteString("\n")
		b.WriteString(msg.Content)
		b.WriteString("\n\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *chatModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var tabsBar strings.Builder
	for i, tab := range m.tabs {
		if i == m.active {
			tabsBar.WriteString(chatTabActiveStyle.Render(tab.title))
		} else {
			tabsBar.WriteString(chatTabInactiveStyle.Render(tab.title))
		}
	}

	status := chatStatusStyle.Render(fmt.Sprintf("thread: %s", m.session.ActiveThreadID()))
	if m.waiting {
		status = m.spinner.View() + chatStatusStyle.Render("Thinking...")
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s",
		tabsBar.String(),
		m.viewport.View(),
		status,
		m.input.View(),
	)
}
