// Package tui provides the interactive contact shell: a Bubble Tea model for
// terminals and a plain line-oriented fallback for pipes and scripts.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contactbook/internal/command"
)

// Executor runs one command line. Implemented by *command.Handler.
type Executor interface {
	Execute(line string) command.Reply
}

// Entry is one submitted line and its reply.
type Entry struct {
	Input string
	Reply command.Reply
}

// Model is the Bubble Tea model for the interactive shell.
type Model struct {
	exec     Executor
	prompt   string
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     shellKeys
	history  []Entry
	width    int
	ready    bool // Set after the first WindowSizeMsg sizes the viewport.
	quitting bool
}

// ModelOption configures optional Model settings.
type ModelOption func(*Model)

// WithPrompt sets the prompt shown before each input line.
func WithPrompt(prompt string) ModelOption {
	return func(m *Model) {
		m.prompt = prompt
	}
}

// NewModel creates a shell Model that sends submitted lines to exec.
func NewModel(exec Executor, opts ...ModelOption) Model {
	m := Model{
		exec:     exec,
		prompt:   "Enter a command: ",
		viewport: viewport.New(80, 20),
		help:     help.New(),
		keys:     ShellKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	ti := textinput.New()
	ti.Prompt = promptStyle.Render(m.prompt)
	ti.Placeholder = "help"
	ti.Focus()
	m.input = ti
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = msg.Width - len(m.prompt) - 1
		m.viewport.Width = msg.Width
		// Leave room for the input line, a spacer, and the help bar.
		m.viewport.Height = max(msg.Height-3, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input line and records the reply.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	reply := m.exec.Execute(line)
	m.history = append(m.history, Entry{Input: line, Reply: reply})
	m.refresh()

	if reply.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// refresh re-renders the transcript into the viewport and scrolls to the end.
func (m *Model) refresh() {
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

// History returns the submitted lines and replies so far.
func (m Model) History() []Entry {
	return m.history
}

// transcript renders every entry as a prompt line followed by its reply.
func (m Model) transcript() string {
	var b strings.Builder
	for _, e := range m.history {
		b.WriteString(promptStyle.Render(m.prompt))
		b.WriteString(inputStyle.Render(e.Input))
		b.WriteString("\n")
		if e.Reply.Text == "" {
			continue
		}
		style := replyStyle
		switch {
		case e.Reply.Err:
			style = errorStyle
		case e.Reply.Exit:
			style = exitStyle
		}
		b.WriteString(style.Render(e.Reply.Text))
		b.WriteString("\n")
	}
	return b.String()
}

// View renders the transcript, the input line, and the help bar.
func (m Model) View() string {
	var body string
	if m.ready {
		body = m.viewport.View()
	} else {
		body = m.transcript()
	}
	if m.quitting {
		return body + "\n"
	}
	return body + "\n" + m.input.View() + "\n" + m.help.View(m.keys)
}
