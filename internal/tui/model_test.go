package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/smileynet/contactbook/internal/command"
)

// fakeExecutor returns canned replies and records every line it receives.
type fakeExecutor struct {
	replies map[string]command.Reply
	lines   []string
}

func (f *fakeExecutor) Execute(line string) command.Reply {
	f.lines = append(f.lines, line)
	if r, ok := f.replies[line]; ok {
		return r
	}
	return command.Reply{Text: "ok: " + line}
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{replies: map[string]command.Reply{
		"hello": {Text: "How can I help you?"},
		"bad":   {Text: "Invalid command.", Err: true},
		"exit":  {Text: "Good bye!", Exit: true},
	}}
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// submitLine sets the input and presses enter.
func submitLine(m Model, line string) (Model, tea.Cmd) {
	m.input.SetValue(line)
	next, cmd := m.Update(enter())
	return next.(Model), cmd
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(newFakeExecutor())

	if m.prompt != "Enter a command: " {
		t.Errorf("prompt = %q, want default", m.prompt)
	}
	if !m.input.Focused() {
		t.Error("input should be focused")
	}
	if len(m.History()) != 0 {
		t.Errorf("history = %d entries, want 0", len(m.History()))
	}
	if m.Init() == nil {
		t.Error("Init() should return the cursor blink Cmd")
	}
}

func TestNewModel_WithPrompt(t *testing.T) {
	m := NewModel(newFakeExecutor(), WithPrompt(">> "))
	if m.prompt != ">> " {
		t.Errorf("prompt = %q, want %q", m.prompt, ">> ")
	}
}

func TestModel_Submit_RecordsReply(t *testing.T) {
	exec := newFakeExecutor()
	m := NewModel(exec)

	m, cmd := submitLine(m, "hello")

	if cmd != nil {
		t.Error("a normal reply should not quit")
	}
	if m.input.Value() != "" {
		t.Errorf("input = %q, want cleared", m.input.Value())
	}
	hist := m.History()
	if len(hist) != 1 {
		t.Fatalf("history = %d entries, want 1", len(hist))
	}
	if hist[0].Input != "hello" || hist[0].Reply.Text != "How can I help you?" {
		t.Errorf("history[0] = %+v", hist[0])
	}
	if !strings.Contains(m.View(), "How can I help you?") {
		t.Errorf("View() should show the reply, got:\n%s", m.View())
	}
}

func TestModel_Submit_BlankLineIgnored(t *testing.T) {
	exec := newFakeExecutor()
	m := NewModel(exec)

	m, _ = submitLine(m, "   ")

	if len(exec.lines) != 0 {
		t.Errorf("executor called with %q, want no calls", exec.lines)
	}
	if len(m.History()) != 0 {
		t.Error("blank line should not be recorded")
	}
}

func TestModel_Submit_ExitQuits(t *testing.T) {
	m := NewModel(newFakeExecutor())

	m, cmd := submitLine(m, "exit")

	if cmd == nil {
		t.Fatal("exit reply should produce a quit Cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("exit reply Cmd should yield tea.QuitMsg")
	}
	if !m.quitting {
		t.Error("model should be quitting")
	}
	if strings.Contains(m.View(), "scroll up") {
		t.Error("quitting view should not render the help bar")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			m := NewModel(newFakeExecutor())
			next, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatal("quit key should produce a Cmd")
			}
			if !next.(Model).quitting {
				t.Error("model should be quitting")
			}
		})
	}
}

func TestModel_LetterKeysReachInput(t *testing.T) {
	m := NewModel(newFakeExecutor())

	for _, r := range "jk q" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}

	if m.input.Value() != "jk q" {
		t.Errorf("input = %q, want %q", m.input.Value(), "jk q")
	}
	if m.quitting {
		t.Error("letter keys must not quit")
	}
}

func TestModel_WindowSizeMsg(t *testing.T) {
	m := NewModel(newFakeExecutor())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated := next.(Model)

	if updated.width != 120 {
		t.Errorf("width = %d, want 120", updated.width)
	}
	if updated.viewport.Height != 37 {
		t.Errorf("viewport height = %d, want 37", updated.viewport.Height)
	}
	if !updated.ready {
		t.Error("model should be ready after WindowSizeMsg")
	}
}

func TestModel_Transcript_StylesErrors(t *testing.T) {
	m := NewModel(newFakeExecutor())
	m, _ = submitLine(m, "bad")
	m, _ = submitLine(m, "hello")

	out := m.transcript()
	if !strings.Contains(out, "Invalid command.") {
		t.Errorf("transcript missing error reply:\n%s", out)
	}
	if strings.Index(out, "Invalid command.") > strings.Index(out, "How can I help you?") {
		t.Error("transcript should keep submission order")
	}
	if !m.History()[0].Reply.Err {
		t.Error("first entry should be an error reply")
	}
}

// TestModel_Teatest_Session drives a full session through teatest.
func TestModel_Teatest_Session(t *testing.T) {
	exec := newFakeExecutor()
	m := NewModel(exec)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	tm.Type("hello")
	tm.Send(enter())
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("How can I help you?"))
	}, teatest.WithDuration(2*time.Second))

	tm.Type("add John 1234567890")
	tm.Send(enter())
	tm.Type("exit")
	tm.Send(enter())

	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	want := []string{"hello", "add John 1234567890", "exit"}
	hist := final.History()
	if len(hist) != len(want) {
		t.Fatalf("history = %d entries, want %d", len(hist), len(want))
	}
	for i, line := range want {
		if hist[i].Input != line {
			t.Errorf("history[%d].Input = %q, want %q", i, hist[i].Input, line)
		}
	}
	if !final.quitting {
		t.Error("final model should be quitting")
	}
}
