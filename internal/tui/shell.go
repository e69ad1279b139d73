package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Shell reads command lines, runs them, and shows the replies until the
// input ends or a command asks to exit.
type Shell interface {
	Run(ctx context.Context) error
}

// ShellOptions configures shell creation.
type ShellOptions struct {
	In         io.Reader // Input source (default: os.Stdin).
	Out        io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force the plain line shell even on a TTY.
	Prompt     string    // Prompt shown before each line.
	Executor   Executor  // Runs each command line.
}

// NewShell returns a TUI shell when both In and Out are terminals, or a
// plain line shell otherwise. ForcePlain overrides TTY detection.
func NewShell(opts ShellOptions) Shell {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.In) || !isTTY(opts.Out) {
		return &PlainShell{in: opts.In, out: opts.Out, prompt: opts.Prompt, exec: opts.Executor}
	}

	return &TUIShell{in: opts.In, out: opts.Out, prompt: opts.Prompt, exec: opts.Executor}
}

// isTTY reports whether v is an *os.File connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainShell is a line-at-a-time shell for pipes, scripts, and dumb terminals.
type PlainShell struct {
	in     io.Reader
	out    io.Writer
	prompt string
	exec   Executor
}

// Run reads lines until EOF, an exit reply, or context cancellation.
// Cancellation is only observed between lines.
func (s *PlainShell) Run(ctx context.Context) error {
	sc := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprint(s.out, s.prompt)
		if !sc.Scan() {
			_, _ = fmt.Fprintln(s.out)
			if err := sc.Err(); err != nil {
				return fmt.Errorf("shell: reading input: %w", err)
			}
			return nil
		}

		reply := s.exec.Execute(sc.Text())
		if reply.Text != "" {
			_, _ = fmt.Fprintln(s.out, reply.Text)
		}
		if reply.Exit {
			return nil
		}
	}
}

// TUIShell runs the shell as a Bubble Tea program.
// Falls back to PlainShell if the program fails to start.
type TUIShell struct {
	in     io.Reader
	out    io.Writer
	prompt string
	exec   Executor
}

// Run starts the Bubble Tea program and blocks until it exits.
func (s *TUIShell) Run(ctx context.Context) error {
	var opts []ModelOption
	if s.prompt != "" {
		opts = append(opts, WithPrompt(s.prompt))
	}
	model := NewModel(s.exec, opts...)
	p := tea.NewProgram(model,
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	plain := &PlainShell{in: s.in, out: s.out, prompt: s.prompt, exec: s.exec}
	return plain.Run(ctx)
}
