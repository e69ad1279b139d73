package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/contactbook/internal/book"
	"github.com/smileynet/contactbook/internal/command"
	"github.com/smileynet/contactbook/internal/config"
	"github.com/smileynet/contactbook/internal/logging"
	"github.com/smileynet/contactbook/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for contacts.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Shell   ShellCmd         `cmd:"" default:"withargs" help:"Start the interactive contact assistant (default)."`
}

// ShellCmd runs the contact assistant until the user exits or input ends.
type ShellCmd struct {
	NoTUI  bool   `help:"Force plain line output even if stdout is a TTY." default:"false"`
	Prompt string `help:"Prompt shown before each command (overrides config)."`
	Script string `help:"Read commands from a file instead of stdin." type:"existingfile"`
}

// setupError marks failures that happen before the shell starts.
type setupError struct {
	err error
}

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contacts/config.yaml"),
		".contacts/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the shell command against the process stdin and stdout.
func (s *ShellCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return s.run(ctx, os.Stdin, os.Stdout)
}

// run wires config, logger, book, handler, and shell, enabling testable wiring.
func (s *ShellCmd) run(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return &setupError{fmt.Errorf("shell: %w", err)}
	}

	// Apply CLI flag overrides.
	if s.NoTUI {
		cfg.Shell.NoTUI = true
	}
	if s.Prompt != "" {
		cfg.Shell.Prompt = s.Prompt
	}

	if err := cfg.Validate(); err != nil {
		return &setupError{fmt.Errorf("shell: %w", err)}
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return &setupError{fmt.Errorf("shell: %w", err)}
	}
	defer func() { _ = logger.Sync() }()

	if s.Script != "" {
		f, err := os.Open(s.Script)
		if err != nil {
			return &setupError{fmt.Errorf("shell: opening script: %w", err)}
		}
		defer func() { _ = f.Close() }()
		in = f
		cfg.Shell.NoTUI = true
	}

	b := book.New(
		book.WithWindow(cfg.Birthdays.WindowDays),
		book.WithWeekendShift(cfg.Birthdays.ShiftWeekends),
	)
	h := command.NewHandler(b, command.WithLogger(logger))

	logger.Debug("shell starting",
		zap.Bool("plain", cfg.Shell.NoTUI),
		zap.Int("window_days", cfg.Birthdays.WindowDays),
		zap.String("script", s.Script),
	)

	sh := tui.NewShell(tui.ShellOptions{
		In:         in,
		Out:        out,
		ForcePlain: cfg.Shell.NoTUI,
		Prompt:     cfg.Shell.Prompt,
		Executor:   h,
	})

	err = sh.Run(ctx)
	if errors.Is(err, context.Canceled) {
		// Ctrl+C is a normal way to leave the shell.
		return nil
	}
	return err
}

// Exit codes.
const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *setupError
	if errors.As(err, &se) {
		return exitSetup
	}
	return exitRuntime
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contacts"),
		kong.Description("Personal contact book with birthday reminders."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
