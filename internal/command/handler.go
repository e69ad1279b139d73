// Package command turns text command lines into address book operations and
// converts their results and errors into the text shown to the user.
package command

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/smileynet/contactbook/internal/book"
	"github.com/smileynet/contactbook/internal/contact"
)

// Sentinel errors for handler-level failures.
var (
	ErrArgs            = errors.New("command: not enough arguments")
	ErrContactNotFound = errors.New("command: contact not found")
)

// Fixed replies.
const (
	MsgGreeting       = "How can I help you?"
	MsgGoodbye        = "Good bye!"
	MsgInvalidCommand = "Invalid command."
	MsgNotEnoughArgs  = "Not enough arguments provided."
	MsgNotFound       = "Contact not found."
)

// Reply is the outcome of one command line.
type Reply struct {
	Text string
	Exit bool // The shell should stop after showing Text.
	Err  bool // Text describes a failure.
}

// Handler dispatches command lines against an AddressBook.
type Handler struct {
	book     *book.AddressBook
	logger   *zap.Logger
	registry *Registry
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) {
		h.logger = l
	}
}

// NewHandler creates a Handler with the built-in commands registered.
func NewHandler(b *book.AddressBook, opts ...Option) *Handler {
	h := &Handler{
		book:     b,
		logger:   zap.NewNop(),
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.registerContactCommands()
	return h
}

// Commands returns the registered command names, sorted.
func (h *Handler) Commands() []string {
	return h.registry.Names()
}

// Execute parses and runs one command line. Errors never escape; they are
// turned into Reply text.
func (h *Handler) Execute(line string) Reply {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Reply{}
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "close", "exit":
		h.logger.Debug("exit requested", zap.String("command", name))
		return Reply{Text: MsgGoodbye, Exit: true}
	}

	fn, ok := h.registry.Lookup(name)
	if !ok {
		h.logger.Info("unknown command", zap.String("command", name))
		return Reply{Text: MsgInvalidCommand, Err: true}
	}

	h.logger.Debug("dispatch", zap.String("command", name), zap.Int("args", len(args)))
	text, err := fn(args)
	if err != nil {
		h.logger.Info("command failed", zap.String("command", name), zap.Error(err))
		return Reply{Text: Message(err), Err: true}
	}
	return Reply{Text: text}
}

// Message maps an error to the text shown to the user.
func Message(err error) string {
	var ce *contact.Error
	switch {
	case errors.Is(err, ErrArgs):
		return MsgNotEnoughArgs
	case errors.Is(err, ErrContactNotFound):
		return MsgNotFound
	case errors.As(err, &ce):
		return ce.Msg
	default:
		return err.Error()
	}
}

// need returns ErrArgs unless args has at least n entries.
func need(args []string, n int) error {
	if len(args) < n {
		return ErrArgs
	}
	return nil
}
