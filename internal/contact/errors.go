package contact

import "errors"

// Error kinds. Match with errors.Is.
var (
	ErrValidation = errors.New("contact: validation failed")
	ErrNotFound   = errors.New("contact: not found")
	ErrDuplicate  = errors.New("contact: duplicate")
	ErrState      = errors.New("contact: invalid state")
)

// Error carries a user-facing message together with its kind.
// Error() returns the message unchanged so handlers can show it verbatim.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Errorf builds an *Error of the given kind. Used by the book package too.
func Errorf(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}
