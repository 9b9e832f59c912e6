package game

import (
	"errors"
	"fmt"
)

// Kind classifies a rule violation. None are retryable: a driver that gates
// its affordances on the exported predicates never sees them.
type Kind string

const (
	// KindUnknown is reported for errors that did not come from the engine.
	KindUnknown Kind = "UNKNOWN"
	// KindValidation covers malformed payloads: unknown player, bad index.
	KindValidation Kind = "VALIDATION"
	// KindPrecondition covers actions issued in the wrong phase or before a
	// fact they depend on has been established.
	KindPrecondition Kind = "PRECONDITION"
	// KindMissingChoice covers cards executed without their extra choice.
	KindMissingChoice Kind = "MISSING_CHOICE"
)

// Sentinels for errors.Is.
var (
	ErrValidation    = &Error{Kind: KindValidation}
	ErrPrecondition  = &Error{Kind: KindPrecondition}
	ErrMissingChoice = &Error{Kind: KindMissingChoice}
)

// Error is a rule violation raised by a transition.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so the package sentinels work with
// errors.Is regardless of Op and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf extracts the Kind from any error, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func validationError(op, format string, args ...any) error {
	return &Error{Kind: KindValidation, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func preconditionError(op, format string, args ...any) error {
	return &Error{Kind: KindPrecondition, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func missingChoiceError(op, format string, args ...any) error {
	return &Error{Kind: KindMissingChoice, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}
