package calc

import (
	"errors"
	"log/slog"
	"strings"
)

// Sentinel is written in place of a value for a line that is not a legal
// expression.
const Sentinel = "CHYBA"

// ErrorKind classifies why a line was rejected. Every kind is reported to the
// user the same way (see [Sentinel]); the distinction exists for tests and
// diagnostics.
type ErrorKind int

//go:generate go tool stringer --linecomment --type ErrorKind,Kind --output kind_string.go

const (
	BadParen       ErrorKind = iota // unbalanced parenthesis
	BadToken                        // unknown token
	BadAssignLHS                    // assignment target is not a variable
	StackUnderflow                  // operator is missing an operand
	TooManyEquals                   // more than one assignment sign
	Residue                         // operands left without an operator
	Empty                           // empty expression
)

// Predefined errors (sentinel values), one per [ErrorKind].
var (
	ErrBadParen       = NewError(BadParen)
	ErrBadToken       = NewError(BadToken)
	ErrBadAssignLHS   = NewError(BadAssignLHS)
	ErrStackUnderflow = NewError(StackUnderflow)
	ErrTooManyEquals  = NewError(TooManyEquals)
	ErrResidue        = NewError(Residue)
	ErrEmpty          = NewError(Empty)
)

// Error is an illegal expression error with optional structured logging
// attributes. It implements both error and slog.LogValuer.
//
// Two errors match with [errors.Is] when their kinds are equal, so the
// sentinels above can be compared against errors decorated with With.
type Error struct {
	kind  ErrorKind
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error of the given kind.
func NewError(kind ErrorKind) *Error {
	return &Error{kind: kind}
}

// Kind returns the reason the expression was rejected.
func (e *Error) Kind() ErrorKind { return e.kind }

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 3)
	part = append(part, "illegal expression", e.kind.String())

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.kind == e.kind
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)
	attrs = append(attrs, slog.String("error", e.kind.String()))

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error of the same kind wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		kind:  e.kind,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		kind:  e.kind,
		err:   e.err,
		attrs: newAttrs,
	}
}

// IsIllegal reports whether err signals an illegal expression.
func IsIllegal(err error) bool {
	var e *Error

	return errors.As(err, &e)
}

// KindOf returns the kind of the illegal expression error in err's chain.
// The second result is false if err is not an illegal expression error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}

	return e.kind, true
}
