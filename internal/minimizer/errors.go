package minimizer

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a simplification failure.
type Kind int

const (
	KindUnexpected Kind = iota
	KindContradiction
	KindMalformed
	KindVariableOverflow
	KindEncoding
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindContradiction:
		return "contradiction"
	case KindMalformed:
		return "malformed_expression"
	case KindVariableOverflow:
		return "variable_overflow"
	case KindEncoding:
		return "encoding"
	case KindRange:
		return "range"
	default:
		return "unexpected"
	}
}

// Error is returned by every stage of the pipeline. Message is meant to be
// shown to the caller verbatim.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func errContradiction() *Error {
	return newError(KindContradiction, "POS expression simplifies to 0 (contradiction)")
}

func errMalformed() *Error {
	return newError(KindMalformed, "Invalid expression. Please provide terms separated by '+'.")
}

func errConstant(term string) *Error {
	return newError(KindMalformed, "Invalid term: %s. Constants are not supported, every term needs at least one variable.", term)
}

func errOverflow() *Error {
	return newError(KindVariableOverflow, "This is a %d-bit solver and does not support more than %d variables.", MaxVariables, MaxVariables)
}

func errEncoding(term string) *Error {
	return newError(KindEncoding, "Invalid or mistyped term: %s", term)
}

func errRange(width int) *Error {
	return newError(KindRange, "This is a %d-bit solver and does not support minterms greater than %d.", width, (1<<width)-1)
}

func errUnexpected(v interface{}) *Error {
	return newError(KindUnexpected, "An unexpected error occurred: %v", v)
}

// KindOf reports the Kind of err, unwrapping errors.Wrap chains. Errors that
// did not originate in this package are KindUnexpected.
func KindOf(err error) Kind {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return KindUnexpected
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
