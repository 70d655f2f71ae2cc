package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies operational failures. Every kind maps to exit
// code 2; a negative verdict is not an error and never appears here.
type ErrorKind string

const (
	// KindInputNotFound: the data path does not exist.
	KindInputNotFound ErrorKind = "input_not_found"
	// KindUnsupportedFormat: strict mode rejected the data file extension.
	KindUnsupportedFormat ErrorKind = "unsupported_format"
	// KindSuiteLoad: the suite document could not be read, parsed or
	// constructed.
	KindSuiteLoad ErrorKind = "suite_load"
	// KindEngineExecution: parsing, batch construction or engine
	// execution failed after preconditions passed.
	KindEngineExecution ErrorKind = "engine_execution"
)

// Error is an operational failure with a taxonomy kind. The kind drives
// classification only; the wrapped error's message is what gets surfaced
// to the user.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err under a kind.
func NewError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Errorf formats a new operational error under a kind.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the taxonomy kind from an error chain; empty when the
// error carries none.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
