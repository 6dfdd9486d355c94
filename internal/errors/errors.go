// Package errors provides standardized error handling for the explode
// application. It defines common error kinds, types, and helper functions
// for consistent error creation, wrapping, and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// SourceNotFound means the source directory does not exist
	SourceNotFound
	// NotADirectory means a path that must be a directory is not one
	NotADirectory
	// AlreadyExists means an entry name is already taken at the destination
	AlreadyExists
	// SourceNotEmpty means the source directory could not be removed
	// because entries remain in it
	SourceNotEmpty
	// CopyFailed means the cross-device copy fallback failed
	CopyFailed
)

// Kinder is implemented by errors that carry an ErrorKind.
type Kinder interface {
	Kind() ErrorKind
}

// PathError represents an error tied to a specific filesystem path.
// The message is carried in full; precondition messages are part of the
// CLI contract and contain the path already.
type PathError struct {
	msg  string
	path string
	kind ErrorKind
	err  error
}

// NewPathError creates a new path error
func NewPathError(msg string, path string, kind ErrorKind, err error) *PathError {
	return &PathError{
		msg:  msg,
		path: path,
		kind: kind,
		err:  err,
	}
}

// Error returns the path error message
func (e *PathError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *PathError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *PathError) Kind() ErrorKind {
	return e.kind
}

// Path returns the path associated with the error
func (e *PathError) Path() string {
	return e.path
}

// ConflictError reports that an entry already exists at the destination.
// Its message format is part of the CLI contract and must not change:
// "<What> <name> already exists in <destination>".
type ConflictError struct {
	what        string
	name        string
	destination string
}

// NewConflictError creates a new conflict error. what describes the entry
// ("Dir", "File" or "Entry"), name is the entry's base name and destination
// is the destination directory.
func NewConflictError(what, name, destination string) *ConflictError {
	return &ConflictError{
		what:        what,
		name:        name,
		destination: destination,
	}
}

// Error returns the conflict error message
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s already exists in %s", e.what, e.name, e.destination)
}

// Kind returns AlreadyExists
func (e *ConflictError) Kind() ErrorKind {
	return AlreadyExists
}

// Name returns the conflicting entry name
func (e *ConflictError) Name() string {
	return e.name
}

// Destination returns the destination directory of the conflict
func (e *ConflictError) Destination() string {
	return e.destination
}

// wrappedError is the base type returned by New, Newf, Wrap and Wrapf
type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.err
}

// New creates a new error with a message
func New(msg string) error {
	return &wrappedError{msg: msg}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &wrappedError{msg: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, err: err}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, args...), err: err}
}

func isKind(err error, kind ErrorKind) bool {
	var kinder Kinder
	if errors.As(err, &kinder) {
		return kinder.Kind() == kind
	}
	return false
}

// IsNotFound checks if the error reports a missing source
func IsNotFound(err error) bool {
	return isKind(err, SourceNotFound)
}

// IsNotADirectory checks if the error reports a non-directory path
func IsNotADirectory(err error) bool {
	return isKind(err, NotADirectory)
}

// IsAlreadyExists checks if the error reports a destination conflict
func IsAlreadyExists(err error) bool {
	return isKind(err, AlreadyExists)
}

// IsSourceNotEmpty checks if the error reports a non-empty source on removal
func IsSourceNotEmpty(err error) bool {
	return isKind(err, SourceNotEmpty)
}
