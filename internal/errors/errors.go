// Package errors provides error handling for the udt CLI: sentinel
// errors, exit-code-carrying errors, and re-exports of the cockroachdb
// errors primitives used throughout the codebase so call sites need a
// single import.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes returned by the udt process.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user or system error (bad input, I/O failure).
	ExitUser = 1

	// ExitBlocked indicates the path guard denied a file modification.
	// Hook hosts distinguish this code from ordinary failures.
	ExitBlocked = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Re-exported cockroachdb/errors primitives.
var (
	New   = errors.New
	Newf  = errors.Newf
	Wrap  = errors.Wrap
	Wrapf = errors.Wrapf
	Is    = errors.Is
	As    = errors.As
)

// ExitError carries an exit code and an optional suggestion alongside the
// underlying error. It supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error. May be nil for pure exit-code signals
	// such as a guard block that already printed its reason.
	Err error

	// Code is the process exit code.
	Code int

	// Suggestion is an optional actionable hint for the user.
	Suggestion string
}

// WithCode wraps err with an exit code.
func WithCode(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// UserError wraps err with ExitUser and a suggestion.
func UserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// BlockedError signals a guard denial; reason is carried as the message.
func BlockedError(reason string) *ExitError {
	return &ExitError{Err: errors.New(reason), Code: ExitBlocked}
}

// Error returns the underlying message, or a generic one when Err is nil.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is / errors.As.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from an error chain. nil maps to
// ExitSuccess; errors without an embedded code map to ExitUser.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitUser
}
