package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions detected before or during a run.
// They can be checked with errors.Is.
var (
	// ErrMissingCommand is returned when no command tokens were supplied.
	ErrMissingCommand = errors.New("Missing command.")

	// ErrInvalidCommand is returned when the program name is empty.
	ErrInvalidCommand = errors.New("Invalid command.")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("linebatch: invalid configuration")
)

// SpawnError reports that a child process could not be started or waited on.
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("run %s: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// AbortError is returned when abort-on-error is enabled and a child exits
// with a non-zero status.
type AbortError struct {
	Program string
	Status  ExitStatus
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Program, e.Status.Code)
}

// UsageError marks errors caused by how the program was invoked: flags,
// environment values or the command template.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// InputError reports that the configured input could not be opened.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("open input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
