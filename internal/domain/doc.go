// Package domain contains the core types of linebatch.
//
// It has no dependencies on infrastructure concerns (processes, files,
// logging) and holds only values and error conditions.
//
// # Types
//
//   - [Batch]: a non-empty ordered group of lines executed as one command
//   - [ExitStatus]: the observed termination status of a child process
//
// # Errors
//
// Sentinel errors ([ErrMissingCommand], [ErrInvalidCommand],
// [ErrInvalidConfig]) are checked with errors.Is. Typed errors
// ([SpawnError], [AbortError], [UsageError], [InputError]) carry context and
// are matched with errors.As by the CLI layer to choose an exit code.
package domain
