package ports

import "context"

// LineSource yields input one line at a time.
// Implementations exist for any io.Reader and for files that keep growing.
type LineSource interface {
	// Next returns the next line including its terminator, if it had one.
	// Returns io.EOF when the input is exhausted.
	// Returns other errors when the underlying read fails.
	Next(ctx context.Context) (string, error)
}
