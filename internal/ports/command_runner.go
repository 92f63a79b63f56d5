package ports

import (
	"context"

	"github.com/bft-labs/linebatch/internal/domain"
)

// CommandRunner starts a program and waits for it to finish.
type CommandRunner interface {
	// Run executes name with args and returns its exit status.
	// A non-zero exit is reported through the status, not as an error.
	// Returns an error only when the process could not be started or waited on.
	Run(ctx context.Context, name string, args []string) (domain.ExitStatus, error)
}
