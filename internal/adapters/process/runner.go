package process

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/bft-labs/linebatch/internal/domain"
)

// Runner implements ports.CommandRunner with os/exec.
// Children inherit the configured standard streams; nothing is captured.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a runner whose children share the parent's standard streams.
func NewRunner() *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts name with args and waits for it to exit.
func (r *Runner) Run(ctx context.Context, name string, args []string) (domain.ExitStatus, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return domain.ExitStatus{Code: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the child was killed by a signal.
		return domain.ExitStatus{Code: exitErr.ExitCode()}, nil
	}
	return domain.ExitStatus{Code: -1}, &domain.SpawnError{Program: name, Err: err}
}
