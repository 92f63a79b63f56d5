package app

import (
	"context"
	"errors"

	"github.com/bft-labs/linebatch/internal/domain"
	"github.com/bft-labs/linebatch/internal/ports"
)

// Executor renders a command template for a payload and runs it.
type Executor struct {
	template *CommandTemplate
	runner   ports.CommandRunner
	logger   ports.Logger
}

// NewExecutor creates an executor for template using runner.
func NewExecutor(template *CommandTemplate, runner ports.CommandRunner, logger ports.Logger) *Executor {
	return &Executor{template: template, runner: runner, logger: logger}
}

// Execute runs the command once with payload substituted and waits for it.
// The child's exit status is returned even when it is non-zero; an error is
// returned only if the process could not be started or waited on.
func (e *Executor) Execute(ctx context.Context, payload string) (domain.ExitStatus, error) {
	args := e.template.Render(payload)
	e.logger.Debug("executing command",
		ports.String("program", e.template.Program()),
		ports.Strings("args", args),
	)

	status, err := e.runner.Run(ctx, e.template.Program(), args)
	if err != nil {
		var spawnErr *domain.SpawnError
		if !errors.As(err, &spawnErr) {
			err = &domain.SpawnError{Program: e.template.Program(), Err: err}
		}
		return status, err
	}
	return status, nil
}

// Program returns the name of the program being executed.
func (e *Executor) Program() string {
	return e.template.Program()
}
