package app

import (
	"context"
	"errors"
	"io"

	"github.com/bft-labs/linebatch/internal/domain"
	"github.com/bft-labs/linebatch/internal/ports"
)

// State represents where the driver is in its run.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateDone
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// DriverConfig contains the settings of the batch loop.
type DriverConfig struct {
	JoinDelimiter string
	AbortOnError  bool
}

// Result summarizes a finished run.
type Result struct {
	// Batches is the number of commands that were started and awaited.
	Batches int
	// Lines is the number of lines passed to those commands.
	Lines int
	// Failures is the number of commands that exited with a non-zero status.
	Failures int
}

// Driver runs the batch loop: read a batch, join it, execute the command,
// repeat until input is exhausted or a fatal error occurs.
type Driver struct {
	config   DriverConfig
	batcher  *Batcher
	executor *Executor
	logger   ports.Logger
	state    State
}

// NewDriver creates a driver with the given dependencies.
func NewDriver(config DriverConfig, batcher *Batcher, executor *Executor, logger ports.Logger) *Driver {
	return &Driver{
		config:   config,
		batcher:  batcher,
		executor: executor,
		logger:   logger,
		state:    StateIdle,
	}
}

// State returns the current state of the driver.
func (d *Driver) State() State {
	return d.state
}

// Run processes batches one at a time until the input ends.
//
// A failed read ends the run like end of input and is only logged.
// A command that cannot be started or waited on ends the run with a
// *domain.SpawnError. A non-zero exit status ends the run with a
// *domain.AbortError only when AbortOnError is set. Cancelling ctx ends the
// run with ctx.Err().
func (d *Driver) Run(ctx context.Context) (Result, error) {
	var res Result

	d.transition(StateRunning)
	defer d.transition(StateDone)

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		batch, err := d.batcher.Next(ctx)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}
			d.logger.Warn("reading input failed, stopping", ports.Err(err))
			return res, nil
		}

		status, err := d.executor.Execute(ctx, batch.Join(d.config.JoinDelimiter))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}
		if err != nil {
			d.logger.Error("command could not be run", ports.Int("batch", res.Batches+1), ports.Err(err))
			return res, err
		}

		res.Batches++
		res.Lines += batch.Size()

		if status.Success() {
			continue
		}
		res.Failures++
		if d.config.AbortOnError {
			return res, &domain.AbortError{Program: d.executor.Program(), Status: status}
		}
		d.logger.Warn("command exited with non-zero status",
			ports.Int("batch", res.Batches),
			ports.Int("code", status.Code),
		)
	}
}

func (d *Driver) transition(next State) {
	d.logger.Debug("state transition",
		ports.String("from", d.state.String()),
		ports.String("to", next.String()),
	)
	d.state = next
}
