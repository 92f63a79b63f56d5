package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/linebatch/internal/adapters/input"
	logAdapter "github.com/bft-labs/linebatch/internal/adapters/log"
	"github.com/bft-labs/linebatch/internal/adapters/process"
	"github.com/bft-labs/linebatch/internal/app"
	"github.com/bft-labs/linebatch/internal/cliconfig"
	"github.com/bft-labs/linebatch/internal/domain"
	"github.com/bft-labs/linebatch/internal/ports"
)

const longHelp = `Read lines from standard input, group them into batches, and run a command
once per batch with the joined lines substituted for a tag.

Flags are only parsed up to the first positional argument; everything from
there on is the command and its argument templates.`

var exampleUsage = strings.TrimSpace(`
  ls *.log | linebatch -s 10 -j ' ' sh -c 'gzip {}'
  seq 1 100 | linebatch --size 25 curl -s 'https://example.com/items?ids={}'
  linebatch --input app.log --follow --trim notify-send 'app' '{}'
`)

// Options carries the process environment into the command.
// Zero values fall back to the real process streams and environment.
type Options struct {
	Args      []string
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	LookupEnv cliconfig.LookupEnvFunc

	// Runner replaces the os/exec runner, mainly in tests.
	Runner ports.CommandRunner
}

func (o *Options) setDefaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.LookupEnv == nil {
		o.LookupEnv = os.LookupEnv
	}
	if o.Runner == nil {
		r := process.NewRunner()
		r.Stdin, r.Stdout, r.Stderr = o.Stdin, o.Stdout, o.Stderr
		o.Runner = r
	}
}

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// Execute runs linebatch and returns the process exit code.
func Execute(ctx context.Context, opts Options) int {
	opts.setDefaults()

	err := NewRootCmd(opts).ExecuteContext(ctx)
	report(opts.Stderr, err)
	return ExitCode(err)
}

// NewRootCmd creates the root command.
func NewRootCmd(opts Options) *cobra.Command {
	opts.setDefaults()

	cfg := cliconfig.DefaultConfig()
	var printConfig bool

	root := &cobra.Command{
		Use:           "linebatch [flags] command [args...]",
		Short:         "Run a command once per batch of input lines",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// Environment overrides defaults but not flags.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed, opts.LookupEnv); err != nil {
				return &domain.UsageError{Err: fmt.Errorf("environment: %w", err)}
			}
			cfg.Command = args

			if err := cfg.Validate(); err != nil {
				return &domain.UsageError{Err: err}
			}

			tmpl, err := app.NewCommandTemplate(cfg.Command, cfg.Tag)
			if err != nil {
				return &domain.UsageError{Err: err}
			}

			if printConfig {
				b, err := cliconfig.EncodeTOML(cfg)
				if err != nil {
					return fmt.Errorf("encode config: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}

			return run(cmd.Context(), cfg, tmpl, opts)
		},
	}

	root.SetArgs(opts.Args)
	root.SetIn(opts.Stdin)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &domain.UsageError{Err: err}
	})

	flags := root.Flags()
	// The command's own flags must reach it untouched.
	flags.SetInterspersed(false)

	flags.IntVarP(&cfg.Size, "size", "s", cfg.Size, "batch size")
	flags.BoolVarP(&cfg.Blanks, "blanks", "b", cfg.Blanks, "do not skip blank lines")
	flags.BoolVarP(&cfg.Trim, "trim", "t", cfg.Trim, "trim whitespace from each line")
	flags.StringVarP(&cfg.JoinDelimiter, "join-delimiter", "j", cfg.JoinDelimiter, "delimiter used while joining lines of a batch")
	flags.BoolVarP(&cfg.AbortOnError, "abort-on-error", "a", cfg.AbortOnError, "stop at the first command that exits with a non-zero status")
	flags.StringVarP(&cfg.Tag, "tag", "g", cfg.Tag, "tag replaced by the batch in command arguments")

	flags.StringVarP(&cfg.Input, "input", "i", cfg.Input, "read lines from this file instead of standard input")
	flags.BoolVarP(&cfg.Follow, "follow", "f", cfg.Follow, "keep reading the input file as it grows, until it is removed")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostics level on stderr (debug, info, warn, error)")
	flags.BoolVar(&printConfig, "print-config", false, "print the resolved configuration as TOML and exit")

	return root
}

// run wires the batch loop for a validated configuration.
func run(ctx context.Context, cfg cliconfig.Config, tmpl *app.CommandTemplate, opts Options) error {
	zl := cliconfig.NewLogger(cfg.LogLevel, opts.Stderr)
	logger := logAdapter.NewZerologAdapter(zl)

	source, closeSource, err := openSource(cfg, opts.Stdin)
	if err != nil {
		return err
	}
	defer closeSource()

	if cfg.Follow {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	zl.Debug().Interface("config", cfg).Msg("configuration")

	batcher := app.NewBatcher(source, app.BatcherConfig{
		Size:       cfg.Size,
		SkipBlanks: cfg.SkipBlanks(),
		Trim:       cfg.Trim,
	})
	executor := app.NewExecutor(tmpl, opts.Runner, logger)
	driver := app.NewDriver(app.DriverConfig{
		JoinDelimiter: cfg.JoinDelimiter,
		AbortOnError:  cfg.AbortOnError,
	}, batcher, executor, logger)

	res, err := driver.Run(ctx)
	logger.Info("done",
		ports.Int("batches", res.Batches),
		ports.Int("lines", res.Lines),
		ports.Int("failures", res.Failures),
	)
	return err
}

func openSource(cfg cliconfig.Config, stdin io.Reader) (ports.LineSource, func(), error) {
	switch {
	case cfg.Input == "":
		return input.NewReaderSource(stdin), func() {}, nil
	case cfg.Follow:
		s, err := input.OpenFollowSource(cfg.Input)
		if err != nil {
			return nil, nil, &domain.InputError{Path: cfg.Input, Err: err}
		}
		return s, func() { s.Close() }, nil
	default:
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, nil, &domain.InputError{Path: cfg.Input, Err: err}
		}
		return input.NewReaderSource(f), func() { f.Close() }, nil
	}
}

// report writes a message for err to w.
// Spawn failures are already logged by the driver and interruptions need no
// message.
func report(w io.Writer, err error) {
	if err == nil {
		return
	}

	var spawnErr *domain.SpawnError
	switch {
	case errors.Is(err, domain.ErrMissingCommand), errors.Is(err, domain.ErrInvalidCommand):
		fmt.Fprintln(w, err)
		fmt.Fprintln(w, "Run 'linebatch --help' for usage.")
	case errors.As(err, &spawnErr), isInterrupt(err):
	default:
		fmt.Fprintf(w, "linebatch: %v\n", err)
		var usageErr *domain.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(w, "Run 'linebatch --help' for usage.")
		}
	}
}

func isInterrupt(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps the result of a run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return domain.ExitOK
	}

	var (
		usageErr *domain.UsageError
		inputErr *domain.InputError
		spawnErr *domain.SpawnError
		abortErr *domain.AbortError
	)
	switch {
	case isInterrupt(err):
		return domain.ExitInterrupted
	case errors.As(err, &usageErr):
		return domain.ExitUsage
	case errors.As(err, &inputErr):
		return domain.ExitNoInput
	case errors.As(err, &spawnErr):
		return domain.ExitUnavailable
	case errors.As(err, &abortErr):
		if abortErr.Status.Signaled() {
			return domain.ExitFailure
		}
		return abortErr.Status.Code
	default:
		return domain.ExitFailure
	}
}
