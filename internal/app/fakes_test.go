package app

import (
	"context"
	"io"

	"github.com/bft-labs/linebatch/internal/domain"
	"github.com/bft-labs/linebatch/internal/ports"
)

// sliceSource yields raw lines from a slice, then err (io.EOF when nil).
type sliceSource struct {
	lines []string
	err   error
	reads int
}

func (s *sliceSource) Next(ctx context.Context) (string, error) {
	s.reads++
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

type call struct {
	name string
	args []string
}

// fakeRunner records invocations and replies from a script of results.
type fakeRunner struct {
	calls   []call
	results []fakeResult
}

type fakeResult struct {
	status domain.ExitStatus
	err    error
}

func (r *fakeRunner) Run(ctx context.Context, name string, args []string) (domain.ExitStatus, error) {
	r.calls = append(r.calls, call{name: name, args: args})
	if len(r.results) == 0 {
		return domain.ExitStatus{}, nil
	}
	res := r.results[0]
	r.results = r.results[1:]
	return res.status, res.err
}

func (r *fakeRunner) payloads() []string {
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.args[len(c.args)-1])
	}
	return out
}

// mockLogger implements ports.Logger and keeps warnings for assertions.
type mockLogger struct {
	warnings []string
	errors   []string
}

func (*mockLogger) Debug(msg string, fields ...ports.Field) {}
func (*mockLogger) Info(msg string, fields ...ports.Field)  {}
func (m *mockLogger) Warn(msg string, fields ...ports.Field) {
	m.warnings = append(m.warnings, msg)
}
func (m *mockLogger) Error(msg string, fields ...ports.Field) {
	m.errors = append(m.errors, msg)
}
