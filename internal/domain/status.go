package domain

// Exit codes follow the BSD sysexits convention where one applies.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 64  // EX_USAGE
	ExitNoInput     = 66  // EX_NOINPUT
	ExitUnavailable = 69  // EX_UNAVAILABLE
	ExitInterrupted = 130 // 128 + SIGINT
)

// ExitStatus is the observed termination status of a child process.
type ExitStatus struct {
	// Code is the process exit code, or -1 if it was terminated by a signal.
	Code int
}

// Success returns true if the process exited with code 0.
func (s ExitStatus) Success() bool {
	return s.Code == 0
}

// Signaled returns true if the process did not exit normally.
func (s ExitStatus) Signaled() bool {
	return s.Code < 0
}
