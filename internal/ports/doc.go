// Package ports defines the interfaces that connect the application layer to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [LineSource]: yields input lines from stdin, a file, or a followed file
//   - [CommandRunner]: starts a child process and waits for it
//   - [Logger]: structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with bufio,
// fsnotify, os/exec and zerolog.
package ports
