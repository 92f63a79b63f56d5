// Package cli implements the linebatch command line.
//
// [Execute] parses flags with cobra, resolves the configuration, wires the
// batch loop and returns the exit code; cmd/linebatch passes it to os.Exit.
package cli
