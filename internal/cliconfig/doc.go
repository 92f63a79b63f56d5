// Package cliconfig resolves the linebatch configuration.
//
// Values come from command line flags, then LINEBATCH_* environment
// variables for any flag that was not set explicitly, then defaults.
package cliconfig
