// Package process runs child commands for linebatch.
package process
