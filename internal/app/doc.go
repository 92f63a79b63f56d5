// Package app holds the batching and execution logic of linebatch.
//
// A [Batcher] groups lines from a ports.LineSource, a [CommandTemplate]
// renders the argument list for a payload, an [Executor] runs it through a
// ports.CommandRunner, and the [Driver] loops over batches until the input
// ends or a fatal error stops it.
package app
