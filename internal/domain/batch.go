package domain

import "strings"

// Batch is an ordered group of input lines that is executed as one command.
// A batch handed out by the batcher always holds at least one line.
type Batch struct {
	Lines []string
}

// maxPrealloc bounds the capacity reserved up front. The batch size comes
// from the command line and may be far larger than the input.
const maxPrealloc = 64

// NewBatch creates an empty batch expecting up to size lines.
func NewBatch(size int) *Batch {
	return &Batch{Lines: make([]string, 0, max(0, min(size, maxPrealloc)))}
}

// Add appends a line to the batch.
func (b *Batch) Add(line string) {
	b.Lines = append(b.Lines, line)
}

// Size returns the number of lines in the batch.
func (b *Batch) Size() int {
	return len(b.Lines)
}

// Empty returns true if the batch has no lines.
func (b *Batch) Empty() bool {
	return len(b.Lines) == 0
}

// Join concatenates the lines with delimiter, producing the payload that is
// substituted into the command template.
func (b *Batch) Join(delimiter string) string {
	return strings.Join(b.Lines, delimiter)
}
