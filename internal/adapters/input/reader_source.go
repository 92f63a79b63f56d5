package input

import (
	"bufio"
	"context"
	"io"
)

// ReaderSource implements ports.LineSource over any byte stream.
type ReaderSource struct {
	r *bufio.Reader
}

// NewReaderSource wraps r in a buffered reader.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

// Next reads up to and including the next newline.
// A final line without a terminator is returned as-is; the call after it
// returns io.EOF.
func (s *ReaderSource) Next(ctx context.Context) (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
