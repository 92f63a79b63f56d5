package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// FollowSource implements ports.LineSource over a file that keeps growing.
// At end of file it waits for the file to be written again instead of
// reporting io.EOF. The stream ends when the file is removed or renamed.
type FollowSource struct {
	path    string
	file    *os.File
	r       *bufio.Reader
	watcher *fsnotify.Watcher

	// partial holds an unterminated trailing line until its newline arrives.
	partial strings.Builder
	gone    bool
}

// OpenFollowSource opens path and starts watching it for writes.
// The parent directory is watched so that removal is noticed even while the
// file is still held open.
func OpenFollowSource(path string) (*FollowSource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		f.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &FollowSource{
		path:    abs,
		file:    f,
		r:       bufio.NewReader(f),
		watcher: watcher,
	}, nil
}

// Next returns the next complete line, blocking at end of file until more
// data is written. Returns io.EOF once the file has been removed or renamed
// and everything written before that has been returned, or ctx.Err() when
// ctx is cancelled while waiting.
func (s *FollowSource) Next(ctx context.Context) (string, error) {
	for {
		chunk, err := s.r.ReadString('\n')
		s.partial.WriteString(chunk)
		if err == nil {
			line := s.partial.String()
			s.partial.Reset()
			return line, nil
		}
		if err != io.EOF {
			return "", err
		}

		if s.gone {
			if s.partial.Len() > 0 {
				line := s.partial.String()
				s.partial.Reset()
				return line, nil
			}
			return "", io.EOF
		}

		if err := s.wait(ctx); err != nil {
			return "", err
		}
	}
}

// wait blocks until the followed file is written, removed or renamed.
func (s *FollowSource) wait(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.watcher.Events:
			if !ok {
				s.gone = true
				return nil
			}
			if filepath.Clean(ev.Name) != s.path {
				continue
			}
			switch {
			case ev.Has(fsnotify.Write):
				return nil
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				// One more read drains whatever was written before removal.
				s.gone = true
				return nil
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.gone = true
				return nil
			}
			return fmt.Errorf("watch %s: %w", s.path, err)
		}
	}
}

// Close stops watching and releases the file.
func (s *FollowSource) Close() error {
	werr := s.watcher.Close()
	if err := s.file.Close(); err != nil {
		return err
	}
	return werr
}
