package app

import (
	"context"
	"io"
	"strings"

	"github.com/bft-labs/linebatch/internal/domain"
	"github.com/bft-labs/linebatch/internal/ports"
)

// BatcherConfig controls how lines are normalized and grouped.
type BatcherConfig struct {
	Size       int
	SkipBlanks bool
	Trim       bool
}

// Batcher pulls lines from a LineSource and groups them into batches of at
// most Size lines.
type Batcher struct {
	source ports.LineSource
	config BatcherConfig
}

// NewBatcher creates a batcher reading from source.
// A non-positive size is treated as 1.
func NewBatcher(source ports.LineSource, config BatcherConfig) *Batcher {
	if config.Size < 1 {
		config.Size = 1
	}
	return &Batcher{source: source, config: config}
}

// Next returns the next batch.
// The final batch before end of input may hold fewer than Size lines.
// Returns io.EOF only when no line could be collected.
// A read error is returned as-is and any lines collected so far are dropped.
func (b *Batcher) Next(ctx context.Context) (*domain.Batch, error) {
	batch := domain.NewBatch(b.config.Size)

	for batch.Size() < b.config.Size {
		raw, err := b.source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line := b.normalize(raw)
		if b.config.SkipBlanks && line == "" {
			continue
		}
		batch.Add(line)
	}

	if batch.Empty() {
		return nil, io.EOF
	}
	return batch, nil
}

func (b *Batcher) normalize(line string) string {
	if b.config.Trim {
		return strings.TrimSpace(line)
	}
	return strings.TrimRight(line, "\r\n")
}
