package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, b *Batcher) [][]string {
	t.Helper()
	var batches [][]string
	for {
		batch, err := b.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return batches
		}
		require.NoError(t, err)
		require.False(t, batch.Empty(), "batcher must never hand out an empty batch")
		batches = append(batches, batch.Lines)
	}
}

func TestBatcher_Next(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		config BatcherConfig
		want   [][]string
	}{
		{
			name:   "blank skipped by default",
			lines:  []string{"1\n", "2\n", "\n", "3\n"},
			config: BatcherConfig{Size: 2, SkipBlanks: true},
			want:   [][]string{{"1", "2"}, {"3"}},
		},
		{
			name:   "blanks kept",
			lines:  []string{"1\n", "\n", "2\n"},
			config: BatcherConfig{Size: 2},
			want:   [][]string{{"1", ""}, {"2"}},
		},
		{
			name:   "no input",
			lines:  nil,
			config: BatcherConfig{Size: 3, SkipBlanks: true},
			want:   nil,
		},
		{
			name:   "only blanks",
			lines:  []string{"\n", "\r\n", "\n"},
			config: BatcherConfig{Size: 1, SkipBlanks: true},
			want:   nil,
		},
		{
			name:   "whitespace line is not blank without trim",
			lines:  []string{"  \n"},
			config: BatcherConfig{Size: 1, SkipBlanks: true},
			want:   [][]string{{"  "}},
		},
		{
			name:   "whitespace line is blank with trim",
			lines:  []string{"  \n", "x\n"},
			config: BatcherConfig{Size: 1, SkipBlanks: true, Trim: true},
			want:   [][]string{{"x"}},
		},
		{
			name:   "trim strips surrounding whitespace",
			lines:  []string{"  foo  \n"},
			config: BatcherConfig{Size: 1, Trim: true},
			want:   [][]string{{"foo"}},
		},
		{
			name:   "no trim keeps inner whitespace",
			lines:  []string{"  foo  \n"},
			config: BatcherConfig{Size: 1},
			want:   [][]string{{"  foo  "}},
		},
		{
			name:   "mixed line endings",
			lines:  []string{"a\r\n", "b\n", "c"},
			config: BatcherConfig{Size: 3},
			want:   [][]string{{"a", "b", "c"}},
		},
		{
			name:   "leading carriage return is data",
			lines:  []string{"\rfoo\r\n"},
			config: BatcherConfig{Size: 1},
			want:   [][]string{{"\rfoo"}},
		},
		{
			name:   "zero size behaves as one",
			lines:  []string{"a\n", "b\n"},
			config: BatcherConfig{Size: 0},
			want:   [][]string{{"a"}, {"b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBatcher(&sliceSource{lines: tt.lines}, tt.config)
			assert.Equal(t, tt.want, collect(t, b))
		})
	}
}

func TestBatcher_PartitionsInput(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for size := 1; size <= 5; size++ {
			t.Run(fmt.Sprintf("lines=%d/size=%d", n, size), func(t *testing.T) {
				var lines []string
				for i := 0; i < n; i++ {
					lines = append(lines, fmt.Sprintf("%d\n", i))
					if i%3 == 0 {
						lines = append(lines, "\n")
					}
				}

				batches := collect(t, NewBatcher(&sliceSource{lines: lines}, BatcherConfig{Size: size, SkipBlanks: true}))

				assert.Len(t, batches, (n+size-1)/size)
				var flat []string
				for i, batch := range batches {
					if i < len(batches)-1 {
						assert.Len(t, batch, size)
					} else {
						assert.NotEmpty(t, batch)
						assert.LessOrEqual(t, len(batch), size)
					}
					flat = append(flat, batch...)
				}
				for i, line := range flat {
					assert.Equal(t, fmt.Sprint(i), line)
				}
			})
		}
	}
}

func TestBatcher_ReadErrorDropsPartialBatch(t *testing.T) {
	boom := errors.New("boom")
	b := NewBatcher(&sliceSource{lines: []string{"a\n"}, err: boom}, BatcherConfig{Size: 2})

	batch, err := b.Next(context.Background())
	assert.Nil(t, batch)
	assert.ErrorIs(t, err, boom)
}

func TestBatcher_StopsReadingAtSize(t *testing.T) {
	src := &sliceSource{lines: []string{"a\n", "b\n", "c\n"}}
	b := NewBatcher(src, BatcherConfig{Size: 2})

	_, err := b.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.reads)
}

func TestBatcher_HugeSizeWithShortInput(t *testing.T) {
	b := NewBatcher(&sliceSource{lines: []string{"a\n", "b\n"}}, BatcherConfig{Size: 1 << 40, SkipBlanks: true})

	var batches [][]string
	require.NotPanics(t, func() { batches = collect(t, b) })
	assert.Equal(t, [][]string{{"a", "b"}}, batches)
}

func TestBatcher_InvalidUTF8PassesThrough(t *testing.T) {
	b := NewBatcher(&sliceSource{lines: []string{"\xff\xfeok\n"}}, BatcherConfig{Size: 1, SkipBlanks: true})

	assert.Equal(t, [][]string{{"\xff\xfeok"}}, collect(t, b))
}
