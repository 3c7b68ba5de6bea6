// Package stream converts whole documents with a ports.Converter, one line at
// a time, so text larger than memory can be transliterated.
package stream

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/baditaflorin/go_ajemi/internal/pool"
	"github.com/baditaflorin/go_ajemi/internal/ports"
)

const (
	// DefaultChunkSize is the initial read buffer size.
	DefaultChunkSize = 64 * 1024

	// MaxLineSize bounds a single line. Longer lines fail with bufio.ErrTooLong.
	MaxLineSize = 1024 * 1024

	// DefaultBatchSize is the number of lines handed to a worker at once.
	DefaultBatchSize = 100

	// ContextCheckFrequency is how many lines are processed between
	// cancellation checks.
	ContextCheckFrequency = 500
)

// ProcessingConfig defines how a Processor reads and schedules its work.
type ProcessingConfig struct {
	ChunkSize   int
	BatchSize   int
	UseParallel bool
	// Workers is the number of goroutines for parallel processing. Zero means
	// runtime.NumCPU().
	Workers int
}

// Processor converts a text stream. Runs of alphabet letters go through the
// converter and every other rune through its punctuation table. Line breaks
// are written back as LF, and the output ends in LF only when the input does.
type Processor struct {
	logger    ports.Logger
	converter ports.Converter
	chunks    *pool.BytePool
	builders  *pool.BuilderPool
	config    ProcessingConfig
}

// NewProcessor creates a processor for conv.
func NewProcessor(logger ports.Logger, conv ports.Converter, config ProcessingConfig) *Processor {
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultChunkSize
	}
	if config.ChunkSize > MaxLineSize {
		config.ChunkSize = MaxLineSize
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	return &Processor{
		logger:    logger,
		converter: conv,
		chunks:    pool.NewBytePool(config.ChunkSize),
		builders:  pool.NewBuilderPool(),
		config:    config,
	}
}

// ProcessStream reads lines from reader and writes their conversion to
// writer. A nil writer only collects statistics.
func (p *Processor) ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer) (ports.StreamStats, error) {
	if p.config.UseParallel {
		return p.processParallel(ctx, reader, writer)
	}
	return p.processSequential(ctx, reader, writer)
}

func (p *Processor) newScanner(r io.Reader) (*bufio.Scanner, *lineSplitter, func()) {
	chunk := p.chunks.Get()
	lines := &lineSplitter{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer((*chunk)[:cap(*chunk)], MaxLineSize)
	scanner.Split(lines.split)
	return scanner, lines, func() { p.chunks.Put(chunk) }
}

func (p *Processor) processSequential(ctx context.Context, reader io.Reader, writer io.Writer) (ports.StreamStats, error) {
	start := time.Now()
	var stats ports.StreamStats

	in := &countingReader{r: reader}
	out := newCountingWriter(writer)
	scanner, lines, release := p.newScanner(in)
	defer release()

	finish := func(err error) (ports.StreamStats, error) {
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
		stats.BytesProcessed = in.n
		stats.BytesWritten = out.n
		stats.ProcessingTime = time.Since(start)
		return stats, err
	}

	sb := p.builders.Get()
	defer p.builders.Put(sb)

	for scanner.Scan() {
		if stats.Lines%ContextCheckFrequency == 0 {
			select {
			case <-ctx.Done():
				p.logger.Warn("Stream conversion cancelled", "lines", stats.Lines, "error", ctx.Err())
				return finish(ctx.Err())
			default:
			}
		}

		sb.Reset()
		if stats.Lines > 0 {
			sb.WriteByte(LF)
		}
		if err := p.convertLine(scanner.Bytes(), sb, &stats); err != nil {
			p.logger.Error("Line conversion failed", "line", stats.Lines+1, "error", err)
			return finish(err)
		}
		stats.Lines++
		if err := out.WriteString(sb.String()); err != nil {
			return finish(err)
		}
	}
	if err := scanner.Err(); err != nil {
		p.logger.Warn("Error reading from input", "error", err)
		return finish(err)
	}
	if lines.terminated {
		if err := out.WriteString(string(LF)); err != nil {
			return finish(err)
		}
	}

	stats, err := finish(nil)
	p.logger.Debug("Stream conversion completed",
		"lines", stats.Lines,
		"letter_runs", stats.LetterRuns,
		"bytes_processed", stats.BytesProcessed,
		"duration", stats.ProcessingTime,
	)
	return stats, err
}

// convertLine appends the conversion of line to sb.
func (p *Processor) convertLine(line []byte, sb *strings.Builder, stats *ports.StreamStats) error {
	runStart := -1
	flush := func(end int) error {
		if runStart < 0 {
			return nil
		}
		out, err := p.converter.Convert(string(line[runStart:end]))
		if err != nil {
			return err
		}
		sb.WriteString(out)
		stats.LetterRuns++
		runStart = -1
		return nil
	}

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRune(line[i:])
		if p.converter.IsLetter(r) {
			if runStart < 0 {
				runStart = i
			}
			i += size
			continue
		}
		if err := flush(i); err != nil {
			return err
		}
		mapped := p.converter.RemapPunct(r)
		if mapped != r {
			stats.Punctuation++
		}
		sb.WriteRune(mapped)
		i += size
	}
	return flush(len(line))
}
