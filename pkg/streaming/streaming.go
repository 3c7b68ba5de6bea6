// Package streaming converts whole documents with an ajemi.IME, line by line,
// optionally on a worker pool.
package streaming

import (
	"context"
	"io"
	"strings"

	ajemi "github.com/baditaflorin/go_ajemi"
	"github.com/baditaflorin/go_ajemi/internal/adapters/logger"
	"github.com/baditaflorin/go_ajemi/internal/adapters/stream"
	"github.com/baditaflorin/go_ajemi/internal/ports"
	"github.com/baditaflorin/l"
)

// StreamResult summarizes one converted stream.
type StreamResult struct {
	Lines          int    `json:"lines"`
	LetterRuns     int    `json:"letter_runs"`
	Punctuation    int    `json:"punctuation"`
	BytesProcessed int64  `json:"bytes_processed"`
	BytesWritten   int64  `json:"bytes_written"`
	ProcessingTime string `json:"processing_time"` // Duration as string for easy display
}

// StreamingOption defines a functional option for configuring a Converter
type StreamingOption func(*streamingConfig)

type streamingConfig struct {
	ChunkSize int
	BatchSize int
	Workers   int
	Parallel  bool
	Logger    ports.Logger
}

// WithStreamingChunkSize sets the initial read buffer size
func WithStreamingChunkSize(size int) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.ChunkSize = size
	}
}

// WithBatchSize sets how many lines a worker converts at once
func WithBatchSize(size int) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.BatchSize = size
	}
}

// WithParallel converts on workers goroutines. Zero uses one per CPU.
func WithParallel(workers int) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Parallel = true
		cfg.Workers = workers
	}
}

// WithStreamingLogger sets a custom logger for stream conversion
func WithStreamingLogger(log l.Logger) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Logger = logger.FromExisting(log)
	}
}

// Converter converts streams with the dictionary currently loaded in an IME.
type Converter struct {
	processor ports.StreamProcessor
	logger    ports.Logger
}

// NewConverter creates a stream converter backed by ime. It logs to the IME's
// logger unless WithStreamingLogger is given.
func NewConverter(ime *ajemi.IME, opts ...StreamingOption) *Converter {
	config := &streamingConfig{
		ChunkSize: stream.DefaultChunkSize,
		BatchSize: stream.DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.Logger == nil {
		config.Logger = ime.Logger()
	}

	mode := stream.SequentialProcessor
	if config.Parallel {
		mode = stream.ParallelProcessor
	}
	proc := stream.NewProcessorFactory(config.Logger).CreateProcessor(mode, ime.Converter(), stream.ProcessingConfig{
		ChunkSize: config.ChunkSize,
		BatchSize: config.BatchSize,
		Workers:   config.Workers,
	})
	return &Converter{processor: proc, logger: config.Logger}
}

// ConvertStream reads text from r and writes its glyph conversion to w.
func (c *Converter) ConvertStream(ctx context.Context, r io.Reader, w io.Writer) (StreamResult, error) {
	stats, err := c.processor.ProcessStream(ctx, r, w)
	res := StreamResult{
		Lines:          stats.Lines,
		LetterRuns:     stats.LetterRuns,
		Punctuation:    stats.Punctuation,
		BytesProcessed: stats.BytesProcessed,
		BytesWritten:   stats.BytesWritten,
		ProcessingTime: stats.ProcessingTime.String(),
	}
	if err != nil {
		c.logger.Error("Stream conversion failed", "error", err, "lines", stats.Lines)
	}
	return res, err
}

// ConvertString converts a whole text held in memory.
func (c *Converter) ConvertString(ctx context.Context, text string) (string, StreamResult, error) {
	var sb strings.Builder
	sb.Grow(len(text) * 2)
	res, err := c.ConvertStream(ctx, strings.NewReader(text), &sb)
	return sb.String(), res, err
}
