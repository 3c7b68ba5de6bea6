package stream

import (
	"github.com/baditaflorin/go_ajemi/internal/ports"
)

// ProcessorMode selects how a stream is scheduled.
type ProcessorMode int

const (
	// SequentialProcessor converts lines on the calling goroutine.
	SequentialProcessor ProcessorMode = iota

	// ParallelProcessor converts batches of lines on a worker pool.
	ParallelProcessor
)

// String returns the mode name used in flags and logs.
func (m ProcessorMode) String() string {
	if m == ParallelProcessor {
		return "parallel"
	}
	return "sequential"
}

// ProcessorFactory creates stream processors sharing one logger.
type ProcessorFactory struct {
	logger ports.Logger
}

// NewProcessorFactory creates a new processor factory
func NewProcessorFactory(logger ports.Logger) *ProcessorFactory {
	return &ProcessorFactory{logger: logger}
}

// CreateProcessor creates a processor for conv. The mode overrides
// config.UseParallel.
func (f *ProcessorFactory) CreateProcessor(mode ProcessorMode, conv ports.Converter, config ProcessingConfig) ports.StreamProcessor {
	config.UseParallel = mode == ParallelProcessor
	f.logger.Debug("Creating stream processor",
		"mode", mode.String(),
		"batch_size", config.BatchSize,
		"workers", config.Workers,
	)
	return NewProcessor(f.logger, conv, config)
}
