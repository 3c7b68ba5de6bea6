package warmup

import (
	"context"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_ajemi/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size in bytes
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager exercises the hot paths once before real traffic so pools are
// filled and lookups are paged in.
type Manager struct {
	logger      ports.Logger
	converters  []ports.Converter
	processors  []ports.StreamProcessor
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterConverter adds a converter to be warmed up
func (wm *Manager) RegisterConverter(conv ports.Converter) {
	wm.converters = append(wm.converters, conv)
}

// RegisterStreamProcessor adds a stream processor to be warmed up
func (wm *Manager) RegisterStreamProcessor(proc ports.StreamProcessor) {
	wm.processors = append(wm.processors, proc)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs every registered component until the iterations are done or
// the configured duration expires.
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.converters)+len(wm.processors)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	sample := GenerateSampleText(wm.config.SampleTextSize)
	words := strings.Fields(sample)

	if len(wm.normalizers) > 0 {
		wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))
		wm.run(ctx, wm.config.Iterations, func(int) {
			for _, n := range wm.normalizers {
				_ = n.Normalize(sample)
			}
		})
	}

	if len(wm.converters) > 0 && len(words) > 0 {
		wm.logger.Debug("Warming up converters", "count", len(wm.converters))
		wm.run(ctx, wm.config.Iterations, func(j int) {
			// whole sentences exercise the long glyph transform
			letters := words[j%len(words)] + words[(j+1)%len(words)]
			for _, c := range wm.converters {
				_, _ = c.Convert(letters)
				_ = c.RemapPunct('.')
			}
		})
	}

	if len(wm.processors) > 0 {
		wm.logger.Debug("Warming up stream processors", "count", len(wm.processors))
		wm.run(ctx, wm.config.Iterations/10, func(int) {
			for _, p := range wm.processors {
				_, _ = p.ProcessStream(ctx, strings.NewReader(sample), io.Discard)
			}
		})
	}

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// run calls fn iterations times on each of the configured goroutines.
func (wm *Manager) run(ctx context.Context, iterations int, fn func(iteration int)) {
	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				fn(offset + j)
			}
		}(i)
	}
	wg.Wait()
}

var sampleWords = []string{
	"mi", "sina", "ona", "li", "e", "pona", "toki", "lukin", "moku", "tomo",
	"lon", "tawa", "kepeken", "ala", "awen", "ken", "pi", "jan", "sitelen",
	"kama", "sona", "nasin", "ilo", "lipu", "suli", "lili", "mute", "wile",
}

// GenerateSampleText creates lowercase toki pona text of about size bytes,
// with a sentence break every eight words.
func GenerateSampleText(size int) string {
	var sb strings.Builder
	sb.Grow(size + 16)
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			if i%8 == 0 {
				sb.WriteString(".\n")
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(sampleWords[i%len(sampleWords)])
	}
	return sb.String()
}
