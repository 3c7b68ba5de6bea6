package benchmark

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/baditaflorin/go_ajemi/internal/adapters/dictionary"
	"github.com/baditaflorin/go_ajemi/internal/adapters/logger"
	"github.com/baditaflorin/go_ajemi/internal/adapters/stream"
	"github.com/baditaflorin/go_ajemi/internal/warmup"
)

// generateLines creates lineCount lines of sample text
func generateLines(lineCount int) string {
	line := strings.ReplaceAll(warmup.GenerateSampleText(60), ".\n", ". ")
	var sb strings.Builder
	sb.Grow(lineCount * (len(line) + 1))
	for i := 0; i < lineCount; i++ {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkStreamProcessing compares sequential and parallel stream conversion
func BenchmarkStreamProcessing(b *testing.B) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conv := newEngine(b, dictionary.Sitelen())
	factory := stream.NewProcessorFactory(logger.NewNopLogger())

	inputs := []struct {
		name  string
		lines int
	}{
		{"Small", 50},
		{"Medium", 500},
		{"Large", 5000},
	}
	modes := []stream.ProcessorMode{stream.SequentialProcessor, stream.ParallelProcessor}

	for _, mode := range modes {
		proc := factory.CreateProcessor(mode, conv, stream.ProcessingConfig{BatchSize: 100})
		for _, in := range inputs {
			text := generateLines(in.lines)
			b.Run(fmt.Sprintf("%s-%s", mode, in.name), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(text)))
				for i := 0; i < b.N; i++ {
					if _, err := proc.ProcessStream(ctx, strings.NewReader(text), io.Discard); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
