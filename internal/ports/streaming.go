package ports

import (
	"context"
	"io"
	"time"
)

// StreamStats holds the outcome of converting a text stream.
type StreamStats struct {
	Lines          int
	LetterRuns     int
	Punctuation    int
	BytesProcessed int64
	BytesWritten   int64
	ProcessingTime time.Duration
}

// StreamProcessor converts a text stream line by line.
type StreamProcessor interface {
	ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer) (StreamStats, error)
}
