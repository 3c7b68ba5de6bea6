package stream

import (
	"context"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_ajemi/internal/ports"
)

// MaxJobQueueSize limits the number of batches waiting for a worker.
const MaxJobQueueSize = 32

type lineJob struct {
	id    int
	lines []string
}

type lineResult struct {
	id    int
	text  string
	stats ports.StreamStats
	err   error
}

// processParallel converts batches of lines on a worker pool and writes the
// results in input order.
func (p *Processor) processParallel(ctx context.Context, reader io.Reader, writer io.Writer) (ports.StreamStats, error) {
	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := p.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan lineJob, MaxJobQueueSize)
	results := make(chan lineResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go p.lineWorker(ctx, jobs, results, &wg)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	in := &countingReader{r: reader}
	readErr := make(chan error, 1)
	// terminated is written by the reader before it reports on readErr.
	var terminated bool
	go func() {
		defer close(jobs)
		scanner, lines, release := p.newScanner(in)
		defer release()

		id := 0
		batch := make([]string, 0, p.config.BatchSize)
		send := func() bool {
			select {
			case jobs <- lineJob{id: id, lines: batch}:
				id++
				batch = make([]string, 0, p.config.BatchSize)
				return true
			case <-ctx.Done():
				return false
			}
		}
		for scanner.Scan() {
			batch = append(batch, scanner.Text())
			if len(batch) == p.config.BatchSize && !send() {
				readErr <- ctx.Err()
				return
			}
		}
		if err := scanner.Err(); err != nil {
			readErr <- err
			return
		}
		if len(batch) > 0 && !send() {
			readErr <- ctx.Err()
			return
		}
		terminated = lines.terminated
		readErr <- nil
	}()

	var stats ports.StreamStats
	out := newCountingWriter(writer)
	pending := make(map[int]lineResult)
	next := 0
	var firstErr error

	for res := range results {
		if firstErr != nil {
			continue
		}
		if res.err != nil {
			firstErr = res.err
			cancel()
			continue
		}
		pending[res.id] = res
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			stats.Lines += ready.stats.Lines
			stats.LetterRuns += ready.stats.LetterRuns
			stats.Punctuation += ready.stats.Punctuation
			if err := out.WriteString(ready.text); err != nil {
				firstErr = err
				cancel()
				break
			}
		}
	}

	if err := <-readErr; firstErr == nil && err != nil {
		firstErr = err
	}
	if firstErr == nil && terminated {
		firstErr = out.WriteString(string(LF))
	}
	if err := out.Flush(); firstErr == nil {
		firstErr = err
	}
	stats.BytesProcessed = in.n
	stats.BytesWritten = out.n
	stats.ProcessingTime = time.Since(start)

	if firstErr != nil {
		p.logger.Warn("Parallel stream conversion failed", "lines", stats.Lines, "error", firstErr)
		return stats, firstErr
	}
	p.logger.Debug("Parallel stream conversion completed",
		"lines", stats.Lines,
		"workers", workers,
		"duration", stats.ProcessingTime,
	)
	return stats, nil
}

func (p *Processor) lineWorker(ctx context.Context, jobs <-chan lineJob, results chan<- lineResult, wg *sync.WaitGroup) {
	defer wg.Done()
	sb := p.builders.Get()
	defer p.builders.Put(sb)

	for job := range jobs {
		res := lineResult{id: job.id}
		if err := ctx.Err(); err != nil {
			res.err = err
		} else {
			sb.Reset()
			for i, line := range job.lines {
				if job.id > 0 || i > 0 {
					sb.WriteByte(LF)
				}
				if res.err = p.convertLine([]byte(line), sb, &res.stats); res.err != nil {
					break
				}
				res.stats.Lines++
			}
			res.text = sb.String()
		}
		// the collector drains results until the channel closes
		results <- res
	}
}
