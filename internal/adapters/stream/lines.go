package stream

import (
	"bufio"
	"bytes"
	"io"
)

const (
	CR = '\r'
	LF = '\n'
)

// scanLines splits on LF, CRLF and a bare CR. A trailing CR at the end of the
// buffer is held back until the next byte shows whether an LF follows it.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == LF {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == LF {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// lineSplitter wraps scanLines and remembers whether the last token it
// returned ended in a line break.
type lineSplitter struct {
	terminated bool
}

func (s *lineSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := scanLines(data, atEOF)
	if token != nil {
		s.terminated = advance > len(token)
	}
	return advance, token, err
}

// countingReader records how many bytes were read through it.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// countingWriter wraps a buffered writer and records bytes written.
type countingWriter struct {
	w *bufio.Writer
	n int64
}

func newCountingWriter(w io.Writer) *countingWriter {
	if w == nil {
		w = io.Discard
	}
	return &countingWriter{w: bufio.NewWriter(w)}
}

func (c *countingWriter) WriteString(s string) error {
	n, err := c.w.WriteString(s)
	c.n += int64(n)
	return err
}

func (c *countingWriter) Flush() error {
	return c.w.Flush()
}
