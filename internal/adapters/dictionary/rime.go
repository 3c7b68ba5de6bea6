package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/baditaflorin/go_ajemi/internal/core/domain"
)

// ReadRime parses a Rime *.dict.yaml table.
//
// An optional YAML header opened by "---" is skipped up to its "..." line.
// Every remaining non-blank, non-comment line is "glyph<TAB>spelling" with an
// optional third weight column, which is ignored. Entries keep file order.
func ReadRime(r io.Reader) ([]domain.Entry, error) {
	scanner := bufio.NewScanner(r)
	var (
		entries  []domain.Entry
		lineNo   int
		inHeader bool
		started  bool
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if !started {
			if strings.TrimSpace(line) == "" {
				continue
			}
			started = true
			if line == "---" {
				inHeader = true
				continue
			}
		}
		if inHeader {
			if line == "..." {
				inHeader = false
			}
			continue
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 || fields[0] == "" || strings.TrimSpace(fields[1]) == "" {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, domain.ErrMalformedEntry, line)
		}
		entries = append(entries, domain.Entry{
			Spelling: strings.TrimSpace(fields[1]),
			Glyph:    fields[0],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	if inHeader {
		return nil, fmt.Errorf("line %d: %w: unterminated header", lineNo, domain.ErrMalformedEntry)
	}
	if len(entries) == 0 {
		return nil, domain.ErrEmptyDictionary
	}
	return entries, nil
}
