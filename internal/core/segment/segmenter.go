// Package segment splits typed letters into glyph-producing spans by greedy
// longest match against a schema.
package segment

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/baditaflorin/go_ajemi/internal/core/domain"
	"github.com/baditaflorin/go_ajemi/internal/core/schema"
	"github.com/baditaflorin/go_ajemi/internal/pool"
	"github.com/baditaflorin/go_ajemi/internal/ports"
)

// typical composition buffers are short words typed without spaces
const defaultBufferUnits = 64

// Segmenter performs greedy longest-match segmentation.
// It holds no per-call state and is safe for concurrent use.
type Segmenter struct {
	logger ports.Logger
	keys   *pool.BytePool
	units  *pool.UnitPool
}

// NewSegmenter creates a segmenter that logs through logger.
func NewSegmenter(logger ports.Logger) *Segmenter {
	return &Segmenter{
		logger: logger,
		keys:   pool.NewBytePool(2 * defaultBufferUnits),
		units:  pool.NewUnitPool(defaultBufferUnits),
	}
}

// Segment converts letters to UTF-16 units and segments them.
func (s *Segmenter) Segment(sc *schema.Schema, letters string) domain.Segmentation {
	units := s.units.Get()
	defer s.units.Put(units)
	for _, r := range letters {
		*units = utf16.AppendRune(*units, r)
	}
	return s.SegmentUnits(sc, *units)
}

// SegmentUnits segments units left to right.
//
// At each position the longest slice whose candidate is Exact or Unique is
// emitted and matching restarts after it. Duplicates never match. When not
// even a single unit matches, that unit is dropped and recorded in Dropped.
func (s *Segmenter) SegmentUnits(sc *schema.Schema, units []uint16) domain.Segmentation {
	key := s.keys.Get()
	defer s.keys.Put(key)
	*key = schema.PackKey(*key, units)
	packed := *key

	var (
		result domain.Segmentation
		out    strings.Builder
	)
	from, to := 0, len(units)
	for from < to {
		if glyph, ok := sc.Resolve(packed[2*from : 2*to]); ok {
			result.Segments = append(result.Segments, domain.Segment{
				Start:    from,
				End:      to,
				Spelling: string(utf16.Decode(units[from:to])),
				Glyph:    glyph,
			})
			out.WriteString(glyph)
			from, to = to, len(units)
			continue
		}
		if to-1 > from {
			to--
			continue
		}
		result.Dropped = append(result.Dropped, from)
		from, to = from+1, len(units)
	}
	result.Output = out.String()

	s.logger.Debug("Segmented letters",
		"letters", string(utf16.Decode(units)),
		"segments", len(result.Segments),
		"dropped", len(result.Dropped),
		"output", result.Output,
	)
	return result
}

// Validate returns an *domain.AlphabetError for the first unit that no
// spelling in sc uses.
func Validate(sc *schema.Schema, units []uint16) error {
	for i, u := range units {
		if sc.InAlphabetUnit(u) {
			continue
		}
		ch := rune(u)
		if utf16.IsSurrogate(ch) && i+1 < len(units) {
			if r := utf16.DecodeRune(ch, rune(units[i+1])); r != unicode.ReplacementChar {
				ch = r
			}
		}
		return &domain.AlphabetError{Offset: i, Char: ch}
	}
	return nil
}
