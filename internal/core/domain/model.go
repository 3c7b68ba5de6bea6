package domain

import "fmt"

// Entry pairs a typed spelling with the glyph it produces.
type Entry struct {
	Spelling string
	Glyph    string
}

// Kind classifies a dictionary key.
type Kind int

const (
	// Exact marks a key that is itself a complete spelling.
	Exact Kind = iota
	// Unique marks a proper prefix of exactly one spelling.
	Unique
	// Duplicates marks a proper prefix shared by two or more spellings.
	Duplicates
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Unique:
		return "unique"
	case Duplicates:
		return "duplicates"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Candidate explains why a key maps to certain glyph(s).
//
// For Exact, Glyph is the primary glyph and Alternates holds homophones and
// the glyphs of longer spellings the key abbreviates. For Unique, Glyph is the
// only glyph. For Duplicates, Glyph is empty and Alternates lists every glyph
// sharing the prefix. Alternates always keeps dictionary order.
type Candidate struct {
	Kind       Kind
	Glyph      string
	Alternates []string
}

// Resolves reports whether plain segmentation may emit this candidate.
func (c Candidate) Resolves() bool {
	return c.Kind == Exact || c.Kind == Unique
}

// Segment is one glyph-producing span of the typed letters.
// Start and End are offsets in UTF-16 code units.
type Segment struct {
	Start    int
	End      int
	Spelling string
	Glyph    string
}

// Segmentation is the result of segmenting a letter sequence.
type Segmentation struct {
	Segments []Segment
	// Output is the concatenation of every segment glyph.
	Output string
	// Dropped holds the UTF-16 offsets of units that matched nothing.
	Dropped []int
}

// Glyphs returns the emitted glyphs in order.
func (s Segmentation) Glyphs() []string {
	glyphs := make([]string, len(s.Segments))
	for i, seg := range s.Segments {
		glyphs[i] = seg.Glyph
	}
	return glyphs
}

// Boundaries returns the end offset of every segment.
func (s Segmentation) Boundaries() []int {
	ends := make([]int, len(s.Segments))
	for i, seg := range s.Segments {
		ends[i] = seg.End
	}
	return ends
}

// Markers are the four bracket glyphs used by the long glyph transform.
type Markers struct {
	WrapStart string
	WrapEnd   string
	NegStart  string
	NegEnd    string
}

// Conventions configures the long glyph transform for one script.
type Conventions struct {
	Wrappable []string
	Negation  string
	Markers   Markers
}

// Validate checks that every marker is set and distinct from the others.
func (c Conventions) Validate() error {
	if c.Negation == "" {
		return fmt.Errorf("%w: negation glyph is empty", ErrInvalidConventions)
	}
	marks := []string{c.Markers.WrapStart, c.Markers.WrapEnd, c.Markers.NegStart, c.Markers.NegEnd}
	seen := make(map[string]bool, len(marks)+1)
	seen[c.Negation] = true
	for _, m := range marks {
		if m == "" {
			return fmt.Errorf("%w: marker glyph is empty", ErrInvalidConventions)
		}
		if seen[m] {
			return fmt.Errorf("%w: glyph %q used twice", ErrInvalidConventions, m)
		}
		seen[m] = true
	}
	for _, w := range c.Wrappable {
		if w == c.Negation {
			return fmt.Errorf("%w: negation glyph %q cannot be wrappable", ErrInvalidConventions, w)
		}
	}
	return nil
}
