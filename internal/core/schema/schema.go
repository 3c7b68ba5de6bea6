// Package schema classifies a closed dictionary of spellings into exact
// spellings, unique abbreviating prefixes and ambiguous prefixes.
//
// Keys are indexed by UTF-16 code units, the unit host text buffers use for
// composition offsets. A key is stored packed, two big-endian bytes per unit,
// so a segmenter can look up any sub-slice of its packed input without
// allocating.
package schema

import (
	"slices"
	"unicode"
	"unicode/utf16"

	"github.com/baditaflorin/go_ajemi/internal/core/domain"
)

// Schema is the immutable lookup structure produced by Build.
// It is safe for concurrent use; nothing mutates it after construction.
type Schema struct {
	candidates map[string]domain.Candidate
	homophones map[string][]string
	puncts     map[rune]rune
	alphabet   map[uint16]struct{}
	entries    int
}

// Stats summarises a Schema.
type Stats struct {
	Entries    int `json:"entries"`
	Keys       int `json:"keys"`
	Exact      int `json:"exact"`
	Unique     int `json:"unique"`
	Duplicates int `json:"duplicates"`
	Puncts     int `json:"puncts"`
	Alphabet   int `json:"alphabet"`
}

// PackKey appends the packed form of units to dst.
func PackKey(dst []byte, units []uint16) []byte {
	for _, u := range units {
		dst = append(dst, byte(u>>8), byte(u))
	}
	return dst
}

// Units converts a string to UTF-16 code units.
func Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Lookup returns the candidate stored for a spelling or prefix.
// The returned Alternates slice is a copy.
func (s *Schema) Lookup(key string) (domain.Candidate, bool) {
	c, ok := s.candidates[string(PackKey(nil, Units(key)))]
	if !ok {
		return domain.Candidate{}, false
	}
	c.Alternates = slices.Clone(c.Alternates)
	return c, true
}

// Resolve returns the glyph plain segmentation emits for a packed key.
// Absent keys and Duplicates never resolve.
func (s *Schema) Resolve(packed []byte) (string, bool) {
	c, ok := s.candidates[string(packed)]
	if !ok || !c.Resolves() {
		return "", false
	}
	return c.Glyph, true
}

// Homophones returns the glyphs of later entries spelled exactly like key,
// in dictionary order. Glyphs of longer spellings are not included.
func (s *Schema) Homophones(key string) []string {
	return slices.Clone(s.homophones[string(PackKey(nil, Units(key)))])
}

// RemapPunct returns the remapped punctuation for ch, or ch itself.
func (s *Schema) RemapPunct(ch rune) rune {
	if r, ok := s.puncts[ch]; ok {
		return r
	}
	return ch
}

// HasPunct reports whether ch has a punctuation remap.
func (s *Schema) HasPunct(ch rune) bool {
	_, ok := s.puncts[ch]
	return ok
}

// InAlphabetUnit reports whether some spelling uses the code unit u.
func (s *Schema) InAlphabetUnit(u uint16) bool {
	_, ok := s.alphabet[u]
	return ok
}

// InAlphabet reports whether every code unit of r is used by some spelling.
func (s *Schema) InAlphabet(r rune) bool {
	if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
		return s.InAlphabetUnit(uint16(r1)) && s.InAlphabetUnit(uint16(r2))
	}
	return r <= 0xFFFF && s.InAlphabetUnit(uint16(r))
}

// Stats counts keys by kind.
func (s *Schema) Stats() Stats {
	st := Stats{
		Entries:  s.entries,
		Keys:     len(s.candidates),
		Puncts:   len(s.puncts),
		Alphabet: len(s.alphabet),
	}
	for _, c := range s.candidates {
		switch c.Kind {
		case domain.Exact:
			st.Exact++
		case domain.Unique:
			st.Unique++
		case domain.Duplicates:
			st.Duplicates++
		}
	}
	return st
}
