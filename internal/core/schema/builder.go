package schema

import (
	"fmt"
	"slices"

	"github.com/baditaflorin/go_ajemi/internal/core/domain"
)

// Build classifies entries, processed in order, into a Schema.
//
// A full spelling always keeps its Exact identity. A later entry with the same
// spelling becomes an alternate (and a homophone). A longer spelling whose
// proper prefix equals an existing spelling is recorded in that spelling's
// alternates rather than replacing it. Entries with empty spellings are a
// caller error; see ValidateEntries.
func Build(entries []domain.Entry, puncts map[rune]rune) *Schema {
	cands := make(map[string]*domain.Candidate, len(entries)*4)
	homophones := make(map[string][]string)
	alphabet := make(map[uint16]struct{})

	for _, e := range entries {
		units := Units(e.Spelling)
		for _, u := range units {
			alphabet[u] = struct{}{}
		}
		key := string(PackKey(make([]byte, 0, 2*len(units)), units))

		switch c, ok := cands[key]; {
		case ok && c.Kind == domain.Exact:
			c.Alternates = append(c.Alternates, e.Glyph)
			homophones[key] = append(homophones[key], e.Glyph)
			continue
		case ok && c.Kind == domain.Unique:
			// the spelling was so far only a prefix of earlier entries
			cands[key] = &domain.Candidate{Kind: domain.Exact, Glyph: e.Glyph, Alternates: []string{c.Glyph}}
		case ok:
			cands[key] = &domain.Candidate{Kind: domain.Exact, Glyph: e.Glyph, Alternates: c.Alternates}
		default:
			cands[key] = &domain.Candidate{Kind: domain.Exact, Glyph: e.Glyph}
		}

		for n := 1; n < len(units); n++ {
			prefix := key[:2*n]
			c, ok := cands[prefix]
			switch {
			case !ok:
				cands[prefix] = &domain.Candidate{Kind: domain.Unique, Glyph: e.Glyph}
			case c.Kind == domain.Unique:
				c.Kind = domain.Duplicates
				c.Alternates = []string{c.Glyph, e.Glyph}
				c.Glyph = ""
			default:
				c.Alternates = append(c.Alternates, e.Glyph)
			}
		}
	}

	s := &Schema{
		candidates: make(map[string]domain.Candidate, len(cands)),
		homophones: homophones,
		puncts:     make(map[rune]rune, len(puncts)),
		alphabet:   alphabet,
		entries:    len(entries),
	}
	for k, c := range cands {
		c.Alternates = slices.Clip(c.Alternates)
		s.candidates[k] = *c
	}
	for from, to := range puncts {
		s.puncts[from] = to
	}
	return s
}

// ValidateEntries rejects dictionaries Build cannot classify meaningfully.
func ValidateEntries(entries []domain.Entry) error {
	if len(entries) == 0 {
		return domain.ErrEmptyDictionary
	}
	for i, e := range entries {
		if e.Spelling == "" {
			return fmt.Errorf("entry %d (glyph %q): %w", i, e.Glyph, domain.ErrEmptySpelling)
		}
	}
	return nil
}
