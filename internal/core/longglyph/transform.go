// Package longglyph combines a finished glyph sequence according to a
// script's long glyph conventions.
//
// Glyphs of the wrappable set open a region that stays open until the next
// negation glyph or the end of the sequence. A negation glyph brackets the
// glyph before it with the negation markers; if that same glyph follows the
// negation immediately, it is wrapped in the plain markers as a repeat.
package longglyph

import (
	"github.com/baditaflorin/go_ajemi/internal/core/domain"
)

// Transformer applies one set of conventions. It is immutable and safe for
// concurrent use; per-sequence state lives in a Session.
type Transformer struct {
	wrappable map[string]struct{}
	negation  string
	markers   domain.Markers
}

// New validates conv and builds a Transformer from it.
func New(conv domain.Conventions) (*Transformer, error) {
	if err := conv.Validate(); err != nil {
		return nil, err
	}
	t := &Transformer{
		wrappable: make(map[string]struct{}, len(conv.Wrappable)),
		negation:  conv.Negation,
		markers:   conv.Markers,
	}
	for _, w := range conv.Wrappable {
		t.wrappable[w] = struct{}{}
	}
	return t, nil
}

// Apply transforms a whole glyph sequence.
func (t *Transformer) Apply(glyphs []string) []string {
	sess := t.NewSession()
	for _, g := range glyphs {
		sess.Push(g)
	}
	return sess.Finish()
}

// Session is the single-pass state machine over one glyph sequence.
type Session struct {
	t   *Transformer
	out []string

	open bool
	// bareStart is set while the last emission is a wrap start we emitted
	bareStart  bool
	pending    string
	hasPending bool
}

// NewSession starts an empty sequence.
func (t *Transformer) NewSession() *Session {
	return &Session{t: t}
}

// Open reports whether a wrapping region is active.
func (s *Session) Open() bool { return s.open }

// PendingRepeat returns the negated glyph awaiting a possible repeat.
func (s *Session) PendingRepeat() (string, bool) { return s.pending, s.hasPending }

// Output returns the glyphs emitted so far, without closing an open region.
func (s *Session) Output() []string {
	return append([]string(nil), s.out...)
}

// Push feeds the next glyph.
func (s *Session) Push(ch string) {
	m := s.t.markers
	switch {
	case ch == s.t.negation:
		if s.bareStart {
			// the region opened right before is empty
			s.out = s.out[:len(s.out)-1]
			s.open = false
			s.bareStart = false
		}
		if len(s.out) == 0 {
			s.out = append(s.out, ch)
			return
		}
		prev := s.out[len(s.out)-1]
		s.out = s.out[:len(s.out)-1]
		if s.open {
			s.out = append(s.out, m.WrapEnd)
			s.open = false
		}
		s.out = append(s.out, m.NegStart, prev, m.NegEnd, ch)
		s.pending, s.hasPending = prev, true

	case s.hasPending && ch == s.pending:
		s.out = append(s.out, m.WrapStart, ch, m.WrapEnd)
		s.bareStart = false
		s.pending, s.hasPending = "", false

	default:
		s.pending, s.hasPending = "", false
		s.emit(ch)
	}
}

func (s *Session) emit(ch string) {
	s.out = append(s.out, ch)
	s.bareStart = false
	if _, ok := s.t.wrappable[ch]; ok && !s.open {
		s.out = append(s.out, s.t.markers.WrapStart)
		s.open = true
		s.bareStart = true
	}
}

// Finish closes any open region and returns the final sequence.
// The session must not be used afterwards.
func (s *Session) Finish() []string {
	if s.open {
		if s.bareStart {
			s.out = s.out[:len(s.out)-1]
		} else {
			s.out = append(s.out, s.t.markers.WrapEnd)
		}
		s.open = false
		s.bareStart = false
	}
	return s.out
}
