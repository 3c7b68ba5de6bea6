package ports

// Converter turns typed letters into final glyph text.
type Converter interface {
	// Convert segments letters and applies the script conventions.
	Convert(letters string) (string, error)
	// RemapPunct returns the script punctuation for ch, or ch itself.
	RemapPunct(ch rune) rune
	// InAlphabet reports whether ch can appear in a spelling.
	InAlphabet(ch rune) bool
	// IsLetter reports whether ch is spelled with alphabet letters once the
	// typed-input normalizer has run over it.
	IsLetter(ch rune) bool
}
