package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrOutsideAlphabet: segmentation input contains a unit no spelling uses.
	ErrOutsideAlphabet = errors.New("input outside dictionary alphabet")
	// ErrEmptySpelling: a dictionary entry has an empty spelling.
	ErrEmptySpelling = errors.New("empty spelling")
	// ErrEmptyDictionary: no entries were supplied.
	ErrEmptyDictionary = errors.New("empty dictionary")
	// ErrUnknownDictionary: no built-in dictionary has the requested name.
	ErrUnknownDictionary = errors.New("unknown dictionary")
	// ErrInvalidConventions: long glyph markers are missing or clash.
	ErrInvalidConventions = errors.New("invalid glyph conventions")
	// ErrMalformedEntry: a dictionary source line could not be parsed.
	ErrMalformedEntry = errors.New("malformed dictionary entry")
)

// AlphabetError reports the first input unit outside the alphabet.
type AlphabetError struct {
	Offset int
	Char   rune
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", ErrOutsideAlphabet, e.Char, e.Offset)
}

func (e *AlphabetError) Is(target error) bool {
	return target == ErrOutsideAlphabet
}
