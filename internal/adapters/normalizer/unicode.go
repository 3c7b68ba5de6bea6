package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_ajemi/internal/ports"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// UnicodeNormalizer folds full-width letters to their narrow forms, strips
// combining marks and lowercases. It may change the length of its input, so
// composition offsets refer to the normalized text.
type UnicodeNormalizer struct{}

// NewUnicodeNormalizer creates the x/text based normalizer.
func NewUnicodeNormalizer() ports.Normalizer {
	return &UnicodeNormalizer{}
}

// Normalize applies width folding, mark stripping, NFC and lowercasing.
// Chains and casers are stateful, so each call builds its own.
func (n *UnicodeNormalizer) Normalize(text string) string {
	chain := transform.Chain(
		width.Fold,
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		cases.Lower(language.Und),
	)
	out, _, err := transform.String(chain, text)
	if err != nil {
		return text
	}
	return out
}
