package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_ajemi/internal/pool"
	"github.com/baditaflorin/go_ajemi/internal/ports"
)

// DefaultNormalizer lowercases ASCII letters through a precomputed table and
// leaves every other rune alone, so UTF-16 offsets are preserved.
type DefaultNormalizer struct {
	asciiTable [128]byte
	keys       *pool.BytePool
}

// NewDefaultNormalizer creates the ASCII table normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	n := &DefaultNormalizer{keys: pool.NewBytePool(64)}
	for i := 0; i < 128; i++ {
		n.asciiTable[i] = byte(unicode.ToLower(rune(i)))
	}
	return n
}

// Normalize lowercases the ASCII letters of text.
func (n *DefaultNormalizer) Normalize(text string) string {
	changed := false
	for i := 0; i < len(text); i++ {
		if b := text[i]; b < 128 && n.asciiTable[b] != b {
			changed = true
			break
		}
	}
	if !changed {
		return text
	}

	buffer := n.keys.Get()
	defer n.keys.Put(buffer)
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b < 128 {
			b = n.asciiTable[b]
		}
		*buffer = append(*buffer, b)
	}
	return string(*buffer)
}
