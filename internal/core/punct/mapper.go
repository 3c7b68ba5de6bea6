// Package punct remaps punctuation typed outside a composition.
package punct

import (
	"github.com/baditaflorin/go_ajemi/internal/core/schema"
)

// Remap returns the schema's replacement for ch, or ch when none is set.
func Remap(sc *schema.Schema, ch rune) rune {
	return sc.RemapPunct(ch)
}
