// Package dictionary supplies the spelling tables the engine is built from:
// the built-in scripts and a reader for Rime dictionary files.
package dictionary

import (
	"fmt"
	"maps"
	"slices"

	"github.com/baditaflorin/go_ajemi/internal/core/domain"
)

// Built-in dictionary names.
const (
	SitelenName = "sitelen"
	EmojiName   = "emoji"
)

// Dictionary is one script's configuration: entries, punctuation remaps and
// the optional long glyph conventions.
type Dictionary struct {
	Name        string
	Entries     []domain.Entry
	Puncts      map[rune]rune
	Conventions *domain.Conventions
}

// Sitelen returns the sitelen pona dictionary.
func Sitelen() Dictionary {
	conv := sitelenConventions
	conv.Wrappable = slices.Clone(sitelenConventions.Wrappable)
	return Dictionary{
		Name:        SitelenName,
		Entries:     slices.Clone(sitelenEntries),
		Puncts:      maps.Clone(sitelenPuncts),
		Conventions: &conv,
	}
}

// Emoji returns the emoji dictionary. It has no long glyph conventions.
func Emoji() Dictionary {
	return Dictionary{
		Name:    EmojiName,
		Entries: slices.Clone(emojiEntries),
		Puncts:  maps.Clone(emojiPuncts),
	}
}

var builtins = map[string]func() Dictionary{
	SitelenName: Sitelen,
	EmojiName:   Emoji,
}

// Lookup returns the built-in dictionary called name.
func Lookup(name string) (Dictionary, error) {
	fn, ok := builtins[name]
	if !ok {
		return Dictionary{}, fmt.Errorf("%w: %q", domain.ErrUnknownDictionary, name)
	}
	return fn(), nil
}

// Names lists the built-in dictionaries in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(builtins))
}
