package punct

import (
	"testing"

	"github.com/baditaflorin/go_ajemi/internal/core/domain"
	"github.com/baditaflorin/go_ajemi/internal/core/schema"
)

func TestRemap(t *testing.T) {
	sc := schema.Build(
		[]domain.Entry{{Spelling: "toki", Glyph: "T"}},
		map[rune]rune{'[': '󱦐', ']': '󱦑', '-': '‍'},
	)

	tests := []struct {
		in   rune
		want rune
	}{
		{'[', '󱦐'},
		{']', '󱦑'},
		{'-', '‍'},
		{'?', '?'},
		{'t', 't'},
	}
	for _, tc := range tests {
		if got := Remap(sc, tc.in); got != tc.want {
			t.Errorf("Remap(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
