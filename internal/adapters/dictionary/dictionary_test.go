package dictionary

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/baditaflorin/go_ajemi/internal/adapters/logger"
	"github.com/baditaflorin/go_ajemi/internal/core/domain"
	"github.com/baditaflorin/go_ajemi/internal/core/longglyph"
	"github.com/baditaflorin/go_ajemi/internal/core/schema"
	"github.com/baditaflorin/go_ajemi/internal/core/segment"
)

func TestSitelenSchema(t *testing.T) {
	d := Sitelen()
	if err := schema.ValidateEntries(d.Entries); err != nil {
		t.Fatalf("invalid entries: %v", err)
	}
	sc := schema.Build(d.Entries, d.Puncts)

	li, _ := sc.Lookup("li")
	want := []string{"\U000F1928", "\U000F1929", "\U000F192A"} // lili, linja, lipu
	if li.Kind != domain.Exact || li.Glyph != "\U000F1927" || !reflect.DeepEqual(li.Alternates, want) {
		t.Errorf("li = %+v", li)
	}

	kije, _ := sc.Lookup("kije")
	if kije.Kind != domain.Unique || kije.Glyph != "\U000F1980" {
		t.Errorf("kije = %+v", kije)
	}

	an, _ := sc.Lookup("an")
	if an.Kind != domain.Duplicates || len(an.Alternates) != 3 {
		t.Errorf("an = %+v", an)
	}

	if got := sc.RemapPunct(' '); got != '　' {
		t.Errorf("space remaps to %q", got)
	}
}

func TestSitelenEveryEntrySegmentsAlone(t *testing.T) {
	d := Sitelen()
	sc := schema.Build(d.Entries, d.Puncts)
	seg := segment.NewSegmenter(logger.NewNopLogger())

	for _, e := range d.Entries {
		got := seg.Segment(sc, e.Spelling)
		if got.Output != e.Glyph || len(got.Segments) != 1 {
			t.Errorf("Segment(%q) = %q, want %q", e.Spelling, got.Output, e.Glyph)
		}
	}
}

func TestSitelenSentenceWithLongGlyph(t *testing.T) {
	d := Sitelen()
	sc := schema.Build(d.Entries, d.Puncts)
	seg := segment.NewSegmenter(logger.NewNopLogger())
	tr, err := longglyph.New(*d.Conventions)
	if err != nil {
		t.Fatalf("conventions: %v", err)
	}

	// mi lon tomo: lon opens a region that runs to the end
	res := seg.Segment(sc, "milontomo")
	got := strings.Join(tr.Apply(res.Glyphs()), "")
	want := "\U000F1934\U000F192C\U000F1997\U000F196D\U000F1998"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmojiHomophones(t *testing.T) {
	d := Emoji()
	if d.Conventions != nil {
		t.Error("emoji has no long glyph conventions")
	}
	sc := schema.Build(d.Entries, d.Puncts)
	if got := sc.Homophones("ni"); len(got) != 3 {
		t.Errorf("ni homophones = %v", got)
	}
	if got := sc.RemapPunct('['); got != '\U0001F58C' {
		t.Errorf("[ remaps to %q", got)
	}
}

func TestBuiltinsAreCopies(t *testing.T) {
	d := Sitelen()
	d.Entries[0].Glyph = "X"
	d.Puncts['['] = 'X'
	d.Conventions.Wrappable[0] = "X"

	fresh := Sitelen()
	if fresh.Entries[0].Glyph == "X" || fresh.Puncts['['] == 'X' || fresh.Conventions.Wrappable[0] == "X" {
		t.Error("built-in tables were mutated through a returned copy")
	}
}

func TestLookup(t *testing.T) {
	if got := Names(); !reflect.DeepEqual(got, []string{EmojiName, SitelenName}) {
		t.Errorf("Names() = %v", got)
	}
	if d, err := Lookup(EmojiName); err != nil || d.Name != EmojiName {
		t.Errorf("Lookup(emoji) = %v, %v", d.Name, err)
	}
	if _, err := Lookup("klingon"); !errors.Is(err, domain.ErrUnknownDictionary) {
		t.Errorf("expected ErrUnknownDictionary, got %v", err)
	}
}

func TestReadRime(t *testing.T) {
	src := "---\nname: ajemi\nversion: \"1\"\n...\n\n# comment\n\U000F1934\tmi\t100\r\n\U000F192E\tlukin\n\n"
	entries, err := ReadRime(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.Entry{
		{Spelling: "mi", Glyph: "\U000F1934"},
		{Spelling: "lukin", Glyph: "\U000F192E"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %+v, want %+v", entries, want)
	}
}

func TestReadRimeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"missing spelling", "X\n", domain.ErrMalformedEntry},
		{"empty spelling", "X\t \n", domain.ErrMalformedEntry},
		{"unterminated header", "---\nname: x\n", domain.ErrMalformedEntry},
		{"no entries", "# nothing\n", domain.ErrEmptyDictionary},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadRime(strings.NewReader(tc.src)); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
