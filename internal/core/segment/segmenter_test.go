package segment

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/baditaflorin/go_ajemi/internal/adapters/logger"
	"github.com/baditaflorin/go_ajemi/internal/core/domain"
	"github.com/baditaflorin/go_ajemi/internal/core/schema"
)

func build(pairs ...string) *schema.Schema {
	var es []domain.Entry
	for i := 0; i+1 < len(pairs); i += 2 {
		es = append(es, domain.Entry{Spelling: pairs[i], Glyph: pairs[i+1]})
	}
	return schema.Build(es, nil)
}

func TestSegmentSentence(t *testing.T) {
	sc := build("mi", "M", "lukin", "L", "e", "E")
	seg := NewSegmenter(logger.NewNopLogger())

	got := seg.Segment(sc, "milukine")
	if got.Output != "MLE" {
		t.Errorf("output = %q, want MLE", got.Output)
	}
	if want := []int{2, 7, 8}; !reflect.DeepEqual(got.Boundaries(), want) {
		t.Errorf("boundaries = %v, want %v", got.Boundaries(), want)
	}
	if want := []string{"M", "L", "E"}; !reflect.DeepEqual(got.Glyphs(), want) {
		t.Errorf("glyphs = %v, want %v", got.Glyphs(), want)
	}
	if got.Segments[1].Spelling != "lukin" || got.Segments[1].Start != 2 {
		t.Errorf("second segment = %+v", got.Segments[1])
	}
	if len(got.Dropped) != 0 {
		t.Errorf("nothing should be dropped, got %v", got.Dropped)
	}
}

func TestSegmentExactBeatsAbbreviation(t *testing.T) {
	sc := build("ma", "A", "mama", "B")
	seg := NewSegmenter(logger.NewNopLogger())

	tests := []struct {
		letters string
		want    string
	}{
		{"ma", "A"},
		{"mam", "B"},
		{"mama", "B"},
		{"mamama", "BA"},
		{"m", ""},
	}
	for _, tc := range tests {
		t.Run(tc.letters, func(t *testing.T) {
			if got := seg.Segment(sc, tc.letters).Output; got != tc.want {
				t.Errorf("Segment(%q) = %q, want %q", tc.letters, got, tc.want)
			}
		})
	}
}

func TestSegmentEveryEntryAlone(t *testing.T) {
	pairs := []string{
		"a", "1", "akesi", "2", "ala", "3", "alasa", "4", "ale", "5",
		"anpa", "6", "ante", "7", "anu", "8", "awen", "9", "kijetesantakalu", "10",
	}
	sc := build(pairs...)
	seg := NewSegmenter(logger.NewNopLogger())

	for i := 0; i < len(pairs); i += 2 {
		spelling, glyph := pairs[i], pairs[i+1]
		got := seg.Segment(sc, spelling)
		if got.Output != glyph || len(got.Segments) != 1 || got.Segments[0].End != len(spelling) {
			t.Errorf("Segment(%q) = %+v, want single %q", spelling, got, glyph)
		}
	}
}

func TestSegmentUniquePrefixes(t *testing.T) {
	sc := build("kijetesantakalu", "K", "kili", "F", "kiwen", "S")
	seg := NewSegmenter(logger.NewNopLogger())

	for _, prefix := range []string{"kij", "kije", "kijetesan", "kil", "kiw", "kiwe"} {
		c, ok := sc.Lookup(prefix)
		if !ok || c.Kind != domain.Unique {
			t.Fatalf("%q should be a unique prefix", prefix)
		}
		if got := seg.Segment(sc, prefix).Output; got != c.Glyph {
			t.Errorf("Segment(%q) = %q, want %q", prefix, got, c.Glyph)
		}
	}
}

func TestSegmentAmbiguousPrefixDropsEverything(t *testing.T) {
	sc := build("anpa", "P", "ante", "T")
	seg := NewSegmenter(logger.NewNopLogger())

	got := seg.Segment(sc, "an")
	if got.Output != "" || len(got.Segments) != 0 {
		t.Errorf("ambiguous prefix should produce nothing, got %+v", got)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(got.Dropped, want) {
		t.Errorf("dropped = %v, want %v", got.Dropped, want)
	}
}

func TestSegmentDropsUnmatchedAndContinues(t *testing.T) {
	sc := build("mi", "M", "lukin", "L")
	seg := NewSegmenter(logger.NewNopLogger())

	got := seg.Segment(sc, "xmiqlukin")
	if got.Output != "ML" {
		t.Errorf("output = %q, want ML", got.Output)
	}
	if want := []int{0, 3}; !reflect.DeepEqual(got.Dropped, want) {
		t.Errorf("dropped = %v, want %v", got.Dropped, want)
	}
	if want := []int{3, 9}; !reflect.DeepEqual(got.Boundaries(), want) {
		t.Errorf("boundaries = %v, want %v", got.Boundaries(), want)
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	sc := build("mi", "M")
	got := NewSegmenter(logger.NewNopLogger()).Segment(sc, "")
	if got.Output != "" || len(got.Segments) != 0 || len(got.Dropped) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestSegmentOffsetsAreCodeUnits(t *testing.T) {
	sc := build("𝒶", "S", "b", "B")
	got := NewSegmenter(logger.NewNopLogger()).Segment(sc, "𝒶b")
	if want := []int{2, 3}; !reflect.DeepEqual(got.Boundaries(), want) {
		t.Errorf("boundaries = %v, want %v", got.Boundaries(), want)
	}
	if got.Segments[0].Spelling != "𝒶" {
		t.Errorf("spelling = %q", got.Segments[0].Spelling)
	}
}

func TestSegmentConcurrentUse(t *testing.T) {
	sc := build("mi", "M", "lukin", "L", "e", "E", "sina", "S")
	seg := NewSegmenter(logger.NewNopLogger())

	inputs := map[string]string{
		"milukine":  "MLE",
		"sinalukin": "SL",
		"emi":       "EM",
	}
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				for in, want := range inputs {
					if got := seg.Segment(sc, in).Output; got != want {
						errs <- in + " -> " + got
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Errorf("concurrent mismatch: %s", e)
	}
}

func TestValidate(t *testing.T) {
	sc := build("mi", "M")

	if err := Validate(sc, schema.Units("mim")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := Validate(sc, schema.Units("mi𝒶"))
	var alpha *domain.AlphabetError
	if !errors.As(err, &alpha) {
		t.Fatalf("expected AlphabetError, got %v", err)
	}
	if alpha.Offset != 2 || alpha.Char != '𝒶' {
		t.Errorf("got offset %d char %q", alpha.Offset, alpha.Char)
	}
	if !errors.Is(err, domain.ErrOutsideAlphabet) {
		t.Error("AlphabetError should match ErrOutsideAlphabet")
	}
}
