package engine

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/baditaflorin/go_ajemi/internal/adapters/dictionary"
	"github.com/baditaflorin/go_ajemi/internal/adapters/normalizer"
	"github.com/baditaflorin/go_ajemi/internal/core/domain"
	"github.com/baditaflorin/go_ajemi/internal/ports"
)

type record struct {
	level, msg string
}

type recordingLogger struct {
	mu      sync.Mutex
	records []record
}

func (r *recordingLogger) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record{level, msg})
}

func (r *recordingLogger) Debug(msg string, _ ...interface{}) { r.add("debug", msg) }
func (r *recordingLogger) Info(msg string, _ ...interface{})  { r.add("info", msg) }
func (r *recordingLogger) Warn(msg string, _ ...interface{})  { r.add("warn", msg) }
func (r *recordingLogger) Error(msg string, _ ...interface{}) { r.add("error", msg) }
func (r *recordingLogger) Close() error                       { return nil }

func (r *recordingLogger) has(level, msg string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.level == level && rec.msg == msg {
			return true
		}
	}
	return false
}

var _ ports.Converter = (*Engine)(nil)

func configFrom(d dictionary.Dictionary) Config {
	return Config{Name: d.Name, Entries: d.Entries, Puncts: d.Puncts, Conventions: d.Conventions}
}

func newSitelen(t *testing.T) (*Engine, *recordingLogger) {
	t.Helper()
	log := &recordingLogger{}
	e, err := New(configFrom(dictionary.Sitelen()), log, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, log
}

const (
	mi        = "\U000F1934"
	lukin     = "\U000F192E"
	particleE = "\U000F1909"
	lon       = "\U000F192C"
	tomo      = "\U000F196D"
	pona      = "\U000F1954"
	ala       = "\U000F1902"

	longStart    = "\U000F1997"
	longEnd      = "\U000F1998"
	reverseStart = "\U000F199A"
	reverseEnd   = "\U000F199B"
)

func TestSuggest(t *testing.T) {
	eng, log := newSitelen(t)
	if !log.has("info", "Published schema") {
		t.Error("expected schema publication to be logged")
	}

	comp, err := eng.Suggest("MiLukinE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comp.Letters != "milukine" {
		t.Errorf("letters = %q", comp.Letters)
	}
	if comp.Output != mi+lukin+particleE || comp.Raw != comp.Output {
		t.Errorf("output = %q raw = %q", comp.Output, comp.Raw)
	}
	var ends []int
	for _, s := range comp.Segments {
		ends = append(ends, s.End)
	}
	if !reflect.DeepEqual(ends, []int{2, 7, 8}) {
		t.Errorf("boundaries = %v", ends)
	}
}

func TestSuggestAppliesLongGlyph(t *testing.T) {
	eng, _ := newSitelen(t)

	tests := []struct {
		letters string
		want    string
	}{
		{"milontomo", mi + lon + longStart + tomo + longEnd},
		{"ponaalapona", reverseStart + pona + reverseEnd + ala + longStart + pona + longEnd},
		{"lonala", reverseStart + lon + reverseEnd + ala},
	}
	for _, tc := range tests {
		t.Run(tc.letters, func(t *testing.T) {
			got, err := eng.Convert(tc.letters)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Convert(%q) = %q, want %q", tc.letters, got, tc.want)
			}
		})
	}
}

func TestSuggestDropsOrRejectsForeignInput(t *testing.T) {
	eng, _ := newSitelen(t)
	comp, err := eng.Suggest("mi1")
	if err != nil {
		t.Fatalf("lenient mode should not fail: %v", err)
	}
	if comp.Output != mi || !reflect.DeepEqual(comp.Dropped, []int{2}) {
		t.Errorf("comp = %+v", comp)
	}

	cfg := configFrom(dictionary.Sitelen())
	cfg.Strict = true
	if err := eng.Reload(cfg); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	_, err = eng.Suggest("mi1")
	var alpha *domain.AlphabetError
	if !errors.As(err, &alpha) || alpha.Offset != 2 || alpha.Char != '1' {
		t.Errorf("expected AlphabetError at 2, got %v", err)
	}
}

func TestReloadSwapsDictionary(t *testing.T) {
	eng, _ := newSitelen(t)
	if err := eng.Reload(configFrom(dictionary.Emoji())); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if eng.Snapshot().Name != dictionary.EmojiName || eng.Snapshot().Transformer != nil {
		t.Errorf("snapshot = %+v", eng.Snapshot())
	}
	if got, _ := eng.Convert("toki"); got != "💬" {
		t.Errorf("Convert(toki) = %q", got)
	}
	if got := eng.RemapPunct('['); got != '\U0001F58C' {
		t.Errorf("RemapPunct([) = %q", got)
	}
	if got := eng.Homophones("ni"); len(got) != 3 {
		t.Errorf("Homophones(ni) = %v", got)
	}
}

func TestReloadKeepsSnapshotOnError(t *testing.T) {
	eng, log := newSitelen(t)
	err := eng.Reload(Config{Name: "broken"})
	if !errors.Is(err, domain.ErrEmptyDictionary) {
		t.Errorf("expected ErrEmptyDictionary, got %v", err)
	}
	if eng.Snapshot().Name != dictionary.SitelenName {
		t.Error("failed reload replaced the snapshot")
	}
	if !log.has("error", "Rejected dictionary") {
		t.Error("expected rejection to be logged")
	}

	bad := configFrom(dictionary.Sitelen())
	bad.Conventions = &domain.Conventions{}
	if err := eng.Reload(bad); !errors.Is(err, domain.ErrInvalidConventions) {
		t.Errorf("expected ErrInvalidConventions, got %v", err)
	}
}

func TestLookupAndAlphabet(t *testing.T) {
	eng, _ := newSitelen(t)
	c, ok := eng.Lookup("AN")
	if !ok || c.Kind != domain.Duplicates {
		t.Errorf("Lookup(AN) = %+v, %v", c, ok)
	}
	if !eng.InAlphabet('k') || eng.InAlphabet('q') {
		t.Error("alphabet mismatch")
	}
	if got := eng.RemapPunct(' '); got != '　' {
		t.Errorf("RemapPunct(space) = %q", got)
	}
	if !eng.HasPunct('.') || eng.HasPunct('!') {
		t.Error("punctuation table mismatch")
	}
}

func TestIsLetterFollowsNormalizer(t *testing.T) {
	ascii, _ := newSitelen(t)
	folding, err := New(configFrom(dictionary.Sitelen()), nil, normalizer.NewUnicodeNormalizer())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		ch     rune
		ascii  bool
		folded bool
	}{
		{'k', true, true},
		{'K', true, true},
		{'ú', false, true},
		{'Ｌ', false, true},
		{'\u0301', false, true},
		{'q', false, false},
		{'1', false, false},
		{'.', false, false},
	}
	for _, tc := range tests {
		if got := ascii.IsLetter(tc.ch); got != tc.ascii {
			t.Errorf("default IsLetter(%q) = %v, want %v", tc.ch, got, tc.ascii)
		}
		if got := folding.IsLetter(tc.ch); got != tc.folded {
			t.Errorf("unicode IsLetter(%q) = %v, want %v", tc.ch, got, tc.folded)
		}
	}
}

func TestUnicodeNormalizerOffsetsReferToNormalizedText(t *testing.T) {
	e, err := New(configFrom(dictionary.Sitelen()), nil, normalizer.NewUnicodeNormalizer())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	comp, _ := e.Suggest("ｍｉ lúkin")
	if comp.Letters != "mi lukin" {
		t.Errorf("letters = %q", comp.Letters)
	}
	if comp.Raw != mi+lukin {
		t.Errorf("raw = %q", comp.Raw)
	}
}

func TestConcurrentSuggestDuringReload(t *testing.T) {
	eng, _ := newSitelen(t)
	sitelen := configFrom(dictionary.Sitelen())
	emoji := configFrom(dictionary.Emoji())

	var writer sync.WaitGroup
	stop := make(chan struct{})
	writer.Add(1)
	go func() {
		defer writer.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			cfg := sitelen
			if i%2 == 0 {
				cfg = emoji
			}
			if err := eng.Reload(cfg); err != nil {
				t.Errorf("Reload: %v", err)
				return
			}
		}
	}()

	valid := map[string]bool{mi + lukin: true, "👇👀": true}
	var readers sync.WaitGroup
	for i := 0; i < 8; i++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for j := 0; j < 300; j++ {
				got, err := eng.Convert("milukin")
				if err != nil || !valid[got] {
					t.Errorf("Convert = %q, %v", got, err)
					return
				}
			}
		}()
	}
	readers.Wait()
	close(stop)
	writer.Wait()
}
