// Package engine ties the schema, segmenter, punctuation table and long glyph
// transform into the composition pipeline an input method host calls.
package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/baditaflorin/go_ajemi/internal/adapters/logger"
	"github.com/baditaflorin/go_ajemi/internal/adapters/normalizer"
	"github.com/baditaflorin/go_ajemi/internal/core/domain"
	"github.com/baditaflorin/go_ajemi/internal/core/longglyph"
	"github.com/baditaflorin/go_ajemi/internal/core/punct"
	"github.com/baditaflorin/go_ajemi/internal/core/schema"
	"github.com/baditaflorin/go_ajemi/internal/core/segment"
	"github.com/baditaflorin/go_ajemi/internal/ports"
)

// Config describes one dictionary configuration.
type Config struct {
	Name        string
	Entries     []domain.Entry
	Puncts      map[rune]rune
	Conventions *domain.Conventions
	// Strict rejects input containing units no spelling uses.
	Strict bool
}

// Validate checks the entries and conventions.
func (c Config) Validate() error {
	if err := schema.ValidateEntries(c.Entries); err != nil {
		return err
	}
	if c.Conventions != nil {
		if err := c.Conventions.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot is one published configuration. A call loads the snapshot once
// and uses it to the end, so a concurrent Reload never affects it.
type Snapshot struct {
	Name        string
	Schema      *schema.Schema
	Transformer *longglyph.Transformer
	Strict      bool
	BuiltAt     time.Time
}

// Composition is the result of converting one composition buffer.
type Composition struct {
	// Letters is the normalized input all offsets refer to.
	Letters  string
	Segments []domain.Segment
	Dropped  []int
	// Raw is the segmented output before the long glyph transform.
	Raw string
	// Output is the final text handed to the host.
	Output string
}

// Engine converts typed letters. It is safe for concurrent use.
type Engine struct {
	current    atomic.Pointer[Snapshot]
	segmenter  *segment.Segmenter
	normalizer ports.Normalizer
	logger     ports.Logger
}

// New builds the first snapshot from cfg. A nil logger discards records and a
// nil normalizer selects the default ASCII normalizer.
func New(cfg Config, log ports.Logger, norm ports.Normalizer) (*Engine, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}
	if norm == nil {
		norm = normalizer.NewDefaultNormalizer()
	}
	e := &Engine{
		segmenter:  segment.NewSegmenter(log),
		normalizer: norm,
		logger:     log,
	}
	if err := e.Reload(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Reload builds a new snapshot from cfg and publishes it atomically.
// On error the current snapshot stays in place.
func (e *Engine) Reload(cfg Config) error {
	snap, err := buildSnapshot(cfg)
	if err != nil {
		e.logger.Error("Rejected dictionary", "name", cfg.Name, "error", err)
		return fmt.Errorf("loading dictionary %q: %w", cfg.Name, err)
	}
	prev := e.current.Swap(snap)

	st := snap.Schema.Stats()
	kv := []interface{}{
		"name", snap.Name,
		"entries", st.Entries,
		"keys", st.Keys,
		"exact", st.Exact,
		"unique", st.Unique,
		"duplicates", st.Duplicates,
		"long_glyph", snap.Transformer != nil,
	}
	if prev != nil {
		kv = append(kv, "replaced", prev.Name)
	}
	e.logger.Info("Published schema", kv...)
	return nil
}

func buildSnapshot(cfg Config) (*Snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	snap := &Snapshot{
		Name:    cfg.Name,
		Schema:  schema.Build(cfg.Entries, cfg.Puncts),
		Strict:  cfg.Strict,
		BuiltAt: time.Now(),
	}
	if cfg.Conventions != nil {
		tr, err := longglyph.New(*cfg.Conventions)
		if err != nil {
			return nil, err
		}
		snap.Transformer = tr
	}
	return snap, nil
}

// Snapshot returns the currently published configuration.
func (e *Engine) Snapshot() *Snapshot {
	return e.current.Load()
}

// Suggest normalizes letters, segments them and applies the long glyph
// transform. Unmatched units are dropped unless the snapshot is strict.
func (e *Engine) Suggest(letters string) (Composition, error) {
	snap := e.current.Load()
	letters = e.normalizer.Normalize(letters)

	units := schema.Units(letters)
	if snap.Strict {
		if err := segment.Validate(snap.Schema, units); err != nil {
			e.logger.Warn("Rejected composition", "letters", letters, "error", err)
			return Composition{Letters: letters}, err
		}
	}

	res := e.segmenter.SegmentUnits(snap.Schema, units)
	comp := Composition{
		Letters:  letters,
		Segments: res.Segments,
		Dropped:  res.Dropped,
		Raw:      res.Output,
		Output:   res.Output,
	}
	if snap.Transformer != nil && len(res.Segments) > 0 {
		comp.Output = strings.Join(snap.Transformer.Apply(res.Glyphs()), "")
	}
	if len(res.Dropped) > 0 {
		e.logger.Debug("Dropped unmatched input", "letters", letters, "offsets", res.Dropped)
	}
	return comp, nil
}

// Convert returns only the final output of Suggest.
func (e *Engine) Convert(letters string) (string, error) {
	comp, err := e.Suggest(letters)
	if err != nil {
		return "", err
	}
	return comp.Output, nil
}

// RemapPunct remaps ch with the current punctuation table.
func (e *Engine) RemapPunct(ch rune) rune {
	return punct.Remap(e.current.Load().Schema, ch)
}

// InAlphabet reports whether ch is used by some spelling.
func (e *Engine) InAlphabet(ch rune) bool {
	return e.current.Load().Schema.InAlphabet(ch)
}

// IsLetter reports whether ch normalizes to alphabet letters, so full-width
// and accented forms join a letter run. A rune the normalizer removes
// entirely, such as a combining mark, stays inside its run.
func (e *Engine) IsLetter(ch rune) bool {
	sc := e.current.Load().Schema
	if sc.InAlphabet(ch) {
		return true
	}
	for _, r := range e.normalizer.Normalize(string(ch)) {
		if !sc.InAlphabet(r) {
			return false
		}
	}
	return true
}

// HasPunct reports whether the punctuation table has an entry for ch.
func (e *Engine) HasPunct(ch rune) bool {
	return e.current.Load().Schema.HasPunct(ch)
}

// Lookup returns the candidate for a spelling or prefix, for hosts that want
// to show alternatives. Segmentation never resolves Duplicates on its own.
func (e *Engine) Lookup(key string) (domain.Candidate, bool) {
	return e.current.Load().Schema.Lookup(e.normalizer.Normalize(key))
}

// Homophones returns the other glyphs spelled exactly like key.
func (e *Engine) Homophones(key string) []string {
	return e.current.Load().Schema.Homophones(e.normalizer.Normalize(key))
}
