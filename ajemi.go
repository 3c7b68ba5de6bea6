// Package ajemi converts typed toki pona letters into glyph text.
//
// Letters are segmented greedily against a dictionary of spellings, each
// segment is replaced by its glyph, and scripts with long glyph conventions
// (sitelen pona) get their extension and negation markers inserted. The
// dictionary can be swapped at runtime without disturbing calls in flight.
//
// Configuration uses functional options:
//
//	ime, err := ajemi.New(ajemi.WithDictionary("emoji"), ajemi.WithStrictAlphabet())
package ajemi

import (
	"context"
	"fmt"
	"io"

	"github.com/baditaflorin/go_ajemi/internal/adapters/dictionary"
	"github.com/baditaflorin/go_ajemi/internal/adapters/logger"
	"github.com/baditaflorin/go_ajemi/internal/adapters/normalizer"
	"github.com/baditaflorin/go_ajemi/internal/adapters/stream"
	"github.com/baditaflorin/go_ajemi/internal/core/domain"
	"github.com/baditaflorin/go_ajemi/internal/core/schema"
	"github.com/baditaflorin/go_ajemi/internal/engine"
	"github.com/baditaflorin/go_ajemi/internal/ports"
	"github.com/baditaflorin/go_ajemi/internal/warmup"
	"github.com/baditaflorin/l"
)

type (
	// Entry maps one spelling to one glyph.
	Entry = domain.Entry
	// Candidate is what the dictionary holds for a spelling or prefix.
	Candidate = domain.Candidate
	// Segment is one matched spelling and its glyph.
	Segment = domain.Segment
	// Conventions configures the long glyph transform.
	Conventions = domain.Conventions
	// Markers are the four glyphs the long glyph transform inserts.
	Markers = domain.Markers
	// Composition is the result of converting a composition buffer.
	Composition = engine.Composition
	// Stats summarizes a loaded dictionary.
	Stats = schema.Stats
	// AlphabetError reports the first character no spelling uses.
	AlphabetError = domain.AlphabetError
	// WarmupConfig controls WarmUp.
	WarmupConfig = warmup.WarmupConfig
)

// Candidate kinds.
const (
	Exact      = domain.Exact
	Unique     = domain.Unique
	Duplicates = domain.Duplicates
)

// Errors returned by this package. Test for them with errors.Is.
var (
	ErrOutsideAlphabet    = domain.ErrOutsideAlphabet
	ErrEmptySpelling      = domain.ErrEmptySpelling
	ErrEmptyDictionary    = domain.ErrEmptyDictionary
	ErrUnknownDictionary  = domain.ErrUnknownDictionary
	ErrInvalidConventions = domain.ErrInvalidConventions
	ErrMalformedEntry     = domain.ErrMalformedEntry
)

// Built-in dictionary names.
const (
	Sitelen = dictionary.SitelenName
	Emoji   = dictionary.EmojiName
)

// DefaultDictionary is used when no dictionary option is given.
const DefaultDictionary = Sitelen

// Config holds configuration options for the IME.
type Config struct {
	// Dictionary names a built-in dictionary. Ignored when Entries is set.
	Dictionary string
	// Name, Entries and Puncts describe a custom dictionary.
	Name    string
	Entries []Entry
	Puncts  map[rune]rune
	// Conventions overrides the dictionary's long glyph conventions.
	Conventions *Conventions
	// NoConventions disables the long glyph transform.
	NoConventions bool
	// UnicodeNormalization folds width, strips combining marks and lowercases
	// every script. Offsets then refer to the normalized letters.
	UnicodeNormalization bool
	// StrictAlphabet rejects input containing letters no spelling uses
	// instead of dropping them.
	StrictAlphabet bool
	// WarmUp exercises the conversion path once New succeeds.
	WarmUp       bool
	WarmupConfig WarmupConfig
	// Logger for tracing dictionary loads and dropped input.
	Logger l.Logger
}

// Option defines a functional option for configuring the IME.
type Option func(*Config)

// WithDictionary selects a built-in dictionary by name.
func WithDictionary(name string) Option {
	return func(cfg *Config) {
		cfg.Dictionary = name
	}
}

// WithEntries loads a custom dictionary.
func WithEntries(name string, entries []Entry, puncts map[rune]rune) Option {
	return func(cfg *Config) {
		cfg.Name = name
		cfg.Entries = entries
		cfg.Puncts = puncts
	}
}

// WithConventions sets the long glyph conventions.
func WithConventions(conv Conventions) Option {
	return func(cfg *Config) {
		cfg.Conventions = &conv
		cfg.NoConventions = false
	}
}

// WithoutConventions disables the long glyph transform.
func WithoutConventions() Option {
	return func(cfg *Config) {
		cfg.Conventions = nil
		cfg.NoConventions = true
	}
}

// WithUnicodeNormalizer enables full Unicode normalization of input.
func WithUnicodeNormalizer() Option {
	return func(cfg *Config) {
		cfg.UnicodeNormalization = true
	}
}

// WithStrictAlphabet rejects letters outside the dictionary alphabet.
func WithStrictAlphabet() Option {
	return func(cfg *Config) {
		cfg.StrictAlphabet = true
	}
}

// WithWarmUp warms up the IME with the default warmup configuration.
func WithWarmUp() Option {
	return func(cfg *Config) {
		cfg.WarmUp = true
		cfg.WarmupConfig = warmup.DefaultWarmupConfig()
	}
}

// WithWarmUpConfig warms up the IME with a custom configuration.
func WithWarmUpConfig(wc WarmupConfig) Option {
	return func(cfg *Config) {
		cfg.WarmUp = true
		cfg.WarmupConfig = wc
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// IME converts letters with the currently loaded dictionary. It is safe for
// concurrent use.
type IME struct {
	engine     *engine.Engine
	normalizer ports.Normalizer
	logger     ports.Logger
	ownsLogger bool
	config     Config
}

// New creates an IME with the provided functional options. If no logger is
// provided, a default logger writing to stdout is created and closed by Close.
func New(opts ...Option) (*IME, error) {
	cfg := Config{Dictionary: DefaultDictionary}
	for _, opt := range opts {
		opt(&cfg)
	}

	ime := &IME{config: cfg}
	if cfg.Logger != nil {
		ime.logger = logger.FromExisting(cfg.Logger)
	} else {
		log, err := logger.NewStdLogger()
		if err != nil {
			return nil, fmt.Errorf("creating default logger: %w", err)
		}
		ime.logger = log
		ime.ownsLogger = true
	}

	normType := normalizer.DefaultNormalizerType
	if cfg.UnicodeNormalization {
		normType = normalizer.UnicodeNormalizerType
	}
	ime.normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(normType)

	engCfg, err := ime.engineConfig(cfg)
	if err != nil {
		ime.closeLogger()
		return nil, err
	}
	eng, err := engine.New(engCfg, ime.logger, ime.normalizer)
	if err != nil {
		ime.closeLogger()
		return nil, err
	}
	ime.engine = eng

	if cfg.WarmUp {
		ime.WarmUp(context.Background())
	}
	return ime, nil
}

func (ime *IME) engineConfig(cfg Config) (engine.Config, error) {
	var dict dictionary.Dictionary
	if len(cfg.Entries) > 0 {
		dict = dictionary.Dictionary{Name: cfg.Name, Entries: cfg.Entries, Puncts: cfg.Puncts}
		if dict.Name == "" {
			dict.Name = "custom"
		}
	} else {
		var err error
		if dict, err = dictionary.Lookup(cfg.Dictionary); err != nil {
			return engine.Config{}, err
		}
	}
	switch {
	case cfg.NoConventions:
		dict.Conventions = nil
	case cfg.Conventions != nil:
		dict.Conventions = cfg.Conventions
	}
	return engine.Config{
		Name:        dict.Name,
		Entries:     dict.Entries,
		Puncts:      dict.Puncts,
		Conventions: dict.Conventions,
		Strict:      cfg.StrictAlphabet,
	}, nil
}

// Suggest converts letters and returns the segmentation alongside the output.
func (ime *IME) Suggest(letters string) (Composition, error) {
	return ime.engine.Suggest(letters)
}

// Convert returns the glyph text for letters.
func (ime *IME) Convert(letters string) (string, error) {
	return ime.engine.Convert(letters)
}

// RemapPunct returns the script punctuation for ch, or ch itself.
func (ime *IME) RemapPunct(ch rune) rune {
	return ime.engine.RemapPunct(ch)
}

// InAlphabet reports whether ch can appear in a spelling.
func (ime *IME) InAlphabet(ch rune) bool {
	return ime.engine.InAlphabet(ch)
}

// HasPunct reports whether the dictionary remaps ch.
func (ime *IME) HasPunct(ch rune) bool {
	return ime.engine.HasPunct(ch)
}

// Lookup returns the candidate stored for a spelling or spelling prefix.
func (ime *IME) Lookup(key string) (Candidate, bool) {
	return ime.engine.Lookup(key)
}

// Homophones returns the other glyphs sharing key's exact spelling.
func (ime *IME) Homophones(key string) []string {
	return ime.engine.Homophones(key)
}

// Dictionary returns the name of the loaded dictionary.
func (ime *IME) Dictionary() string {
	return ime.engine.Snapshot().Name
}

// Stats summarizes the loaded dictionary.
func (ime *IME) Stats() Stats {
	return ime.engine.Snapshot().Schema.Stats()
}

// UseDictionary swaps in a built-in dictionary, keeping the configured
// strictness and convention overrides. On error the current dictionary stays.
func (ime *IME) UseDictionary(name string) error {
	cfg := ime.config
	cfg.Dictionary = name
	cfg.Entries = nil
	engCfg, err := ime.engineConfig(cfg)
	if err != nil {
		return err
	}
	return ime.engine.Reload(engCfg)
}

// Load swaps in a custom dictionary. A nil conv disables the long glyph
// transform.
func (ime *IME) Load(name string, entries []Entry, puncts map[rune]rune, conv *Conventions) error {
	return ime.engine.Reload(engine.Config{
		Name:        name,
		Entries:     entries,
		Puncts:      puncts,
		Conventions: conv,
		Strict:      ime.config.StrictAlphabet,
	})
}

// LoadRime reads a Rime dictionary from r and swaps it in.
func (ime *IME) LoadRime(name string, r io.Reader, puncts map[rune]rune, conv *Conventions) error {
	entries, err := dictionary.ReadRime(r)
	if err != nil {
		return fmt.Errorf("reading dictionary %q: %w", name, err)
	}
	return ime.Load(name, entries, puncts, conv)
}

// LoadRimeScript reads a Rime dictionary from r and swaps it in with the
// punctuation table and long glyph conventions of the built-in dictionary
// script. The configured convention overrides still apply.
func (ime *IME) LoadRimeScript(script, name string, r io.Reader) error {
	cfg := ime.config
	cfg.Dictionary = script
	cfg.Entries = nil
	engCfg, err := ime.engineConfig(cfg)
	if err != nil {
		return err
	}
	entries, err := dictionary.ReadRime(r)
	if err != nil {
		return fmt.Errorf("reading dictionary %q: %w", name, err)
	}
	engCfg.Name = name
	engCfg.Entries = entries
	return ime.engine.Reload(engCfg)
}

// Converter returns the IME as a converter for the streaming adapters.
func (ime *IME) Converter() ports.Converter {
	return ime.engine
}

// WarmUp exercises the conversion path with sample text.
func (ime *IME) WarmUp(ctx context.Context) {
	wc := ime.config.WarmupConfig
	if wc.Iterations == 0 {
		wc = warmup.DefaultWarmupConfig()
	}
	m := warmup.NewManager(ime.logger, wc)
	m.RegisterNormalizer(ime.normalizer)
	m.RegisterConverter(ime.engine)
	m.RegisterStreamProcessor(stream.NewProcessorFactory(ime.logger).
		CreateProcessor(stream.SequentialProcessor, ime.engine, stream.ProcessingConfig{}))
	m.WarmUp(ctx)
}

// Logger returns the logger the IME writes to.
func (ime *IME) Logger() ports.Logger {
	return ime.logger
}

// Close releases the default logger if New created one.
func (ime *IME) Close() error {
	return ime.closeLogger()
}

func (ime *IME) closeLogger() error {
	if ime.ownsLogger {
		return ime.logger.Close()
	}
	return nil
}

// Dictionaries lists the built-in dictionary names.
func Dictionaries() []string {
	return dictionary.Names()
}
