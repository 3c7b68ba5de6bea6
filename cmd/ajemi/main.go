package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ajemi "github.com/baditaflorin/go_ajemi"
	"github.com/baditaflorin/go_ajemi/pkg/streaming"
	"github.com/baditaflorin/l"
)

// Command-line flags
var (
	dictName     string
	rimeFile     string
	inputText    string
	inputFile    string
	outputFormat string
	unicodeNorm  bool
	strict       bool
	noLongGlyph  bool
	parallel     bool
	workers      int
	timeout      time.Duration
	verbose      bool
)

func init() {
	flag.StringVar(&dictName, "dict", ajemi.DefaultDictionary, "Built-in dictionary: "+strings.Join(ajemi.Dictionaries(), ", "))
	flag.StringVar(&rimeFile, "rime", "", "Load a Rime dictionary file, keeping the punctuation and long glyphs of -dict")

	flag.StringVar(&inputText, "text", "", "Text to convert")
	flag.StringVar(&inputFile, "file", "", "File to convert (default: stdin)")

	flag.BoolVar(&unicodeNorm, "unicode", false, "Fold width, strip accents and lowercase all input")
	flag.BoolVar(&strict, "strict", false, "Fail on letters outside the dictionary alphabet")
	flag.BoolVar(&noLongGlyph, "no-long-glyph", false, "Disable long glyph markers")

	flag.BoolVar(&parallel, "parallel", false, "Convert on a worker pool (for large files)")
	flag.IntVar(&workers, "workers", 0, "Worker count for -parallel (0 = one per CPU)")
	flag.DurationVar(&timeout, "timeout", 5*time.Minute, "Give up after this long")

	flag.StringVar(&outputFormat, "output", "text", "Output format: 'text' or 'json'")
	flag.BoolVar(&verbose, "verbose", false, "Log to stderr and show segmentation for -text")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -text \"mi lukin e sina\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -dict emoji -file story.txt -parallel\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  echo milontomo | %s -output json\n", os.Args[0])
	}
}

// Result is the JSON output of one conversion.
type Result struct {
	Dictionary string                 `json:"dictionary"`
	Output     string                 `json:"output"`
	Stats      streaming.StreamResult `json:"stats"`
	Words      []WordResult           `json:"words,omitempty"`
}

// WordResult shows how one word was segmented.
type WordResult struct {
	Letters  string   `json:"letters"`
	Spelling []string `json:"spellings"`
	Output   string   `json:"output"`
	Dropped  []int    `json:"dropped,omitempty"`
}

func main() {
	flag.Parse()
	if err := validateInputs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// validateInputs validates the command-line inputs
func validateInputs() error {
	if inputText != "" && inputFile != "" {
		return fmt.Errorf("use either -text or -file, not both")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("invalid output format: %s. Must be 'text' or 'json'", outputFormat)
	}
	if workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logOutput := io.Discard
	if verbose {
		logOutput = os.Stderr
	}
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:     logOutput,
		JsonFormat: false,
		AsyncWrite: false,
		AddSource:  false,
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Close()

	ime, err := newIME(logger)
	if err != nil {
		return err
	}

	input, err := openInput()
	if err != nil {
		return err
	}
	defer input.Close()

	var opts []streaming.StreamingOption
	if parallel {
		opts = append(opts, streaming.WithParallel(workers))
	}
	conv := streaming.NewConverter(ime, opts...)

	if outputFormat == "text" && !verbose {
		_, err := conv.ConvertStream(ctx, input, os.Stdout)
		return err
	}

	var out strings.Builder
	stats, err := conv.ConvertStream(ctx, input, &out)
	if err != nil {
		return err
	}
	res := Result{Dictionary: ime.Dictionary(), Output: out.String(), Stats: stats}
	if inputText != "" {
		res.Words = segmentWords(ime, inputText)
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printText(res)
	return nil
}

func newIME(logger l.Logger) (*ajemi.IME, error) {
	opts := []ajemi.Option{ajemi.WithLogger(logger), ajemi.WithDictionary(dictName)}
	if unicodeNorm {
		opts = append(opts, ajemi.WithUnicodeNormalizer())
	}
	if strict {
		opts = append(opts, ajemi.WithStrictAlphabet())
	}
	if noLongGlyph {
		opts = append(opts, ajemi.WithoutConventions())
	}
	ime, err := ajemi.New(opts...)
	if err != nil {
		return nil, err
	}
	if rimeFile == "" {
		return ime, nil
	}

	f, err := os.Open(rimeFile)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()
	if err := ime.LoadRimeScript(dictName, rimeFile, f); err != nil {
		return nil, err
	}
	return ime, nil
}

// openInput returns the -text, -file or stdin reader.
func openInput() (io.ReadCloser, error) {
	switch {
	case inputText != "":
		return io.NopCloser(strings.NewReader(inputText)), nil
	case inputFile != "":
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("error reading input file: %w", err)
		}
		return f, nil
	default:
		return io.NopCloser(os.Stdin), nil
	}
}

func segmentWords(ime *ajemi.IME, text string) []WordResult {
	var words []WordResult
	for _, word := range strings.Fields(text) {
		comp, err := ime.Suggest(word)
		if err != nil {
			words = append(words, WordResult{Letters: word, Output: err.Error()})
			continue
		}
		wr := WordResult{Letters: comp.Letters, Output: comp.Output, Dropped: comp.Dropped}
		for _, seg := range comp.Segments {
			wr.Spelling = append(wr.Spelling, seg.Spelling)
		}
		words = append(words, wr)
	}
	return words
}

func printText(res Result) {
	fmt.Print(res.Output)
	fmt.Fprintf(os.Stderr, "\n=== %s ===\n", res.Dictionary)
	for _, w := range res.Words {
		fmt.Fprintf(os.Stderr, "%-16s %-24s %s", w.Letters, strings.Join(w.Spelling, "|"), w.Output)
		if len(w.Dropped) > 0 {
			fmt.Fprintf(os.Stderr, "  dropped %v", w.Dropped)
		}
		fmt.Fprintln(os.Stderr)
	}
	fmt.Fprintf(os.Stderr, "Lines: %d\n", res.Stats.Lines)
	fmt.Fprintf(os.Stderr, "Letter runs: %d\n", res.Stats.LetterRuns)
	fmt.Fprintf(os.Stderr, "Bytes processed: %d\n", res.Stats.BytesProcessed)
	fmt.Fprintf(os.Stderr, "Processing time: %s\n", res.Stats.ProcessingTime)
}
