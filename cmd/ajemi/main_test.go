package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	ajemi "github.com/baditaflorin/go_ajemi"
	"github.com/baditaflorin/l"
)

func TestValidateInputs(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		file    string
		format  string
		wantErr bool
	}{
		{"text", "mi", "", "text", false},
		{"stdin json", "", "", "json", false},
		{"text and file", "mi", "in.txt", "text", true},
		{"bad format", "", "", "yaml", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inputText, inputFile, outputFormat = tc.text, tc.file, tc.format
			if err := validateInputs(); (err != nil) != tc.wantErr {
				t.Errorf("validateInputs() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestSegmentWords(t *testing.T) {
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{Output: io.Discard})
	if err != nil {
		t.Fatalf("creating logger: %v", err)
	}
	defer logger.Close()
	ime, err := ajemi.New(ajemi.WithLogger(logger))
	if err != nil {
		t.Fatalf("ajemi.New: %v", err)
	}

	words := segmentWords(ime, "milukin  tomo")
	if len(words) != 2 {
		t.Fatalf("got %d words", len(words))
	}
	if got := words[0].Spelling; len(got) != 2 || got[0] != "mi" || got[1] != "lukin" {
		t.Errorf("spellings = %v", got)
	}
	if words[1].Output != "\U000F196D" {
		t.Errorf("output = %q", words[1].Output)
	}
}

func TestNewIMEWithRimeKeepsDictTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lon-tomo.dict.yaml")
	rime := "\U000F192C\tlon\n\U000F196D\ttomo\n"
	if err := os.WriteFile(path, []byte(rime), 0o644); err != nil {
		t.Fatalf("writing dictionary: %v", err)
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{Output: io.Discard})
	if err != nil {
		t.Fatalf("creating logger: %v", err)
	}
	defer logger.Close()

	defer func(d, r string, n bool) { dictName, rimeFile, noLongGlyph = d, r, n }(dictName, rimeFile, noLongGlyph)
	tests := []struct {
		name        string
		noLongGlyph bool
		want        string
	}{
		{"long glyphs", false, "\U000F192C\U000F1997\U000F196D\U000F1998"},
		{"no long glyphs", true, "\U000F192C\U000F196D"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dictName, rimeFile, noLongGlyph = ajemi.Sitelen, path, tc.noLongGlyph
			ime, err := newIME(logger)
			if err != nil {
				t.Fatalf("newIME: %v", err)
			}
			if got, _ := ime.Convert("lontomo"); got != tc.want {
				t.Errorf("Convert = %q, want %q", got, tc.want)
			}
			if got := ime.RemapPunct(' '); got != '　' {
				t.Errorf("RemapPunct(space) = %q", got)
			}
		})
	}
}
