package logger

import (
	"bytes"
	"testing"
)

func TestDefaultConfigFallsBackToStdout(t *testing.T) {
	cfg := DefaultConfig(nil)
	if cfg.Output == nil {
		t.Fatal("expected a default output")
	}
	if cfg.JsonFormat {
		t.Error("expected text format by default")
	}
}

func TestCustomStdLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig(&buf)
	cfg.AsyncWrite = false

	lg, err := NewCustomStdLogger(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lg.Info("schema published", "keys", 3)
	if err := lg.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("schema published")) {
		t.Errorf("expected record in output, got %q", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	lg := NewNopLogger()
	lg.Debug("ignored", "k", "v")
	if err := lg.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
