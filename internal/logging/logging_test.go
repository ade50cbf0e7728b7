package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" ERROR ": slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "WARN")
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected INFO to be filtered, got %s", buf.String())
	}
	log.Warn("shown", "key", "value")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "shown" || rec["key"] != "value" {
		t.Errorf("unexpected record: %v", rec)
	}
	if _, ok := rec["stacktrace"]; ok {
		t.Error("WARN records should not carry a stacktrace")
	}
}

func TestNew_ErrorHasStacktrace(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "INFO").With("component", "test").Error("boom")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	frames, _ := rec["stacktrace"].([]any)
	if len(frames) == 0 {
		t.Fatalf("expected stacktrace frames on ERROR record, got %v", rec["stacktrace"])
	}
	first, _ := frames[0].(string)
	if !strings.Contains(first, "TestNew_ErrorHasStacktrace") {
		t.Errorf("expected first frame to be the caller, got %q", first)
	}
	for _, f := range frames {
		if s, _ := f.(string); strings.HasPrefix(s, "log/slog.") {
			t.Errorf("slog frame not skipped: %q", s)
		}
	}
	if rec["component"] != "test" {
		t.Errorf("expected attrs preserved through WithAttrs, got %v", rec)
	}
}
