package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestErrorFormatMatchesWireFormat(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, LevelWarning)
	r.Error(3, "something broke")
	want := "[line 3] Error: something broke\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWarnFormatMatchesWireFormat(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, LevelWarning)
	r.Warn(7, "heads up")
	want := "[line 7] Warning: heads up\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWarnSuppressedBelowConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, LevelError)
	r.Warn(1, "suppressed")
	if buf.Len() != 0 {
		t.Errorf("got %q, want empty output at LevelError", buf.String())
	}
}

func TestNonTerminalWriterIsNeverColorized(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, LevelWarning)
	r.Error(1, "plain")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("got colorized output writing to a bytes.Buffer: %q", buf.String())
	}
}

func TestSetLevelChangesMinimumPrintedLevel(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, LevelError)
	r.Info("not yet")
	if buf.Len() != 0 {
		t.Fatalf("expected Info suppressed at LevelError, got %q", buf.String())
	}
	r.SetLevel(LevelInfo)
	r.Info("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("got %q, want it to contain %q", buf.String(), "now visible")
	}
}

func TestParseLevelRoundTrip(t *testing.T) {
	for _, s := range []string{"error", "warning", "info", "debug"} {
		level, ok := ParseLevel(s)
		if !ok {
			t.Fatalf("ParseLevel(%q) failed", s)
		}
		if level.String() != s {
			t.Errorf("got %q, want %q", level.String(), s)
		}
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	if _, ok := ParseLevel("verbose"); ok {
		t.Errorf("expected ParseLevel to reject an unknown level")
	}
}
