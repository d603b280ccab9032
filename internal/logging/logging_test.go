package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"":        log.InfoLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
	}
	for in, want := range tests {
		var buf bytes.Buffer
		if got := New(&buf, in).GetLevel(); got != want {
			t.Errorf("New(%q) level = %v, want %v", in, got, want)
		}
		if buf.Len() != 0 {
			t.Errorf("New(%q) should not log, got %q", in, buf.String())
		}
	}
}

func TestNewUnknownLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "loud")
	if l.GetLevel() != log.InfoLevel {
		t.Fatalf("unknown level should fall back to info")
	}
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Fatalf("expected warning, got %q", buf.String())
	}
}

func TestQuietSuppressesWarnings(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "error").Warn("possibly amino acid sequence")
	if buf.Len() != 0 {
		t.Fatalf("warn should be suppressed at error level, got %q", buf.String())
	}
}
