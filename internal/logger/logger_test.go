package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	defer ResetRegistry()

	var buf bytes.Buffer
	l := NewWithWriter("test", &buf, WARN)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("Expected DEBUG and INFO to be filtered, got %q", out)
	}
	if !strings.Contains(out, "WARN: warn 3") {
		t.Errorf("Expected WARN line, got %q", out)
	}
	if !strings.Contains(out, "ERROR: error 4") {
		t.Errorf("Expected ERROR line, got %q", out)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info("nothing %s", "happens")
	l.Error("still nothing")
	if l.WithSession("abc") != nil {
		t.Errorf("Expected WithSession on nil logger to return nil")
	}
}

func TestRegistry(t *testing.T) {
	defer ResetRegistry()

	if Get("missing") != nil {
		t.Fatalf("Expected unregistered logger to be nil")
	}

	dir := t.TempDir()
	first, err := New("lexer", dir, INFO)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	second, err := New("lexer", dir, DEBUG)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	if first != second {
		t.Errorf("Expected New to return the registered logger")
	}
	if Get("lexer") != first {
		t.Errorf("Expected Get to return the registered logger")
	}

	first.Info("hello from %s", "lexer")

	matches, err := filepath.Glob(filepath.Join(dir, "Plox-*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("Expected one log file, got %v (err %v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "INFO: hello from lexer") {
		t.Errorf("Log file missing entry, got %q", string(data))
	}
}

func TestSessionPrefix(t *testing.T) {
	defer ResetRegistry()

	var buf bytes.Buffer
	l := NewWithWriter("repl", &buf, DEBUG).WithSession("s-1")
	l.Debug("line")

	if !strings.Contains(buf.String(), "DEBUG: [s-1] line") {
		t.Errorf("Expected session prefix, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{"Warn", WARN, false},
		{"error", ERROR, false},
		{"loud", ERROR, true},
	}

	for _, tt := range tests {
		level, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && level != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, level, tt.expected)
		}
	}
}
