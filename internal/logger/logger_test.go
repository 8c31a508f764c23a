package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"none", LevelNone},
		{"NONE", LevelNone},
		{"invalid", LevelInfo}, // defaults to info
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelNone, "NONE"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
			}
		})
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "ttok.log")

	logger, err := New(LevelInfo, logPath, "test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("loaded encoding %s", "o200k_base")
	logger.Debug("should not appear")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	contentStr := string(content)

	if !strings.Contains(contentStr, "[INFO] [test] loaded encoding o200k_base") {
		t.Errorf("Log file missing info line, got: %s", contentStr)
	}
	if strings.Contains(contentStr, "should not appear") {
		t.Errorf("Log file contains debug message when level is INFO")
	}
}

func TestWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWithWriter(LevelDebug, &buf, "cli")

	parent.WithPrefix("git").Debug("running diff")

	if !strings.Contains(buf.String(), "[cli:git] running diff") {
		t.Errorf("missing combined prefix, got: %s", buf.String())
	}
}

func TestDisabledLogger(t *testing.T) {
	logger, err := New(LevelDebug, "", "test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.Enabled(LevelError) {
		t.Error("logger without a path should be disabled")
	}

	// must not panic
	logger.Debug("debug")
	logger.Error("error")
}

func TestEnabledRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(LevelWarn, &buf, "")

	if logger.Enabled(LevelInfo) {
		t.Error("info should be filtered at WARN")
	}
	if !logger.Enabled(LevelError) {
		t.Error("error should pass at WARN")
	}
	if logger.Level() != LevelWarn {
		t.Errorf("Level() = %v, want WARN", logger.Level())
	}

	logger.Info("quiet")
	logger.Warn("loud")
	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestInitReplacesGlobal(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "global.log")

	if err := Init(LevelDebug, logPath); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Debug("global %d", 1)

	// swap back to a disabled logger, which closes the file
	if err := Init(LevelNone, ""); err != nil {
		t.Fatalf("Init reset failed: %v", err)
	}
	Info("dropped")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "global 1") {
		t.Errorf("global log line missing, got: %s", content)
	}
	if strings.Contains(string(content), "dropped") {
		t.Errorf("disabled global logger still wrote")
	}
}

func TestGlobalLogger(t *testing.T) {
	if Global() == nil {
		t.Fatal("Global() returned nil")
	}

	// should not panic
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}
