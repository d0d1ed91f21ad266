package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerFormatsComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelInfo)
	logger := slog.New(newConsoleHandler(&buf, lvl))
	logger = NewComponentLogger(logger, "scan")

	logger.Info("library walk complete", Args(Int("files", 3), String("root", "/data/tv shows"))...)

	line := buf.String()
	if !strings.Contains(line, "[scan]") {
		t.Fatalf("expected component tag in output, got %q", line)
	}
	if !strings.Contains(line, "files=3") {
		t.Fatalf("expected files attr in output, got %q", line)
	}
	if !strings.Contains(line, `root="/data/tv shows"`) {
		t.Fatalf("expected quoted value with spaces, got %q", line)
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be suppressed at warn level, got %q", buf.String())
	}
	logger.Warn("loud")
	if !strings.Contains(buf.String(), "WARN") {
		t.Fatalf("expected warn output, got %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestVerboseLowersLevel(t *testing.T) {
	logger, err := New(Options{Level: "info", Format: "console", Verbose: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !logger.Enabled(nil, slog.LevelDebug) {
		t.Fatal("expected verbose logger to enable debug")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(nil, slog.LevelError) {
		t.Fatal("expected nop logger to disable all levels")
	}
}
