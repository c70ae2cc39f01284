package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger

	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger

	return buf.String()
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name  string
		log   func()
		level string
		msg   string
	}{
		{"debug", func() { Debug("debug message", "k", "v") }, "DEBUG", "debug message"},
		{"info", func() { Info("info message") }, "INFO", "info message"},
		{"warn", func() { Warn("warn message") }, "WARN", "warn message"},
		{"error", func() { Error("error message") }, "ERROR", "error message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureLogOutput(tt.log)
			if !strings.Contains(out, tt.level) {
				t.Errorf("output = %q, want level %s", out, tt.level)
			}
			if !strings.Contains(out, tt.msg) {
				t.Errorf("output = %q, want message %q", out, tt.msg)
			}
		})
	}
}

func TestSongSkipped(t *testing.T) {
	out := captureLogOutput(func() {
		SongSkipped("songs/bad.xml", errors.New("song has no title"))
	})
	if !strings.Contains(out, "song_skipped") {
		t.Errorf("output = %q, want song_skipped event", out)
	}
	if !strings.Contains(out, "songs/bad.xml") {
		t.Errorf("output = %q, want song path", out)
	}
	if !strings.Contains(out, "song has no title") {
		t.Errorf("output = %q, want error detail", out)
	}
}

func TestInitLogger(t *testing.T) {
	defer InitLogger(LevelInfo, FormatText)

	InitLogger(LevelDebug, FormatJSON)
	if GetLogger() == nil {
		t.Fatal("GetLogger returned nil after InitLogger")
	}
	if !GetLogger().Enabled(context.TODO(), slog.LevelDebug) {
		t.Error("debug level should be enabled")
	}

	InitLogger(LevelError, FormatText)
	if GetLogger().Enabled(context.TODO(), slog.LevelWarn) {
		t.Error("warn level should be disabled at error level")
	}
}
