package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Info("gallery created", "path", "/tmp/g", "files", 3)

	line := buf.String()
	if !strings.Contains(line, "INFO   gallery created") {
		t.Fatalf("line %q missing padded level and message", line)
	}
	if !strings.Contains(line, "path=/tmp/g") || !strings.Contains(line, "files=3") {
		t.Fatalf("line %q missing attributes", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Fatalf("line %q not newline terminated", line)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record written at info level: %q", buf.String())
	}

	logger = New(&buf, slog.LevelDebug)
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "DEBUG  visible") {
		t.Fatalf("debug record missing: %q", buf.String())
	}
}

func TestQuotedValues(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Warn("collision", "name", "my photo.jpg")
	if !strings.Contains(buf.String(), `name="my photo.jpg"`) {
		t.Fatalf("value with spaces not quoted: %q", buf.String())
	}
}

func TestWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo).With("component", "scaffold")

	logger.WithGroup("copy").Info("done", "files", 2)

	line := buf.String()
	if !strings.Contains(line, "component=scaffold") {
		t.Fatalf("line %q missing handler attribute", line)
	}
	if !strings.Contains(line, "copy.files=2") {
		t.Fatalf("line %q missing grouped attribute", line)
	}
}
