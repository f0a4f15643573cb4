package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, nil)
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Info(ctx, "inf", "a", 1)
	log.Warn(ctx, "wrn", "b", 2)
	log.Error(ctx, "err", "c", 3)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"INFO", "inf", "a", "1"},
		{"WARN", "wrn", "b", "2"},
		{"ERROR", "err", "c", "3"},
	}

	for _, tt := range tests {
		if !strings.Contains(out, "level="+tt.level) {
			t.Fatalf("output is missing level %s: %q", tt.level, out)
		}
		if !strings.Contains(out, "msg="+tt.msg) {
			t.Fatalf("output is missing message %q: %q", tt.msg, out)
		}
		if !strings.Contains(out, tt.key+"="+tt.val) {
			t.Fatalf("output is missing attribute %s=%s: %q", tt.key, tt.val, out)
		}
	}
}

func TestSlogLogger_With_AddsPersistentAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	child := log.With("module", "test")
	child.Info(context.Background(), "hello")

	if !strings.Contains(buf.String(), "module=test") {
		t.Fatalf("child logger output is missing module attribute: %q", buf.String())
	}
}
