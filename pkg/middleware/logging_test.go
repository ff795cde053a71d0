package middleware

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggingWritesPerNotification(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	terminal := &countingSink{}
	sink := Chain(terminal, Logging(logger, "canvas"))

	sink.Notify()
	sink.Notify()

	if terminal.count != 2 {
		t.Fatalf("expected 2 deliveries, got %d", terminal.count)
	}

	out := buf.String()
	if strings.Count(out, "notification delivered") != 2 {
		t.Errorf("expected 2 log lines, got output:\n%s", out)
	}
	if !strings.Contains(out, "sink=canvas") {
		t.Errorf("expected sink attribute in output:\n%s", out)
	}
	if !strings.Contains(out, "seq=2") {
		t.Errorf("expected sequence numbering in output:\n%s", out)
	}
}

func TestLoggingNilLoggerDefaults(t *testing.T) {
	terminal := &countingSink{}
	sink := Chain(terminal, Logging(nil, "x"))

	sink.Notify()

	if terminal.count != 1 {
		t.Errorf("expected delivery through default logger, got %d", terminal.count)
	}
}
