package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerUsesTextHandlerWithInfoLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Level: "info"})

	if enabled := logger.Enabled(context.Background(), slog.LevelInfo); !enabled {
		t.Fatal("expected info level to be enabled")
	}

	if enabled := logger.Enabled(context.Background(), slog.LevelDebug); enabled {
		t.Fatal("expected debug level to be disabled")
	}
}

func TestNewLoggerAttachesServiceAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, Config{Service: "svc", Version: "v1"})
	logger.Info("hello")

	out := buf.String()
	if !strings.Contains(out, "service=svc") || !strings.Contains(out, "version=v1") {
		t.Fatalf("expected service/version attrs in output, got %q", out)
	}
}

func TestNewLoggerRespectsDebugLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "json", Level: "debug"})
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug level to be enabled")
	}
}
