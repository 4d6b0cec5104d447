package fxmath

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

func TestLogger_DefaultIsSilentButUsable(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	// Must not panic and must not be enabled at any level.
	l.Debug("dropped")
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled; want silent")
	}
}

func TestSetLogger_RoundTrip(t *testing.T) {
	defer SetLogger(nil)

	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	SetLogger(custom)
	if Logger() != custom {
		t.Error("Logger() did not return the configured logger")
	}

	SetLogger(nil)
	if Logger() == custom {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
	if Logger() == nil {
		t.Error("Logger() nil after SetLogger(nil)")
	}
}
