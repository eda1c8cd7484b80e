package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codeesasi/Ai-Media-Guardian/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guardian.log")

	logger, err := New(config.LogConfig{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hello from test")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file = %q, want the debug line", string(data))
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "warn"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Error("debug should be disabled at warn level")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "chatty"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
