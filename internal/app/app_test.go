package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/fx"

	"github.com/codeesasi/Ai-Media-Guardian/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Library.Root = t.TempDir()
	cfg.Log.File = filepath.Join(t.TempDir(), "guardian.log")
	return cfg
}

// TestAppGraphValidity verifies that every constructor's inputs are provided.
func TestAppGraphValidity(t *testing.T) {
	err := fx.ValidateApp(Options(testConfig(t), Params{Version: "test"}))
	if err != nil {
		t.Errorf("Dependency graph is not valid: %v", err)
	}
}

// TestStartStop runs the stdio loop against a closed input without launching VLC.
func TestStartStop(t *testing.T) {
	var out bytes.Buffer
	app := fx.New(
		Options(testConfig(t), Params{
			Version: "test",
			In:      strings.NewReader(""),
			Out:     &out,
		}),
		fx.NopLogger,
	)

	if err := app.Start(t.Context()); err != nil {
		t.Fatalf("App failed to start: %v", err)
	}
	if err := app.Stop(t.Context()); err != nil {
		t.Fatalf("App failed to stop: %v", err)
	}
}
