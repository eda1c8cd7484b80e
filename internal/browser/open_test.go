package browser

import (
	"runtime"
	"testing"
)

func TestOpenSupported(t *testing.T) {
	switch runtime.GOOS {
	case "darwin", "linux", "windows":
	default:
		t.Skipf("Unsupported platform: %s", runtime.GOOS)
	}

	name, args, err := Command(runtime.GOOS, "http://127.0.0.1:8080/")
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if name == "" || len(args) == 0 || args[len(args)-1] != "http://127.0.0.1:8080/" {
		t.Errorf("Command() = %q %v", name, args)
	}
}

func TestCommandUnsupported(t *testing.T) {
	if _, _, err := Command("plan9", "http://x/"); err == nil {
		t.Error("Command() should fail on unsupported platforms")
	}
}
