package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not running", fmt.Errorf("seek: %w", ErrNotRunning), "guardian start"},
		{"missing input", Missing("path"), "--help"},
		{"unauthorized", fmt.Errorf("%w: status 401", ErrTransport), "player.password"},
		{"socket", fmt.Errorf("%w: dial tcp", ErrSocket), "rc interface"},
		{"refused", errors.New("dial tcp 127.0.0.1:8080: connection refused"), "player.port"},
		{"scan", ErrScanNotFound, "library.root"},
		{"custom", WithSuggestion(errors.New("boom"), "try again"), "try again"},
		{"unknown", errors.New("something odd"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetSuggestion(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("GetSuggestion() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("GetSuggestion() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestMissing(t *testing.T) {
	err := Missing("path")
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("Missing() = %v, want ErrMissingInput", err)
	}
	if got := err.Error(); got != "missing required input: path" {
		t.Errorf("Error() = %q", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	got := Format(ErrNotRunning)
	if !strings.HasPrefix(got, "Error: vlc is not running") {
		t.Errorf("Format() = %q", got)
	}
	if !strings.Contains(got, "Suggestion:") {
		t.Errorf("Format() = %q, want a suggestion", got)
	}

	if got := Format(errors.New("plain")); got != "Error: plain" {
		t.Errorf("Format() = %q, want %q", got, "Error: plain")
	}
}

func TestPartialResult(t *testing.T) {
	var p PartialResult[[]string]
	if p.HasErrors() {
		t.Fatal("HasErrors() = true on empty result")
	}
	p.AddError(nil)
	if p.HasErrors() {
		t.Fatal("AddError(nil) should be ignored")
	}

	p.AddError(errors.New("first"))
	if got := p.ErrorSummary(); got != "first" {
		t.Errorf("ErrorSummary() = %q, want %q", got, "first")
	}

	p.AddError(errors.New("second"))
	summary := p.ErrorSummary()
	if !strings.HasPrefix(summary, "2 errors occurred:") {
		t.Errorf("ErrorSummary() = %q", summary)
	}
	if !strings.Contains(summary, "  2. second") {
		t.Errorf("ErrorSummary() = %q, missing second entry", summary)
	}
}
