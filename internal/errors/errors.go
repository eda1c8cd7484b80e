package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNotRunning     = errors.New("vlc is not running")
	ErrMissingInput   = errors.New("missing required input")
	ErrTransport      = errors.New("vlc http request failed")
	ErrSocket         = errors.New("vlc rc socket failed")
	ErrScanNotFound   = errors.New("library directory not found")
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrPlayerNotFound = errors.New("vlc binary not found")
)

// GuardianError wraps an error with a user-friendly suggestion.
type GuardianError struct {
	Err        error
	Suggestion string
}

func (e *GuardianError) Error() string {
	return e.Err.Error()
}

func (e *GuardianError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &GuardianError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// Missing reports an absent required argument. The result matches ErrMissingInput.
func Missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingInput, field)
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var gErr *GuardianError
	if errors.As(err, &gErr) && gErr.Suggestion != "" {
		return gErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrNotRunning) {
		return "Run 'guardian start' to launch VLC with its control interfaces enabled"
	}

	if errors.Is(err, ErrMissingInput) {
		return "Check the command arguments with --help"
	}

	if errors.Is(err, ErrPlayerNotFound) || strings.Contains(errStr, "executable file not found") {
		return "Set player.path in your config to the VLC binary"
	}

	// Auth failures come back from the http interface as 401
	if strings.Contains(errStr, "status 401") {
		return "Check that player.password matches VLC's --http-password"
	}

	if errors.Is(err, ErrSocket) || strings.Contains(errStr, "4212") {
		return "Make sure VLC was started with the rc interface (guardian start does this)"
	}

	if errors.Is(err, ErrTransport) || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection refused") {
		return "Is VLC running? Check player.host and player.port"
	}

	if errors.Is(err, ErrScanNotFound) {
		return "Set library.root to an existing directory"
	}

	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'guardian config init' to create a default configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}

// PartialResult represents a result that may have partial failures.
type PartialResult[T any] struct {
	Data   T
	Errors []error
}

// HasErrors returns true if there were any errors.
func (p *PartialResult[T]) HasErrors() bool {
	return len(p.Errors) > 0
}

// AddError adds an error to the partial result.
func (p *PartialResult[T]) AddError(err error) {
	if err != nil {
		p.Errors = append(p.Errors, err)
	}
}

// ErrorSummary returns a summary of all errors.
func (p *PartialResult[T]) ErrorSummary() string {
	if len(p.Errors) == 0 {
		return ""
	}
	if len(p.Errors) == 1 {
		return p.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:\n", len(p.Errors)))
	for i, err := range p.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
