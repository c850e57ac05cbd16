package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ConfigError reports a request that cannot be executed at all: unknown
// provider id or a missing API key. Raised before any network I/O.
type ConfigError struct {
	Provider string
	Message  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Message)
}

// ProviderFailure reports a backend call that failed after execution
// started. Timing carries the segments accumulated before the failure.
type ProviderFailure struct {
	Provider   string
	StatusCode int
	Message    string
	Timing     *Timing
	Err        error
}

func (e *ProviderFailure) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s failed with status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider %s failed: %s", e.Provider, e.Message)
}

func (e *ProviderFailure) Unwrap() error { return e.Err }

// apiError is a non-2xx reply from a backend, kept so the eventual
// ProviderFailure reports the status code.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("status %d: %s", e.status, e.message)
}

// parseAPIError extracts a human-readable message from an error body.
// Backends wrap the message in slightly different envelopes; fall back to
// the raw body.
func parseAPIError(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error.Message != "" {
			return envelope.Error.Message
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return strings.TrimSpace(string(body))
}

func statusCodeOf(err error) int {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.status
	}
	return 0
}
