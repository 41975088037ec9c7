package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// statusError maps an HTTP status reported by a backend SDK onto the
// package error types. Everything that is not rate-limit shaped reads as
// the provider being unavailable, which the retry layer treats as
// transient either way.
func statusError(code int, err error) error {
	if code == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// ErrRateLimit is returned when the backend answered 429. RetryAfter is the
// server-suggested wait, zero when the backend did not send one.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("llm: rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("llm: rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers 5xx answers, transport failures and an
// exhausted mock queue.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "llm: provider unavailable"
	}
	return fmt.Sprintf("llm: provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse means the model produced output that is not valid JSON
// or does not satisfy the requested schema. Content holds the offending
// output for the event log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("llm: response failed validation: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded means the completion was cut off at the MaxTokens
// cap. The truncated output is kept for inspection; retrying with the same
// cap would truncate again.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "llm: response truncated at max tokens"
}
