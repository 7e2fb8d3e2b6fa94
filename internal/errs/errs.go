// Package errs holds jqview's typed error kinds, grounded on spec.md
// §7 and the teacher's preference (internal/cmdutil/errors.go) for
// sentinel/wrapped error types over ad hoc strings.
package errs

import "fmt"

// ParseError reports a failure parsing the worker's query output as
// JSON (stage 3 of the query pipeline, spec.md §4.2).
type ParseError struct {
	Query string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing result of %q: %v", e.Query, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NavigationFailure reports the autocomplete JSON navigator being
// unable to resolve a jq path segment against the sample values.
type NavigationFailure struct {
	Path string
	Err  error
}

func (e *NavigationFailure) Error() string {
	return fmt.Sprintf("navigating %q: %v", e.Path, e.Err)
}

func (e *NavigationFailure) Unwrap() error { return e.Err }

// AiAPIError wraps a non-2xx or transport-level failure from the
// configured AI provider.
type AiAPIError struct {
	Provider string
	Status   int
	Err      error
}

func (e *AiAPIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: http %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *AiAPIError) Unwrap() error { return e.Err }

// AiCancelled signals a user-initiated cancellation of an in-flight AI
// request — distinct from AiAPIError so callers can suppress the error
// overlay rather than show it as a failure.
type AiCancelled struct {
	RequestID uint64
}

func (e *AiCancelled) Error() string {
	return fmt.Sprintf("ai request %d cancelled", e.RequestID)
}

// ChannelDisconnect reports a worker's response channel closing
// unexpectedly (e.g. the worker goroutine panicked past its own
// recover, or was stopped while a caller still awaited a reply).
type ChannelDisconnect struct {
	Worker string
}

func (e *ChannelDisconnect) Error() string {
	return fmt.Sprintf("%s worker channel disconnected", e.Worker)
}
