// Package cancel provides a cooperative cancellation token shared between
// the UI goroutine and the background query/AI workers.
package cancel

import "sync/atomic"

// Token is a one-shot, idempotent cancellation flag. Cancel may be called
// any number of times from any goroutine; IsCancelled reflects the first
// call forever after. A zero-value Token is usable (not cancelled).
type Token struct {
	cancelled atomic.Bool
}

// New returns a fresh, not-cancelled token.
func New() *Token {
	return &Token{}
}

// Cancel marks the token cancelled. Safe to call more than once.
func (t *Token) Cancel() {
	t.cancelled.Store(true)
}

// IsCancelled reports whether Cancel has ever been called.
func (t *Token) IsCancelled() bool {
	return t.cancelled.Load()
}
