// Package ai implements the streaming AI advisor: a provider-parameterized
// worker that turns a query/error context into a prompt, streams the
// provider's response over SSE, and parses the finished response into
// structured suggestions a user can apply back onto the query line.
package ai

import "github.com/google/uuid"

// RequestKind tags a Request's variant (spec.md §3.4's AiRequest sum
// type: Query{prompt, request_id} | Cancel{request_id}).
type RequestKind int

const (
	RequestQuery RequestKind = iota
	RequestCancel
)

// Request is sent to the worker on its request channel: either Query,
// which starts (or supersedes) an advisor call, or Cancel, which
// interrupts the in-flight call matching ID if one is still running.
// ID is a uuid.UUID rather than a counter so it stays a stable,
// collision-free correlation key across process restarts and log
// lines (internal/logger), not just within one worker's lifetime.
type Request struct {
	Kind    RequestKind
	ID      uuid.UUID
	Prompt  string
	WordCap int
}

// CancelRequest builds a Request that cancels the in-flight advisor call
// with the given id — spec.md §4.4 step 1.b, sent before a superseding
// query is submitted.
func CancelRequest(id uuid.UUID) Request {
	return Request{Kind: RequestCancel, ID: id}
}

// ResponseKind tags a Response's variant.
type ResponseKind int

const (
	KindChunk ResponseKind = iota
	KindComplete
	KindError
	KindCancelled
)

// Response is one message streamed back from the worker: either a text
// chunk, a terminal completion, a terminal error, or a terminal
// cancellation acknowledgement.
type Response struct {
	ID   uuid.UUID
	Kind ResponseKind
	Text string
	Err  string
}
