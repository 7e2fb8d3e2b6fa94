package query

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/jqview/internal/evaluator"
)

// Worker owns the Evaluator and runs one Request at a time on its own
// goroutine, discarding any Request superseded by a newer one already
// waiting in the channel (the debouncer's job is to avoid piling these
// up, but the worker drains to the latest as a second line of defense).
type Worker struct {
	eval   evaluator.Evaluator
	reqCh  chan Request
	respCh chan Response
	done   chan struct{}
}

// NewWorker starts a Worker goroutine and returns it. Requests submitted
// via Submit are processed one at a time, and one still waiting when a
// newer one is submitted is dropped; Responses are delivered on
// Responses(). Stop terminates the goroutine.
func NewWorker(eval evaluator.Evaluator) *Worker {
	w := &Worker{
		eval:   eval,
		reqCh:  make(chan Request, 1),
		respCh: make(chan Response, 1),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *Worker) loop() {
	for {
		select {
		case <-w.done:
			return
		case req := <-w.reqCh:
			// Drain any further queued requests, keeping only the
			// newest: a burst of keystrokes during a slow filter
			// execution should not queue stale work.
			for {
				select {
				case next := <-w.reqCh:
					req = next
					continue
				default:
				}
				break
			}
			w.respCh <- Run(w.eval, req)
		}
	}
}

// Submit enqueues a Request, replacing any request still waiting to be
// picked up (non-blocking: the channel is buffered at 1 and Submit drains
// it first).
func (w *Worker) Submit(req Request) {
	select {
	case <-w.reqCh:
	default:
	}
	w.reqCh <- req
}

// Responses returns the channel Responses are delivered on.
func (w *Worker) Responses() <-chan Response {
	return w.respCh
}

// Stop terminates the worker goroutine. Safe to call once.
func (w *Worker) Stop() {
	close(w.done)
}

// ResponseMsg wraps a Response as a tea.Msg so it can flow through
// Bubble Tea's Update loop and be type-switched on by the orchestrator.
type ResponseMsg Response

// ChannelClosedMsg signals the response channel was closed (worker
// stopped) while a wait command was still pending.
type ChannelClosedMsg struct{}

// WaitForResponse returns a tea.Cmd that blocks on ch until one Response
// arrives, then re-wraps it as a tea.Msg. The orchestrator re-issues this
// command after each message it receives, exactly mirroring the teacher's
// waitForLoopEvent(ch) tea.Cmd in internal/tui/loopdash.go.
func WaitForResponse(ch <-chan Response) tea.Cmd {
	return func() tea.Msg {
		resp, ok := <-ch
		if !ok {
			return ChannelClosedMsg{}
		}
		return ResponseMsg(resp)
	}
}
