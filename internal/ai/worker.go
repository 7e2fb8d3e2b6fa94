package ai

import (
	"context"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/schmitthub/jqview/internal/ai/provider"
)

// Worker owns a Provider and an http.Client, running one advisor request
// at a time, draining to the newest pending request exactly like
// query.Worker — a burst of query edits while a slow advisor call is
// in flight should not queue stale prompts. Query and Cancel requests
// travel on separate internal channels (cancelCh, reqCh) so a Cancel can
// preempt a request already blocked in run(): Go channels can't be
// peeked without committing the receive, so the single loop() goroutine
// alone can't watch both "the next request" and "a cancel for the one
// I'm running" at once. Callers still see one unified protocol —
// Submit(Request) routes by Kind exactly like spec.md §3.4's AiRequest
// Query|Cancel sum type over one request channel.
type Worker struct {
	provider provider.Provider
	client   *http.Client
	reqCh    chan Request
	cancelCh chan uuid.UUID
	respCh   chan Response
	done     chan struct{}
}

func NewWorker(p provider.Provider, client *http.Client) *Worker {
	if client == nil {
		client = http.DefaultClient
	}
	w := &Worker{
		provider: p,
		client:   client,
		reqCh:    make(chan Request, 1),
		cancelCh: make(chan uuid.UUID, 1),
		respCh:   make(chan Response, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *Worker) loop() {
	for {
		select {
		case <-w.done:
			return
		case <-w.cancelCh:
			// Nothing in flight to cancel — the request this Cancel
			// targeted already finished before it was drained.
		case req := <-w.reqCh:
			for {
				select {
				case next := <-w.reqCh:
					req = next
					continue
				default:
				}
				break
			}
			w.run(req)
		}
	}
}

func (w *Worker) run(req Request) {
	defer func() {
		if r := recover(); r != nil {
			w.respCh <- Response{ID: req.ID, Kind: KindError, Err: "ai worker panic recovered"}
		}
	}()

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	watchDone := make(chan struct{})
	defer close(watchDone)
	go w.watchCancel(ctx, req.ID, cancelFn, watchDone)

	httpReq, err := w.provider.BuildRequest(req.Prompt)
	if err != nil {
		w.respCh <- Response{ID: req.ID, Kind: KindError, Err: err.Error()}
		return
	}
	httpReq = httpReq.WithContext(ctx)

	resp, err := w.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			w.respCh <- Response{ID: req.ID, Kind: KindCancelled}
			return
		}
		w.respCh <- Response{ID: req.ID, Kind: KindError, Err: err.Error()}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		w.respCh <- Response{ID: req.ID, Kind: KindError, Err: "ai provider returned HTTP " + resp.Status}
		return
	}

	err = streamCompletion(w.provider.Name(), resp.Body, w.provider.ParseData, func(delta string) {
		w.respCh <- Response{ID: req.ID, Kind: KindChunk, Text: delta}
	})
	if err != nil {
		if ctx.Err() != nil {
			w.respCh <- Response{ID: req.ID, Kind: KindCancelled}
			return
		}
		w.respCh <- Response{ID: req.ID, Kind: KindError, Err: err.Error()}
		return
	}

	w.respCh <- Response{ID: req.ID, Kind: KindComplete}
}

// watchCancel runs alongside one in-flight run(), watching cancelCh for
// a Cancel matching id. A Cancel for any other id is a stale/unrelated
// message (a race with Submit) and is dropped without acting on it.
func (w *Worker) watchCancel(ctx context.Context, id uuid.UUID, cancelFn context.CancelFunc, done <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case cid := <-w.cancelCh:
			if cid == id {
				cancelFn()
				return
			}
		}
	}
}

// Submit routes req by Kind: a Query replaces any request still waiting
// to be picked up; a Cancel replaces any cancel still waiting and is
// otherwise delivered to whichever run() is currently in flight.
func (w *Worker) Submit(req Request) {
	if req.Kind == RequestCancel {
		select {
		case <-w.cancelCh:
		default:
		}
		w.cancelCh <- req.ID
		return
	}
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

// ResponseMsg and ChannelClosedMsg are exported (unlike the teacher's
// package-private loopDashEventMsg) because the AI worker lives in a
// different package from the orchestrator that type-switches on them.
type ResponseMsg Response
type ChannelClosedMsg struct{}

// WaitForResponse mirrors query.WaitForResponse / the teacher's
// waitForLoopEvent(ch) tea.Cmd pattern for bridging a channel into
// Bubble Tea's Update loop.
func WaitForResponse(ch <-chan Response) tea.Cmd {
	return func() tea.Msg {
		resp, ok := <-ch
		if !ok {
			return ChannelClosedMsg{}
		}
		return ResponseMsg(resp)
	}
}
