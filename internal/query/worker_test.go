package query

import (
	"testing"
	"time"

	"github.com/schmitthub/jqview/internal/evaluator"
	"github.com/schmitthub/jqview/internal/jsonvalue"
)

func TestWorkerSubmitAndRespond(t *testing.T) {
	w := NewWorker(evaluator.NewStub())
	defer w.Stop()

	v := jsonvalue.Value(map[string]any{"a": float64(1)})
	w.Submit(Request{Version: 7, Query: ".", OriginalJSON: &v})

	select {
	case resp := <-w.Responses():
		if resp.Status != StatusOK {
			t.Fatalf("got status %v err %q", resp.Status, resp.Err)
		}
		if resp.Version != 7 {
			t.Fatalf("got version %d", resp.Version)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for response")
	}
}

// slowEvaluator sleeps before returning, so a test can submit a burst of
// requests while one is known to still be in flight.
type slowEvaluator struct{ delay time.Duration }

func (s slowEvaluator) Execute(_ *jsonvalue.Value, _ string) (string, error) {
	time.Sleep(s.delay)
	return "null", nil
}

func TestWorkerKeepsNewestRequestOnBurst(t *testing.T) {
	w := NewWorker(slowEvaluator{delay: 50 * time.Millisecond})
	defer w.Stop()

	v := jsonvalue.Value(map[string]any{"a": float64(1)})
	w.Submit(Request{Version: 1, Query: ".", OriginalJSON: &v})
	// These three arrive while version 1 is still being processed; only
	// the newest should survive in the buffered request channel.
	w.Submit(Request{Version: 2, Query: ".", OriginalJSON: &v})
	w.Submit(Request{Version: 3, Query: ".", OriginalJSON: &v})
	w.Submit(Request{Version: 4, Query: ".", OriginalJSON: &v})

	first := recvResponse(t, w, time.Second)
	if first.Version != 1 {
		t.Fatalf("expected first response for the in-flight request, got version %d", first.Version)
	}

	second := recvResponse(t, w, time.Second)
	if second.Version != 4 {
		t.Fatalf("expected second response to skip straight to the newest queued request, got version %d", second.Version)
	}
}

func recvResponse(t *testing.T, w *Worker, timeout time.Duration) Response {
	t.Helper()
	select {
	case resp := <-w.Responses():
		return resp
	case <-time.After(timeout):
		t.Fatal("timed out waiting for response")
		return Response{}
	}
}
