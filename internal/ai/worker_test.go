package ai

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeProvider is a minimal test double implementing provider.Provider's
// two methods directly (this package only needs the shape, not the real
// type, to avoid an import cycle with the provider package in tests).
type fakeProvider struct {
	baseURL string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) BuildRequest(prompt string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet, f.baseURL, nil)
}

func (f *fakeProvider) ParseData(data string) (string, bool, error) {
	if data == "DONE" {
		return "", true, nil
	}
	return data, false, nil
}

func recvResponse(t *testing.T, w *Worker, timeout time.Duration) Response {
	t.Helper()
	select {
	case r := <-w.Responses():
		return r
	case <-time.After(timeout):
		t.Fatal("timed out waiting for response")
		return Response{}
	}
}

func TestWorkerStreamsChunksThenComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("content-type", "text/event-stream")
		rw.Write([]byte("data: hello\n\ndata: DONE\n\n"))
	}))
	defer srv.Close()

	w := NewWorker(&fakeProvider{baseURL: srv.URL}, srv.Client())
	defer w.Stop()

	w.Submit(Request{ID: uuid.New(), Prompt: "explain"})

	r1 := recvResponse(t, w, 2*time.Second)
	if r1.Kind != KindChunk || r1.Text != "hello" {
		t.Fatalf("got %+v", r1)
	}
	r2 := recvResponse(t, w, 2*time.Second)
	if r2.Kind != KindComplete {
		t.Fatalf("got %+v", r2)
	}
}

func TestWorkerCancelMessageInterruptsInFlightRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	w := NewWorker(&fakeProvider{baseURL: srv.URL}, srv.Client())
	defer w.Stop()

	id := uuid.New()
	w.Submit(Request{Kind: RequestQuery, ID: id, Prompt: "explain"})
	time.Sleep(50 * time.Millisecond) // let the request actually start
	w.Submit(CancelRequest(id))

	r := recvResponse(t, w, 2*time.Second)
	if r.Kind != KindCancelled || r.ID != id {
		t.Fatalf("got %+v", r)
	}
}

func TestWorkerCancelForUnrelatedIDIsDropped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("content-type", "text/event-stream")
		rw.Write([]byte("data: hello\n\ndata: DONE\n\n"))
	}))
	defer srv.Close()

	w := NewWorker(&fakeProvider{baseURL: srv.URL}, srv.Client())
	defer w.Stop()

	w.Submit(CancelRequest(uuid.New()))
	w.Submit(Request{Kind: RequestQuery, ID: uuid.New(), Prompt: "explain"})

	r1 := recvResponse(t, w, 2*time.Second)
	if r1.Kind != KindChunk || r1.Text != "hello" {
		t.Fatalf("got %+v", r1)
	}
	r2 := recvResponse(t, w, 2*time.Second)
	if r2.Kind != KindComplete {
		t.Fatalf("got %+v", r2)
	}
}

func TestWorkerHTTPErrorStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := NewWorker(&fakeProvider{baseURL: srv.URL}, srv.Client())
	defer w.Stop()

	w.Submit(Request{ID: uuid.New(), Prompt: "x"})
	r := recvResponse(t, w, 2*time.Second)
	if r.Kind != KindError || !strings.Contains(r.Err, "500") {
		t.Fatalf("got %+v", r)
	}
}
