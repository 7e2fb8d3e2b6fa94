package query

import (
	"testing"

	"github.com/schmitthub/jqview/internal/cancel"
	"github.com/schmitthub/jqview/internal/evaluator"
	"github.com/schmitthub/jqview/internal/jsonvalue"
)

func TestNormalizeQueryPreservesRoot(t *testing.T) {
	if got := NormalizeQuery("."); got != "." {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeQueryStripsTrailingPipeDot(t *testing.T) {
	if got := NormalizeQuery(".foo | ."); got != ".foo" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeQueryStripsTrailingPipe(t *testing.T) {
	if got := NormalizeQuery(".foo |"); got != ".foo" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeQueryStripsDanglingDot(t *testing.T) {
	if got := NormalizeQuery(".foo."); got != ".foo" {
		t.Fatalf("got %q", got)
	}
}

func TestPreprocessObjectResult(t *testing.T) {
	p := Preprocess(`{"a":1}`, ".")
	if p.ResultType != jsonvalue.ResultObject {
		t.Fatalf("got %v", p.ResultType)
	}
	if !p.HasParsed {
		t.Fatal("expected parsed value")
	}
	if p.AllNullLines() {
		t.Fatal("object result should not be all-null")
	}
}

func TestPreprocessAllNullLines(t *testing.T) {
	p := Preprocess("null", ".missing")
	if !p.AllNullLines() {
		t.Fatal("expected all-null")
	}
}

func TestPreprocessStripsANSI(t *testing.T) {
	p := Preprocess("\x1b[32m{\"a\":1}\x1b[0m", ".")
	if p.Unformatted != `{"a":1}` {
		t.Fatalf("got %q", p.Unformatted)
	}
}

func TestRunEvaluatesAndPreprocesses(t *testing.T) {
	v := jsonvalue.Value(map[string]any{"a": float64(1)})
	req := Request{Version: 1, Query: ".", OriginalJSON: &v}
	resp := Run(evaluator.NewStub(), req)
	if resp.Status != StatusOK {
		t.Fatalf("got status %v, err %q", resp.Status, resp.Err)
	}
	if resp.Version != 1 {
		t.Fatalf("got version %d", resp.Version)
	}
}

func TestRunRespectsCancellationBeforeEvaluate(t *testing.T) {
	v := jsonvalue.Value(map[string]any{"a": float64(1)})
	tok := cancel.New()
	tok.Cancel()
	req := Request{Version: 2, Query: ".", OriginalJSON: &v, Cancel: tok}
	resp := Run(evaluator.NewStub(), req)
	if resp.Status != StatusCancelled {
		t.Fatalf("got status %v", resp.Status)
	}
}

func TestRunSurfacesEvaluatorError(t *testing.T) {
	v := jsonvalue.Value(map[string]any{"a": float64(1)})
	req := Request{Version: 3, Query: "reverse", OriginalJSON: &v}
	resp := Run(evaluator.NewStub(), req)
	if resp.Status != StatusErr {
		t.Fatalf("got status %v", resp.Status)
	}
	if resp.Err == "" {
		t.Fatal("expected error message")
	}
}
