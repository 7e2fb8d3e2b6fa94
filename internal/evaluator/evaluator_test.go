package evaluator

import (
	"testing"

	"github.com/schmitthub/jqview/internal/jsonvalue"
)

func run(t *testing.T, v jsonvalue.Value, query string) string {
	t.Helper()
	s := NewStub()
	out, err := s.Execute(&v, query)
	if err != nil {
		t.Fatalf("Execute(%q) error: %v", query, err)
	}
	return out
}

func TestStubIdentity(t *testing.T) {
	v := jsonvalue.Value(map[string]any{"a": float64(1)})
	if got, want := run(t, v, "."), `{"a":1}`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStubFieldAccess(t *testing.T) {
	v := jsonvalue.Value(map[string]any{"name": "Alice"})
	if got, want := run(t, v, ".name"), `"Alice"`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStubFieldMissing(t *testing.T) {
	v := jsonvalue.Value(map[string]any{"name": "Alice"})
	if got, want := run(t, v, ".missing"), "null"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStubLength(t *testing.T) {
	v := jsonvalue.Value([]any{float64(1), float64(2), float64(3)})
	if got, want := run(t, v, "length"), "3"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStubKeysSorted(t *testing.T) {
	v := jsonvalue.Value(map[string]any{"z": 1, "a": 2})
	if got, want := run(t, v, "keys"), `["a","z"]`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStubIterateArray(t *testing.T) {
	v := jsonvalue.Value(map[string]any{"items": []any{float64(1), float64(2)}})
	if got, want := run(t, v, ".items[]"), "[1,2]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStubUnsupportedQuery(t *testing.T) {
	v := jsonvalue.Value(map[string]any{"a": 1})
	s := NewStub()
	if _, err := s.Execute(&v, ".a.b"); err == nil {
		t.Fatal("expected error for unsupported nested query")
	}
}
