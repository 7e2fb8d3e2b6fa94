// Package evaluator defines the boundary between the query pipeline and
// the jq filter engine. Executing the jq language itself is out of scope
// for this repository (spec Non-goals): Evaluator is the seam a real jq
// binding would sit behind, and StubEvaluator implements only the small
// subset documented on it, for the package's own tests and for manual
// smoke-testing the rest of the pipeline without a real jq dependency.
package evaluator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/schmitthub/jqview/internal/jsonvalue"
)

// Evaluator executes a jq-style query against a parsed JSON value. It is a
// total function from the caller's perspective: failures are reported as
// an error, never a panic, and the returned string may contain ANSI (a
// real jq binary colorizes output by default).
type Evaluator interface {
	Execute(v *jsonvalue.Value, query string) (string, error)
}

// StubEvaluator implements a deliberately small, safe subset of jq syntax:
// the identity filter ".", single-level field access (".field"),
// array/object iteration (".[]"), "length", and "keys". It exists to
// exercise the Evaluator seam, not to replace a real jq implementation.
type StubEvaluator struct{}

// NewStub returns a StubEvaluator.
func NewStub() *StubEvaluator {
	return &StubEvaluator{}
}

// Execute implements Evaluator.
func (s *StubEvaluator) Execute(v *jsonvalue.Value, query string) (string, error) {
	result, err := s.eval(*v, query)
	if err != nil {
		return "", err
	}
	return marshal(result)
}

func (s *StubEvaluator) eval(v jsonvalue.Value, query string) (jsonvalue.Value, error) {
	switch {
	case query == "" || query == ".":
		return v, nil
	case query == "length":
		return length(v)
	case query == "keys":
		return keys(v)
	case query == ".[]":
		return iterate(v, "")
	case len(query) > 1 && query[0] == '.' && query[len(query)-2:] == "[]":
		return iterate(v, query[1:len(query)-2])
	case len(query) > 1 && query[0] == '.':
		return field(v, query[1:])
	default:
		return nil, fmt.Errorf("stub evaluator: unsupported query %q (supported: ., .field, .[], length, keys)", query)
	}
}

func field(v jsonvalue.Value, name string) (jsonvalue.Value, error) {
	if strings.ContainsAny(name, ".[]") {
		return nil, fmt.Errorf("stub evaluator: unsupported query %q (supported: ., .field, .[], length, keys)", "."+name)
	}
	obj, ok := jsonvalue.IsObject(v)
	if !ok {
		return nil, fmt.Errorf("stub evaluator: cannot index %T with %q", v, name)
	}
	val, ok := obj[name]
	if !ok {
		return nil, nil
	}
	return val, nil
}

func iterate(v jsonvalue.Value, prefix string) (jsonvalue.Value, error) {
	base := v
	if prefix != "" {
		var err error
		base, err = field(v, prefix)
		if err != nil {
			return nil, err
		}
	}
	if arr, ok := jsonvalue.IsArray(base); ok {
		return arr, nil
	}
	if obj, ok := jsonvalue.IsObject(base); ok {
		out := make([]any, 0, len(obj))
		for _, val := range obj {
			out = append(out, val)
		}
		return out, nil
	}
	return nil, fmt.Errorf("stub evaluator: cannot iterate over %T", base)
}

func length(v jsonvalue.Value) (jsonvalue.Value, error) {
	switch t := v.(type) {
	case nil:
		return float64(0), nil
	case string:
		return float64(len([]rune(t))), nil
	case []any:
		return float64(len(t)), nil
	case map[string]any:
		return float64(len(t)), nil
	case float64:
		if t < 0 {
			return -t, nil
		}
		return t, nil
	default:
		return nil, fmt.Errorf("stub evaluator: length of %T not supported", v)
	}
}

func keys(v jsonvalue.Value) (jsonvalue.Value, error) {
	obj, ok := jsonvalue.IsObject(v)
	if !ok {
		return nil, fmt.Errorf("stub evaluator: keys of %T not supported", v)
	}
	ks := jsonvalue.Keys(obj)
	sort.Strings(ks)
	out := make([]any, len(ks))
	for i, k := range ks {
		out[i] = k
	}
	return out, nil
}

func marshal(v jsonvalue.Value) (string, error) {
	b, err := sonic.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("stub evaluator: marshal result: %w", err)
	}
	return string(b), nil
}
