// Package jsonvalue holds the generic JSON representation shared by the
// query pipeline and the autocomplete navigator, plus the semantic
// ResultType classification described by the query pipeline spec.
package jsonvalue

import (
	"strings"

	"github.com/bytedance/sonic"
)

// Value is the generic parsed JSON representation passed between the
// query pipeline and the evaluator: nil, bool, float64, string,
// []any, or map[string]any, exactly as produced by sonic's default
// decode target.
type Value = any

// ResultType classifies the semantic shape of a query's output, driving
// how the results pane renders it and how autocomplete interprets it as
// the "base type" for suggestions.
type ResultType int

const (
	ResultNull ResultType = iota
	ResultObject
	ResultArrayOfObjects
	ResultArray
	ResultDestructuredObjects
	ResultString
	ResultNumber
	ResultBoolean
)

func (t ResultType) String() string {
	switch t {
	case ResultObject:
		return "Object"
	case ResultArrayOfObjects:
		return "ArrayOfObjects"
	case ResultArray:
		return "Array"
	case ResultDestructuredObjects:
		return "DestructuredObjects"
	case ResultString:
		return "String"
	case ResultNumber:
		return "Number"
	case ResultBoolean:
		return "Boolean"
	default:
		return "Null"
	}
}

// ParseFirstValue attempts to parse the first complete JSON value out of
// output. It first tries the whole string; on failure it falls back to
// parsing line by line (jq's default output is one value per line), which
// tolerates trailing non-JSON noise a filter error may have appended.
// Returns ok=false if no value could be parsed at all.
func ParseFirstValue(output string) (value any, ok bool) {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return nil, false
	}

	var v any
	if err := sonic.UnmarshalString(trimmed, &v); err == nil {
		return v, true
	}

	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var lv any
		if err := sonic.UnmarshalString(line, &lv); err == nil {
			return lv, true
		}
	}
	return nil, false
}

// HasSecondValue reports whether output contains more than one top-level
// JSON value, using a streaming decoder so multi-megabyte outputs aren't
// fully re-parsed just to answer yes/no.
func HasSecondValue(output string) bool {
	dec := sonic.ConfigDefault.NewDecoder(strings.NewReader(output))
	var first any
	if err := dec.Decode(&first); err != nil {
		return false
	}
	if !dec.More() {
		return false
	}
	var second any
	return dec.Decode(&second) == nil
}

// DetectResultType classifies a parsed value. destructured should be the
// result of HasSecondValue against the same output the value was parsed
// from; it takes priority over the value's own shape because concatenated
// top-level values (`{}\n{}`) are semantically distinct from a single
// object or array.
func DetectResultType(value any, hasSecond bool) ResultType {
	if hasSecond {
		return ResultDestructuredObjects
	}
	switch v := value.(type) {
	case nil:
		return ResultNull
	case map[string]any:
		return ResultObject
	case []any:
		if len(v) == 0 {
			return ResultArray
		}
		if _, isObj := v[0].(map[string]any); isObj {
			return ResultArrayOfObjects
		}
		return ResultArray
	case string:
		return ResultString
	case float64:
		return ResultNumber
	case bool:
		return ResultBoolean
	default:
		return ResultNull
	}
}

// IsArray reports whether v is a JSON array.
func IsArray(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

// IsObject reports whether v is a JSON object.
func IsObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// Keys returns the sorted-by-insertion-unavailable key list of an object.
// Go maps have no stable order, so callers that need deterministic display
// order should sort the result themselves; this just extracts the set.
func Keys(v any) []string {
	obj, ok := IsObject(v)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	return keys
}
