package autocomplete

import (
	"sort"
	"strings"

	"github.com/schmitthub/jqview/internal/editor"
	"github.com/schmitthub/jqview/internal/jsonvalue"
)

// Suggestion is one candidate completion.
type Suggestion struct {
	// Label is what's shown in the popup list.
	Label string
	// InsertText is what gets spliced into the query by the insertion
	// engine (insert.go) — may differ from Label, e.g. a builtin listed
	// by its signature ("map(f)") but inserted as "map()". Field keys are
	// inserted verbatim: a key that needs bracket-quoting is not quoted.
	InsertText string
	// Detail is an optional one-line description (jq builtin signature,
	// or the JSON type of a field's value).
	Detail string
}

// Suggest builds the ranked suggestion list for the given context, partial
// identifier, full query text and cursor, and the value the query would be
// navigating from (typically the original input JSON). Grounded on
// spec.md §4.3.5's per-context table and
// original_source/src/autocomplete/result_analyzer.rs's ranking.
func Suggest(ctx SuggestionContext, partial, query string, cursor int, root jsonvalue.Value, brace *editor.BraceTracker) []Suggestion {
	switch ctx {
	case ContextField:
		return suggestFields(query, cursor, partial, root, false)
	case ContextElement:
		return suggestFields(query, cursor, partial, root, true)
	case ContextObjectKey:
		return suggestObjectKeys(query, cursor, partial, root)
	case ContextVariable:
		return suggestVariables(query, cursor, partial)
	case ContextPipe, ContextFunction:
		return suggestFunctions(partial)
	default:
		return nil
	}
}

// suggestFields suggests the object keys reachable by the path typed so
// far before the partial. In elementContext (cursor sits inside an
// array-consuming function's parens) an ArrayIterator is prepended to
// that path, so navigation happens per-element.
func suggestFields(query string, cursor int, partial string, root jsonvalue.Value, elementContext bool) []Suggestion {
	path := ParsePath(pathPrefix(query, cursor, partial))

	if elementContext {
		segs := append([]PathSegment{iteratorSeg()}, path.Segments...)
		values := NavigateMulti(root, segs, DefaultSampleSize)
		return fieldSuggestionsFromValues(values, partial, true)
	}

	value, ok := Navigate(root, path.Segments)
	if !ok {
		return nil
	}
	return fieldSuggestionsFromValues([]jsonvalue.Value{value}, partial, false)
}

// suggestObjectKeys suggests keys of the object under construction at the
// brace-tracker's innermost "{" — there's no navigation path here, the
// candidates come from root's own shape at the object literal's implicit
// base (the whole input, since object constructors don't change ".").
func suggestObjectKeys(query string, cursor int, partial string, root jsonvalue.Value) []Suggestion {
	obj, ok := jsonvalue.IsObject(root)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		if strings.HasPrefix(k, partial) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := make([]Suggestion, 0, len(keys))
	for _, k := range keys {
		out = append(out, Suggestion{Label: k, InsertText: k})
	}
	return out
}

// suggestVariables suggests names bound via "... as $x" appearing earlier
// in the query text, filtered by partial.
func suggestVariables(query string, cursor int, partial string) []Suggestion {
	runes := []rune(query)
	if cursor > len(runes) {
		cursor = len(runes)
	}
	before := string(runes[:cursor])

	seen := map[string]bool{}
	var names []string
	fields := strings.Fields(before)
	for i, f := range fields {
		if f != "as" || i+1 >= len(fields) {
			continue
		}
		cand := strings.TrimPrefix(fields[i+1], "$")
		cand = strings.TrimRight(cand, "|,)")
		if cand == "" || seen[cand] || !strings.HasPrefix(cand, partial) {
			continue
		}
		seen[cand] = true
		names = append(names, cand)
	}
	sort.Strings(names)

	out := make([]Suggestion, 0, len(names))
	for _, n := range names {
		out = append(out, Suggestion{Label: "$" + n, InsertText: "$" + n})
	}
	return out
}

// suggestFunctions suggests jq builtins (and, in PipeContext/FunctionContext,
// keywords) whose name has partial as a prefix.
func suggestFunctions(partial string) []Suggestion {
	var out []Suggestion
	for kw := range jqKeywords {
		if strings.HasPrefix(kw, partial) {
			out = append(out, Suggestion{Label: kw, InsertText: kw})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })

	for _, b := range FilterBuiltins(partial) {
		insert := b.Name
		if b.NeedsParens {
			insert += "()"
		}
		out = append(out, Suggestion{Label: b.Signature, InsertText: insert, Detail: b.Description})
	}
	return out
}

// fieldSuggestionsFromValues collects the union of object keys across a set
// of navigated values (normally one, or up to sampleSize in elementContext),
// matching partial, plus synthetic ".[]" entries where a value is itself an
// array worth iterating further.
func fieldSuggestionsFromValues(values []jsonvalue.Value, partial string, elementContext bool) []Suggestion {
	seen := map[string]bool{}
	var keys []string
	sawArray := false

	for _, v := range values {
		if obj, ok := jsonvalue.IsObject(v); ok {
			for k := range obj {
				if strings.HasPrefix(k, partial) && !seen[k] {
					seen[k] = true
					keys = append(keys, k)
				}
			}
		}
		if _, ok := jsonvalue.IsArray(v); ok {
			sawArray = true
		}
	}
	sort.Strings(keys)

	out := make([]Suggestion, 0, len(keys)+1)
	for _, k := range keys {
		// ElementContext's iterator is implicit in the navigation, not
		// in the inserted text (spec.md §4.3.4: "the text inserted
		// never contains '[].'").
		out = append(out, Suggestion{Label: k, InsertText: k})
	}
	if sawArray {
		out = append(out, Suggestion{Label: ".[]", InsertText: ".[]"})
	}
	return out
}

// pathPrefix returns the portion of query up to the cursor with the
// trailing partial identifier (and any leading '.' it was attached to)
// stripped off, leaving just the confirmed path segments for ParsePath.
func pathPrefix(query string, cursor int, partial string) string {
	runes := []rune(query)
	if cursor > len(runes) {
		cursor = len(runes)
	}
	before := string(runes[:cursor])
	return strings.TrimSuffix(before, partial)
}
