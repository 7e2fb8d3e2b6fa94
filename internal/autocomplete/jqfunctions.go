package autocomplete

// builtin describes one jq builtin function for FunctionContext
// suggestions.
type builtin struct {
	Name        string
	Signature   string
	Description string
	NeedsParens bool
}

// jqBuiltins is a representative, not exhaustive, subset of jq's standard
// library — implementing the full jq builtin surface is out of scope
// (spec.md §1 Non-goals: full jq language implementation); this table
// exists to exercise FunctionContext suggestion ranking and insertion.
var jqBuiltins = []builtin{
	{"length", "length", "length of a value", false},
	{"keys", "keys", "sorted object keys / array indices", false},
	{"keys_unsorted", "keys_unsorted", "object keys in original order", false},
	{"values", "values", "values of an object or array", false},
	{"has", "has(key)", "true if the input has the given key", true},
	{"in", "in(obj)", "true if obj has the input as a key", true},
	{"map", "map(f)", "apply f to each element", true},
	{"map_values", "map_values(f)", "apply f to each value, keep keys", true},
	{"select", "select(f)", "keep inputs for which f is truthy", true},
	{"recurse", "recurse", "recursive descent", false},
	{"empty", "empty", "produces no output", false},
	{"error", "error(msg)", "raise an error", true},
	{"add", "add", "sum / concatenate elements", false},
	{"any", "any(f)", "true if f is truthy for any element", true},
	{"all", "all(f)", "true if f is truthy for all elements", true},
	{"flatten", "flatten", "flatten nested arrays", false},
	{"unique", "unique", "sorted unique elements", false},
	{"unique_by", "unique_by(f)", "unique elements by f", true},
	{"group_by", "group_by(f)", "group elements by f", true},
	{"sort", "sort", "sort elements", false},
	{"sort_by", "sort_by(f)", "sort elements by f", true},
	{"min_by", "min_by(f)", "element minimizing f", true},
	{"max_by", "max_by(f)", "element maximizing f", true},
	{"reverse", "reverse", "reverse an array or string", false},
	{"contains", "contains(x)", "true if input contains x", true},
	{"inside", "inside(x)", "true if input is contained in x", true},
	{"startswith", "startswith(s)", "true if a string starts with s", true},
	{"endswith", "endswith(s)", "true if a string ends with s", true},
	{"split", "split(s)", "split a string on s", true},
	{"join", "join(s)", "join an array of strings with s", true},
	{"ascii_downcase", "ascii_downcase", "lowercase ASCII", false},
	{"ascii_upcase", "ascii_upcase", "uppercase ASCII", false},
	{"tostring", "tostring", "convert to a string", false},
	{"tonumber", "tonumber", "convert to a number", false},
	{"type", "type", "the JSON type as a string", false},
	{"not", "not", "boolean negation", false},
	{"range", "range(n)", "generate a numeric range", true},
	{"floor", "floor", "round down", false},
	{"ceil", "ceil", "round up", false},
	{"abs", "abs", "absolute value", false},
	{"paths", "paths", "all paths in the input", false},
	{"to_entries", "to_entries", "object to [{key, value}] array", false},
	{"from_entries", "from_entries", "[{key, value}] array to object", false},
	{"with_entries", "with_entries(f)", "transform object entries", true},
	{"first", "first", "first element", false},
	{"last", "last", "last element", false},
	{"limit", "limit(n; f)", "take the first n outputs of f", true},
	{"del", "del(path)", "delete a path from the input", true},
	{"env", "env", "environment variables", false},
	{"now", "now", "current Unix timestamp", false},
	{"input", "input", "read the next input value", false},
	{"inputs", "inputs", "read all remaining input values", false},
	{"path", "path(f)", "the path produced by f", true},
	{"getpath", "getpath(path)", "value at the given path", true},
	{"splits", "splits(re)", "split a string with a regex", true},
	{"test", "test(re)", "regex match test", true},
	{"capture", "capture(re)", "named regex capture groups", true},
	{"ltrimstr", "ltrimstr(s)", "strip a leading string", true},
	{"rtrimstr", "rtrimstr(s)", "strip a trailing string", true},
	{"explode", "explode", "string to codepoint array", false},
	{"implode", "implode", "codepoint array to string", false},
	{"indices", "indices(x)", "indices where x occurs", true},
	{"index", "index(x)", "first index where x occurs", true},
	{"rindex", "rindex(x)", "last index where x occurs", true},
	{"recurse_down", "recurse_down", "deprecated alias for recurse", false},
	{"walk", "walk(f)", "recursively apply f", true},
	{"tostream", "tostream", "stream representation of the input", false},
	{"fromstream", "fromstream(f)", "reconstruct values from a stream", true},
	{"ltrim", "ltrimstr(s)", "alias kept for discoverability", true},
	{"min", "min", "minimum element", false},
	{"max", "max", "maximum element", false},
	{"isnan", "isnan", "true if the input is NaN", false},
	{"infinite", "infinite", "positive infinity", false},
	{"nan", "nan", "not-a-number", false},
}

// FilterBuiltins returns jqBuiltins whose name has partial as a prefix,
// sorted by match quality then alphabetically (spec.md §4.3.7: "builtins
// by prefix match quality then alphabetical").
func FilterBuiltins(partial string) []builtin {
	if partial == "" {
		return nil
	}
	var out []builtin
	for _, b := range jqBuiltins {
		if len(b.Name) >= len(partial) && b.Name[:len(partial)] == partial {
			out = append(out, b)
		}
	}
	sortBuiltins(out, partial)
	return out
}

func sortBuiltins(bs []builtin, partial string) {
	for i := 1; i < len(bs); i++ {
		j := i
		for j > 0 && lessBuiltin(bs[j], bs[j-1], partial) {
			bs[j], bs[j-1] = bs[j-1], bs[j]
			j--
		}
	}
}

func lessBuiltin(a, b builtin, partial string) bool {
	aExact := a.Name == partial
	bExact := b.Name == partial
	if aExact != bExact {
		return aExact
	}
	if len(a.Name) != len(b.Name) {
		return len(a.Name) < len(b.Name)
	}
	return a.Name < b.Name
}
