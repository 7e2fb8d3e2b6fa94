package autocomplete

import "github.com/schmitthub/jqview/internal/jsonvalue"

// MaxNavigatedValues bounds the total number of values navigate_multi
// will ever hold in its frontier, guarding against pathological inputs
// (e.g. a huge array fanned out by several chained iterators). Grounded
// on spec.md §4.3.4's MAX_NAVIGATED_VALUES.
const MaxNavigatedValues = 100

// DefaultSampleSize bounds how many elements a single ArrayIterator
// contributes to the frontier.
const DefaultSampleSize = 10

// Navigate walks a single value along segments, returning ok=false as
// soon as a segment can't apply (missing non-optional field, type
// mismatch, out-of-range index). An OptionalField on a missing key is
// also ok=false (the caller then simply has nothing to suggest from),
// matching "None" in the original; it is not an error.
func Navigate(root jsonvalue.Value, segments []PathSegment) (jsonvalue.Value, bool) {
	cur := root
	for _, seg := range segments {
		next, ok := navigateOne(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func navigateOne(v jsonvalue.Value, seg PathSegment) (jsonvalue.Value, bool) {
	switch seg.Kind {
	case SegField, SegOptionalField:
		obj, ok := jsonvalue.IsObject(v)
		if !ok {
			return nil, false
		}
		val, ok := obj[seg.Name]
		return val, ok
	case SegArrayIndex:
		arr, ok := jsonvalue.IsArray(v)
		if !ok {
			return nil, false
		}
		idx := seg.Index
		if idx < 0 {
			idx += int64(len(arr))
		}
		if idx < 0 || idx >= int64(len(arr)) {
			return nil, false
		}
		return arr[idx], true
	case SegArrayIterator:
		// A single-valued Navigate can't fan out; by convention it
		// yields the first element, matching how "the base type for
		// one representative value" is used elsewhere. Multi-valued
		// callers should use NavigateMulti instead.
		arr, ok := jsonvalue.IsArray(v)
		if !ok || len(arr) == 0 {
			return nil, false
		}
		return arr[0], true
	default:
		return nil, false
	}
}

// NavigateMulti performs the bounded fan-out walk described in
// spec.md §4.3.4: each ArrayIterator replaces the frontier with up to
// sampleSize of its elements (and the running total is capped at
// MaxNavigatedValues); Field/Index segments filter the frontier
// element-wise, silently dropping elements of the wrong shape.
func NavigateMulti(root jsonvalue.Value, segments []PathSegment, sampleSize int) []jsonvalue.Value {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	frontier := []jsonvalue.Value{root}

	for _, seg := range segments {
		var next []jsonvalue.Value
		switch seg.Kind {
		case SegArrayIterator:
			for _, v := range frontier {
				arr, ok := jsonvalue.IsArray(v)
				if !ok {
					continue
				}
				n := len(arr)
				if n > sampleSize {
					n = sampleSize
				}
				for i := 0; i < n; i++ {
					if len(next) >= MaxNavigatedValues {
						break
					}
					next = append(next, arr[i])
				}
			}
		default:
			for _, v := range frontier {
				if len(next) >= MaxNavigatedValues {
					break
				}
				if nv, ok := navigateOne(v, seg); ok {
					next = append(next, nv)
				}
			}
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}
	}

	return frontier
}
