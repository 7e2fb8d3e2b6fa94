package autocomplete

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePathSimpleField(t *testing.T) {
	got := ParsePath(".foo")
	want := ParsedPath{Partial: "foo"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathNestedFields(t *testing.T) {
	got := ParsePath(".foo.bar")
	want := ParsedPath{Segments: []PathSegment{fieldSeg("foo")}, Partial: "bar"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathTrailingDotEmptyPartial(t *testing.T) {
	got := ParsePath(".foo.")
	want := ParsedPath{Segments: []PathSegment{fieldSeg("foo")}, Partial: ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathArrayIterator(t *testing.T) {
	got := ParsePath(".items[].")
	want := ParsedPath{Segments: []PathSegment{fieldSeg("items"), iteratorSeg()}, Partial: ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathArrayIndexPositiveAndNegative(t *testing.T) {
	got := ParsePath(".items[0].name")
	want := ParsedPath{Segments: []PathSegment{fieldSeg("items"), indexSeg(0)}, Partial: "name"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}

	got = ParsePath(".items[-1]")
	want = ParsedPath{Segments: []PathSegment{fieldSeg("items"), indexSeg(-1)}, Partial: ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathOptionalField(t *testing.T) {
	got := ParsePath(".foo?.bar")
	want := ParsedPath{Segments: []PathSegment{optionalFieldSeg("foo")}, Partial: "bar"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathBracketQuotedField(t *testing.T) {
	got := ParsePath(`.["weird key"].x`)
	want := ParsedPath{Segments: []PathSegment{fieldSeg("weird key")}, Partial: "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathBracketEscapedQuote(t *testing.T) {
	got := ParsePath(`.["a\"b"]`)
	want := ParsedPath{Segments: []PathSegment{fieldSeg(`a"b`)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathEmptyInput(t *testing.T) {
	got := ParsePath("")
	if diff := cmp.Diff(ParsedPath{}, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want zero value +got):\n%s", diff)
	}
}

func TestParsePathDotOnly(t *testing.T) {
	got := ParsePath(".")
	if diff := cmp.Diff(ParsedPath{}, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want zero value +got):\n%s", diff)
	}
}

func TestParsePathDoubleDotSkipped(t *testing.T) {
	got := ParsePath("..foo")
	want := ParsedPath{Partial: "foo"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathNoLeadingDot(t *testing.T) {
	got := ParsePath("foo")
	want := ParsedPath{Partial: "foo"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathFunctionCallSkipping(t *testing.T) {
	got := ParsePath(`select(.x == "y").foo`)
	want := ParsedPath{Partial: "foo"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathFunctionCallWithNestedParens(t *testing.T) {
	got := ParsePath(`map(select(.a > (1 + 2))).bar`)
	want := ParsedPath{Partial: "bar"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathFunctionCallWithParenInString(t *testing.T) {
	got := ParsePath(`select(.x == ")").foo`)
	want := ParsedPath{Partial: "foo"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathChainedIterators(t *testing.T) {
	got := ParsePath(".a[].b[].c")
	want := ParsedPath{
		Segments: []PathSegment{fieldSeg("a"), iteratorSeg(), fieldSeg("b"), iteratorSeg()},
		Partial:  "c",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}
