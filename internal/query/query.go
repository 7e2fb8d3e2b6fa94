// Package query implements the async, debounced, cancellable query
// pipeline: a background worker executes the filter evaluator off the UI
// goroutine and reports back through a channel the orchestrator drains
// with a Bubble Tea command, grounded on the teacher's
// internal/tui/loopdash.go waitForLoopEvent(ch) tea.Cmd pattern.
package query

import (
	"math"
	"strings"

	"github.com/schmitthub/jqview/internal/ansiutil"
	"github.com/schmitthub/jqview/internal/cancel"
	"github.com/schmitthub/jqview/internal/evaluator"
	"github.com/schmitthub/jqview/internal/jsonvalue"
)

// Request is one unit of work the UI goroutine hands to the worker.
type Request struct {
	Version      uint64
	Query        string
	OriginalJSON *jsonvalue.Value
	Cancel       *cancel.Token
}

// Status tags a Response as a success, a filter error, or a cancellation.
type Status int

const (
	StatusOK Status = iota
	StatusErr
	StatusCancelled
)

// Response is what the worker reports back for one Request.
type Response struct {
	Version Uint64Version
	Status  Status
	Result  Preprocessed
	Err     string
}

// Uint64Version is a type alias kept distinct from a bare uint64 only to
// make call sites ("does this response's version match mine") read
// unambiguously; it is assignment-compatible with uint64 everywhere.
type Uint64Version = uint64

// StyledLine is one line of rendered output. Styling itself (color
// attribution per character run) is out of scope for this repository
// (spec.md Non-goals exclude syntax highlighting); Text is the
// ANSI-stripped line content, kept as its own type so the results pane
// can eventually attach style spans without changing Preprocessed's
// shape.
type StyledLine struct {
	Text string
}

// Preprocessed is the fully-processed result of one query execution.
type Preprocessed struct {
	Output          string
	Unformatted     string
	Parsed          jsonvalue.Value
	HasParsed       bool
	ResultType      jsonvalue.ResultType
	NormalizedQuery string
	RenderedLines   []StyledLine
	LineCount       uint32
	MaxWidth        uint16
	LineWidths      []uint16
}

// AllNullLines reports whether every rendered line is the literal text
// "null" (or there are no rendered lines at all) — an
// uninformative mid-typing state that must not overwrite the cached
// last-successful result (spec.md §3.2 invariants).
func (p Preprocessed) AllNullLines() bool {
	if len(p.RenderedLines) == 0 {
		return true
	}
	for _, l := range p.RenderedLines {
		if strings.TrimSpace(l.Text) != "null" {
			return false
		}
	}
	return true
}

// Preprocess runs stages 1-6 of spec.md §4.2 against an already-evaluated
// filter result. Stage 1 (evaluate) is the caller's responsibility since
// it owns the Evaluator; Preprocess covers ANSI-stripping onward so it
// can be tested without a live Evaluator.
func Preprocess(output, query string) Preprocessed {
	unformatted := ansiutil.Strip(output)

	value, hasParsed := jsonvalue.ParseFirstValue(unformatted)
	hasSecond := hasParsed && jsonvalue.HasSecondValue(unformatted)
	resultType := jsonvalue.DetectResultType(value, hasSecond)
	if !hasParsed {
		resultType = jsonvalue.ResultNull
	}

	lines := renderLines(unformatted)
	widths := make([]uint16, len(lines))
	var maxWidth uint16
	for i, l := range lines {
		w := clampUint16(len([]rune(l.Text)))
		widths[i] = w
		if w > maxWidth {
			maxWidth = w
		}
	}

	return Preprocessed{
		Output:          output,
		Unformatted:     unformatted,
		Parsed:          value,
		HasParsed:       hasParsed,
		ResultType:      resultType,
		NormalizedQuery: NormalizeQuery(query),
		RenderedLines:   lines,
		LineCount:       clampUint32(len(lines)),
		MaxWidth:        maxWidth,
		LineWidths:      widths,
	}
}

func renderLines(s string) []StyledLine {
	if s == "" {
		return nil
	}
	parts := strings.Split(strings.TrimRight(s, "\n"), "\n")
	lines := make([]StyledLine, len(parts))
	for i, p := range parts {
		lines[i] = StyledLine{Text: p}
	}
	return lines
}

// NormalizeQuery strips a trailing " | .", " |", or a lone dangling "."
// suffix, but preserves a query that is exactly "." (the root filter).
// The result is what autocomplete and the AI advisor treat as the "base"
// query (spec.md §4.2 stage 5).
func NormalizeQuery(query string) string {
	trimmed := strings.TrimRight(query, " ")
	if trimmed == "." {
		return trimmed
	}
	switch {
	case strings.HasSuffix(trimmed, "| ."):
		trimmed = strings.TrimSuffix(trimmed, "| .")
	case strings.HasSuffix(trimmed, "|."):
		trimmed = strings.TrimSuffix(trimmed, "|.")
	case strings.HasSuffix(trimmed, "|"):
		trimmed = strings.TrimSuffix(trimmed, "|")
	case strings.HasSuffix(trimmed, "."):
		trimmed = strings.TrimSuffix(trimmed, ".")
	}
	return strings.TrimRight(trimmed, " ")
}

func clampUint16(n int) uint16 {
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}

func clampUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	return uint32(n)
}

// Run executes one Request end to end: evaluate, then Preprocess. It
// checks cancellation before and after the evaluate stage, per spec.md
// §4.2 stage 1.
func Run(eval evaluator.Evaluator, req Request) Response {
	if req.Cancel != nil && req.Cancel.IsCancelled() {
		return Response{Version: req.Version, Status: StatusCancelled}
	}

	output, err := eval.Execute(req.OriginalJSON, req.Query)

	if req.Cancel != nil && req.Cancel.IsCancelled() {
		return Response{Version: req.Version, Status: StatusCancelled}
	}

	if err != nil {
		return Response{Version: req.Version, Status: StatusErr, Err: err.Error()}
	}

	return Response{
		Version: req.Version,
		Status:  StatusOK,
		Result:  Preprocess(output, req.Query),
	}
}
