package ai

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// sseEvent is one `\n\n`-delimited Server-Sent Event, adapted from
// digitallysavvy-go-ai's pkg/providerutils/streaming.SSEEvent — trimmed
// to the fields this advisor actually reads (event name and data;
// id/retry aren't meaningful for a single-turn completion call).
type sseEvent struct {
	Event string
	Data  string
}

// sseParser scans an SSE byte stream into events, grounded on
// digitallysavvy-go-ai's pkg/providerutils/streaming.SSEParser: a
// bufio.Scanner over lines, accumulating "data:" lines until a blank
// line closes the event, skipping ":"-comment lines.
type sseParser struct {
	scanner *bufio.Scanner
	err     error
}

func newSSEParser(r io.Reader) *sseParser {
	return &sseParser{scanner: bufio.NewScanner(r)}
}

// next returns the next event, or io.EOF once the stream is exhausted.
func (p *sseParser) next() (sseEvent, error) {
	if p.err != nil {
		return sseEvent{}, p.err
	}

	var ev sseEvent
	var dataLines []string

	for p.scanner.Scan() {
		line := p.scanner.Text()

		if line == "" {
			if len(dataLines) > 0 || ev.Event != "" {
				ev.Data = strings.Join(dataLines, "\n")
				return ev, nil
			}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		idx := strings.Index(line, ":")
		if idx == -1 {
			continue
		}
		field := line[:idx]
		value := strings.TrimPrefix(line[idx+1:], " ")

		switch field {
		case "event":
			ev.Event = value
		case "data":
			dataLines = append(dataLines, value)
		}
	}

	if err := p.scanner.Err(); err != nil {
		p.err = err
		return sseEvent{}, err
	}
	if len(dataLines) > 0 || ev.Event != "" {
		ev.Data = strings.Join(dataLines, "\n")
		return ev, nil
	}
	p.err = io.EOF
	return sseEvent{}, io.EOF
}

// streamCompletion drives an SSE response body through a Provider's
// ParseData, invoking onDelta for each non-empty text chunk. It returns
// normally once the provider signals done or the stream ends; any
// decode error from ParseData is wrapped with the provider's name.
func streamCompletion(providerName string, body io.Reader, parseData func(string) (string, bool, error), onDelta func(string)) error {
	p := newSSEParser(body)
	for {
		ev, err := p.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("ai: %s stream read: %w", providerName, err)
		}
		if ev.Data == "" {
			continue
		}
		delta, done, err := parseData(ev.Data)
		if err != nil {
			return fmt.Errorf("ai: %s stream decode: %w", providerName, err)
		}
		if delta != "" {
			onDelta(delta)
		}
		if done {
			return nil
		}
	}
}
