package query

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Debouncer coalesces a burst of keystroke-triggered query executions
// into a single scheduled one, per spec.md §4.2 ("the debouncer (~50-150
// ms) coalesces into one request"). Each call to Schedule bumps a
// generation counter; only a tick carrying the current generation is
// allowed to fire.
type Debouncer struct {
	interval   time.Duration
	generation uint64
}

// NewDebouncer returns a Debouncer with the given coalescing interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// tickMsg carries the generation it was scheduled for.
type tickMsg struct {
	generation uint64
}

// Schedule bumps the generation and returns a tea.Cmd that, after the
// debounce interval, delivers a tickMsg for that generation. Call Ready
// with the message to check whether it is still current.
func (d *Debouncer) Schedule() tea.Cmd {
	d.generation++
	gen := d.generation
	interval := d.interval
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{generation: gen}
	})
}

// Ready reports whether msg is a tickMsg for the current generation (the
// debounce window elapsed with no further keystrokes resetting it).
func (d *Debouncer) Ready(msg tea.Msg) bool {
	t, ok := msg.(tickMsg)
	return ok && t.generation == d.generation
}
