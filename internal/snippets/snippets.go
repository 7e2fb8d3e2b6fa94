// Package snippets manages the user's saved-query snippet library: a
// yaml.v3-backed file, hot-reloaded via fsnotify, and a browse/search/
// select popup state, grounded on
// original_source/src/snippets/{snippet_events.rs, snippet_state_tests.rs,
// snippet_events_tests.rs}.
package snippets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Snippet is one saved query, grounded on Snippet{name, query,
// description} in snippet_state_tests.rs.
type Snippet struct {
	Name        string `yaml:"name"`
	Query       string `yaml:"query"`
	Description string `yaml:"description,omitempty"`
}

type fileFormat struct {
	Snippets []Snippet `yaml:"snippets"`
}

// State is the snippet popup's state: the loaded list, a search
// filter, and a selection cursor into the filtered view.
type State struct {
	path        string
	snippets    []Snippet
	visible     bool
	searchQuery string
	selectedIdx int
}

func New(path string) *State {
	return &State{path: path}
}

func (s *State) IsVisible() bool { return s.visible }

// IsEditing reports whether the popup is in an editing sub-mode; the
// browse-only snippet popup has no such mode, mirroring
// is_editing_returns_false_in_browse_mode.
func (s *State) IsEditing() bool { return false }

func (s *State) Open() {
	s.visible = true
	s.searchQuery = ""
	s.selectedIdx = 0
}

func (s *State) Close() {
	s.visible = false
	s.searchQuery = ""
}

func (s *State) SearchQuery() string { return s.searchQuery }

func (s *State) SetSearchQuery(q string) {
	s.searchQuery = q
	s.OnSearchInputChanged()
}

func (s *State) OnSearchInputChanged() {
	s.selectedIdx = 0
}

// SetSnippets replaces the snippet list (e.g. after a Load or a
// fsnotify-triggered reload) and resets the selection.
func (s *State) SetSnippets(snippets []Snippet) {
	s.snippets = snippets
	s.selectedIdx = 0
}

func (s *State) filtered() []Snippet {
	if s.searchQuery == "" {
		return s.snippets
	}
	q := strings.ToLower(s.searchQuery)
	var out []Snippet
	for _, sn := range s.snippets {
		if strings.Contains(strings.ToLower(sn.Name), q) || strings.Contains(strings.ToLower(sn.Query), q) {
			out = append(out, sn)
		}
	}
	return out
}

func (s *State) FilteredCount() int { return len(s.filtered()) }

func (s *State) SelectedIndex() int { return s.selectedIdx }

func (s *State) SelectedSnippet() (Snippet, bool) {
	f := s.filtered()
	if len(f) == 0 || s.selectedIdx < 0 || s.selectedIdx >= len(f) {
		return Snippet{}, false
	}
	return f[s.selectedIdx], true
}

// FilteredSnippets returns the current search-filtered list, for
// rendering the popup's full row set (SelectedSnippet only exposes the
// one row a key handler needs).
func (s *State) FilteredSnippets() []Snippet {
	return s.filtered()
}

// SelectNext/SelectPrev stop at the filtered list's bounds (no wrap),
// matching select_next_stops_at_last_item /
// select_prev_stops_at_first_item.
func (s *State) SelectNext() {
	if n := s.FilteredCount(); n > 0 && s.selectedIdx < n-1 {
		s.selectedIdx++
	}
}

func (s *State) SelectPrev() {
	if s.selectedIdx > 0 {
		s.selectedIdx--
	}
}

// Load reads the snippet file from disk; a missing file yields an
// empty list rather than an error (no snippets saved yet).
func (s *State) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.SetSnippets(nil)
			return nil
		}
		return fmt.Errorf("reading snippets %s: %w", s.path, err)
	}
	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return fmt.Errorf("parsing snippets %s: %w", s.path, err)
	}
	s.SetSnippets(ff.Snippets)
	return nil
}

// Watcher hot-reloads the snippet file when it changes on disk,
// grounded on the teacher's own fsnotify-based config.Watch pattern
// (internal/config in schmitthub-clawker watches for external edits).
type Watcher struct {
	fsw *fsnotify.Watcher
}

// Watch starts watching path's directory (not the file itself — editors
// commonly replace-by-rename, which would silently drop a direct watch)
// and calls onChange whenever path's contents change.
func Watch(path string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating snippet file watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if ev.Name == path && (ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)) {
					onChange()
				}
			case _, ok := <-fsw.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return &Watcher{fsw: fsw}, nil
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}
