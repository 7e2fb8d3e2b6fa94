// Package history persists executed query strings across runs and
// drives the history popup's browse/search/select cycle, grounded on
// original_source/src/history/{history_events.rs, history_render.rs}
// (filtered_count/total_count/visible_entries/selected_index/
// selected_entry/select_next/select_previous/open/close/
// add_entry_in_memory/search_textarea/on_search_input_changed) and the
// teacher's internal/config/write.go for the persistence mechanics
// (flock-guarded, temp-file+rename atomic writes).
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MaxVisible bounds how many entries the popup renders at once,
// grounded on history_render.rs's MAX_VISIBLE_HISTORY.
const MaxVisible = 10

// MaxEntries caps how many queries are retained; the oldest is dropped
// on overflow (an append-only log would grow unbounded otherwise).
const MaxEntries = 500

type fileEntry struct {
	ID    string `yaml:"id"`
	Query string `yaml:"query"`
}

type fileFormat struct {
	Entries []fileEntry `yaml:"entries"`
}

// Entry is one persisted history record: the query text plus a stable
// id minted once when it's added, so a caller can address a specific
// entry (e.g. for logging) independent of its position in the log.
type Entry struct {
	ID    uuid.UUID
	Query string
}

// State is the in-memory history popup state: the full entry log (most
// recent last), a search filter over it, and a selection cursor into
// the filtered view.
type State struct {
	path    string
	entries []Entry

	visible      bool
	searchQuery  string
	selectedIdx  int
}

// New creates a State backed by path; existing entries are not loaded
// until Load is called explicitly (keeping construction free of I/O
// errors the caller must separately decide how to handle).
func New(path string) *State {
	return &State{path: path}
}

// Empty returns a State with no backing file, for tests — mirrors
// HistoryState::empty() in popup_tests.rs.
func Empty() *State {
	return &State{}
}

// Load reads persisted entries from disk. A missing file is not an
// error (first run).
func (s *State) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading history %s: %w", s.path, err)
	}
	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return fmt.Errorf("parsing history %s: %w", s.path, err)
	}
	entries := make([]Entry, len(ff.Entries))
	for i, fe := range ff.Entries {
		id, err := uuid.Parse(fe.ID)
		if err != nil {
			id = uuid.New()
		}
		entries[i] = Entry{ID: id, Query: fe.Query}
	}
	s.entries = entries
	return nil
}

// AddEntry appends query to the in-memory log (deduping an immediate
// repeat of the last entry) and persists it, guarded by a file lock so
// concurrent jqview processes don't clobber each other's history.
func (s *State) AddEntry(query string) error {
	s.AddEntryInMemory(query)
	return s.persist()
}

// AddEntryInMemory appends without touching disk, used by tests and by
// Load's mirror in popup_tests.rs (add_entry_in_memory).
func (s *State) AddEntryInMemory(query string) {
	if query == "" {
		return
	}
	if n := len(s.entries); n > 0 && s.entries[n-1].Query == query {
		return
	}
	s.entries = append(s.entries, Entry{ID: uuid.New(), Query: query})
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[len(s.entries)-MaxEntries:]
	}
}

func (s *State) persist() error {
	if s.path == "" {
		return nil
	}
	return withFileLock(s.path, func() error {
		fes := make([]fileEntry, len(s.entries))
		for i, e := range s.entries {
			fes[i] = fileEntry{ID: e.ID.String(), Query: e.Query}
		}
		encoded, err := yaml.Marshal(fileFormat{Entries: fes})
		if err != nil {
			return fmt.Errorf("encoding history %s: %w", s.path, err)
		}
		return atomicWriteFile(s.path, encoded, 0o644)
	})
}

// Open shows the popup, resetting the search query to filter (nil for
// "no filter") and the selection to the first entry.
func (s *State) Open(filter *string) {
	s.visible = true
	if filter != nil {
		s.searchQuery = *filter
	} else {
		s.searchQuery = ""
	}
	s.selectedIdx = 0
}

func (s *State) Close() {
	s.visible = false
}

func (s *State) IsVisible() bool { return s.visible }

func (s *State) SearchQuery() string { return s.searchQuery }

// OnSearchInputChanged resets the selection after the search textarea
// content changes, mirroring on_search_input_changed.
func (s *State) OnSearchInputChanged() {
	s.selectedIdx = 0
}

func (s *State) SetSearchQuery(q string) {
	s.searchQuery = q
	s.OnSearchInputChanged()
}

// filteredIndices returns the indices into entries (most-recent-first)
// that match the search query, case-insensitively.
func (s *State) filteredIndices() []int {
	var out []int
	q := strings.ToLower(s.searchQuery)
	for i := len(s.entries) - 1; i >= 0; i-- {
		if q == "" || strings.Contains(strings.ToLower(s.entries[i].Query), q) {
			out = append(out, i)
		}
	}
	return out
}

func (s *State) TotalCount() int { return len(s.entries) }

func (s *State) FilteredCount() int { return len(s.filteredIndices()) }

func (s *State) SelectedIndex() int { return s.selectedIdx }

// VisibleEntry pairs a display row with its entry text and stable id,
// mirroring history_render.rs's (display_idx, entry) iteration.
type VisibleEntry struct {
	DisplayIndex int
	ID           uuid.UUID
	Entry        string
}

// VisibleEntries returns the filtered list, most-recent-first.
func (s *State) VisibleEntries() []VisibleEntry {
	idxs := s.filteredIndices()
	out := make([]VisibleEntry, 0, len(idxs))
	for displayIdx, entryIdx := range idxs {
		e := s.entries[entryIdx]
		out = append(out, VisibleEntry{DisplayIndex: displayIdx, ID: e.ID, Entry: e.Query})
	}
	return out
}

// SelectedEntry returns the entry at the current selection, or false if
// the filtered list is empty.
func (s *State) SelectedEntry() (string, bool) {
	idxs := s.filteredIndices()
	if len(idxs) == 0 {
		return "", false
	}
	if s.selectedIdx < 0 || s.selectedIdx >= len(idxs) {
		return "", false
	}
	return s.entries[idxs[s.selectedIdx]].Query, true
}

// SelectNext and SelectPrevious move the selection, clamped to the
// filtered list's bounds (no wraparound — matches the Up/Down handlers
// in history_events.rs, which call select_next/select_previous without
// any modulo wrap).
func (s *State) SelectNext() {
	if n := s.FilteredCount(); n > 0 && s.selectedIdx < n-1 {
		s.selectedIdx++
	}
}

func (s *State) SelectPrevious() {
	if s.selectedIdx > 0 {
		s.selectedIdx--
	}
}

func withFileLock(path string, fn func() error) error {
	fl := flock.New(path + ".lock")
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring file lock for %s: %w", path, err)
	}
	if !locked {
		time.Sleep(50 * time.Millisecond)
		if locked, err = fl.TryLock(); err != nil || !locked {
			return fmt.Errorf("timed out acquiring file lock for %s", path)
		}
	}
	defer func() { _ = fl.Unlock() }()
	return fn()
}

func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating history directory for %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(dir, ".jqview-history-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file for %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp file for %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("setting permissions on temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}
	success = true
	return nil
}
