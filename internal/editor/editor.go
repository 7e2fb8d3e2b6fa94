package editor

// Editor bundles the TextLine buffer, current Mode, brace tracker, and
// last-char-search memory into the single unit the orchestrator's
// precedence-ladder dispatch hands keys to. Grounded on
// original_source/src/editor/editor_events.rs's App.input field cluster
// (textarea + editor_mode + brace_tracker + last_char_search).
type Editor struct {
	Line           *TextLine
	Mode           Mode
	Brace          BraceTracker
	LastCharSearch LastCharSearch

	// Yanked holds the text copied by the most recently completed yank
	// combo (yy, y+motion, or yi"/ya(-style text object), cleared at the
	// start of every HandleKey call. The orchestrator reads it after a
	// call returns to decide whether to copy something to the clipboard.
	Yanked string
}

// NewEditor returns an Editor in Normal mode with an empty line.
func NewEditor() *Editor {
	return &Editor{
		Line: New(),
		Mode: NormalMode{},
	}
}

// HandleKey dispatches a single key press to the handler for the current
// mode and returns whether the line content changed (callers use this to
// decide whether to reschedule the debounced query and reset result
// scroll/cursor state, mirroring handle_insert_mode_key's content_changed
// check).
func (e *Editor) HandleKey(k Key) (changed bool) {
	before := e.Line.Value()
	e.Yanked = ""
	switch e.Mode.(type) {
	case InsertMode:
		e.handleInsert(k)
	case NormalMode:
		e.handleNormal(k)
	case OperatorMode:
		e.handleOperator(k)
	case CharSearchMode:
		e.handleCharSearch(k)
	case OperatorCharSearchMode:
		e.handleOperatorCharSearch(k)
	case TextObjectMode:
		e.handleTextObject(k)
	}
	e.Brace.Rebuild(e.Line.Value())
	return e.Line.Value() != before
}

// Key is a minimal, toolkit-independent key event: enough for the modal
// dispatch logic to decide what to do without depending on bubbletea's
// tea.KeyMsg directly, keeping this package testable standalone.
type Key struct {
	Rune  rune
	Named NamedKey
	Ctrl  bool
}

// NamedKey identifies non-printable keys relevant to the editor.
type NamedKey int

const (
	KeyNone NamedKey = iota
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyEsc
)

func (e *Editor) handleInsert(k Key) {
	switch k.Named {
	case KeyEsc:
		e.Mode = NormalMode{}
		if e.Line.cursor > 0 {
			e.Line.cursor--
		}
	case KeyBackspace:
		e.Line.DeletePrevChar()
	case KeyLeft:
		e.Line.MoveBack()
	case KeyRight:
		e.Line.MoveForward()
	case KeyHome:
		e.Line.MoveHead()
	case KeyEnd:
		e.Line.MoveEnd()
	default:
		if k.Rune != 0 && !k.Ctrl {
			e.Line.InsertRune(k.Rune)
		}
	}
}

func (e *Editor) handleNormal(k Key) {
	if k.Named != KeyNone {
		switch k.Named {
		case KeyLeft:
			e.Line.MoveBack()
		case KeyRight:
			e.Line.MoveForward()
		case KeyHome:
			e.Line.MoveHead()
		case KeyEnd:
			e.Line.MoveEnd()
		}
		return
	}

	switch k.Rune {
	case 'h':
		e.Line.MoveBack()
	case 'l':
		e.Line.MoveForward()
	case '0', '^':
		e.Line.MoveHead()
	case '$':
		e.Line.MoveEnd()
	case 'w':
		e.Line.MoveWordForward()
	case 'b':
		e.Line.MoveWordBack()
	case 'e':
		e.Line.MoveWordEnd()
	case 'i':
		e.Mode = InsertMode{}
	case 'a':
		e.Line.MoveForward()
		e.Mode = InsertMode{}
	case 'I':
		e.Line.MoveHead()
		e.Mode = InsertMode{}
	case 'A':
		e.Line.MoveEnd()
		e.Mode = InsertMode{}
	case 'x':
		e.Line.DeleteNextChar()
	case 'X':
		e.Line.DeletePrevChar()
	case 'D':
		e.Line.DeleteLineByEnd()
	case 'C':
		e.Line.DeleteLineByEnd()
		e.Mode = InsertMode{}
	case 'd':
		e.Mode = OperatorMode{Op: OpDelete, StartCol: e.Line.cursor}
	case 'c':
		e.Mode = OperatorMode{Op: OpChange, StartCol: e.Line.cursor}
	case 'y':
		e.Mode = OperatorMode{Op: OpYank, StartCol: e.Line.cursor}
	case 'f':
		e.Mode = CharSearchMode{Dir: DirForward, Kind: KindFind}
	case 'F':
		e.Mode = CharSearchMode{Dir: DirBackward, Kind: KindFind}
	case 't':
		e.Mode = CharSearchMode{Dir: DirForward, Kind: KindTill}
	case 'T':
		e.Mode = CharSearchMode{Dir: DirBackward, Kind: KindTill}
	case ';':
		e.repeatCharSearch(false)
	case ',':
		e.repeatCharSearch(true)
	case 'u':
		e.Line.Undo()
	default:
		if k.Rune == 'r' && k.Ctrl {
			e.Line.Redo()
		}
	}
}

func (e *Editor) repeatCharSearch(reverse bool) {
	if !e.LastCharSearch.Recorded {
		return
	}
	dir := e.LastCharSearch.Dir
	if reverse {
		dir = dir.Opposite()
	}
	ExecuteCharSearch(e.Line, e.LastCharSearch.Char, dir, e.LastCharSearch.Kind)
}

func (e *Editor) handleOperator(k Key) {
	m, _ := e.Mode.(OperatorMode)
	op := m.Op

	if k.Rune == rune(op) {
		switch op {
		case OpYank:
			e.Yanked = e.Line.Value()
		case OpDelete, OpChange:
			e.Line.DeleteLineByHead()
			e.Line.DeleteLineByEnd()
		}
		if op == OpChange {
			e.Mode = InsertMode{}
		} else {
			e.Mode = NormalMode{}
		}
		return
	}

	if (op == OpDelete || op == OpChange) && k.Rune != 0 {
		if dir, kind, ok := operatorCharSearchFromRune(k.Rune); ok {
			e.Mode = OperatorCharSearchMode{Op: op, StartCol: e.Line.cursor, Dir: dir, Kind: kind}
			return
		}
	}

	applied := true
	switch k.Rune {
	case 'w':
		e.Line.MoveWordForward()
	case 'b':
		e.Line.MoveWordBack()
	case 'e':
		e.Line.MoveWordEnd()
		e.Line.MoveForward()
	case '0', '^':
		e.Line.MoveHead()
	case '$':
		e.Line.MoveEnd()
	case 'h':
		e.Line.MoveBack()
	case 'l':
		e.Line.MoveForward()
	case 'i':
		e.Mode = TextObjectMode{Op: op, Scope: ScopeInner}
		return
	case 'a':
		e.Mode = TextObjectMode{Op: op, Scope: ScopeAround}
		return
	default:
		applied = false
	}

	if !applied {
		e.Mode = NormalMode{}
		return
	}

	start, end := m.StartCol, e.Line.cursor
	if start > end {
		start, end = end, start
	}
	if op == OpDelete || op == OpChange {
		e.Line.cursor = m.StartCol
		e.Line.DeleteRange(start, end)
	} else {
		// Yank+motion: cursor stays where the motion left it, nothing
		// is cut, mirroring the original's fallback (_ => cancel
		// selection) for any operator other than d/c.
		e.Yanked = e.Line.Slice(start, end)
		e.Line.cursor = end
	}

	if op == OpChange {
		e.Mode = InsertMode{}
	} else {
		e.Mode = NormalMode{}
	}
}

func operatorCharSearchFromRune(r rune) (Dir, SearchKind, bool) {
	switch r {
	case 'f':
		return DirForward, KindFind, true
	case 'F':
		return DirBackward, KindFind, true
	case 't':
		return DirForward, KindTill, true
	case 'T':
		return DirBackward, KindTill, true
	default:
		return 0, 0, false
	}
}

func (e *Editor) handleCharSearch(k Key) {
	m, _ := e.Mode.(CharSearchMode)
	if k.Rune != 0 {
		found := ExecuteCharSearch(e.Line, k.Rune, m.Dir, m.Kind)
		if found {
			e.LastCharSearch = LastCharSearch{Char: k.Rune, Dir: m.Dir, Kind: m.Kind, Recorded: true}
		}
	}
	e.Mode = NormalMode{}
}

func (e *Editor) handleOperatorCharSearch(k Key) {
	m, _ := e.Mode.(OperatorCharSearchMode)
	if k.Named == KeyEsc || k.Rune == 0 {
		e.Mode = NormalMode{}
		return
	}

	start, end, ok := OperatorCharSearchRange(e.Line.runes, m.StartCol, k.Rune, m.Dir, m.Kind)
	if !ok {
		e.Mode = NormalMode{}
		return
	}
	e.Line.DeleteRange(start, end)
	if m.Op == OpChange {
		e.Mode = InsertMode{}
	} else {
		e.Mode = NormalMode{}
	}
}

func (e *Editor) handleTextObject(k Key) {
	m, _ := e.Mode.(TextObjectMode)
	if k.Rune == 0 {
		e.Mode = NormalMode{}
		return
	}
	target, ok := TextObjectTargetFromChar(k.Rune)
	if !ok {
		e.Mode = NormalMode{}
		return
	}
	if m.Op == OpYank {
		if start, end, ok := TextObjectBounds(e.Line, target, m.Scope); ok {
			e.Yanked = e.Line.Slice(start, end)
		}
		e.Mode = NormalMode{}
		return
	}
	if ExecuteTextObject(e.Line, target, m.Scope) {
		if m.Op == OpChange {
			e.Mode = InsertMode{}
		} else {
			e.Mode = NormalMode{}
		}
	} else {
		e.Mode = NormalMode{}
	}
}
