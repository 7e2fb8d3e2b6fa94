// Package editor implements the Vi-style modal single-line query editor:
// a TextLine buffer with cursor/undo, a closed Mode sum type, and the
// per-mode key handlers that mutate both.
package editor

// Op identifies a pending Vi operator: delete, change, or yank.
type Op byte

const (
	OpDelete Op = 'd'
	OpChange Op = 'c'
	OpYank   Op = 'y'
)

// Dir is a char-search direction.
type Dir int

const (
	DirForward Dir = iota
	DirBackward
)

// Opposite returns the reverse direction, used by ',' to repeat the last
// char search backwards.
func (d Dir) Opposite() Dir {
	if d == DirForward {
		return DirBackward
	}
	return DirForward
}

// SearchKind distinguishes "find" (land on the target char) from "till"
// (land one short of it).
type SearchKind int

const (
	KindFind SearchKind = iota
	KindTill
)

// Scope distinguishes "inner" (excludes delimiters) from "around"
// (includes them) for text-object motions.
type Scope int

const (
	ScopeInner Scope = iota
	ScopeAround
)

// Mode is the closed sum type of editor modes. It is implemented only by
// the types in this file; callers switch on concrete type via a type
// switch, mirroring the Rust `match` over a tagged enum this is grounded
// on (original_source/src/editor/editor_events.rs's EditorMode).
type Mode interface {
	mode()
}

// InsertMode is the default text-entry mode: keystrokes insert directly
// into the TextLine.
type InsertMode struct{}

// NormalMode is the Vi command mode: keystrokes are motions or mode
// transitions, never inserted.
type NormalMode struct{}

// OperatorMode awaits a motion or text object to complete a pending
// operator (d/c/y). StartCol is the cursor column where the operator was
// invoked, the anchor of the range a completing motion deletes.
type OperatorMode struct {
	Op       Op
	StartCol int
}

// CharSearchMode awaits the target character for f/F/t/T.
type CharSearchMode struct {
	Dir  Dir
	Kind SearchKind
}

// OperatorCharSearchMode awaits the target character for an
// operator-then-char-search combo (e.g. "dfx"), remembering where the
// motion started so the deleted range can be computed once the target is
// known.
type OperatorCharSearchMode struct {
	Op       Op
	StartCol int
	Dir      Dir
	Kind     SearchKind
}

// TextObjectMode awaits the text-object target character for "di"/"ci"/
// "yi"/"da"/"ca"/"ya" combos.
type TextObjectMode struct {
	Op    Op
	Scope Scope
}

func (InsertMode) mode()               {}
func (NormalMode) mode()               {}
func (OperatorMode) mode()             {}
func (CharSearchMode) mode()           {}
func (OperatorCharSearchMode) mode()   {}
func (TextObjectMode) mode()           {}

// LastCharSearch records the most recent f/F/t/T invocation so ';' and
// ',' can repeat or reverse it.
type LastCharSearch struct {
	Char      rune
	Dir       Dir
	Kind      SearchKind
	Recorded  bool
}
