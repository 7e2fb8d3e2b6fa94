package autocomplete

import "strings"

// PathSegmentKind tags a PathSegment's variant.
type PathSegmentKind int

const (
	SegField PathSegmentKind = iota
	SegOptionalField
	SegArrayIndex
	SegArrayIterator
)

// PathSegment is one step of a parsed jq path: a field access (optionally
// "?"-guarded), an array index, or an array iterator ("[]").
type PathSegment struct {
	Kind  PathSegmentKind
	Name  string // SegField / SegOptionalField
	Index int64  // SegArrayIndex
}

func fieldSeg(name string) PathSegment         { return PathSegment{Kind: SegField, Name: name} }
func optionalFieldSeg(name string) PathSegment { return PathSegment{Kind: SegOptionalField, Name: name} }
func indexSeg(i int64) PathSegment             { return PathSegment{Kind: SegArrayIndex, Index: i} }
func iteratorSeg() PathSegment                 { return PathSegment{Kind: SegArrayIterator} }

// ParsedPath is the result of walking a jq-subset path expression up to
// the cursor: the confirmed segments, plus the trailing identifier still
// being typed (empty if the text ends on a separator).
type ParsedPath struct {
	Segments []PathSegment
	Partial  string
}

// ParsePath walks a jq-subset path expression — field access (".field",
// ".field?"), bracket field access (".[\"field\"]"), array index
// (".[N]"), array iteration (".[]"), and function-call skipping
// ("select(...)", "map(...)", "sort_by(...)") — and returns the
// segments confirmed complete plus the trailing partial identifier.
// Grounded on original_source/src/autocomplete/path_parser_tests.rs's
// full test table; "..", recursive descent, is explicitly unsupported
// and skipped rather than parsed (spec.md Non-goals: full jq language).
func ParsePath(s string) ParsedPath {
	p := &pathParser{runes: []rune(s)}
	return p.parse()
}

type pathParser struct {
	runes []rune
	pos   int
}

func (p *pathParser) peek() (rune, bool) {
	if p.pos >= len(p.runes) {
		return 0, false
	}
	return p.runes[p.pos], true
}

func (p *pathParser) parse() ParsedPath {
	var segs []PathSegment
	partial := ""

	for p.pos < len(p.runes) {
		c, _ := p.peek()
		switch {
		case c == '.':
			p.pos++
			// Skip any further consecutive dots (".." and beyond):
			// recursive descent is unsupported, treated as a no-op
			// separator rather than an error.
			for {
				c2, ok := p.peek()
				if !ok || c2 != '.' {
					break
				}
				p.pos++
			}
			if partial != "" {
				segs = append(segs, fieldSeg(partial))
				partial = ""
			}

		case c == '[':
			p.pos++
			if partial != "" {
				segs = append(segs, fieldSeg(partial))
				partial = ""
			}
			seg, ok := p.parseBracket()
			if ok {
				segs = append(segs, seg)
			}
			p.skipOptionalMark()

		case isPathIdentRune(c):
			start := p.pos
			for {
				c2, ok := p.peek()
				if !ok || !isPathIdentRune(c2) {
					break
				}
				p.pos++
			}
			ident := string(p.runes[start:p.pos])

			// A bare identifier immediately followed by '(' is a
			// function call: skip its (string-aware, nesting-aware)
			// argument list entirely and keep walking the remainder
			// as a fresh path, exactly as if the call weren't there.
			if c3, ok := p.peek(); ok && c3 == '(' {
				p.skipParenGroup()
				p.skipOptionalMark()
				continue
			}

			partial = ident
			if c3, ok := p.peek(); ok && c3 == '?' {
				p.pos++
				segs = append(segs, optionalFieldSeg(partial))
				partial = ""
			}

		default:
			// Any other character (operators, whitespace, pipes) is
			// skipped; segments parsed before and after it accumulate
			// into the same path (suggest.go's pathPrefix passes the
			// whole text before the partial, untrimmed).
			p.pos++
		}
	}

	return ParsedPath{Segments: segs, Partial: partial}
}

// parseBracket parses the contents of a "[...]" already past its opening
// bracket, returning the resulting segment (array index, iterator, or a
// quoted field access) and consuming through the closing "]".
func (p *pathParser) parseBracket() (PathSegment, bool) {
	c, ok := p.peek()
	if !ok {
		return PathSegment{}, false
	}
	if c == ']' {
		p.pos++
		return iteratorSeg(), true
	}
	if c == '"' {
		p.pos++
		var b strings.Builder
		for {
			c2, ok := p.peek()
			if !ok {
				break
			}
			if c2 == '\\' {
				p.pos++
				if c3, ok := p.peek(); ok {
					b.WriteRune(c3)
					p.pos++
				}
				continue
			}
			if c2 == '"' {
				p.pos++
				break
			}
			b.WriteRune(c2)
			p.pos++
		}
		// consume through the closing ']'
		for {
			c2, ok := p.peek()
			if !ok {
				break
			}
			p.pos++
			if c2 == ']' {
				break
			}
		}
		return fieldSeg(b.String()), true
	}

	// Numeric index, possibly negative.
	start := p.pos
	if c == '-' {
		p.pos++
	}
	for {
		c2, ok := p.peek()
		if !ok || c2 < '0' || c2 > '9' {
			break
		}
		p.pos++
	}
	numStr := string(p.runes[start:p.pos])
	for {
		c2, ok := p.peek()
		if !ok {
			break
		}
		p.pos++
		if c2 == ']' {
			break
		}
	}
	if numStr == "" || numStr == "-" {
		return PathSegment{}, false
	}
	return indexSeg(parseInt64(numStr)), true
}

// skipOptionalMark consumes a single trailing '?' (e.g. ".[]?", "select(...)?").
func (p *pathParser) skipOptionalMark() {
	if c, ok := p.peek(); ok && c == '?' {
		p.pos++
	}
}

// skipParenGroup consumes a balanced "(...)" group, honoring nested
// parens and double-quoted strings (so a literal ')' inside a string
// doesn't end the group early).
func (p *pathParser) skipParenGroup() {
	c, ok := p.peek()
	if !ok || c != '(' {
		return
	}
	p.pos++
	depth := 1
	for depth > 0 {
		c2, ok := p.peek()
		if !ok {
			return
		}
		switch c2 {
		case '"':
			p.pos++
			for {
				c3, ok := p.peek()
				if !ok {
					return
				}
				p.pos++
				if c3 == '\\' {
					p.pos++
					continue
				}
				if c3 == '"' {
					break
				}
			}
			continue
		case '(':
			depth++
		case ')':
			depth--
		}
		p.pos++
	}
}

func isPathIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func parseInt64(s string) int64 {
	neg := false
	i := 0
	if len(s) > 0 && s[0] == '-' {
		neg = true
		i = 1
	}
	var n int64
	for ; i < len(s); i++ {
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
