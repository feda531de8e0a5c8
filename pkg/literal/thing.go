package literal

import "strings"

// generators are the id functions the legacy grammar accepts after the colon.
var generators = []string{"rand()", "ulid()", "uuid()"}

// IsRecordID reports whether quoted is a quoted record id such as
// 'person:tobie', "person:⟨tobie⟩", 'person:100' or 'person:[1, 2]'.
//
// Array and object ids are recognised by bracket balance only; their
// contents are not parsed as values.
func IsRecordID(quoted string) bool {
	s, ok := body(quoted)
	if !ok {
		return false
	}
	sc := &scanner{input: s}
	if !sc.readIdent() {
		return false
	}
	if !sc.consume(":") {
		return false
	}
	if !sc.readID() {
		return false
	}
	return sc.eof()
}

// scanner walks the raw body of a quoted literal.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) hasPrefix(p string) bool {
	return strings.HasPrefix(s.input[s.pos:], p)
}

// consume advances past p if the input continues with it.
func (s *scanner) consume(p string) bool {
	if !s.hasPrefix(p) {
		return false
	}
	s.pos += len(p)
	return true
}

// readIdent reads a raw, backtick-escaped or bracket-escaped identifier.
func (s *scanner) readIdent() bool {
	switch {
	case s.hasPrefix("`"):
		return s.readDelimited("`", "`")
	case s.hasPrefix("⟨"):
		return s.readDelimited("⟨", "⟩")
	default:
		return s.readRaw()
	}
}

// readID reads the part of a record id after the colon.
func (s *scanner) readID() bool {
	for _, g := range generators {
		if s.consume(g) {
			return true
		}
	}
	switch s.peek() {
	case '[':
		return s.readBalanced('[', ']')
	case '{':
		return s.readBalanced('{', '}')
	case '-':
		// Negative integer id
		s.pos++
		start := s.pos
		for !s.eof() && isDigit(s.peek()) {
			s.pos++
		}
		return s.pos > start
	}
	return s.readIdent()
}

// readRaw reads one or more bytes of [A-Za-z0-9_].
func (s *scanner) readRaw() bool {
	start := s.pos
	for !s.eof() && isIdentByte(s.peek()) {
		s.pos++
	}
	return s.pos > start
}

// readDelimited reads l ... r where r may be escaped with a backslash.
func (s *scanner) readDelimited(l, r string) bool {
	if !s.consume(l) {
		return false
	}
	for !s.eof() {
		if s.consume(`\` + r) {
			continue
		}
		if s.consume(r) {
			return true
		}
		s.pos++
	}
	return false
}

// readBalanced reads a bracketed array or object, skipping quoted strings.
func (s *scanner) readBalanced(l, r byte) bool {
	depth := 0
	for !s.eof() {
		c := s.peek()
		switch c {
		case '\'', '"':
			if !s.skipString(c) {
				return false
			}
			continue
		case l:
			depth++
		case r:
			depth--
			if depth == 0 {
				s.pos++
				return true
			}
		}
		s.pos++
	}
	return false
}

// skipString advances past a quoted string starting at the current byte.
func (s *scanner) skipString(q byte) bool {
	s.pos++
	for !s.eof() {
		c := s.peek()
		s.pos++
		if c == '\\' {
			s.pos++
			continue
		}
		if c == q {
			return true
		}
	}
	return false
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) || c == '_'
}
