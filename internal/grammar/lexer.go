// Package grammar implements the PEG-style lexer and recursive-descent parser
// for L1 source text (spec §4.1), producing an explicit parse tree (§4.2)
// consumed by internal/lower.
package grammar

import (
	"github.com/andrechen77/l1-compiler/internal/diag"
)

// scanner walks a source buffer byte by byte, tracking line/column for
// diagnostics and supporting mark/reset backtracking the way a PEG ordered
// choice needs: try an alternative, and if it fails, rewind completely.
type scanner struct {
	file string
	src  []byte
	pos  int
	line int
	col  int
}

// mark captures scanner state for later rewind.
type mark struct {
	pos, line, col int
}

func newScanner(file string, src []byte) *scanner {
	return &scanner{file: file, src: src, pos: 0, line: 1, col: 1}
}

func (s *scanner) save() mark { return mark{s.pos, s.line, s.col} }

func (s *scanner) restore(m mark) {
	s.pos, s.line, s.col = m.pos, m.line, m.col
}

func (s *scanner) loc() diag.Location {
	return diag.Location{File: s.file, Line: s.line, Column: s.col}
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(off int) byte {
	if s.pos+off >= len(s.src) {
		return 0
	}
	return s.src[s.pos+off]
}

// advance consumes one byte, updating line/col. L1 source is treated as
// ASCII; a bare '\n' starts a new line.
func (s *scanner) advance() byte {
	b := s.src[s.pos]
	s.pos++
	if b == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return b
}

// --- character classes -----------------------------------------------------

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameStart(b byte) bool { return isAlpha(b) || b == '_' }

func isNameContinue(b byte) bool { return isAlpha(b) || isDigit(b) || b == '_' }

// --- low-level matchers -----------------------------------------------------

// literal matches an exact keyword/operator string with no intervening
// characters, the PEG equivalent of TAO_PEGTL_STRING.
func (s *scanner) literal(lit string) bool {
	if s.pos+len(lit) > len(s.src) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if s.src[s.pos+i] != lit[i] {
			return false
		}
	}
	for i := 0; i < len(lit); i++ {
		s.advance()
	}
	return true
}

// skipSpaces consumes horizontal whitespace only (spec's `spaces`: ' ' and
// '\t'), never newlines — newlines are handled by skipSeps so that `bol`
// stays meaningful.
func (s *scanner) skipSpaces() {
	for !s.eof() && (s.peek() == ' ' || s.peek() == '\t') {
		s.advance()
	}
}

// skipEOL consumes a single line terminator if present.
func (s *scanner) skipEOL() bool {
	if s.eof() {
		return false
	}
	if s.peek() == '\n' {
		s.advance()
		return true
	}
	if s.peek() == '\r' && s.peekAt(1) == '\n' {
		s.advance()
		s.advance()
		return true
	}
	return false
}

// skipComment consumes a `// ... \n` line comment, if present, not including
// the trailing newline (spec §4.1).
func (s *scanner) skipComment() bool {
	if s.peek() != '/' || s.peekAt(1) != '/' {
		return false
	}
	s.advance()
	s.advance()
	for !s.eof() && s.peek() != '\n' {
		s.advance()
	}
	return true
}

// skipSeps consumes blank lines (spaces followed by eol), matching the
// original grammar's `seps` — used where comments are not permitted.
func (s *scanner) skipSeps() {
	for {
		m := s.save()
		s.skipSpaces()
		if !s.skipEOL() {
			s.restore(m)
			return
		}
	}
}

// skipSepsWithComments consumes blank lines and/or comment lines, matching
// the original grammar's `seps_with_comments`.
func (s *scanner) skipSepsWithComments() {
	for {
		m := s.save()
		s.skipSpaces()
		if s.skipComment() {
			s.skipEOL()
			continue
		}
		if s.skipEOL() {
			continue
		}
		s.restore(m)
		return
	}
}

// skipLayout consumes horizontal spaces plus any number of blank or comment
// lines, the combination needed between two tokens that may sit either on
// the same line (separated only by spaces) or across a line break.
func (s *scanner) skipLayout() {
	s.skipSpaces()
	s.skipSepsWithComments()
}

// matchName recognizes the `name` production: [A-Za-z_][A-Za-z_0-9]*.
func (s *scanner) matchName() (string, bool) {
	if s.eof() || !isNameStart(s.peek()) {
		return "", false
	}
	start := s.pos
	s.advance()
	for !s.eof() && isNameContinue(s.peek()) {
		s.advance()
	}
	return string(s.src[start:s.pos]), true
}

// matchNumber recognizes the `number` production: '0' or [+-]?[1-9][0-9]*.
// Returns the matched literal text; numeric conversion and overflow checking
// happen in internal/lower, not here (spec §4.3).
func (s *scanner) matchNumber() (string, bool) {
	start := s.pos
	if s.peek() == '0' {
		// '0' alone is a match; '0' followed by more digits is not (no
		// leading zeros in the grammar), so stop here regardless.
		s.advance()
		return string(s.src[start:s.pos]), true
	}

	m := s.save()
	if s.peek() == '+' || s.peek() == '-' {
		s.advance()
	}
	if s.eof() || s.peek() < '1' || s.peek() > '9' {
		s.restore(m)
		return "", false
	}
	s.advance()
	for !s.eof() && isDigit(s.peek()) {
		s.advance()
	}
	return string(s.src[start:s.pos]), true
}
