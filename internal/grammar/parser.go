package grammar

import (
	"fmt"

	"github.com/andrechen77/l1-compiler/internal/diag"
)

// matchUnsignedInt recognizes a plain non-negative integer with no sign,
// used for the argument and local counts in a function header — unlike
// `number` (spec §4.1 `int`), these can never be negative.
func (s *scanner) matchUnsignedInt() (*Node, bool) {
	loc := s.loc()
	if s.eof() || !isDigit(s.peek()) {
		return nil, false
	}
	start := s.pos
	if s.peek() == '0' {
		s.advance()
		return &Node{Rule: RuleNumber, Text: string(s.src[start:s.pos]), Loc: loc}, true
	}
	s.advance()
	for !s.eof() && isDigit(s.peek()) {
		s.advance()
	}
	return &Node{Rule: RuleNumber, Text: string(s.src[start:s.pos]), Loc: loc}, true
}

// matchFunction matches `( @name int int instruction+ )` (spec §4.1
// `function`). There is no separate parenthesized instruction list — the
// instructions run directly up to the function's own closing paren, so an
// empty body (zero instructions before that paren) is a parse failure
// rather than a valid degenerate case.
func (s *scanner) matchFunction() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	if !s.literal("(") {
		return nil, false
	}
	s.skipLayout()

	name, ok := s.matchFunctionName()
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipLayout()

	argc, ok := s.matchUnsignedInt()
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipLayout()

	localc, ok := s.matchUnsignedInt()
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipLayout()

	var instrs []*Node
	for {
		mi := s.save()
		n, ok := s.matchInstruction()
		if !ok {
			s.restore(mi)
			break
		}
		instrs = append(instrs, n)
		s.skipLayout()
	}
	if len(instrs) == 0 {
		s.restore(m)
		return nil, false
	}

	if !s.literal(")") {
		s.restore(m)
		return nil, false
	}

	children := append([]*Node{name, argc, localc}, instrs...)
	return &Node{Rule: RuleFunction, Loc: loc, Children: children}, true
}

// matchProgram matches `( @entry_name function+ )` (spec §4.1 `program`).
// The entry-point name is a standalone field distinct from the function
// list's ordering — it names whichever function below is the program's
// entry point, not necessarily the first one listed.
func (s *scanner) matchProgram() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	s.skipLayout()
	if !s.literal("(") {
		return nil, false
	}
	s.skipLayout()

	entry, ok := s.matchFunctionName()
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipLayout()

	var fns []*Node
	for {
		mi := s.save()
		fn, ok := s.matchFunction()
		if !ok {
			s.restore(mi)
			break
		}
		fns = append(fns, fn)
		s.skipLayout()
	}
	if len(fns) == 0 {
		s.restore(m)
		return nil, false
	}

	if !s.literal(")") {
		s.restore(m)
		return nil, false
	}
	// Trailing comments after the final paren are disallowed (Open
	// Questions decision): only blank-line separators are tolerated here.
	s.skipSeps()

	children := append([]*Node{entry}, fns...)
	return &Node{Rule: RuleProgram, Loc: loc, Children: children}, true
}

// Parse runs the startup grammar self-check and then parses src as a
// complete L1 program, returning the parse tree described in spec §4.2.
// Any failure — grammar self-check or the parse itself — is reported as a
// *diag.Error so callers never need to distinguish the two cases by hand.
func Parse(file string, src []byte) (*Node, error) {
	if err := Validate(); err != nil {
		return nil, diag.Wrap(diag.Grammar, diag.Location{File: file}, err, "grammar self-check failed")
	}

	s := newScanner(file, src)
	prog, ok := s.matchProgram()
	if !ok {
		return nil, diag.New(diag.Parse, s.loc(), "could not parse %s as an L1 program", file)
	}
	if !s.eof() {
		return nil, diag.New(diag.Parse, s.loc(), "unexpected trailing input after program")
	}
	return prog, nil
}

// ProgramSource renders a parse tree for debugging (`-dump-tree`): one
// `rule "text"` line per node, indented by nesting depth.
func ProgramSource(n *Node) string {
	var b []byte
	b = appendNode(b, n, 0)
	return string(b)
}

func appendNode(b []byte, n *Node, depth int) []byte {
	for i := 0; i < depth; i++ {
		b = append(b, "  "...)
	}
	b = append(b, fmt.Sprintf("%s %q\n", n.Rule, n.Text)...)
	for _, c := range n.Children {
		b = append(b, appendNode(nil, c, depth+1)...)
	}
	return b
}
