package grammar

// Each matchX function below implements one surface production from spec
// §4.1. All of them follow the same contract: on failure they rewind the
// scanner completely and return (nil, false) — a soft PEG failure, letting
// the caller try the next alternative — and on success they return a Node
// positioned exactly after the matched text, consuming nothing more.

func (s *scanner) matchReturn() (*Node, bool) {
	loc := s.loc()
	m := s.save()
	if !s.literal("return") {
		return nil, false
	}
	if s.peekIsNameContinue() {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleReturn, Loc: loc}, true
}

// peekIsNameContinue guards keyword matches against being a prefix of a
// longer identifier (e.g. "returning" must not match "return").
func (s *scanner) peekIsNameContinue() bool {
	return !s.eof() && isNameContinue(s.peek())
}

func (s *scanner) matchCompareAssignment() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	dst, ok := s.matchWritableRegister()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	if !s.literal("<-") {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	lhs, ok := s.matchArithmeticValue()
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	op, ok := s.matchOneOf(comparisonOperators)
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	rhs, ok := s.matchArithmeticValue()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleCompareAssignment, Text: op, Loc: loc, Children: []*Node{dst, lhs, rhs}}, true
}

func (s *scanner) matchAssignment() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	dst, ok := s.matchWritableRegister()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	if !s.literal("<-") {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	src, ok := s.matchSourceValue()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleAssignment, Text: "<-", Loc: loc, Children: []*Node{dst, src}}, true
}

func (s *scanner) matchMemoryRead() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	dst, ok := s.matchWritableRegister()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	if !s.literal("<-") {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	mem, ok := s.matchMemory()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleMemoryRead, Loc: loc, Children: []*Node{dst, mem}}, true
}

func (s *scanner) matchMemoryWrite() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	mem, ok := s.matchMemory()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	if !s.literal("<-") {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	src, ok := s.matchWritableRegister()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleMemoryWrite, Loc: loc, Children: []*Node{mem, src}}, true
}

func (s *scanner) matchArithOp() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	dst, ok := s.matchWritableRegister()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	op, ok := s.matchOneOf(arithmeticOperators)
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	val, ok := s.matchArithmeticValue()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleArithOp, Text: op, Loc: loc, Children: []*Node{dst, val}}, true
}

func (s *scanner) matchShiftOpRegister() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	dst, ok := s.matchWritableRegister()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	op, ok := s.matchOneOf(shiftOperators)
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	src, ok := s.matchRcxRegister()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleShiftOpRegister, Text: op, Loc: loc, Children: []*Node{dst, src}}, true
}

func (s *scanner) matchShiftOpImmediate() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	dst, ok := s.matchWritableRegister()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	op, ok := s.matchOneOf(shiftOperators)
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	num, ok := s.matchNumberNode()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleShiftOpImmediate, Text: op, Loc: loc, Children: []*Node{dst, num}}, true
}

func (s *scanner) matchPlusWriteMemory() (*Node, bool) {
	return s.matchMemoryArithWrite("+=", RulePlusWriteMemory)
}

func (s *scanner) matchMinusWriteMemory() (*Node, bool) {
	return s.matchMemoryArithWrite("-=", RuleMinusWriteMemory)
}

func (s *scanner) matchMemoryArithWrite(op, rule string) (*Node, bool) {
	m := s.save()
	loc := s.loc()
	mem, ok := s.matchMemory()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	if !s.literal(op) {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	val, ok := s.matchArithmeticValue()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: rule, Text: op, Loc: loc, Children: []*Node{mem, val}}, true
}

func (s *scanner) matchPlusReadMemory() (*Node, bool) {
	return s.matchMemoryArithRead("+=", RulePlusReadMemory)
}

func (s *scanner) matchMinusReadMemory() (*Node, bool) {
	return s.matchMemoryArithRead("-=", RuleMinusReadMemory)
}

func (s *scanner) matchMemoryArithRead(op, rule string) (*Node, bool) {
	m := s.save()
	loc := s.loc()
	dst, ok := s.matchWritableRegister()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	if !s.literal(op) {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	mem, ok := s.matchMemory()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: rule, Text: op, Loc: loc, Children: []*Node{dst, mem}}, true
}

func (s *scanner) matchCompareJump() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	if !s.literal("cjump") {
		return nil, false
	}
	s.skipSpaces()
	lhs, ok := s.matchArithmeticValue()
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	op, ok := s.matchOneOf(comparisonOperators)
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	rhs, ok := s.matchArithmeticValue()
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	label, ok := s.matchLabel()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleCompareJump, Text: op, Loc: loc, Children: []*Node{lhs, rhs, label}}, true
}

func (s *scanner) matchLabelInstruction() (*Node, bool) {
	n, ok := s.matchLabel()
	if !ok {
		return nil, false
	}
	n.Rule = RuleLabel
	return n, true
}

func (s *scanner) matchGoto() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	if !s.literal("goto") {
		return nil, false
	}
	s.skipSpaces()
	label, ok := s.matchLabel()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleGoto, Loc: loc, Children: []*Node{label}}, true
}

// fixedRuntimeCalls maps the literal keyword to its fixed argument count for
// the four non-tensor-error runtime functions; the grammar enforces the
// exact digit, mirroring the original's one<'N'> productions.
var fixedRuntimeCalls = []struct {
	name  string
	count string
}{
	{"print", "1"},
	{"input", "0"},
	{"allocate", "2"},
	{"tuple-error", "3"},
}

func (s *scanner) matchCallRuntime() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	if !s.literal("call") {
		return nil, false
	}
	s.skipSpaces()

	for _, rc := range fixedRuntimeCalls {
		mm := s.save()
		if s.literal(rc.name) {
			s.skipSpaces()
			numLoc := s.loc()
			if s.literal(rc.count) && !s.peekIsDigit() {
				return &Node{
					Rule: RuleCallRuntime, Text: rc.name, Loc: loc,
					Children: []*Node{{Rule: RuleNumber, Text: rc.count, Loc: numLoc}},
				}, true
			}
		}
		s.restore(mm)
	}

	mm := s.save()
	if s.literal("tensor-error") {
		s.skipSpaces()
		num, ok := s.matchNumberNode()
		if ok {
			return &Node{Rule: RuleCallRuntime, Text: "tensor-error", Loc: loc, Children: []*Node{num}}, true
		}
	}
	s.restore(mm)

	s.restore(m)
	return nil, false
}

func (s *scanner) peekIsDigit() bool { return !s.eof() && isDigit(s.peek()) }

func (s *scanner) matchCall() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	if !s.literal("call") {
		return nil, false
	}
	s.skipSpaces()
	dest, ok := s.matchCallDest()
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	num, ok := s.matchNumberNode()
	if !ok {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleCall, Loc: loc, Children: []*Node{dest, num}}, true
}

func (s *scanner) matchIncrement() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	dst, ok := s.matchWritableRegister()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	if !s.literal("++") {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleIncrement, Loc: loc, Children: []*Node{dst}}, true
}

func (s *scanner) matchDecrement() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	dst, ok := s.matchWritableRegister()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	if !s.literal("--") {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleDecrement, Loc: loc, Children: []*Node{dst}}, true
}

// leaScales are the only valid lea_factor literals (spec §4.1 `E`); matched
// as single characters that must not be followed by another digit, so "16"
// is correctly rejected rather than silently read as "1" followed by "6".
var leaScales = []string{"1", "2", "4", "8"}

func (s *scanner) matchLeaq() (*Node, bool) {
	m := s.save()
	loc := s.loc()
	dst, ok := s.matchWritableRegister()
	if !ok {
		return nil, false
	}
	s.skipSpaces()
	if !s.literal("@") {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	base, ok := s.matchWritableRegister()
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	index, ok := s.matchWritableRegister()
	if !ok {
		s.restore(m)
		return nil, false
	}
	s.skipSpaces()
	scaleLoc := s.loc()
	scale, ok := s.matchOneOf(leaScales)
	if !ok || s.peekIsDigit() {
		s.restore(m)
		return nil, false
	}
	scaleNode := &Node{Rule: RuleNumber, Text: scale, Loc: scaleLoc}
	return &Node{Rule: RuleLeaq, Loc: loc, Children: []*Node{dst, base, index, scaleNode}}, true
}

// matchInstruction tries every instruction alternative in the exact
// tie-break order spec §4.1 specifies. Note this order deliberately departs
// from the original C++ grammar's literal listing, which tries plain
// assignment before compare-assignment and so can never actually reach the
// compare-assignment production (its "W <- T" prefix always wins first).
func (s *scanner) matchInstruction() (*Node, bool) {
	alternatives := []func() (*Node, bool){
		s.matchReturn,
		s.matchCompareAssignment,
		s.matchAssignment,
		s.matchMemoryRead,
		s.matchMemoryWrite,
		s.matchArithOp,
		s.matchShiftOpRegister,
		s.matchShiftOpImmediate,
		s.matchPlusWriteMemory,
		s.matchMinusWriteMemory,
		s.matchPlusReadMemory,
		s.matchMinusReadMemory,
		s.matchCompareJump,
		s.matchLabelInstruction,
		s.matchGoto,
		s.matchCallRuntime,
		s.matchCall,
		s.matchIncrement,
		s.matchDecrement,
		s.matchLeaq,
	}
	for _, alt := range alternatives {
		if n, ok := alt(); ok {
			return n, true
		}
	}
	return nil, false
}
