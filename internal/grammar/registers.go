package grammar

// Register operand classes (spec §4.1). L1's sixteen 64-bit general-purpose
// registers are partitioned into overlapping subsets that the grammar
// enforces syntactically rather than leaving to a later semantic check.
var allRegisters = map[string]bool{
	"rax": true, "rbx": true, "rcx": true, "rdx": true,
	"rdi": true, "rsi": true, "r8": true, "r9": true,
	"r10": true, "r11": true, "r12": true, "r13": true,
	"r14": true, "r15": true, "rbp": true, "rsp": true,
}

// idk ("a" in the grammar): argument-passing registers.
var idkRegisters = map[string]bool{
	"rdi": true, "rsi": true, "rdx": true, "rcx": true, "r8": true, "r9": true,
}

// writable ("w"): idk plus the remaining general-purpose registers, minus rsp.
var writableRegisters = map[string]bool{
	"rdi": true, "rsi": true, "rdx": true, "rcx": true, "r8": true, "r9": true,
	"rax": true, "rbx": true, "rbp": true,
	"r10": true, "r11": true, "r12": true, "r13": true, "r14": true, "r15": true,
}

func isRegisterName(s string) bool { return allRegisters[s] }
func isRcxOnly(s string) bool      { return s == "rcx" }
func isIdk(s string) bool          { return idkRegisters[s] }
func isWritable(s string) bool     { return writableRegisters[s] }
func isAny(s string) bool          { return allRegisters[s] } // any ("x") = writable ∪ {rsp} = all 16

// matchRegisterClass scans a name token and, if it both looks like an
// identifier and is a member of the given class predicate, commits to it as
// a register Node. Otherwise it rewinds and reports no match.
func (s *scanner) matchRegisterClass(class func(string) bool) (*Node, bool) {
	m := s.save()
	loc := s.loc()
	name, ok := s.matchName()
	if !ok || !class(name) {
		s.restore(m)
		return nil, false
	}
	return &Node{Rule: RuleRegister, Text: name, Loc: loc}, true
}

func (s *scanner) matchAnyRegister() (*Node, bool)      { return s.matchRegisterClass(isRegisterName) }
func (s *scanner) matchWritableRegister() (*Node, bool) { return s.matchRegisterClass(isWritable) }
func (s *scanner) matchIdkRegister() (*Node, bool)      { return s.matchRegisterClass(isIdk) }
func (s *scanner) matchRcxRegister() (*Node, bool)      { return s.matchRegisterClass(isRcxOnly) }
